package keycalc

import "strconv"

// SyntaxError indicates a character that cannot appear where it was typed. It
// implements InputError.
type SyntaxError struct {
	// Text is the offending character.
	Text string
	// Kind is "operator" for a misplaced operator or decimal point, or
	// "token" for a character that is never valid.
	Kind string
	// Col is the position of the offending character, counting from 1.
	Col int
}

func (err *SyntaxError) Error() string {
	return "unexpected " + err.Kind + " '" + err.Text + "'"
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the character that caused the error.
	Pos() int
}

var _ InputError = (*SyntaxError)(nil)

// ErrorKind classifies evaluation failures. An ErrorKind is itself an error,
// so errors.Is(err, DivideByZero) matches any *EvalError of that kind.
type ErrorKind int8

const (
	_ ErrorKind = iota
	// MismatchedParenthesis is a ")" without an open "(" before it, or a "("
	// that is never closed.
	MismatchedParenthesis
	// DivideByZero is a division whose divisor is zero.
	DivideByZero
	// MalformedExpression is an expression that does not reduce to exactly
	// one value, e.g. "1+" or "-5", or that contains a number like ".".
	MalformedExpression
	// NonFinite is a result that is NaN or infinite. It is reported only
	// when evaluating with the Finite option.
	NonFinite
)

func (k ErrorKind) Error() string {
	switch k {
	case MismatchedParenthesis:
		return "mismatched parenthesis"
	case DivideByZero:
		return "divide by zero"
	case MalformedExpression:
		return "malformed expression"
	case NonFinite:
		return "non-finite result"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// EvalError is an error from evaluating a validated expression.
type EvalError struct {
	Kind ErrorKind
	// Token is the parenthesis for MismatchedParenthesis and the formatted
	// result for NonFinite.
	Token string
	// Expr is the infix text of the expression being evaluated.
	Expr string
}

func (err *EvalError) Error() string {
	switch err.Kind {
	case MismatchedParenthesis:
		return "mismatched '" + err.Token + "'"
	case DivideByZero:
		return "can't divide by 0"
	case MalformedExpression:
		return "invalid '" + err.Expr + "'"
	case NonFinite:
		return "non-finite result " + err.Token
	default:
		return err.Kind.Error()
	}
}

// Is reports whether target is err's kind.
func (err *EvalError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == err.Kind
}
