package keycalc

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// machine evaluates a postfix expression with an operand stack.
type machine struct {
	stack []float64
	expr  string
}

func (m *machine) push(v float64) {
	m.stack = append(m.stack, v)
}

// pop removes the top from the stack and returns it. The stack must not be
// empty.
func (m *machine) pop() float64 {
	r := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return r
}

func (m *machine) malformed() error {
	return &EvalError{Kind: MalformedExpression, Expr: m.expr}
}

// num parses number text. Numbers too large for a float64 become infinite.
func (m *machine) num(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// v is ±Inf or 0, which is what the arithmetic would give anyway.
	default:
		return 0, m.malformed()
	}
	return v, nil
}

// apply pops two operands, applies op, and pushes the result.
func (m *machine) apply(op string) error {
	if len(m.stack) < 2 {
		return m.malformed()
	}
	b := m.pop()
	a := m.pop()
	var r float64
	switch op {
	case "^":
		r = math.Pow(a, b)
	case "×":
		r = a * b
	case "÷":
		if b == 0 {
			return &EvalError{Kind: DivideByZero, Expr: m.expr}
		}
		r = a / b
	case "+":
		r = a + b
	case "-":
		r = a - b
	default:
		panic("keycalc: unknown operator " + op)
	}
	m.push(r)
	return nil
}

func (m *machine) run(postfix Postfix, c evalctx) (float64, error) {
	m.stack = make([]float64, 0, len(postfix)/2+1)
	for _, tok := range postfix {
		switch tok.Kind {
		case TokenNumber:
			v, err := m.num(tok.Text)
			if err != nil {
				return 0, err
			}
			m.push(v)
		case TokenOperator:
			if err := m.apply(tok.Text); err != nil {
				return 0, err
			}
		default:
			// ToPostfix removes parentheses, so these come from a Postfix
			// built by hand.
			return 0, m.malformed()
		}
	}
	if len(m.stack) != 1 {
		return 0, m.malformed()
	}
	r := m.stack[0]
	if c.finite && (math.IsNaN(r) || math.IsInf(r, 0)) {
		return 0, &EvalError{Kind: NonFinite, Token: FormatResult(r), Expr: m.expr}
	}
	return r, nil
}

// Execute evaluates a postfix expression. Errors are *EvalError with kind
// DivideByZero or MalformedExpression, or NonFinite with the Finite option.
func Execute(postfix Postfix, opts ...EvalOption) (float64, error) {
	m := machine{expr: postfix.String()}
	return m.run(postfix, newEvalctx(opts))
}

// Evaluate computes the value of a validated expression. Errors are
// *EvalError; a MalformedExpression error names the infix text.
func Evaluate(infix Infix, opts ...EvalOption) (float64, error) {
	postfix, err := ToPostfix(infix)
	if err != nil {
		return 0, err
	}
	m := machine{expr: infix.String()}
	return m.run(postfix, newEvalctx(opts))
}

// Eval is a shortcut to validate and evaluate an expression.
func Eval(src io.RuneScanner, opts ...EvalOption) (float64, error) {
	infix, err := Validate(src)
	if err != nil {
		return 0, err
	}
	return Evaluate(infix, opts...)
}

// EvalString is a shortcut to validate and evaluate a string expression.
func EvalString(src string, opts ...EvalOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}
