package keycalc

import (
	"strconv"
	"strings"
)

// Token is one lexical element of an expression. Numbers keep the text the
// user typed; they are parsed only during evaluation.
type Token struct {
	Kind TokenKind
	Text string
}

// TokenKind distinguishes numbers, operators, and parentheses.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNumber is a run of digits with at most one decimal point, possibly
	// signed by a "-" that directly followed an open parenthesis.
	TokenNumber
	// TokenOperator is one of the runes in Operators.
	TokenOperator
	// TokenOpen is "(".
	TokenOpen
	// TokenClose is ")".
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are binary operators.
const Operators = "^×÷+-"

// IsOperator reports whether r is one of Operators.
func IsOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

// Num creates a number token.
func Num(text string) Token {
	return Token{Kind: TokenNumber, Text: text}
}

// Op creates an operator token.
func Op(r rune) Token {
	return Token{Kind: TokenOperator, Text: string(r)}
}

// Open creates an open parenthesis token.
func Open() Token {
	return Token{Kind: TokenOpen, Text: "("}
}

// Close creates a close parenthesis token.
func Close() Token {
	return Token{Kind: TokenClose, Text: ")"}
}

func (t Token) String() string {
	return t.Text
}

// isOp reports whether t is the operator sym.
func (t Token) isOp(sym string) bool {
	return t.Kind == TokenOperator && t.Text == sym
}

// Infix is a validated token sequence in the order it was typed, with implicit
// multiplications materialized.
type Infix []Token

// String reproduces the expression text, including implicit operators.
func (in Infix) String() string {
	var b strings.Builder
	for _, t := range in {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Postfix is a token sequence in reverse Polish order. It contains no
// parentheses.
type Postfix []Token

// String renders the tokens separated by spaces.
func (p Postfix) String() string {
	var b strings.Builder
	for i, t := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}
