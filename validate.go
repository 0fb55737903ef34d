package keycalc

import (
	"errors"
	"io"
	"strings"
)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// rune is the number of runes read so far, which is also the column of
	// the most recently read rune.
	rune  int
	infix Infix
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// peek returns the next rune without consuming it. ok is false at EOF.
func (l *lexer) peek() (r rune, ok bool, err error) {
	r, err = l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, false, nil
		}
		return 0, false, err
	}
	l.unreadRune()
	return r, true, nil
}

// last returns the most recently emitted token, or a token with kind
// tokenNone if there is none.
func (l *lexer) last() Token {
	if len(l.infix) == 0 {
		return Token{}
	}
	return l.infix[len(l.infix)-1]
}

func (l *lexer) emit(tok Token) {
	l.infix = append(l.infix, tok)
}

// Validate scans an entire expression and returns its tokens. The result has
// no two adjacent operators and includes implicit multiplications, but its
// parentheses are not necessarily balanced; Evaluate checks those.
//
// Errors from invalid input are *SyntaxError. Other errors come from src.
func Validate(src io.RuneScanner) (Infix, error) {
	l := lex(src)
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return l.infix, nil
			}
			return nil, err
		}
		switch {
		case isNumRune(r):
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return nil, err
			}
		case IsOperator(r):
			if l.last().Kind == TokenOperator {
				return nil, l.error("operator", r)
			}
			l.emit(Op(r))
		case r == '(':
			// 2(3) -> 2×(3)
			if k := l.last().Kind; k != tokenNone && k != TokenOperator && k != TokenOpen {
				l.emit(Op('×'))
			}
			l.emit(Open())
			n, ok, err := l.peek()
			if err != nil {
				return nil, err
			}
			// Only "-" can start a subexpression, as a sign.
			if ok && strings.ContainsRune("^×÷+", n) {
				l.readRune()
				return nil, l.error("operator", n)
			}
		case r == ')':
			l.emit(Close())
			n, ok, err := l.peek()
			if err != nil {
				return nil, err
			}
			// (2)3 -> (2)×3 and (2)(3) -> (2)×(3)
			if ok && !strings.ContainsRune(Operators+")", n) {
				l.emit(Op('×'))
			}
		default:
			return nil, l.error("token", r)
		}
	}
}

// ValidateString is a shortcut to validate a string expression.
func ValidateString(src string) (Infix, error) {
	return Validate(strings.NewReader(src))
}

func isNumRune(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

// scanNum scans a run of digits and decimal points and emits it as a number.
// If the two preceding tokens are "(" and "-", the "-" becomes the number's
// sign.
func (l *lexer) scanNum() error {
	defer l.buf.Reset()
	dot := false
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if !isNumRune(r) {
			l.unreadRune()
			break
		}
		if r == '.' {
			if dot {
				return l.error("operator", r)
			}
			dot = true
		}
		l.buf.WriteRune(r)
	}
	text := l.buf.String()
	if n := len(l.infix); n >= 2 && l.infix[n-2].Kind == TokenOpen && l.infix[n-1].isOp("-") {
		l.infix = l.infix[:n-1]
		text = "-" + text
	}
	l.emit(Num(text))
	return nil
}

func (l *lexer) error(kind string, r rune) error {
	return &SyntaxError{
		Text: string(r),
		Kind: kind,
		Col:  l.rune,
	}
}
