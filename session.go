package keycalc

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Keys with special meaning to a Session. Every other key is appended to the
// formula.
const (
	// KeyClear clears the formula and the answer.
	KeyClear = "C"
	// KeyDelete removes the last character of the formula.
	KeyDelete = "c"
	// KeyCommit replaces the formula with the current answer.
	KeyCommit = "="
)

// Session is the state of a calculator display: the formula typed so far and
// the answer shown for it. It is not safe to use a Session concurrently.
type Session struct {
	formula string
	answer  string
	value   float64
	// ok indicates that value holds the result of formula.
	ok   bool
	err  error
	opts []EvalOption
}

// NewSession creates an empty session. The options are used for every
// evaluation.
func NewSession(opts ...EvalOption) *Session {
	return &Session{opts: opts}
}

// Press handles one keystroke and returns the error now shown as the answer,
// if any.
//
// A key that makes the formula invalid is rejected: the formula stays as it
// was. A key that leaves the formula valid but not evaluable, like the "+" in
// "1+", is kept, because every unfinished expression is in that state.
func (s *Session) Press(key string) error {
	switch key {
	case KeyClear:
		s.formula = ""
		s.reset()
		return nil
	case KeyDelete:
		if _, sz := utf8.DecodeLastRuneInString(s.formula); sz > 0 {
			s.formula = s.formula[:len(s.formula)-sz]
		}
		s.reset()
		return nil
	case KeyCommit:
		s.commit()
		return nil
	}
	next := s.formula + key
	infix, err := ValidateString(next)
	if err != nil {
		return s.fail(err)
	}
	s.formula = next
	v, err := Evaluate(infix, s.opts...)
	if err != nil {
		return s.fail(err)
	}
	s.value, s.ok, s.err = v, true, nil
	s.answer = FormatResult(v)
	return nil
}

// commit makes the current answer the new formula. Negative answers are
// parenthesized, since a leading "-" is not a sign. Answers that could not be
// typed back in, like NaN or 1e+21, are not committed.
func (s *Session) commit() {
	if !s.ok || math.IsNaN(s.value) || math.IsInf(s.value, 0) {
		return
	}
	text := FormatResult(s.value)
	if strings.HasPrefix(text, "-") {
		text = "(" + text + ")"
	}
	if _, err := ValidateString(text); err != nil {
		return
	}
	s.formula = text
	s.reset()
}

func (s *Session) reset() {
	s.answer = ""
	s.value, s.ok, s.err = 0, false, nil
}

func (s *Session) fail(err error) error {
	s.answer = err.Error()
	s.value, s.ok, s.err = 0, false, err
	return err
}

// Formula returns the keys accepted so far.
func (s *Session) Formula() string {
	return s.formula
}

// Answer returns the formatted result or error message for the formula, or
// the empty string if there is nothing to show.
func (s *Session) Answer() string {
	return s.answer
}

// Value returns the result of the formula. ok is false if the last key
// produced an error or there is no result to show.
func (s *Session) Value() (v float64, ok bool) {
	return s.value, s.ok
}

// Err returns the error from the last key, if any.
func (s *Session) Err() error {
	return s.err
}
