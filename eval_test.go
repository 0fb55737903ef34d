package keycalc_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/zephyrtronium/keycalc"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"decimal", "1.5", 1.5},
		{"leading-dot", ".25", 0.25},
		{"trailing-dot", "4.", 4},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4×5×6", 4 * 5 * 6},
		{"div", "8÷4÷2", 1},
		{"pow", "2^3", 8},
		{"pow-left", "2^3^2", 64},
		{"precedence", "1+2×3", 7},
		{"parens", "(1+2)×3", 9},
		{"pow-over-mul", "2×3^2", 18},
		{"unary-add", "(-5)+3", -2},
		{"unary-mul", "(-5)×(-2)", 10},
		{"unary-sub", "10-(-2)", 12},
		{"unary-decimal", "(-1.5)×2", -3},
		{"implicit-num", "2(3)", 6},
		{"implicit-parens", "(2)(3)", 6},
		{"implicit-after", "(2)3", 6},
		{"implicit-chain", "2(3)(4)", 24},
		{"nested", "((2))", 2},
		{"huge", "10^400", math.Inf(1)},
		{"huge-literal", "1" + fmt.Sprintf("%0400d", 0), math.Inf(1)},
		{"tiny", "1÷(10^400)", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := keycalc.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q gave wrong result: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind keycalc.ErrorKind
		msg  string
	}{
		{"div-zero", "1÷0", keycalc.DivideByZero, "can't divide by 0"},
		{"div-zero-zero", "0÷0", keycalc.DivideByZero, "can't divide by 0"},
		{"div-zero-expr", "1÷(2-2)", keycalc.DivideByZero, "can't divide by 0"},
		{"div-neg-zero", "1÷(-0)", keycalc.DivideByZero, "can't divide by 0"},
		{"unclosed", "(1+2", keycalc.MismatchedParenthesis, "mismatched '('"},
		{"unopened", "1+2)", keycalc.MismatchedParenthesis, "mismatched ')'"},
		{"trailing-op", "1+", keycalc.MalformedExpression, "invalid '1+'"},
		{"leading-minus", "-5", keycalc.MalformedExpression, "invalid '-5'"},
		{"empty", "", keycalc.MalformedExpression, "invalid ''"},
		{"empty-parens", "()", keycalc.MalformedExpression, "invalid '()'"},
		{"dot", ".", keycalc.MalformedExpression, "invalid '.'"},
		{"signed-dot", "(-.)", keycalc.MalformedExpression, "invalid '(-.)'"},
		{"lone-sign", "(-)", keycalc.MalformedExpression, "invalid '(-)'"},
		{"sign-before-paren", "(-(2))", keycalc.MalformedExpression, "invalid '(-(2))'"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			infix, err := keycalc.ValidateString(c.src)
			if err != nil {
				t.Fatalf("%q failed to validate: %v", c.src, err)
			}
			r, err := keycalc.Evaluate(infix)
			if err == nil {
				t.Fatalf("%q evaluated to %g", c.src, r)
			}
			var ee *keycalc.EvalError
			if !errors.As(err, &ee) {
				t.Fatalf("%#v is not *EvalError", err)
			}
			if ee.Kind != c.kind {
				t.Errorf("%q gave wrong kind: want %v, got %v", c.src, c.kind, ee.Kind)
			}
			if !errors.Is(err, c.kind) {
				t.Errorf("%v does not match %v", err, c.kind)
			}
			if got := err.Error(); got != c.msg {
				t.Errorf("%q gave wrong message: want %q, got %q", c.src, c.msg, got)
			}
		})
	}
}

func TestEvalSyntaxErrors(t *testing.T) {
	for _, src := range []string{"5..5", "××5", "5++", "(+1", "2a"} {
		r, err := keycalc.EvalString(src)
		if err == nil {
			t.Errorf("%q evaluated to %g", src, r)
			continue
		}
		var se *keycalc.SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q gave %#v, not *SyntaxError", src, err)
		}
	}
}

func TestEvalNonFinite(t *testing.T) {
	cases := []struct {
		name string
		src  string
		nan  bool
		msg  string
	}{
		{"neg-root", "(-8)^0.5", true, "non-finite result NaN"},
		{"overflow", "10^400", false, "non-finite result Infinity"},
		{"zero-neg-pow", "0^(-1)", false, "non-finite result Infinity"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := keycalc.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q failed without Finite: %v", c.src, err)
			}
			if math.IsNaN(r) != c.nan || !c.nan && !math.IsInf(r, 0) {
				t.Errorf("%q should pass through a non-finite result but gave %g", c.src, r)
			}
			r, err = keycalc.EvalString(c.src, keycalc.Finite())
			if err == nil {
				t.Fatalf("%q evaluated to %g with Finite", c.src, r)
			}
			if !errors.Is(err, keycalc.NonFinite) {
				t.Errorf("%#v is not NonFinite", err)
			}
			if got := err.Error(); got != c.msg {
				t.Errorf("%q gave wrong message: want %q, got %q", c.src, c.msg, got)
			}
		})
	}
	if r, err := keycalc.EvalString("1÷(10^400)", keycalc.Finite()); err != nil || r != 0 {
		t.Errorf("finite result of infinite intermediate: want 0, got %g, %v", r, err)
	}
}

func TestExecute(t *testing.T) {
	cases := []struct {
		name    string
		postfix keycalc.Postfix
		r       float64
		kind    keycalc.ErrorKind
	}{
		{"add", keycalc.Postfix{keycalc.Num("1"), keycalc.Num("2"), keycalc.Op('+')}, 3, 0},
		{"operand-order", keycalc.Postfix{keycalc.Num("1"), keycalc.Num("2"), keycalc.Op('-')}, -1, 0},
		{"div-order", keycalc.Postfix{keycalc.Num("1"), keycalc.Num("4"), keycalc.Op('÷')}, 0.25, 0},
		{"pow-order", keycalc.Postfix{keycalc.Num("2"), keycalc.Num("10"), keycalc.Op('^')}, 1024, 0},
		{"underflow", keycalc.Postfix{keycalc.Num("1"), keycalc.Op('+')}, 0, keycalc.MalformedExpression},
		{"leftover", keycalc.Postfix{keycalc.Num("1"), keycalc.Num("2")}, 0, keycalc.MalformedExpression},
		{"paren", keycalc.Postfix{keycalc.Num("1"), keycalc.Open()}, 0, keycalc.MalformedExpression},
		{"div-zero", keycalc.Postfix{keycalc.Num("1"), keycalc.Num("0"), keycalc.Op('÷')}, 0, keycalc.DivideByZero},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := keycalc.Execute(c.postfix)
			if c.kind != 0 {
				if !errors.Is(err, c.kind) {
					t.Errorf("%q: want %v, got %v", c.postfix, c.kind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("%q failed: %v", c.postfix, err)
			}
			if r != c.r {
				t.Errorf("%q gave wrong result: want %g, got %g", c.postfix, c.r, r)
			}
		})
	}
}

func TestEvalRepeatable(t *testing.T) {
	srcs := []string{"1+2×3", "(1+2)×3", "1÷0", "(1+2", "1+2)", "5..5", "(-8)^0.5", "-5", ""}
	for _, src := range srcs {
		r1, err1 := keycalc.EvalString(src)
		r2, err2 := keycalc.EvalString(src)
		if fmt.Sprint(err1) != fmt.Sprint(err2) {
			t.Errorf("%q gave different errors: %v then %v", src, err1, err2)
		}
		if r1 != r2 && !(math.IsNaN(r1) && math.IsNaN(r2)) {
			t.Errorf("%q gave different results: %g then %g", src, r1, r2)
		}
	}
}

func TestErrorKindString(t *testing.T) {
	cases := map[keycalc.ErrorKind]string{
		keycalc.MismatchedParenthesis: "mismatched parenthesis",
		keycalc.DivideByZero:          "divide by zero",
		keycalc.MalformedExpression:   "malformed expression",
		keycalc.NonFinite:             "non-finite result",
	}
	for k, want := range cases {
		if got := k.Error(); got != want {
			t.Errorf("wrong text for %d: want %q, got %q", int(k), want, got)
		}
	}
}

func BenchmarkEval(b *testing.B) {
	b.Run("flat", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			keycalc.EvalString("1+2×3-4÷5")
		}
	})
	b.Run("nested", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			keycalc.EvalString("((1+2)(3-4))^2÷(-5)")
		}
	})
}

func Example() {
	for _, src := range []string{"1+2×3", "(1+2)×3", "2(3)", "(-5)×(-2)", "1÷0", "(1+2"} {
		r, err := keycalc.EvalString(src)
		if err != nil {
			fmt.Printf("%s: %v\n", src, err)
			continue
		}
		fmt.Printf("%s = %g\n", src, r)
	}

	// Output:
	// 1+2×3 = 7
	// (1+2)×3 = 9
	// 2(3) = 6
	// (-5)×(-2) = 10
	// 1÷0: can't divide by 0
	// (1+2: mismatched '('
}
