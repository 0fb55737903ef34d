package keycalc

// precedence gets the binding strength of a binary operator. Higher binds
// tighter. Every operator is left-associative, so 2^3^2 is (2^3)^2.
func precedence(sym string) int8 {
	switch sym {
	case "+", "-":
		return 1
	case "×", "÷":
		return 2
	case "^":
		return 3
	default:
		panic("keycalc: unknown operator " + sym)
	}
}

// ToPostfix reorders a validated expression into postfix order using the
// shunting-yard algorithm. Numbers keep their relative order. The only errors
// are *EvalError with kind MismatchedParenthesis.
func ToPostfix(infix Infix) (Postfix, error) {
	out := make(Postfix, 0, len(infix))
	var ops []Token
	for _, tok := range infix {
		switch tok.Kind {
		case TokenNumber:
			out = append(out, tok)
		case TokenOpen:
			ops = append(ops, tok)
		case TokenClose:
			for len(ops) > 0 && ops[len(ops)-1].Kind != TokenOpen {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, &EvalError{Kind: MismatchedParenthesis, Token: tok.Text, Expr: infix.String()}
			}
			// Discard the matching open parenthesis.
			ops = ops[:len(ops)-1]
		case TokenOperator:
			p := precedence(tok.Text)
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind == TokenOpen || precedence(top.Text) < p {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		default:
			panic("keycalc: invalid token kind " + tok.Kind.String())
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top.Kind == TokenOpen {
			return nil, &EvalError{Kind: MismatchedParenthesis, Token: top.Text, Expr: infix.String()}
		}
		out = append(out, top)
		ops = ops[:len(ops)-1]
	}
	return out, nil
}
