package keycalc

// EvalOption is an option for evaluation.
type EvalOption interface {
	evalOption(evalctx) evalctx
}

// evalctx holds the settings for one evaluation.
type evalctx struct {
	// finite indicates that NaN and infinite results are errors.
	finite bool
}

type finiteopt struct{}

// Finite makes a NaN or infinite result an *EvalError of kind NonFinite. By
// default such results are returned as they are, e.g. "(-8)^0.5" is NaN and
// "10^400" is +Inf. Only the final result is checked; "1÷(10^400)" is 0.
func Finite() EvalOption {
	return finiteopt{}
}

func (finiteopt) evalOption(c evalctx) evalctx {
	c.finite = true
	return c
}

func newEvalctx(opts []EvalOption) evalctx {
	var c evalctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.evalOption(c)
	}
	return c
}
