package calc

// Eval evaluates an expression tree with a post-order walk. Division
// delegates to float64 division, so zero divisors follow IEEE-754: positive
// over zero is +Inf, negative over zero is -Inf, zero over zero is NaN.
func Eval(e Expr) float64 {
	switch e := e.(type) {
	case Number:
		return float64(e)
	case BinOp:
		l, r := Eval(e.Left), Eval(e.Right)
		switch e.Op {
		case OpAdd:
			return l + r
		case OpSub:
			return l - r
		case OpMul:
			return l * r
		case OpDiv:
			return l / r
		}
	}
	panic("calc: malformed expression tree")
}
