package mathex

import "math"

// DefaultEpsilon is the truth threshold applied when no Epsilon option is
// given: the machine epsilon for float64.
const DefaultEpsilon = 0x1p-52

// Evaluate parses an expression, evaluates it against args, and reduces the
// result to a boolean: true when the magnitude of the value exceeds the
// epsilon threshold. NaN is never greater than the threshold, so a NaN
// result is false rather than an error. On any failure the boolean is false
// and the error is one of *ParseError, *FuncError, *DepthError, or
// *VarError.
func Evaluate(text string, args []float64, opts ...Option) (bool, error) {
	e, err := Parse(text, opts...)
	if err != nil {
		return false, err
	}
	return e.Truth(args, opts...)
}

// Eval evaluates the expression against args and returns the numeric result.
// The only evaluation failure is a *VarError from a variable whose index is
// outside args; args is never written to.
func (e *Expr) Eval(args []float64) (float64, error) {
	return e.n.eval(args)
}

// Truth evaluates the expression against args and applies the epsilon
// magnitude test. Truth honors the Epsilon option and ignores MaxDepth.
func (e *Expr) Truth(args []float64, opts ...Option) (bool, error) {
	c := defaults().apply(opts)
	v, err := e.n.eval(args)
	if err != nil {
		return false, err
	}
	return math.Abs(v) > c.eps, nil
}

// eval computes the node's value. The first failing sub-evaluation
// short-circuits every enclosing one.
func (n *node) eval(args []float64) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeVar:
		if n.index >= uint64(len(args)) {
			return 0, &VarError{Token: n.tok, Index: n.index, Args: len(args)}
		}
		return args[n.index], nil
	case nodeCall1:
		x, err := n.first.eval(args)
		if err != nil {
			return 0, err
		}
		return n.fn1(x), nil
	case nodeCall2:
		x, err := n.first.eval(args)
		if err != nil {
			return 0, err
		}
		y, err := n.second.eval(args)
		if err != nil {
			return 0, err
		}
		return n.fn2(x, y), nil
	case nodeNot:
		x, err := n.first.eval(args)
		if err != nil {
			return 0, err
		}
		if x == 0 {
			return 1, nil
		}
		return 0, nil
	case nodeCompl:
		x, err := n.first.eval(args)
		if err != nil {
			return 0, err
		}
		return float64(^truncInt64(x)), nil
	case nodeChain:
		x, err := n.first.eval(args)
		if err != nil {
			return 0, err
		}
		for _, t := range n.terms {
			y, err := t.x.eval(args)
			if err != nil {
				return 0, err
			}
			x = t.op.apply(x, y)
		}
		return x, nil
	}
	panic("mathex: invalid AST node")
}

// apply computes x op y. Relational and logical results are 1 or 0; bitwise
// and logical operators work on int64 truncations of their operands.
func (op opKind) apply(x, y float64) float64 {
	switch op {
	case opLogOr:
		return b2f(x != 0 || y != 0)
	case opLogAnd:
		return b2f(x != 0 && y != 0)
	case opBitOr:
		return float64(truncInt64(x) | truncInt64(y))
	case opBitXor:
		return float64(truncInt64(x) ^ truncInt64(y))
	case opBitAnd:
		return float64(truncInt64(x) & truncInt64(y))
	case opEq:
		return b2f(x == y)
	case opNe:
		return b2f(x != y)
	case opLt:
		return b2f(x < y)
	case opGt:
		return b2f(x > y)
	case opLe:
		return b2f(x <= y)
	case opGe:
		return b2f(x >= y)
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	case opDiv:
		return x / y
	case opRem:
		// Sign follows the dividend.
		return math.Mod(x, y)
	}
	panic("mathex: invalid operator")
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// truncInt64 converts a float64 to int64 by truncation toward zero, the
// conversion the bitwise and logical operators use. Go leaves out-of-range
// conversions implementation-defined, so NaN maps to 0 and magnitudes beyond
// the int64 range saturate, keeping results deterministic across platforms.
func truncInt64(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= 1<<63:
		return math.MaxInt64
	case x <= -(1 << 63):
		return math.MinInt64
	}
	return int64(x)
}
