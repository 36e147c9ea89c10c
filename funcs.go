package mathex

import "math"

// The registries are built once at process start and never mutated, so they
// are safe to consult from concurrent parses. Every entry is total over the
// float64 domain: a domain violation produces NaN, which flows through
// evaluation like any other value.

// func1s maps single-argument function names to their implementations.
var func1s = map[string]func(float64) float64{
	"abs":   math.Abs,
	"log":   math.Log,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"asinh": math.Asinh,
	"acosh": math.Acosh,
	"atanh": math.Atanh,
	"ceil":  math.Ceil,
	"floor": math.Floor,
}

// func2s maps double-argument function names to their implementations.
var func2s = map[string]func(float64, float64) float64{
	"max":   math.Max,
	"min":   math.Min,
	"pow":   math.Pow,
	"atan2": math.Atan2,
}

// resolve binds every call site in the tree to its registry entry. The
// bindings happen once, after parsing, so evaluation never consults the
// registry by name.
func (n *node) resolve() error {
	switch n.kind {
	case nodeCall1:
		n.fn1 = func1s[n.tok]
		if n.fn1 == nil {
			return &FuncError{Name: n.tok, Arity: 1}
		}
		return n.first.resolve()
	case nodeCall2:
		n.fn2 = func2s[n.tok]
		if n.fn2 == nil {
			return &FuncError{Name: n.tok, Arity: 2}
		}
		if err := n.first.resolve(); err != nil {
			return err
		}
		return n.second.resolve()
	case nodeNot, nodeCompl:
		return n.first.resolve()
	case nodeChain:
		if err := n.first.resolve(); err != nil {
			return err
		}
		for _, t := range n.terms {
			if err := t.x.resolve(); err != nil {
				return err
			}
		}
	}
	return nil
}
