package mathex

import (
	"math"
	"sort"
)

// decodeVar returns the argument index a variable token encodes. Each letter
// is one nibble, A=0 through P=15, packed two per byte with the first letter
// in the low nibble of byte 0 and bytes in little-endian order, so "B" is 1,
// "AB" is 16, and an odd-length token leaves the final high nibble zero.
//
// A token longer than sixteen letters encodes more than 64 bits and so cannot
// address any argument vector; decode saturates it to MaxUint64 and leaves
// the rejection to the bounds check, keeping decode total.
func decodeVar(tok string) uint64 {
	if len(tok) > 16 {
		return math.MaxUint64
	}
	var x uint64
	for i := 0; i < len(tok); i++ {
		x |= uint64(tok[i]-'A') << (4 * uint(i))
	}
	return x
}

// Vars returns the distinct variable tokens appearing in the expression,
// sorted. An expression with no variables returns nil.
func (e *Expr) Vars() []string {
	seen := make(map[string]bool)
	e.n.walk(func(n *node) {
		if n.kind == nodeVar {
			seen[n.tok] = true
		}
	})
	if len(seen) == 0 {
		return nil
	}
	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

// MinArgs returns the smallest argument count that satisfies every variable
// reference in the expression, which is zero when there are none.
func (e *Expr) MinArgs() uint64 {
	var min uint64
	e.n.walk(func(n *node) {
		if n.kind != nodeVar {
			return
		}
		c := n.index + 1
		if c == 0 {
			// Saturated index; no finite vector satisfies it.
			c = math.MaxUint64
		}
		if c > min {
			min = c
		}
	})
	return min
}
