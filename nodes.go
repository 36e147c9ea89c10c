package mathex

// node is a node in the abstract syntax tree of an expression. Kinds and
// operators are fixed when the grammar actions construct the tree, so
// evaluation never dispatches on rule names.
type node struct {
	kind nodeKind

	num   float64 // nodeNum
	tok   string  // nodeVar variable token, nodeCall* function name
	index uint64  // nodeVar decoded argument index

	fn1 func(float64) float64          // nodeCall1, set during resolution
	fn2 func(float64, float64) float64 // nodeCall2, set during resolution

	first  *node  // chain head, unary operand, or first call argument
	second *node  // second call argument
	terms  []term // chain tail
}

// term is one (operator, operand) pair in an operator chain. Folding the
// terms in order makes every binary level left-associative.
type term struct {
	op opKind
	x  *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push num
	nodeVar // push args[index]

	nodeCall1 // apply fn1 to first
	nodeCall2 // apply fn2 to first, second

	nodeNot   // 1 if first is zero, else 0
	nodeCompl // complement of first truncated to int64

	nodeChain // fold terms into first, left to right
)

type opKind int8

const (
	opNone opKind = iota

	opLogOr  // ||
	opLogAnd // &&
	opBitOr  // |
	opBitXor // ^
	opBitAnd // &
	opEq     // ==
	opNe     // !=
	opLt     // <
	opGt     // >
	opLe     // <=
	opGe     // >=
	opAdd    // +
	opSub    // -
	opMul    // *
	opDiv    // /
	opRem    // %
)

// binops maps operator tokens to their kinds, assigned once while the grammar
// actions build the tree.
var binops = map[string]opKind{
	"||": opLogOr,
	"&&": opLogAnd,
	"|":  opBitOr,
	"^":  opBitXor,
	"&":  opBitAnd,
	"==": opEq,
	"!=": opNe,
	"<":  opLt,
	">":  opGt,
	"<=": opLe,
	">=": opGe,
	"+":  opAdd,
	"-":  opSub,
	"*":  opMul,
	"/":  opDiv,
	"%":  opRem,
}

// walk calls f on n and every node beneath it.
func (n *node) walk(f func(*node)) {
	f(n)
	if n.first != nil {
		n.first.walk(f)
	}
	if n.second != nil {
		n.second.walk(f)
	}
	for _, t := range n.terms {
		t.x.walk(f)
	}
}
