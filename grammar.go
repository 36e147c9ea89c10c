package mathex

import (
	"strconv"

	peg "github.com/yhirose/go-peg"
)

// grammar is the expression syntax, ten precedence levels from loosest to
// tightest binding. Each level is a chain of the next-tighter level, so
// precedence and left-associativity fall out of the rule structure.
const grammar = `
EXPR        <- ORSEQ
ORSEQ       <- ANDSEQ (OROP ANDSEQ)*
ANDSEQ      <- BORSEQ (ANDOP BORSEQ)*
BORSEQ      <- XORSEQ (BOROP XORSEQ)*
XORSEQ      <- BANDSEQ (XOROP BANDSEQ)*
BANDSEQ     <- EQSEQ (BANDOP EQSEQ)*
EQSEQ       <- RELSEQ (EQOP RELSEQ)*
RELSEQ      <- ADDSEQ (RELOP ADDSEQ)*
ADDSEQ      <- MULSEQ (ADDOP MULSEQ)*
MULSEQ      <- PREFIX (MULOP PREFIX)*
PREFIX      <- PREOP PREFIX / ATOM
ATOM        <- CALL2 / CALL1 / NUMBER / VARIABLE / '(' EXPR ')'
CALL2       <- NAME '(' EXPR ',' EXPR ')'
CALL1       <- NAME '(' EXPR ')'
NAME        <- < [a-z] [a-z0-9]* >
NUMBER      <- < [0-9]+ ('.' [0-9]+)? >
VARIABLE    <- < [A-P]+ > ![A-Za-z0-9]
OROP        <- < '||' >
ANDOP       <- < '&&' >
BOROP       <- < '|' > ![|]
XOROP       <- < '^' >
BANDOP      <- < '&' > ![&]
EQOP        <- < '==' > / < '!=' >
RELOP       <- < '<=' > / < '>=' > / < '<' > / < '>' >
ADDOP       <- < [-+] >
MULOP       <- < [*/%] >
PREOP       <- < [!~] >
%whitespace <- [ \t\r\n]*
`

// parser is the compiled grammar, built once at process start and never
// mutated afterward, so it is safe to share across concurrent calls.
var parser = compile()

func compile() *peg.Parser {
	p, err := peg.NewParser(grammar)
	if err != nil {
		panic("mathex: invalid grammar: " + err.Error())
	}
	g := p.Grammar

	// A chain rule passes a lone operand through untouched; otherwise it
	// collects the (operator, operand) pairs for left-to-right folding.
	chain := func(v *peg.Values, d peg.Any) (peg.Any, error) {
		first := v.Vs[0].(*node)
		if len(v.Vs) == 1 {
			return first, nil
		}
		n := &node{kind: nodeChain, first: first}
		for i := 1; i < len(v.Vs); i += 2 {
			op := binops[v.ToStr(i)]
			if op == opNone {
				panic("mathex: unknown operator " + strconv.Quote(v.ToStr(i)))
			}
			n.terms = append(n.terms, term{op: op, x: v.Vs[i+1].(*node)})
		}
		return n, nil
	}
	for _, name := range []string{
		"ORSEQ", "ANDSEQ", "BORSEQ", "XORSEQ", "BANDSEQ",
		"EQSEQ", "RELSEQ", "ADDSEQ", "MULSEQ",
	} {
		g[name].Action = chain
	}

	token := func(v *peg.Values, d peg.Any) (peg.Any, error) {
		return v.Token(), nil
	}
	for _, name := range []string{
		"OROP", "ANDOP", "BOROP", "XOROP", "BANDOP",
		"EQOP", "RELOP", "ADDOP", "MULOP", "PREOP", "NAME",
	} {
		g[name].Action = token
	}

	passthrough := func(v *peg.Values, d peg.Any) (peg.Any, error) {
		return v.Vs[0], nil
	}
	g["EXPR"].Action = passthrough
	g["ATOM"].Action = passthrough

	g["NUMBER"].Action = func(v *peg.Values, d peg.Any) (peg.Any, error) {
		// The token shape is fixed by the grammar; out-of-range literals
		// round to ±Inf, which is a value here, not an error.
		f, _ := strconv.ParseFloat(v.Token(), 64)
		return &node{kind: nodeNum, num: f}, nil
	}
	g["VARIABLE"].Action = func(v *peg.Values, d peg.Any) (peg.Any, error) {
		tok := v.Token()
		return &node{kind: nodeVar, tok: tok, index: decodeVar(tok)}, nil
	}
	g["PREFIX"].Action = func(v *peg.Values, d peg.Any) (peg.Any, error) {
		if len(v.Vs) == 1 {
			return v.Vs[0], nil
		}
		k := nodeNot
		if v.ToStr(0) == "~" {
			k = nodeCompl
		}
		return &node{kind: k, first: v.Vs[1].(*node)}, nil
	}
	g["CALL1"].Action = func(v *peg.Values, d peg.Any) (peg.Any, error) {
		return &node{kind: nodeCall1, tok: v.ToStr(0), first: v.Vs[1].(*node)}, nil
	}
	g["CALL2"].Action = func(v *peg.Values, d peg.Any) (peg.Any, error) {
		return &node{
			kind:   nodeCall2,
			tok:    v.ToStr(0),
			first:  v.Vs[1].(*node),
			second: v.Vs[2].(*node),
		}, nil
	}

	return p
}
