package mathex

import (
	peg "github.com/yhirose/go-peg"
)

// DefaultMaxDepth is the nesting depth limit applied when no MaxDepth option
// is given.
const DefaultMaxDepth = 256

// Expr is a parsed expression ready for evaluation. An Expr is immutable, so
// it is safe to evaluate concurrently as long as each call's argument vector
// is not mutated by its owner.
type Expr struct {
	n *node
}

// Parse compiles expression text into an Expr. Malformed text yields a
// *ParseError, a call to a name outside the function registry a *FuncError,
// and nesting beyond the configured limit a *DepthError. Parse honors the
// MaxDepth option and ignores Epsilon.
func Parse(text string, opts ...Option) (*Expr, error) {
	c := defaults().apply(opts)
	// Guard before the engine runs: its recursion is the stack at risk.
	if d := nestingDepth(text); d > c.depth {
		return nil, &DepthError{Depth: d, Limit: c.depth}
	}
	v, err := parser.ParseAndGetValue(text, nil)
	if err != nil {
		return nil, parseError(err)
	}
	n := v.(*node)
	if err := n.resolve(); err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// parseError converts an engine failure into a *ParseError.
func parseError(err error) error {
	if e, ok := err.(*peg.Error); ok && len(e.Details) > 0 {
		d := e.Details[0]
		return &ParseError{Ln: d.Ln, Col: d.Col, Msg: d.Msg}
	}
	return &ParseError{Ln: 1, Col: 1, Msg: err.Error()}
}

// nestingDepth estimates the evaluation depth of text before parsing it:
// parenthesis nesting plus the longest prefix run of unary operators, the two
// grammar forms that recurse per character. "!=" is a binary token, not a
// unary prefix.
func nestingDepth(text string) int {
	depth, max, run := 0, 0, 0
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '(':
			depth++
			run = 0
		case ')':
			if depth > 0 {
				depth--
			}
		case '!', '~':
			if c == '!' && i+1 < len(text) && text[i+1] == '=' {
				i++
				run = 0
				continue
			}
			run++
		case ' ', '\t', '\r', '\n':
			// A run of unary operators survives whitespace.
		default:
			run = 0
		}
		if depth+run > max {
			max = depth + run
		}
	}
	return max
}
