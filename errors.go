package mathex

import "strconv"

// ParseError is an error describing expression text the grammar rejected.
type ParseError struct {
	// Ln and Col locate the failure, counting from 1.
	Ln, Col int
	// Msg is the parser's description of the failure.
	Msg string
}

func (err *ParseError) Error() string {
	return strconv.Itoa(err.Ln) + ":" + strconv.Itoa(err.Col) + ": " + err.Msg
}

// Pos returns the column of the failure.
func (err *ParseError) Pos() int {
	return err.Col
}

// VarError is an error from a variable whose decoded index has no entry in
// the argument vector.
type VarError struct {
	// Token is the variable as written.
	Token string
	// Index is the argument index the token decodes to.
	Index uint64
	// Args is the length of the argument vector.
	Args int
}

func (err *VarError) Error() string {
	return "variable " + strconv.Quote(err.Token) + " is argument " +
		strconv.FormatUint(err.Index, 10) + " but only " +
		strconv.Itoa(err.Args) + " arguments were given"
}

// FuncError is an error from a call site naming a function that is not in
// the registry at that arity.
type FuncError struct {
	// Name is the function name as written.
	Name string
	// Arity is the number of arguments at the call site.
	Arity int
}

func (err *FuncError) Error() string {
	return "unknown function " + err.Name + " taking " +
		strconv.Itoa(err.Arity) + " arguments"
}

// DepthError is an error from an expression nested more deeply than the
// configured limit allows.
type DepthError struct {
	// Depth is the nesting depth of the expression.
	Depth int
	// Limit is the configured maximum.
	Limit int
}

func (err *DepthError) Error() string {
	return "expression too complex: nesting depth " + strconv.Itoa(err.Depth) +
		" exceeds limit " + strconv.Itoa(err.Limit)
}

var (
	_ error = (*ParseError)(nil)
	_ error = (*VarError)(nil)
	_ error = (*FuncError)(nil)
	_ error = (*DepthError)(nil)
)
