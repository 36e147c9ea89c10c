// Package mathex evaluates arithmetic and logical expressions against a
// vector of numeric arguments and reduces the result to a boolean.
//
// Expressions name their arguments positionally with letters drawn from the
// sixteen-symbol alphabet A through P. Each letter is one hex digit, packed
// low nibble first: "A" is argument 0, "B" is argument 1, "P" is argument 15,
// "AB" is argument 16. All arithmetic is IEEE-754 float64; bitwise operators
// truncate their operands to 64-bit integers first. The final value is true
// when its magnitude exceeds a small tolerance, so "max(1,!2)" is TRUE and
// "2-2" is FALSE.
//
// Parsing an expression once with Parse lets you evaluate it for many
// argument vectors, or Evaluate does both in one call.
package mathex
