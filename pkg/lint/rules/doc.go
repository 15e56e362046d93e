// Package rules provides the built-in expression validation rules.
//
// Rules in this package:
//   - EX01: Empty expression
//   - EX02: Character outside the expression alphabet
//   - EX03: Consecutive operators or decimal points
//   - EX04: Literal division by zero
//
// The checks are textual and deliberately coarse. EX03 also rejects a
// unary minus after an operator ("3+-2"), and EX04 cannot see a divisor
// that only becomes zero at runtime ("1/(1-1)").
package rules
