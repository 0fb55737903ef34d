// Package keycalc implements the core of a keypad calculator.
//
// Input is the string of keys pressed so far: digits, ".", the operators
// "^×÷+-", and parentheses. Validate groups it into tokens, rejecting
// misplaced operators and inserting the implicit multiplications in "2(3)" and
// "(2)(3)". Evaluate converts the tokens to postfix order and computes a
// float64. A "-" is a sign only directly after "(", as in "(-5)×3"; everywhere
// else it is subtraction.
//
// Nothing in the package keeps state between calls. Session layers the
// clear, backspace, and commit keys of a calculator on top, for front ends
// that feed it one keystroke at a time.
//
package keycalc
