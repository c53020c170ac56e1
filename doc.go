// Package calc evaluates the arithmetic you'd type into a pocket calculator.
//
// Input is a display string as a calculator UI accumulates it, one key at a
// time, so it may be unfinished: "(1+2" is evaluated as "(1+2)", "3(4)" is a
// multiplication, and "(−5)" is just "−5". Evaluation repairs the string with
// Normalize, splits it with Tokenize, builds a tree with Build, and walks the
// tree. Results are float64 rounded to 12 decimal places, so "0.1+0.2" is 0.3.
//
// Division by zero and similar irregularities are not errors. They produce
// infinities and NaN, as float64 arithmetic does.
//
// The core keeps no state between calls. A Session remembers the last answer
// for callers that want an "ans" key.
package calc
