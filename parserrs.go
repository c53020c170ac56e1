package calc

import (
	"errors"
	"strconv"
)

// MalformedExpressionError is an error indicating a token sequence that
// does not form a tree, e.g. an empty group or an operator missing an
// operand. It implements InputError.
type MalformedExpressionError struct {
	// Col is the position of the token where the problem was found. It is
	// one past the end of the expression if the expression ended early.
	Col int
	// Reason describes the problem.
	Reason string
}

func (err *MalformedExpressionError) Error() string {
	return errpos(err.Col, "malformed expression: "+err.Reason)
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an input with nothing to
// evaluate: an empty display, a lone "0", or a single number with no
// operator. Callers should treat it as a no-op rather than a failure.
type EmptyExpressionError struct {
	// Input is the expression as given.
	Input string
}

func (err *EmptyExpressionError) Error() string {
	if err.Input == "" {
		return errpos(1, "no expression")
	}
	return errpos(1, "nothing to evaluate in "+strconv.Quote(err.Input))
}

func (err *EmptyExpressionError) Pos() int {
	return 1
}

// IsEmpty reports whether err is or wraps an *EmptyExpressionError.
func IsEmpty(err error) bool {
	var ee *EmptyExpressionError
	return errors.As(err, &ee)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune position of the error in the normalized
	// expression.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*MalformedExpressionError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
