package rpn

import (
	"errors"
	"strconv"
)

// ErrQuit is the failure a quit operator returns to request that the caller
// stop its read loop. It signals intentional termination, not a problem with
// the input; callers should match it with errors.Is before reporting an
// evaluation error.
var ErrQuit = errors.New("quit")

// ParseError is an error indicating a token that is neither a registered
// operator symbol nor a valid floating-point literal.
type ParseError struct {
	// Token is the token that was not understood.
	Token string
	// Err is the underlying number parsing error, if any.
	Err error
}

func (err *ParseError) Error() string {
	return "cannot parse token " + strconv.Quote(err.Token)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// OperandError is an error indicating that an operator was invoked with fewer
// values on the stack than its arity requires. The stack is never partially
// popped when this error is returned.
type OperandError struct {
	// Op is the symbol of the operator that failed. It is empty when the
	// operator was applied outside of Evaluate.
	Op string
	// Want is the operator's arity.
	Want int
	// Have is the number of values that were on the stack.
	Have int
}

func (err *OperandError) Error() string {
	s := "not enough operands"
	if err.Op != "" {
		s += " for " + strconv.Quote(err.Op)
	}
	return s + ": want " + strconv.Itoa(err.Want) + ", have " + strconv.Itoa(err.Have)
}

// EmptyStackError is an error indicating a read of the top of an empty stack.
type EmptyStackError struct{}

func (*EmptyStackError) Error() string {
	return "empty stack"
}
