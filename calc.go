package rpn

import (
	"errors"
	"strconv"
	"strings"
)

// Calculator evaluates lines of RPN input against a persistent stack. It is
// not safe to use a Calculator concurrently; concurrent sessions should each
// own their own instance, which share nothing.
type Calculator struct {
	stack Stack
	ops   Registry
}

// New creates a calculator with an empty stack and the default arithmetic
// operators.
func New() *Calculator {
	return &Calculator{ops: DefaultOperators()}
}

// NewWithOperators creates a calculator with an empty stack and the given
// operators, which may extend or entirely replace the defaults. The registry
// is cloned; mutating ops afterward does not affect the calculator.
func NewWithOperators(ops Registry) *Calculator {
	return &Calculator{ops: ops.Clone()}
}

// Insert binds op to symbol in this calculator's registry, replacing any
// existing binding.
func (c *Calculator) Insert(symbol string, op Operator) {
	c.ops.Insert(symbol, op)
}

// Operators returns the calculator's registry. Mutating it changes which
// symbols this calculator recognizes, and no other's.
func (c *Calculator) Operators() Registry {
	return c.ops
}

// Top returns the value on top of the stack without removing it. It fails
// with an EmptyStackError if the stack is empty.
func (c *Calculator) Top() (float64, error) {
	v, ok := c.stack.Top()
	if !ok {
		return 0, &EmptyStackError{}
	}
	return v, nil
}

// Evaluate splits line on whitespace and processes each token in order. A
// token matching a registered symbol invokes that operator; any other token
// is parsed as a float64 and pushed, or fails with a ParseError if it cannot
// be. Empty or whitespace-only input is a successful no-op.
//
// Processing stops at the first failing token. Tokens already processed keep
// their effect on the stack, and the failing token leaves none, so the stack
// is always in a consistent, queryable state afterward. Operator failures,
// including ErrQuit from a quit operator, propagate unchanged.
func (c *Calculator) Evaluate(line string) error {
	for _, tok := range strings.Fields(line) {
		if err := c.token(tok); err != nil {
			return err
		}
	}
	return nil
}

func (c *Calculator) token(tok string) error {
	if op, ok := c.ops.Lookup(tok); ok {
		err := op.Apply(&c.stack)
		var operr *OperandError
		if errors.As(err, &operr) && operr.Op == "" {
			operr.Op = tok
		}
		return err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return &ParseError{Token: tok, Err: err}
	}
	c.stack.Push(v)
	return nil
}
