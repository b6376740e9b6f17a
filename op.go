package rpn

import "sort"

// Operator is a named transformation over the calculator's stack. An operator
// either succeeds, leaving its full effect on the stack, or fails, leaving
// the stack exactly as it found it. Operators built with FixedArity (and its
// Binary, Unary, and Nullary shorthands) get that all-or-nothing behavior for
// free; operators built with RawFunc are responsible for it themselves.
type Operator interface {
	// Apply mutates the stack. The calculator treats any error as fatal to
	// the current line and propagates it unchanged, except that it fills in
	// the operator's symbol on an OperandError.
	Apply(st *Stack) error
}

type fixed struct {
	n int
	f func(args []float64) float64
}

func (op fixed) Apply(st *Stack) error {
	args, ok := st.PopN(op.n)
	if !ok {
		return &OperandError{Want: op.n, Have: st.Len()}
	}
	st.Push(op.f(args))
	return nil
}

// FixedArity wraps a function of n operands into an Operator. The operator
// pops n values, passes them to f in top-to-bottom order, and pushes f's
// result. If fewer than n values are on the stack, it fails with an
// OperandError without popping anything.
func FixedArity(n int, f func(args []float64) float64) Operator {
	return fixed{n, f}
}

// Binary wraps a function of two operands into an Operator. x is the value
// second from the top and y is the top, so that "6 2 -" computes 6 - 2.
func Binary(f func(x, y float64) float64) Operator {
	return fixed{2, func(args []float64) float64 { return f(args[1], args[0]) }}
}

// Unary wraps a function of one operand, the top of the stack, into an
// Operator.
func Unary(f func(x float64) float64) Operator {
	return fixed{1, func(args []float64) float64 { return f(args[0]) }}
}

// Nullary wraps a function of no operands, generally one which produces a
// constant, into an Operator that pushes f's result.
func Nullary(f func() float64) Operator {
	return fixed{0, func([]float64) float64 { return f() }}
}

type raw func(st *Stack) error

func (op raw) Apply(st *Stack) error {
	return op(st)
}

// RawFunc wraps a function with direct stack access into an Operator. The
// calculator does not validate arity for raw operators; f decides what to pop
// and push and is responsible for leaving the stack untouched when it fails.
func RawFunc(f func(st *Stack) error) Operator {
	return raw(f)
}

// Quit returns an operator that always fails with ErrQuit and never touches
// the stack. Register it under a symbol of your choice to let input request
// the end of a read loop.
func Quit() Operator {
	return raw(func(*Stack) error { return ErrQuit })
}

// Registry maps operator symbols to operators. Symbols are case-sensitive
// and must not contain whitespace, or they can never match a token.
type Registry map[string]Operator

// Insert binds op to symbol, replacing any existing binding.
func (r Registry) Insert(symbol string, op Operator) {
	r[symbol] = op
}

// Merge copies every binding from other into r. Bindings in other win on
// conflict.
func (r Registry) Merge(other Registry) {
	for symbol, op := range other {
		r[symbol] = op
	}
}

// Lookup returns the operator bound to symbol, if any.
func (r Registry) Lookup(symbol string) (Operator, bool) {
	op, ok := r[symbol]
	return op, ok
}

// Clone returns a copy of r. The operators themselves are shared; they are
// stateless values.
func (r Registry) Clone() Registry {
	n := make(Registry, len(r))
	for symbol, op := range r {
		n[symbol] = op
	}
	return n
}

// Symbols returns the registered symbols in sorted order.
func (r Registry) Symbols() []string {
	v := make([]string, 0, len(r))
	for symbol := range r {
		v = append(v, symbol)
	}
	sort.Strings(v)
	return v
}

// DefaultOperators returns a registry holding the four arithmetic operators
// "+", "-", "*", and "/". Each pops two operands and computes second-from-top
// OP top, so "6 2 -" leaves 4, not -4. Division follows IEEE semantics;
// dividing by zero produces an infinity or NaN rather than an error.
//
// The result is freshly built on every call, so it can be extended freely
// before constructing a calculator with it.
func DefaultOperators() Registry {
	return Registry{
		"+": Binary(func(x, y float64) float64 { return x + y }),
		"-": Binary(func(x, y float64) float64 { return x - y }),
		"*": Binary(func(x, y float64) float64 { return x * y }),
		"/": Binary(func(x, y float64) float64 { return x / y }),
	}
}
