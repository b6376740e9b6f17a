package rpn

// Stack is the calculator's operand stack. The zero value is an empty stack
// ready to use. Raw operators receive the stack directly and may push and pop
// freely; every pop is guarded, so underflow is always detectable.
type Stack []float64

// Push adds v to the top of the stack.
func (s *Stack) Push(v float64) {
	*s = append(*s, v)
}

// Pop removes and returns the top of the stack. The second result is false if
// the stack is empty, in which case the stack is unchanged.
func (s *Stack) Pop() (float64, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v, true
}

// PopN removes the top n values and returns them in top-to-bottom order. If
// fewer than n values are present, PopN returns false and leaves the stack
// untouched; it never pops partially.
func (s *Stack) PopN(n int) ([]float64, bool) {
	if len(*s) < n {
		return nil, false
	}
	args := make([]float64, n)
	for i := 0; i < n; i++ {
		args[i] = (*s)[len(*s)-1-i]
	}
	*s = (*s)[:len(*s)-n]
	return args, true
}

// Top returns the top of the stack without removing it. The second result is
// false if the stack is empty.
func (s *Stack) Top() (float64, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	return (*s)[len(*s)-1], true
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return len(*s)
}

// Clear removes every value from the stack.
func (s *Stack) Clear() {
	*s = (*s)[:0]
}
