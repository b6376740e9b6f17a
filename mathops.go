package rpn

import "math"

// MathOperators returns a registry of common math operators and constants:
// "neg", "abs", "sqrt", "exp", "ln", "log" (base 10), "sin", "cos", "tan" on
// one operand; "pow" on two, computing second-from-top raised to top; and the
// niladic constants "pi" and "e". All follow IEEE float64 semantics, so an
// out-of-domain argument yields NaN rather than an error.
func MathOperators() Registry {
	return Registry{
		"neg":  Unary(func(x float64) float64 { return -x }),
		"abs":  Unary(math.Abs),
		"sqrt": Unary(math.Sqrt),
		"exp":  Unary(math.Exp),
		"ln":   Unary(math.Log),
		"log":  Unary(math.Log10),
		"sin":  Unary(math.Sin),
		"cos":  Unary(math.Cos),
		"tan":  Unary(math.Tan),
		"pow":  Binary(math.Pow),
		"pi":   Nullary(func() float64 { return math.Pi }),
		"e":    Nullary(func() float64 { return math.E }),
	}
}

// StackOperators returns a registry of stack-manipulation operators: "drop"
// discards the top, "dup" pushes a copy of the top, "swap" exchanges the top
// two values, and "clear" empties the stack. All but "clear" fail with an
// OperandError, without partial mutation, when the stack is too shallow.
func StackOperators() Registry {
	return Registry{
		"drop": RawFunc(func(st *Stack) error {
			if _, ok := st.Pop(); !ok {
				return &OperandError{Want: 1, Have: st.Len()}
			}
			return nil
		}),
		"dup": RawFunc(func(st *Stack) error {
			v, ok := st.Top()
			if !ok {
				return &OperandError{Want: 1, Have: st.Len()}
			}
			st.Push(v)
			return nil
		}),
		"swap": RawFunc(func(st *Stack) error {
			args, ok := st.PopN(2)
			if !ok {
				return &OperandError{Want: 2, Have: st.Len()}
			}
			st.Push(args[0])
			st.Push(args[1])
			return nil
		}),
		"clear": RawFunc(func(st *Stack) error {
			st.Clear()
			return nil
		}),
	}
}
