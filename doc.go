// Package rpn implements an interactive Reverse Polish Notation calculator.
//
// A calculator owns a stack of float64 values which persists across input
// lines. Each line is a sequence of whitespace-separated tokens; a token is
// either a numeric literal, which is pushed, or the symbol of a registered
// operator, which pops its operands from the stack and pushes its result.
// "19 2.14 + 4.5 2 4.3 / - *" leaves 85.2974 on top.
//
// Operators are data, not a fixed set. A Registry maps symbols to Operator
// values, so callers can add arithmetic, stack-manipulation, or control
// operators without touching the engine. DefaultOperators holds the four
// arithmetic operators; MathOperators and StackOperators extend the
// vocabulary; Quit builds an operator which signals the read loop to stop.
package rpn
