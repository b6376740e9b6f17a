// Package repl implements the interactive read-evaluate-print loop around an
// rpn.Calculator. The calculator's stack persists across lines; after each
// successful line the loop prints the new top of the stack.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/zephyrtronium/rpn"
)

// QuitSymbol is the operator symbol the loop binds to quitting.
const QuitSymbol = "q"

// Config configures a loop. In, Out, and Err are injectable for testing; Err
// defaults to Out when nil.
type Config struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// Format is the fmt verb used to print results. Default "%g".
	Format string
	// Color enables styled output.
	Color bool
}

// Operators builds the operator set the loop evaluates with: the arithmetic
// defaults merged with the math and stack operators, and QuitSymbol bound to
// a quit operator.
func Operators() rpn.Registry {
	ops := rpn.DefaultOperators()
	ops.Merge(rpn.MathOperators())
	ops.Merge(rpn.StackOperators())
	ops.Insert(QuitSymbol, rpn.Quit())
	return ops
}

// Run reads lines from cfg.In until the input ends or a line evaluates to
// quit. Each successful line prints the top of the stack to cfg.Out; a failed
// line reports the failure to cfg.Err and leaves the loop running, since the
// stack is still intact up to the failing token. Quitting is not an error.
func Run(cfg Config) error {
	if cfg.Format == "" {
		cfg.Format = "%g"
	}
	if cfg.Err == nil {
		cfg.Err = cfg.Out
	}
	calc := rpn.NewWithOperators(Operators())
	sc := bufio.NewScanner(cfg.In)
	for sc.Scan() {
		err := calc.Evaluate(sc.Text())
		switch {
		case errors.Is(err, rpn.ErrQuit):
			return nil
		case err != nil:
			fmt.Fprintln(cfg.Err, renderError(cfg.Color, err))
		default:
			top, err := calc.Top()
			if err != nil {
				// Valid line, empty stack (e.g. "clear"). Nothing to show.
				continue
			}
			fmt.Fprintln(cfg.Out, renderResult(cfg.Color, fmt.Sprintf(cfg.Format, top)))
		}
	}
	return sc.Err()
}
