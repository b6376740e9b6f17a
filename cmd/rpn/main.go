package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/rpn"
	"github.com/zephyrtronium/rpn/internal/repl"
	"github.com/zephyrtronium/rpn/internal/version"
)

var (
	format  string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "rpn",
	Short: "Interactive Reverse Polish Notation calculator",
	Long: `rpn reads whitespace-separated tokens from standard input and prints the top
of the stack after each line. The stack persists between lines, so an
expression can be entered piecewise. Enter "q" to quit.

Besides the arithmetic operators + - * /, the math operators neg, abs, sqrt,
exp, ln, log, pow, sin, cos, tan and the constants pi and e are available, as
are the stack operators drop, dup, swap, and clear.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.Run(repl.Config{
			In:     cmd.InOrStdin(),
			Out:    cmd.OutOrStdout(),
			Err:    cmd.ErrOrStderr(),
			Format: format,
			Color:  !noColor,
		})
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval <token>...",
	Short: "Evaluate one expression and print the result",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		calc := rpn.NewWithOperators(repl.Operators())
		if err := calc.Evaluate(strings.Join(args, " ")); err != nil {
			if errors.Is(err, rpn.ErrQuit) {
				return nil
			}
			return err
		}
		top, err := calc.Top()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), format+"\n", top)
		return nil
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("rpn %s\n", version.String()))
	rootCmd.PersistentFlags().StringVar(&format, "fmt", "%g", "result formatting verb")

	// Color flag with env var fallback.
	defaultNoColor := os.Getenv("RPN_NO_COLOR") != ""
	rootCmd.Flags().BoolVar(&noColor, "no-color", defaultNoColor, "disable styled output")

	rootCmd.AddCommand(evalCmd)
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
