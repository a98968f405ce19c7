package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mjhibbs/glox/internal/builtins"
	"github.com/mjhibbs/glox/internal/errors"
	"github.com/mjhibbs/glox/internal/interp"
	"github.com/mjhibbs/glox/internal/lexer"
	"github.com/mjhibbs/glox/internal/parser"
	"github.com/mjhibbs/glox/internal/semantic"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [script] [args...]",
	Short: "Run a source file, an inline expression, or start a prompt",
	Long: `Run executes a program in one of three ways:

  glox run script.lox [args...]       run a file, exposing args to _argc/_argv
  glox run -e "print 1+1;" [args...]  run an inline snippet
  glox run                            start an interactive prompt, one line at a time

Exit status is 0 on success, 64 if invoked incorrectly, and 65 if the
source failed to lex, parse, or resolve, or raised an uncaught runtime
error.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline source instead of a file")
}

// runRun dispatches on whether -e was given and whether a script path was
// passed. Anything after the script path (or, with -e, every positional
// arg) is exposed to the program through _argc/_argv, not consumed as
// more scripts.
func runRun(_ *cobra.Command, args []string) error {
	switch {
	case evalExpr != "":
		return runSource(evalExpr, builtins.NewHost(args))
	case len(args) >= 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return &ExitError{Code: 64, Err: err}
		}
		return runSource(string(content), builtins.NewHost(args[1:]))
	default:
		return runPrompt(builtins.NewHost(nil))
	}
}

func runSource(source string, host *builtins.Host) error {
	reporter := errors.New(diagnosticsWriter())
	if runPipeline(source, reporter, host) {
		return nil
	}
	return &ExitError{Code: 65, Err: fmt.Errorf("execution failed")}
}

// runPrompt reads one line at a time, resetting the reporter's error flag
// between lines so a mistake on one line doesn't poison the rest of the
// session.
func runPrompt(host *builtins.Host) error {
	reporter := errors.New(diagnosticsWriter())
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		reporter.Reset()
		runPipeline(scanner.Text(), reporter, host)
		fmt.Print("> ")
	}
	fmt.Println()
	return nil
}

// runPipeline carries source through scan, parse, resolve, and interpret,
// reporting diagnostics through reporter as it goes. It returns false if
// any stage produced an error.
func runPipeline(source string, reporter *errors.Reporter, host *builtins.Host) bool {
	sc := lexer.New(source, reporter)
	tokens := sc.ScanTokens()
	if reporter.HadError() {
		return false
	}

	p := parser.New(tokens, reporter)
	stmts := p.Parse()
	if reporter.HadError() {
		return false
	}

	r := semantic.New(reporter)
	depths := r.Resolve(stmts)
	if reporter.HadError() {
		return false
	}

	i := interp.New(os.Stdout, reporter, host)
	i.SetDepths(depths)
	i.Interpret(stmts)
	return !reporter.HadError()
}
