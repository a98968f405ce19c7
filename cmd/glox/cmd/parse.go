package cmd

import (
	"fmt"
	"os"

	"github.com/mjhibbs/glox/internal/ast"
	"github.com/mjhibbs/glox/internal/errors"
	"github.com/mjhibbs/glox/internal/lexer"
	"github.com/mjhibbs/glox/internal/parser"
	"github.com/spf13/cobra"
)

var parseExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source and print the resulting syntax tree",
	Long: `Parse runs the scanner and parser stages and prints the parsed
statements as parenthesized s-expressions, without resolving or running
them.

If no file is given and -e isn't used, source is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline source instead of reading from a file")
}

func runParse(_ *cobra.Command, args []string) error {
	source, err := readSource(parseExpr, args)
	if err != nil {
		return &ExitError{Code: 64, Err: err}
	}

	reporter := errors.New(diagnosticsWriter())
	sc := lexer.New(source, reporter)
	tokens := sc.ScanTokens()
	if reporter.HadError() {
		return &ExitError{Code: 65, Err: fmt.Errorf("lexing failed")}
	}

	p := parser.New(tokens, reporter)
	stmts := p.Parse()
	if reporter.HadError() {
		return &ExitError{Code: 65, Err: fmt.Errorf("parsing failed")}
	}

	fmt.Println(ast.PrintStmts(stmts))
	return nil
}
