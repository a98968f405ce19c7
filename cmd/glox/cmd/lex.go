package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mjhibbs/glox/internal/errors"
	"github.com/mjhibbs/glox/internal/lexer"
	"github.com/spf13/cobra"
)

var lexExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize source and print the resulting tokens",
	Long: `Lex runs only the scanner stage and prints one line per token, which
is useful for inspecting how a snippet tokenizes without running it.

If no file is given and -e isn't used, source is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "tokenize inline source instead of reading from a file")
}

func runLex(_ *cobra.Command, args []string) error {
	source, err := readSource(lexExpr, args)
	if err != nil {
		return &ExitError{Code: 64, Err: err}
	}

	reporter := errors.New(diagnosticsWriter())
	sc := lexer.New(source, reporter)
	for _, tok := range sc.ScanTokens() {
		fmt.Println(tok.String())
	}

	if reporter.HadError() {
		return &ExitError{Code: 65, Err: fmt.Errorf("lexing failed")}
	}
	return nil
}

// readSource resolves the -e flag, a single file argument, or stdin, in
// that order of precedence.
func readSource(inline string, args []string) (string, error) {
	switch {
	case inline != "":
		return inline, nil
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(content), nil
	default:
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
}
