package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set by build flags).
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// diagnosticsToStderr redirects the Reporter's sink to stderr. stdout is
// the historical default (diagnostics interleave with `print` output);
// this flag lets a caller override that without changing the default.
var diagnosticsToStderr bool

var rootCmd = &cobra.Command{
	Use:   "glox",
	Short: "A tree-walking interpreter for the Language",
	Long: `glox is a tree-walking interpreter for a small, dynamically-typed,
class-based scripting language with C-like syntax, closures, and
single-inheritance classes.

Run a script, a one-off expression, or start an interactive prompt with
'glox run'. 'glox lex' and 'glox parse' expose the earlier pipeline
stages for debugging.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&diagnosticsToStderr, "diagnostics-stderr", false,
		"send diagnostics to stderr instead of the historical stdout default")
}

// diagnosticsWriter returns the sink the Reporter should write to, per the
// --diagnostics-stderr flag.
func diagnosticsWriter() io.Writer {
	if diagnosticsToStderr {
		return os.Stderr
	}
	return os.Stdout
}
