package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/abdul-hamid-achik/minihttp/packages/core/config"
	"github.com/abdul-hamid-achik/minihttp/packages/output"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// NewRootCmd builds a fresh command tree with its own configuration state.
func NewRootCmd() *cobra.Command {
	v := config.NewViper()

	rootCmd := &cobra.Command{
		Use:   "minihttp",
		Short: "A tiny HTTP client for the terminal.",
		Long: `minihttp sends a single GET or POST request and prints the response
status line, headers and body. JSON bodies are pretty-printed and
highlighted, HTML bodies are highlighted, everything else is printed as is.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	cobra.CheckErr(config.BindFlags(v, rootCmd.PersistentFlags()))

	rootCmd.AddCommand(newGetCmd(v))
	rootCmd.AddCommand(newPostCmd(v))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	return rootCmd
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the CLI with args and returns the process exit code. Errors
// are reported on stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	output.NewConsoleRenderer(
		output.WithWriter(stderr),
		output.WithNoColor(!colorEnabled(stderr)),
	).FormatError(err)

	return exitCode(err)
}

// colorEnabled reports whether w is a terminal and fatih/color has not
// disabled color for the process.
func colorEnabled(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
