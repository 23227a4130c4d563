package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tui-counter/internal/app"
	"github.com/grindlemire/go-tui-counter/internal/version"
)

// newRootCommand builds the counter command with its version subcommand.
// A nil open uses the process's terminal.
func newRootCommand(open func() (app.Session, error)) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "counter",
		Short: "Interactive terminal counter.",
		Long: `Displays a counter in a bordered box filling the terminal.

Up arrow increments, Down arrow decrements, q quits.
Settings are read from an optional YAML file and from the
COUNTER_POLL_TIMEOUT, COUNTER_LOG_LEVEL and COUNTER_LOG_FILE
environment variables.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Interrupt and terminate end the loop like q does.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return app.Run(ctx, &app.Options{ConfigPath: configPath, OpenSession: open})
		},
	}

	root.Flags().StringVarP(&configPath, "config", "c", "", "path to configuration file")
	version.AttachCobraVersionCommand(root)

	return root
}

// Execute runs the counter CLI and exits with its status.
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, nil))
}

// run executes the command line and returns the process exit status:
// 0 on a clean quit, 1 on any error.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, open func() (app.Session, error)) int {
	root := newRootCommand(open)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
