package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newWorkerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "worker",
		Short:  "Manage worker processes",
		Hidden: true,
	}

	cmd.AddCommand(c.newWorkerServeCmd())

	return cmd
}

func (c *CLI) newWorkerServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "serve",
		Short:  "Answer work requests on stdin/stdout (internal use)",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idleTimeout, _ := cmd.Flags().GetDuration("idle-timeout")
			return c.app.ServeWorker(cmd.Context(), idleTimeout)
		},
	}
	cmd.Flags().Duration("idle-timeout", 3*time.Minute, "Shut down after this long without work (0 disables)")
	return cmd
}
