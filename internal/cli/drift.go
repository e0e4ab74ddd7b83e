package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/birbparty/perch/internal/drift"
)

// NewDriftCommand creates the drift command group.
func NewDriftCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drift",
		Short: "Inspect schema drift reports",
		Long: `Schema drift reports are published by perch-api whenever a response
from the instance no longer decodes. They live on a NATS JetStream stream
configured through NATS_URL and the DRIFT_* variables.`,
	}

	cmd.AddCommand(newDriftTailCommand(rootOpts))

	return cmd
}

func newDriftTailCommand(rootOpts *RootOptions) *cobra.Command {
	var consumer string

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Print drift reports as they arrive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := drift.NewConfigFromEnv()
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid drift configuration", err)
			}
			if !cfg.Enabled() {
				return NewExitError(ExitCommandError, "NATS_URL is not set")
			}

			client, err := drift.NewClient(cfg)
			if err != nil {
				return WrapExitError(ExitFailure, "failed to connect to NATS", err)
			}
			defer client.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := newPrinter(cmd.OutOrStdout(), rootOpts.JSON)
			err = client.Consume(ctx, consumer, func(_ context.Context, r *drift.Report) error {
				return out.emit(r, func() { printReport(out, r) })
			})
			if err != nil {
				return WrapExitError(ExitFailure, "drift consumer failed", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&consumer, "consumer", "perchctl", "durable consumer name")

	return cmd
}

func printReport(out *printer, r *drift.Report) {
	out.printf("%s  %s  %s\n", r.Timestamp.Format("2006-01-02 15:04:05"), r.Instance, r.Endpoint)
	if r.Field != "" {
		out.printf("  %s.%s: %s\n", r.Type, r.Field, r.Error)
	} else {
		out.printf("  %s: %s\n", r.Type, r.Error)
	}
	if r.Snippet != "" {
		suffix := ""
		if r.Truncated {
			suffix = "..."
		}
		out.printf("  %s%s\n", r.Snippet, suffix)
	}
}
