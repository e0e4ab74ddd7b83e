// Package cli implements perchctl, a command line reader for one Lemmy
// instance.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/birbparty/perch/internal/instance"
	"github.com/birbparty/perch/internal/telemetry"
	"github.com/birbparty/perch/sdk"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	BaseURL    string
	APIVersion string
	Timeout    time.Duration
	JSON       bool

	// Logger receives client diagnostics. It defaults to telemetry.L().
	Logger logrus.FieldLogger
}

// NewRootCommand creates the root command for perchctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "perchctl",
		Short: "perchctl - read a Lemmy instance from the terminal",
		Long: `perchctl reads posts, comments, communities and people from a Lemmy
instance through its HTTP API.

The instance comes from --config, PERCH_INSTANCE_CONFIG or Instance.toml,
unless --base-url names one directly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Timeout <= 0 {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid --timeout %s: must be positive", opts.Timeout))
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "instance details file (.toml, .yaml)")
	cmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url", "", "instance root URL, overrides the details file")
	cmd.PersistentFlags().StringVar(&opts.APIVersion, "api-version", "", "API version segment, e.g. v3")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "request timeout")
	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "print raw JSON responses")

	// Add subcommands
	cmd.AddCommand(NewPostsCommand(opts))
	cmd.AddCommand(NewPostCommand(opts))
	cmd.AddCommand(NewCommentsCommand(opts))
	cmd.AddCommand(NewCommunitiesCommand(opts))
	cmd.AddCommand(NewCommunityCommand(opts))
	cmd.AddCommand(NewUserCommand(opts))
	cmd.AddCommand(NewSiteCommand(opts))
	cmd.AddCommand(NewModlogCommand(opts))
	cmd.AddCommand(NewInstancesCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewURLCommand(opts))
	cmd.AddCommand(NewDriftCommand(opts))

	return cmd
}

// details resolves the instance from the flags. With --base-url and no
// --config the details file is not read at all.
func (o *RootOptions) details() (*instance.Details, error) {
	var (
		d   *instance.Details
		err error
	)
	switch {
	case o.ConfigPath != "":
		d, err = instance.Load(o.ConfigPath)
	case o.BaseURL != "":
		d = &instance.Details{Name: o.BaseURL, URL: o.BaseURL, APIVersion: "v3"}
	default:
		d, err = instance.Default()
	}
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load instance details", err)
	}

	d = d.WithBase(o.BaseURL, o.APIVersion)
	if err := d.Validate(); err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid instance", err)
	}
	return d, nil
}

func (o *RootOptions) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return telemetry.L()
}

// client builds an sdk client for the resolved instance
func (o *RootOptions) client() (*sdk.Client, error) {
	d, err := o.details()
	if err != nil {
		return nil, err
	}

	cfg, err := d.ClientConfig()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid schema overrides", err)
	}

	client, err := sdk.NewClient(cfg.
		WithTimeout(o.Timeout).
		WithLogger(o.logger()).
		WithRoundTripper(telemetry.NewTracingRoundTripper))
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to create client", err)
	}
	return client, nil
}

// withClient runs fn with a fresh client and maps request failures to
// ExitFailure.
func (o *RootOptions) withClient(cmd *cobra.Command, fn func(ctx context.Context, c *sdk.Client) error) error {
	client, err := o.client()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := fn(ctx, client); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return err
		}
		return WrapExitError(ExitFailure, fmt.Sprintf("request failed (%s)", sdk.TypeOf(err)), err)
	}
	return nil
}
