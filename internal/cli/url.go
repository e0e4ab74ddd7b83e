package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/birbparty/perch/sdk"
)

type urlResult struct {
	Endpoint string `json:"endpoint"`
	URL      string `json:"url"`
}

// NewURLCommand creates the url command. It only prints the request URL
// and never contacts the instance.
func NewURLCommand(rootOpts *RootOptions) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "url <method> <path> [key=value...]",
		Short: "Print the request URL for an endpoint",
		Example: `  perchctl url GET post/list sort=Hot page=2
  perchctl url --list`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newPrinter(cmd.OutOrStdout(), rootOpts.JSON)
			if list {
				eps := sdk.Endpoints()
				names := make([]string, 0, len(eps))
				for _, ep := range eps {
					names = append(names, ep.String())
				}
				return out.emit(names, func() {
					for _, n := range names {
						out.println(n)
					}
				})
			}

			method := strings.ToUpper(args[0])
			path := strings.Trim(args[1], "/")
			ep, ok := sdk.LookupEndpoint(method, path)
			if !ok {
				return NewExitError(ExitCommandError, fmt.Sprintf("unknown endpoint %s %s", method, path))
			}

			params := url.Values{}
			for _, kv := range args[2:] {
				k, v, found := strings.Cut(kv, "=")
				if !found || k == "" {
					return NewExitError(ExitCommandError, fmt.Sprintf("invalid parameter %q: want key=value", kv))
				}
				params.Add(k, v)
			}

			d, err := rootOpts.details()
			if err != nil {
				return err
			}

			res := urlResult{
				Endpoint: ep.String(),
				URL:      sdk.BuildURL(d, ep, nil) + params.Encode(),
			}
			return out.emit(res, func() {
				out.println(res.URL)
			})
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list every known endpoint")

	return cmd
}
