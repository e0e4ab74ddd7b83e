package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/birbparty/perch/sdk"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		kind string
		page int32
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search posts, comments, communities and users",
		Example: `  perchctl search golang
  perchctl search "release notes" --type Posts --page 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := sdk.Search{Q: args[0]}
			if form.Q == "" {
				return NewExitError(ExitCommandError, "query must not be empty")
			}
			if kind != "" {
				t, ok := sdk.ParseSearchType(kind)
				if !ok {
					return NewExitError(ExitCommandError, fmt.Sprintf("unknown search type %q", kind))
				}
				form.Type = &t
			}
			if page > 0 {
				form.Page = &page
			}

			return rootOpts.withClient(cmd, func(ctx context.Context, c *sdk.Client) error {
				resp, err := c.Search(ctx, c.BuildURL(sdk.GetOps().Search, form))
				if err != nil {
					return err
				}
				out := newPrinter(cmd.OutOrStdout(), rootOpts.JSON)
				return out.emit(resp, func() {
					printSearch(out, resp)
				})
			})
		},
	}

	cmd.Flags().StringVar(&kind, "type", "", "All, Comments, Posts, Communities, Users or Url")
	cmd.Flags().Int32Var(&page, "page", 0, "page number")

	return cmd
}

func printSearch(out *printer, resp *sdk.SearchResponse) {
	total := len(resp.Posts) + len(resp.Comments) + len(resp.Communities) + len(resp.Users)
	if total == 0 {
		out.println("no results")
		return
	}

	if len(resp.Posts) > 0 {
		out.printf("Posts (%d)\n", len(resp.Posts))
		for _, pv := range resp.Posts {
			printPostLine(out, pv)
		}
	}
	if len(resp.Communities) > 0 {
		out.printf("Communities (%d)\n", len(resp.Communities))
		for _, cv := range resp.Communities {
			out.printf("  %-22s %9s subscribers\n", "c/"+cv.Community.Name, out.num(cv.Counts.Subscribers))
		}
	}
	if len(resp.Users) > 0 {
		out.printf("Users (%d)\n", len(resp.Users))
		for _, pv := range resp.Users {
			out.printf("  u/%s\n", pv.Person.Name)
		}
	}
	if len(resp.Comments) > 0 {
		out.printf("Comments (%d)\n", len(resp.Comments))
		for _, cv := range resp.Comments {
			out.printf("  u/%s on %q: %s\n", cv.Creator.Name, cv.Post.Name, firstLine(cv.Comment.Content))
		}
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
