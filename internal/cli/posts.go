package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/birbparty/perch/sdk"
)

// NewPostsCommand creates the posts command.
func NewPostsCommand(rootOpts *RootOptions) *cobra.Command {
	var page int32

	cmd := &cobra.Command{
		Use:   "posts [source]",
		Short: "List posts for home, c/<community> or u/<user>",
		Example: `  perchctl posts
  perchctl posts c/golang --page 2
  perchctl posts u/alice`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := "home"
			if len(args) == 1 {
				raw = args[0]
			}
			src, err := sdk.ParseSource(raw)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid source", err)
			}
			if page < 0 {
				return NewExitError(ExitCommandError, "--page must not be negative")
			}

			return rootOpts.withClient(cmd, func(ctx context.Context, c *sdk.Client) error {
				posts, err := c.LoadFeed(ctx, src, page)
				if err != nil {
					return err
				}
				out := newPrinter(cmd.OutOrStdout(), rootOpts.JSON)
				return out.emit(posts, func() {
					if len(posts) == 0 {
						out.println("no posts")
						return
					}
					for _, pv := range posts {
						printPostLine(out, pv)
					}
				})
			})
		},
	}

	cmd.Flags().Int32Var(&page, "page", 0, "page number, 0 for the server default")

	return cmd
}

// NewPostCommand creates the post command.
func NewPostCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post <id>",
		Short: "Show one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return rootOpts.withClient(cmd, func(ctx context.Context, c *sdk.Client) error {
				resp, err := c.GetPost(ctx, c.BuildURL(sdk.GetOps().Post, sdk.GetPost{ID: &id}))
				if err != nil {
					return err
				}
				out := newPrinter(cmd.OutOrStdout(), rootOpts.JSON)
				return out.emit(resp, func() {
					pv := resp.PostView
					out.printf("%s\n", pv.Post.Name)
					out.printf("c/%s by u/%s, %d points, %d comments\n",
						pv.Community.Name, pv.Creator.Name, deref(pv.Counts.Score), deref(pv.Counts.Comments))
					if url := deref(pv.Post.URL); url != "" {
						out.printf("%s\n", url)
					}
					if body := deref(pv.Post.Body); body != "" {
						out.println("")
						out.println(body)
					}
				})
			})
		},
	}

	return cmd
}

// NewCommentsCommand creates the comments command.
func NewCommentsCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		sort     string
		maxDepth int32
	)

	cmd := &cobra.Command{
		Use:   "comments <post-id>",
		Short: "Show the comment tree of a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			form := sdk.GetComments{PostID: &id}
			if sort != "" {
				s, ok := sdk.ParseCommentSortType(sort)
				if !ok {
					return NewExitError(ExitCommandError, fmt.Sprintf("unknown comment sort %q", sort))
				}
				form.Sort = &s
			}
			if maxDepth > 0 {
				form.MaxDepth = &maxDepth
			}

			return rootOpts.withClient(cmd, func(ctx context.Context, c *sdk.Client) error {
				resp, err := c.GetComments(ctx, c.BuildURL(sdk.GetOps().CommentList, form))
				if err != nil {
					return err
				}
				out := newPrinter(cmd.OutOrStdout(), rootOpts.JSON)
				return out.emit(resp, func() {
					if len(resp.Comments) == 0 {
						out.println("no comments")
						return
					}
					for _, cv := range resp.Comments {
						indent := strings.Repeat("  ", commentDepth(cv.Comment.Path))
						out.printf("%su/%s (%d)\n", indent, cv.Creator.Name, cv.Counts.Score)
						for _, line := range strings.Split(cv.Comment.Content, "\n") {
							out.printf("%s  %s\n", indent, line)
						}
					}
				})
			})
		},
	}

	cmd.Flags().StringVar(&sort, "sort", "", "Hot, Top, New or Old")
	cmd.Flags().Int32Var(&maxDepth, "max-depth", 0, "maximum reply depth")

	return cmd
}

func printPostLine(out *printer, pv sdk.PostView) {
	out.printf("%7s  %s\n", out.num(deref(pv.Counts.Score)), pv.Post.Name)
	out.printf("         #%s c/%s by u/%s, %d comments\n",
		strconv.Itoa(int(pv.Post.ID)), pv.Community.Name, pv.Creator.Name, deref(pv.Counts.Comments))
}

// commentDepth is the nesting level encoded in a comment path such as
// "0.10.11", where the leading 0 is the root.
func commentDepth(path string) int {
	n := strings.Count(path, ".")
	if n < 1 {
		return 0
	}
	return n - 1
}

func parseID(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n < 1 {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid id %q: must be a positive integer", s))
	}
	return int32(n), nil
}
