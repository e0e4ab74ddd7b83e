package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birbparty/perch/sdk"
)

// NewCommunitiesCommand creates the communities command.
func NewCommunitiesCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		page    int32
		limit   int32
		sort    string
		listing string
	)

	cmd := &cobra.Command{
		Use:   "communities",
		Short: "List communities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := sdk.ListCommunities{}
			if page > 0 {
				form.Page = &page
			}
			if limit > 0 {
				form.Limit = &limit
			}
			if sort != "" {
				s, ok := sdk.ParseSortType(sort)
				if !ok {
					return NewExitError(ExitCommandError, fmt.Sprintf("unknown sort %q", sort))
				}
				form.Sort = &s
			}
			if listing != "" {
				l, ok := sdk.ParseListingType(listing)
				if !ok {
					return NewExitError(ExitCommandError, fmt.Sprintf("unknown listing type %q", listing))
				}
				form.Type = &l
			}

			return rootOpts.withClient(cmd, func(ctx context.Context, c *sdk.Client) error {
				resp, err := c.ListCommunities(ctx, c.BuildURL(sdk.GetOps().CommunityList, form))
				if err != nil {
					return err
				}
				out := newPrinter(cmd.OutOrStdout(), rootOpts.JSON)
				return out.emit(resp, func() {
					for _, cv := range resp.Communities {
						out.printf("%-24s %9s subscribers  %s\n", "c/"+cv.Community.Name, out.num(cv.Counts.Subscribers), cv.Community.Title)
					}
				})
			})
		},
	}

	cmd.Flags().Int32Var(&page, "page", 0, "page number")
	cmd.Flags().Int32Var(&limit, "limit", 0, "communities per page")
	cmd.Flags().StringVar(&sort, "sort", "", "sort order, e.g. TopMonth")
	cmd.Flags().StringVar(&listing, "type", "", "All, Local or Subscribed")

	return cmd
}

// NewCommunityCommand creates the community command.
func NewCommunityCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "community <name>",
		Short: "Show a community and its moderators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			return rootOpts.withClient(cmd, func(ctx context.Context, c *sdk.Client) error {
				resp, err := c.GetCommunity(ctx, c.BuildURL(sdk.GetOps().Community, sdk.GetCommunity{Name: &name}))
				if err != nil {
					return err
				}
				out := newPrinter(cmd.OutOrStdout(), rootOpts.JSON)
				return out.emit(resp, func() {
					cv := resp.CommunityView
					out.printf("%s (c/%s)\n", cv.Community.Title, cv.Community.Name)
					out.printf("%d subscribers, %d posts, %d comments, %d active this month\n",
						cv.Counts.Subscribers, cv.Counts.Posts, cv.Counts.Comments, cv.Counts.UsersActiveMonth)
					if desc := deref(cv.Community.Description); desc != "" {
						out.println("")
						out.println(desc)
					}
					if len(resp.Moderators) > 0 {
						out.println("")
						out.println("Moderators:")
						for _, m := range resp.Moderators {
							out.printf("  u/%s\n", m.Moderator.Name)
						}
					}
				})
			})
		},
	}

	return cmd
}

// NewUserCommand creates the user command.
func NewUserCommand(rootOpts *RootOptions) *cobra.Command {
	var page int32

	cmd := &cobra.Command{
		Use:   "user <name>",
		Short: "Show a person with their recent posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := sdk.GetPersonDetails{Username: &args[0]}
			if page > 0 {
				form.Page = &page
			}

			return rootOpts.withClient(cmd, func(ctx context.Context, c *sdk.Client) error {
				resp, err := c.GetPersonDetails(ctx, c.BuildURL(sdk.GetOps().PersonDetails, form))
				if err != nil {
					return err
				}
				out := newPrinter(cmd.OutOrStdout(), rootOpts.JSON)
				return out.emit(resp, func() {
					pv := resp.PersonView
					name := pv.Person.Name
					if dn := deref(pv.Person.DisplayName); dn != "" {
						name = dn + " (u/" + pv.Person.Name + ")"
					} else {
						name = "u/" + name
					}
					out.printf("%s\n", name)
					out.printf("%d posts (%d points), %d comments (%d points)\n",
						pv.Counts.PostCount, pv.Counts.PostScore, pv.Counts.CommentCount, pv.Counts.CommentScore)
					if len(resp.Posts) > 0 {
						out.println("")
						for _, p := range resp.Posts {
							printPostLine(out, p)
						}
					}
				})
			})
		},
	}

	cmd.Flags().Int32Var(&page, "page", 0, "page number")

	return cmd
}
