package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/birbparty/perch/sdk"
)

// NewSiteCommand creates the site command.
func NewSiteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Show the instance site and its counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withClient(cmd, func(ctx context.Context, c *sdk.Client) error {
				resp, err := c.GetSite(ctx, c.BuildURL(sdk.GetOps().Site, sdk.GetSite{}))
				if err != nil {
					return err
				}
				out := newPrinter(cmd.OutOrStdout(), rootOpts.JSON)
				return out.emit(resp, func() {
					site := resp.SiteView.Site
					counts := resp.SiteView.Counts
					out.printf("%s (Lemmy %s)\n", site.Name, resp.Version)
					if desc := deref(site.Description); desc != "" {
						out.printf("%s\n", desc)
					}
					out.println("")
					out.printf("%12s users\n", out.num(counts.Users))
					out.printf("%12s posts\n", out.num(counts.Posts))
					out.printf("%12s comments\n", out.num(deref(counts.Comments)))
					out.printf("%12s communities\n", out.num(counts.Communities))
					out.printf("%12s active this month\n", out.num(counts.UsersActiveMonth))
					if len(resp.Admins) > 0 {
						admins := make([]string, 0, len(resp.Admins))
						for _, a := range resp.Admins {
							admins = append(admins, "u/"+a.Person.Name)
						}
						out.println("")
						out.printf("Admins: %s\n", strings.Join(admins, ", "))
					}
				})
			})
		},
	}

	return cmd
}

// NewModlogCommand creates the modlog command.
func NewModlogCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		page        int32
		communityID int32
	)

	cmd := &cobra.Command{
		Use:   "modlog",
		Short: "Show recent moderator actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := sdk.GetModlog{}
			if page > 0 {
				form.Page = &page
			}
			if communityID > 0 {
				form.CommunityID = &communityID
			}

			return rootOpts.withClient(cmd, func(ctx context.Context, c *sdk.Client) error {
				resp, err := c.GetModlog(ctx, c.BuildURL(sdk.GetOps().Modlog, form))
				if err != nil {
					return err
				}
				out := newPrinter(cmd.OutOrStdout(), rootOpts.JSON)
				return out.emit(resp, func() {
					entries := modlogEntries(resp)
					if len(entries) == 0 {
						out.println("no moderator actions")
						return
					}
					for _, e := range entries {
						out.printf("%s  %s\n", e.when, e.what)
					}
				})
			})
		},
	}

	cmd.Flags().Int32Var(&page, "page", 0, "page number")
	cmd.Flags().Int32Var(&communityID, "community-id", 0, "only actions in this community")

	return cmd
}

type modlogEntry struct {
	when string
	what string
}

// modlogEntries flattens the post, comment and ban lists into one line per
// action. Lists the CLI does not describe are left to --json.
func modlogEntries(resp *sdk.GetModlogResponse) []modlogEntry {
	var entries []modlogEntry
	withReason := func(s string, reason *string) string {
		if r := deref(reason); r != "" {
			return fmt.Sprintf("%s: %s", s, r)
		}
		return s
	}

	for _, v := range resp.RemovedPosts {
		verb := "removed"
		if !v.ModRemovePost.Removed {
			verb = "restored"
		}
		entries = append(entries, modlogEntry{v.ModRemovePost.When,
			withReason(fmt.Sprintf("%s post %q in c/%s", verb, v.Post.Name, v.Community.Name), v.ModRemovePost.Reason)})
	}
	for _, v := range resp.LockedPosts {
		verb := "locked"
		if !v.ModLockPost.Locked {
			verb = "unlocked"
		}
		entries = append(entries, modlogEntry{v.ModLockPost.When,
			fmt.Sprintf("%s post %q in c/%s", verb, v.Post.Name, v.Community.Name)})
	}
	for _, v := range resp.RemovedComments {
		verb := "removed"
		if !v.ModRemoveComment.Removed {
			verb = "restored"
		}
		entries = append(entries, modlogEntry{v.ModRemoveComment.When,
			withReason(fmt.Sprintf("%s comment by u/%s", verb, v.Commenter.Name), v.ModRemoveComment.Reason)})
	}
	for _, v := range resp.BannedFromCommunity {
		verb := "banned"
		if !v.ModBanFromCommunity.Banned {
			verb = "unbanned"
		}
		entries = append(entries, modlogEntry{v.ModBanFromCommunity.When,
			withReason(fmt.Sprintf("%s u/%s from c/%s", verb, v.BannedPerson.Name, v.Community.Name), v.ModBanFromCommunity.Reason)})
	}
	for _, v := range resp.Banned {
		verb := "banned"
		if !v.ModBan.Banned {
			verb = "unbanned"
		}
		entries = append(entries, modlogEntry{v.ModBan.When,
			withReason(fmt.Sprintf("%s u/%s from the site", verb, v.BannedPerson.Name), v.ModBan.Reason)})
	}
	return entries
}

// NewInstancesCommand creates the instances command.
func NewInstancesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instances",
		Short: "List federated instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withClient(cmd, func(ctx context.Context, c *sdk.Client) error {
				resp, err := c.GetFederatedInstances(ctx, c.BuildURL(sdk.GetOps().FederatedInstances, sdk.GetFederatedInstances{}))
				if err != nil {
					return err
				}
				out := newPrinter(cmd.OutOrStdout(), rootOpts.JSON)
				return out.emit(resp, func() {
					fi := resp.FederatedInstances
					if fi == nil {
						out.println("federation is disabled")
						return
					}
					section := func(title string, list []sdk.Instance) {
						out.printf("%s (%d)\n", title, len(list))
						for _, inst := range list {
							if sw := deref(inst.Software); sw != "" {
								out.printf("  %-32s %s\n", inst.Domain, sw)
							} else {
								out.printf("  %s\n", inst.Domain)
							}
						}
					}
					section("Linked", fi.Linked)
					section("Allowed", fi.Allowed)
					section("Blocked", fi.Blocked)
				})
			})
		},
	}

	return cmd
}
