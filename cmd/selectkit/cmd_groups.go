package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ruminaider/selectkit/internal/config"
	"github.com/ruminaider/selectkit/internal/selector"
	"github.com/spf13/cobra"
)

var (
	groupsItems   string
	groupsPage    int
	groupsVerbose bool
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Print the group buckets of an items file",
	Long: `Print each group the menu would show with its item count. With --page the
list is windowed the way infinite scroll reveals it, 100 items per page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := config.LoadItems(groupsItems, os.Stdin)
		if err != nil {
			return err
		}

		paged := cmd.Flags().Changed("page")
		if paged && groupsPage < 1 {
			return fmt.Errorf("--page must be at least 1, got %d", groupsPage)
		}
		pager := selector.NewPager(paged)
		pager.Page = groupsPage

		w := cmd.OutOrStdout()
		if err := writeGroups(w, selector.GroupItems(pager.Window(items)), groupsVerbose); err != nil {
			return err
		}
		if paged {
			fmt.Fprintf(w, "\nPage %d of %d (%d items)\n",
				groupsPage, selector.TotalPages(len(items), pager.Size), len(items))
		}
		return nil
	},
}

func writeGroups(w io.Writer, groups []selector.Group, verbose bool) error {
	if len(groups) == 0 {
		_, err := fmt.Fprintln(w, "No items.")
		return err
	}
	for _, g := range groups {
		if _, err := fmt.Fprintf(w, "%s (%d)\n", g.Name, len(g.Items)); err != nil {
			return err
		}
		if !verbose {
			continue
		}
		for _, it := range g.Items {
			if _, err := fmt.Fprintf(w, "  %s\t%s\n", it.Value, it.DisplayLabel()); err != nil {
				return err
			}
		}
	}
	return nil
}

func init() {
	groupsCmd.Flags().StringVar(&groupsItems, "items", "", "Items file, or - for stdin")
	groupsCmd.Flags().IntVar(&groupsPage, "page", 1, "Only count the items revealed up to this page")
	groupsCmd.Flags().BoolVarP(&groupsVerbose, "verbose", "v", false, "List the items of each group")
	_ = groupsCmd.MarkFlagRequired("items")
}
