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
	searchItems    string
	searchFreeform bool
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Print the items matching a query",
	Long:  "Run the menu's search against the items file and print value<TAB>label for every match.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := config.LoadItems(searchItems, os.Stdin)
		if err != nil {
			return err
		}
		results := selector.Search(items, args[0], selector.SearchOptions{Freeform: searchFreeform})
		if len(results) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No matches.")
			return nil
		}
		return writeItems(cmd.OutOrStdout(), results)
	},
}

func writeItems(w io.Writer, items []selector.Item) error {
	for _, it := range items {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", it.Value, it.DisplayLabel()); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	searchCmd.Flags().StringVar(&searchItems, "items", "", "Items file, or - for stdin")
	searchCmd.Flags().BoolVar(&searchFreeform, "freeform", false, "Add comma-separated entries as extra results")
	_ = searchCmd.MarkFlagRequired("items")
}
