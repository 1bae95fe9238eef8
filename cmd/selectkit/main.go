package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/selectkit/internal/logger"
	"github.com/ruminaider/selectkit/internal/paths"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	logFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:           "selectkit",
	Short:         "Searchable grouped multi-select for the terminal",
	Long:          "selectkit opens a searchable, grouped multi-select menu over a list of items and prints the values you pick.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := logFile
		if path == "" {
			path = paths.LogFile()
		}
		if err := logger.Init(path); err != nil {
			return err
		}
		logger.SetDebug(debug)
		logger.Debug("running %s", cmd.CommandPath())
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "selectkit %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default ~/.selectkit/selectkit.log)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(configCmd)
}

// execute runs the root command and closes the log file afterwards, which a
// post-run hook cannot do when RunE fails.
func execute() error {
	defer logger.Close()
	return rootCmd.Execute()
}

func main() {
	if err := execute(); err != nil {
		// Cancelling the picker exits non-zero without an error message.
		if !errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
