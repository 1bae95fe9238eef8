package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/selectkit/internal/config"
	"github.com/ruminaider/selectkit/internal/logger"
	"github.com/ruminaider/selectkit/internal/paths"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	configForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the selectkit configuration",
	Long:  "Commands for creating and inspecting ~/.selectkit/config.yaml.",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = paths.ConfigFile()
		}

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !configForce {
			overwrite := false
			err := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("%s already exists. Overwrite it?", path)).
						Value(&overwrite),
				),
			).Run()
			if err != nil {
				return err
			}
			if !overwrite {
				fmt.Fprintln(cmd.OutOrStdout(), "Config left unchanged.")
				return nil
			}
		}

		answers := newConfigAnswers(cfg)
		if err := answers.form().Run(); err != nil {
			return err
		}
		cfg, err = answers.apply(cfg)
		if err != nil {
			return err
		}

		if err := config.Save(path, cfg); err != nil {
			return err
		}
		logger.Info("config written to %s", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = paths.ConfigFile()
		}
		cfg, err := loadEffectiveConfig(cmd, path)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, data)
		return nil
	},
}

// configAnswers holds the form fields. Counts are edited as text.
type configAnswers struct {
	placeholder    string
	freeform       bool
	groupSelect    bool
	infiniteScroll bool
	submitMode     string
	limit          string
	collapseCount  string
}

func newConfigAnswers(cfg config.Config) *configAnswers {
	return &configAnswers{
		placeholder:    cfg.Placeholder,
		freeform:       cfg.Freeform,
		groupSelect:    cfg.GroupSelect,
		infiniteScroll: cfg.InfiniteScroll,
		submitMode:     cfg.SubmitMode,
		limit:          strconv.Itoa(cfg.LimitCount),
		collapseCount:  strconv.Itoa(cfg.CollapseCount),
	}
}

func (a *configAnswers) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search placeholder").
				Value(&a.placeholder),
			huh.NewConfirm().
				Title("Allow freeform values?").
				Description("Comma-separated entries that are not in the list").
				Value(&a.freeform),
			huh.NewConfirm().
				Title("Toggle whole groups from their header?").
				Value(&a.groupSelect),
			huh.NewConfirm().
				Title("Reveal long lists page by page?").
				Value(&a.infiniteScroll),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("When does a selection apply?").
				Options(
					huh.NewOption("Only on ctrl+s", config.SubmitModeSubmit),
					huh.NewOption("Whenever the menu closes", config.SubmitModeLeave),
				).
				Value(&a.submitMode),
			huh.NewInput().
				Title("Selection limit").
				Description("0 for no limit").
				Validate(validateCount).
				Value(&a.limit),
			huh.NewInput().
				Title("Items shown per group before \"more\"").
				Description("0 shows every item").
				Validate(validateCount).
				Value(&a.collapseCount),
		),
	)
}

func (a *configAnswers) apply(cfg config.Config) (config.Config, error) {
	limit, err := parseCount(a.limit)
	if err != nil {
		return config.Config{}, fmt.Errorf("selection limit: %w", err)
	}
	collapse, err := parseCount(a.collapseCount)
	if err != nil {
		return config.Config{}, fmt.Errorf("collapse count: %w", err)
	}
	cfg.Placeholder = strings.TrimSpace(a.placeholder)
	if cfg.Placeholder == "" {
		cfg.Placeholder = config.DefaultPlaceholder
	}
	cfg.Freeform = a.freeform
	cfg.GroupSelect = a.groupSelect
	cfg.InfiniteScroll = a.infiniteScroll
	cfg.SubmitMode = a.submitMode
	cfg.LimitCount = limit
	cfg.CollapseCount = collapse
	return cfg, cfg.Validate()
}

var errNegativeCount = errors.New("must not be negative")

// parseCount parses a non-negative integer; blank means zero.
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n < 0 {
		return 0, errNegativeCount
	}
	return n, nil
}

func validateCount(s string) error {
	_, err := parseCount(s)
	return err
}

func init() {
	configCmd.PersistentFlags().StringVar(&configPath, "path", "", "Config file (default ~/.selectkit/config.yaml)")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config without asking")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
