package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/selectkit/cmd/selectkit/tui"
	"github.com/ruminaider/selectkit/internal/config"
	"github.com/ruminaider/selectkit/internal/logger"
	"github.com/ruminaider/selectkit/internal/paths"
	"github.com/ruminaider/selectkit/internal/selector"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

// Output formats for the picked values.
const (
	outputLines = "lines"
	outputYAML  = "yaml"
)

var errNotTerminal = errors.New("pick needs an interactive terminal")

var (
	pickItems          string
	pickValues         []string
	pickConfig         string
	pickFreeform       bool
	pickGroupSelect    bool
	pickInfiniteScroll bool
	pickLimit          int
	pickDisabled       []string
	pickCollapseCount  int
	pickCollapseGroups []string
	pickSubmitMode     string
	pickOutput         string
	pickTitle          string
	pickLabel          string
	pickOpen           bool
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick values interactively",
	Long: `Open the multi-select menu over the items file and print the submitted
values, one per line or as YAML. Cancelling exits with status 1.

The items file is YAML (a bare list or an "items:" list of value/label/group
entries) or plain text with one value[<TAB>label[<TAB>group]] per line.
Use "-" to read it from stdin.`,
	RunE: runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	cfg, err := loadEffectiveConfig(cmd, pickConfig)
	if err != nil {
		return err
	}
	if err := validateOutput(pickOutput); err != nil {
		return err
	}

	fromStdin := pickItems == "-"
	if !fromStdin && !term.IsTerminal(os.Stdin.Fd()) {
		return errNotTerminal
	}

	items, err := config.LoadItems(pickItems, os.Stdin)
	if err != nil {
		return err
	}
	logger.Info("pick: %d items, %d initial values", len(items), len(pickValues))

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		// stdout is reserved for the result.
		tea.WithOutput(os.Stderr),
	}
	if fromStdin {
		opts = append(opts, tea.WithInputTTY())
	}

	p := tea.NewProgram(newPickApp(cfg, items, pickValues), opts...)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	app := final.(tui.App)
	if app.Aborted() || !app.Submitted() {
		logger.Info("pick: cancelled")
		return huh.ErrUserAborted
	}
	return writeValues(cmd.OutOrStdout(), app.Values(), pickOutput)
}

// loadEffectiveConfig reads the config file and applies the command-line
// overrides that were explicitly set.
func loadEffectiveConfig(cmd *cobra.Command, path string) (config.Config, error) {
	if path == "" {
		path = paths.ConfigFile()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	f := cmd.Flags()
	if f.Changed("freeform") {
		cfg.Freeform = pickFreeform
	}
	if f.Changed("group-select") {
		cfg.GroupSelect = pickGroupSelect
	}
	if f.Changed("infinite-scroll") {
		cfg.InfiniteScroll = pickInfiniteScroll
	}
	if f.Changed("limit") {
		cfg.LimitCount = pickLimit
	}
	if f.Changed("disabled") {
		cfg.DisabledValues = pickDisabled
	}
	if f.Changed("collapse-count") {
		cfg.CollapseCount = pickCollapseCount
	}
	if f.Changed("collapse-group") {
		cfg.CollapseGroups = pickCollapseGroups
	}
	if f.Changed("submit-mode") {
		cfg.SubmitMode = pickSubmitMode
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newPickApp(cfg config.Config, items []selector.Item, values []string) tui.App {
	if cfg.ExternalSearch {
		logger.Warn("external_search has no effect in the CLI")
	}
	return tui.NewApp(tui.AppConfig{
		Title: pickTitle,
		Selector: tui.SelectorConfig{
			Label:   pickLabel,
			Items:   items,
			Values:  values,
			Options: cfg.SelectorOptions(),
			Menu: tui.MenuConfig{
				Placeholder:         cfg.Placeholder,
				GroupDisableMessage: cfg.GroupDisableMessage,
				GroupMessages:       cfg.GroupMessages,
				HasDescription:      cfg.HasDescription,
				ScrollOptions:       cfg.ScrollOptions(),
			},
			SubmitMode:  cfg.SubmitMode,
			InitialOpen: pickOpen,
		},
		QuitOnChange: true,
	})
}

func validateOutput(format string) error {
	switch format {
	case outputLines, outputYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want %s or %s)", format, outputLines, outputYAML)
}

func writeValues(w io.Writer, values []string, format string) error {
	if format == outputYAML {
		if values == nil {
			values = []string{}
		}
		data, err := yaml.Marshal(values)
		if err != nil {
			return fmt.Errorf("marshaling values: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	if len(values) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, strings.Join(values, "\n"))
	return err
}

func init() {
	f := pickCmd.Flags()
	f.StringVar(&pickItems, "items", "", "Items file, or - for stdin")
	f.StringSliceVar(&pickValues, "values", nil, "Initially selected values")
	f.StringVar(&pickConfig, "config", "", "Config file (default ~/.selectkit/config.yaml)")
	f.BoolVar(&pickFreeform, "freeform", false, "Allow typing comma-separated values that are not in the list")
	f.BoolVar(&pickGroupSelect, "group-select", false, "Make group headers toggle the whole group")
	f.BoolVar(&pickInfiniteScroll, "infinite-scroll", false, "Reveal the list one page at a time")
	f.IntVar(&pickLimit, "limit", 0, "Maximum number of selected values (0 for no limit)")
	f.StringSliceVar(&pickDisabled, "disabled", nil, "Values that cannot be selected")
	f.IntVar(&pickCollapseCount, "collapse-count", 0, "Show this many items per group before a \"more\" row")
	f.StringArrayVar(&pickCollapseGroups, "collapse-group", nil, "Only collapse this group (repeatable)")
	f.StringVar(&pickSubmitMode, "submit-mode", config.SubmitModeSubmit, "submit: only ctrl+s applies; leave: closing applies too")
	f.StringVarP(&pickOutput, "output", "o", outputLines, "Output format: lines or yaml")
	f.StringVar(&pickTitle, "title", "", "Panel title")
	f.StringVar(&pickLabel, "label", "", "Selector label")
	f.BoolVar(&pickOpen, "open", true, "Start with the menu open")
	_ = pickCmd.MarkFlagRequired("items")
}
