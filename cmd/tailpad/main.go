package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/tailpad/internal/logging"
	"github.com/iw2rmb/tailpad/settings"
)

var defaultExtensions = []string{".txt", ".text", ".md"}

var (
	flagEmptyLines int
	flagExclude    string
	flagExtensions []string
	flagConfig     string
	flagLog        string
	flagDebug      bool
)

var rootCmd = &cobra.Command{
	Use:   "tailpad [file...]",
	Short: "Edit text files while keeping trailing blank lines tidy",
	Long: `tailpad opens the given files in a tabbed terminal editor. The active
buffer is padded to a configurable number of trailing blank lines so there
is always room to work below the text; when you switch tabs or quit, the
file that lost focus is stripped back to no trailing blanks on disk.`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().IntVar(&flagEmptyLines, "empty-lines", settings.DefaultEmptyLines,
		fmt.Sprintf("trailing blank lines to keep in the active buffer (%d-%d)", settings.MinEmptyLines, settings.MaxEmptyLines))
	rootCmd.Flags().StringVar(&flagExclude, "exclude", "",
		"regex tested against path and content; matching files are left untouched")
	rootCmd.Flags().StringSliceVar(&flagExtensions, "extensions", defaultExtensions,
		"file extensions eligible for processing")
	rootCmd.Flags().StringVar(&flagConfig, "config", "",
		"settings file (default: user config dir)")
	rootCmd.Flags().StringVar(&flagLog, "log", "",
		"log file for warnings and debug output")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false,
		"log debug output")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(flagLog, flagDebug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath, err = settings.DefaultPath()
		if err != nil {
			return err
		}
	}
	store := settings.NewStore(cfgPath)

	cfg, err := store.Load()
	if err != nil {
		// Settings problems are never fatal; run on defaults.
		logger.Warn("settings: %v", err)
	}
	if cmd.Flags().Changed("empty-lines") {
		cfg.EmptyLines = flagEmptyLines
	}
	if cmd.Flags().Changed("exclude") {
		cfg.ExcludeRegex = flagExclude
	}
	cfg = cfg.Clamped()

	app, err := newApp(args, cfg, store, logger, flagExtensions)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "tailpad:", err)
		os.Exit(1)
	}
}
