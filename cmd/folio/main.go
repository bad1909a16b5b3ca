package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"folio/internal/config"
	"folio/internal/logging"
)

var (
	// Global flags
	configPath   string
	contentPath  string
	startSection string
	verbose      bool

	// Logger for the non-interactive commands
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio - a terminal portfolio over an animated particle field",
	Long: `folio renders a personal portfolio as a scrolling page of sections
(about, education, work, projects, skills, certifications, leadership, contact)
over a field of drifting, linked particles.

Run without arguments to open the interactive viewer.
  ctrl+k   command palette
  t        toggle light/dark theme
  f        contact form`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive UI owns the terminal and logs to a file instead
		if cmd == cmd.Root() {
			return nil
		}

		zc := zap.NewProductionConfig()
		zc.OutputPaths = []string{"stderr"}
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.Use(logger, logging.Config{DebugMode: verbose, Level: zc.Level.String()})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "Portfolio content YAML (default: built-in sample)")
	rootCmd.Flags().StringVarP(&startSection, "section", "s", "", "Open at this section id, e.g. projects")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads --config, applies --content and validates the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if contentPath != "" {
		cfg.Content.Path = contentPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return cfg, nil
}
