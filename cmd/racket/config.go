package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racket/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

With --defaults, print the built-in defaults instead (with comments), which
is a good starting point for a custom file.

Examples:
  racket config
  racket config --config ./my-racket.yaml
  racket config --defaults > ~/.arcade/configs/racket.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(_ *cobra.Command, _ []string) {
	if err := printConfig(os.Stdout, flagDefaults); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printConfig writes the built-in defaults or the effective config to w.
func printConfig(w io.Writer, defaults bool) error {
	data := config.DefaultYAML()
	if !defaults {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if data, err = config.Marshal(cfg); err != nil {
			return err
		}
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
