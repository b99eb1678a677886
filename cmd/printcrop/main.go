package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davidhanko/printcrop/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "printcrop",
	Short: "Tag photos with print sizes and batch-produce exact-dimension crops",
	Long: `Printcrop prepares photos for printing. Each photo is tagged with a
print size ("9x6", "13x18"); the crop box is locked to that size's aspect
ratio, placed automatically or by hand, and executed as an exact-dimension
crop at the largest resolution the source image supports.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/printcrop/config.json)")
}

// loadConfig reads the configured or default config file, falling back to the
// built-in defaults when no file exists.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.GetConfigPath()
		if _, err := os.Stat(path); err != nil {
			return config.Default(), nil
		}
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
