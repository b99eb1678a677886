// Package config holds the application configuration: size groups with their
// print sizes, supported input formats, and the knobs for suggestion and
// output encoding.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davidhanko/printcrop/pkg/geometry"
)

// SizeEntry is one print size inside a group. Ratio is the size identifier
// ("9x6"); Alias is the label shown to the user, defaulting to the ratio.
type SizeEntry struct {
	Ratio string `json:"ratio"`
	Alias string `json:"alias,omitempty"`
}

// SizeGroup is a named collection of print sizes, typically one per print
// shop or paper stock.
type SizeGroup struct {
	Sizes []SizeEntry `json:"sizes"`
}

// Config holds the application configuration.
type Config struct {
	SizeGroups map[string]SizeGroup `json:"size_groups"`
	// SizeColors maps a size ratio to the hex color used to display it.
	SizeColors       map[string]string `json:"size_colors"`
	SupportedFormats []string          `json:"supported_formats"`
	OutputFormat     string            `json:"output_format"`
	JPEGQuality      int               `json:"jpeg_quality"`
	// AnalysisCap bounds the long side of bitmaps sent to the saliency
	// engine; larger sources are downsampled first.
	AnalysisCap int `json:"analysis_cap"`
	// MinCropSize is the smallest crop box edge, in preview pixels, the
	// interactive gestures will produce.
	MinCropSize int `json:"min_crop_size"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		SizeGroups: map[string]SizeGroup{
			"standard": {Sizes: []SizeEntry{
				{Ratio: "9x6"},
				{Ratio: "6x9"},
				{Ratio: "10x10", Alias: "square"},
				{Ratio: "13x18"},
			}},
		},
		SizeColors:       map[string]string{},
		SupportedFormats: []string{"jpg", "jpeg", "png", "webp"},
		OutputFormat:     "jpg",
		JPEGQuality:      95,
		AnalysisCap:      600,
		MinCropSize:      50,
	}
}

// LoadFromFile loads configuration from a JSON file.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file.
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid. Size identifiers fail
// loudly here rather than at crop time.
func (c *Config) Validate() error {
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be between 1 and 100")
	}
	if len(c.SupportedFormats) == 0 {
		return fmt.Errorf("supported_formats cannot be empty")
	}
	if c.AnalysisCap < 1 {
		return fmt.Errorf("analysis_cap must be positive")
	}
	if c.MinCropSize < 1 {
		return fmt.Errorf("min_crop_size must be positive")
	}

	for group, data := range c.SizeGroups {
		for _, size := range data.Sizes {
			if _, err := geometry.ParseSize(size.Ratio); err != nil {
				return fmt.Errorf("size group %q: %w", group, err)
			}
		}
	}
	return nil
}

// GroupNames returns the names of all size groups.
func (c *Config) GroupNames() []string {
	names := make([]string, 0, len(c.SizeGroups))
	for name := range c.SizeGroups {
		names = append(names, name)
	}
	return names
}

// SizesForGroup returns the size ratios defined for a group, or nil when the
// group doesn't exist.
func (c *Config) SizesForGroup(name string) []string {
	group, ok := c.SizeGroups[name]
	if !ok {
		return nil
	}
	ratios := make([]string, 0, len(group.Sizes))
	for _, size := range group.Sizes {
		ratios = append(ratios, size.Ratio)
	}
	return ratios
}

// SizeAlias returns the display alias for a ratio within a group, falling
// back to the ratio itself.
func (c *Config) SizeAlias(groupName, ratio string) string {
	group, ok := c.SizeGroups[groupName]
	if !ok {
		return ratio
	}
	for _, size := range group.Sizes {
		if size.Ratio == ratio && size.Alias != "" {
			return size.Alias
		}
	}
	return ratio
}

// GetConfigPath returns the default configuration file path.
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "printcrop", "config.json")
}
