package vulkantest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the window and diagnostics settings.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Debug  bool   `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Title:  "Vulkan test",
		Width:  1280,
		Height: 720,
		Debug:  true,
	}
}

// LoadConfig reads a YAML file over the defaults, so a partial file only
// overrides the keys it names.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, nil
}
