package cmd

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fastbreak-sim/fastbreak-sim/league"
)

// LoadSettings returns the default settings with any overrides from a
// YAML file layered on top. An empty path means defaults only.
func LoadSettings(path string) (league.Settings, error) {
	settings := league.DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, err
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, err
	}
	return settings, nil
}
