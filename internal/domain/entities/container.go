package entities

import (
	"os"
	"time"

	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"
)

// ConfigEnvVar points at an explicit config file, bypassing auto-detection.
const ConfigEnvVar = "DRUPALPOD_CONFIG"

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() Clock { return time.Now }); err != nil {
		return err
	}
	return container.Provide(LoadSettings)
}

// LoadSettings loads settings from $DRUPALPOD_CONFIG, or from the first
// config file found in the standard locations, or falls back to defaults.
func LoadSettings() (*Settings, error) {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		logger.Debugf("Using config file: %s", path)
		return NewSettings(path)
	}
	return FindSettings(ConfigSearchPaths()...)
}
