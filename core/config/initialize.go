package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir, leaving an existing
// configuration alone.
func Initialize(dir string, logger *log.Logger) error {
	return InitializeFs(afero.NewOsFs(), dir, logger)
}

// InitializeFs is Initialize on an arbitrary filesystem.
func InitializeFs(fs afero.Fs, dir string, logger *log.Logger) error {
	logger.Info("creating configuration directory", "dir", dir)
	if err := fs.MkdirAll(dir, 0700); err != nil {
		return err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	switch _, err := fs.Stat(configPath); {
	case err == nil:
		logger.Info("configuration already exists", "path", configPath)
		return nil
	case !os.IsNotExist(err):
		return err
	}

	logger.Info("writing default configuration", "path", configPath)
	return afero.WriteFile(fs, configPath, defaultConfigData, 0600)
}
