package cmd

import (
	"errors"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/josephlewis42/goosecli/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Error("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// loadConfigOrDefault falls back to the built in configuration, with an in
// memory event log, when none has been initialized.
func loadConfigOrDefault() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("No configuration found, using defaults. Run init to keep an event log.", "path", cfgPath)
		return config.Default(afero.NewMemMapFs()), nil
	}
	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "goosecli",
	Short: "Embeddable command interpreter",
	Long: `Run registered commands interactively or replay them from script files,
with variables, quoting, comments and generated help.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
