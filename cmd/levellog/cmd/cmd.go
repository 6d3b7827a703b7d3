package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipp01105/levellog/appender"
	"github.com/philipp01105/levellog/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	optionNameLevel      = "level"
	optionNameEnabled    = "enabled"
	optionNameTimestamps = "timestamps"
	optionNameVerbosity  = "verbosity"
	optionNameName       = "name"
	optionNameMinLevel   = "min-level"
	optionNameVerbose    = "verbose"
)

func init() {
	cobra.EnableCommandSorting = false
}

type command struct {
	root    *cobra.Command
	config  *viper.Viper
	cfgFile string
	homeDir string
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "levellog",
			Short:         "Level-gated logging from the command line",
			SilenceErrors: true,
			SilenceUsage:  true,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				return c.initConfig()
			},
		},
	}

	// Registering a flag resets its target, so options come after.
	c.initGlobalFlags()
	c.initEmitCmd()
	c.initPipeCmd()
	c.initLevelsCmd()
	c.initVersionCmd()

	for _, o := range opts {
		o(c)
	}

	// Find home directory.
	if err := c.setHomeDir(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs appropriate functions.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) initGlobalFlags() {
	globalFlags := c.root.PersistentFlags()
	globalFlags.StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.levellog.yaml)")
	globalFlags.String(optionNameLevel, "", "global minimum level")
	globalFlags.Bool(optionNameEnabled, true, "enable logging globally")
	globalFlags.Bool(optionNameTimestamps, false, "prefix records with HH:MM:SS:mmm")
	globalFlags.Bool(optionNameVerbosity, false, "let verbose records through")
}

func (c *command) initConfig() (err error) {
	config := viper.New()
	configName := ".levellog"
	if c.cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(c.cfgFile)
	} else {
		// Search config in home directory with name ".levellog" (without extension).
		config.AddConfigPath(c.homeDir)
		config.SetConfigName(configName)
	}

	// Environment
	config.SetEnvPrefix("levellog")
	config.AutomaticEnv() // read in environment variables that match
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if c.homeDir != "" && c.cfgFile == "" {
		c.cfgFile = filepath.Join(c.homeDir, configName+".yaml")
	}

	// If a config file is found, read it in.
	if err := config.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if !errors.As(err, &e) && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	if err := config.BindPFlags(c.root.PersistentFlags()); err != nil {
		return err
	}
	c.config = config
	return nil
}

func (c *command) setHomeDir() (err error) {
	if c.homeDir != "" {
		return
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	c.homeDir = dir
	return nil
}

// newLogConfig builds a logger config writing to the command output
// and applies the viper settings to it.
func (c *command) newLogConfig(cmd *cobra.Command) *logger.Config {
	cfg := logger.NewConfig(logger.WithDefaultAppender(
		appender.NewConsoleAppender(appender.ConsoleConfig{Writer: cmd.OutOrStdout()}),
	))
	return cfg.Merge(map[string]interface{}{
		optionNameLevel:      c.config.GetString(optionNameLevel),
		optionNameEnabled:    c.config.GetBool(optionNameEnabled),
		optionNameTimestamps: c.config.GetBool(optionNameTimestamps),
		optionNameVerbosity:  c.config.GetBool(optionNameVerbosity),
	})
}

// newDiagLogger returns the logger the tool reports its own progress
// on. It writes to the error output and only speaks when verbosity is on.
func (c *command) newDiagLogger(cmd *cobra.Command) *logger.Logger {
	cfg := logger.NewConfig(logger.WithDefaultAppender(
		appender.NewConsoleAppender(appender.ConsoleConfig{Writer: cmd.ErrOrStderr()}),
	))
	cfg.Configure(logger.Options{Verbosity: logger.Bool(c.config.GetBool(optionNameVerbosity))})
	l, _ := cfg.Get("levellog")
	return l
}
