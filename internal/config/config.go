// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitauto-setup/internal/issue"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, also the config directory name.
	AppName = "gitauto-setup"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"

	// envPrefix namespaces environment variable overrides
	// (e.g. GITAUTO_SETUP_INSTALL_DIR).
	envPrefix = "GITAUTO_SETUP"
)

// ConfigDir returns the installer configuration directory:
// $XDG_CONFIG_HOME/gitauto-setup, defaulting to ~/.config/gitauto-setup.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}

	return filepath.Join(configDir, AppName), nil
}

// ConfigFilePath returns the path of the config file that Load would read,
// whether or not it exists.
func ConfigFilePath() (string, error) {
	if configFilePathOverride != "" {
		return configFilePathOverride, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load reads the config file (when present) and environment overrides on top
// of the defaults, then validates the result. A missing config file is not an
// error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("install_dir", defaults.InstallDir)
	v.SetDefault("bin_dir", defaults.BinDir)
	v.SetDefault("command_name", defaults.CommandName)
	v.SetDefault("script_name", defaults.ScriptName)
	v.SetDefault("runtime", defaults.Runtime)
	v.SetDefault("vcs_tool", defaults.VCSTool)
	v.SetDefault("package_manager", defaults.PackageManager)
	v.SetDefault("min_runtime_version", defaults.MinRuntimeVersion)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfgPath, err := ConfigFilePath()
	if err != nil {
		return nil, err
	}

	// A file forced via --config must exist; the default location is optional.
	if configFilePathOverride != "" && !fileExists(cfgPath) {
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(cfgPath).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Run 'gitauto-setup config init' to create a starter config").
			Wrap(fmt.Errorf("config file not found: %s", cfgPath)).
			BuildError()
	}

	if fileExists(cfgPath) {
		v.SetConfigFile(cfgPath)
		v.SetConfigType(ConfigFileExt)
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(cfgPath).
				WithSuggestion("Check that the file contains valid TOML syntax").
				WithSuggestion("See 'gitauto-setup config show' for the expected layout").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(cfgPath).
			WithSuggestion("Paths must be absolute; names must be bare file names").
			Wrap(err).
			BuildError()
	}

	return &cfg, nil
}

// WriteDefault writes the default configuration as TOML to the standard
// config file path, creating the config directory if needed. It refuses to
// overwrite an existing file unless force is set. Returns the written path.
func WriteDefault(force bool) (string, error) {
	cfgPath, err := ConfigFilePath()
	if err != nil {
		return "", err
	}

	if fileExists(cfgPath) && !force {
		return "", fmt.Errorf("config file already exists: %s (use --force to overwrite)", cfgPath)
	}

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("failed to encode default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(cfgPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return cfgPath, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
