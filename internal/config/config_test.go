// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	defer Reset()

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if dir != "/tmp/xdg/gitauto-setup" {
		t.Errorf("ConfigDir() = %q, want /tmp/xdg/gitauto-setup", dir)
	}
}

func TestConfigDir_HomeFallback(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")
	defer Reset()

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if dir != filepath.Join("/home/tester", ".config", "gitauto-setup") {
		t.Errorf("ConfigDir() = %q", dir)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.InstallDir != "/opt/gitAuto" {
		t.Errorf("InstallDir = %q, want /opt/gitAuto", cfg.InstallDir)
	}
	if cfg.BinDir != "/usr/local/bin" {
		t.Errorf("BinDir = %q, want /usr/local/bin", cfg.BinDir)
	}
	if cfg.CommandName != "gitauto" {
		t.Errorf("CommandName = %q, want gitauto", cfg.CommandName)
	}
	if cfg.ScriptName != "gitauto.py" {
		t.Errorf("ScriptName = %q, want gitauto.py", cfg.ScriptName)
	}
	if cfg.Runtime != "python3" {
		t.Errorf("Runtime = %q, want python3", cfg.Runtime)
	}
	if cfg.VCSTool != "git" {
		t.Errorf("VCSTool = %q, want git", cfg.VCSTool)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigPaths(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.ScriptPath(); got != "/opt/gitAuto/gitauto.py" {
		t.Errorf("ScriptPath() = %q", got)
	}
	if got := cfg.WrapperPath(); got != "/usr/local/bin/gitauto" {
		t.Errorf("WrapperPath() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "relative install dir",
			mutate:  func(c *Config) { c.InstallDir = "opt/gitAuto" },
			wantErr: ErrInvalidPath,
		},
		{
			name:    "empty bin dir",
			mutate:  func(c *Config) { c.BinDir = "   " },
			wantErr: ErrInvalidPath,
		},
		{
			name:    "command name with separator",
			mutate:  func(c *Config) { c.CommandName = "bin/gitauto" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "empty runtime",
			mutate:  func(c *Config) { c.Runtime = "" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "bad minimum version",
			mutate:  func(c *Config) { c.MinRuntimeVersion = "not-a-version" },
			wantErr: ErrInvalidVersion,
		},
		{
			name:   "minimum version without v prefix",
			mutate: func(c *Config) { c.MinRuntimeVersion = "3.8" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	defer Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.InstallDir != "/opt/gitAuto" {
		t.Errorf("InstallDir = %q, want default", cfg.InstallDir)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	defer Reset()

	content := `install_dir = "/srv/gitauto"
command_name = "ga"

[ui]
verbose = true
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.InstallDir != "/srv/gitauto" {
		t.Errorf("InstallDir = %q, want /srv/gitauto", cfg.InstallDir)
	}
	if cfg.CommandName != "ga" {
		t.Errorf("CommandName = %q, want ga", cfg.CommandName)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
	// Untouched keys keep their defaults.
	if cfg.BinDir != "/usr/local/bin" {
		t.Errorf("BinDir = %q, want default", cfg.BinDir)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	defer Reset()

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("install_dir = [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail on invalid TOML")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	defer Reset()

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`install_dir = "relative/path"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load()
	if !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Load() = %v, want ErrInvalidPath", err)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.toml"))
	defer Reset()

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail when --config points at a missing file")
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	defer Reset()

	path, err := WriteDefault(false)
	if err != nil {
		t.Fatalf("WriteDefault() error: %v", err)
	}
	if path != filepath.Join(dir, "config.toml") {
		t.Errorf("WriteDefault() path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written config: %v", err)
	}
	if !strings.Contains(string(data), `install_dir = '/opt/gitAuto'`) &&
		!strings.Contains(string(data), `install_dir = "/opt/gitAuto"`) {
		t.Errorf("written config missing install_dir, got:\n%s", data)
	}

	// Second write without force must refuse.
	if _, err := WriteDefault(false); err == nil {
		t.Error("WriteDefault() should refuse to overwrite without force")
	}
	if _, err := WriteDefault(true); err != nil {
		t.Errorf("WriteDefault(force) error: %v", err)
	}

	// The written file must round-trip through Load.
	if _, err := Load(); err != nil {
		t.Errorf("Load() of written default config failed: %v", err)
	}
}
