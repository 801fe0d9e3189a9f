// SPDX-License-Identifier: MPL-2.0

// Package config handles installer configuration using Viper with TOML as the
// file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/gitauto-setup/config.toml
// (defaulting to ~/.config/gitauto-setup/config.toml), with environment
// overrides under the GITAUTO_SETUP_ prefix. Every value has a default drawn
// from the conventional gitauto install layout (/opt/gitAuto plus a wrapper
// in /usr/local/bin), so the tool works with no config file at all.
package config
