// Package config builds the run configuration polywal executes with.
//
// A RunConfig is constructed once from command-line flags and passed by
// value through every step. Its fields are unexported and its accessors
// return copies, so nothing downstream can alter the run after parsing.
//
// File locations come from Paths:
//
//   - color cache:   $XDG_CACHE_HOME/wal/colors (default ~/.cache/wal/colors)
//   - local config:  $XDG_CONFIG_HOME/polybar/config.ini (default ~/.config/polybar/config.ini)
//   - global config: /etc/xdg/polybar/config.ini
//   - user profiles: $XDG_CONFIG_HOME/polywal/profiles.yaml
package config

import "github.com/localdumbkat/polywal/internal/model"

// Target selects which polybar config is rewritten
type Target int

const (
	TargetLocal Target = iota
	TargetGlobal
)

func (t Target) String() string {
	switch t {
	case TargetLocal:
		return "local"
	case TargetGlobal:
		return "global"
	}
	return ""
}

// Options are the parsed inputs to New
type Options struct {
	Global  bool
	Backup  bool
	Verbose bool
	Profile model.Profile
	Paths   Paths
}

// RunConfig is the immutable configuration of a single run
type RunConfig struct {
	target  Target
	backup  bool
	verbose bool
	profile model.Profile
	paths   Paths
}

// New creates a RunConfig from parsed options
func New(o Options) RunConfig {
	target := TargetLocal
	if o.Global {
		target = TargetGlobal
	}
	return RunConfig{
		target:  target,
		backup:  o.Backup,
		verbose: o.Verbose,
		profile: o.Profile.Clone(),
		paths:   o.Paths,
	}
}

func (c RunConfig) Target() Target {
	return c.target
}

// Backup reports whether a .bak copy is written before modifying the target
func (c RunConfig) Backup() bool {
	return c.backup
}

func (c RunConfig) Verbose() bool {
	return c.verbose
}

// Profile returns a copy of the selected profile
func (c RunConfig) Profile() model.Profile {
	return c.profile.Clone()
}

// TargetPath returns the polybar config path for the selected target
func (c RunConfig) TargetPath() string {
	if c.target == TargetGlobal {
		return c.paths.Global
	}
	return c.paths.Local
}

// PalettePath returns the pywal color cache path
func (c RunConfig) PalettePath() string {
	return c.paths.Palette
}
