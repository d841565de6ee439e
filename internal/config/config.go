// Package config implements the optional "--profile PATH" preset file
// (SPEC_FULL.md §4.N): a small YAML document of named command strings
// that can be referenced instead of retyped. This is purely additive
// convenience over the COMMAND_SPEC positional argument and never
// changes the interpreter's semantics.
package config

import (
	"os"

	"github.com/vippsas/sqltab/internal/sqltaberr"
	"gopkg.in/yaml.v3"
)

// Profile is one named, reusable command string.
type Profile struct {
	Name     string `yaml:"name"`
	Commands string `yaml:"commands"`
}

// File is the top-level shape of a profile file.
type File struct {
	Profiles []Profile `yaml:"profiles"`
}

// Load reads and parses a profile file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, sqltaberr.Wrap(sqltaberr.ExitFileOpen, "config.Load", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, sqltaberr.Wrap(sqltaberr.ExitMalformedCommand, "config.Load", err)
	}
	return f, nil
}

// Find returns the command string registered under name.
func (f File) Find(name string) (string, bool) {
	for _, p := range f.Profiles {
		if p.Name == name {
			return p.Commands, true
		}
	}
	return "", false
}
