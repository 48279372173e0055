/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration loading for addonc.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/addonc/pack"
	"bennypowers.dev/addonc/render"
)

// DefaultOutput is the directory generated add-ons are written under.
const DefaultOutput = "."

// ErrNoName indicates no add-on name was given or configured.
var ErrNoName = errors.New("no add-on name: set --name or name in .config/addonc.yaml")

// Config represents the addonc project configuration.
type Config struct {
	// Name is the add-on name used when a file spec does not set one.
	Name string `yaml:"name" json:"name" toml:"name"`

	// Output is the directory add-on folders are generated into.
	Output string `yaml:"output" json:"output" toml:"output"`

	// Author, Category and Version populate bl_info.
	Author   string `yaml:"author" json:"author" toml:"author"`
	Category string `yaml:"category" json:"category" toml:"category"`
	Version  string `yaml:"version" json:"version" toml:"version"`

	// Files specifies definition files to compile (paths or globs).
	Files []FileSpec `yaml:"files" json:"files" toml:"files"`

	// Link is the add-ons folder generated add-ons are linked into.
	Link string `yaml:"link" json:"link" toml:"link"`

	// Pack configures archives.
	Pack PackConfig `yaml:"pack" json:"pack" toml:"pack"`
}

// PackConfig configures which files go into an add-on archive.
type PackConfig struct {
	// Extensions are the archived file extensions, e.g. ".py".
	Extensions []string `yaml:"extensions" json:"extensions" toml:"extensions"`

	// Exclude holds doublestar patterns relative to the add-on folder.
	Exclude []string `yaml:"exclude" json:"exclude" toml:"exclude"`
}

// FileSpec represents a definition file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path" toml:"path"`

	// Name overrides the add-on name for this file.
	Name string `yaml:"name" json:"name" toml:"name"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// UnmarshalTOML handles both string and table forms for FileSpec.
func (f *FileSpec) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		f.Path = v
	case map[string]any:
		for key, dst := range map[string]*string{"path": &f.Path, "name": &f.Name} {
			raw, ok := v[key]
			if !ok {
				continue
			}
			s, ok := raw.(string)
			if !ok {
				return fmt.Errorf("file spec %s must be a string, got %T", key, raw)
			}
			*dst = s
		}
	default:
		return fmt.Errorf("file spec must be a string or table, got %T", data)
	}
	return nil
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Output: DefaultOutput,
		Pack: PackConfig{
			Extensions: append([]string(nil), pack.DefaultExtensions...),
		},
	}
}

// RenderOptions returns render.Options with configuration applied.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Name:     c.Name,
		Author:   c.Author,
		Category: c.Category,
		Version:  c.Version,
	}
}

// OptionsForFile returns render.Options for a definition file.
// File-level overrides take precedence over global config; without any name
// the file's base name is used, e.g. "defs/bevel.addon" yields "bevel".
func (c *Config) OptionsForFile(path string) render.Options {
	opts := c.RenderOptions()
	for _, spec := range c.Files {
		if filepath.Clean(spec.Path) == filepath.Clean(path) {
			if spec.Name != "" {
				opts.Name = spec.Name
			}
			break
		}
	}
	if opts.Name == "" {
		base := filepath.Base(path)
		opts.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return opts
}

// AddonDir returns the folder the add-on called name is generated into.
// An empty name falls back to the configured one.
func (c *Config) AddonDir(name string) (string, error) {
	if name == "" {
		name = c.Name
	}
	if name == "" {
		return "", ErrNoName
	}
	module, err := render.ModuleName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(c.Output, module), nil
}

// ArchiveOptions returns pack.ArchiveOptions with configuration applied.
func (c *Config) ArchiveOptions() pack.ArchiveOptions {
	return pack.ArchiveOptions{
		Extensions: c.Pack.Extensions,
		Exclude:    c.Pack.Exclude,
	}
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
