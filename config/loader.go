/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	addonfs "bennypowers.dev/addonc/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "addonc"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// ErrNoFiles indicates neither arguments nor config named a definition file.
var ErrNoFiles = errors.New("no definition files")

// ErrBadFilePattern indicates a files entry that is not a valid doublestar pattern.
var ErrBadFilePattern = errors.New("invalid file pattern")

type decoder func(data []byte, v any) error

// configFormats lists the supported config files in priority order.
var configFormats = []struct {
	ext    string
	decode decoder
}{
	{".yaml", yaml.Unmarshal},
	{".yml", yaml.Unmarshal},
	// JSON config may carry comments and trailing commas.
	{".json", func(data []byte, v any) error { return json.Unmarshal(jsonc.ToJSON(data), v) }},
	{".toml", toml.Unmarshal},
}

// Load searches for .config/addonc.{yaml,yml,json,toml} under rootDir and
// decodes the first one found over Default(). A missing config is not an
// error: Load returns nil, nil.
func Load(filesystem addonfs.FileSystem, rootDir string) (*Config, error) {
	for _, format := range configFormats {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+format.ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
		}

		cfg := Default()
		if err := format.decode(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
		}
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault is Load with Default() standing in for a missing or broken config.
func LoadOrDefault(filesystem addonfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandFiles resolves the files entries against rootDir. Plain paths are
// returned as is, whether or not they exist; globs expand to the matching
// files in walk order. A file matched by several entries is listed once.
func (c *Config) ExpandFiles(filesystem addonfs.FileSystem, rootDir string) ([]string, error) {
	var result []string
	seen := make(map[string]bool)

	for _, spec := range c.Files {
		pattern := spec.Path
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(rootDir, pattern)
		}

		paths := []string{pattern}
		if containsGlob(pattern) {
			var err error
			if paths, err = expandGlob(filesystem, pattern); err != nil {
				return nil, err
			}
		}

		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				result = append(result, p)
			}
		}
	}

	return result, nil
}

// ResolveFiles returns args, or the expanded files entries when args is empty.
func (c *Config) ResolveFiles(filesystem addonfs.FileSystem, rootDir string, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	files, err := c.ExpandFiles(filesystem, rootDir)
	if err != nil {
		return nil, fmt.Errorf("error expanding config files: %w", err)
	}
	if len(files) == 0 {
		if patterns := c.FilePaths(); len(patterns) > 0 {
			return nil, fmt.Errorf("%w: config files %s matched nothing", ErrNoFiles, strings.Join(patterns, ", "))
		}
		return nil, fmt.Errorf("%w: pass files or list them in %s", ErrNoFiles, filepath.Join(ConfigDir, ConfigFileName+".yaml"))
	}
	return files, nil
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob walks the static prefix of pattern and keeps the files whose
// path below it matches the rest.
func expandGlob(filesystem addonfs.FileSystem, pattern string) ([]string, error) {
	base, rel := doublestar.SplitPattern(filepath.ToSlash(pattern))
	if !doublestar.ValidatePattern(rel) {
		return nil, fmt.Errorf("%w: %s", ErrBadFilePattern, pattern)
	}
	baseDir := filepath.FromSlash(base)

	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		switch {
		case err != nil && d != nil && d.IsDir():
			return fs.SkipDir
		case err != nil, d.IsDir():
			return nil
		}

		relPath, err := filepath.Rel(baseDir, path)
		if err != nil {
			return nil
		}
		if doublestar.MatchUnvalidated(rel, filepath.ToSlash(relPath)) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to expand %s: %w", pattern, err)
	}

	return matches, nil
}
