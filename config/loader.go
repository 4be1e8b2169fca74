/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	btfs "bennypowers.dev/brandtokens/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "brand-tokens"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

type decodeFunc func([]byte, any) error

// decoders lists the supported config file extensions in priority order.
var decoders = []struct {
	ext    string
	decode decodeFunc
}{
	{".yaml", yaml.Unmarshal},
	{".yml", yaml.Unmarshal},
	{".json", json.Unmarshal},
}

// Load reads the first of .config/brand-tokens.{yaml,yml,json} under
// rootDir. A missing config is not an error: Load returns nil. Unset
// fields of a found config take their defaults.
func Load(filesystem btfs.FileSystem, rootDir string) (*Config, error) {
	for _, d := range decoders {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+d.ext)
		if !filesystem.Exists(configPath) {
			continue
		}
		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg := &Config{}
		if err := d.decode(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
		cfg.applyDefaults()
		return cfg, nil
	}
	return nil, nil
}

// LoadOrDefault returns the config under rootDir, or Default when none is
// found or it cannot be read.
func LoadOrDefault(filesystem btfs.FileSystem, rootDir string) *Config {
	if cfg, err := Load(filesystem, rootDir); err == nil && cfg != nil {
		return cfg
	}
	return Default()
}

// ExpandSources expands the Source patterns into file paths, in pattern
// order, without duplicates.
func (c *Config) ExpandSources(filesystem btfs.FileSystem, rootDir string) ([]string, error) {
	return ExpandPatterns(filesystem, rootDir, c.Source)
}

// ExpandPatterns resolves paths and doublestar patterns against rootDir.
// A pattern without glob metacharacters is returned as given, so a
// missing file surfaces as a read error later rather than vanishing here.
// Matches of one pattern are in walk (lexical) order.
func ExpandPatterns(filesystem btfs.FileSystem, rootDir string, patterns []string) ([]string, error) {
	var result []string
	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(rootDir, pattern)
		}
		matches := []string{pattern}
		if strings.ContainsAny(pattern, "*?[{") {
			var err error
			if matches, err = glob(filesystem, pattern); err != nil {
				return nil, fmt.Errorf("expanding %s: %w", pattern, err)
			}
		}
		for _, m := range matches {
			if !slices.Contains(result, m) {
				result = append(result, m)
			}
		}
	}
	return result, nil
}

// glob walks the static prefix of pattern and keeps the files whose path
// below it matches the rest. Unreadable directories are skipped.
func glob(filesystem btfs.FileSystem, pattern string) ([]string, error) {
	base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
	base = filepath.FromSlash(base)
	if !doublestar.ValidatePattern(rest) {
		return nil, doublestar.ErrBadPattern
	}
	if !filesystem.Exists(base) {
		return nil, nil
	}

	var matches []string
	err := fs.WalkDir(filesystem, base, func(p string, d fs.DirEntry, err error) error {
		switch {
		case err != nil && d != nil && d.IsDir():
			return fs.SkipDir
		case err != nil, d.IsDir():
			return nil
		}
		rel, err := filepath.Rel(base, p)
		if err != nil {
			return nil
		}
		if ok, _ := doublestar.Match(rest, filepath.ToSlash(rel)); ok {
			matches = append(matches, p)
		}
		return nil
	})
	return matches, err
}
