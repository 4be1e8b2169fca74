/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for brand token builds.
package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/brandtokens/brand"
	"bennypowers.dev/brandtokens/resolver"
	"bennypowers.dev/brandtokens/schema"
)

// Defaults for unset fields.
const (
	DefaultSource    = "tokens/**/*.json"
	DefaultBuildPath = "build/css/"
)

// Config represents the brand tokens configuration.
type Config struct {
	// Brands lists brand identifiers in build order.
	Brands []string `yaml:"brands" json:"brands"`

	// Slugs overrides the CSS slug of a brand, keyed by brand identifier.
	Slugs map[string]string `yaml:"slugs" json:"slugs"`

	// Source lists token files or glob patterns, relative to the project root.
	Source Patterns `yaml:"source" json:"source"`

	// BuildPath is the output directory.
	BuildPath string `yaml:"buildPath" json:"buildPath"`

	// Strict fails a pass on unresolved references.
	Strict bool `yaml:"strict" json:"strict"`

	// References configures the reference rewriter.
	References References `yaml:"references" json:"references"`

	// LogLevel is one of silent, error, warn, info, debug.
	LogLevel string `yaml:"logLevel" json:"logLevel"`

	// Format forces the leaf spelling: "tokens-studio" or "dtcg".
	Format string `yaml:"format" json:"format"`
}

// References holds the rewriter vocabularies. Empty lists use the defaults.
type References struct {
	Categories []string `yaml:"categories" json:"categories"`
	Phrases    []string `yaml:"phrases" json:"phrases"`
}

// Patterns is a list of paths or globs. It can be written as a single
// string or as a list.
type Patterns []string

// UnmarshalYAML handles both string and list forms.
func (p *Patterns) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*p = Patterns{node.Value}
		return nil
	}

	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*p = list
	return nil
}

// UnmarshalJSON handles both string and list forms.
func (p *Patterns) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Patterns{s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*p = list
	return nil
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Brands:    brand.Default().IDs(),
		Source:    Patterns{DefaultSource},
		BuildPath: DefaultBuildPath,
	}
}

// applyDefaults fills unset fields.
func (c *Config) applyDefaults() {
	d := Default()
	if len(c.Brands) == 0 {
		c.Brands = d.Brands
	}
	if len(c.Source) == 0 {
		c.Source = d.Source
	}
	if c.BuildPath == "" {
		c.BuildPath = d.BuildPath
	}
}

// Registry returns the brand registry with slug overrides applied.
func (c *Config) Registry() (*brand.Registry, error) {
	r, err := brand.NewRegistry(c.Brands...)
	if err != nil {
		return nil, err
	}
	for id, slug := range c.Slugs {
		if err := r.SetSlug(id, slug); err != nil {
			return nil, fmt.Errorf("slugs: %w", err)
		}
	}
	return r, nil
}

// Rewriter returns the reference rewriter for the configured vocabularies.
func (c *Config) Rewriter() *resolver.Rewriter {
	var categories, phrases []string
	if len(c.References.Categories) > 0 {
		categories = c.References.Categories
	}
	if len(c.References.Phrases) > 0 {
		phrases = c.References.Phrases
	}
	return resolver.NewRewriter(categories, phrases)
}

// SchemaFormat returns the parsed Format field.
// Returns schema.Unknown if the field is empty or invalid.
func (c *Config) SchemaFormat() schema.Format {
	f, err := schema.FromString(c.Format)
	if err != nil {
		return schema.Unknown
	}
	return f
}
