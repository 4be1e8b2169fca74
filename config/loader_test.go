/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"slices"
	"testing"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/brandtokens/schema"
	"bennypowers.dev/brandtokens/testutil"
)

func TestLoad_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if want := []string{"BrandA", "BrandB", "Brand C"}; !slices.Equal(cfg.Brands, want) {
		t.Errorf("Brands = %v, want %v", cfg.Brands, want)
	}
	if cfg.Slugs["Brand C"] != "charlie" {
		t.Errorf("Slugs = %v", cfg.Slugs)
	}
	if len(cfg.Source) != 2 || cfg.Source[1] != "tokens/brands/*.json" {
		t.Errorf("Source = %v", cfg.Source)
	}
	if cfg.BuildPath != "dist/css" {
		t.Errorf("BuildPath = %q", cfg.BuildPath)
	}
	if !cfg.Strict {
		t.Error("expected strict")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.SchemaFormat() != schema.TokensStudio {
		t.Errorf("SchemaFormat() = %v", cfg.SchemaFormat())
	}
	if !slices.Equal(cfg.References.Categories, []string{"Colour", "Brand"}) {
		t.Errorf("References.Categories = %v", cfg.References.Categories)
	}
}

func TestLoad_JSON(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if len(cfg.Source) != 1 || cfg.Source[0] != "design/**/*.tokens.json" {
		t.Errorf("string source not accepted: %v", cfg.Source)
	}
	if cfg.SchemaFormat() != schema.DTCG {
		t.Errorf("SchemaFormat() = %v", cfg.SchemaFormat())
	}

	// Unset fields take defaults.
	if cfg.BuildPath != DefaultBuildPath {
		t.Errorf("BuildPath = %q, want default", cfg.BuildPath)
	}
	if !slices.Equal(cfg.Brands, []string{"BrandA", "BrandB"}) {
		t.Errorf("Brands = %v, want default", cfg.Brands)
	}
}

func TestLoad_NotFound(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/empty", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config when not found, got %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/empty", "/project")
	mfs.AddFile("/project/.config/brand-tokens.yaml", "brands: {not: [a list", 0644)

	if _, err := Load(mfs, "/project"); err == nil {
		t.Error("expected error for invalid YAML")
	}
	if cfg := LoadOrDefault(mfs, "/project"); cfg.BuildPath != DefaultBuildPath {
		t.Errorf("LoadOrDefault() = %+v, want defaults", cfg)
	}
}

func TestLoadOrDefault_NotFound(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/empty", "/project")

	cfg := LoadOrDefault(mfs, "/project")
	if cfg == nil {
		t.Fatal("expected default config, got nil")
	}
	if len(cfg.Source) != 1 || cfg.Source[0] != DefaultSource {
		t.Errorf("Source = %v, want default", cfg.Source)
	}
	if cfg.Strict {
		t.Error("default config should not be strict")
	}
}

func TestConfig_ExpandSources(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	paths, err := cfg.ExpandSources(mfs, "/project")
	if err != nil {
		t.Fatalf("ExpandSources() error = %v", err)
	}

	want := []string{
		"/project/tokens/primitives.json",
		"/project/tokens/brands/brand-a.json",
		"/project/tokens/brands/brand-b.json",
	}
	if !slices.Equal(paths, want) {
		t.Errorf("ExpandSources() = %v, want %v", paths, want)
	}
}

func TestExpandPatterns(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{"doublestar", []string{"tokens/**/*.json"}, []string{
			"/project/tokens/brands/brand-a.json",
			"/project/tokens/brands/brand-b.json",
			"/project/tokens/primitives.json",
		}},
		{"deduplicated", []string{"tokens/brands/brand-a.json", "tokens/brands/*.json"}, []string{
			"/project/tokens/brands/brand-a.json",
			"/project/tokens/brands/brand-b.json",
		}},
		{"plain path passes through", []string{"missing.json"}, []string{"/project/missing.json"}},
		{"absolute", []string{"/project/tokens/primitives.json"}, []string{"/project/tokens/primitives.json"}},
		{"missing base directory", []string{"nowhere/**/*.json"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPatterns(mfs, "/project", tt.patterns)
			if err != nil {
				t.Fatalf("ExpandPatterns() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ExpandPatterns() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandPatterns_BadPattern(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	_, err := ExpandPatterns(mfs, "/project", []string{"tokens/[.json"})
	if !errors.Is(err, doublestar.ErrBadPattern) {
		t.Errorf("ExpandPatterns() error = %v, want ErrBadPattern", err)
	}
}

func TestConfig_Registry(t *testing.T) {
	cfg := &Config{
		Brands: []string{"BrandA", "Brand C"},
		Slugs:  map[string]string{"Brand C": "charlie"},
	}
	r, err := cfg.Registry()
	if err != nil {
		t.Fatalf("Registry() error = %v", err)
	}
	if got := r.Slugs(); !slices.Equal(got, []string{"brand-a", "charlie"}) {
		t.Errorf("Slugs() = %v", got)
	}

	cfg.Slugs = map[string]string{"Nope": "x"}
	if _, err := cfg.Registry(); err == nil {
		t.Error("expected error for slug of unregistered brand")
	}

	cfg = &Config{Brands: []string{"A", "A"}}
	if _, err := cfg.Registry(); err == nil {
		t.Error("expected error for duplicate brands")
	}
}

func TestConfig_Rewriter(t *testing.T) {
	cfg := &Config{References: References{Categories: []string{"Colour"}}}
	r := cfg.Rewriter()

	// Only the configured category is stripped; phrases keep their defaults.
	if got := r.RewriteReference("Colour.Brand.Font family.Blue"); got != "Brand.Blue" {
		t.Errorf("RewriteReference() = %q, want %q", got, "Brand.Blue")
	}
}
