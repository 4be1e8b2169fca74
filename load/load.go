/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading a brand token project:
// its configuration and its token sources.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"bennypowers.dev/brandtokens/brand"
	"bennypowers.dev/brandtokens/build"
	"bennypowers.dev/brandtokens/config"
	"bennypowers.dev/brandtokens/fs"
	"bennypowers.dev/brandtokens/schema"
)

// ErrNoSources indicates that no token files were found.
var ErrNoSources = errors.New("no token files found")

// Options configures how a project is loaded.
type Options struct {
	// Root is the project directory. Defaults to the working directory.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Files are paths or globs that replace the configured sources.
	Files []string

	// Brands replaces the configured brand list when non-empty.
	Brands []string

	// Format overrides the configured leaf spelling.
	Format schema.Format
}

// Project is a loaded configuration with its token sources.
type Project struct {
	Root     string
	Config   *config.Config
	Registry *brand.Registry
	Format   schema.Format
	Sources  []build.Source
}

// Load loads the config from Root (defaults if absent), expands the
// source patterns and reads every source file.
func Load(ctx context.Context, opts Options) (*Project, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if len(opts.Brands) > 0 {
		cfg.Brands = opts.Brands
	}

	registry, err := cfg.Registry()
	if err != nil {
		return nil, err
	}

	format := opts.Format
	if format == schema.Unknown {
		format = cfg.SchemaFormat()
	}

	patterns := []string(cfg.Source)
	if len(opts.Files) > 0 {
		patterns = opts.Files
	}
	paths, err := config.ExpandPatterns(filesystem, root, patterns)
	if err != nil {
		return nil, fmt.Errorf("failed to expand sources: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w for %v", ErrNoSources, patterns)
	}

	sources := make([]build.Source, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		sources = append(sources, build.Source{Path: path, Data: data})
	}

	return &Project{
		Root:     root,
		Config:   cfg,
		Registry: registry,
		Format:   format,
		Sources:  sources,
	}, nil
}

// CompileOptions returns the per-pass options of the project.
func (p *Project) CompileOptions() build.CompileOptions {
	return build.CompileOptions{
		Registry: p.Registry,
		Rewriter: p.Config.Rewriter(),
		Format:   p.Format,
	}
}

// BuildOptions returns options for a full build writing through filesystem.
// A relative build path is resolved against the project root.
func (p *Project) BuildOptions(filesystem fs.FileSystem) build.Options {
	buildPath := p.Config.BuildPath
	if !filepath.IsAbs(buildPath) {
		buildPath = filepath.Join(p.Root, buildPath)
	}
	return build.Options{
		CompileOptions: p.CompileOptions(),
		BuildPath:      buildPath,
		Strict:         p.Config.Strict,
		FS:             filesystem,
	}
}
