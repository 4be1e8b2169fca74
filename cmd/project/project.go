/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project loads the brand token project for CLI commands from
// the global flags.
package project

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"bennypowers.dev/brandtokens/fs"
	"bennypowers.dev/brandtokens/internal/logger"
	"bennypowers.dev/brandtokens/load"
	"bennypowers.dev/brandtokens/schema"
)

// Viper keys of the global flags.
const (
	KeyRoot        = "root"
	KeyLogLevel    = "log-level"
	KeyInputFormat = "input-format"
)

// Load loads the project at the --root directory. files and brands
// replace the configured sources and brands when non-empty. The config's
// logLevel applies unless --log-level or BRANDTOKENS_LOG_LEVEL is set.
func Load(ctx context.Context, filesystem fs.FileSystem, files, brands []string) (*load.Project, error) {
	format, err := schema.FromString(viper.GetString(KeyInputFormat))
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", KeyInputFormat, err)
	}

	p, err := load.Load(ctx, load.Options{
		Root:   viper.GetString(KeyRoot),
		FS:     filesystem,
		Files:  files,
		Brands: brands,
		Format: format,
	})
	if err != nil {
		return nil, err
	}

	if !viper.IsSet(KeyLogLevel) && p.Config.LogLevel != "" {
		if err := logger.SetLevel(p.Config.LogLevel); err != nil {
			return nil, fmt.Errorf("config logLevel: %w", err)
		}
	}
	logger.Debug("loaded %d sources from %s", len(p.Sources), p.Root)
	return p, nil
}
