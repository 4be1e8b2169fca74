/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build runs the multi-pass CSS build: shared primitives first,
// then one pass per registered brand, then responsive overrides.
//
// Passes are independent. A pass that fails is logged and recorded in the
// report, and the remaining passes still run.
package build

import (
	"fmt"
	"path/filepath"

	"bennypowers.dev/brandtokens/buildctx"
	"bennypowers.dev/brandtokens/fs"
	"bennypowers.dev/brandtokens/internal/logger"
)

// DefaultBuildPath is where CSS files are written when no path is configured.
const DefaultBuildPath = "build/css/"

// Options configures a build run.
type Options struct {
	CompileOptions

	// BuildPath is the output directory. Empty uses DefaultBuildPath.
	BuildPath string

	// Strict fails a pass that has unresolved references instead of
	// writing them through verbatim.
	Strict bool

	// FS receives the output. Nil writes to the OS filesystem.
	FS fs.FileSystem

	// OnTransition is called on every state change.
	OnTransition func(Transition)
}

// Orchestrator runs build passes in a fixed order.
type Orchestrator struct {
	opts  Options
	state State
}

// New creates an orchestrator in the Idle state.
func New(opts Options) *Orchestrator {
	if opts.BuildPath == "" {
		opts.BuildPath = DefaultBuildPath
	}
	if opts.FS == nil {
		opts.FS = fs.NewOSFileSystem()
	}
	opts.CompileOptions.Registry = opts.registry()
	opts.CompileOptions.Rewriter = opts.rewriter()
	return &Orchestrator{opts: opts}
}

// State returns the current state.
func (o *Orchestrator) State() State {
	return o.state
}

// Run builds every context and returns the report. It never stops early.
func (o *Orchestrator) Run(sources []Source) *Report {
	report := &Report{}
	brandIndex := 0
	for _, ctx := range buildctx.Sequence(o.opts.Registry) {
		t := Transition{From: o.state, To: stateFor(ctx), Brand: -1, Context: ctx}
		if t.To == BuildingBrand {
			t.Brand = brandIndex
			brandIndex++
		}
		o.transition(t)

		result := o.runPass(sources, ctx)
		if result.Err != nil {
			logger.Error("[%s] build failed: %v", ctx, result.Err)
		}
		report.Passes = append(report.Passes, result)
	}
	o.transition(Transition{From: o.state, To: Done, Brand: -1})
	return report
}

func (o *Orchestrator) transition(t Transition) {
	logger.Debug("state %s", t)
	o.state = t.To
	if o.opts.OnTransition != nil {
		o.opts.OnTransition(t)
	}
}

func (o *Orchestrator) runPass(sources []Source, ctx buildctx.Context) PassResult {
	logger.Info("[%s] building", ctx)
	result := PassResult{Context: ctx}

	compiled, err := Compile(sources, ctx, o.opts.CompileOptions)
	if err != nil {
		result.Err = err
		return result
	}
	result.Tokens = len(compiled.Tokens)
	result.Unresolved = compiled.Resolution.Unresolved

	for _, u := range compiled.Resolution.Unresolved {
		logger.Warn("[%s] %v", ctx, u)
	}
	if o.opts.Strict {
		if err := compiled.Resolution.Err(); err != nil {
			result.Err = err
			return result
		}
	}

	if err := o.opts.FS.MkdirAll(o.opts.BuildPath, 0755); err != nil {
		result.Err = &FileWriteError{Path: o.opts.BuildPath, Err: err}
		return result
	}
	for _, out := range compiled.Outputs {
		data, err := compiled.Render(out)
		if err != nil {
			result.Err = err
			return result
		}
		dest := filepath.Join(o.opts.BuildPath, out.File.Destination)
		if err := o.opts.FS.WriteFile(dest, data, 0644); err != nil {
			result.Err = &FileWriteError{Path: dest, Err: err}
			return result
		}
		logger.Info("[%s] wrote %s (%d tokens)", ctx, dest, len(out.Tokens))
		result.Files = append(result.Files, dest)
	}
	return result
}

// Describe summarizes a report in one line per pass.
func Describe(r *Report) []string {
	lines := make([]string, 0, len(r.Passes))
	for _, p := range r.Passes {
		status := "ok"
		if p.Err != nil {
			status = "failed: " + p.Err.Error()
		}
		lines = append(lines, fmt.Sprintf("%-12s %d files, %d tokens, %d unresolved, %s",
			p.Context, len(p.Files), p.Tokens, len(p.Unresolved), status))
	}
	return lines
}
