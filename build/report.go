/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package build

import (
	"fmt"

	"bennypowers.dev/brandtokens/buildctx"
	"bennypowers.dev/brandtokens/resolver"
	"bennypowers.dev/brandtokens/schema"
	"go.uber.org/multierr"
)

// FileWriteError reports an output file that could not be written.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() []error {
	return []error{schema.ErrFileWrite, e.Err}
}

// PassResult is the outcome of one build pass.
type PassResult struct {
	Context buildctx.Context

	// Files lists the paths written, in plan order.
	Files []string

	// Tokens is the number of tokens extracted from the merged tree.
	Tokens int

	// Unresolved lists references that matched no token.
	Unresolved []*resolver.UnresolvedReferenceError

	// Err is the error that aborted the pass, if any.
	Err error
}

// OK reports whether the pass completed.
func (p PassResult) OK() bool {
	return p.Err == nil
}

// Report collects the results of every pass of a run, in run order.
type Report struct {
	Passes []PassResult
}

// Err combines the errors of every failed pass, each prefixed with its
// context, or returns nil when all passes completed.
func (r *Report) Err() error {
	var err error
	for _, p := range r.Passes {
		if p.Err != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", p.Context, p.Err))
		}
	}
	return err
}

// Failed returns the contexts whose pass failed.
func (r *Report) Failed() []buildctx.Context {
	var failed []buildctx.Context
	for _, p := range r.Passes {
		if p.Err != nil {
			failed = append(failed, p.Context)
		}
	}
	return failed
}

// Written returns every file written by the run.
func (r *Report) Written() []string {
	var files []string
	for _, p := range r.Passes {
		files = append(files, p.Files...)
	}
	return files
}

// Pass returns the result for ctx.
func (r *Report) Pass(ctx buildctx.Context) (PassResult, bool) {
	for _, p := range r.Passes {
		if p.Context == ctx {
			return p, true
		}
	}
	return PassResult{}, false
}
