/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import "errors"

// Sentinel errors shared by the build stages.
var (
	// ErrMalformedInput indicates a token source is not parseable structured data,
	// or a selected section does not have the expected shape.
	ErrMalformedInput = errors.New("malformed token input")

	// ErrUnresolvedReference indicates a reference names a path absent from the merged tree.
	ErrUnresolvedReference = errors.New("unresolved token reference")

	// ErrCircularReference indicates a circular reference was detected.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrFileWrite indicates an output file could not be written.
	ErrFileWrite = errors.New("cannot write output file")

	// ErrUnknownFormat indicates an unrecognized token spelling.
	ErrUnknownFormat = errors.New("unknown token format")
)
