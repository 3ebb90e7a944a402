// Package errors provides error handling for atlas.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel marking for typed error taxonomies
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := scanDir(); err != nil {
//	    return errors.Wrap(err, "failed to scan asset directory")
//	}
//
//	// Tag an error with a sentinel while keeping its message
//	return errors.Mark(errors.Newf("asset '%s' not found", name), ErrNotFound)
//
//	// Check errors
//	if errors.Is(err, asset.ErrNotFound) {
//	    // handle not found
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is         = crdb.Is
	IsAny      = crdb.IsAny
	As         = crdb.As
	Unwrap     = crdb.Unwrap
	UnwrapOnce = crdb.UnwrapOnce
	UnwrapAll  = crdb.UnwrapAll
)

// Sentinel tagging. Mark attaches a sentinel to an error so that
// errors.Is(err, sentinel) holds without the sentinel's message leaking
// into err.Error(). The asset package builds its error taxonomy on this.
var (
	Mark          = crdb.Mark
	Join          = crdb.Join
	CombineErrors = crdb.CombineErrors
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)
