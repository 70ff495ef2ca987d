// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for code generators that run
// on a resolved rswift invocation.
package generator

import (
	"context"

	"github.com/albertocavalcante/rswift/internal/callinfo"
)

// Generator is the interface that all code generators must implement.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Generate produces source for the target described by info.
	Generate(ctx context.Context, info *callinfo.CallInformation) (*Output, error)
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier (e.g., "swift").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string
}
