// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package swift generates the skeleton of the R struct: file header,
// bundle lookup and target information.
package swift

import (
	"context"

	"github.com/albertocavalcante/rswift/generator"
	"github.com/albertocavalcante/rswift/internal/callinfo"
)

// SwiftGenerator implements [generator.Generator] for the R struct skeleton.
type SwiftGenerator struct{}

// NewGenerator creates a new Swift generator.
func NewGenerator() *SwiftGenerator {
	return &SwiftGenerator{}
}

// Metadata returns information about this generator.
func (g *SwiftGenerator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:        "swift",
		Version:     "1.0.0",
		Description: "Generate the R struct with bundle and target information",
	}
}

// Generate produces the header and R struct sections for info.
func (g *SwiftGenerator) Generate(_ context.Context, info *callinfo.CallInformation) (*generator.Output, error) {
	out := &generator.Output{}
	out.Add("header", fileHeader())
	out.Add("R", rStruct(info))
	return out, nil
}
