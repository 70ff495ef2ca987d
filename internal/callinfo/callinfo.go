// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package callinfo resolves an rswift invocation into a CallInformation.
//
// Values come from command-line options first and from build environment
// variables second. Resolution either produces a complete CallInformation
// or stops with an *Error describing what the user has to change.
package callinfo

import (
	"log/slog"
)

const (
	// ToolName is shown in version output.
	ToolName = "R.swift"

	// GeneratedFileName is written inside the output path when it names
	// a directory.
	GeneratedFileName = "R.generated.swift"
)

// CallInformation is the fully resolved configuration of one run.
// All fields are set; it cannot be modified once returned by a Resolver.
type CallInformation struct {
	outputPath  string
	accessLevel AccessModifier

	xcodeprojPath     string
	targetName        string
	bundleIdentifier  string
	productModuleName string

	buildProductsDir string
	developerDir     string
	sdkRoot          string
	sourceRoot       string
}

// OutputPath is the file the generated code is written to.
func (c *CallInformation) OutputPath() string { return c.outputPath }

// AccessLevel is the access level of generated declarations.
func (c *CallInformation) AccessLevel() AccessModifier { return c.accessLevel }

// XcodeprojPath is the absolute path of the project file.
func (c *CallInformation) XcodeprojPath() string { return c.xcodeprojPath }

// TargetName is the project target being built.
func (c *CallInformation) TargetName() string { return c.targetName }

// BundleIdentifier is the bundle identifier of the target product.
func (c *CallInformation) BundleIdentifier() string { return c.bundleIdentifier }

// ProductModuleName is the Swift module name of the target.
func (c *CallInformation) ProductModuleName() string { return c.productModuleName }

// URLForSourceTreeFolder returns the absolute location of an anchor folder.
func (c *CallInformation) URLForSourceTreeFolder(f SourceTreeFolder) string {
	switch f {
	case BuildProductsDir:
		return c.buildProductsDir
	case DeveloperDir:
		return c.developerDir
	case SDKRoot:
		return c.sdkRoot
	case SourceRoot:
		return c.sourceRoot
	}
	panic("callinfo: unknown source tree folder " + f.String())
}

// ResolvePath returns the absolute location of p.
func (c *CallInformation) ResolvePath(p Path) string {
	return p.Resolve(c.URLForSourceTreeFolder)
}

// LogValue implements [slog.LogValuer].
func (c *CallInformation) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("output", c.outputPath),
		slog.String("accessLevel", c.accessLevel.String()),
		slog.String("xcodeproj", c.xcodeprojPath),
		slog.String("target", c.targetName),
		slog.String("bundleIdentifier", c.bundleIdentifier),
		slog.String("productModuleName", c.productModuleName),
		slog.String(BuildProductsDir.String(), c.buildProductsDir),
		slog.String(DeveloperDir.String(), c.developerDir),
		slog.String(SDKRoot.String(), c.sdkRoot),
		slog.String(SourceRoot.String(), c.sourceRoot),
	)
}
