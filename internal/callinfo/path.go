// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package callinfo

import (
	"fmt"
	"path/filepath"
)

// SourceTreeFolder is a build-system location that relative project paths
// are anchored to.
type SourceTreeFolder int

const (
	BuildProductsDir SourceTreeFolder = iota
	DeveloperDir
	SDKRoot
	SourceRoot
)

// SourceTreeFolders lists every anchor folder.
var SourceTreeFolders = []SourceTreeFolder{BuildProductsDir, DeveloperDir, SDKRoot, SourceRoot}

// ParseSourceTreeFolder maps the build setting name used in project files
// (e.g. "SOURCE_ROOT") to its folder.
func ParseSourceTreeFolder(s string) (SourceTreeFolder, error) {
	for _, f := range SourceTreeFolders {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown source tree folder %q", s)
}

// String returns the build setting name of the folder.
func (f SourceTreeFolder) String() string {
	switch f {
	case BuildProductsDir:
		return "BUILT_PRODUCTS_DIR"
	case DeveloperDir:
		return "DEVELOPER_DIR"
	case SDKRoot:
		return "SDKROOT"
	case SourceRoot:
		return "SOURCE_ROOT"
	}
	return fmt.Sprintf("SourceTreeFolder(%d)", int(f))
}

// Path is a location that is either absolute or relative to an anchor
// folder. The zero value is an empty absolute path.
type Path struct {
	folder   SourceTreeFolder
	rel      string
	relative bool
}

// AbsolutePath returns a Path for an already absolute location.
func AbsolutePath(p string) Path {
	return Path{rel: p}
}

// RelativePath returns a Path for rel inside folder.
func RelativePath(folder SourceTreeFolder, rel string) Path {
	return Path{folder: folder, rel: rel, relative: true}
}

// Folder returns the anchor folder and whether the path is relative.
func (p Path) Folder() (SourceTreeFolder, bool) {
	return p.folder, p.relative
}

// Resolve returns the absolute location of p, using lookup to find the
// anchor folder of relative paths.
func (p Path) Resolve(lookup func(SourceTreeFolder) string) string {
	if !p.relative {
		return p.rel
	}
	return filepath.Join(lookup(p.folder), p.rel)
}

func (p Path) String() string {
	if !p.relative {
		return p.rel
	}
	return "$(" + p.folder.String() + ")/" + p.rel
}
