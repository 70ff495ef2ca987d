// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Output contains generated source.
type Output struct {
	// Sections holds named parts of the file in the order they are written.
	Sections []Section
}

// Section is one named part of a generated file.
type Section struct {
	Name    string
	Content []byte
}

// Add appends a section to the output.
func (o *Output) Add(name string, content []byte) {
	o.Sections = append(o.Sections, Section{Name: name, Content: content})
}

// Bytes joins all sections, separated by a blank line.
func (o *Output) Bytes() []byte {
	parts := make([][]byte, 0, len(o.Sections))
	for _, s := range o.Sections {
		parts = append(parts, bytes.TrimRight(s.Content, "\n"))
	}
	out := bytes.Join(parts, []byte("\n\n"))
	if len(out) > 0 {
		out = append(out, '\n')
	}
	return out
}

// WriteIfChanged writes content to path unless the file already holds
// exactly that content, and reports whether it wrote. Leaving an
// unchanged file untouched keeps its modification time, so the build
// system does not recompile it.
func WriteIfChanged(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, content):
		return false, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
