// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/albertocavalcante/rswift/internal/callinfo"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]Generator)
)

// Register adds a generator to the registry.
func Register(g Generator) {
	mu.Lock()
	defer mu.Unlock()
	meta := g.Metadata()
	if _, exists := registry[meta.Name]; exists {
		panic(fmt.Sprintf("generator %q already registered", meta.Name))
	}
	registry[meta.Name] = g
}

// Get returns a generator by name.
func Get(name string) (Generator, bool) {
	mu.RLock()
	defer mu.RUnlock()
	g, ok := registry[name]
	return g, ok
}

// List returns all registered generator names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GenerateAll runs the named generators in order and merges their
// sections into one output. With no names, every registered generator
// runs in sorted name order.
func GenerateAll(ctx context.Context, info *callinfo.CallInformation, names ...string) (*Output, error) {
	if len(names) == 0 {
		names = List()
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no generators registered")
	}

	merged := &Output{}
	for _, name := range names {
		g, ok := Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown generator %q", name)
		}
		out, err := g.Generate(ctx, info)
		if err != nil {
			return nil, fmt.Errorf("generator %s: %w", name, err)
		}
		merged.Sections = append(merged.Sections, out.Sections...)
	}
	return merged, nil
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Generator)
}
