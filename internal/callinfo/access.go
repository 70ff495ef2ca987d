// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package callinfo

import "fmt"

// AccessModifier is the Swift access level applied to generated code.
type AccessModifier int

const (
	// Internal is the default access level.
	Internal AccessModifier = iota
	Public
)

// ParseAccessModifier parses "public" or "internal".
func ParseAccessModifier(s string) (AccessModifier, error) {
	switch s {
	case "public":
		return Public, nil
	case "internal":
		return Internal, nil
	}
	return Internal, fmt.Errorf("unknown access level %q", s)
}

// String returns the Swift keyword.
func (m AccessModifier) String() string {
	if m == Public {
		return "public"
	}
	return "internal"
}

// CodeDescription returns the prefix to place before declarations.
// Internal is Swift's implicit default, so it renders as nothing.
func (m AccessModifier) CodeDescription() string {
	if m == Public {
		return "public "
	}
	return ""
}
