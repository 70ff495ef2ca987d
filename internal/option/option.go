// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package option declares the command-line options understood by rswift
// and parses raw arguments against them.
//
// Options have a fixed arity: when a trigger is seen, exactly that many
// following tokens are consumed as its values. Grouped short flags
// ("-abc") and "--name=value" forms are not supported.
package option

import "strings"

// Trigger identifies the textual forms that activate an option.
// At least one of Short and Long is set.
type Trigger struct {
	Short string
	Long  string
}

// Short returns a trigger activated by "-name".
func Short(name string) Trigger {
	return Trigger{Short: name}
}

// Long returns a trigger activated by "--name".
func Long(name string) Trigger {
	return Trigger{Long: name}
}

// Mixed returns a trigger activated by both "-short" and "--long".
func Mixed(short, long string) Trigger {
	return Trigger{Short: short, Long: long}
}

// Matches reports whether token activates the trigger.
func (t Trigger) Matches(token string) bool {
	if t.Short != "" && token == "-"+t.Short {
		return true
	}
	return t.Long != "" && token == "--"+t.Long
}

// Forms returns the activating tokens, short form first.
func (t Trigger) Forms() []string {
	var forms []string
	if t.Short != "" {
		forms = append(forms, "-"+t.Short)
	}
	if t.Long != "" {
		forms = append(forms, "--"+t.Long)
	}
	return forms
}

// String returns the forms joined for display, e.g. "-p, --xcodeproj".
func (t Trigger) String() string {
	return strings.Join(t.Forms(), ", ")
}

// Definition describes one recognized option.
type Definition struct {
	// Name is the stable key under which parsed values are stored.
	Name string

	// Trigger lists the tokens that activate the option.
	Trigger Trigger

	// Arity is the number of value tokens consumed per occurrence.
	// Zero makes the option a boolean flag.
	Arity int

	// Help is the description shown in usage output.
	Help string
}

// String returns the trigger forms of the definition.
func (d Definition) String() string {
	return d.Trigger.String()
}

// IsFlag reports whether the option takes no values.
func (d Definition) IsFlag() bool {
	return d.Arity == 0
}
