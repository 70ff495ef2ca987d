// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package option

import (
	"fmt"
	"strings"
)

// Parsed maps definition names to the values captured for them.
// A name is present only if its option appeared at least once; flags
// map to an empty slice.
type Parsed map[string][]string

// Has reports whether d appeared on the command line.
func (p Parsed) Has(d Definition) bool {
	_, ok := p[d.Name]
	return ok
}

// Values returns every value captured for d, in command-line order.
func (p Parsed) Values(d Definition) []string {
	return p[d.Name]
}

// First returns the first value captured for d.
func (p Parsed) First(d Definition) (string, bool) {
	values := p[d.Name]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// InvalidOptionError reports a token that looks like an option but cannot
// be parsed as one.
type InvalidOptionError struct {
	// Token is the offending argument.
	Token string

	// Reason is empty for unknown options and describes the problem
	// otherwise.
	Reason string
}

func (e *InvalidOptionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid option %s", e.Token)
	}
	return fmt.Sprintf("invalid option %s: %s", e.Token, e.Reason)
}

// Parse scans args left to right against schema. Tokens that activate a
// definition consume the following Arity tokens as values; remaining
// tokens are returned as positional arguments in their original order.
func Parse(args []string, schema Schema) (Parsed, []string, error) {
	parsed := make(Parsed)
	var positionals []string

	for i := 0; i < len(args); i++ {
		token := args[i]

		d, ok := schema.Lookup(token)
		if !ok {
			if looksLikeOption(token) {
				return nil, nil, &InvalidOptionError{Token: token}
			}
			positionals = append(positionals, token)
			continue
		}

		if remaining := len(args) - i - 1; d.Arity > remaining {
			return nil, nil, &InvalidOptionError{
				Token:  token,
				Reason: fmt.Sprintf("expected %s, got %d", pluralValues(d.Arity), remaining),
			}
		}

		values := parsed[d.Name]
		if values == nil {
			values = []string{}
		}
		parsed[d.Name] = append(values, args[i+1:i+1+d.Arity]...)
		i += d.Arity
	}

	return parsed, positionals, nil
}

// looksLikeOption reports whether token has option syntax. A lone "-"
// conventionally names stdin or stdout and stays positional.
func looksLikeOption(token string) bool {
	return strings.HasPrefix(token, "-") && token != "-"
}

func pluralValues(n int) string {
	if n == 1 {
		return "1 value"
	}
	return fmt.Sprintf("%d values", n)
}
