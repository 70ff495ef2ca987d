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

// HelpString renders usage for command followed by every definition in
// schema order.
func HelpString(command string, schema Schema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [options] <output>\n", command)
	b.WriteString("\nArguments:\n")
	b.WriteString("  <output>\n")
	b.WriteString("      Output file, or folder to write the generated file into.\n")
	b.WriteString("\nOptions:\n")
	for _, d := range schema {
		fmt.Fprintf(&b, "  %s%s\n", d.Trigger, strings.Repeat(" <value>", d.Arity))
		if d.Help != "" {
			fmt.Fprintf(&b, "      %s\n", d.Help)
		}
	}
	return b.String()
}
