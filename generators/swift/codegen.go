// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package swift

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/albertocavalcante/rswift/internal/callinfo"
)

const indent = "  "

func fileHeader() []byte {
	var buf bytes.Buffer
	buf.WriteString("//\n")
	buf.WriteString("// This is a generated file, do not edit!\n")
	fmt.Fprintf(&buf, "// Generated by %s, see https://github.com/mac-cain13/R.swift\n", callinfo.ToolName)
	buf.WriteString("//\n\n")
	buf.WriteString("import Foundation\n\n")
	buf.WriteString("private class BundleFinder {}\n")
	return buf.Bytes()
}

func rStruct(info *callinfo.CallInformation) []byte {
	access := info.AccessLevel().CodeDescription()

	var buf bytes.Buffer
	buf.WriteString("/// This `R` struct is generated and contains references to static resources.\n")
	fmt.Fprintf(&buf, "%sstruct R {\n", access)
	fmt.Fprintf(&buf, "%s%sstatic let bundle = Bundle(for: BundleFinder.self)\n", indent, access)
	fmt.Fprintf(&buf, "%s%sstatic let hostingBundle = Bundle(identifier: %s) ?? bundle\n",
		indent, access, swiftString(info.BundleIdentifier()))
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "%s%sstruct info {\n", indent, access)
	constants := []struct{ name, value string }{
		{"bundleIdentifier", info.BundleIdentifier()},
		{"productModuleName", info.ProductModuleName()},
		{"targetName", info.TargetName()},
	}
	for _, c := range constants {
		fmt.Fprintf(&buf, "%s%s%sstatic let %s = %s\n", indent, indent, access, c.name, swiftString(c.value))
	}
	fmt.Fprintf(&buf, "%s}\n\n", indent)

	fmt.Fprintf(&buf, "%sfileprivate init() {}\n", indent)
	buf.WriteString("}\n")
	return buf.Bytes()
}

var swiftEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// swiftString returns s as a Swift string literal.
func swiftString(s string) string {
	return `"` + swiftEscaper.Replace(s) + `"`
}
