// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package option

import "fmt"

// Schema is an ordered set of option definitions. Order determines the
// order of entries in help output.
type Schema []Definition

// Lookup returns the definition activated by token.
func (s Schema) Lookup(token string) (Definition, bool) {
	for _, d := range s {
		if d.Trigger.Matches(token) {
			return d, true
		}
	}
	return Definition{}, false
}

// Validate checks that names and trigger forms are unique and every
// definition is well-formed.
func (s Schema) Validate() error {
	names := make(map[string]bool)
	forms := make(map[string]string)
	for _, d := range s {
		if d.Name == "" {
			return fmt.Errorf("option %q has no name", d.Trigger)
		}
		if names[d.Name] {
			return fmt.Errorf("duplicate option name %q", d.Name)
		}
		names[d.Name] = true

		if d.Arity < 0 {
			return fmt.Errorf("option %q has negative arity %d", d.Name, d.Arity)
		}
		if d.Trigger.Short == "" && d.Trigger.Long == "" {
			return fmt.Errorf("option %q has no trigger", d.Name)
		}
		for _, f := range d.Trigger.Forms() {
			if other, ok := forms[f]; ok {
				return fmt.Errorf("trigger %s used by both %q and %q", f, other, d.Name)
			}
			forms[f] = d.Name
		}
	}
	return nil
}

// Options recognized by rswift.
var (
	Version = Definition{
		Name:    "version",
		Trigger: Long("version"),
		Help:    "Prints version information about this release.",
	}
	Help = Definition{
		Name:    "help",
		Trigger: Mixed("h", "help"),
		Help:    "Show help information.",
	}
	AccessLevel = Definition{
		Name:    "accessLevel",
		Trigger: Long("accessLevel"),
		Arity:   1,
		Help:    "The access level [public|internal] to use for the generated R-file, will default to internal.",
	}
	XcodeProject = Definition{
		Name:    "xcodeproj",
		Trigger: Mixed("p", "xcodeproj"),
		Arity:   1,
		Help:    "Path to the xcodeproj file, defaults to $PROJECT_FILE_PATH.",
	}
	Target = Definition{
		Name:    "target",
		Trigger: Mixed("t", "target"),
		Arity:   1,
		Help:    "Target the R-file should be generated for, defaults to $TARGET_NAME.",
	}
	BundleIdentifier = Definition{
		Name:    "bundleIdentifier",
		Trigger: Long("bundleIdentifier"),
		Arity:   1,
		Help:    "Bundle identifier the R-file is generated for, defaults to $PRODUCT_BUNDLE_IDENTIFIER.",
	}
	ProductModuleName = Definition{
		Name:    "productModuleName",
		Trigger: Long("productModuleName"),
		Arity:   1,
		Help:    "Product module name the R-file is generated for, defaults to $PRODUCT_MODULE_NAME.",
	}
	BuildProductsDir = Definition{
		Name:    "buildProductsDir",
		Trigger: Long("buildProductsDir"),
		Arity:   1,
		Help:    "Build products folder that Xcode uses during build, defaults to $BUILT_PRODUCTS_DIR.",
	}
	DeveloperDir = Definition{
		Name:    "developerDir",
		Trigger: Long("developerDir"),
		Arity:   1,
		Help:    "Developer folder that Xcode uses during build, defaults to $DEVELOPER_DIR.",
	}
	SourceRoot = Definition{
		Name:    "sourceRoot",
		Trigger: Long("sourceRoot"),
		Arity:   1,
		Help:    "Source root folder that Xcode uses during build, defaults to $SOURCE_ROOT.",
	}
	SDKRoot = Definition{
		Name:    "sdkRoot",
		Trigger: Long("sdkRoot"),
		Arity:   1,
		Help:    "SDK root folder that Xcode uses during build, defaults to $SDKROOT.",
	}
)

// Default is the schema used by the rswift command.
var Default = Schema{
	Version,
	Help,
	AccessLevel,
	XcodeProject,
	Target,
	BundleIdentifier,
	ProductModuleName,
	BuildProductsDir,
	DeveloperDir,
	SourceRoot,
	SDKRoot,
}
