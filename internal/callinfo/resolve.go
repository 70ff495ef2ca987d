// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package callinfo

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/albertocavalcante/rswift/internal/option"
)

// Resolver turns command-line arguments into a CallInformation.
type Resolver struct {
	// Command is the name the tool was invoked as, used in help and
	// version output.
	Command string

	// Version is the tool version shown for --version.
	Version string

	// Env maps environment variable names to values. It is the only
	// source of environment defaults; the process environment is not
	// read implicitly.
	Env map[string]string

	// WorkDir is the directory relative paths are resolved against.
	// If empty, the process working directory is used.
	WorkDir string

	// Stat reports on the output path. If nil, os.Stat is used.
	Stat func(name string) (fs.FileInfo, error)

	// Logger receives debug output. If nil, nothing is logged.
	Logger *slog.Logger
}

// envBinding ties a mandatory option to the environment variable that
// supplies its default.
type envBinding struct {
	def  option.Definition
	env  string
	path bool
}

var (
	xcodeprojBinding         = envBinding{option.XcodeProject, "PROJECT_FILE_PATH", true}
	targetBinding            = envBinding{option.Target, "TARGET_NAME", false}
	bundleIdentifierBinding  = envBinding{option.BundleIdentifier, "PRODUCT_BUNDLE_IDENTIFIER", false}
	productModuleNameBinding = envBinding{option.ProductModuleName, "PRODUCT_MODULE_NAME", false}
	buildProductsDirBinding  = envBinding{option.BuildProductsDir, "BUILT_PRODUCTS_DIR", true}
	developerDirBinding      = envBinding{option.DeveloperDir, "DEVELOPER_DIR", true}
	sourceRootBinding        = envBinding{option.SourceRoot, "SOURCE_ROOT", true}
	sdkRootBinding           = envBinding{option.SDKRoot, "SDKROOT", true}
)

// Resolve parses args and resolves the result. Parse failures are
// reported as KindIllegalOption.
func (r *Resolver) Resolve(args []string) (*CallInformation, error) {
	parsed, positionals, err := option.Parse(args, option.Default)
	if err != nil {
		var invalid *option.InvalidOptionError
		if errors.As(err, &invalid) {
			return nil, illegalOption(invalid.Error(), r.help())
		}
		return nil, err
	}
	return r.ResolveParsed(parsed, positionals)
}

// ResolveParsed resolves already parsed options and positional arguments.
//
// Help and version requests are checked first and reported as *Error
// values whose Success method returns true. Otherwise exactly one
// positional argument, the output path, is required, and every mandatory
// option must have a command-line value or an environment default.
func (r *Resolver) ResolveParsed(parsed option.Parsed, positionals []string) (*CallInformation, error) {
	log := r.logger()
	help := r.help()

	if parsed.Has(option.Help) {
		return nil, &Error{Kind: KindHelpRequested, Help: help}
	}
	if parsed.Has(option.Version) {
		return nil, &Error{
			Kind:    KindVersionRequested,
			Message: fmt.Sprintf("%s (%s) %s", r.command(), ToolName, r.Version),
		}
	}

	switch len(positionals) {
	case 1:
	case 0:
		return nil, illegalOption("missing output path argument", help)
	default:
		return nil, illegalOption(fmt.Sprintf("expected exactly one output path, got %d: %s",
			len(positionals), strings.Join(positionals, " ")), help)
	}

	outputPath, err := r.outputPath(positionals[0])
	if err != nil {
		return nil, err
	}

	accessLevel := Internal
	if v, ok := parsed.First(option.AccessLevel); ok {
		accessLevel, err = ParseAccessModifier(v)
		if err != nil {
			return nil, illegalOption(fmt.Sprintf("illegal value %q for %s, expected public or internal",
				v, option.AccessLevel.Trigger), help)
		}
	}

	workDir := r.WorkDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	var missing *Error
	value := func(b envBinding) string {
		if missing != nil {
			return ""
		}
		v, source, ok := r.lookup(parsed, b)
		if !ok {
			missing = missingOption(fmt.Sprintf("missing value for %s, pass it on the command line or set $%s",
				b.def.Trigger, b.env), help)
			return ""
		}
		if b.path && !filepath.IsAbs(v) {
			v = filepath.Join(workDir, v)
		}
		log.Debug("resolved option", "option", b.def.Name, "source", source, "value", v)
		return v
	}

	info := &CallInformation{
		outputPath:        outputPath,
		accessLevel:       accessLevel,
		xcodeprojPath:     value(xcodeprojBinding),
		targetName:        value(targetBinding),
		bundleIdentifier:  value(bundleIdentifierBinding),
		productModuleName: value(productModuleNameBinding),
		buildProductsDir:  value(buildProductsDirBinding),
		developerDir:      value(developerDirBinding),
		sourceRoot:        value(sourceRootBinding),
		sdkRoot:           value(sdkRootBinding),
	}
	if missing != nil {
		return nil, missing
	}

	log.Debug("resolved call information", "info", info)
	return info, nil
}

// lookup applies the default chain for b: the first command-line value,
// then the environment. It also reports which source supplied the value.
func (r *Resolver) lookup(parsed option.Parsed, b envBinding) (value, source string, ok bool) {
	if v, ok := parsed.First(b.def); ok {
		return v, "flag", true
	}
	if v, ok := r.Env[b.env]; ok {
		return v, "env", true
	}
	return "", "", false
}

// outputPath appends GeneratedFileName when p names an existing
// directory. A path that does not exist is used as is.
func (r *Resolver) outputPath(p string) (string, error) {
	stat := r.Stat
	if stat == nil {
		stat = os.Stat
	}
	fi, err := stat(p)
	switch {
	case err == nil && fi.IsDir():
		return filepath.Join(p, GeneratedFileName), nil
	case err == nil, errors.Is(err, fs.ErrNotExist):
		return p, nil
	default:
		return "", fmt.Errorf("check output path %s: %w", p, err)
	}
}

func (r *Resolver) command() string {
	if r.Command == "" {
		return "rswift"
	}
	return r.Command
}

func (r *Resolver) help() string {
	return option.HelpString(r.command(), option.Default)
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

// EnvFromList converts "KEY=value" entries, as returned by os.Environ,
// into a map. Later entries win.
func EnvFromList(list []string) map[string]string {
	env := make(map[string]string, len(list))
	for _, kv := range list {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = v
	}
	return env
}
