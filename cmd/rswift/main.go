// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command rswift generates a Swift R struct for an Xcode target.
//
// Usage:
//
//	rswift [flags] <output>
//
// Values not given as flags are read from the build environment Xcode
// provides to run script phases:
//
//	-p, --xcodeproj          $PROJECT_FILE_PATH
//	-t, --target             $TARGET_NAME
//	--bundleIdentifier       $PRODUCT_BUNDLE_IDENTIFIER
//	--productModuleName      $PRODUCT_MODULE_NAME
//	--buildProductsDir       $BUILT_PRODUCTS_DIR
//	--developerDir           $DEVELOPER_DIR
//	--sourceRoot             $SOURCE_ROOT
//	--sdkRoot                $SDKROOT
//	--accessLevel            public or internal (default: internal)
//
// Set RSWIFT_LOG_LEVEL=debug to see where every value came from.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/albertocavalcante/rswift/generator"
	"github.com/albertocavalcante/rswift/internal/callinfo"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args, os.Environ(), os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(argv, environ []string, stdout, stderr io.Writer) int {
	env := callinfo.EnvFromList(environ)
	logger := newLogger(stderr, env["RSWIFT_LOG_LEVEL"])

	command := "rswift"
	if len(argv) > 0 {
		command = filepath.Base(argv[0])
		argv = argv[1:]
	}
	logger.Debug("starting", "version", version, "commit", commit, "built", date)

	resolver := &callinfo.Resolver{
		Command: command,
		Version: version,
		Env:     env,
		Logger:  logger,
	}
	info, err := resolver.Resolve(argv)
	if err != nil {
		return report(stdout, stderr, err)
	}

	out, err := generator.GenerateAll(context.Background(), info)
	if err != nil {
		return report(stdout, stderr, fmt.Errorf("generate code: %w", err))
	}

	wrote, err := generator.WriteIfChanged(info.OutputPath(), out.Bytes())
	if err != nil {
		return report(stdout, stderr, err)
	}
	if wrote {
		logger.Info("wrote generated file", "path", info.OutputPath())
	} else {
		logger.Info("generated file unchanged", "path", info.OutputPath())
	}
	return 0
}

// report prints err and returns the exit code for it. Help and version
// requests go to stdout and exit successfully.
func report(stdout, stderr io.Writer, err error) int {
	var rerr *callinfo.Error
	if !errors.As(err, &rerr) {
		printError(stderr, err.Error())
		return 1
	}

	switch rerr.Kind {
	case callinfo.KindHelpRequested:
		fmt.Fprint(stdout, rerr.Help)
		return 0
	case callinfo.KindVersionRequested:
		fmt.Fprintln(stdout, rerr.Message)
		return 0
	}

	printError(stderr, rerr.Message)
	if rerr.Help != "" {
		fmt.Fprintf(stderr, "\n%s", rerr.Help)
	}
	return 1
}

func printError(w io.Writer, msg string) {
	color.New(color.FgRed, color.Bold).Fprint(w, "error:")
	fmt.Fprintf(w, " %s\n", msg)
}

// newLogger returns a text logger on w. level is one of debug, info,
// warn or error; anything else selects warn.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelWarn
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = slog.LevelWarn
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
