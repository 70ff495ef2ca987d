// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package callinfo

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/rswift/internal/option"
)

// buildEnv returns an environment that supplies every mandatory value.
func buildEnv() map[string]string {
	return map[string]string{
		"PROJECT_FILE_PATH":         "/src/App/App.xcodeproj",
		"TARGET_NAME":               "App",
		"PRODUCT_BUNDLE_IDENTIFIER": "com.example.App",
		"PRODUCT_MODULE_NAME":       "App",
		"BUILT_PRODUCTS_DIR":        "/build/Products",
		"DEVELOPER_DIR":             "/Applications/Xcode.app/Contents/Developer",
		"SOURCE_ROOT":               "/src/App",
		"SDKROOT":                   "/sdk/iPhoneOS.sdk",
	}
}

func newResolver(env map[string]string) *Resolver {
	return &Resolver{
		Command: "rswift",
		Version: "1.2.3",
		Env:     env,
		WorkDir: "/work",
	}
}

// requireKind asserts err is an *Error of the given kind and returns it.
func requireKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()
	var rerr *Error
	require.True(t, errors.As(err, &rerr), "error %v is not *callinfo.Error", err)
	require.Equal(t, kind, rerr.Kind, "message: %s", rerr.Message)
	return rerr
}

func TestResolveFromEnvironment(t *testing.T) {
	out := filepath.Join(t.TempDir(), "R.swift")

	info, err := newResolver(buildEnv()).Resolve([]string{out})
	require.NoError(t, err)

	require.Equal(t, out, info.OutputPath())
	require.Equal(t, Internal, info.AccessLevel())
	require.Equal(t, "/src/App/App.xcodeproj", info.XcodeprojPath())
	require.Equal(t, "App", info.TargetName())
	require.Equal(t, "com.example.App", info.BundleIdentifier())
	require.Equal(t, "App", info.ProductModuleName())
	require.Equal(t, "/build/Products", info.URLForSourceTreeFolder(BuildProductsDir))
	require.Equal(t, "/Applications/Xcode.app/Contents/Developer", info.URLForSourceTreeFolder(DeveloperDir))
	require.Equal(t, "/src/App", info.URLForSourceTreeFolder(SourceRoot))
	require.Equal(t, "/sdk/iPhoneOS.sdk", info.URLForSourceTreeFolder(SDKRoot))
}

func TestResolveFlagsOverrideEnvironment(t *testing.T) {
	out := filepath.Join(t.TempDir(), "R.swift")
	args := []string{
		"--accessLevel", "public",
		"-p", "/other/Other.xcodeproj",
		"--target", "Other",
		"--bundleIdentifier", "com.example.Other",
		"--productModuleName", "OtherModule",
		"--buildProductsDir", "/b",
		"--developerDir", "/d",
		"--sourceRoot", "/s",
		"--sdkRoot", "/k",
		out,
	}

	info, err := newResolver(buildEnv()).Resolve(args)
	require.NoError(t, err)

	require.Equal(t, Public, info.AccessLevel())
	require.Equal(t, "/other/Other.xcodeproj", info.XcodeprojPath())
	require.Equal(t, "Other", info.TargetName())
	require.Equal(t, "com.example.Other", info.BundleIdentifier())
	require.Equal(t, "OtherModule", info.ProductModuleName())
	require.Equal(t, "/b", info.URLForSourceTreeFolder(BuildProductsDir))
	require.Equal(t, "/d", info.URLForSourceTreeFolder(DeveloperDir))
	require.Equal(t, "/s", info.URLForSourceTreeFolder(SourceRoot))
	require.Equal(t, "/k", info.URLForSourceTreeFolder(SDKRoot))
}

func TestResolveFirstOccurrenceWins(t *testing.T) {
	out := filepath.Join(t.TempDir(), "R.swift")

	info, err := newResolver(buildEnv()).Resolve([]string{"-t", "First", "--target", "Second", out})
	require.NoError(t, err)
	require.Equal(t, "First", info.TargetName())
}

func TestResolveRelativePaths(t *testing.T) {
	out := filepath.Join(t.TempDir(), "R.swift")
	env := buildEnv()
	env["SOURCE_ROOT"] = "src"

	info, err := newResolver(env).Resolve([]string{"-p", "App.xcodeproj", out})
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/work", "App.xcodeproj"), info.XcodeprojPath())
	require.Equal(t, filepath.Join("/work", "src"), info.URLForSourceTreeFolder(SourceRoot))
	require.Equal(t, "App", info.TargetName(), "non-path values stay verbatim")
}

func TestResolveOutputPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "existing.swift")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	tests := []struct {
		name string
		arg  string
		want string
	}{
		{name: "directory", arg: dir, want: filepath.Join(dir, GeneratedFileName)},
		{name: "existing file", arg: file, want: file},
		{name: "missing file", arg: filepath.Join(dir, "new.swift"), want: filepath.Join(dir, "new.swift")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info, err := newResolver(buildEnv()).Resolve([]string{tc.arg})
			require.NoError(t, err)
			require.Equal(t, tc.want, info.OutputPath())
		})
	}
}

func TestResolveOutputStatFailure(t *testing.T) {
	r := newResolver(buildEnv())
	r.Stat = func(string) (fs.FileInfo, error) {
		return nil, fs.ErrPermission
	}

	info, err := r.Resolve([]string{"/locked/out"})
	require.Nil(t, info)
	require.ErrorIs(t, err, fs.ErrPermission)

	var rerr *Error
	require.False(t, errors.As(err, &rerr), "I/O failure must not be reported as a user error")
}

func TestResolvePositionalCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "none", args: nil},
		{name: "none with flags", args: []string{"--target", "App"}},
		{name: "two", args: []string{"a.swift", "b.swift"}},
		{name: "three", args: []string{"a", "b", "c"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info, err := newResolver(buildEnv()).Resolve(tc.args)
			require.Nil(t, info)
			rerr := requireKind(t, err, KindIllegalOption)
			require.Equal(t, option.HelpString("rswift", option.Default), rerr.Help)
		})
	}
}

func TestResolveAccessLevel(t *testing.T) {
	out := filepath.Join(t.TempDir(), "R.swift")

	tests := []struct {
		name    string
		args    []string
		want    AccessModifier
		wantErr bool
	}{
		{name: "default", args: []string{out}, want: Internal},
		{name: "public", args: []string{"--accessLevel", "public", out}, want: Public},
		{name: "internal", args: []string{"--accessLevel", "internal", out}, want: Internal},
		{name: "invalid", args: []string{"--accessLevel", "banana", out}, wantErr: true},
		{name: "case sensitive", args: []string{"--accessLevel", "Public", out}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info, err := newResolver(buildEnv()).Resolve(tc.args)
			if tc.wantErr {
				rerr := requireKind(t, err, KindIllegalOption)
				require.Contains(t, rerr.Message, "--accessLevel")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, info.AccessLevel())
		})
	}
}

func TestResolveUnknownOption(t *testing.T) {
	info, err := newResolver(buildEnv()).Resolve([]string{"--bogus", "out"})
	require.Nil(t, info)
	rerr := requireKind(t, err, KindIllegalOption)
	require.Contains(t, rerr.Message, "--bogus")
	require.NotEmpty(t, rerr.Help)
}

func TestResolveMissingValueForOption(t *testing.T) {
	_, err := newResolver(buildEnv()).Resolve([]string{"out", "--target"})
	rerr := requireKind(t, err, KindIllegalOption)
	require.Contains(t, rerr.Message, "--target")
}

func TestResolveVersion(t *testing.T) {
	tests := [][]string{
		{"--version"},
		{"a", "b", "--version"},
		{"--accessLevel", "banana", "--version"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			// The environment is empty: version must not reach option checks.
			_, err := newResolver(nil).Resolve(args)
			rerr := requireKind(t, err, KindVersionRequested)
			require.Equal(t, "rswift (R.swift) 1.2.3", rerr.Message)
			require.True(t, rerr.Success())
		})
	}
}

func TestResolveHelp(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		t.Run(flag, func(t *testing.T) {
			_, err := newResolver(nil).Resolve([]string{flag, "--version"})
			rerr := requireKind(t, err, KindHelpRequested)
			require.True(t, rerr.Success())
			require.Equal(t, option.HelpString("rswift", option.Default), rerr.Help)
			require.Equal(t, rerr.Help, rerr.Error())
		})
	}
}

func TestResolveMissingOption(t *testing.T) {
	out := filepath.Join(t.TempDir(), "R.swift")

	tests := []struct {
		env     string
		trigger string
	}{
		{"PROJECT_FILE_PATH", "-p, --xcodeproj"},
		{"TARGET_NAME", "-t, --target"},
		{"PRODUCT_BUNDLE_IDENTIFIER", "--bundleIdentifier"},
		{"PRODUCT_MODULE_NAME", "--productModuleName"},
		{"BUILT_PRODUCTS_DIR", "--buildProductsDir"},
		{"DEVELOPER_DIR", "--developerDir"},
		{"SOURCE_ROOT", "--sourceRoot"},
		{"SDKROOT", "--sdkRoot"},
	}

	for _, tc := range tests {
		t.Run(tc.env, func(t *testing.T) {
			env := buildEnv()
			delete(env, tc.env)

			info, err := newResolver(env).Resolve([]string{out})
			require.Nil(t, info)
			rerr := requireKind(t, err, KindMissingOption)
			require.Contains(t, rerr.Message, tc.trigger)
			require.Contains(t, rerr.Message, "$"+tc.env)
			require.NotEmpty(t, rerr.Help)
			require.False(t, rerr.Success())
		})
	}
}

func TestResolveEmptyEnvironmentValueCounts(t *testing.T) {
	out := filepath.Join(t.TempDir(), "R.swift")
	env := buildEnv()
	env["TARGET_NAME"] = ""

	info, err := newResolver(env).Resolve([]string{out})
	require.NoError(t, err)
	require.Equal(t, "", info.TargetName())
}

func TestEnvFromList(t *testing.T) {
	env := EnvFromList([]string{"A=1", "B=x=y", "EMPTY=", "BROKEN", "A=2"})
	require.Equal(t, map[string]string{"A": "2", "B": "x=y", "EMPTY": ""}, env)
}
