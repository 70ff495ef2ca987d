// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities for rswift.
package testutil

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (typically the filename without extension).
	Name string

	// Description is the first comment block before any files.
	Description string

	// Args contains the arguments from the "Args: ..." line in the
	// description, split on whitespace.
	Args []string

	// ExitCode is the expected exit status from the "Exit: N" line.
	ExitCode int

	// Env is parsed from the optional "env" file of KEY=VALUE lines.
	Env map[string]string

	// Want maps output names (e.g., "R.generated.swift", "stderr") to
	// expected content.
	Want map[string][]byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment with an "Args: ..." line and, optionally,
//     an "Exit: N" line
//   - An optional "env" file with one KEY=VALUE per line
//   - One or more "want/<name>" files with expected output
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Env:         make(map[string]string),
		Want:        make(map[string][]byte),
	}

	if err := c.parseDescription(); err != nil {
		return nil, err
	}

	for _, f := range ar.Files {
		switch {
		case f.Name == "env":
			env, err := parseEnv(f.Data)
			if err != nil {
				return nil, fmt.Errorf("parse env: %w", err)
			}
			c.Env = env
		case strings.HasPrefix(f.Name, "want/"):
			relPath := strings.TrimPrefix(f.Name, "want/")
			c.Want[relPath] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected env or want/*)", f.Name)
		}
	}

	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}

	return c, nil
}

// parseDescription extracts "Args:" and "Exit:" lines from the description.
func (c *Case) parseDescription() error {
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Args:"):
			c.Args = strings.Fields(strings.TrimPrefix(line, "Args:"))
		case strings.HasPrefix(line, "Exit:"):
			code, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Exit:")))
			if err != nil {
				return fmt.Errorf("invalid exit code line %q: %w", line, err)
			}
			c.ExitCode = code
		}
	}
	return nil
}

// parseEnv parses KEY=VALUE lines. Blank lines and lines starting with
// "#" are ignored.
func parseEnv(data []byte) (map[string]string, error) {
	env := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %q is not KEY=VALUE", line)
		}
		env[k] = v
	}
	return env, sc.Err()
}

// EnvList returns the environment as sorted KEY=VALUE entries.
func (c *Case) EnvList() []string {
	list := make([]string, 0, len(c.Env))
	for k, v := range c.Env {
		list = append(list, k+"="+v)
	}
	sort.Strings(list)
	return list
}

// GenerateFunc is a function that runs one invocation.
// It returns a map of output name to content.
type GenerateFunc func(args []string, env map[string]string) (map[string][]byte, error)

// Run executes the test case using the provided generate function.
// It compares generated output against expected output and reports differences.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, err := generate(c.Args, c.Env)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	Compare(t, c.Want, got)
}

// Compare reports missing, unexpected and differing outputs.
func Compare(t *testing.T, want, got map[string][]byte) {
	t.Helper()

	// Check for missing expected files
	for wantFile := range want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}

	// Check for unexpected files
	for gotFile := range got {
		if _, ok := want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	for wantFile, wantContent := range want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing
		}

		wantNorm := normalizeContent(wantContent)
		gotNorm := normalizeContent(gotContent)

		if diff := cmp.Diff(wantNorm, gotNorm); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// normalizeContent normalizes content for comparison:
// - Trims trailing whitespace from each line
// - Ensures consistent line endings
// - Trims trailing newlines
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	result := strings.Join(lines, "\n")
	return strings.TrimRight(result, "\n")
}

// UpdateArchive updates a txtar archive with new generated content.
// Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	// Keep comment and env
	result := &txtar.Archive{
		Comment: ar.Comment,
	}

	for _, f := range ar.Files {
		if f.Name == "env" {
			result.Files = append(result.Files, f)
			break
		}
	}

	// Add want/* files in sorted order for determinism
	var wantFiles []string
	for name := range got {
		wantFiles = append(wantFiles, name)
	}
	sort.Strings(wantFiles)

	for _, name := range wantFiles {
		content := got[name]
		// Ensure trailing newline
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{
			Name: "want/" + name,
			Data: content,
		})
	}

	return result
}

// FormatArchive formats an archive to bytes.
func FormatArchive(ar *txtar.Archive) []byte {
	return txtar.Format(ar)
}

// LoadTestCases loads all txtar test cases from a directory.
func LoadTestCases(t *testing.T, dir string) []*Case {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}

		cases = append(cases, c)
	}

	// Sort by name for determinism
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases
}
