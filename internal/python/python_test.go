// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package python

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeInterpreter writes an executable shell script named name into dir
// that prints output for --version.
func fakeInterpreter(t *testing.T, dir, name, output string) {
	t.Helper()
	script := "#!/bin/sh\necho \"" + output + "\"\n"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0755); err != nil {
		t.Fatalf("failed to write fake interpreter %s: %v", name, err)
	}
}

func fakePath(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake interpreters are shell scripts")
	}
	dir := t.TempDir()
	t.Setenv("PATH", dir)
	return dir
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		version string
		want    []string
	}{
		{"3.12", []string{"python3.12", "python3", "python"}},
		{"3", []string{"python3", "python3", "python"}},
		{"2.7", []string{"python2.7", "python2", "python"}},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got := Candidates(tt.version)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Candidates(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestFind_MatchesVersionedCandidate(t *testing.T) {
	dir := fakePath(t)
	fakeInterpreter(t, dir, "python3.12", "Python 3.12")
	fakeInterpreter(t, dir, "python", "Python 3.11")

	path, err := Find(context.Background(), "3.12")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if filepath.Base(path) != "python3.12" {
		t.Errorf("Find returned %s, want python3.12", path)
	}
}

func TestFind_FallsThroughToGenericCandidate(t *testing.T) {
	dir := fakePath(t)
	// Only the bare python matches; the versioned names are absent.
	fakeInterpreter(t, dir, "python", "Python 3.12")

	path, err := Find(context.Background(), "3.12")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if filepath.Base(path) != "python" {
		t.Errorf("Find returned %s, want python", path)
	}
}

func TestFind_ExactSuffixMatchOnly(t *testing.T) {
	dir := fakePath(t)
	// A patch release does not end with "3.12", so it must not match.
	fakeInterpreter(t, dir, "python3.12", "Python 3.12.4")
	fakeInterpreter(t, dir, "python3", "Python 3.12.4")
	fakeInterpreter(t, dir, "python", "Python 3.12.4")

	_, err := Find(context.Background(), "3.12")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Find error = %v, want ErrNotFound", err)
	}
}

func TestFind_NoCandidatesOnPath(t *testing.T) {
	fakePath(t)

	_, err := Find(context.Background(), "3.12")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Find error = %v, want ErrNotFound", err)
	}
}

func TestFind_SkipsBrokenCandidate(t *testing.T) {
	dir := fakePath(t)
	// python3.12 exists but fails to run; discovery must move on.
	script := "#!/bin/sh\nexit 1\n"
	if err := os.WriteFile(filepath.Join(dir, "python3.12"), []byte(script), 0755); err != nil {
		t.Fatalf("failed to write broken interpreter: %v", err)
	}
	fakeInterpreter(t, dir, "python3", "Python 3.12")

	path, err := Find(context.Background(), "3.12")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if filepath.Base(path) != "python3" {
		t.Errorf("Find returned %s, want python3", path)
	}
}

func TestVersion(t *testing.T) {
	dir := fakePath(t)
	fakeInterpreter(t, dir, "python3", "Python 3.11.9")

	out, err := Version(context.Background(), filepath.Join(dir, "python3"))
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if out != "Python 3.11.9" {
		t.Errorf("Version = %q, want %q", out, "Python 3.11.9")
	}
}

func TestCurrent(t *testing.T) {
	dir := fakePath(t)
	fakeInterpreter(t, dir, "python3", "Python 3.11")

	path, err := Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if filepath.Base(path) != "python3" {
		t.Errorf("Current = %s, want python3", path)
	}
}

func TestCurrent_NoPython(t *testing.T) {
	fakePath(t)

	if _, err := Current(); err == nil {
		t.Error("Current should fail with no python on PATH")
	}
}
