// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package python

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotFound is returned by Find when no candidate interpreter reports the
// desired version. Callers treat it as recoverable and fall back to Current.
var ErrNotFound = errors.New("no matching python interpreter found")

// Candidates returns the command names probed for the given version, most
// specific first: python<version>, python<major>, python.
func Candidates(version string) []string {
	major := version
	if i := strings.IndexByte(version, '.'); i > 0 {
		major = version[:i]
	}
	return []string{"python" + version, "python" + major, "python"}
}

// Find locates an interpreter on PATH whose reported version matches the
// desired version string. A candidate matches when its `--version` output,
// trimmed, ends with the exact version string. Returns the resolved
// executable path of the first match, or ErrNotFound.
func Find(ctx context.Context, version string) (string, error) {
	for _, name := range Candidates(version) {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}

		out, err := Version(ctx, path)
		if err != nil {
			continue
		}
		if strings.HasSuffix(out, version) {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// Version runs `<path> --version` and returns the trimmed output. Stderr is
// merged into the result because Python 2 prints its version there.
func Version(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, path, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", path, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Current returns the interpreter a bare invocation would use, probing
// python3 then python on PATH. This is the fallback when Find misses; it
// fails only when no Python exists at all.
func Current() (string, error) {
	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", errors.New("no python interpreter on PATH")
}
