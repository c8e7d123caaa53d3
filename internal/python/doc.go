// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package python locates a Python interpreter matching a desired version.
//
// Discovery probes candidate command names on PATH in order of specificity
// (python<version>, python<major>, python) and accepts the first whose
// `--version` output ends with the exact desired version string. A miss is
// not fatal: callers fall back to whatever interpreter is currently
// available via Current.
package python
