// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small filesystem helpers shared by the pyrig
// packages. The only resident today is the atomic file writer used for
// everything pyrig synthesizes on disk (default config, empty requirements
// files, placeholder entry scripts).
package util
