// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows

package main

import (
	"syscall"
)

// freeDiskSpace returns the bytes available to unprivileged users on the
// filesystem holding path.
func freeDiskSpace(path string) (uint64, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return 0, err
	}
	// Bavail excludes blocks reserved for root, which Bfree counts.
	return stat.Bavail * uint64(stat.Bsize), nil
}
