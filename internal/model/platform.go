// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"fmt"
	"strings"
)

// Platform identifies the host platform that product naming is resolved for.
type Platform string

const (
	// PlatformMacOS is the Apple desktop platform.
	PlatformMacOS Platform = "macos"
	// PlatformLinux covers every other host.
	PlatformLinux Platform = "linux"
)

// String returns the canonical platform name.
func (p Platform) String() string { return string(p) }

// IsApple reports whether the platform is the Apple desktop platform.
func (p Platform) IsApple() bool { return p == PlatformMacOS }

// ParsePlatform converts a user-supplied name into a Platform.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "macos", "macosx", "darwin":
		return PlatformMacOS, nil
	case "linux":
		return PlatformLinux, nil
	default:
		return "", fmt.Errorf("unknown platform %q: must be 'macos' or 'linux'", s)
	}
}

// HostPlatform maps a Go GOOS value to the Platform used for naming.
// Callers resolve it once, typically from runtime.GOOS, and pass it down.
func HostPlatform(goos string) Platform {
	if goos == "darwin" {
		return PlatformMacOS
	}
	return PlatformLinux
}
