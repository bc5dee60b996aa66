// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports the muse build version.
package version

import "runtime/debug"

// version is the release version, overridden at build time with
// -ldflags "-X github.com/muse-player/muse/lib/version.version=...".
var version = "0.1.0-dev"

// Full returns the version string, with the VCS revision appended
// when the binary was built from a checkout.
func Full() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}

	revision := ""
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision == "" {
		return version
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if dirty {
		revision += "-dirty"
	}
	return version + " (" + revision + ")"
}
