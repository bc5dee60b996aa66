// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

// Muse is a terminal client for a remote music-playback service. It
// interprets subcommands for playback transport (playback), starting
// items (play), enumerating devices, liked songs and playlists
// (list), and catalog search (search), and emits the resolved action
// for an executor to carry out.
package main
