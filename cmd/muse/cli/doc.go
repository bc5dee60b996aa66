// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the muse CLI.
//
// The central type is [Command], which represents a named subcommand
// with optional nested [Command.Subcommands], a [pflag.FlagSet]
// factory, and a Run function. Commands are assembled into a tree in
// cmd/muse/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand and alias routing, and structured
// help output with examples.
//
// Leaf commands whose arguments are interpreted by the grammar router
// set [Command.RawArgs]: their tokens bypass pflag entirely and reach
// Run untouched, while the FlagSet from Flags still renders in help.
//
// When a user types an unknown subcommand or flag, the framework
// computes Levenshtein edit distance against all known names and
// suggests the closest match (threshold: distance <= 3). This is
// implemented in suggest.go.
package cli
