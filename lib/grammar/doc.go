// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

// Package grammar implements the command grammar of the muse CLI: the
// layer that turns raw command-line tokens into a single validated
// [Action] describing what the playback service should do.
//
// The grammar is declarative. Each subcommand (list, play, playback,
// search) is described by a [Schema] of [FlagSpec] records, a set of
// [Group] constraints (mutual exclusion, conflicts, requirements), and
// an ordered list of conditional default rules. [Router.Route] runs
// the full pipeline for one invocation:
//
//	parse → validate exclusivity/conflicts → resolve defaults →
//	validate required groups → build typed Action
//
// The pipeline short-circuits on the first violated rule, so the user
// is always shown exactly one thing to fix. It is a pure function of
// the token sequence and the static tables: no I/O, no shared state,
// and the same input always produces the same Action or the same
// error.
//
// Three error types cover the taxonomy: [SyntaxError] (unknown flag,
// missing value, bad numeric literal), [ValidationError] (a group
// constraint was violated), and [BuildError] (a cross-field rule or
// numeric bound was violated). All are fatal to the invocation; none
// are retryable.
//
// Executing the resulting Action (network calls, rendering the
// selected format string) is the caller's concern; this package only
// decides what to do and which output format applies.
package grammar
