// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import "strconv"

// presence records how one flag was supplied: how many times it
// occurred and, for valued flags, the raw value token.
type presence struct {
	count  int
	value  string
	valued bool
}

// PresenceMap is the per-invocation record of which flags were
// supplied and with what count or value. It is built once by
// [Schema.Parse] and read-only afterwards, except for default
// back-fill by the conditional default resolver.
type PresenceMap struct {
	command string
	entries map[string]presence
}

func newPresenceMap(command string) *PresenceMap {
	return &PresenceMap{
		command: command,
		entries: make(map[string]presence),
	}
}

// Has reports whether the named flag was supplied at least once (or
// back-filled by a default rule).
func (pm *PresenceMap) Has(name string) bool {
	return pm.entries[name].count > 0
}

// Count returns the occurrence count for the named flag. Absent flags
// have count zero; this is how counted flags distinguish "skip one
// song" from "no skip requested".
func (pm *PresenceMap) Count(name string) int {
	return pm.entries[name].count
}

// Value returns the raw value of a valued flag and whether one was
// supplied.
func (pm *PresenceMap) Value(name string) (string, bool) {
	entry := pm.entries[name]
	return entry.value, entry.valued
}

// Int returns the value of an integer flag. The parser has already
// validated the literal, so a present value always converts.
func (pm *PresenceMap) Int(name string) (int, bool) {
	entry := pm.entries[name]
	if !entry.valued {
		return 0, false
	}
	n, err := strconv.Atoi(entry.value)
	if err != nil {
		// Unreachable for parser-built maps; valued entries are
		// validated against their kind before being recorded.
		return 0, false
	}
	return n, true
}

// recordBare records a boolean or counted occurrence.
func (pm *PresenceMap) recordBare(name string, counted bool) {
	entry := pm.entries[name]
	if counted || entry.count == 0 {
		entry.count++
	}
	pm.entries[name] = entry
}

// recordValue records a valued occurrence.
func (pm *PresenceMap) recordValue(name, value string) {
	pm.entries[name] = presence{count: 1, value: value, valued: true}
}

// fill back-fills a default value for an absent flag. Used only by
// the default resolver; it never overwrites a supplied value.
func (pm *PresenceMap) fill(name, value string) {
	if pm.entries[name].count > 0 {
		return
	}
	pm.entries[name] = presence{count: 1, value: value, valued: true}
}
