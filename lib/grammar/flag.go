// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import "fmt"

// Kind describes the arity and value type of a flag.
type Kind int

const (
	// KindBoolean is a plain presence flag. Repeated occurrences
	// collapse to a single presence.
	KindBoolean Kind = iota

	// KindCounted is a presence flag where each occurrence increments
	// a counter, so "-nnn" means a count of three. Absence is count
	// zero, which is distinct from "present once".
	KindCounted

	// KindString takes exactly one string value.
	KindString

	// KindInt takes exactly one integer value.
	KindInt

	// KindSignedInt takes exactly one integer value where a leading
	// "+" or "-" is semantically meaningful (relative vs absolute),
	// not just numeric sign. The raw token is preserved so the
	// builder can distinguish "+10" from "10".
	KindSignedInt
)

// takesValue reports whether the kind consumes a value token.
func (k Kind) takesValue() bool {
	return k == KindString || k == KindInt || k == KindSignedInt
}

// FlagSpec is the static description of one flag within a command.
// Specs are defined once in the command tables at process start and
// never mutated.
type FlagSpec struct {
	// Name is the long flag name, unique within the command.
	Name string

	// Short is the single-character shorthand, or "" for none.
	Short string

	// Kind determines arity and value parsing.
	Kind Kind

	// Placeholder is the value name shown in help output for valued
	// flags (e.g. "DEVICE", "±SECONDS").
	Placeholder string

	// Default is the static default value for valued flags, applied
	// when the flag is absent and no conditional rule matched. Empty
	// means no static default.
	Default string

	// Required marks a positional argument that must be supplied.
	// Only meaningful for a schema's positional spec.
	Required bool

	// Help is the one-line description shown in help output.
	Help string
}

// Schema is the complete flag table for one command.
type Schema struct {
	// Command is the canonical subcommand name.
	Command string

	// Flags are the flag specs in declaration order.
	Flags []FlagSpec

	// Positional describes the single positional argument, or nil if
	// the command takes none.
	Positional *FlagSpec

	byLong  map[string]*FlagSpec
	byShort map[string]*FlagSpec
}

// NewSchema builds a Schema and its lookup indexes. It panics on
// duplicate names or shorthands: the tables are static data, so a
// collision is a programming error, not runtime input.
func NewSchema(command string, positional *FlagSpec, flags ...FlagSpec) *Schema {
	s := &Schema{
		Command:    command,
		Flags:      flags,
		Positional: positional,
		byLong:     make(map[string]*FlagSpec, len(flags)),
		byShort:    make(map[string]*FlagSpec, len(flags)),
	}

	for i := range s.Flags {
		spec := &s.Flags[i]
		if spec.Name == "" {
			panic(fmt.Sprintf("grammar.NewSchema(%q): flag %d has no name", command, i))
		}
		if _, dup := s.byLong[spec.Name]; dup {
			panic(fmt.Sprintf("grammar.NewSchema(%q): duplicate flag --%s", command, spec.Name))
		}
		s.byLong[spec.Name] = spec

		if spec.Short == "" {
			continue
		}
		if len(spec.Short) != 1 {
			panic(fmt.Sprintf("grammar.NewSchema(%q): shorthand %q for --%s is not a single character",
				command, spec.Short, spec.Name))
		}
		if _, dup := s.byShort[spec.Short]; dup {
			panic(fmt.Sprintf("grammar.NewSchema(%q): duplicate shorthand -%s", command, spec.Short))
		}
		s.byShort[spec.Short] = spec
	}

	if positional != nil && positional.Name == "" {
		panic(fmt.Sprintf("grammar.NewSchema(%q): positional argument has no name", command))
	}

	return s
}
