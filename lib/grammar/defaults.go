// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

// DefaultRule supplies a substitute value for an absent flag when a
// different flag is present. Rules are tried in declared order and the
// first match wins, even when several predicates are simultaneously
// true; this makes the precedence among overlapping defaults auditable
// in the command tables rather than implicit in code.
type DefaultRule struct {
	// WhenPresent is the predicate flag whose presence triggers this
	// rule. It must be a flag of the same command, declared before the
	// rule list; the resolver never consults anything else.
	WhenPresent string

	// Value is the substitute recorded for the target flag.
	Value string
}

// FlagDefaults is the ordered conditional-default chain for one
// target flag.
type FlagDefaults struct {
	// Flag is the target flag name.
	Flag string

	// Rules are tried in order; first match wins.
	Rules []DefaultRule
}

// resolveDefaults back-fills absent flags. Conditional chains run
// first, in their declared order; afterwards any still-absent flag
// with a static default in the schema receives it. Present flags are
// never touched, and a flag with neither a matching rule nor a static
// default simply stays absent.
func resolveDefaults(schema *Schema, pm *PresenceMap, defaults []FlagDefaults) {
	for _, d := range defaults {
		if pm.Has(d.Flag) {
			continue
		}
		for _, rule := range d.Rules {
			if pm.Has(rule.WhenPresent) {
				pm.fill(d.Flag, rule.Value)
				break
			}
		}
	}

	for i := range schema.Flags {
		spec := &schema.Flags[i]
		if spec.Default == "" || pm.Has(spec.Name) {
			continue
		}
		pm.fill(spec.Name, spec.Default)
	}
}
