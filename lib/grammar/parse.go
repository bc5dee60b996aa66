// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"fmt"
	"strconv"
	"strings"
)

// SyntaxError reports a token-level parse failure: an unknown flag, a
// missing or malformed value, or an unexpected argument. Token is the
// offending input token.
type SyntaxError struct {
	Command string
	Token   string
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Message)
}

func (s *Schema) syntaxErrorf(token, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Command: s.Command,
		Token:   token,
		Message: fmt.Sprintf(format, args...),
	}
}

// Parse scans the raw argument tokens for this command and builds the
// PresenceMap. It performs purely syntactic checks: flag existence,
// value arity, and numeric literal validity. Group constraints and
// cross-field rules are validated later in the pipeline.
//
// Valued flags consume the following token even when it starts with a
// hyphen, so "--seek -10" works; the sign is preserved for the
// builder to interpret.
func (s *Schema) Parse(args []string) (*PresenceMap, error) {
	pm := newPresenceMap(s.Command)

	positionalOnly := false
	for i := 0; i < len(args); i++ {
		token := args[i]

		switch {
		case positionalOnly:
			if err := s.parsePositional(pm, token); err != nil {
				return nil, err
			}

		case token == "--":
			positionalOnly = true

		case strings.HasPrefix(token, "--"):
			consumed, err := s.parseLong(pm, token, args[i+1:])
			if err != nil {
				return nil, err
			}
			i += consumed

		case strings.HasPrefix(token, "-") && len(token) > 1:
			consumed, err := s.parseShortCluster(pm, token, args[i+1:])
			if err != nil {
				return nil, err
			}
			i += consumed

		default:
			if err := s.parsePositional(pm, token); err != nil {
				return nil, err
			}
		}
	}

	if s.Positional != nil && s.Positional.Required && !pm.Has(s.Positional.Name) {
		return nil, s.syntaxErrorf("", "missing required argument %s", s.Positional.Placeholder)
	}

	return pm, nil
}

// parseLong handles a "--name" or "--name=value" token. It returns
// how many following tokens were consumed as a value.
func (s *Schema) parseLong(pm *PresenceMap, token string, rest []string) (int, error) {
	name, inline, hasInline := strings.Cut(strings.TrimPrefix(token, "--"), "=")

	spec, ok := s.byLong[name]
	if !ok {
		return 0, s.syntaxErrorf(token, "unknown flag --%s", name)
	}

	if !spec.Kind.takesValue() {
		if hasInline {
			return 0, s.syntaxErrorf(token, "flag --%s does not take a value", name)
		}
		pm.recordBare(spec.Name, spec.Kind == KindCounted)
		return 0, nil
	}

	if _, already := pm.Value(spec.Name); already {
		return 0, s.syntaxErrorf(token, "flag --%s given more than once", name)
	}

	if hasInline {
		return 0, s.recordChecked(pm, spec, token, inline)
	}
	if len(rest) == 0 {
		return 0, s.syntaxErrorf(token, "flag --%s requires a value", name)
	}
	return 1, s.recordChecked(pm, spec, token, rest[0])
}

// parseShortCluster handles a "-abc" token. Boolean and counted flags
// may be clustered; a valued flag must be last in the cluster and
// takes either the remainder of the token or the next argument.
func (s *Schema) parseShortCluster(pm *PresenceMap, token string, rest []string) (int, error) {
	cluster := strings.TrimPrefix(token, "-")

	for pos := 0; pos < len(cluster); pos++ {
		short := cluster[pos : pos+1]

		spec, ok := s.byShort[short]
		if !ok {
			return 0, s.syntaxErrorf(token, "unknown flag -%s", short)
		}

		if !spec.Kind.takesValue() {
			pm.recordBare(spec.Name, spec.Kind == KindCounted)
			continue
		}

		if _, already := pm.Value(spec.Name); already {
			return 0, s.syntaxErrorf(token, "flag --%s given more than once", spec.Name)
		}

		// Valued shorthand: the rest of the token is the value, or
		// the next argument when the shorthand ends the token.
		if remainder := cluster[pos+1:]; remainder != "" {
			return 0, s.recordChecked(pm, spec, token, remainder)
		}
		if len(rest) == 0 {
			return 0, s.syntaxErrorf(token, "flag --%s requires a value", spec.Name)
		}
		return 1, s.recordChecked(pm, spec, token, rest[0])
	}

	return 0, nil
}

func (s *Schema) parsePositional(pm *PresenceMap, token string) error {
	if s.Positional == nil {
		return s.syntaxErrorf(token, "unexpected argument %q", token)
	}
	if _, already := pm.Value(s.Positional.Name); already {
		return s.syntaxErrorf(token, "unexpected argument %q: %s already given",
			token, s.Positional.Placeholder)
	}
	pm.recordValue(s.Positional.Name, token)
	return nil
}

// recordChecked validates a raw value against the spec's kind and
// records it. Integer kinds must be valid literals; KindSignedInt
// additionally accepts a leading "+". The raw token is stored as-is so
// the builder can distinguish "+10" from "10".
func (s *Schema) recordChecked(pm *PresenceMap, spec *FlagSpec, token, raw string) error {
	switch spec.Kind {
	case KindInt, KindSignedInt:
		if _, err := strconv.Atoi(raw); err != nil {
			return s.syntaxErrorf(token, "flag --%s: invalid number %q", spec.Name, raw)
		}
	}
	pm.recordValue(spec.Name, raw)
	return nil
}
