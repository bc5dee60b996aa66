// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"errors"
	"strings"
	"testing"
)

func groupTestSchema(t *testing.T) *Schema {
	t.Helper()
	return NewSchema("test", nil,
		FlagSpec{Name: "next", Short: "n", Kind: KindCounted},
		FlagSpec{Name: "previous", Short: "p", Kind: KindCounted},
		FlagSpec{Name: "toggle", Short: "t", Kind: KindBoolean},
		FlagSpec{Name: "status", Short: "s", Kind: KindBoolean},
		FlagSpec{Name: "share-track", Kind: KindBoolean},
		FlagSpec{Name: "share-album", Kind: KindBoolean},
	)
}

func parseFor(t *testing.T, schema *Schema, args ...string) *PresenceMap {
	t.Helper()
	pm, err := schema.Parse(args)
	if err != nil {
		t.Fatalf("Parse(%v) error: %v", args, err)
	}
	return pm
}

func TestValidateGroups_AtMostOne(t *testing.T) {
	schema := groupTestSchema(t)
	groups := []Group{
		{Name: "jumps", Flags: []string{"next", "previous"}, Exclusivity: AtMostOne},
	}

	if err := validateGroups(parseFor(t, schema, "--next"), groups); err != nil {
		t.Errorf("validateGroups(--next) = %v, want nil", err)
	}

	err := validateGroups(parseFor(t, schema, "--next", "--previous"), groups)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("validateGroups(--next --previous) = %v, want *ValidationError", err)
	}
	if validationErr.Kind != MutuallyExclusive {
		t.Errorf("Kind = %d, want MutuallyExclusive", validationErr.Kind)
	}
	if validationErr.Group != "jumps" {
		t.Errorf("Group = %q, want %q", validationErr.Group, "jumps")
	}
	if len(validationErr.Flags) != 2 {
		t.Errorf("Flags = %v, want both offending flags", validationErr.Flags)
	}
	if !strings.Contains(err.Error(), "--next") || !strings.Contains(err.Error(), "--previous") {
		t.Errorf("error = %q, should name both flags", err.Error())
	}
}

func TestValidateGroups_FreeCombination(t *testing.T) {
	schema := groupTestSchema(t)
	groups := []Group{
		{Name: "actions", Flags: []string{"toggle", "status"}, Exclusivity: FreeCombination},
	}

	if err := validateGroups(parseFor(t, schema, "--toggle", "--status"), groups); err != nil {
		t.Errorf("validateGroups(--toggle --status) = %v, want nil", err)
	}
}

func TestValidateGroups_GroupConflict(t *testing.T) {
	schema := groupTestSchema(t)
	groups := []Group{
		{Name: "jumps", Flags: []string{"next", "previous"}, Exclusivity: AtMostOne,
			ConflictsWith: []string{"single"}},
		{Name: "single", Flags: []string{"share-track", "share-album"}, Exclusivity: AtMostOne,
			ConflictsWith: []string{"jumps"}},
	}

	err := validateGroups(parseFor(t, schema, "--next", "--share-track"), groups)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("validateGroups = %v, want *ValidationError", err)
	}
	if validationErr.Kind != GroupConflict {
		t.Errorf("Kind = %d, want GroupConflict", validationErr.Kind)
	}
	// Declaration order: jumps is checked first, so it reports the
	// conflict against single.
	if validationErr.Group != "jumps" || validationErr.Other != "single" {
		t.Errorf("Group/Other = %q/%q, want jumps/single", validationErr.Group, validationErr.Other)
	}
	if !strings.Contains(err.Error(), "--next") || !strings.Contains(err.Error(), "--share-track") {
		t.Errorf("error = %q, should name the flags of both groups", err.Error())
	}
}

func TestValidateGroups_NoFalseConflictWhenAbsent(t *testing.T) {
	schema := groupTestSchema(t)
	groups := []Group{
		{Name: "jumps", Flags: []string{"next", "previous"}, Exclusivity: AtMostOne,
			ConflictsWith: []string{"single"}},
		{Name: "single", Flags: []string{"share-track", "share-album"}, Exclusivity: AtMostOne,
			ConflictsWith: []string{"jumps"}},
	}

	if err := validateGroups(parseFor(t, schema, "--next", "--next"), groups); err != nil {
		t.Errorf("validateGroups(--next --next) = %v, want nil", err)
	}
	if err := validateGroups(parseFor(t, schema, "--share-album"), groups); err != nil {
		t.Errorf("validateGroups(--share-album) = %v, want nil", err)
	}
}

func TestValidateGroups_FirstViolationWins(t *testing.T) {
	schema := groupTestSchema(t)
	groups := []Group{
		{Name: "jumps", Flags: []string{"next", "previous"}, Exclusivity: AtMostOne,
			ConflictsWith: []string{"single"}},
		{Name: "single", Flags: []string{"share-track", "share-album"}, Exclusivity: AtMostOne},
	}

	// Both the exclusivity of jumps and its conflict with single are
	// violated; the exclusivity check of the first-declared group is
	// reported.
	err := validateGroups(parseFor(t, schema, "--next", "--previous", "--share-track"), groups)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("validateGroups = %v, want *ValidationError", err)
	}
	if validationErr.Kind != MutuallyExclusive {
		t.Errorf("Kind = %d, want MutuallyExclusive (first declared rule)", validationErr.Kind)
	}
}

func TestValidateRequired(t *testing.T) {
	schema := groupTestSchema(t)
	groups := []Group{
		{Name: "jumps", Flags: []string{"next", "previous"}, Exclusivity: AtMostOne, Required: true},
	}

	if err := validateRequired(parseFor(t, schema, "--previous"), groups); err != nil {
		t.Errorf("validateRequired(--previous) = %v, want nil", err)
	}

	err := validateRequired(parseFor(t, schema), groups)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("validateRequired() = %v, want *ValidationError", err)
	}
	if validationErr.Kind != MissingRequired {
		t.Errorf("Kind = %d, want MissingRequired", validationErr.Kind)
	}
	if validationErr.Group != "jumps" {
		t.Errorf("Group = %q, want %q", validationErr.Group, "jumps")
	}
	if !strings.Contains(err.Error(), "one of --next and --previous is required") {
		t.Errorf("error = %q, should list the group members", err.Error())
	}
}
