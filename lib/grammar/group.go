// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"fmt"
	"strings"
)

// Exclusivity controls how many members of a group may be present
// together.
type Exclusivity int

const (
	// AtMostOne allows zero or one present member.
	AtMostOne Exclusivity = iota

	// FreeCombination allows any number of present members. The group
	// then exists only to carry conflict or requirement relationships.
	FreeCombination
)

// Group is a named constraint over a set of flags within one command.
type Group struct {
	// Name identifies the group in error messages.
	Name string

	// Flags are the member flag names.
	Flags []string

	// Exclusivity limits how many members may appear together.
	Exclusivity Exclusivity

	// Required demands at least one present member. Checked after
	// default resolution so that defaultable members count.
	Required bool

	// ConflictsWith names other groups that must have no present
	// member when this group has any.
	ConflictsWith []string
}

// Violation classifies which group rule was broken.
type Violation int

const (
	// MutuallyExclusive: more than one member of an AtMostOne group.
	MutuallyExclusive Violation = iota

	// MissingRequired: a required group has no present member.
	MissingRequired

	// GroupConflict: two conflicting groups both have present members.
	GroupConflict
)

// ValidationError reports the first violated group rule. Flags holds
// the present members of the violated group; for GroupConflict, Other
// and OtherFlags identify the conflicting group.
type ValidationError struct {
	Command    string
	Kind       Violation
	Group      string
	Other      string
	Flags      []string
	OtherFlags []string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MutuallyExclusive:
		return fmt.Sprintf("%s: %s cannot be used together", e.Command, flagList(e.Flags))
	case MissingRequired:
		return fmt.Sprintf("%s: one of %s is required", e.Command, flagList(e.Flags))
	case GroupConflict:
		return fmt.Sprintf("%s: %s cannot be combined with %s",
			e.Command, flagList(e.Flags), flagList(e.OtherFlags))
	}
	return fmt.Sprintf("%s: group %q violated", e.Command, e.Group)
}

// flagList formats flag names for error messages: "--a", "--a and
// --b", or "--a, --b and --c".
func flagList(names []string) string {
	dashed := make([]string, len(names))
	for i, name := range names {
		dashed[i] = "--" + name
	}
	switch len(dashed) {
	case 0:
		return ""
	case 1:
		return dashed[0]
	default:
		return strings.Join(dashed[:len(dashed)-1], ", ") + " and " + dashed[len(dashed)-1]
	}
}

// presentMembers returns the group members present in pm, in the
// group's declaration order.
func (g *Group) presentMembers(pm *PresenceMap) []string {
	var present []string
	for _, name := range g.Flags {
		if pm.Has(name) {
			present = append(present, name)
		}
	}
	return present
}

// validateGroups checks exclusivity and cross-group conflicts in
// declaration order, returning the first violation. Required-group
// checks run separately, after default resolution.
func validateGroups(pm *PresenceMap, groups []Group) error {
	byName := make(map[string]*Group, len(groups))
	for i := range groups {
		byName[groups[i].Name] = &groups[i]
	}

	for i := range groups {
		group := &groups[i]
		present := group.presentMembers(pm)

		if group.Exclusivity == AtMostOne && len(present) > 1 {
			return &ValidationError{
				Command: pm.command,
				Kind:    MutuallyExclusive,
				Group:   group.Name,
				Flags:   present,
			}
		}

		if len(present) == 0 {
			continue
		}
		for _, otherName := range group.ConflictsWith {
			other, ok := byName[otherName]
			if !ok {
				continue
			}
			otherPresent := other.presentMembers(pm)
			if len(otherPresent) > 0 {
				return &ValidationError{
					Command:    pm.command,
					Kind:       GroupConflict,
					Group:      group.Name,
					Other:      other.Name,
					Flags:      present,
					OtherFlags: otherPresent,
				}
			}
		}
	}

	return nil
}

// validateRequired checks required groups. It runs after default
// resolution so that back-filled members satisfy the requirement.
func validateRequired(pm *PresenceMap, groups []Group) error {
	for i := range groups {
		group := &groups[i]
		if !group.Required {
			continue
		}
		if len(group.presentMembers(pm)) == 0 {
			return &ValidationError{
				Command: pm.command,
				Kind:    MissingRequired,
				Group:   group.Name,
				Flags:   group.Flags,
			}
		}
	}
	return nil
}
