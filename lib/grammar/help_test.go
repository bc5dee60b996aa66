// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import "testing"

func TestSchemaFlagSet(t *testing.T) {
	fs := playbackGrammar().Schema.FlagSet()

	seek := fs.Lookup("seek")
	if seek == nil {
		t.Fatal("FlagSet missing --seek")
	}

	volume := fs.Lookup("volume")
	if volume == nil {
		t.Fatal("FlagSet missing --volume")
	}
	if volume.Shorthand != "v" {
		t.Errorf("volume shorthand = %q, want %q", volume.Shorthand, "v")
	}

	format := fs.Lookup("format")
	if format == nil {
		t.Fatal("FlagSet missing --format")
	}
	if format.DefValue != "%f %s %t - %a" {
		t.Errorf("format default = %q, want %q", format.DefValue, "%f %s %t - %a")
	}
}

func TestSchemaFlagSet_LimitDefault(t *testing.T) {
	fs := listGrammar().Schema.FlagSet()
	limit := fs.Lookup("limit")
	if limit == nil {
		t.Fatal("FlagSet missing --limit")
	}
	if limit.DefValue != "20" {
		t.Errorf("limit default = %q, want %q", limit.DefValue, "20")
	}
}
