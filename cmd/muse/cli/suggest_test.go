// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1}, // substitution
		{"abc", "ab", 1},  // deletion
		{"ab", "abc", 1},  // insertion
		{"abc", "bac", 2}, // transposition (counted as 2 edits)
		{"kitten", "sitting", 3},
		{"playback", "playbak", 1},
		{"search", "serach", 2},
		{"volume", "volme", 1},
		{"shuffle", "shufle", 1},
	}

	for _, test := range tests {
		t.Run(test.a+"→"+test.b, func(t *testing.T) {
			got := levenshtein(test.a, test.b)
			if got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestLevenshtein_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"abc", "abd"},
		{"hello", "helo"},
		{"playback", "playbak"},
	}

	for _, pair := range pairs {
		forward := levenshtein(pair[0], pair[1])
		reverse := levenshtein(pair[1], pair[0])
		if forward != reverse {
			t.Errorf("levenshtein(%q, %q) = %d, but reverse = %d",
				pair[0], pair[1], forward, reverse)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "playback", Aliases: []string{"pb"}},
		{Name: "play", Aliases: []string{"p"}},
		{Name: "list", Aliases: []string{"l"}},
		{Name: "search", Aliases: []string{"s"}},
		{Name: "version"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"playbak", "playback"},  // missing letter
		{"playbackk", "playback"}, // extra letter
		{"serach", "search"},     // transposition
		{"vrsion", "version"},    // missing letter
		{"lst", "list"},          // missing letter
		{"pd", "pb"},             // alias typo
		{"zzzzzzzzz", ""},        // nothing close
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := suggestCommand(test.input, commands)
			if got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	makeFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flagSet.StringP("format", "f", "", "")
		flagSet.StringP("device", "d", "", "")
		flagSet.String("transfer", "", "")
		flagSet.IntP("volume", "v", 0, "")
		flagSet.Bool("shuffle", false, "")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "close typo with double dash",
			args: []string{"--formt"},
			want: "--format",
		},
		{
			name: "close typo with single dash",
			args: []string{"-formt"},
			want: "--format",
		},
		{
			name: "transposition",
			args: []string{"--devcie"},
			want: "--device",
		},
		{
			name: "transfer typo",
			args: []string{"--transfr"},
			want: "--transfer",
		},
		{
			name: "defined shorthand is not flagged",
			args: []string{"-d"},
			want: "",
		},
		{
			name: "nothing close",
			args: []string{"--zzzzzzzzz"},
			want: "",
		},
		{
			name: "no flags",
			args: []string{"positional"},
			want: "",
		},
		{
			name: "flag with equals",
			args: []string{"--formt=%t"},
			want: "--format",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := suggestFlag(test.args, makeFlagSet())
			if got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}
