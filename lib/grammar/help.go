// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"strconv"

	"github.com/spf13/pflag"
)

// FlagSet synthesizes a pflag.FlagSet from the schema for help
// rendering. The CLI framework prints it with PrintDefaults; it is
// never used for parsing, because pflag cannot express counted runs
// feeding a magnitude or sign-significant hyphen values like
// "--seek -10".
func (s *Schema) FlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(s.Command, pflag.ContinueOnError)

	for _, spec := range s.Flags {
		switch spec.Kind {
		case KindBoolean:
			fs.BoolP(spec.Name, spec.Short, false, spec.Help)
		case KindCounted:
			fs.CountP(spec.Name, spec.Short, spec.Help)
		case KindInt:
			defaultValue := 0
			if spec.Default != "" {
				defaultValue, _ = strconv.Atoi(spec.Default)
			}
			fs.IntP(spec.Name, spec.Short, defaultValue, spec.Help)
		case KindString, KindSignedInt:
			fs.StringP(spec.Name, spec.Short, spec.Default, spec.Help)
		}
	}

	return fs
}
