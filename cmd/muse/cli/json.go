// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"io"
)

// WriteJSON marshals value as indented JSON and writes it to w. This
// is the scriptable output path: the default executor emits resolved
// actions through it so that shell pipelines can consume them.
func WriteJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
