// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"io"
	"os"

	"github.com/muse-player/muse/cmd/muse/cli"
	"github.com/muse-player/muse/lib/config"
	"github.com/muse-player/muse/lib/grammar"
)

// Executor carries out a resolved action against the playback
// service. The grammar core never performs I/O; everything after
// action construction — network calls, rendering with the selected
// format string — lives behind this interface.
type Executor interface {
	Execute(ctx context.Context, cfg *config.Config, action grammar.Action) error
}

// JSONExecutor emits the resolved action as JSON instead of calling a
// playback service. It is the default executor: scripts can pipe the
// output into their own tooling, and it doubles as a dry-run mode for
// inspecting how an invocation was interpreted.
type JSONExecutor struct {
	Out io.Writer
}

// NewJSONExecutor returns a JSONExecutor writing to stdout.
func NewJSONExecutor() *JSONExecutor {
	return &JSONExecutor{Out: os.Stdout}
}

// Execute writes the action envelope as indented JSON. The device
// from the config file fills in when the invocation named none.
func (e *JSONExecutor) Execute(_ context.Context, cfg *config.Config, action grammar.Action) error {
	switch a := action.(type) {
	case grammar.PlaybackAction:
		if a.Device == "" {
			a.Device = cfg.Device
		}
		action = a
	case grammar.PlayAction:
		if a.Device == "" {
			a.Device = cfg.Device
		}
		action = a
	}

	envelope := struct {
		Command string         `json:"command"`
		Action  grammar.Action `json:"action"`
	}{
		Command: action.Command(),
		Action:  action,
	}
	return cli.WriteJSON(e.Out, envelope)
}
