// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "muse",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "playback",
				Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
					called = "playback"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"playback"}, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "playback" {
		t.Errorf("dispatched to %q, want %q", called, "playback")
	}
}

func TestCommand_Execute_DispatchesByAlias(t *testing.T) {
	var called string

	root := &Command{
		Name: "muse",
		Subcommands: []*Command{
			{
				Name:    "playback",
				Aliases: []string{"pb"},
				Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
					called = "playback"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"pb"}, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "playback" {
		t.Errorf("dispatched to %q, want %q", called, "playback")
	}
}

func TestCommand_Execute_RawArgsSkipFlagParsing(t *testing.T) {
	var receivedArgs []string

	command := &Command{
		Name: "playback",
		Flags: func() *pflag.FlagSet {
			// Display-only set: --seek would reject "-10" if parsed.
			flagSet := pflag.NewFlagSet("playback", pflag.ContinueOnError)
			flagSet.Int("seek", 0, "seek seconds")
			return flagSet
		},
		RawArgs: true,
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			receivedArgs = args
			return nil
		},
	}

	args := []string{"--seek", "-10", "-nnn"}
	if err := command.Execute(context.Background(), args, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(receivedArgs) != 3 || receivedArgs[0] != "--seek" || receivedArgs[1] != "-10" {
		t.Errorf("args = %v, want untouched %v", receivedArgs, args)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var configPath string
	var sub string

	command := &Command{
		Name: "muse",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("muse", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "config file path")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				sub = args[0]
			}
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"--config", "/tmp/muse.yaml", "status"}, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if configPath != "/tmp/muse.yaml" {
		t.Errorf("configPath = %q, want %q", configPath, "/tmp/muse.yaml")
	}
	if sub != "status" {
		t.Errorf("positional = %q, want %q", sub, "status")
	}
}

func TestCommand_Execute_GlobalFlagsStopAtSubcommand(t *testing.T) {
	// With subcommands present, interspersed parsing is off: tokens
	// after the subcommand name belong to the subcommand, even when
	// they look like the parent's flags.
	var configPath string
	var receivedArgs []string

	root := &Command{
		Name: "muse",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("muse", pflag.ContinueOnError)
			flagSet.StringVarP(&configPath, "config", "c", "", "config file path")
			return flagSet
		},
		Subcommands: []*Command{
			{
				Name:    "list",
				RawArgs: true,
				Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
					receivedArgs = args
					return nil
				},
			},
		},
	}

	args := []string{"--config", "/tmp/muse.yaml", "list", "--devices"}
	if err := root.Execute(context.Background(), args, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if configPath != "/tmp/muse.yaml" {
		t.Errorf("configPath = %q, want %q", configPath, "/tmp/muse.yaml")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "--devices" {
		t.Errorf("subcommand args = %v, want [--devices]", receivedArgs)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "muse",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("muse", pflag.ContinueOnError)
			flagSet.String("config", "", "config file path")
			flagSet.Int("tick-rate", 250, "event loop tick rate")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--confg"}, testLogger())
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --config") {
		t.Errorf("error = %q, want suggestion for '--config'", errStr)
	}
	if !strings.Contains(errStr, "confg") {
		t.Errorf("error = %q, should mention the bad flag", errStr)
	}
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "muse",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("muse", pflag.ContinueOnError)
			flagSet.String("config", "", "config file path")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--zzzzzzzzz"}, testLogger())
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "muse",
		Subcommands: []*Command{
			{Name: "playback"},
			{Name: "play"},
			{Name: "search"},
		},
	}

	err := root.Execute(context.Background(), []string{"playbak"}, testLogger())
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "did you mean \"playback\"") {
		t.Errorf("error = %q, want suggestion for 'playback'", err.Error())
	}
}

func TestCommand_Execute_AliasSuggestion(t *testing.T) {
	root := &Command{
		Name: "muse",
		Subcommands: []*Command{
			{Name: "playback", Aliases: []string{"pb"}},
			{Name: "search", Aliases: []string{"s"}},
		},
	}

	err := root.Execute(context.Background(), []string{"pg"}, testLogger())
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "did you mean \"pb\"") {
		t.Errorf("error = %q, want alias suggestion 'pb'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "muse",
		Subcommands: []*Command{
			{Name: "playback"},
			{Name: "search"},
		},
	}

	err := root.Execute(context.Background(), []string{"zzzzzzz"}, testLogger())
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			root := &Command{
				Name:    "muse",
				Summary: "Control music playback from the terminal",
				Subcommands: []*Command{
					{Name: "playback", Summary: "Interact with the playback of a device"},
				},
			}

			err := root.Execute(context.Background(), []string{helpArg}, testLogger())
			if err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
		})
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name: "muse",
		Subcommands: []*Command{
			{Name: "playback", Summary: "Interact with the playback of a device"},
		},
	}

	err := root.Execute(context.Background(), []string{}, testLogger())
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Execute() error = %v, want *ExitError", err)
	}
	if exitErr.Code != 2 {
		t.Errorf("exit code = %d, want 2", exitErr.Code)
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "muse",
		Description: "A terminal client for a remote music service.",
		Subcommands: []*Command{
			{Name: "playback", Aliases: []string{"pb"}, Summary: "Interact with the playback of a device"},
			{Name: "play", Aliases: []string{"p"}, Summary: "Play a URI or modify the play queue"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Toggle the playback",
				Command:     "muse playback --toggle",
			},
			{
				Description: "Play a track by URI",
				Command:     "muse play --uri spotify:track:abc123",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"A terminal client for a remote music service.",
		"Usage:",
		"muse <command> [flags]",
		"Commands:",
		"playback (pb)",
		"Interact with the playback of a device",
		"play (p)",
		"Examples:",
		"muse playback --toggle",
		"muse play --uri spotify:track:abc123",
		"Run 'muse <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_PrintHelp_WithFlags(t *testing.T) {
	command := &Command{
		Name:    "list",
		Summary: "List devices, liked songs, or playlists",
		Usage:   "muse list [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.BoolP("devices", "d", false, "Lists devices")
			flagSet.Int("limit", 20, "Specifies the maximum number of results (1 - 50)")
			return flagSet
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"muse list [flags]",
		"Flags:",
		"devices",
		"limit",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "muse"}
	playback := &Command{Name: "playback", parent: root}

	if got := root.fullName(); got != "muse" {
		t.Errorf("root.fullName() = %q, want %q", got, "muse")
	}
	if got := playback.fullName(); got != "muse playback" {
		t.Errorf("playback.fullName() = %q, want %q", got, "muse playback")
	}
}
