// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete muse CLI command tree. The
// four grammar commands (list, play, playback, search) are raw-args
// leaves: their tokens go straight to the grammar router, which
// produces a typed action that is handed to the [Executor].
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/muse-player/muse/cmd/muse/cli"
	"github.com/muse-player/muse/lib/config"
	"github.com/muse-player/muse/lib/grammar"
	"github.com/muse-player/muse/lib/version"
)

// rootParams holds the global options. The grammar core ignores
// these; they configure the collaborators around it.
type rootParams struct {
	Config   string `flag:"config,c"    desc:"path to the muse config file"`
	TickRate int    `flag:"tick-rate,t" desc:"UI tick rate in milliseconds, overrides the config file"`
}

// Root builds and returns the complete muse CLI command tree. Every
// resolved action is passed to executor together with the loaded
// configuration.
func Root(executor Executor) *cli.Command {
	var params rootParams
	router := grammar.Default()

	root := &cli.Command{
		Name: "muse",
		Description: `Muse: a terminal client for a remote music-playback service.

Control playback, play items by URI or name, list devices, liked
songs and playlists, and search the catalog.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("muse", &params)
		},
		Subcommands: []*cli.Command{
			playbackCommand(router, &params, executor),
			playCommand(router, &params, executor),
			listCommand(router, &params, executor),
			searchCommand(router, &params, executor),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					fmt.Printf("muse %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Show what is currently playing",
				Command:     "muse playback",
			},
			{
				Description: "Jump two songs forward",
				Command:     "muse pb -nn",
			},
			{
				Description: "Play a track by URI",
				Command:     "muse play --uri spotify:track:abc123",
			},
			{
				Description: "List your playlists",
				Command:     "muse list --playlists",
			},
			{
				Description: "Search for tracks",
				Command:     "muse search --tracks 'daft punk'",
			},
		},
	}

	return root
}

// grammarRun builds the Run function shared by the grammar commands:
// load config, route the raw tokens through the grammar pipeline, and
// hand the action to the executor.
func grammarRun(router *grammar.Router, params *rootParams, executor Executor, name string) func(context.Context, []string, *slog.Logger) error {
	return func(ctx context.Context, args []string, logger *slog.Logger) error {
		cfg, err := loadConfig(params)
		if err != nil {
			return err
		}

		action, err := router.Route(name, args)
		if err != nil {
			return err
		}

		logger.Debug("action resolved", "command", action.Command())
		return executor.Execute(ctx, cfg, action)
	}
}

// loadConfig loads the user configuration honoring the global flags:
// --config names an explicit file, --tick-rate overrides the file
// value.
func loadConfig(params *rootParams) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if params.Config != "" {
		cfg, err = config.LoadFile(params.Config)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if params.TickRate != 0 {
		cfg.TickRateMilliseconds = params.TickRate
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func playbackCommand(router *grammar.Router, params *rootParams, executor Executor) *cli.Command {
	return &cli.Command{
		Name:    "playback",
		Aliases: []string{"pb"},
		Summary: "Interacts with the playback of a device",
		Description: `Interact with the playback of the current or any other device; pick
another device with --device. With no options, the current playback
is displayed. The output format is configurable with --format.

Some options can be combined, others have to be alone:

  * --next and --previous cannot be used with other options
  * --status, --toggle, --transfer, --volume, --like, --dislike,
    --repeat and --shuffle can be used together
  * --share-track and --share-album cannot be used with other options`,
		Usage:   "muse playback [flags]",
		Flags:   router.Grammar("playback").Schema.FlagSet,
		RawArgs: true,
		Examples: []cli.Example{
			{
				Description: "Pause or resume playback",
				Command:     "muse playback --toggle",
			},
			{
				Description: "Jump three songs forward",
				Command:     "muse pb -nnn",
			},
			{
				Description: "Seek ten seconds backwards",
				Command:     "muse pb --seek -10",
			},
		},
		Run: grammarRun(router, params, executor, "playback"),
	}
}

func playCommand(router *grammar.Router, params *rootParams, executor Executor) *cli.Command {
	return &cli.Command{
		Name:    "play",
		Aliases: []string{"p"},
		Summary: "Plays a URI or another item by name",
		Description: `Play an item. With --uri the type is inferred from the URI. To play
something by name, specify the category: --track, --album, --artist,
--playlist or --show; the first match is played without confirmation.
Use --queue to add a track to the queue instead, and --random to play
a random song from a playlist.`,
		Usage:   "muse play [flags]",
		Flags:   router.Grammar("play").Schema.FlagSet,
		RawArgs: true,
		Examples: []cli.Example{
			{
				Description: "Play a track by URI",
				Command:     "muse play --uri spotify:track:abc123",
			},
			{
				Description: "Play the first album matching a name",
				Command:     "muse play --name 'Discovery' --album",
			},
			{
				Description: "Queue a track by name",
				Command:     "muse p -n 'One More Time' -t -q",
			},
		},
		Run: grammarRun(router, params, executor, "play"),
	}
}

func listCommand(router *grammar.Router, params *rootParams, executor Executor) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"l"},
		Summary: "Lists devices, liked songs and playlists",
		Description: `List devices, liked songs or playlists. --limit caps the number of
results (between 1 and 50). The --format is applied to every item
found.`,
		Usage:   "muse list [flags]",
		Flags:   router.Grammar("list").Schema.FlagSet,
		RawArgs: true,
		Examples: []cli.Example{
			{
				Description: "List available devices with their volume",
				Command:     "muse list --devices",
			},
			{
				Description: "List the first ten liked songs",
				Command:     "muse l --liked --limit 10",
			},
		},
		Run: grammarRun(router, params, executor, "list"),
	}
}

func searchCommand(router *grammar.Router, params *rootParams, executor Executor) *cli.Command {
	return &cli.Command{
		Name:    "search",
		Aliases: []string{"s"},
		Summary: "Searches for tracks, albums and more",
		Description: `Search the catalog and display the matching items. The category
cannot be inferred, so exactly one of --tracks, --albums, --artists,
--playlists or --shows is required. --limit caps the number of
results (between 1 and 50).`,
		Usage:   "muse search <QUERY> [flags]",
		Flags:   router.Grammar("search").Schema.FlagSet,
		RawArgs: true,
		Examples: []cli.Example{
			{
				Description: "Search for tracks",
				Command:     "muse search --tracks 'daft punk'",
			},
			{
				Description: "Search for five playlists",
				Command:     "muse s -p 'jazz' --limit 5",
			},
		},
		Run: grammarRun(router, params, executor, "search"),
	}
}
