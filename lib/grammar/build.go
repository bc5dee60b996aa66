// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"fmt"
	"strconv"
)

// BuildError reports a cross-field rule violation or numeric bound
// violation found while constructing an Action. Field names the flag
// the user needs to fix.
type BuildError struct {
	Command string
	Field   string
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: --%s: %s", e.Command, e.Field, e.Message)
}

func buildErrorf(pm *PresenceMap, field, format string, args ...any) *BuildError {
	return &BuildError{
		Command: pm.command,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// limitBounds validates the shared --limit flag. The resolver has
// already back-filled the static default, so the flag is always
// present by the time a builder runs.
func limitBounds(pm *PresenceMap) (int, error) {
	limit, _ := pm.Int("limit")
	if limit < 1 || limit > 50 {
		return 0, buildErrorf(pm, "limit", "must be between 1 and 50, got %d", limit)
	}
	return limit, nil
}

// buildPlayback resolves a playback invocation to a single transport
// operation. Bounds on --volume and the --seek literal are enforced
// whenever those flags are present, even if another flag ends up
// selecting the operation; no Action with an out-of-range field is
// ever returned.
//
// When several co-occurring action flags are present (the
// free-combination groups allow e.g. --status --toggle), the
// operation is chosen by declared order: toggle, status, share-track,
// share-album, transfer, like, dislike, shuffle, repeat, next,
// previous, seek, volume. Status is the fallback when nothing
// matched.
func buildPlayback(pm *PresenceMap) (Action, error) {
	action := PlaybackAction{Op: OpStatus}
	action.Device, _ = pm.Value("device")
	action.Format, _ = pm.Value("format")

	volume := 0
	if raw, ok := pm.Value("volume"); ok {
		volume, _ = strconv.Atoi(raw)
		if volume < 1 || volume > 100 {
			return nil, buildErrorf(pm, "volume", "must be between 1 and 100, got %d", volume)
		}
	}

	var seekMode SeekMode
	seekSeconds := 0
	if raw, ok := pm.Value("seek"); ok {
		seekMode, seekSeconds = parseSeek(raw)
	}

	switch {
	case pm.Has("toggle"):
		action.Op = OpToggle
	case pm.Has("status"):
		action.Op = OpStatus
	case pm.Has("share-track"):
		action.Op = OpShareTrack
	case pm.Has("share-album"):
		action.Op = OpShareAlbum
	case pm.Has("transfer"):
		action.Op = OpTransfer
		action.TransferTo, _ = pm.Value("transfer")
	case pm.Has("like"):
		action.Op = OpLike
	case pm.Has("dislike"):
		action.Op = OpDislike
	case pm.Has("shuffle"):
		action.Op = OpToggleShuffle
	case pm.Has("repeat"):
		action.Op = OpCycleRepeat
	case pm.Count("next") > 0:
		action.Op = OpSkipNext
		action.Skip = pm.Count("next")
	case pm.Count("previous") > 0:
		action.Op = OpSkipPrevious
		action.Skip = pm.Count("previous")
	case pm.Has("seek"):
		action.Op = OpSeek
		action.SeekMode = seekMode
		action.SeekSeconds = seekSeconds
	case pm.Has("volume"):
		action.Op = OpSetVolume
		action.Volume = volume
	}

	return action, nil
}

// parseSeek interprets the sign-significant seek literal. The parser
// has already validated it as an integer; a leading "+" or "-" makes
// the seek relative, a bare number is an absolute position.
func parseSeek(raw string) (SeekMode, int) {
	seconds, _ := strconv.Atoi(raw)
	switch raw[0] {
	case '+':
		return SeekForward, seconds
	case '-':
		return SeekBackward, -seconds
	default:
		return SeekAbsolute, seconds
	}
}

// playContext maps the present context flag, if any, to its kind. The
// contexts group guarantees at most one is present.
func playContext(pm *PresenceMap) ContextKind {
	for _, kind := range []ContextKind{
		ContextTrack, ContextAlbum, ContextArtist, ContextPlaylist, ContextShow,
	} {
		if pm.Has(string(kind)) {
			return kind
		}
	}
	return ContextNone
}

// buildPlay constructs a play action. The targets group has already
// guaranteed exactly one of --uri and --name; the remaining rules are
// cross-field: --name needs a context category, --queue only works
// for tracks, and --random only works for playlists.
func buildPlay(pm *PresenceMap) (Action, error) {
	action := PlayAction{Context: playContext(pm)}
	action.URI, _ = pm.Value("uri")
	action.Name, _ = pm.Value("name")
	action.Queue = pm.Has("queue")
	action.Random = pm.Has("random")
	action.Device, _ = pm.Value("device")
	action.Format, _ = pm.Value("format")

	if action.Name != "" && action.Context == ContextNone {
		return nil, buildErrorf(pm, "name",
			"requires a category: --track, --album, --artist, --playlist or --show")
	}
	if action.Queue && action.Context != ContextNone && action.Context != ContextTrack {
		return nil, buildErrorf(pm, "queue", "only works with --track, not --%s", action.Context)
	}
	if action.Random && action.Context != ContextNone && action.Context != ContextPlaylist {
		return nil, buildErrorf(pm, "random", "only works with --playlist, not --%s", action.Context)
	}

	return action, nil
}

// buildList constructs a list action. The listable group has already
// guaranteed exactly one kind flag.
func buildList(pm *PresenceMap) (Action, error) {
	limit, err := limitBounds(pm)
	if err != nil {
		return nil, err
	}

	action := ListAction{Limit: limit}
	action.Format, _ = pm.Value("format")

	switch {
	case pm.Has("devices"):
		action.Kind = ListDevices
	case pm.Has("liked"):
		action.Kind = ListLiked
	case pm.Has("playlists"):
		action.Kind = ListPlaylists
	}

	return action, nil
}

// buildSearch constructs a search action. The searchable group has
// already guaranteed exactly one kind flag, and the parser has
// guaranteed the query argument.
func buildSearch(pm *PresenceMap) (Action, error) {
	limit, err := limitBounds(pm)
	if err != nil {
		return nil, err
	}

	action := SearchAction{Limit: limit}
	action.Query, _ = pm.Value("query")
	action.Format, _ = pm.Value("format")

	switch {
	case pm.Has("tracks"):
		action.Kind = SearchTracks
	case pm.Has("albums"):
		action.Kind = SearchAlbums
	case pm.Has("artists"):
		action.Kind = SearchArtists
	case pm.Has("playlists"):
		action.Kind = SearchPlaylists
	case pm.Has("shows"):
		action.Kind = SearchShows
	}

	return action, nil
}
