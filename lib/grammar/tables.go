// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

// The command tables. These are the single source of truth for every
// flag, group constraint, and conditional default the muse CLI
// understands. Everything is plain data built once at startup; the
// pipeline in router.go interprets it.

const formatHelp = "Output format. Specifiers: %a artist, %b album, %p playlist, " +
	"%t track, %h show, %f flags (shuffle, repeat, like), %s playback status, " +
	"%v volume, %d current device, %u URI"

func deviceFlag() FlagSpec {
	return FlagSpec{
		Name: "device", Short: "d", Kind: KindString, Placeholder: "DEVICE",
		Help: "Specifies the playback device to use",
	}
}

func formatFlag(staticDefault string) FlagSpec {
	return FlagSpec{
		Name: "format", Short: "f", Kind: KindString, Placeholder: "FORMAT",
		Default: staticDefault,
		Help:    formatHelp,
	}
}

func limitFlag() FlagSpec {
	return FlagSpec{
		Name: "limit", Kind: KindInt, Placeholder: "MAX",
		Default: "20",
		Help:    "Specifies the maximum number of results (1 - 50)",
	}
}

// Default builds the router with the standard muse command set:
// playback (pb), play (p), list (l), and search (s).
func Default() *Router {
	r := NewRouter()
	r.Register(playbackGrammar(), "pb")
	r.Register(playGrammar(), "p")
	r.Register(listGrammar(), "l")
	r.Register(searchGrammar(), "s")
	return r
}

func playbackGrammar() *Grammar {
	schema := NewSchema("playback", nil,
		deviceFlag(),
		formatFlag("%f %s %t - %a"),
		FlagSpec{Name: "toggle", Short: "t", Kind: KindBoolean,
			Help: "Pauses/resumes the playback of a device"},
		FlagSpec{Name: "status", Short: "s", Kind: KindBoolean,
			Help: "Prints out the current status of a device (default)"},
		FlagSpec{Name: "share-track", Kind: KindBoolean,
			Help: "Returns the url to the current track"},
		FlagSpec{Name: "share-album", Kind: KindBoolean,
			Help: "Returns the url to the album of the current track"},
		FlagSpec{Name: "transfer", Kind: KindString, Placeholder: "DEVICE",
			Help: "Transfers the playback to new DEVICE"},
		FlagSpec{Name: "like", Kind: KindBoolean,
			Help: "Likes the current song"},
		FlagSpec{Name: "dislike", Kind: KindBoolean,
			Help: "Dislikes the current song"},
		FlagSpec{Name: "shuffle", Kind: KindBoolean,
			Help: "Toggles shuffle mode"},
		FlagSpec{Name: "repeat", Kind: KindBoolean,
			Help: "Switches between repeat modes"},
		FlagSpec{Name: "next", Short: "n", Kind: KindCounted,
			Help: "Jumps to the next song; repeat to jump several songs forward (-nnn)"},
		FlagSpec{Name: "previous", Short: "p", Kind: KindCounted,
			Help: "Jumps to the beginning of the current song; repeat to jump further back (-ppp)"},
		FlagSpec{Name: "seek", Kind: KindSignedInt, Placeholder: "±SECONDS",
			Help: "Jumps SECONDS forwards (+), backwards (-), or to an absolute position"},
		FlagSpec{Name: "volume", Short: "v", Kind: KindInt, Placeholder: "VOLUME",
			Help: "Sets the volume of a device to VOLUME (1 - 100)"},
	)

	groups := []Group{
		{Name: "jumps", Flags: []string{"next", "previous"}, Exclusivity: AtMostOne,
			ConflictsWith: []string{"single", "flags", "actions"}},
		{Name: "likes", Flags: []string{"like", "dislike"}, Exclusivity: AtMostOne},
		{Name: "flags", Flags: []string{"like", "dislike", "shuffle", "repeat"},
			Exclusivity: FreeCombination, ConflictsWith: []string{"single", "jumps"}},
		{Name: "actions", Flags: []string{"toggle", "status", "transfer", "volume"},
			Exclusivity: FreeCombination, ConflictsWith: []string{"single", "jumps"}},
		{Name: "single", Flags: []string{"share-track", "share-album"}, Exclusivity: AtMostOne,
			ConflictsWith: []string{"actions", "flags", "jumps"}},
	}

	defaults := []FlagDefaults{
		{Flag: "format", Rules: []DefaultRule{
			{WhenPresent: "seek", Value: "%f %s %t - %a %r"},
			{WhenPresent: "volume", Value: "%v% %f %s %t - %a"},
			{WhenPresent: "transfer", Value: "%f %s %t - %a on %d"},
		}},
	}

	return &Grammar{Schema: schema, Groups: groups, Defaults: defaults, Build: buildPlayback}
}

func playGrammar() *Grammar {
	schema := NewSchema("play", nil,
		deviceFlag(),
		formatFlag("%f %s %t - %a"),
		FlagSpec{Name: "uri", Short: "u", Kind: KindString, Placeholder: "URI",
			Help: "Plays the URI"},
		FlagSpec{Name: "name", Short: "n", Kind: KindString, Placeholder: "NAME",
			Help: "Plays the first match with NAME from the specified category"},
		FlagSpec{Name: "queue", Short: "q", Kind: KindBoolean,
			Help: "Adds track to queue instead of playing it directly"},
		FlagSpec{Name: "random", Short: "r", Kind: KindBoolean,
			Help: "Plays a random track (only works with playlists)"},
		FlagSpec{Name: "album", Short: "b", Kind: KindBoolean,
			Help: "Looks for an album"},
		FlagSpec{Name: "artist", Short: "a", Kind: KindBoolean,
			Help: "Looks for an artist"},
		FlagSpec{Name: "track", Short: "t", Kind: KindBoolean,
			Help: "Looks for a track"},
		FlagSpec{Name: "show", Short: "w", Kind: KindBoolean,
			Help: "Looks for a show"},
		FlagSpec{Name: "playlist", Short: "p", Kind: KindBoolean,
			Help: "Looks for a playlist"},
	)

	groups := []Group{
		{Name: "contexts", Flags: []string{"track", "artist", "playlist", "album", "show"},
			Exclusivity: AtMostOne},
		{Name: "targets", Flags: []string{"uri", "name"}, Exclusivity: AtMostOne,
			Required: true},
	}

	return &Grammar{Schema: schema, Groups: groups, Build: buildPlay}
}

func listGrammar() *Grammar {
	schema := NewSchema("list", nil,
		formatFlag(""),
		FlagSpec{Name: "devices", Short: "d", Kind: KindBoolean,
			Help: "Lists devices"},
		FlagSpec{Name: "playlists", Short: "p", Kind: KindBoolean,
			Help: "Lists playlists"},
		FlagSpec{Name: "liked", Kind: KindBoolean,
			Help: "Lists liked songs"},
		limitFlag(),
	)

	groups := []Group{
		{Name: "listable", Flags: []string{"devices", "playlists", "liked"},
			Exclusivity: AtMostOne, Required: true},
	}

	defaults := []FlagDefaults{
		{Flag: "format", Rules: []DefaultRule{
			{WhenPresent: "devices", Value: "%v% %d"},
			{WhenPresent: "liked", Value: "%t - %a (%u)"},
			{WhenPresent: "playlists", Value: "%p (%u)"},
		}},
	}

	return &Grammar{Schema: schema, Groups: groups, Defaults: defaults, Build: buildList}
}

func searchGrammar() *Grammar {
	query := &FlagSpec{
		Name: "query", Kind: KindString, Placeholder: "QUERY", Required: true,
		Help: "Specifies the search query",
	}

	schema := NewSchema("search", query,
		formatFlag(""),
		FlagSpec{Name: "albums", Short: "b", Kind: KindBoolean,
			Help: "Looks for albums"},
		FlagSpec{Name: "artists", Short: "a", Kind: KindBoolean,
			Help: "Looks for artists"},
		FlagSpec{Name: "playlists", Short: "p", Kind: KindBoolean,
			Help: "Looks for playlists"},
		FlagSpec{Name: "tracks", Short: "t", Kind: KindBoolean,
			Help: "Looks for tracks"},
		FlagSpec{Name: "shows", Short: "w", Kind: KindBoolean,
			Help: "Looks for shows"},
		limitFlag(),
	)

	groups := []Group{
		{Name: "searchable", Flags: []string{"playlists", "tracks", "albums", "artists", "shows"},
			Exclusivity: AtMostOne, Required: true},
	}

	defaults := []FlagDefaults{
		{Flag: "format", Rules: []DefaultRule{
			{WhenPresent: "tracks", Value: "%t - %a (%u)"},
			{WhenPresent: "playlists", Value: "%p (%u)"},
			{WhenPresent: "artists", Value: "%a (%u)"},
			{WhenPresent: "albums", Value: "%b - %a (%u)"},
			{WhenPresent: "shows", Value: "%h - %a (%u)"},
		}},
	}

	return &Grammar{Schema: schema, Groups: groups, Defaults: defaults, Build: buildSearch}
}
