// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

package grammar

// Action is the fully validated, typed result of interpreting one
// command invocation. Exactly one concrete type exists per command:
// [PlaybackAction], [PlayAction], [ListAction], [SearchAction]. Every
// Action carries the resolved display-format string; interpreting the
// format mini-language is the executor's job, not this package's.
type Action interface {
	// Command returns the canonical subcommand name the action was
	// built for.
	Command() string
}

// PlaybackOp identifies the single playback-transport operation an
// invocation resolved to.
type PlaybackOp string

const (
	OpStatus        PlaybackOp = "status"
	OpToggle        PlaybackOp = "toggle"
	OpShareTrack    PlaybackOp = "share-track"
	OpShareAlbum    PlaybackOp = "share-album"
	OpTransfer      PlaybackOp = "transfer"
	OpLike          PlaybackOp = "like"
	OpDislike       PlaybackOp = "dislike"
	OpToggleShuffle PlaybackOp = "shuffle"
	OpCycleRepeat   PlaybackOp = "repeat"
	OpSkipNext      PlaybackOp = "skip-next"
	OpSkipPrevious  PlaybackOp = "skip-previous"
	OpSeek          PlaybackOp = "seek"
	OpSetVolume     PlaybackOp = "volume"
)

// SeekMode distinguishes relative from absolute seeking. The mode is
// carried by the sign of the raw token: "+10" seeks forward, "-10"
// backward, and a bare "10" jumps to the tenth second.
type SeekMode string

const (
	SeekAbsolute SeekMode = "absolute"
	SeekForward  SeekMode = "forward"
	SeekBackward SeekMode = "backward"
)

// PlaybackAction describes one playback-transport operation. Only the
// fields relevant to Op are populated beyond Device and Format.
type PlaybackAction struct {
	Op PlaybackOp `json:"op"`

	// Device is the target device, or "" for the current one.
	Device string `json:"device,omitempty"`

	// Skip is the song count for OpSkipNext and OpSkipPrevious,
	// always at least one.
	Skip int `json:"skip,omitempty"`

	// SeekMode and SeekSeconds are set for OpSeek. SeekSeconds is the
	// magnitude; direction lives in SeekMode.
	SeekMode    SeekMode `json:"seek_mode,omitempty"`
	SeekSeconds int      `json:"seek_seconds,omitempty"`

	// Volume is the target level for OpSetVolume, within [1,100].
	Volume int `json:"volume,omitempty"`

	// TransferTo is the destination device for OpTransfer.
	TransferTo string `json:"transfer_to,omitempty"`

	// Format is the resolved display-format string.
	Format string `json:"format"`
}

func (PlaybackAction) Command() string { return "playback" }

// ContextKind is the item category a play-by-name request searches in.
type ContextKind string

const (
	ContextNone     ContextKind = ""
	ContextTrack    ContextKind = "track"
	ContextAlbum    ContextKind = "album"
	ContextArtist   ContextKind = "artist"
	ContextPlaylist ContextKind = "playlist"
	ContextShow     ContextKind = "show"
)

// PlayAction describes a request to start playback of an item,
// addressed either by URI or by name within a context.
type PlayAction struct {
	// URI is the item URI; exactly one of URI and Name is set.
	URI string `json:"uri,omitempty"`

	// Name is the item name to search for; requires Context.
	Name string `json:"name,omitempty"`

	// Context is the category searched when Name is set.
	Context ContextKind `json:"context,omitempty"`

	// Queue adds the track to the queue instead of playing it.
	Queue bool `json:"queue"`

	// Random plays a random track from the playlist.
	Random bool `json:"random"`

	// Device is the target device, or "" for the current one.
	Device string `json:"device,omitempty"`

	// Format is the resolved display-format string.
	Format string `json:"format"`
}

func (PlayAction) Command() string { return "play" }

// ListKind selects what the list command enumerates.
type ListKind string

const (
	ListDevices   ListKind = "devices"
	ListLiked     ListKind = "liked"
	ListPlaylists ListKind = "playlists"
)

// ListAction describes a request to enumerate devices, liked songs,
// or playlists.
type ListAction struct {
	Kind ListKind `json:"kind"`

	// Limit is the maximum number of results, within [1,50].
	Limit int `json:"limit"`

	// Format is the resolved display-format string.
	Format string `json:"format"`
}

func (ListAction) Command() string { return "list" }

// SearchKind selects the item category a search runs over.
type SearchKind string

const (
	SearchTracks    SearchKind = "tracks"
	SearchAlbums    SearchKind = "albums"
	SearchArtists   SearchKind = "artists"
	SearchPlaylists SearchKind = "playlists"
	SearchShows     SearchKind = "shows"
)

// SearchAction describes a free-text search within one category.
type SearchAction struct {
	Kind SearchKind `json:"kind"`

	// Query is the free-text search query.
	Query string `json:"query"`

	// Limit is the maximum number of results, within [1,50].
	Limit int `json:"limit"`

	// Format is the resolved display-format string.
	Format string `json:"format"`
}

func (SearchAction) Command() string { return "search" }
