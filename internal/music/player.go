// Package music holds the playback cursor the MUSIC_* intents mutate.
// There is no audio backend; the assistant only tracks and reports
// which track the cursor points at.
package music

import "github.com/josephgoksu/jarvis/models"

// DefaultPlaylist mirrors the sample playlist the assistant ships with.
var DefaultPlaylist = []string{
	"Imagine Dragons - Believer",
	"Adele - Hello",
	"Ed Sheeran - Shape of You",
	"The Weeknd - Blinding Lights",
	"Dua Lipa - Levitating",
}

// Player walks a fixed playlist. It is mutated only by intent handlers
// on the command-handling goroutine, so it carries no locking itself.
type Player struct {
	playlist []string
	state    models.PlaybackState
}

// NewPlayer creates a player over the given playlist, falling back to
// DefaultPlaylist when none is configured.
func NewPlayer(playlist []string) *Player {
	if len(playlist) == 0 {
		playlist = DefaultPlaylist
	}
	return &Player{
		playlist: playlist,
		state:    models.PlaybackState{Track: "No track selected"},
	}
}

// Play starts playback at the current cursor position and returns the
// track name.
func (p *Player) Play() string {
	p.state.IsPlaying = true
	p.state.Track = p.playlist[p.state.CurrentIndex]
	return p.state.Track
}

// Pause stops playback. ok is false when nothing was playing.
func (p *Player) Pause() (ok bool) {
	if !p.state.IsPlaying {
		return false
	}
	p.state.IsPlaying = false
	return true
}

// Next advances the cursor by one, wrapping modulo playlist length, and
// returns the new track. ok is false when nothing is playing.
func (p *Player) Next() (track string, ok bool) {
	if !p.state.IsPlaying {
		return "", false
	}
	p.state.CurrentIndex = (p.state.CurrentIndex + 1) % len(p.playlist)
	p.state.Track = p.playlist[p.state.CurrentIndex]
	return p.state.Track, true
}

// State returns a copy of the playback state.
func (p *Player) State() models.PlaybackState {
	return p.state
}

// Playlist returns the tracks the cursor walks over.
func (p *Player) Playlist() []string {
	return p.playlist
}
