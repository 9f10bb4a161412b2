package music

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_PlayPause(t *testing.T) {
	p := NewPlayer(nil)

	assert.False(t, p.State().IsPlaying)
	assert.Equal(t, "No track selected", p.State().Track)

	track := p.Play()
	assert.Equal(t, DefaultPlaylist[0], track)
	assert.True(t, p.State().IsPlaying)

	assert.True(t, p.Pause())
	assert.False(t, p.State().IsPlaying)

	// Pausing again reports that nothing was playing.
	assert.False(t, p.Pause())
}

func TestPlayer_NextWrapsAround(t *testing.T) {
	playlist := []string{"one", "two", "three"}
	p := NewPlayer(playlist)

	// Next before play is rejected.
	_, ok := p.Next()
	assert.False(t, ok)

	p.Play()
	for i := 1; i <= len(playlist)*2; i++ {
		track, ok := p.Next()
		assert.True(t, ok)
		assert.Equal(t, playlist[i%len(playlist)], track)
		assert.Equal(t, i%len(playlist), p.State().CurrentIndex)
	}
}
