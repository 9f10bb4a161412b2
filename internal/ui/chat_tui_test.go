package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateBanner(t *testing.T) {
	assert.Equal(t, "Reminder: tea", truncateBanner("Reminder: tea", 70))

	long := "Reminder: " + strings.Repeat("x", 100)
	got := truncateBanner(long, 70)
	assert.Equal(t, 70, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))

	// Rune-safe on multi-byte text.
	assert.Equal(t, "héll…", truncateBanner("héllo wörld", 5))
}
