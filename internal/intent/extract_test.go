package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTaskAndTime_Patterns(t *testing.T) {
	tests := []struct {
		name     string
		cmd      string
		wantTask string
		wantTime string
	}{
		{"schedule at", "schedule call mom at 3 pm", "call mom", "3 pm"},
		{"schedule for", "schedule dentist for 9:30 am", "dentist", "9:30 am"},
		{"remind at", "remind me to water the plants at 6 pm", "water the plants", "6 pm"},
		{"set reminder", "set reminder for standup at 10", "standup", "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, timeText, ok := ExtractTaskAndTime(tt.cmd)
			assert.True(t, ok)
			assert.Equal(t, tt.wantTask, task)
			assert.Equal(t, tt.wantTime, timeText)
		})
	}
}

func TestExtractTaskAndTime_Fallback(t *testing.T) {
	// No pattern alternative matches, but " at " is present: the prefix
	// loses its trigger words and becomes the task.
	task, timeText, ok := ExtractTaskAndTime("reminder gym session at 7 pm")
	assert.True(t, ok)
	assert.Equal(t, "reminder gym session", task)
	assert.Equal(t, "7 pm", timeText)
}

func TestExtractTaskAndTime_Failure(t *testing.T) {
	for _, cmd := range []string{"schedule", "remind me", "schedule something today"} {
		_, _, ok := ExtractTaskAndTime(cmd)
		assert.False(t, ok, "cmd %q", cmd)
	}
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		want string
	}{
		{"explicit in", "weather in london", "london"},
		{"explicit for", "weather for san francisco", "san francisco"},
		{"suffix form", "tokyo weather", "tokyo"},
		{"noise stripped", "what's the weather like in paris", "paris"},
		{"no location", "weather", DefaultCity},
		{"only filler", "what is the weather like today", DefaultCity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractLocation(tt.cmd, DefaultCity)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got, "location extraction must never be empty")
		})
	}
}

func TestExtractSearchQuery(t *testing.T) {
	assert.Equal(t, "budget", ExtractSearchQuery("search for budget"))
	assert.Equal(t, "vacation", ExtractSearchQuery("find file vacation"))
	assert.Equal(t, "", ExtractSearchQuery("search"))
}
