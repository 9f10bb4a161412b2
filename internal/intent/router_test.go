package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Precedence(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      Intent
	}{
		{"time", "What time is it?", IntentTime},
		{"current time", "tell me the current time", IntentTime},
		{"weather", "what's the weather like", IntentWeather},
		{"schedule", "schedule a meeting at 3 pm", IntentScheduleTask},
		{"remind", "remind me to stretch at noon", IntentScheduleTask},
		{"set reminder", "set reminder for lunch at 12:30", IntentScheduleTask},
		{"show tasks", "show my tasks", IntentListTasks},
		{"todo", "what's on my todo", IntentListTasks},
		{"play", "play music", IntentMusicPlay},
		{"pause", "pause music please", IntentMusicPause},
		{"stop", "stop music", IntentMusicPause},
		{"next", "next song", IntentMusicNext},
		{"skip", "skip track", IntentMusicNext},
		{"search", "search for budget", IntentFileSearch},
		{"find file", "find file presentation", IntentFileSearch},
		{"greeting", "Hello there", IntentGreeting},
		{"greeting by name", "hi jarvis", IntentGreeting},
		{"help", "help", IntentHelp},
		{"capabilities", "what can you do", IntentHelp},
		{"question", "who is ada lovelace", IntentGeneralQuestion},
		{"unknown", "purple elephant", IntentUnknown},
		{"empty", "   ", IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Classify(tt.utterance)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Both SCHEDULE_TASK and WEATHER keywords appear; WEATHER is listed
	// earlier, so it wins.
	got, params := Classify("schedule the weather report at 9 am")
	assert.Equal(t, IntentWeather, got)
	assert.NotNil(t, params)

	// TIME outranks everything below it.
	got, _ = Classify("what time should i schedule the meeting")
	assert.Equal(t, IntentTime, got)
}

func TestClassify_AlwaysTotal(t *testing.T) {
	for _, utterance := range []string{"", "zzz", "la la la", "????"} {
		got, params := Classify(utterance)
		assert.Equal(t, IntentUnknown, got)
		assert.Nil(t, params)
	}
}

func TestClassify_ScheduleParams(t *testing.T) {
	got, params := Classify("Schedule call mom at 3 pm")
	assert.Equal(t, IntentScheduleTask, got)
	if assert.NotNil(t, params) {
		assert.Equal(t, "call mom", params.Task)
		assert.Equal(t, "3 pm", params.TimeText)
	}
}

func TestClassify_ScheduleExtractionFailure(t *testing.T) {
	// Recognized as a scheduling command but no task/time structure:
	// params must be nil so the caller asks for clarification.
	got, params := Classify("schedule something")
	assert.Equal(t, IntentScheduleTask, got)
	assert.Nil(t, params)
}

func TestClassify_WeatherParams(t *testing.T) {
	got, params := Classify("weather in London")
	assert.Equal(t, IntentWeather, got)
	if assert.NotNil(t, params) {
		assert.Equal(t, "london", params.Location)
	}

	// No location named: empty, so the caller applies its default.
	_, params = Classify("what is the weather")
	if assert.NotNil(t, params) {
		assert.Equal(t, "", params.Location)
	}
}

func TestClassify_SearchParams(t *testing.T) {
	got, params := Classify("search for budget")
	assert.Equal(t, IntentFileSearch, got)
	if assert.NotNil(t, params) {
		assert.Equal(t, "budget", params.Query)
	}
}
