package intent

import "strings"

// DefaultCity is the fixed fallback location for weather utterances
// that name none. The assistant may override it from configuration.
const DefaultCity = "New York"

// rule is one entry of the ordered classification table.
type rule struct {
	intent  Intent
	match   func(cmd string) bool
	extract func(cmd string) *Params
}

// containsAny reports whether cmd contains at least one of the keywords.
func containsAny(keywords ...string) func(string) bool {
	return func(cmd string) bool {
		for _, kw := range keywords {
			if strings.Contains(cmd, kw) {
				return true
			}
		}
		return false
	}
}

// rules is evaluated in order; earlier entries win. The bare "hi"
// greeting is matched as "hi jarvis" because a substring "hi" false
// positives on words like "this".
var rules = []rule{
	{intent: IntentTime, match: containsAny("what time", "current time")},
	{
		intent: IntentWeather,
		match:  containsAny("weather"),
		extract: func(cmd string) *Params {
			// An empty Location means "no location named"; the caller
			// substitutes its configured default, never fails.
			return &Params{Location: ExtractLocation(cmd, "")}
		},
	},
	{
		intent: IntentScheduleTask,
		match:  containsAny("schedule", "remind", "set reminder"),
		extract: func(cmd string) *Params {
			task, timeText, ok := ExtractTaskAndTime(cmd)
			if !ok {
				return nil
			}
			return &Params{Task: task, TimeText: timeText}
		},
	},
	{intent: IntentListTasks, match: containsAny("show my tasks", "show tasks", "list tasks", "task", "todo")},
	{intent: IntentMusicPlay, match: containsAny("play music")},
	{intent: IntentMusicPause, match: containsAny("pause music", "stop music")},
	{intent: IntentMusicNext, match: containsAny("next song", "skip song", "skip track")},
	{
		intent: IntentFileSearch,
		match:  containsAny("search", "find file"),
		extract: func(cmd string) *Params {
			return &Params{Query: ExtractSearchQuery(cmd)}
		},
	},
	{intent: IntentGreeting, match: containsAny("hello", "hi jarvis")},
	{intent: IntentHelp, match: containsAny("help", "what can you do")},
	{intent: IntentGeneralQuestion, match: containsAny("what is", "who is", "how to", "tell me about")},
}

// Normalize folds an utterance into the canonical form the rule table
// matches against.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Classify maps a raw utterance to exactly one intent plus its extracted
// parameters. Classification is total: unrecognized text yields
// IntentUnknown, never an error. It is pure with respect to application
// state.
func Classify(raw string) (Intent, *Params) {
	cmd := Normalize(raw)

	for _, r := range rules {
		if !r.match(cmd) {
			continue
		}
		if r.extract == nil {
			return r.intent, nil
		}
		return r.intent, r.extract(cmd)
	}
	return IntentUnknown, nil
}
