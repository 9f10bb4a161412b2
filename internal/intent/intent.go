// Package intent classifies raw utterances into a closed set of intents
// and extracts the structured parameters each intent needs. Matching is
// keyword driven: an ordered rule table is evaluated top to bottom and
// the first rule that matches wins, so precedence between overlapping
// keyword sets (e.g. "schedule the weather report") is a deliberate
// policy, not an accident of evaluation order.
package intent

// Intent is the closed-set classification of an utterance's purpose.
type Intent string

const (
	IntentTime            Intent = "TIME"
	IntentWeather         Intent = "WEATHER"
	IntentScheduleTask    Intent = "SCHEDULE_TASK"
	IntentListTasks       Intent = "LIST_TASKS"
	IntentMusicPlay       Intent = "MUSIC_PLAY"
	IntentMusicPause      Intent = "MUSIC_PAUSE"
	IntentMusicNext       Intent = "MUSIC_NEXT"
	IntentFileSearch      Intent = "FILE_SEARCH"
	IntentGreeting        Intent = "GREETING"
	IntentHelp            Intent = "HELP"
	IntentGeneralQuestion Intent = "GENERAL_QUESTION"
	IntentUnknown         Intent = "UNKNOWN"
)

// Params carries the parameters extracted for an intent. Which fields
// are populated depends on the intent: Task/TimeText for SCHEDULE_TASK,
// Location for WEATHER, Query for FILE_SEARCH. A nil *Params on an
// intent that needs parameters signals extraction failure, and the
// caller must ask the user to rephrase rather than guess.
type Params struct {
	Task     string
	TimeText string
	Location string
	Query    string
}
