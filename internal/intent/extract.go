package intent

import (
	"regexp"
	"strings"
)

// Ordered pattern alternatives for task/time extraction. The task is the
// second-to-last capture group and the time the last, regardless of how
// many groups a pattern carries.
var taskTimePatterns = []*regexp.Regexp{
	regexp.MustCompile(`schedule\s+(a|an)?\s*(.+)\s+(?:at|for)\s+(.+)`),
	regexp.MustCompile(`remind\s+(?:me)?\s+(?:to)?\s+(.+)\s+(?:at|for)\s+(.+)`),
	regexp.MustCompile(`set\s+(?:a)?\s*reminder\s+(?:for)?\s+(.+)\s+(?:at|for)\s+(.+)`),
}

var (
	scheduleTriggers = regexp.MustCompile(`schedule|remind me to|set reminder`)
	searchTriggers   = regexp.MustCompile(`search for|find file|find|search`)
	weatherLocation  = regexp.MustCompile(`weather\s+(?:in|for|at)\s+(.+)`)
)

// weatherFiller holds words stripped when guessing a location from the
// leftover text of a weather utterance.
var weatherFiller = map[string]struct{}{
	"weather": {}, "what": {}, "whats": {}, "what's": {}, "is": {},
	"the": {}, "like": {}, "today": {}, "tomorrow": {}, "tell": {},
	"me": {}, "about": {}, "how": {}, "hows": {}, "how's": {},
	"in": {}, "for": {}, "at": {}, "please": {}, "current": {},
	"outside": {},
}

// ExtractTaskAndTime pulls the task description and time fragment out of
// a normalized scheduling command. It tries the regex alternatives in
// order, then falls back to splitting on a literal " at " or " for "
// with trigger words stripped from the prefix. ok is false when neither
// strategy applies; the caller must ask for clarification instead of
// guessing.
func ExtractTaskAndTime(cmd string) (task, timeText string, ok bool) {
	for _, pattern := range taskTimePatterns {
		m := pattern.FindStringSubmatch(cmd)
		if m == nil {
			continue
		}
		task = strings.TrimSpace(m[len(m)-2])
		timeText = strings.TrimSpace(m[len(m)-1])
		if task != "" && timeText != "" {
			return task, timeText, true
		}
	}

	// Last resort: split on the first " at " or " for " keyword.
	if idx := strings.Index(cmd, " at "); idx > 0 {
		return splitAt(cmd, idx, len(" at "))
	}
	if idx := strings.Index(cmd, " for "); idx > 0 {
		return splitAt(cmd, idx, len(" for "))
	}

	return "", "", false
}

func splitAt(cmd string, idx, sepLen int) (string, string, bool) {
	task := strings.TrimSpace(scheduleTriggers.ReplaceAllString(cmd[:idx], ""))
	timeText := strings.TrimSpace(cmd[idx+sepLen:])
	return task, timeText, true
}

// ExtractLocation finds the city in a weather utterance. Unlike task
// extraction this never fails: without an explicit "weather in X" or
// "X weather" form it strips keyword noise from whatever is left, and
// an empty remainder falls back to defaultCity. An unresolvable
// location is resolved by best effort, not reported as an error.
func ExtractLocation(cmd, defaultCity string) string {
	if m := weatherLocation.FindStringSubmatch(cmd); m != nil {
		if loc := strings.TrimSpace(m[1]); loc != "" {
			return loc
		}
	}

	var kept []string
	for _, word := range strings.Fields(cmd) {
		if _, filler := weatherFiller[word]; filler {
			continue
		}
		kept = append(kept, word)
	}
	if len(kept) > 0 {
		return strings.Join(kept, " ")
	}

	return defaultCity
}

// ExtractSearchQuery strips the search trigger words from a file-search
// command. The result may be empty, which the caller reports as a
// missing query.
func ExtractSearchQuery(cmd string) string {
	return strings.TrimSpace(searchTriggers.ReplaceAllString(cmd, ""))
}
