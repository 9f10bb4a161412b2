package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/josephgoksu/jarvis/internal/weather"
	"github.com/josephgoksu/jarvis/models"
)

// Fixed responses. Wording mirrors what the assistant has always said;
// changing these breaks users' muscle memory more than any code change.
const (
	greetingResponse = "Hello! How may I assist you today?"

	helpResponse = "I can tell you the time, schedule tasks, play music, search for files, and answer general questions. Try saying 'What time is it' or 'Schedule a meeting at 3 PM'."

	unknownResponse = "I'm not sure how to respond to that. You can ask me about the time, weather, schedule tasks, play music, or search for files."

	weatherNotConfiguredResponse = "Weather feature is not configured. Please add your API key to the .env file."

	timeUnclearResponse = "I couldn't understand the time. Please try again with a clearer time format like '3 PM' or '15:30'."

	taskUnclearResponse = "I couldn't understand the task details. Please try again with a format like 'Schedule a meeting at 3 PM'."

	searchMissingQueryResponse = "Please specify what file you're looking for."

	noMusicResponse = "No music is currently playing"
)

func respondTime(now time.Time) string {
	return fmt.Sprintf("The current time is %s", now.Format("3:04:05 PM"))
}

func respondWeatherLookup(city string) string {
	return fmt.Sprintf("Getting weather for %s...", city)
}

func respondWeather(r weather.Report) string {
	return fmt.Sprintf("The current weather in %s is %s with a temperature of %d°C (%d°F). The humidity is %d%% and wind speed is %.1f meters per second.",
		r.City, r.Description, r.TempC, r.TempF, r.Humidity, r.WindSpeed)
}

func respondWeatherUnavailable(city string) string {
	return fmt.Sprintf("I'm sorry, I couldn't get weather information for %s. Please try again or try another city.", city)
}

func respondScheduled(task models.Task) string {
	return fmt.Sprintf("Task scheduled: %s at %s", task.Text, task.ClockTime())
}

func respondTaskList(tasks []models.Task) string {
	if len(tasks) == 0 {
		return "You have no scheduled tasks."
	}

	var sb strings.Builder
	sb.WriteString("Here are your scheduled tasks: ")
	for i, task := range tasks {
		fmt.Fprintf(&sb, "%d. %s at %s. ", i+1, task.Text, task.ClockTime())
	}
	return strings.TrimSpace(sb.String())
}

func respondPlay(track string) string {
	return fmt.Sprintf("Playing %s", track)
}

func respondPause(ok bool) string {
	if !ok {
		return noMusicResponse
	}
	return "Music paused"
}

func respondNext(track string, ok bool) string {
	if !ok {
		return noMusicResponse
	}
	return fmt.Sprintf("Skipped to next track: %s", track)
}

func respondSearchResults(query string, results []models.FileEntry) string {
	if len(results) == 0 {
		return fmt.Sprintf("No files found matching %q. Please try a different search term.", query)
	}

	plural := ""
	if len(results) > 1 {
		plural = "s"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "I found %d file%s matching %q: ", len(results), plural, query)
	for i, file := range results {
		fmt.Fprintf(&sb, "%d. %s (%s) located at %s. ", i+1, file.Name, strings.ToUpper(file.Type), file.Path)
	}
	return strings.TrimSpace(sb.String())
}

// answerQuestion serves the small set of canned answers for general
// questions. Anything outside it gets an honest "I don't know".
func answerQuestion(question string) string {
	switch {
	case strings.Contains(question, "your name"):
		return "My name is JARVIS, which stands for Just A Rather Very Intelligent System."
	case strings.Contains(question, "who created you"):
		return "I was created as a voice assistant to help with various tasks."
	case strings.Contains(question, "what can you do"):
		return "I can help you schedule tasks, play music, search for files, and answer general questions. You can also ask me about the time."
	default:
		return "I don't have enough information to answer that question accurately. In a full implementation, I would connect to a knowledge base or language model to provide better answers."
	}
}
