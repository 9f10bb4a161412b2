// Package assistant wires the intent router, reminder scheduler, music
// player, file catalog and weather collaborator behind a single Handle
// call. All mutable state lives on the Assistant struct; given the same
// state and utterance, dispatch is deterministic.
package assistant

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/josephgoksu/jarvis/internal/files"
	"github.com/josephgoksu/jarvis/internal/intent"
	"github.com/josephgoksu/jarvis/internal/music"
	"github.com/josephgoksu/jarvis/internal/scheduler"
	"github.com/josephgoksu/jarvis/internal/speech"
	"github.com/josephgoksu/jarvis/internal/weather"
	"github.com/josephgoksu/jarvis/models"
	"github.com/josephgoksu/jarvis/types"
)

// WelcomeMessage opens every session.
const WelcomeMessage = "Hello, I'm your voice assistant. How can I help you today?"

// Assistant owns all process-wide assistant state. It is not safe for
// concurrent Handle calls; utterances are processed to completion in
// arrival order by a single caller. The conversation log is the one
// piece of state read from other goroutines (the chat view renders it
// while Handle runs on a command goroutine), so it is mutex guarded.
// Reminder firings happen on timer goroutines and only ever append
// notifications, never touch this state.
type Assistant struct {
	cfg     types.AppConfig
	sched   *scheduler.Scheduler
	player  *music.Player
	catalog *files.Catalog
	weather weather.Client
	synth   speech.Synthesizer

	mu           sync.Mutex
	conversation []models.Message
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithWeatherClient replaces the weather collaborator, for tests.
func WithWeatherClient(c weather.Client) Option {
	return func(a *Assistant) { a.weather = c }
}

// WithScheduler replaces the reminder scheduler, for tests that inject
// a fake clock.
func WithScheduler(s *scheduler.Scheduler) Option {
	return func(a *Assistant) { a.sched = s }
}

// WithSynthesizer replaces the text-to-speech surface.
func WithSynthesizer(s speech.Synthesizer) Option {
	return func(a *Assistant) { a.synth = s }
}

// WithCatalog replaces the file catalog.
func WithCatalog(c *files.Catalog) Option {
	return func(a *Assistant) { a.catalog = c }
}

// New builds an assistant from the resolved configuration.
func New(cfg types.AppConfig, opts ...Option) *Assistant {
	a := &Assistant{
		cfg:     cfg,
		sched:   scheduler.New(),
		player:  music.NewPlayer(cfg.Music.Playlist),
		catalog: files.NewCatalog(nil),
		synth:   speech.Noop{},
		conversation: []models.Message{
			{Text: WelcomeMessage, Sender: "assistant"},
		},
	}

	if cfg.Weather.APIKey != "" {
		a.weather = weather.NewHTTPClient(weather.ClientConfig{
			APIKey:  cfg.Weather.APIKey,
			BaseURL: cfg.Weather.BaseURL,
			Timeout: time.Duration(cfg.Weather.RequestTimeoutSeconds) * time.Second,
		})
	}

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Scheduler exposes the reminder scheduler so the caller can consume
// reminder firings and render pending-task views.
func (a *Assistant) Scheduler() *scheduler.Scheduler { return a.sched }

// Player exposes the playback state for rendering.
func (a *Assistant) Player() *music.Player { return a.player }

// Conversation returns a snapshot of the conversation log, oldest
// first. Safe to call from any goroutine.
func (a *Assistant) Conversation() []models.Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.Message, len(a.conversation))
	copy(out, a.conversation)
	return out
}

func (a *Assistant) appendMessage(msg models.Message) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.conversation = append(a.conversation, msg)
}

// Handle classifies one utterance, performs the resulting action and
// returns the response lines. It is total: every utterance, including
// unrecognized ones, yields at least one response and never an error.
func (a *Assistant) Handle(ctx context.Context, utterance string) []string {
	a.appendMessage(models.Message{Text: utterance, Sender: "user"})

	classified, params := intent.Classify(utterance)
	slog.Debug("utterance classified", "intent", classified)

	var responses []string
	switch classified {
	case intent.IntentTime:
		responses = a.handleTime()
	case intent.IntentWeather:
		responses = a.handleWeather(ctx, params)
	case intent.IntentScheduleTask:
		responses = a.handleSchedule(params)
	case intent.IntentListTasks:
		responses = a.handleListTasks()
	case intent.IntentMusicPlay:
		responses = []string{respondPlay(a.player.Play())}
	case intent.IntentMusicPause:
		responses = []string{respondPause(a.player.Pause())}
	case intent.IntentMusicNext:
		track, ok := a.player.Next()
		responses = []string{respondNext(track, ok)}
	case intent.IntentFileSearch:
		responses = a.handleFileSearch(params)
	case intent.IntentGreeting:
		responses = []string{greetingResponse}
	case intent.IntentHelp:
		responses = []string{helpResponse}
	case intent.IntentGeneralQuestion:
		responses = []string{answerQuestion(intent.Normalize(utterance))}
	default:
		responses = []string{unknownResponse}
	}

	for _, text := range responses {
		a.appendMessage(models.Message{Text: text, Sender: "assistant"})
		a.synth.Speak(text)
	}
	return responses
}

// FormatReminder renders the notification text for a fired task and is
// also what the notification surface speaks.
func FormatReminder(task models.Task) string {
	return "Reminder: " + task.Text
}
