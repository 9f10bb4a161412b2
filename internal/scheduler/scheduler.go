// Package scheduler owns the in-memory collection of reminder tasks and
// fires a notification for each exactly once at its resolved time.
// Nothing is persisted; reminders that outlive the process are simply
// never observed.
package scheduler

import (
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/josephgoksu/jarvis/internal/timeparse"
	"github.com/josephgoksu/jarvis/models"
)

// ErrUnresolvableTime is returned when the time fragment of a scheduling
// command cannot be parsed. It is a user-facing clarification, never a
// crash.
var ErrUnresolvableTime = errors.New("could not resolve time text")

// Reminder is emitted on the scheduler's channel when a task fires.
type Reminder struct {
	Task models.Task
}

// Scheduler resolves fire times, stores tasks and arms one one-shot
// timer per task. Timer callbacks run on their own goroutines and
// interleave arbitrarily with command handling, so all task-list access
// is mutex guarded.
type Scheduler struct {
	clock Clock

	mu     sync.Mutex
	tasks  []models.Task
	timers []Timer

	reminders chan Reminder
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the system clock, for tests.
func WithClock(c Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// New creates an empty scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:     NewRealClock(),
		reminders: make(chan Reminder, 16),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reminders is the channel reminder firings are delivered on. The
// consumer only renders/speaks the reminder; it must not mutate
// scheduler state in response.
func (s *Scheduler) Reminders() <-chan Reminder {
	return s.reminders
}

// Schedule resolves timeText, stores the task and arms its reminder.
// The whole operation fails with ErrUnresolvableTime when the fragment
// does not parse. A fire time not strictly in the future at scheduling
// time (possible only when resolution and scheduling read different
// "now" values) is stored but never armed.
func (s *Scheduler) Schedule(taskText, timeText string) (models.Task, error) {
	now := s.clock.Now()

	fireAt, ok := timeparse.Resolve(timeText, now)
	if !ok {
		return models.Task{}, ErrUnresolvableTime
	}

	task := models.Task{
		ID:        uuid.New().String(),
		Text:      taskText,
		FireAt:    fireAt,
		CreatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)

	delay := fireAt.Sub(s.clock.Now())
	if delay <= 0 {
		slog.Debug("reminder stored without timer, fire time not in the future",
			"task", task.ID, "fireAt", fireAt)
		return task, nil
	}

	id := task.ID
	s.timers = append(s.timers, s.clock.AfterFunc(delay, func() {
		s.fire(id)
	}))

	return task, nil
}

// fire marks the task fired and emits its reminder. The task stays in
// the list for historical display.
func (s *Scheduler) fire(id string) {
	s.mu.Lock()
	var fired *models.Task
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Fired = true
			t := s.tasks[i]
			fired = &t
			break
		}
	}
	s.mu.Unlock()

	if fired == nil {
		return
	}
	select {
	case s.reminders <- Reminder{Task: *fired}:
	default:
		// A full channel means nobody is consuming reminders (one-shot
		// CLI invocation); dropping beats blocking the timer goroutine.
		slog.Debug("reminder dropped, no consumer", "task", fired.ID)
	}
}

// List returns a snapshot of all tasks ordered by ascending fire time.
// The sort is stable, so tasks with identical fire times keep insertion
// order. It always succeeds; an empty scheduler yields an empty slice.
func (s *Scheduler) List() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FireAt.Before(out[j].FireAt)
	})
	return out
}

// Pending returns how many stored tasks have not fired yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.tasks {
		if !t.Fired {
			n++
		}
	}
	return n
}

// Stop cancels all armed timers. Used on shutdown only; it does not
// forget the tasks.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

// NextFire returns the earliest unfired task's fire time, for display.
func (s *Scheduler) NextFire() (time.Time, bool) {
	var next time.Time
	found := false

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.Fired {
			continue
		}
		if !found || t.FireAt.Before(next) {
			next = t.FireAt
			found = true
		}
	}
	return next, found
}
