package assistant

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/josephgoksu/jarvis/internal/intent"
	"github.com/josephgoksu/jarvis/internal/scheduler"
)

func (a *Assistant) handleTime() []string {
	return []string{respondTime(time.Now())}
}

// handleWeather reports conditions for the extracted city. Any failure,
// upstream or transport, collapses into the generic apology; the
// underlying error is logged, never spoken (the user cannot act on it).
func (a *Assistant) handleWeather(ctx context.Context, params *intent.Params) []string {
	if a.weather == nil || a.cfg.Weather.APIKey == "" {
		return []string{weatherNotConfiguredResponse}
	}

	city := a.cfg.Weather.DefaultCity
	if params != nil && params.Location != "" {
		city = params.Location
	}

	responses := []string{respondWeatherLookup(city)}

	report, err := a.weather.Current(ctx, city)
	if err != nil {
		slog.Debug("weather lookup failed", "city", city, "error", err)
		return append(responses, respondWeatherUnavailable(city))
	}
	return append(responses, respondWeather(report))
}

func (a *Assistant) handleSchedule(params *intent.Params) []string {
	if params == nil {
		return []string{taskUnclearResponse}
	}

	task, err := a.sched.Schedule(params.Task, params.TimeText)
	if err != nil {
		if errors.Is(err, scheduler.ErrUnresolvableTime) {
			return []string{timeUnclearResponse}
		}
		// Schedule has no other failure mode today; treat anything new
		// as a time problem rather than crashing the session.
		slog.Debug("unexpected scheduling failure", "error", err)
		return []string{timeUnclearResponse}
	}

	return []string{respondScheduled(task)}
}

func (a *Assistant) handleListTasks() []string {
	return []string{respondTaskList(a.sched.List())}
}

func (a *Assistant) handleFileSearch(params *intent.Params) []string {
	query := ""
	if params != nil {
		query = params.Query
	}
	if query == "" {
		return []string{searchMissingQueryResponse}
	}
	return []string{respondSearchResults(query, a.catalog.Search(query))}
}
