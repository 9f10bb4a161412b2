package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Task represents a scheduled reminder owned by the scheduler from
// creation until the process ends. Tasks are never persisted.
type Task struct {
	ID        string    `json:"id" validate:"required,uuid4"`
	Text      string    `json:"text" validate:"required,min=1"`
	FireAt    time.Time `json:"fireAt" validate:"required"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
	// Fired is set when the reminder has triggered; the task stays in
	// the list afterwards for historical display.
	Fired bool `json:"fired"`
}

// ClockTime renders the task's fire time the way the assistant speaks
// it, e.g. "03:00 PM".
func (t Task) ClockTime() string {
	return t.FireAt.Format("03:04 PM")
}

// PlaybackState describes the music playback cursor. CurrentIndex is
// always in [0, len(playlist)) and wraps modulo playlist length on
// "next".
type PlaybackState struct {
	IsPlaying    bool   `json:"isPlaying"`
	CurrentIndex int    `json:"currentIndex" validate:"min=0"`
	Track        string `json:"track"`
}

// FileEntry is one record of the static file-name catalog used by the
// file-search lookup.
type FileEntry struct {
	Name string `json:"name" validate:"required"`
	Path string `json:"path" validate:"required"`
	Type string `json:"type" validate:"required"`
}

// Message is one side of the conversation log.
type Message struct {
	Text   string `json:"text"`
	Sender string `json:"sender" validate:"oneof=user assistant"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		// Safeguard for tests running in isolation.
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}
