// Package speech defines the voice I/O collaborator surfaces. The core
// never drives audio hardware itself; it hands response text to a
// Synthesizer and receives recognized utterances from a Recognizer.
package speech

import (
	"fmt"
	"io"
)

// Synthesizer turns assistant responses into speech. Implementations
// own their output lifecycle; the core only decides what to say.
type Synthesizer interface {
	Speak(text string)
}

// Recognizer produces recognized utterance text from one-shot,
// non-continuous recognition sessions. Recognition problems surface as
// a status string through Err, never as a crash.
type Recognizer interface {
	// Recognize blocks for one utterance. status is non-empty when the
	// session ended without usable text.
	Recognize() (text string, status string)
}

// Console is a Synthesizer that renders speech as a marked line of
// text, used for terminal sessions where no TTS engine is available.
type Console struct {
	W io.Writer
}

func (c Console) Speak(text string) {
	fmt.Fprintf(c.W, "🔊 %s\n", text)
}

// Noop discards speech. Used when speech is disabled and in tests.
type Noop struct{}

func (Noop) Speak(string) {}
