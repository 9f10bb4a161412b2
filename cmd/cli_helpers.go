/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/josephgoksu/jarvis/internal/assistant"
	"github.com/josephgoksu/jarvis/internal/files"
	"github.com/josephgoksu/jarvis/internal/speech"
	"github.com/josephgoksu/jarvis/types"
)

// newAssistant builds the assistant from the resolved configuration:
// catalog file (when configured), speech surface and weather client.
// interactive marks a bubbletea session.
func newAssistant(interactive bool) (*assistant.Assistant, error) {
	cfg := GetConfig()

	var opts []assistant.Option

	if cfg.Files.Catalog != "" {
		catalog, err := files.Load(cfg.Files.Catalog, cfg.Files.Format)
		if err != nil {
			return nil, fmt.Errorf("failed to load file catalog: %w", err)
		}
		opts = append(opts, assistant.WithCatalog(catalog))
	}

	opts = append(opts, assistant.WithSynthesizer(speechSynthesizer(cfg, interactive)))

	return assistant.New(cfg, opts...), nil
}

// speechSynthesizer picks the text-to-speech surface. The chat view
// already renders every response; raw writes to stdout from under
// bubbletea would tear the frame, so interactive sessions keep the
// console synthesizer off even when speech is enabled.
func speechSynthesizer(cfg types.AppConfig, interactive bool) speech.Synthesizer {
	if cfg.Speech.Enabled && !interactive {
		return speech.Console{W: os.Stdout}
	}
	return speech.Noop{}
}
