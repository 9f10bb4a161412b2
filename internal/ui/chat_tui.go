package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/jarvis/internal/assistant"
	"github.com/josephgoksu/jarvis/internal/logger"
	"github.com/josephgoksu/jarvis/internal/scheduler"
)

// notificationTTL matches the notification surface's 5 second
// auto-dismiss.
const notificationTTL = 5 * time.Second

// maxVisibleMessages bounds how much conversation history the view
// renders.
const maxVisibleMessages = 12

type (
	// ResponsesMsg carries the assistant's reply lines for one utterance.
	ResponsesMsg []string

	// ReminderMsg is delivered when a scheduled task fires.
	ReminderMsg scheduler.Reminder

	// notificationExpiredMsg clears the reminder banner.
	notificationExpiredMsg struct{}
)

// ChatModel is the interactive assistant session. One utterance is
// processed at a time: input is locked while a classify-and-act cycle
// runs, so command handling never interleaves. Reminder firings arrive
// independently through the scheduler channel and only append a
// notification banner.
type ChatModel struct {
	Assistant *assistant.Assistant
	Context   context.Context

	input        textinput.Model
	spin         spinner.Model
	busy         bool
	notification string
	quitting     bool
}

// NewChatModel builds the chat session model.
func NewChatModel(ctx context.Context, a *assistant.Assistant) ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Type a command, e.g. \"schedule a meeting at 3 pm\""
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = StylePrimary

	return ChatModel{
		Assistant: a,
		Context:   ctx,
		input:     ti,
		spin:      s,
	}
}

func (m ChatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		listenForReminders(m.Assistant.Scheduler().Reminders()),
	)
}

// listenForReminders blocks on the scheduler channel and re-arms itself
// after every delivery.
func listenForReminders(ch <-chan scheduler.Reminder) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderMsg(r)
	}
}

// handleUtterance runs one classify-and-act cycle off the UI goroutine.
func handleUtterance(ctx context.Context, a *assistant.Assistant, utterance string) tea.Cmd {
	return func() tea.Msg {
		logger.SetLastUtterance(utterance)
		return ResponsesMsg(a.Handle(ctx, utterance))
	}
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.busy {
				return m, nil
			}
			utterance := strings.TrimSpace(m.input.Value())
			if utterance == "" {
				return m, nil
			}
			if utterance == "exit" || utterance == "quit" {
				m.quitting = true
				return m, tea.Quit
			}
			m.input.Reset()
			m.busy = true
			return m, tea.Batch(
				m.spin.Tick,
				handleUtterance(m.Context, m.Assistant, utterance),
			)
		}

	case ResponsesMsg:
		m.busy = false
		return m, nil

	case ReminderMsg:
		m.notification = assistant.FormatReminder(msg.Task)
		return m, tea.Batch(
			listenForReminders(m.Assistant.Scheduler().Reminders()),
			tea.Tick(notificationTTL, func(time.Time) tea.Msg {
				return notificationExpiredMsg{}
			}),
		)

	case notificationExpiredMsg:
		m.notification = ""
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// truncateBanner keeps the reminder banner on a single line. Rune-safe
// so multi-byte task text never splits mid-character.
func truncateBanner(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func (m ChatModel) View() string {
	if m.quitting {
		return StyleSubtle.Render("Goodbye.") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(StyleHeader.Render("JARVIS voice assistant") + "\n\n")

	conversation := m.Assistant.Conversation()
	if len(conversation) > maxVisibleMessages {
		conversation = conversation[len(conversation)-maxVisibleMessages:]
	}
	for _, msg := range conversation {
		if msg.Sender == "user" {
			sb.WriteString(StyleUser.Render("You: ") + StyleText.Render(msg.Text) + "\n")
		} else {
			sb.WriteString(StyleAssistant.Render(msg.Text) + "\n")
		}
	}

	if m.notification != "" {
		sb.WriteString("\n" + StyleNotification.Render(truncateBanner(m.notification, 70)) + "\n")
	}

	if tasks := m.Assistant.Scheduler().List(); len(tasks) > 0 {
		sb.WriteString("\n" + StyleTitle.Render("Scheduled tasks") + "\n")
		sb.WriteString(TaskTable(tasks).Render())
	}

	sb.WriteString("\n")
	if m.busy {
		sb.WriteString(StyleListeningBox.Render(fmt.Sprintf("%s listening…", m.spin.View())) + "\n")
	} else {
		sb.WriteString(StyleInputBox.Render(m.input.View()) + "\n")
	}
	sb.WriteString(StyleSubtle.Render("enter to send · \"exit\" or esc to leave") + "\n")

	return sb.String()
}
