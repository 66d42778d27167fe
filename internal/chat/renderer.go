package chat

import (
	"time"

	"github.com/google/uuid"
	"github.com/jwulff/nexa/internal/ui"
)

// Renderer owns the rendered messages, the transcript and the welcome
// panel flag. The transcript holds user and bot turns in render order.
type Renderer struct {
	messages    []Message
	transcript  []Entry
	hideWelcome bool
	now         func() time.Time
}

// NewRenderer returns an empty conversation with the welcome panel shown.
func NewRenderer() Renderer {
	return Renderer{now: time.Now}
}

// AddUser appends a user message. The first one hides the welcome panel.
func (r *Renderer) AddUser(text string) Message {
	r.hideWelcome = true
	now := r.clock()
	msg := Message{
		ID:    uuid.NewString(),
		Kind:  User,
		Lines: Escape(text),
		Time:  ui.ClockTime(now),
	}
	r.messages = append(r.messages, msg)
	r.transcript = append(r.transcript, Entry{Kind: User, Content: text, Timestamp: now})
	return msg
}

// AddBot appends a bot message. An empty timestamp falls back to the local
// clock.
func (r *Renderer) AddBot(content, timestamp string) Message {
	now := r.clock()
	if timestamp == "" {
		timestamp = ui.ClockTime(now)
	}
	msg := Message{
		ID:    uuid.NewString(),
		Kind:  Bot,
		Lines: FormatBot(content),
		Time:  timestamp,
	}
	r.messages = append(r.messages, msg)
	r.transcript = append(r.transcript, Entry{Kind: Bot, Content: content, Timestamp: now})
	return msg
}

// AddSystem appends a system notice. Notices are not transcript entries.
func (r *Renderer) AddSystem(text string) Message {
	msg := Message{
		ID:    uuid.NewString(),
		Kind:  System,
		Lines: Escape(text),
	}
	r.messages = append(r.messages, msg)
	return msg
}

// Clear empties the conversation and shows the welcome panel again.
func (r *Renderer) Clear() {
	r.messages = nil
	r.transcript = nil
	r.hideWelcome = false
}

// Messages returns the rendered messages in order.
func (r *Renderer) Messages() []Message { return r.messages }

// Transcript returns the user and bot turns in order.
func (r *Renderer) Transcript() []Entry { return r.transcript }

// WelcomeVisible reports whether the welcome panel is shown.
func (r *Renderer) WelcomeVisible() bool { return !r.hideWelcome }

// LastBot returns the raw content of the latest bot turn.
func (r *Renderer) LastBot() (string, bool) {
	for i := len(r.transcript) - 1; i >= 0; i-- {
		if r.transcript[i].Kind == Bot {
			return r.transcript[i].Content, true
		}
	}
	return "", false
}

func (r *Renderer) clock() time.Time {
	if r.now == nil {
		return time.Now()
	}
	return r.now()
}
