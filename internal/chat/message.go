// Package chat holds the rendered conversation and the session transcript.
package chat

import (
	"strings"
	"time"
)

// Kind identifies who a message is from.
type Kind int

const (
	User Kind = iota
	Bot
	System
)

func (k Kind) String() string {
	switch k {
	case User:
		return "user"
	case Bot:
		return "bot"
	}
	return "system"
}

// Span is a run of text with uniform emphasis.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
}

// Line is one display line of a message body.
type Line []Span

// Message is a rendered conversation entry.
type Message struct {
	ID    string
	Kind  Kind
	Lines []Line
	// Time is the display timestamp. System messages have none.
	Time string
}

// Text returns the body with emphasis dropped and lines joined by newlines.
func (m Message) Text() string {
	var b strings.Builder
	for i, line := range m.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, s := range line {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// Entry is a transcript record of a user or bot turn.
type Entry struct {
	Kind      Kind
	Content   string
	Timestamp time.Time
}
