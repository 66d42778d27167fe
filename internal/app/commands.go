package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jwulff/nexa/internal/speech"

	tea "github.com/charmbracelet/bubbletea"
)

// highlightDuration is how long a new message keeps its entrance marker.
const highlightDuration = 300 * time.Millisecond

// statusCmd polls the answering mode.
func statusCmd(b Backend, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := b.Status(ctx)
		return StatusResultMsg{Response: resp, Err: err}
	}
}

// askCmd posts a question.
func askCmd(b Backend, timeout time.Duration, question string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := b.Ask(ctx, question)
		return AskResultMsg{Response: resp, Err: err}
	}
}

// uploadCmd opens path and uploads it.
func uploadCmd(b Backend, timeout time.Duration, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return UploadResultMsg{Err: fmt.Errorf("open upload: %w", err)}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := b.Upload(ctx, filepath.Base(path), f)
		return UploadResultMsg{Response: resp, Err: err}
	}
}

// clearCmd asks the server to drop documents and history.
func clearCmd(b Backend, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := b.Clear(ctx)
		return ClearResultMsg{Response: resp, Err: err}
	}
}

// dialSpeechCmd detects speech support by connecting to the engine.
func dialSpeechCmd(dial func() (Recognizer, error)) tea.Cmd {
	return func() tea.Msg {
		if dial == nil {
			return SpeechUnavailableMsg{Err: speech.ErrUnsupported}
		}
		rec, err := dial()
		if err != nil {
			return SpeechUnavailableMsg{Err: err}
		}
		return SpeechReadyMsg{Recognizer: rec}
	}
}

// readSpeechCmd reads the next capture event from the engine.
func readSpeechCmd(rec Recognizer) tea.Cmd {
	return func() tea.Msg {
		ev, err := rec.Next()
		if err != nil {
			return SpeechStreamErrorMsg{Err: err}
		}
		return SpeechEventMsg{Event: ev}
	}
}

// speechStartCmd asks the engine to start listening.
func speechStartCmd(rec Recognizer) tea.Cmd {
	return func() tea.Msg {
		return SpeechStartResultMsg{Err: rec.Start()}
	}
}

// speechStopCmd asks the engine to release the microphone.
func speechStopCmd(rec Recognizer) tea.Cmd {
	return func() tea.Msg {
		return SpeechStopResultMsg{Err: rec.Stop()}
	}
}

// highlightCmd ends a message's entrance highlight.
func highlightCmd(id string) tea.Cmd {
	return tea.Tick(highlightDuration, func(time.Time) tea.Msg {
		return HighlightDoneMsg{ID: id}
	})
}
