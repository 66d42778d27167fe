package app

import (
	"strings"

	"github.com/jwulff/nexa/internal/chat"
	"go.uber.org/zap"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	askFailedText   = "❌ Failed to get response. Please try again."
	clearFailedText = "❌ Failed to clear data. Please try again."
)

// sendMessage posts the composer text as a question. Blank input is ignored.
func (m *Model) sendMessage() tea.Cmd {
	question := strings.TrimSpace(m.composer.Value())
	if question == "" {
		return nil
	}

	msg := m.msgs.AddUser(question)
	m.composer.Reset()
	m.refreshComposer()

	return tea.Batch(
		m.showMessage(msg),
		m.startLoading(),
		askCmd(m.backend, m.timeout, question),
	)
}

// handleAnswer renders the reply to a question.
func (m *Model) handleAnswer(msg AskResultMsg) tea.Cmd {
	m.loading = false

	var reply chat.Message
	switch r := msg.Response; {
	case msg.Err != nil:
		m.log.Error("ask failed", zap.Error(msg.Err))
		reply = m.msgs.AddBot(askFailedText, "")
	case r.Error != "":
		reply = m.msgs.AddBot("❌ "+r.Error, r.Timestamp)
	default:
		reply = m.msgs.AddBot(r.Prefix+r.Answer, r.Timestamp)
	}
	return m.showMessage(reply)
}

// clearChat asks the server to drop documents and history. Called once the
// user confirmed.
func (m *Model) clearChat() tea.Cmd {
	return tea.Batch(
		m.startLoading(),
		clearCmd(m.backend, m.timeout),
	)
}

// handleClearResult resets the conversation on success. A failure leaves
// the conversation as it was.
func (m *Model) handleClearResult(msg ClearResultMsg) tea.Cmd {
	m.loading = false

	if msg.Err != nil || !msg.Response.Success {
		if msg.Err != nil {
			m.log.Error("clear failed", zap.Error(msg.Err))
		}
		return m.showMessage(m.msgs.AddSystem(clearFailedText))
	}

	m.msgs.Clear()
	m.clearUploadStatus()
	return tea.Batch(
		statusCmd(m.backend, m.timeout),
		m.showMessage(m.msgs.AddSystem(msg.Response.Message)),
	)
}
