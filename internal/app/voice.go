package app

import (
	"github.com/jwulff/nexa/internal/speech"
	"go.uber.org/zap"

	tea "github.com/charmbracelet/bubbletea"
)

// toggleVoice starts dictation, or stops it when the engine may be
// listening. Does nothing without a speech engine.
func (m *Model) toggleVoice() tea.Cmd {
	if !m.capture.Supported() {
		return nil
	}
	if m.capture.Active() {
		return m.dispatchSpeech(speech.Event{Kind: speech.Stop})
	}
	return m.dispatchSpeech(speech.Event{Kind: speech.Start})
}

// dispatchSpeech runs ev through the capture and carries out its effect.
func (m *Model) dispatchSpeech(ev speech.Event) tea.Cmd {
	eff := m.capture.Dispatch(ev)

	var cmds []tea.Cmd
	if eff.SetDraft {
		m.composer.SetValue(eff.Draft)
		m.composer.CursorEnd()
		m.refreshComposer()
	}
	if eff.Notice != "" {
		cmds = append(cmds, m.showMessage(m.msgs.AddSystem(eff.Notice)))
	}
	if m.recognizer != nil {
		if eff.StartEngine {
			cmds = append(cmds, speechStartCmd(m.recognizer))
		}
		if eff.StopEngine {
			cmds = append(cmds, speechStopCmd(m.recognizer))
		}
	}
	return tea.Batch(cmds...)
}

// handleSpeechLost disables dictation after the engine's event stream broke.
func (m *Model) handleSpeechLost(err error) tea.Cmd {
	m.log.Error("speech event stream failed", zap.Error(err))

	var cmd tea.Cmd
	if m.capture.Active() {
		cmd = m.showMessage(m.msgs.AddSystem(speech.ErrorNotice))
	}
	m.shutdownSpeech()
	m.capture.SetSupported(false)
	return cmd
}

// shutdownSpeech stops any capture and closes the engine. It blocks, so the
// microphone is released before the program exits.
func (m *Model) shutdownSpeech() {
	eff := m.capture.Dispatch(speech.Event{Kind: speech.Stop})
	if m.recognizer == nil {
		return
	}
	if eff.StopEngine {
		if err := m.recognizer.Stop(); err != nil {
			m.log.Warn("speech stop failed", zap.Error(err))
		}
	}
	if err := m.recognizer.Close(); err != nil {
		m.log.Warn("speech close failed", zap.Error(err))
	}
	m.recognizer = nil
}
