package app

import (
	"github.com/jwulff/nexa/internal/backend"
	"go.uber.org/zap"
)

// handleStatus stores the polled mode. Failures are only logged.
func (m *Model) handleStatus(msg StatusResultMsg) {
	if msg.Err != nil {
		m.log.Error("status poll failed", zap.Error(msg.Err))
		return
	}
	m.mode = msg.Response.Mode
}

// modeLabel is the header text for a mode.
func modeLabel(mode string) string {
	if mode == backend.ModePDF {
		return "📄 PDF Mode"
	}
	return "🧠 General Mode"
}
