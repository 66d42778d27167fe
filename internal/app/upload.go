package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwulff/nexa/internal/backend"
	"github.com/jwulff/nexa/internal/ui"
	"go.uber.org/zap"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	notPDFText       = "❌ Please select a PDF file"
	tooLargeText     = "❌ File too large. Maximum size is 10MB"
	uploadFailedText = "❌ Upload failed. Please try again."
)

// handleFileChange validates the chosen path and starts the upload.
// Rejected files never reach the network.
func (m *Model) handleFileChange(path string) tea.Cmd {
	path = expandHome(strings.TrimSpace(path))
	if path == "" {
		return nil
	}
	name := filepath.Base(path)

	if err := backend.CheckName(name); err != nil {
		return m.setUploadStatus(notPDFText, ui.StatusError)
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		err = errors.New("is a directory")
	}
	if err != nil {
		m.log.Warn("upload file unreadable", zap.String("path", path), zap.Error(err))
		return m.setUploadStatus(fmt.Sprintf("❌ Cannot read %s", name), ui.StatusError)
	}

	if err := backend.CheckSize(info.Size()); err != nil {
		return m.setUploadStatus(tooLargeText, ui.StatusError)
	}

	status := fmt.Sprintf("📤 Uploading %s (%s)...", name, ui.FormatFileSize(info.Size()))
	return tea.Batch(
		m.setUploadStatus(status, ui.StatusInfo),
		m.startLoading(),
		uploadCmd(m.backend, m.timeout, path),
	)
}

// handleUploadResult reports the server's verdict on an upload.
func (m *Model) handleUploadResult(msg UploadResultMsg) tea.Cmd {
	m.loading = false

	if msg.Err != nil {
		m.log.Error("upload failed", zap.Error(msg.Err))
		return m.setUploadStatus(uploadFailedText, ui.StatusError)
	}

	r := msg.Response
	if !r.Success {
		return m.setUploadStatus("❌ "+r.Error, ui.StatusError)
	}

	notice := fmt.Sprintf("📄 PDF \"%s\" processed successfully with %d pages!", r.Filename, r.Pages)
	return tea.Batch(
		m.setUploadStatus("✅ "+r.Message, ui.StatusSuccess),
		statusCmd(m.backend, m.timeout),
		m.showMessage(m.msgs.AddSystem(notice)),
	)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
