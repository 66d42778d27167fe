package app

import (
	"github.com/jwulff/nexa/internal/backend"
	"github.com/jwulff/nexa/internal/speech"
)

// StatusResultMsg carries the response to a status poll.
type StatusResultMsg struct {
	Response backend.StatusResponse
	Err      error
}

// AskResultMsg carries the answer to a question.
type AskResultMsg struct {
	Response backend.AskResponse
	Err      error
}

// UploadResultMsg carries the outcome of a PDF upload.
type UploadResultMsg struct {
	Response backend.UploadResponse
	Err      error
}

// ClearResultMsg carries the outcome of a clear request.
type ClearResultMsg struct {
	Response backend.ClearResponse
	Err      error
}

// SpeechReadyMsg is sent when the speech engine is connected.
type SpeechReadyMsg struct {
	Recognizer Recognizer
}

// SpeechUnavailableMsg is sent when no speech engine could be reached.
type SpeechUnavailableMsg struct {
	Err error
}

// SpeechEventMsg wraps a capture event from the engine.
type SpeechEventMsg struct {
	Event speech.Event
}

// SpeechStreamErrorMsg is sent when the engine's event stream breaks.
type SpeechStreamErrorMsg struct {
	Err error
}

// SpeechStartResultMsg carries the engine's answer to a start request.
type SpeechStartResultMsg struct {
	Err error
}

// SpeechStopResultMsg carries the engine's answer to a stop request.
type SpeechStopResultMsg struct {
	Err error
}

// HighlightDoneMsg ends the entrance highlight of a message.
type HighlightDoneMsg struct {
	ID string
}
