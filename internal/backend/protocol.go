// Package backend is the HTTP client for the question-answering service.
package backend

// Modes reported by /status.
const (
	ModeGeneral = "general"
	ModePDF     = "pdf"
)

// AskRequest is the JSON body of POST /ask.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is returned by POST /ask. Either Answer or Error is set.
type AskResponse struct {
	Answer    string `json:"answer,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Error     string `json:"error,omitempty"`
}

// UploadResponse is returned by POST /upload.
type UploadResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Filename string `json:"filename,omitempty"`
	Pages    int    `json:"pages,omitempty"`
	Error    string `json:"error,omitempty"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	Mode string `json:"mode"`
}

// ClearResponse is returned by POST /clear.
type ClearResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
