package ui

import "time"

// StatusKind classifies the upload status line.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// StatusHideAfter is how long non-error status text stays on screen.
const StatusHideAfter = 5 * time.Second

// UploadStatus is the transient line under the header.
type UploadStatus struct {
	Text string
	Kind StatusKind
}

// AutoHides reports whether the status clears itself. Errors persist.
func (s UploadStatus) AutoHides() bool {
	return s.Text != "" && s.Kind != StatusError
}

// Render styles the status for its kind.
func (s UploadStatus) Render() string {
	switch s.Kind {
	case StatusError:
		return ErrorTextStyle.Render(s.Text)
	case StatusSuccess:
		return SuccessTextStyle.Render(s.Text)
	}
	return InfoTextStyle.Render(s.Text)
}
