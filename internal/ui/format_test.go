package ui

import (
	"testing"
	"time"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1 MB"},
		{10 * 1024 * 1024, "10 MB"},
		{1288490, "1.23 MB"},
		{3 * 1024 * 1024 * 1024, "3 GB"},
		{2 * 1024 * 1024 * 1024 * 1024, "2048 GB"},
	}
	for _, tt := range tests {
		if got := FormatFileSize(tt.bytes); got != tt.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestClockTime(t *testing.T) {
	tests := []struct {
		at   time.Time
		want string
	}{
		{time.Date(2024, 1, 1, 9, 5, 0, 0, time.Local), "09:05 AM"},
		{time.Date(2024, 1, 1, 22, 30, 0, 0, time.Local), "10:30 PM"},
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), "12:00 AM"},
	}
	for _, tt := range tests {
		if got := ClockTime(tt.at); got != tt.want {
			t.Errorf("ClockTime(%v) = %q, want %q", tt.at, got, tt.want)
		}
	}
}

func TestUploadStatusAutoHides(t *testing.T) {
	if (UploadStatus{Text: "❌ nope", Kind: StatusError}).AutoHides() {
		t.Error("errors must persist")
	}
	if !(UploadStatus{Text: "✅ done", Kind: StatusSuccess}).AutoHides() {
		t.Error("success should auto-hide")
	}
	if !(UploadStatus{Text: "📤 Uploading", Kind: StatusInfo}).AutoHides() {
		t.Error("info should auto-hide")
	}
	if (UploadStatus{}).AutoHides() {
		t.Error("empty status has nothing to hide")
	}
}
