package ui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Composer limits.
const (
	CharLimit        = 2000
	CounterWarnAfter = 1500
	CounterErrAfter  = 1800
	MaxComposerLines = 6
)

// CounterLevel is the severity color of the character counter.
type CounterLevel int

const (
	CounterNormal CounterLevel = iota
	CounterWarning
	CounterError
)

// CharCount counts characters, not bytes.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// CounterLevelFor maps a character count to its counter color.
func CounterLevelFor(n int) CounterLevel {
	switch {
	case n > CounterErrAfter:
		return CounterError
	case n > CounterWarnAfter:
		return CounterWarning
	}
	return CounterNormal
}

// SendEnabled reports whether the draft can be sent.
func SendEnabled(draft string) bool {
	return strings.TrimSpace(draft) != ""
}

// ComposerHeight grows with the draft's line count up to MaxComposerLines.
func ComposerHeight(lines int) int {
	return max(1, min(lines, MaxComposerLines))
}

// RenderCounter renders "n/limit" in the color for n.
func RenderCounter(n int) string {
	text := strconv.Itoa(n) + "/" + strconv.Itoa(CharLimit)
	return counterStyle(CounterLevelFor(n)).Render(text)
}

func counterStyle(level CounterLevel) lipgloss.Style {
	switch level {
	case CounterError:
		return ErrorTextStyle
	case CounterWarning:
		return WarningTextStyle
	}
	return DimStyle
}
