package chat

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Emphasis markers used between the substitution passes and the span split.
const (
	boldOn    = '\x01'
	boldOff   = '\x02'
	italicOn  = '\x03'
	italicOff = '\x04'
)

var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.*?)\*`)

	markerStripper = strings.NewReplacer(
		string(rune(boldOn)), "", string(rune(boldOff)), "",
		string(rune(italicOn)), "", string(rune(italicOff)), "",
	)
)

// FormatBot applies the bot formatting passes in order: **x** to bold, *x*
// to italic, newline to line break. Passes are single and non-recursive.
// Bot text is otherwise passed through as-is.
func FormatBot(content string) []Line {
	s := markerStripper.Replace(content)
	s = boldPattern.ReplaceAllString(s, string(rune(boldOn))+"$1"+string(rune(boldOff)))
	s = italicPattern.ReplaceAllString(s, string(rune(italicOn))+"$1"+string(rune(italicOff)))
	return splitSpans(s)
}

// Escape renders text literally. Control characters other than newline and
// tab are shown as escape sequences so they cannot drive the terminal.
func Escape(text string) []Line {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case unicode.IsControl(r):
			if r < 0x80 {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				fmt.Fprintf(&b, `\u%04x`, r)
			}
		default:
			b.WriteRune(r)
		}
	}

	var lines []Line
	for _, l := range strings.Split(b.String(), "\n") {
		if l == "" {
			lines = append(lines, Line{})
			continue
		}
		lines = append(lines, Line{{Text: l}})
	}
	return lines
}

func splitSpans(s string) []Line {
	var (
		lines        []Line
		line         Line
		cur          strings.Builder
		bold, italic int
	)
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		line = append(line, Span{Text: cur.String(), Bold: bold > 0, Italic: italic > 0})
		cur.Reset()
	}

	for _, r := range s {
		switch r {
		case boldOn:
			flush()
			bold++
		case boldOff:
			flush()
			bold = max(0, bold-1)
		case italicOn:
			flush()
			italic++
		case italicOff:
			flush()
			italic = max(0, italic-1)
		case '\n':
			flush()
			if line == nil {
				line = Line{}
			}
			lines = append(lines, line)
			line = nil
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	if line == nil {
		line = Line{}
	}
	return append(lines, line)
}
