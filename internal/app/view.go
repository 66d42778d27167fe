package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwulff/nexa/internal/chat"
	"github.com/jwulff/nexa/internal/ui"
)

// sampleQuestions are offered on the welcome panel.
var sampleQuestions = []string{
	"What can you help me with?",
	"Summarize the key points of the uploaded PDF",
	"Explain how neural networks learn, in simple terms",
	"Give me three tips for writing a clear report",
}

// sampleForKey maps "1".."4" to a sample question.
func sampleForKey(k string) (string, bool) {
	n, err := strconv.Atoi(k)
	if err != nil || n < 1 || n > len(sampleQuestions) {
		return "", false
	}
	return sampleQuestions[n-1], true
}

// View renders the full TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	divider := ui.DividerStyle.Render(strings.Repeat("─", m.width))

	sections := []string{
		m.renderHeader(),
		m.uploadStatus.Render(),
		divider,
		m.viewport.View(),
		divider,
		m.renderActivity(),
		m.composer.View(),
		m.renderComposerStatus(),
		m.renderFooter(),
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	left := ui.TitleStyle.Render("NEXA AI") + "  " + ui.ModeStyle.Render(modeLabel(m.mode))

	var right string
	if m.capture.IndicatorVisible() {
		right = ui.RecordingDotStyle.Render("● REC")
	}
	if m.focus == FocusMessages {
		right = ui.DimStyle.Render("[messages]") + " " + right
	}
	return padRight(left, m.width-lipgloss.Width(right)) + right
}

// renderActivity shows, in priority order, an open prompt, the listening
// modal or the loading spinner.
func (m Model) renderActivity() string {
	switch m.prompt {
	case PromptConfirmClear:
		return ui.PromptStyle.Render("Clear all data? This removes uploaded PDFs and chat history. (y/N)")
	case PromptUpload:
		return m.pathInput.View()
	}
	if m.capture.IndicatorVisible() {
		return ui.ModalStyle.Render("🎙 Listening... speak now") +
			ui.DimStyle.Render("  (esc or ctrl+r to stop)")
	}
	if m.loading {
		return m.spin.View() + ui.DimStyle.Render(" Thinking...")
	}
	return ""
}

func (m Model) renderComposerStatus() string {
	draft := m.composer.Value()
	counter := ui.RenderCounter(ui.CharCount(draft))

	var send string
	if ui.SendEnabled(draft) {
		send = ui.FooterKeyStyle.Render("Enter") + ui.FooterDescStyle.Render(" Send")
	} else {
		send = ui.DisabledKeyStyle.Render("Enter Send")
	}
	return counter + "  " + send
}

func (m Model) renderFooter() string {
	var parts []string

	if m.capture.Supported() {
		if m.capture.Active() {
			parts = append(parts, ui.FooterKeyStyle.Render("^R")+ui.FooterDescStyle.Render(" Stop"))
		} else {
			parts = append(parts, ui.FooterKeyStyle.Render("^R")+ui.FooterDescStyle.Render(" Voice"))
		}
	}
	parts = append(parts, ui.FooterKeyStyle.Render("^U")+ui.FooterDescStyle.Render(" Upload"))
	parts = append(parts, ui.FooterKeyStyle.Render("^L")+ui.FooterDescStyle.Render(" Clear"))
	parts = append(parts, ui.FooterKeyStyle.Render("^Y")+ui.FooterDescStyle.Render(" Copy"))
	parts = append(parts, ui.FooterKeyStyle.Render("Tab")+ui.FooterDescStyle.Render(" Focus"))
	parts = append(parts, ui.FooterKeyStyle.Render("PgUp/PgDn")+ui.FooterDescStyle.Render(" Scroll"))
	parts = append(parts, ui.FooterKeyStyle.Render("^C")+ui.FooterDescStyle.Render(" Quit"))

	return strings.Join(parts, "  ")
}

// messagesContent is the message pane: the welcome panel, if shown, then
// every message.
func (m Model) messagesContent() string {
	width := max(20, m.viewport.Width)

	var blocks []string
	if m.msgs.WelcomeVisible() {
		blocks = append(blocks, renderWelcome(width))
	}
	for _, msg := range m.msgs.Messages() {
		blocks = append(blocks, m.renderMessage(msg, width))
	}
	return strings.Join(blocks, "\n\n")
}

func (m Model) renderMessage(msg chat.Message, width int) string {
	marker := "  "
	if msg.ID == m.fresh {
		marker = ui.FreshMarkerStyle.Render("▍ ")
	}
	bodyWidth := max(10, width-2)

	if msg.Kind == chat.System {
		return indent(ui.SystemTextStyle.Width(bodyWidth).Render(msg.Text()), marker, "  ")
	}

	var label string
	if msg.Kind == chat.User {
		label = ui.UserLabelStyle.Render("You")
	} else {
		label = ui.BotLabelStyle.Render("NEXA")
	}
	header := label + " " + ui.TimestampStyle.Render(msg.Time)
	return marker + header + "\n" + indent(renderLines(msg.Lines, bodyWidth), "  ", "  ")
}

// renderLines styles each span and wraps each line to width.
func renderLines(lines []chat.Line, width int) string {
	wrap := lipgloss.NewStyle().Width(width)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		var b strings.Builder
		for _, s := range line {
			b.WriteString(spanStyle(s).Render(s.Text))
		}
		out = append(out, wrap.Render(b.String()))
	}
	return strings.Join(out, "\n")
}

func spanStyle(s chat.Span) lipgloss.Style {
	return lipgloss.NewStyle().Bold(s.Bold).Italic(s.Italic)
}

func renderWelcome(width int) string {
	lines := []string{
		ui.WelcomeTitleStyle.Render("Welcome to NEXA AI"),
		ui.DimStyle.Render("Ask anything, or press ctrl+u to upload a PDF and ask about it."),
		"",
		ui.DimStyle.Render("Sample questions (tab, then the number):"),
	}
	for i, q := range sampleQuestions {
		lines = append(lines, "  "+ui.SampleKeyStyle.Render(strconv.Itoa(i+1))+"  "+q)
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

// indent prefixes the first line with first and the rest with rest.
func indent(s, first, rest string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = first + lines[i]
		} else {
			lines[i] = rest + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
