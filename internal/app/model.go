package app

import (
	"context"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/jwulff/nexa/internal/backend"
	"github.com/jwulff/nexa/internal/chat"
	"github.com/jwulff/nexa/internal/speech"
	"github.com/jwulff/nexa/internal/ui"
	"go.uber.org/zap"

	tea "github.com/charmbracelet/bubbletea"
)

// Backend is the question-answering service.
type Backend interface {
	Ask(ctx context.Context, question string) (backend.AskResponse, error)
	Upload(ctx context.Context, filename string, r io.Reader) (backend.UploadResponse, error)
	Status(ctx context.Context) (backend.StatusResponse, error)
	Clear(ctx context.Context) (backend.ClearResponse, error)
}

// Recognizer is a connected speech engine.
type Recognizer interface {
	Start() error
	Stop() error
	Next() (speech.Event, error)
	Close() error
}

// PanelFocus tracks which panel has keyboard focus.
type PanelFocus int

const (
	FocusComposer PanelFocus = iota
	FocusMessages
)

// Prompt is a one-line question shown above the composer.
type Prompt int

const (
	PromptNone Prompt = iota
	PromptUpload
	PromptConfirmClear
)

const (
	statusHideKey = "status-hide"
	relayoutKey   = "relayout"

	relayoutWait   = 100 * time.Millisecond
	defaultTimeout = 60 * time.Second

	// header, status line, two dividers, activity row, counter row, footer
	chromeLines = 7
)

// Options configures a Model.
type Options struct {
	Backend Backend
	// DialSpeech connects to the speech engine. Nil disables dictation.
	DialSpeech func() (Recognizer, error)
	Logger     *zap.Logger
	// Timeout bounds each backend request.
	Timeout time.Duration
	// Clipboard writes text to the system clipboard.
	Clipboard func(string) error
}

// Model is the root bubbletea model for the chat client.
type Model struct {
	backend    Backend
	dialSpeech func() (Recognizer, error)
	recognizer Recognizer
	log        *zap.Logger
	timeout    time.Duration
	copyText   func(string) error

	// Widgets
	composer  textarea.Model
	viewport  viewport.Model
	pathInput textinput.Model
	spin      spinner.Model

	// Conversation
	msgs  chat.Renderer
	fresh string

	// Dictation
	capture speech.Capture

	// Status
	mode         string
	loading      bool
	uploadStatus ui.UploadStatus
	statusHide   ui.Debouncer

	// UI state
	focus    PanelFocus
	prompt   Prompt
	width    int
	height   int
	ready    bool
	relayout ui.Debouncer
}

// New creates a Model in general mode with the welcome panel shown.
func New(opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask me anything..."
	ta.CharLimit = ui.CharLimit
	ta.ShowLineNumbers = false
	ta.Prompt = "┃ "
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys(newlineKeys...))
	ta.SetHeight(1)
	ta.Focus()

	path := textinput.New()
	path.Placeholder = "/path/to/document.pdf"
	path.Prompt = "PDF path › "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.SpinnerStyle

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	return Model{
		backend:    opts.Backend,
		dialSpeech: opts.DialSpeech,
		log:        log,
		timeout:    timeout,
		copyText:   copyText,
		composer:   ta,
		viewport:   viewport.New(80, 20),
		pathInput:  path,
		spin:       sp,
		msgs:       chat.NewRenderer(),
		mode:       backend.ModeGeneral,
		statusHide: ui.NewDebouncer(statusHideKey, ui.StatusHideAfter),
		relayout:   ui.NewDebouncer(relayoutKey, relayoutWait),
	}
}

// Init polls the answering mode, probes for a speech engine and starts the
// cursor blinking.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		statusCmd(m.backend, m.timeout),
		dialSpeechCmd(m.dialSpeech),
	)
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.ready = true
			m.layout()
			return m, nil
		}
		return m, m.relayout.Trigger()

	case ui.DebounceMsg:
		switch {
		case m.relayout.Fire(msg):
			m.layout()
		case m.statusHide.Fire(msg):
			m.uploadStatus = ui.UploadStatus{}
		}
		return m, nil

	case tea.BlurMsg:
		// Leaving the terminal releases the microphone.
		return m, m.dispatchSpeech(speech.Event{Kind: speech.Stop})

	case tea.FocusMsg:
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case HighlightDoneMsg:
		if m.fresh == msg.ID {
			m.fresh = ""
			m.renderMessages()
		}
		return m, nil

	case StatusResultMsg:
		m.handleStatus(msg)
		return m, nil

	case AskResultMsg:
		return m, m.handleAnswer(msg)

	case UploadResultMsg:
		return m, m.handleUploadResult(msg)

	case ClearResultMsg:
		return m, m.handleClearResult(msg)

	case SpeechReadyMsg:
		m.recognizer = msg.Recognizer
		m.capture.SetSupported(true)
		m.log.Info("speech engine connected")
		return m, readSpeechCmd(m.recognizer)

	case SpeechUnavailableMsg:
		m.capture.SetSupported(false)
		m.log.Info("speech unavailable", zap.Error(msg.Err))
		return m, nil

	case SpeechEventMsg:
		if m.recognizer == nil {
			return m, nil
		}
		cmd := m.dispatchSpeech(msg.Event)
		// Continue reading events from the engine
		return m, tea.Batch(cmd, readSpeechCmd(m.recognizer))

	case SpeechStreamErrorMsg:
		return m, m.handleSpeechLost(msg.Err)

	case SpeechStartResultMsg:
		if msg.Err != nil {
			m.log.Error("speech start failed", zap.Error(msg.Err))
			return m, m.dispatchSpeech(speech.Event{Kind: speech.StartFailed, Err: msg.Err.Error()})
		}
		return m, m.dispatchSpeech(speech.Event{Kind: speech.Started})

	case SpeechStopResultMsg:
		if msg.Err != nil {
			m.log.Warn("speech stop failed", zap.Error(msg.Err))
		}
		return m, nil
	}

	// Everything else (cursor blink and the like) goes to the active input.
	var cmd tea.Cmd
	if m.prompt == PromptUpload {
		m.pathInput, cmd = m.pathInput.Update(msg)
	} else {
		m.composer, cmd = m.composer.Update(msg)
	}
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == KeyQuit {
		m.shutdownSpeech()
		return m, tea.Quit
	}

	switch m.prompt {
	case PromptConfirmClear:
		return m.handleConfirmKey(msg)
	case PromptUpload:
		return m.handleUploadKey(msg)
	}

	switch msg.String() {
	case KeyEsc:
		if m.capture.Active() {
			return m, m.dispatchSpeech(speech.Event{Kind: speech.Stop})
		}
		return m, nil

	case KeyVoice:
		return m, m.toggleVoice()

	case KeyUpload:
		m.prompt = PromptUpload
		m.composer.Blur()
		return m, m.pathInput.Focus()

	case KeyClear:
		m.prompt = PromptConfirmClear
		return m, nil

	case KeyFocusInput:
		return m, m.setFocus(FocusComposer)

	case KeyTab:
		if m.focus == FocusComposer {
			return m, m.setFocus(FocusMessages)
		}
		return m, m.setFocus(FocusComposer)

	case KeyCopy:
		return m, m.copyLastAnswer()

	case KeyPageUp, KeyPageDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.focus == FocusMessages {
		return m.handleMessagesKey(msg)
	}

	if msg.String() == KeySend {
		return m, m.sendMessage()
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	m.refreshComposer()
	return m, cmd
}

// handleMessagesKey scrolls the message pane and picks sample questions.
func (m Model) handleMessagesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.msgs.WelcomeVisible() {
		if q, ok := sampleForKey(msg.String()); ok {
			m.composer.SetValue(q)
			m.composer.CursorEnd()
			m.refreshComposer()
			return m, m.setFocus(FocusComposer)
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleConfirmKey answers the clear confirmation. Anything but "y"
// declines without a word.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.prompt = PromptNone
	switch msg.String() {
	case KeyConfirm, KeyConfirmUp:
		return m, m.clearChat()
	}
	return m, nil
}

// handleUploadKey edits and submits the upload path prompt.
func (m Model) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeySend:
		path := m.pathInput.Value()
		m.closeUploadPrompt()
		return m, m.handleFileChange(path)
	case KeyEsc:
		m.closeUploadPrompt()
		return m, nil
	}
	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m *Model) closeUploadPrompt() {
	m.pathInput.Reset()
	m.pathInput.Blur()
	m.prompt = PromptNone
	if m.focus == FocusComposer {
		m.composer.Focus()
	}
}

func (m *Model) setFocus(f PanelFocus) tea.Cmd {
	m.focus = f
	if f == FocusComposer {
		return m.composer.Focus()
	}
	m.composer.Blur()
	return nil
}

// refreshComposer resizes the composer to its line count.
func (m *Model) refreshComposer() {
	h := ui.ComposerHeight(m.composer.LineCount())
	if h != m.composer.Height() {
		m.composer.SetHeight(h)
		m.layout()
	}
}

// layout sizes the widgets to the window.
func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	m.composer.SetWidth(max(10, m.width-2))
	m.pathInput.Width = max(10, m.width-16)
	m.viewport.Width = m.width
	m.viewport.Height = max(3, m.height-chromeLines-m.composer.Height())
	m.renderMessages()
}

// renderMessages redraws the message pane.
func (m *Model) renderMessages() {
	m.viewport.SetContent(m.messagesContent())
}

// showMessage renders the new message, scrolls to it and schedules the end
// of its entrance highlight.
func (m *Model) showMessage(msg chat.Message) tea.Cmd {
	m.fresh = msg.ID
	m.renderMessages()
	m.viewport.GotoBottom()
	return highlightCmd(msg.ID)
}

func (m *Model) startLoading() tea.Cmd {
	m.loading = true
	return m.spin.Tick
}

// setUploadStatus shows text under the header. Non-error text hides itself
// after ui.StatusHideAfter unless replaced first.
func (m *Model) setUploadStatus(text string, kind ui.StatusKind) tea.Cmd {
	m.uploadStatus = ui.UploadStatus{Text: text, Kind: kind}
	if m.uploadStatus.AutoHides() {
		return m.statusHide.Trigger()
	}
	m.statusHide.Cancel()
	return nil
}

func (m *Model) clearUploadStatus() {
	m.uploadStatus = ui.UploadStatus{}
	m.statusHide.Cancel()
}

// copyLastAnswer puts the latest bot answer on the clipboard.
func (m *Model) copyLastAnswer() tea.Cmd {
	text, ok := m.msgs.LastBot()
	if !ok {
		return m.setUploadStatus("Nothing to copy yet", ui.StatusInfo)
	}
	if err := m.copyText(text); err != nil {
		m.log.Error("clipboard write failed", zap.Error(err))
		return m.setUploadStatus("❌ Could not copy to clipboard", ui.StatusError)
	}
	return m.setUploadStatus("📋 Copied last answer", ui.StatusInfo)
}
