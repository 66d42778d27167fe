package speech

import "strings"

// State is the lifecycle state of a capture.
type State int

const (
	Idle State = iota
	Starting
	Recording
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Recording:
		return "recording"
	}
	return "idle"
}

// EventKind names a capture transition.
type EventKind int

const (
	// Start is the user asking to begin dictation.
	Start EventKind = iota
	// Started is the engine confirming it is listening.
	Started
	// StartFailed is the engine refusing to start.
	StartFailed
	// Result carries a partial or final transcript fragment.
	Result
	// End is the engine stopping on its own.
	End
	// Failed is an engine error.
	Failed
	// Stop is the user (or the app on focus loss or quit) ending dictation.
	Stop
)

// Event is a single input to Capture.Dispatch.
type Event struct {
	Kind  EventKind
	Text  string
	Final bool
	Err   string
}

// ErrorNotice is posted as a system message when recognition fails.
const ErrorNotice = "❌ Voice recognition error. Please try again."

// Effect is what the caller must do after a transition.
type Effect struct {
	StartEngine bool
	StopEngine  bool
	// UIChanged is set when the recording indicator and listening modal
	// flipped visibility.
	UIChanged bool
	// Draft replaces the composer text when SetDraft is set.
	Draft    string
	SetDraft bool
	// Notice is a system message to post, if any.
	Notice string
}

// Capture is the dictation state machine. The zero value is an unsupported,
// idle capture.
type Capture struct {
	supported bool
	state     State
	indicator bool
	finals    []string
	partial   string
}

// SetSupported records whether a speech engine is available.
func (c *Capture) SetSupported(ok bool) { c.supported = ok }

// Supported reports whether dictation can be started at all.
func (c *Capture) Supported() bool { return c.supported }

// State returns the current lifecycle state.
func (c *Capture) State() State { return c.state }

// Active reports whether the engine may be holding the microphone.
func (c *Capture) Active() bool { return c.state != Idle }

// Recording reports whether the engine confirmed it is listening.
func (c *Capture) Recording() bool { return c.state == Recording }

// IndicatorVisible reports whether the recording indicator and the
// listening modal are shown.
func (c *Capture) IndicatorVisible() bool { return c.indicator }

// Dispatch applies ev and returns the resulting effect.
func (c *Capture) Dispatch(ev Event) Effect {
	switch ev.Kind {
	case Start:
		if !c.supported || c.state != Idle {
			return Effect{}
		}
		c.state = Starting
		c.finals = c.finals[:0]
		c.partial = ""
		return Effect{StartEngine: true}

	case Started:
		if c.state == Idle {
			// A stop overtook the start: the engine is listening for nobody.
			return Effect{StopEngine: true}
		}
		if c.state != Starting {
			return Effect{}
		}
		c.state = Recording
		changed := !c.indicator
		c.indicator = true
		return Effect{UIChanged: changed}

	case StartFailed:
		if c.state == Starting {
			c.state = Idle
		}
		return Effect{}

	case Result:
		if c.state == Idle {
			return Effect{}
		}
		if ev.Final {
			if t := strings.TrimSpace(ev.Text); t != "" {
				c.finals = append(c.finals, t)
			}
			c.partial = ""
		} else {
			c.partial = strings.TrimSpace(ev.Text)
		}
		return Effect{Draft: c.draft(), SetDraft: true}

	case End:
		return c.stop()

	case Failed:
		eff := c.stop()
		eff.Notice = ErrorNotice
		return eff

	case Stop:
		return c.stop()
	}
	return Effect{}
}

// stop is idempotent: a second call asks nothing of the engine and changes
// nothing on screen.
func (c *Capture) stop() Effect {
	eff := Effect{
		StopEngine: c.state != Idle,
		UIChanged:  c.indicator,
	}
	c.state = Idle
	c.indicator = false
	return eff
}

func (c *Capture) draft() string {
	parts := c.finals
	if c.partial != "" {
		parts = append(parts[:len(parts):len(parts)], c.partial)
	}
	return strings.Join(parts, " ")
}
