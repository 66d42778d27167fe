// Package speech drives local speech-to-text for the composer. It talks to a
// speech daemon over a Unix socket using NDJSON and turns the daemon's event
// stream into capture transitions.
package speech

// Daemon command names.
const (
	CmdStart     = "start"
	CmdStop      = "stop"
	CmdStatus    = "status"
	CmdSubscribe = "subscribe"
)

// Daemon event names.
const (
	EvPartial = "partial"
	EvSegment = "segment"
	EvStatus  = "status"
	EvError   = "error"
)

// Command is sent from a client to the daemon.
type Command struct {
	Cmd    string   `json:"cmd"`
	Locale string   `json:"locale,omitempty"`
	Events []string `json:"events,omitempty"`
}

// Response is returned by the daemon after processing a command.
type Response struct {
	OK        bool   `json:"ok"`
	SessionID string `json:"sessionId,omitempty"`
	Recording *bool  `json:"recording,omitempty"`
	Error     string `json:"error,omitempty"`
	Status    string `json:"status,omitempty"`
}

// DaemonEvent is streamed from the daemon to subscribed clients.
type DaemonEvent struct {
	Event     string `json:"event"`
	Text      string `json:"text,omitempty"`
	Source    string `json:"source,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message,omitempty"`
	Transient *bool  `json:"transient,omitempty"`
	Recording *bool  `json:"recording,omitempty"`
}

// subscribedEvents is the event filter sent with the subscribe command.
var subscribedEvents = []string{EvPartial, EvSegment, EvStatus, EvError}

// Translate maps a daemon event onto a capture event. Events the capture
// does not care about (levels, topics) report ok=false.
func Translate(ev DaemonEvent) (Event, bool) {
	switch ev.Event {
	case EvPartial:
		return Event{Kind: Result, Text: ev.Text}, true
	case EvSegment:
		return Event{Kind: Result, Text: ev.Text, Final: true}, true
	case EvStatus:
		if ev.Recording == nil {
			return Event{}, false
		}
		if *ev.Recording {
			return Event{Kind: Started}, true
		}
		return Event{Kind: End}, true
	case EvError:
		return Event{Kind: Failed, Err: ev.Message}, true
	}
	return Event{}, false
}
