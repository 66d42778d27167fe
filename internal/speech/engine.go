package speech

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrUnsupported is returned when no speech daemon can be reached.
var ErrUnsupported = errors.New("speech recognition not supported")

// Engine is a connected speech daemon: one connection for commands and one
// subscribed connection for the event stream.
type Engine struct {
	cmd    *Client
	events *Client
	locale string
	log    *zap.Logger
}

// Dial connects both daemon connections and subscribes to capture events.
// Any failure is reported as ErrUnsupported wrapping the cause.
func Dial(socketPath, locale string, log *zap.Logger) (*Engine, error) {
	cmd, err := Connect(socketPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	// A listener that accepts but never answers is not a usable daemon.
	cmd.conn.SetDeadline(time.Now().Add(dialTimeout))
	status, err := cmd.SendCommand(Command{Cmd: CmdStatus})
	cmd.conn.SetDeadline(time.Time{})
	if err == nil && !status.OK {
		err = errors.New(status.Error)
	}
	if err != nil {
		cmd.Close()
		return nil, fmt.Errorf("%w: status: %w", ErrUnsupported, err)
	}
	events, err := Connect(socketPath)
	if err != nil {
		cmd.Close()
		return nil, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}

	resp, err := events.SendCommand(Command{Cmd: CmdSubscribe, Events: subscribedEvents})
	if err == nil && !resp.OK {
		err = errors.New(resp.Error)
	}
	if err != nil {
		cmd.Close()
		events.Close()
		return nil, fmt.Errorf("%w: subscribe: %w", ErrUnsupported, err)
	}

	log.Debug("speech daemon connected",
		zap.String("socket", socketPath),
		zap.String("status", status.Status))
	return &Engine{cmd: cmd, events: events, locale: locale, log: log}, nil
}

// Start asks the daemon to begin listening.
func (e *Engine) Start() error {
	resp, err := e.cmd.SendCommand(Command{Cmd: CmdStart, Locale: e.locale})
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if !resp.OK {
		return fmt.Errorf("start: %s", resp.Error)
	}
	e.log.Debug("speech capture started", zap.String("session", resp.SessionID))
	return nil
}

// Stop asks the daemon to stop listening and release the microphone.
func (e *Engine) Stop() error {
	resp, err := e.cmd.SendCommand(Command{Cmd: CmdStop})
	if err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	if !resp.OK {
		return fmt.Errorf("stop: %s", resp.Error)
	}
	return nil
}

// Next blocks until the daemon emits an event the capture understands.
func (e *Engine) Next() (Event, error) {
	for {
		raw, err := e.events.ReadEvent()
		if err != nil {
			return Event{}, err
		}
		if ev, ok := Translate(raw); ok {
			return ev, nil
		}
	}
}

// Close shuts down both connections.
func (e *Engine) Close() error {
	return errors.Join(e.cmd.Close(), e.events.Close())
}
