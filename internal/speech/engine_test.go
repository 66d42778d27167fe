package speech

import (
	"bufio"
	"encoding/json"
	"errors"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

// mockDaemon answers every command on every connection and, on a subscribed
// connection, streams the configured events after the subscribe response.
type mockDaemon struct {
	t        *testing.T
	sockPath string
	ln       net.Listener
	events   []DaemonEvent
	startErr string

	mu        sync.Mutex
	commands  []Command
	statusErr string
}

func newMockDaemon(t *testing.T, events []DaemonEvent) *mockDaemon {
	t.Helper()

	sockPath := filepath.Join(t.TempDir(), "speech.sock")
	ln, err := net.Listen("unix", sockPath)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	d := &mockDaemon{t: t, sockPath: sockPath, ln: ln, events: events}
	go d.serve()
	t.Cleanup(func() { ln.Close() })
	return d
}

func (d *mockDaemon) serve() {
	for {
		conn, err := d.ln.Accept()
		if err != nil {
			return
		}
		go d.handle(conn)
	}
}

func (d *mockDaemon) handle(conn net.Conn) {
	defer conn.Close()
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var cmd Command
		if err := json.Unmarshal(scanner.Bytes(), &cmd); err != nil {
			return
		}
		d.mu.Lock()
		d.commands = append(d.commands, cmd)
		statusErr := d.statusErr
		d.mu.Unlock()

		resp := Response{OK: true}
		switch {
		case cmd.Cmd == CmdStart && d.startErr != "":
			resp = Response{OK: false, Error: d.startErr}
		case cmd.Cmd == CmdStatus && statusErr != "":
			resp = Response{OK: false, Error: statusErr}
		case cmd.Cmd == CmdStatus:
			resp.Status = "idle"
		}
		data, _ := json.Marshal(resp)
		conn.Write(append(data, '\n'))

		if cmd.Cmd == CmdSubscribe {
			for _, ev := range d.events {
				data, _ := json.Marshal(ev)
				conn.Write(append(data, '\n'))
			}
		}
	}
}

func (d *mockDaemon) received(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, c := range d.commands {
		if c.Cmd == name {
			n++
		}
	}
	return n
}

func (d *mockDaemon) lastLocale() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := len(d.commands) - 1; i >= 0; i-- {
		if d.commands[i].Cmd == CmdStart {
			return d.commands[i].Locale
		}
	}
	return ""
}

func TestDialUnsupported(t *testing.T) {
	_, err := Dial(filepath.Join(t.TempDir(), "missing.sock"), "en-US", zap.NewNop())
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}

func TestDialRefusedStatus(t *testing.T) {
	d := newMockDaemon(t, nil)
	d.mu.Lock()
	d.statusErr = "shutting down"
	d.mu.Unlock()

	_, err := Dial(d.sockPath, "en-US", zap.NewNop())
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
	if got := d.received(CmdSubscribe); got != 0 {
		t.Errorf("subscribe commands = %d, want 0", got)
	}
}

func TestDialSilentSocket(t *testing.T) {
	sockPath := filepath.Join(t.TempDir(), "speech.sock")
	ln, err := net.Listen("unix", sockPath)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	// Accept and hold the connection without ever replying.
	done := make(chan struct{})
	defer close(done)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		<-done
		conn.Close()
	}()

	if _, err := Dial(sockPath, "en-US", zap.NewNop()); !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}

func TestEngineStartStop(t *testing.T) {
	d := newMockDaemon(t, nil)

	eng, err := Dial(d.sockPath, "en-US", zap.NewNop())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer eng.Close()

	if err := eng.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := eng.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}

	if got := d.received(CmdStatus); got != 1 {
		t.Errorf("status commands = %d, want 1", got)
	}
	if got := d.received(CmdSubscribe); got != 1 {
		t.Errorf("subscribe commands = %d, want 1", got)
	}
	if got := d.received(CmdStart); got != 1 {
		t.Errorf("start commands = %d, want 1", got)
	}
	if got := d.received(CmdStop); got != 1 {
		t.Errorf("stop commands = %d, want 1", got)
	}
	if got := d.lastLocale(); got != "en-US" {
		t.Errorf("locale = %q, want %q", got, "en-US")
	}
}

func TestEngineStartRefused(t *testing.T) {
	d := newMockDaemon(t, nil)
	d.startErr = "Microphone permission denied"

	eng, err := Dial(d.sockPath, "en-US", zap.NewNop())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer eng.Close()

	if err := eng.Start(); err == nil {
		t.Error("expected start error when the daemon refuses")
	}
}

func TestEngineNextSkipsUnknownEvents(t *testing.T) {
	recording := true
	d := newMockDaemon(t, []DaemonEvent{
		{Event: "level"},
		{Event: EvStatus, Recording: &recording},
		{Event: "topics", Text: "ignored"},
		{Event: EvSegment, Text: "Hello there."},
	})

	eng, err := Dial(d.sockPath, "en-US", zap.NewNop())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer eng.Close()

	done := make(chan struct{})
	var got []Event
	go func() {
		defer close(done)
		for i := 0; i < 2; i++ {
			ev, err := eng.Next()
			if err != nil {
				return
			}
			got = append(got, ev)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events")
	}

	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
	if got[0].Kind != Started {
		t.Errorf("event[0] = %+v, want started", got[0])
	}
	if got[1].Kind != Result || !got[1].Final || got[1].Text != "Hello there." {
		t.Errorf("event[1] = %+v", got[1])
	}
}
