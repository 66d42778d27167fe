package speech

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrClosed is returned when the daemon hangs up.
var ErrClosed = errors.New("speech daemon closed the connection")

const (
	dialTimeout = 2 * time.Second
	maxLineSize = 1 << 20
)

// DefaultSocketPath returns the default speech daemon socket path.
func DefaultSocketPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".nexa", "speech.sock")
}

// Client is one NDJSON connection to the speech daemon. A connection either
// carries commands or, once subscribed, the event stream.
type Client struct {
	conn  net.Conn
	lines *bufio.Scanner
	mu    sync.Mutex // one command in flight
}

// Connect dials the daemon Unix socket.
func Connect(socketPath string) (*Client, error) {
	conn, err := net.DialTimeout("unix", socketPath, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("connect to speech daemon: %w", err)
	}

	lines := bufio.NewScanner(conn)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &Client{conn: conn, lines: lines}, nil
}

// Close shuts down the connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// SendCommand writes cmd as one line and reads the one-line response.
func (c *Client) SendCommand(cmd Command) (Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := json.NewEncoder(c.conn).Encode(cmd); err != nil {
		return Response{}, fmt.Errorf("write %s: %w", cmd.Cmd, err)
	}

	var resp Response
	if err := c.readLine(&resp); err != nil {
		return Response{}, fmt.Errorf("%s response: %w", cmd.Cmd, err)
	}
	return resp, nil
}

// ReadEvent blocks for the next event. Only valid on a subscribed connection.
func (c *Client) ReadEvent() (DaemonEvent, error) {
	var ev DaemonEvent
	if err := c.readLine(&ev); err != nil {
		return DaemonEvent{}, fmt.Errorf("read event: %w", err)
	}
	return ev, nil
}

func (c *Client) readLine(out any) error {
	if !c.lines.Scan() {
		if err := c.lines.Err(); err != nil {
			return err
		}
		return ErrClosed
	}
	if err := json.Unmarshal(c.lines.Bytes(), out); err != nil {
		return fmt.Errorf("decode %q: %w", c.lines.Text(), err)
	}
	return nil
}
