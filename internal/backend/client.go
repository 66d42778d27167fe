package backend

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"go.uber.org/zap"
)

// RequestIDHeader carries a per-request ID so client and server logs line up.
const RequestIDHeader = "X-Request-ID"

// Client talks to the question-answering service.
type Client struct {
	base *url.URL
	http *http.Client
	log  *zap.Logger
}

// New returns a Client for the service at baseURL.
func New(baseURL string, timeout time.Duration, log *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}
	return &Client{
		base: u,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}, nil
}

// Ask posts a question.
func (c *Client) Ask(ctx context.Context, question string) (AskResponse, error) {
	body, err := json.Marshal(AskRequest{Question: question})
	if err != nil {
		return AskResponse{}, fmt.Errorf("marshal question: %w", err)
	}
	var out AskResponse
	if err := c.do(ctx, http.MethodPost, "/ask", "application/json", bytes.NewReader(body), &out); err != nil {
		return AskResponse{}, err
	}
	return out, nil
}

// Upload sends a PDF as the multipart field "file".
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (UploadResponse, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(261) // filetype needs at most the first 261 bytes

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(filename)))
	h.Set("Content-Type", sniffContentType(head))

	part, err := mw.CreatePart(h)
	if err != nil {
		return UploadResponse{}, fmt.Errorf("create form part: %w", err)
	}
	if _, err := io.Copy(part, br); err != nil {
		return UploadResponse{}, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return UploadResponse{}, fmt.Errorf("close form: %w", err)
	}

	var out UploadResponse
	if err := c.do(ctx, http.MethodPost, "/upload", mw.FormDataContentType(), &buf, &out); err != nil {
		return UploadResponse{}, err
	}
	return out, nil
}

// Status fetches the current answering mode.
func (c *Client) Status(ctx context.Context) (StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, http.MethodGet, "/status", "", nil, &out); err != nil {
		return StatusResponse{}, err
	}
	return out, nil
}

// Clear drops uploaded documents and chat history on the server.
func (c *Client) Clear(ctx context.Context) (ClearResponse, error) {
	var out ClearResponse
	if err := c.do(ctx, http.MethodPost, "/clear", "", nil, &out); err != nil {
		return ClearResponse{}, err
	}
	return out, nil
}

// do sends one request and decodes the JSON body into out. The body is
// decoded whatever the HTTP status: the service reports application errors
// inside the payload.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	endpoint := c.base.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", reqID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response (HTTP %d): %w", path, resp.StatusCode, err)
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func sniffContentType(head []byte) string {
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return "application/octet-stream"
	}
	return kind.MIME.Value
}
