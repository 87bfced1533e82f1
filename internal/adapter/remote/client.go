// Package remote talks to a résumé service over its HTTP API so an editing
// session can run against a separately deployed store.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/xkiven/ResumeBuilder/internal/domain"
	"github.com/xkiven/ResumeBuilder/internal/model"
	"github.com/xkiven/ResumeBuilder/internal/usecase"
)

type Client struct {
	BaseURL  string
	HTTP     *http.Client
	Attempts int
}

var (
	_ usecase.ResumeStore = (*Client)(nil)
	_ usecase.Generator   = (*Client)(nil)
)

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		HTTP:     &http.Client{Timeout: 120 * time.Second},
		Attempts: 3,
	}
}

func resumePath(userID string, rest ...string) string {
	return "/api/resume/" + url.PathEscape(userID) + strings.Join(rest, "")
}

func (c *Client) Get(ctx context.Context, userID string) (model.Resume, error) {
	var doc model.Resume
	err := c.do(ctx, http.MethodGet, resumePath(userID), nil, &doc, true)
	return doc, err
}

func (c *Client) Save(ctx context.Context, doc model.Resume) error {
	return c.do(ctx, http.MethodPost, "/api/resume", doc, nil, true)
}

func (c *Client) Generate(ctx context.Context, userID, raw string) (model.Resume, error) {
	var doc model.Resume
	err := c.do(ctx, http.MethodPost, resumePath(userID, "/generate"), map[string]string{"raw": raw}, &doc, false)
	return doc, err
}

func (c *Client) GenerateFromRepository(ctx context.Context, userID, repoURL string) (model.Resume, error) {
	var doc model.Resume
	err := c.do(ctx, http.MethodPost, resumePath(userID, "/generate/github"), map[string]string{"repo_url": repoURL}, &doc, false)
	return doc, err
}

type errorBody struct {
	Error string `json:"error"`
}

// do sends one request and maps the outcome onto the domain error types.
// Only transport failures are retried, and only when retry is set.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}, retry bool) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = b
	}
	attempts := 1
	if retry && c.Attempts > 1 {
		attempts = c.Attempts
	}

	resp, err := c.send(ctx, method, path, body, attempts)
	if err != nil {
		return &domain.RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.ParseError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(respBytes, &eb)
		if method == http.MethodGet && resp.StatusCode == http.StatusNotFound {
			return errors.Wrapf(domain.ErrNotFound, "GET %s", path)
		}
		return &domain.RequestError{Status: resp.StatusCode, Message: eb.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return &domain.ParseError{Err: err}
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body []byte, attempts int) (*http.Response, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		var rd io.Reader
		if body != nil {
			rd = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
		if err != nil {
			return nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		slog.Warn("remote.client: request failed", "method", method, "path", path, "attempt", i+1, "error", err)
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * 100 * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, errors.Wrapf(lastErr, "%s %s", method, path)
}
