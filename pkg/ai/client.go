package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/xkiven/ResumeBuilder/internal/model"
	"github.com/xkiven/ResumeBuilder/pkg/ai/formatters"
	"github.com/xkiven/ResumeBuilder/pkg/gitrepo"
)

var ErrNonJSON = errors.New("ai-service returned non-json content")

// Client calls the internal ai-service chat endpoint and decodes structured
// résumé data out of its replies.
type Client struct {
	BaseURL  string
	HTTP     *http.Client
	Language string
	Agent    string
	Attempts int

	resume  *formatters.ResumeFormatter
	project *formatters.ProjectFormatter
}

func NewClient(baseURL, language string) *Client {
	if baseURL == "" {
		baseURL = "http://ai-service:8000"
	}
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		HTTP:     &http.Client{Timeout: 60 * time.Second},
		Language: language,
		Agent:    "auto",
		Attempts: 3,
		resume:   formatters.NewResumeFormatter(language, model.SchemaBytes()),
		project:  formatters.NewProjectFormatter(language),
	}
}

// ParseResume turns free text into a document. The result is not sanitized.
func (c *Client) ParseResume(ctx context.Context, raw string) (model.Resume, error) {
	var doc model.Resume
	if err := c.chatJSON(ctx, c.resume.Prompt(raw), &doc); err != nil {
		return model.Resume{}, errors.Wrap(err, "parse resume")
	}
	return doc, nil
}

// AnalyzeRepository describes a repository as one project entry.
func (c *Client) AnalyzeRepository(ctx context.Context, snap gitrepo.Snapshot) (model.Project, error) {
	in := formatters.RepositoryInput{URL: snap.Info.URL(), README: snap.README}
	if md := snap.Metadata; md != nil {
		in.Name = md.Name
		in.Description = md.Description
		in.Language = md.Language
		in.Topics = md.Topics
	}
	var p model.Project
	if err := c.chatJSON(ctx, c.project.Prompt(in), &p); err != nil {
		return model.Project{}, errors.Wrap(err, "analyze repository")
	}
	if p.URL == "" {
		p.URL = in.URL
	}
	if p.Name == "" {
		p.Name = snap.Info.Repo
	}
	return p, nil
}

type chatRequest struct {
	Agent string `json:"agent"`
	Input string `json:"input"`
}

type chatResponse struct {
	Agent  string `json:"agent"`
	Output string `json:"output"`
}

func (c *Client) chatJSON(ctx context.Context, prompt string, out interface{}) error {
	output, err := c.chat(ctx, prompt)
	if err != nil {
		return err
	}
	obj, ok := extractJSON(output)
	if !ok {
		return ErrNonJSON
	}
	if err := json.Unmarshal([]byte(obj), out); err != nil {
		return errors.Wrap(ErrNonJSON, err.Error())
	}
	return nil
}

func (c *Client) chat(ctx context.Context, prompt string) (string, error) {
	b, err := json.Marshal(chatRequest{Agent: c.Agent, Input: prompt})
	if err != nil {
		return "", err
	}
	resp, err := c.doPostWithRetry(ctx, "/v1/chat", b)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	slog.Debug("ai.client: chat response", "status", resp.StatusCode, "bytes", len(respBytes))
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai-service returned non-200 status: %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(respBytes, &cr); err != nil {
		return "", errors.Wrap(err, "decode chat envelope")
	}
	return cr.Output, nil
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := c.Attempts
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		slog.Warn("ai.client: request failed", "attempt", i+1, "error", err)
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

// extractJSON returns the outermost object in s, tolerating prose or code
// fences around it.
func extractJSON(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if json.Valid([]byte(s)) && strings.HasPrefix(s, "{") {
		return s, true
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
