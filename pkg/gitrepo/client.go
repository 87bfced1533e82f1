package gitrepo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var ErrUnsupportedHost = errors.New("repository host not supported")

// Metadata is the subset of the GitHub repository object we use.
type Metadata struct {
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Topics      []string `json:"topics"`
	Stars       int      `json:"stargazers_count"`
	Forks       int      `json:"forks_count"`
}

// Snapshot is everything we could learn about a repository. README and
// Metadata are empty when the corresponding fetch failed.
type Snapshot struct {
	Info     Info
	README   string
	Metadata *Metadata
}

type Client struct {
	HTTP    *http.Client
	Token   string
	RawBase string
	APIBase string
}

func NewClient(token string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Token:   token,
		RawBase: "https://raw.githubusercontent.com",
		APIBase: "https://api.github.com",
	}
}

const maxREADME = 64 << 10

// Fetch loads README and metadata concurrently. Individual failures are
// logged and leave the corresponding field empty.
func (c *Client) Fetch(ctx context.Context, info Info) Snapshot {
	snap := Snapshot{Info: info}
	var eg errgroup.Group
	eg.Go(func() error {
		readme, err := c.FetchREADME(ctx, info)
		if err != nil {
			slog.Warn("gitrepo: README unavailable", "repo", info.URL(), "error", err)
			return nil
		}
		snap.README = readme
		return nil
	})
	eg.Go(func() error {
		md, err := c.FetchMetadata(ctx, info)
		if err != nil {
			slog.Warn("gitrepo: metadata unavailable", "repo", info.URL(), "error", err)
			return nil
		}
		snap.Metadata = md
		return nil
	})
	_ = eg.Wait()
	return snap
}

// FetchREADME tries raw README files across the common branches, then the
// contents API.
func (c *Client) FetchREADME(ctx context.Context, info Info) (string, error) {
	if !info.IsGitHub() {
		return "", ErrUnsupportedHost
	}
	branches := []string{"main", "master", "develop"}
	if info.Ref != "" {
		branches = unique(append([]string{info.Ref}, branches...))
	}
	var lastErr error
	for _, b := range branches {
		for _, name := range []string{"README.md", "readme.md", "Readme.md"} {
			u := fmt.Sprintf("%s/%s/%s/%s/%s", c.RawBase, info.Owner, info.Repo, b, name)
			body, err := c.get(ctx, u, "")
			if err == nil && strings.TrimSpace(body) != "" {
				return truncate(body), nil
			}
			lastErr = err
		}
	}
	body, err := c.readmeViaAPI(ctx, info)
	if err == nil {
		return truncate(body), nil
	}
	if lastErr == nil {
		lastErr = err
	}
	return "", errors.Wrapf(lastErr, "fetch README (branches %v)", branches)
}

func (c *Client) readmeViaAPI(ctx context.Context, info Info) (string, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/readme", c.APIBase, info.Owner, info.Repo)
	if info.Ref != "" {
		u += "?ref=" + info.Ref
	}
	body, err := c.get(ctx, u, "application/vnd.github.v3+json")
	if err != nil {
		return "", err
	}
	var resp struct {
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return "", errors.Wrap(err, "decode readme response")
	}
	if resp.Encoding != "base64" {
		return resp.Content, nil
	}
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, resp.Content)
	b, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return "", errors.Wrap(err, "decode readme content")
	}
	return string(b), nil
}

// FetchMetadata loads the repository object from the API.
func (c *Client) FetchMetadata(ctx context.Context, info Info) (*Metadata, error) {
	if !info.IsGitHub() {
		return nil, ErrUnsupportedHost
	}
	u := fmt.Sprintf("%s/repos/%s/%s", c.APIBase, info.Owner, info.Repo)
	body, err := c.get(ctx, u, "application/vnd.github.v3+json")
	if err != nil {
		return nil, err
	}
	var md Metadata
	if err := json.Unmarshal([]byte(body), &md); err != nil {
		return nil, errors.Wrap(err, "decode repository metadata")
	}
	return &md, nil
}

func (c *Client) get(ctx context.Context, url, accept string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "token "+c.Token)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, 4*maxREADME))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func truncate(s string) string {
	if len(s) <= maxREADME {
		return s
	}
	return s[:maxREADME]
}

func unique(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
