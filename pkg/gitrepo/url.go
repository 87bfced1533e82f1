// Package gitrepo validates source-repository URLs and fetches the README and
// metadata used to describe a repository as a résumé project.
package gitrepo

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

var ErrInvalidURL = errors.New("invalid repository URL")

// Info identifies a repository, optionally pinned to a ref.
type Info struct {
	Host  string
	Owner string
	Repo  string
	Ref   string
}

var repoPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?([A-Za-z0-9.-]+)/([\w-]+)/([\w.-]+?)(?:\.git)?(?:/(?:tree|blob)/([\w.-]+)(?:/.*)?)?/?$`)

// Parse accepts host/owner/repo[/tree|blob/ref[/...]] with an optional
// http(s) scheme and www prefix. The host must end in a public suffix.
func Parse(raw string) (Info, error) {
	m := repoPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Info{}, ErrInvalidURL
	}
	host := strings.ToLower(m[1])
	if !validHost(host) {
		return Info{}, ErrInvalidURL
	}
	return Info{Host: host, Owner: m[2], Repo: m[3], Ref: m[4]}, nil
}

func validHost(host string) bool {
	if strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") || strings.Contains(host, "..") {
		return false
	}
	if _, err := publicsuffix.EffectiveTLDPlusOne(host); err != nil {
		return false
	}
	_, icann := publicsuffix.PublicSuffix(host)
	return icann
}

// Validate reports whether raw is an acceptable repository URL.
func Validate(raw string) error {
	_, err := Parse(raw)
	return err
}

// URL returns the canonical https URL of the repository.
func (i Info) URL() string {
	return "https://" + i.Host + "/" + i.Owner + "/" + i.Repo
}

func (i Info) IsGitHub() bool {
	return i.Host == "github.com"
}
