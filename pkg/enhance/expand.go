package enhance

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type category int

const (
	language category = iota
	framework
	datastore
	protocol
	tooling
)

var templates = map[category]string{
	language:  "familiar with using %s for development",
	framework: "experienced in building services with %s",
	datastore: "familiar with %s data modeling and query tuning",
	protocol:  "understands the %s protocol and its common use cases",
	tooling:   "uses %s in day-to-day engineering workflows",
}

// keywords maps a lower-cased term to its category.
var keywords = map[string]category{
	"go":         language,
	"golang":     language,
	"java":       language,
	"python":     language,
	"c":          language,
	"c++":        language,
	"rust":       language,
	"javascript": language,
	"typescript": language,
	"gin":        framework,
	"fiber":      framework,
	"echo":       framework,
	"grpc":       framework,
	"spring":     framework,
	"react":      framework,
	"vue":        framework,
	"mysql":      datastore,
	"postgresql": datastore,
	"postgres":   datastore,
	"redis":      datastore,
	"mongodb":    datastore,
	"kafka":      datastore,
	"http":       protocol,
	"tcp":        protocol,
	"websocket":  protocol,
	"docker":     tooling,
	"kubernetes": tooling,
	"git":        tooling,
	"linux":      tooling,
}

const maxBareTerm = 20

// Expand turns a bare skill keyword into a descriptive sentence. Known
// keywords use their category template; any other short single token becomes
// "familiar with X"; everything else is returned unchanged.
func Expand(term string) string {
	t := strings.TrimSpace(term)
	if t == "" {
		return term
	}
	if c, ok := keywords[strings.ToLower(t)]; ok {
		return fmt.Sprintf(templates[c], t)
	}
	if utf8.RuneCountInString(t) <= maxBareTerm && !strings.ContainsAny(t, " \t:：,，、") {
		return "familiar with " + t
	}
	return term
}
