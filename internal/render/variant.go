package render

import (
	"errors"
	"fmt"
	"strings"
)

// Variant is one of the supported presentation layouts.
type Variant string

const (
	Classic Variant = "classic"
	Modern  Variant = "modern"
	Minimal Variant = "minimal"
)

var ErrUnknownVariant = errors.New("unknown template variant")

// Variants lists every supported layout in display order.
func Variants() []Variant {
	return []Variant{Classic, Modern, Minimal}
}

// ParseVariant maps a template id to a Variant. Unknown ids are an error.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := layouts[v]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
	return v, nil
}

func (v Variant) String() string { return string(v) }
