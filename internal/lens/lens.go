package lens

import (
	"errors"
	"fmt"
)

// Lens is one point on the four-point political spectrum used to select
// which content variant is shown to a visitor.
type Lens string

const (
	FarLeft  Lens = "far-left"
	MidLeft  Lens = "mid-left"
	MidRight Lens = "mid-right"
	FarRight Lens = "far-right"
)

// DefaultTheme is the sentinel theme tag attached to submissions that did not
// declare a lens.
const DefaultTheme = "default"

var (
	ErrUnknownLens = errors.New("lens not recognized")
	ErrNoVariant   = errors.New("no variant for lens")
)

// All returns the four recognized lenses in spectrum order.
func All() []Lens {
	return []Lens{FarLeft, MidLeft, MidRight, FarRight}
}

// Parse validates a wire token against the closed lens set. Matching is exact:
// no fuzzy matching and no synthesized default for unrecognized tokens.
func Parse(token string) (Lens, error) {
	switch l := Lens(token); l {
	case FarLeft, MidLeft, MidRight, FarRight:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLens, token)
}

// ParseTheme validates a submission theme tag: the four lens tokens plus the
// "default" sentinel. An empty token defaults to "default".
func ParseTheme(token string) (string, error) {
	if token == "" || token == DefaultTheme {
		return DefaultTheme, nil
	}
	l, err := Parse(token)
	if err != nil {
		return "", err
	}
	return string(l), nil
}

// Resolve selects the single variant for the active lens from an enum-keyed
// variant map. It returns ErrUnknownLens when the active token is outside the
// spectrum and ErrNoVariant when the item was authored without a variant for a
// recognized lens; it never substitutes another lens's variant.
func Resolve[V any](variants map[Lens]V, active Lens) (V, error) {
	var zero V
	if _, err := Parse(string(active)); err != nil {
		return zero, err
	}
	v, ok := variants[active]
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrNoVariant, active)
	}
	return v, nil
}
