package scene

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSceneLoad is returned when the scene source is missing,
	// malformed, or is not a non-empty list of objects.
	// Nothing is drawn in that case.
	ErrSceneLoad = errors.New("failed to load array of objects")

	// ErrMissingField is returned in StrictPolicy, for an object
	// lacking a field required by its class.
	ErrMissingField = errors.New("missing field")
)

// FieldPolicy determines if a scene object lacking a field
// is drawn with default values, drawn with a warning, or
// aborts the rendering.
type FieldPolicy uint8

const (
	LenientPolicy FieldPolicy = iota // absent fields read as zero
	WarnPolicy                       // as LenientPolicy, logging a warning
	StrictPolicy                     // absent required fields are errors
)

func (p FieldPolicy) String() string {
	switch p {
	case LenientPolicy:
		return "lenient"
	case WarnPolicy:
		return "warn"
	case StrictPolicy:
		return "strict"
	default:
		return "<unknown FieldPolicy>"
	}
}

// ParseFieldPolicy accepts the names returned by FieldPolicy.String.
func ParseFieldPolicy(s string) (FieldPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lenient":
		return LenientPolicy, nil
	case "warn":
		return WarnPolicy, nil
	case "strict":
		return StrictPolicy, nil
	}
	return 0, fmt.Errorf("invalid field policy %q", s)
}

// check applies the policy to the object at `index`.
func (p FieldPolicy) check(index int, class Class, d Descriptor) error {
	if p == LenientPolicy {
		return nil
	}
	for _, field := range class.requiredFields() {
		if d.Has(field) {
			continue
		}
		if p == StrictPolicy {
			return fmt.Errorf("object [%d] (%s): %w %q", index, class, ErrMissingField, field)
		}
		Logger().Warn("missing field, using default", "index", index, "class", class.String(), "field", field)
	}
	return nil
}
