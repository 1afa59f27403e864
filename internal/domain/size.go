package domain

import (
	"fmt"
	"strings"
)

// Coarse parcel size category used as a price multiplier.
type SizeClass string

const (
	SizeS SizeClass = "S"
	SizeM SizeClass = "M"
	SizeL SizeClass = "L"
)

// ParseSizeClass accepts the three size codes case-insensitively.
// An empty string defaults to M, matching form behavior upstream.
func ParseSizeClass(s string) (SizeClass, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return SizeM, nil
	case "S":
		return SizeS, nil
	case "M":
		return SizeM, nil
	case "L":
		return SizeL, nil
	default:
		return "", fmt.Errorf("%w: unknown size class %q", ErrInvalidInput, s)
	}
}
