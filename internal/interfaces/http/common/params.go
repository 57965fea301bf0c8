package common

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

// ParseIntParam parses an integer query parameter. An absent value yields
// the fallback; a present but unparsable value is a caller error.
func ParseIntParam(value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, eris.Wrapf(domain.ErrInvalidArgument, "param %q is not an integer", value)
	}
	return parsed, nil
}

// ParseFloatParam parses a float query parameter with the same absent /
// unparsable semantics as ParseIntParam.
func ParseFloatParam(value string, fallback float64) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, eris.Wrapf(domain.ErrInvalidArgument, "param %q is not a number", value)
	}
	return parsed, nil
}

// ParseBoolParam treats "true" (any case) as true and everything else,
// including absence, as false.
func ParseBoolParam(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}
