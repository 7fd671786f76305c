package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Multipliers for the recognized unit suffixes. No suffix means plain bytes.
var unitMultipliers = map[string]int64{
	"":  1,
	"k": 1024,
	"m": 1024 * 1024,
	"g": 1024 * 1024 * 1024,
}

// One run of digits and at most one unit letter are consumed; anything after
// that is ignored so specs like "20GB" still work.
var sizeSpecPattern = regexp.MustCompile(`^(\d+)([A-Za-z]?)`)

// A MalformedSizeSpecError reports a size spec we could not make sense of.
type MalformedSizeSpecError struct {
	Spec string
}

func (e *MalformedSizeSpecError) Error() string {
	return fmt.Sprintf("bad size spec: %q", e.Spec)
}

// ParseSizeSpec converts a human-readable size string like "20G" or "512k"
// into a byte count. The unit letter is case-insensitive and must be one of
// k, m, or g; a bare number is taken as bytes.
func ParseSizeSpec(spec string) (int64, error) {
	m := sizeSpecPattern.FindStringSubmatch(spec)
	if m == nil {
		return 0, &MalformedSizeSpecError{Spec: spec}
	}

	magnitude, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		// A digit run too long for an int64 lands here
		return 0, &MalformedSizeSpecError{Spec: spec}
	}

	multiplier, ok := unitMultipliers[strings.ToLower(m[2])]
	if !ok {
		return 0, &MalformedSizeSpecError{Spec: spec}
	}

	return magnitude * multiplier, nil
}
