package particle

import (
	"fmt"
	"strconv"
	"strings"
)

// ContinuousDuration is the duration sentinel for emitters that never expire.
const ContinuousDuration = -1.0

// ParseRange parses a range value string.
// Supported formats:
//   - Fixed value: "1500" → min=1500, max=1500
//   - Range: "[0.7 0.9]" → min=0.7, max=0.9
//
// The order of min and max is not checked here; template validation reports
// inverted ranges with the field name attached.
func ParseRange(s string) (min, max float64, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, fmt.Errorf("empty range value")
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return 0, 0, fmt.Errorf("range %q is missing a closing bracket", s)
		}
		parts := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		if len(parts) != 2 {
			return 0, 0, fmt.Errorf("range %q must contain exactly two numbers", s)
		}
		min, err = strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("range %q: bad min: %w", s, err)
		}
		max, err = strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("range %q: bad max: %w", s, err)
		}
		return min, max, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("value %q is not a number or [min max] range: %w", s, err)
	}
	return v, v, nil
}

// ParseCurve parses a start/end curve string.
// Supported formats:
//   - Constant: ".5" → start=0.5, end=0.5
//   - Endpoints: "1 0" → start=1, end=0
func ParseCurve(s string) (start, end float64, err error) {
	parts := strings.Fields(s)
	switch len(parts) {
	case 1:
		v, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("curve %q: %w", s, err)
		}
		return v, v, nil
	case 2:
		start, err = strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("curve %q: bad start: %w", s, err)
		}
		end, err = strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("curve %q: bad end: %w", s, err)
		}
		return start, end, nil
	default:
		return 0, 0, fmt.Errorf("curve %q must be \"start end\" or a single value", s)
	}
}

// ParseDuration parses an emitter duration.
// "continuous", "infinite" and "-1" map to ContinuousDuration; an empty
// string means a one-shot emitter that finishes on its first update (0).
func ParseDuration(s string) (float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return 0, nil
	case "continuous", "infinite":
		return ContinuousDuration, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("duration %q is not a number or \"continuous\": %w", s, err)
	}
	return v, nil
}
