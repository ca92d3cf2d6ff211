// Package duration parses retention ages such as "30d" for vacuum
// --older-than. Go's time.ParseDuration stops at hours, which is the
// wrong scale for how long to keep an audit trail.
package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalid is returned for strings that are not a count and a unit.
var ErrInvalid = errors.New("invalid duration")

const day = 24 * time.Hour

var (
	re    = regexp.MustCompile(`^(\d+)([hdwmy])$`)
	units = map[string]time.Duration{
		"h": time.Hour,
		"d": day,
		"w": 7 * day,
		"m": 30 * day,
		"y": 365 * day,
	}
)

// Parse parses Nh (hours), Nd (days), Nw (weeks), Nm (30-day months) or
// Ny (365-day years). Zero is allowed and means "everything".
func Parse(s string) (time.Duration, error) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q (use 12h, 7d, 4w, 3m or 1y)", ErrInvalid, s)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalid, s, err)
	}
	return time.Duration(n) * units[m[2]], nil
}
