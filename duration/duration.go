// Package duration parses and formats human-written job durations.
//
// Accepted forms, all case-insensitive:
//
//	90          bare number of minutes
//	90m, 45min  minutes
//	1h30m       compact hours and minutes
//	2h 15m      spaced components, also "2 hrs 15 mins"
//	1.5h        fractional hours, rounded to the nearest minute
//	1:30        hours:minutes
package duration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ErrInvalidDuration is returned for strings that are not a positive duration.
var ErrInvalidDuration = errors.New("invalid duration")

// unitAliases maps accepted unit words to time.ParseDuration units.
var unitAliases = map[string]string{
	"h":       "h",
	"hr":      "h",
	"hrs":     "h",
	"hour":    "h",
	"hours":   "h",
	"m":       "m",
	"min":     "m",
	"mins":    "m",
	"minute":  "m",
	"minutes": "m",
}

// Parse converts a duration string into whole minutes.
//
// Parameters:
//   - s: Duration text (see package documentation for accepted forms)
//
// Returns:
//   - int: Minutes, rounded half up, always >= 1
//   - error: ErrInvalidDuration (wrapped) for empty, malformed or non-positive input
func Parse(s string) (int, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	if text == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}

	var minutes int
	var err error

	switch {
	case isDigits(text):
		minutes, err = strconv.Atoi(text)
	case strings.Contains(text, ":"):
		minutes, err = parseClock(text)
	default:
		minutes, err = parseUnits(text)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidDuration, s, err)
	}

	if minutes <= 0 {
		return 0, fmt.Errorf("%w: %q is not positive", ErrInvalidDuration, s)
	}

	return minutes, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(s string) int {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return m
}

// Format renders minutes as "1h 30m", "2h" or "45m".
func Format(minutes int) string {
	if minutes < 0 {
		return "-" + Format(-minutes)
	}

	h, m := minutes/60, minutes%60

	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// parseClock handles "h:mm".
func parseClock(text string) (int, error) {
	hh, mm, _ := strings.Cut(text, ":")

	hours, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("bad hours %q", hh)
	}

	mins, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("bad minutes %q", mm)
	}

	return hours*60 + mins, nil
}

// parseUnits rewrites "2 hrs 15 mins" as "2h15m" and hands it to time.ParseDuration.
func parseUnits(text string) (int, error) {
	var b strings.Builder

	rest := text
	for rest != "" {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			break
		}

		n := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsDigit(r) && r != '.' })
		if n == 0 {
			return 0, fmt.Errorf("expected a number at %q", rest)
		}
		if n < 0 {
			return 0, fmt.Errorf("missing unit after %q", rest)
		}
		number := rest[:n]
		rest = strings.TrimLeftFunc(rest[n:], unicode.IsSpace)

		u := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsLetter(r) })
		if u < 0 {
			u = len(rest)
		}
		unit, ok := unitAliases[rest[:u]]
		if !ok {
			return 0, fmt.Errorf("unknown unit %q", rest[:u])
		}
		rest = rest[u:]

		b.WriteString(number)
		b.WriteString(unit)
	}

	d, err := time.ParseDuration(b.String())
	if err != nil {
		return 0, err
	}

	return int(d.Round(time.Minute) / time.Minute), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
