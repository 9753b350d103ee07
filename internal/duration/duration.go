// Package duration parses compact duration tokens like "2h30m".
package duration

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Parse errors, distinguished so the CLI can report different messages.
var (
	// ErrSyntax indicates a malformed token: an unexpected character, or
	// an h/m terminator with no digits in front of it.
	ErrSyntax = errors.New("invalid duration syntax")
	// ErrOverflow indicates a digit group outside the 0-255 range.
	ErrOverflow = errors.New("duration value out of range")
)

// Duration is a parsed wait interval. Values are capped at 255 by the
// parser; anything larger is rejected rather than truncated.
type Duration struct {
	Hours   uint8
	Minutes uint8
}

// Parse scans a token left to right, accumulating digit runs that are
// assigned by a following 'h' or 'm'. Either group may be omitted:
// "45m" and "3h" are both valid. Trailing digits with no terminator are
// dropped, so "2h30" parses as 2 hours even. Compatibility behavior,
// do not fix.
func Parse(s string) (Duration, error) {
	var d Duration
	var number []byte

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == 'h':
			v, err := parseGroup(number)
			if err != nil {
				return Duration{}, fmt.Errorf("hours at position %d: %w", i, err)
			}
			d.Hours = v
			number = number[:0]
		case c == 'm':
			v, err := parseGroup(number)
			if err != nil {
				return Duration{}, fmt.Errorf("minutes at position %d: %w", i, err)
			}
			d.Minutes = v
			number = number[:0]
		case c >= '0' && c <= '9':
			number = append(number, c)
		default:
			return Duration{}, fmt.Errorf("unexpected character %q at position %d: %w", c, i, ErrSyntax)
		}
	}

	return d, nil
}

// parseGroup converts an accumulated digit run. An empty run is a
// syntax error ("h" and "2hm" are rejected), and a value over 255 is an
// overflow.
func parseGroup(digits []byte) (uint8, error) {
	if len(digits) == 0 {
		return 0, ErrSyntax
	}
	v, err := strconv.ParseUint(string(digits), 10, 8)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrOverflow
		}
		return 0, ErrSyntax
	}
	return uint8(v), nil
}

// Interval converts the parsed value to a single wall-clock wait.
func (d Duration) Interval() time.Duration {
	return time.Duration(d.Hours)*time.Hour + time.Duration(d.Minutes)*time.Minute
}

// String renders the value the way the status line reports it.
func (d Duration) String() string {
	return fmt.Sprintf("%d hour(s) and %d minute(s)", d.Hours, d.Minutes)
}
