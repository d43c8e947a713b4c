package tzdb

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatOffset renders a UTC offset in seconds as a signed
// "±HH:MM" string, extended to "±HH:MM:SS" when the offset is not a
// whole number of minutes.
func FormatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	if s != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}

// ParseOffset reads a UTC offset: "±HH:MM", "±HH:MM:SS", "±HHMM",
// "±HH", or a number of seconds such as "18000". A four-digit number
// reads as HHMM when it is plausible as one (minutes below 60, hours
// at most 26), otherwise as seconds.
func ParseOffset(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty offset")
	}

	sign := 1
	rest := s
	switch s[0] {
	case '+':
		rest = s[1:]
	case '-':
		sign = -1
		rest = s[1:]
	}
	if rest == "" {
		return 0, fmt.Errorf("invalid offset %q", s)
	}

	if strings.Contains(rest, ":") {
		parts := strings.Split(rest, ":")
		if len(parts) > 3 {
			return 0, fmt.Errorf("invalid offset %q", s)
		}
		mult := []int{3600, 60, 1}
		var sec int
		for i, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil || n < 0 {
				return 0, fmt.Errorf("invalid offset %q", s)
			}
			sec += n * mult[i]
		}
		return sign * sec, nil
	}

	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid offset %q", s)
	}
	switch len(rest) {
	case 1, 2:
		// One or two digits read as hours: "5" means +05:00.
		return sign * n * 3600, nil
	case 4:
		if h, m := n/100, n%100; m < 60 && h <= 26 {
			return sign * (h*3600 + m*60), nil
		}
	}
	return sign * n, nil
}
