// Package timefmt parses and compares the "H:MM AM/PM" clock strings used
// throughout the scheduling tables. Times are stored as display strings, so
// every comparison must go through minutes-since-midnight; comparing the raw
// strings lexicographically gives wrong answers ("10:00 AM" < "9:00 AM").
package timefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// Minutes converts a clock string like "7:30 AM" or "08:00 PM" to minutes
// since midnight. The hour may omit its leading zero.
func Minutes(s string) (int, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}

	period := strings.ToUpper(parts[1])
	if period != "AM" && period != "PM" {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}

	hm := strings.SplitN(parts[0], ":", 2)
	if len(hm) != 2 {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}

	if period == "PM" && hour < 12 {
		hour += 12
	} else if period == "AM" && hour == 12 {
		hour = 0
	}

	return hour*60 + minute, nil
}

// Format renders minutes since midnight back to "H:MM AM/PM".
func Format(min int) string {
	hour := min / 60
	minute := min % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", h12, minute, period)
}

// Overlap reports whether the half-open windows [s1,e1) and [s2,e2)
// intersect. Back-to-back windows, where one ends exactly when the other
// starts, do not overlap.
func Overlap(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}
