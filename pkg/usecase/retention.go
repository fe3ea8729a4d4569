package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// RetentionThresholdDays is the policy limit beyond which the retention
// trigger fires.
const RetentionThresholdDays = 30

var (
	dayPattern   = regexp.MustCompile(`(\d+)\s*(day|days|d)\b`)
	monthPattern = regexp.MustCompile(`(\d+)\s*(month|months|m)\b`)
	yearPattern  = regexp.MustCompile(`(\d+)\s*(year|years|y)\b`)
)

// ParseRetentionDays converts free-text retention such as "30 days", "45d",
// "6 months", "1 year" or a bare number into days. The second return value
// is false when the text cannot be parsed; the caller treats that as an
// uncertainty, never as a pass.
func ParseRetentionDays(retention string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(retention))
	if s == "" {
		return 0, false
	}

	if m := dayPattern.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, true
		}
	}
	if m := monthPattern.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n * 30, true
		}
	}
	if m := yearPattern.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n * 365, true
		}
	}

	// A bare number is treated as days
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n, true
	}

	return 0, false
}
