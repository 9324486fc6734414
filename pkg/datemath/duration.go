package datemath

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"task-scheduler/pkg/timeblock"
)

var (
	durationRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:个)?\s*(小时|分钟|(?:hours?|hrs?|h|minutes?|mins?)\b)`)
	halfHourRe = regexp.MustCompile(`半(?:个)?小时`)
)

// ExtractDuration returns the duration in minutes mentioned in text,
// or timeblock.DefaultDuration when there is none.
func ExtractDuration(text string) int {
	if d, ok := FindDuration(text); ok {
		return d
	}
	return timeblock.DefaultDuration
}

// FindDuration is ExtractDuration that also reports whether a duration was found.
// "1.5小时" is 90, "30分钟" is 30, "2h" is 120.
func FindDuration(text string) (int, bool) {
	lower := strings.ToLower(text)

	if m := durationRe.FindStringSubmatch(lower); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			if isHourUnit(m[2]) {
				return int(math.Round(n * 60)), true
			}
			return int(math.Round(n)), true
		}
	}

	if halfHourRe.MatchString(lower) {
		return 30, true
	}

	return 0, false
}

func isHourUnit(unit string) bool {
	return unit == "小时" || strings.HasPrefix(unit, "h")
}
