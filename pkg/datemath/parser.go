package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	daysLaterRe  = regexp.MustCompile(`^(\d+)天后$`)

	fixedOffsets = map[string]int{
		"today":     0,
		"tomorrow":  1,
		"yesterday": -1,
		"今天":        0,
		"明天":        1,
		"后天":        2,
		"昨天":        -1,
	}

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser resolves relative dates and time phrases in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for an IANA timezone, e.g. "Asia/Shanghai".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location { return p.location }

// Parse converts a relative date phrase to the start of that day.
// Unknown phrases resolve to the start of base's day.
func (p *Parser) Parse(relative string, base time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	if days, ok := fixedOffsets[relative]; ok {
		return p.StartOfDay(base.AddDate(0, 0, days)), nil
	}

	if m := daysLaterRe.FindStringSubmatch(relative); m != nil {
		n, _ := strconv.Atoi(m[1])
		return p.StartOfDay(base.AddDate(0, 0, n)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseIn(relative, base)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(strings.TrimPrefix(relative, "next "), base)
	}

	return p.StartOfDay(base), nil
}

// parseIn handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseIn(relative string, base time.Time) (time.Time, error) {
	m := inDurationRe.FindStringSubmatch(relative)
	if m == nil {
		return base, fmt.Errorf("invalid duration format: %q", relative)
	}

	n, _ := strconv.Atoi(m[1])
	switch unit := m[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(base.AddDate(0, 0, n)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(base.AddDate(0, 0, n*7)), nil
	default:
		return p.StartOfDay(base.AddDate(0, n, 0)), nil
	}
}

func (p *Parser) parseNextWeekday(name string, base time.Time) (time.Time, error) {
	target, ok := weekdays[name]
	if !ok {
		return base, fmt.Errorf("unknown weekday: %q", name)
	}

	days := int(target - base.In(p.location).Weekday())
	if days <= 0 {
		days += 7
	}
	return p.StartOfDay(base.AddDate(0, 0, days)), nil
}

// StartOfDay returns midnight of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 of the day that starts at startOfDay.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(24*time.Hour - time.Second)
}
