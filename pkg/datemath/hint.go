package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"task-scheduler/pkg/timeblock"
)

var (
	colonTimeRe = regexp.MustCompile(`(\d{1,2})[:：](\d{2})`)
	pointTimeRe = regexp.MustCompile(`(早上|上午|中午|下午|晚上)?(\d{1,2})点(?:(\d{1,2})分?|(半))?`)
	nDaysLateRe = regexp.MustCompile(`(\d+)天后`)
	inNDaysRe   = regexp.MustCompile(`in (\d+) days?`)
	nextDayRe   = regexp.MustCompile(`next (monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)

	// Checked in order; the first contained word wins.
	dateWords = []struct {
		word string
		days int
	}{
		{"今天", 0},
		{"明天", 1},
		{"后天", 2},
		{"day after tomorrow", 2},
		{"today", 0},
		{"tomorrow", 1},
	}

	// Checked in order; longer English words come before their substrings.
	periods = []period{
		{"早上", timeblock.TypeMorning, Window{timeblock.NewClock(7, 0), timeblock.NewClock(9, 0)}},
		{"上午", timeblock.TypeForenoon, Window{timeblock.NewClock(9, 0), timeblock.NewClock(12, 0)}},
		{"中午", timeblock.TypeAfternoon, Window{timeblock.NewClock(12, 0), timeblock.NewClock(13, 0)}},
		{"下午", timeblock.TypeAfternoon, Window{timeblock.NewClock(13, 0), timeblock.NewClock(18, 0)}},
		{"晚上", timeblock.TypeEvening, Window{timeblock.NewClock(18, 0), timeblock.NewClock(22, 0)}},
		{"夜里", timeblock.TypeEvening, Window{timeblock.NewClock(22, 0), timeblock.NewClock(24, 0)}},
		{"forenoon", timeblock.TypeForenoon, Window{timeblock.NewClock(9, 0), timeblock.NewClock(12, 0)}},
		{"afternoon", timeblock.TypeAfternoon, Window{timeblock.NewClock(13, 0), timeblock.NewClock(18, 0)}},
		{"morning", timeblock.TypeMorning, Window{timeblock.NewClock(7, 0), timeblock.NewClock(9, 0)}},
		{"noon", timeblock.TypeAfternoon, Window{timeblock.NewClock(12, 0), timeblock.NewClock(13, 0)}},
		{"evening", timeblock.TypeEvening, Window{timeblock.NewClock(18, 0), timeblock.NewClock(22, 0)}},
		{"night", timeblock.TypeEvening, Window{timeblock.NewClock(22, 0), timeblock.NewClock(24, 0)}},
	}
)

// ParseHint extracts a date and an optional time or period from text.
// Recognition order: "HH:MM", "<period>N点[M分]", then bare period words.
// The date defaults to now's day.
func (p *Parser) ParseHint(text string, now time.Time) TimeHint {
	lower := strings.ToLower(text)

	hint := TimeHint{
		Kind: HintNone,
		Date: p.hintDate(lower, now),
	}

	if c, ok := specificTime(lower); ok {
		hint.Kind = HintSpecific
		hint.Time = c
		hint.Block = timeblock.TypeOf(c)
		hint.Confidence = ConfidenceSpecific
		return hint
	}

	if pr, ok := namedPeriod(lower); ok {
		hint.Kind = HintPeriod
		hint.Time = pr.window.Start
		hint.Period = pr.word
		hint.Block = pr.block
		hint.Window = pr.window
		hint.Confidence = ConfidencePeriod
	}

	return hint
}

// PeriodWindow looks up the window of a named period word.
func PeriodWindow(word string) (Window, bool) {
	pr, ok := namedPeriod(strings.ToLower(word))
	return pr.window, ok
}

func (p *Parser) hintDate(text string, now time.Time) time.Time {
	for _, w := range dateWords {
		if strings.Contains(text, w.word) {
			return p.StartOfDay(now.AddDate(0, 0, w.days))
		}
	}
	if m := nDaysLateRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return p.StartOfDay(now.AddDate(0, 0, n))
		}
	}
	if m := inNDaysRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return p.StartOfDay(now.AddDate(0, 0, n))
		}
	}
	if m := nextDayRe.FindStringSubmatch(text); m != nil {
		if t, err := p.parseNextWeekday(m[1], now); err == nil {
			return t
		}
	}
	return p.StartOfDay(now)
}

// specificTime returns the first valid explicit time. Out-of-range
// captures are skipped so the next pattern class gets a chance.
func specificTime(text string) (timeblock.Clock, bool) {
	for _, m := range colonTimeRe.FindAllStringSubmatch(text, -1) {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if validHM(h, min) {
			return timeblock.NewClock(h, min), true
		}
	}

	for _, m := range pointTimeRe.FindAllStringSubmatch(text, -1) {
		h, _ := strconv.Atoi(m[2])
		min := 0
		switch {
		case m[3] != "":
			min, _ = strconv.Atoi(m[3])
		case m[4] != "":
			min = 30
		}

		switch m[1] {
		case "下午", "晚上":
			if h < 12 {
				h += 12
			}
		case "上午", "早上":
			if h == 12 {
				h = 0
			}
		}

		if validHM(h, min) {
			return timeblock.NewClock(h, min), true
		}
	}

	return 0, false
}

func namedPeriod(text string) (period, bool) {
	for _, pr := range periods {
		if strings.Contains(text, pr.word) {
			return pr, true
		}
	}
	return period{}, false
}

func validHM(h, m int) bool {
	return h >= 0 && h <= 23 && m >= 0 && m <= 59
}
