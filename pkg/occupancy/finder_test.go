package occupancy_test

import (
	"testing"
	"time"

	"task-scheduler/pkg/occupancy"
	"task-scheduler/pkg/timeblock"
)

func newFinder(now time.Time) *occupancy.Finder {
	cfg := occupancy.DefaultConfig()
	cfg.Location = time.UTC
	cfg.Now = func() time.Time { return now }
	return occupancy.NewFinder(cfg)
}

func clockPtr(s string) *timeblock.Clock {
	c := timeblock.MustParseClock(s)
	return &c
}

func TestFindSlotHonoursPreferredOnEmptyDay(t *testing.T) {
	f := newFinder(time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC))

	for h := 7; h < 22; h++ {
		for _, m := range []int{0, 15, 30, 45} {
			pref := timeblock.NewClock(h, m)
			got := f.FindSlot(occupancy.NewIndex(), &pref, 60, "2024-06-01")
			if got.Time != pref || got.Source != occupancy.SourcePreferred {
				t.Fatalf("FindSlot(%s) = %s via %s, want preferred", pref, got.Time, got.Source)
			}
		}
	}
}

func TestFindSlotMovesOffOccupiedPreferred(t *testing.T) {
	f := newFinder(time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC))
	idx := occupancy.NewIndex(timeblock.Interval{
		Date:     "2024-06-01",
		Start:    timeblock.MustParseClock("09:00"),
		Duration: 60,
	})

	got := f.FindSlot(idx, clockPtr("09:00"), 30, "2024-06-01")

	if got.Time >= timeblock.MustParseClock("09:00") && got.Time < timeblock.MustParseClock("10:00") {
		t.Fatalf("FindSlot() = %s, must not start inside [09:00,10:00)", got.Time)
	}
	// The grid starts at 07:00 on a future day.
	if got.Time.String() != "07:00" || got.Source != occupancy.SourceGrid {
		t.Errorf("FindSlot() = %s via %s, want 07:00 via grid", got.Time, got.Source)
	}
}

func TestFindSlotDefaults(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		occupied []string
		want     string
		source   occupancy.Source
	}{
		{
			name: "first default on another day",
			now:  time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC),
			want: "09:30", source: occupancy.SourceDefault,
		},
		{
			name:     "skips occupied default",
			now:      time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC),
			occupied: []string{"09:30"},
			want:     "14:00", source: occupancy.SourceDefault,
		},
		{
			name: "skips past defaults today",
			now:  time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
			want: "14:00", source: occupancy.SourceDefault,
		},
		{
			name:     "grid after now when defaults are gone",
			now:      time.Date(2024, 6, 1, 10, 10, 0, 0, time.UTC),
			occupied: []string{"14:00", "19:00"},
			want:     "10:30", source: occupancy.SourceGrid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := occupancy.NewIndex()
			for _, s := range tt.occupied {
				idx.Add(timeblock.Interval{Date: "2024-06-01", Start: timeblock.MustParseClock(s), Duration: 60})
			}
			got := newFinder(tt.now).FindSlot(idx, nil, 60, "2024-06-01")
			if got.Time.String() != tt.want || got.Source != tt.source {
				t.Errorf("FindSlot() = %s via %s, want %s via %s", got.Time, got.Source, tt.want, tt.source)
			}
		})
	}
}

func TestFindSlotDropsPastPreferredToday(t *testing.T) {
	f := newFinder(time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC))

	got := f.FindSlot(occupancy.NewIndex(), clockPtr("09:00"), 30, "2024-06-01")

	if !got.PreferredDropped {
		t.Error("PreferredDropped = false, want true")
	}
	if got.Time.String() != "19:00" {
		t.Errorf("FindSlot() = %s, want 19:00", got.Time)
	}
}

func TestFindSlotLateEveningFallsBackToday(t *testing.T) {
	f := newFinder(time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC))

	for _, pref := range []*timeblock.Clock{nil, clockPtr("10:00")} {
		got := f.FindSlot(occupancy.NewIndex(), pref, 15, "2024-06-01")
		if got.Time.String() != "21:00" || !got.Fallback || got.Source != occupancy.SourceFallback {
			t.Errorf("FindSlot() = %+v, want the 21:00 fallback flagged", got)
		}
	}
}

func TestFindSlotSaturatedDay(t *testing.T) {
	f := newFinder(time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC))
	idx := occupancy.NewIndex()
	for t0 := timeblock.NewClock(7, 0); t0 < timeblock.NewClock(22, 0); t0 = t0.Add(30) {
		idx.Add(timeblock.Interval{Date: "2024-06-01", Start: t0, Duration: 30})
	}
	if idx.Len() != 30 {
		t.Fatalf("expected 30 occupied slots, got %d", idx.Len())
	}

	for _, pref := range []*timeblock.Clock{nil, clockPtr("10:00")} {
		got := f.FindSlot(idx, pref, 30, "2024-06-01")
		if got.Time.String() != "21:00" || !got.Fallback || got.Source != occupancy.SourceFallback {
			t.Errorf("FindSlot() = %+v, want 21:00 fallback", got)
		}
	}
}

func TestFindInWindow(t *testing.T) {
	f := newFinder(time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC))
	idx := occupancy.NewIndex(timeblock.Interval{
		Date:     "2024-06-01",
		Start:    timeblock.MustParseClock("13:00"),
		Duration: 90,
	})

	got := f.FindInWindow(idx, timeblock.MustParseClock("13:00"), timeblock.MustParseClock("18:00"), 60, "2024-06-01")
	if got.Time.String() != "14:30" || got.Fallback {
		t.Errorf("FindInWindow() = %+v, want 14:30", got)
	}

	got = f.FindInWindow(idx, timeblock.MustParseClock("13:00"), timeblock.MustParseClock("14:00"), 60, "2024-06-01")
	if got.Time.String() != "13:00" || !got.Fallback {
		t.Errorf("FindInWindow() = %+v, want 13:00 fallback", got)
	}
}
