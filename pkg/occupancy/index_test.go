package occupancy_test

import (
	"testing"

	"task-scheduler/pkg/occupancy"
	"task-scheduler/pkg/timeblock"
)

func TestIndexIsOccupied(t *testing.T) {
	idx := occupancy.NewIndex(timeblock.Interval{
		Date:     "2024-06-01",
		Start:    timeblock.MustParseClock("09:00"),
		Duration: 60,
		Label:    "standup",
	})

	tests := []struct {
		name     string
		date     string
		start    string
		duration int
		want     bool
	}{
		{"same start", "2024-06-01", "09:00", 30, true},
		{"ends inside", "2024-06-01", "08:45", 30, true},
		{"ends exactly at start", "2024-06-01", "08:30", 30, false},
		{"starts exactly at end", "2024-06-01", "10:00", 30, false},
		{"other date", "2024-06-02", "09:00", 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.IsOccupied(tt.date, timeblock.MustParseClock(tt.start), tt.duration)
			if got != tt.want {
				t.Errorf("IsOccupied(%s %s +%d) = %v, want %v", tt.date, tt.start, tt.duration, got, tt.want)
			}
		})
	}
}

func TestIndexAdd(t *testing.T) {
	idx := occupancy.NewIndex()
	idx.Add(timeblock.Interval{Date: "2024-06-01", Start: timeblock.MustParseClock("14:00"), Duration: 30})
	idx.Add(timeblock.Interval{Date: "2024-06-01", Start: timeblock.MustParseClock("09:00"), Duration: 30})
	idx.Add(timeblock.Interval{Date: "2024-06-01", Start: timeblock.MustParseClock("10:00"), Duration: 0})
	idx.Add(timeblock.Interval{Date: "", Start: timeblock.MustParseClock("10:00"), Duration: 30})

	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}

	day := idx.On("2024-06-01")
	if len(day) != 2 || day[0].Start.String() != "09:00" || day[1].Start.String() != "14:00" {
		t.Errorf("On() = %v, want 09:00 then 14:00", day)
	}

	day[0].Start = 0
	if idx.On("2024-06-01")[0].Start.String() != "09:00" {
		t.Error("On() must return a copy")
	}
}
