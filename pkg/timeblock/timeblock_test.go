package timeblock_test

import (
	"errors"
	"testing"
	"time"

	"task-scheduler/pkg/timeblock"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    timeblock.Clock
		wantErr bool
	}{
		{in: "09:00", want: 540},
		{in: "9:30", want: 570},
		{in: "00:00", want: 0},
		{in: "23:59", want: 23*60 + 59},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12:5", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := timeblock.ParseClock(tt.in)
			if tt.wantErr {
				if !errors.Is(err, timeblock.ErrInvalidClock) {
					t.Fatalf("ParseClock(%q) error = %v, want ErrInvalidClock", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestClockString(t *testing.T) {
	if got := timeblock.NewClock(9, 5).String(); got != "09:05" {
		t.Errorf("String() = %q, want 09:05", got)
	}
	// End times are not wrapped.
	if got := timeblock.NewClock(23, 30).Add(60).String(); got != "24:30" {
		t.Errorf("String() = %q, want 24:30", got)
	}
}

func TestCeilHalfHour(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"10:00", "10:30"},
		{"10:01", "10:30"},
		{"10:29", "10:30"},
		{"10:30", "11:00"},
		{"10:45", "11:00"},
	}
	for _, tt := range tests {
		got := timeblock.MustParseClock(tt.in).CeilHalfHour().String()
		if got != tt.want {
			t.Errorf("CeilHalfHour(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestIntervalOverlaps(t *testing.T) {
	base := timeblock.Interval{Date: "2024-06-01", Start: timeblock.MustParseClock("09:00"), Duration: 60}

	tests := []struct {
		name  string
		other timeblock.Interval
		want  bool
	}{
		{"same start", timeblock.Interval{Date: "2024-06-01", Start: timeblock.MustParseClock("09:00"), Duration: 30}, true},
		{"inside", timeblock.Interval{Date: "2024-06-01", Start: timeblock.MustParseClock("09:15"), Duration: 15}, true},
		{"straddles end", timeblock.Interval{Date: "2024-06-01", Start: timeblock.MustParseClock("09:30"), Duration: 60}, true},
		{"back to back after", timeblock.Interval{Date: "2024-06-01", Start: timeblock.MustParseClock("10:00"), Duration: 30}, false},
		{"back to back before", timeblock.Interval{Date: "2024-06-01", Start: timeblock.MustParseClock("08:30"), Duration: 30}, false},
		{"other date", timeblock.Interval{Date: "2024-06-02", Start: timeblock.MustParseClock("09:00"), Duration: 60}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("Overlaps() is not symmetric: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampDuration(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-30, 20},
		{0, 20},
		{19, 20},
		{20, 20},
		{75, 75},
		{120, 120},
		{500, 120},
	}
	for _, tt := range tests {
		if got := timeblock.ClampDuration(tt.in); got != tt.want {
			t.Errorf("ClampDuration(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		in   string
		want timeblock.Type
	}{
		{"06:59", timeblock.TypeUnscheduled},
		{"07:00", timeblock.TypeMorning},
		{"08:59", timeblock.TypeMorning},
		{"09:00", timeblock.TypeForenoon},
		{"11:30", timeblock.TypeForenoon},
		{"12:00", timeblock.TypeAfternoon},
		{"17:59", timeblock.TypeAfternoon},
		{"18:00", timeblock.TypeEvening},
		{"23:30", timeblock.TypeEvening},
		{"00:30", timeblock.TypeUnscheduled},
	}
	for _, tt := range tests {
		if got := timeblock.TypeOf(timeblock.MustParseClock(tt.in)); got != tt.want {
			t.Errorf("TypeOf(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	loc := time.UTC
	got, err := timeblock.ParseDate("2024-06-01", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if timeblock.FormatDate(got) != "2024-06-01" {
		t.Errorf("ParseDate() = %s, want 2024-06-01", got)
	}

	got, err = timeblock.ParseDate("2024-06-01T18:30:00Z", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 0 || timeblock.FormatDate(got) != "2024-06-01" {
		t.Errorf("ParseDate(RFC3339) = %s, want midnight 2024-06-01", got)
	}

	if _, err := timeblock.ParseDate("next week", loc); !errors.Is(err, timeblock.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}
