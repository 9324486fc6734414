package gcalendar_test

import (
	"testing"
	"time"

	"task-scheduler/pkg/gcalendar"
)

func TestBusyIntervals(t *testing.T) {
	at := func(s string) time.Time {
		v, _ := time.Parse(time.RFC3339, s)
		return v
	}

	events := []gcalendar.Event{
		{Summary: "standup", StartTime: at("2024-06-01T09:00:00Z"), EndTime: at("2024-06-01T09:30:00Z")},
		{Summary: "holiday", AllDay: true, StartTime: at("2024-06-02T00:00:00Z"), EndTime: at("2024-06-03T00:00:00Z")},
		{Summary: "free", Transparent: true, StartTime: at("2024-06-01T12:00:00Z"), EndTime: at("2024-06-01T13:00:00Z")},
		{Summary: "flight", StartTime: at("2024-06-01T23:00:00Z"), EndTime: at("2024-06-02T01:30:00Z")},
		{Summary: "broken", StartTime: at("2024-06-01T15:00:00Z"), EndTime: at("2024-06-01T14:00:00Z")},
	}

	got := gcalendar.BusyIntervals(events, time.UTC)

	want := []struct {
		date, start string
		duration    int
	}{
		{"2024-06-01", "09:00", 30},
		{"2024-06-01", "23:00", 60},
		{"2024-06-02", "00:00", 90},
	}
	if len(got) != len(want) {
		t.Fatalf("BusyIntervals() returned %d intervals, want %d: %v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Date != w.date || got[i].Start.String() != w.start || got[i].Duration != w.duration {
			t.Errorf("interval %d = %s %s +%d, want %s %s +%d", i, got[i].Date, got[i].Start, got[i].Duration, w.date, w.start, w.duration)
		}
	}
}
