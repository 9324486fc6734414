package usecase

import (
	"strings"
	"testing"

	"task-scheduler/internal/model"
	"task-scheduler/internal/schedule"
	"task-scheduler/pkg/occupancy"
	"task-scheduler/pkg/timeblock"
)

func TestScheduleOne(t *testing.T) {
	// 2024-06-01 is tomorrow, so nothing on it is in the past.
	now := at(2024, 5, 31, 20, 0)

	occupied := func() *occupancy.Index {
		return occupancy.NewIndex(timeblock.Interval{Date: "2024-06-01", Start: timeblock.MustParseClock("09:00"), Duration: 60})
	}

	tests := []struct {
		name         string
		draft        schedule.TaskDraft
		wantDate     string
		wantTime     string
		wantAdjusted bool
		wantReason   string
		wantDuration int
	}{
		{
			name:         "occupied preferred time moves",
			draft:        schedule.TaskDraft{Title: "写周报", StartTime: "09:00", EstimatedMinutes: 30, DueDate: "2024-06-01"},
			wantDate:     "2024-06-01",
			wantTime:     "07:00",
			wantAdjusted: true,
			wantReason:   "original time 09:00 occupied, moved to 07:00",
			wantDuration: 30,
		},
		{
			name:         "free preferred time is honored",
			draft:        schedule.TaskDraft{Title: "写周报", StartTime: "10:00", EstimatedMinutes: 30, DueDate: "2024-06-01"},
			wantDate:     "2024-06-01",
			wantTime:     "10:00",
			wantDuration: 30,
		},
		{
			name:         "past due date is moved to today",
			draft:        schedule.TaskDraft{Title: "整理", StartTime: "21:00", DueDate: "2024-05-01"},
			wantDate:     "2024-05-31",
			wantTime:     "21:00",
			wantDuration: 30,
		},
		{
			name:         "past time today is dropped",
			draft:        schedule.TaskDraft{Title: "整理", StartTime: "09:00"},
			wantDate:     "2024-05-31",
			wantTime:     "20:30",
			wantAdjusted: true,
			wantReason:   "original time 09:00 is in the past, moved to 20:30",
			wantDuration: 30,
		},
		{
			name:         "period phrase searches its window",
			draft:        schedule.TaskDraft{Title: "开会", When: "明天下午"},
			wantDate:     "2024-06-01",
			wantTime:     "13:00",
			wantDuration: 30,
		},
		{
			name:         "specific phrase",
			draft:        schedule.TaskDraft{Title: "开会", When: "明天上午9点", EstimatedMinutes: 30},
			wantDate:     "2024-06-01",
			wantTime:     "07:00",
			wantAdjusted: true,
			wantReason:   "original time 09:00 occupied, moved to 07:00",
			wantDuration: 30,
		},
		{
			name:         "time mentioned in the title",
			draft:        schedule.TaskDraft{Title: "明天下午3点开会", EstimatedMinutes: 30},
			wantDate:     "2024-06-01",
			wantTime:     "15:00",
			wantDuration: 30,
		},
		{
			name:         "date only mentioned in the description",
			draft:        schedule.TaskDraft{Title: "练习听写", Description: "后天做"},
			wantDate:     "2024-06-02",
			wantTime:     "14:00",
			wantDuration: 30,
		},
		{
			name:         "content bucket without a request",
			draft:        schedule.TaskDraft{Title: "练习听写", DueDate: "2024-06-01"},
			wantDate:     "2024-06-01",
			wantTime:     "14:00",
			wantDuration: 30,
		},
		{
			name:         "duration from text",
			draft:        schedule.TaskDraft{Title: "背单词 1.5小时", DueDate: "2024-06-02", StartTime: "08:00"},
			wantDate:     "2024-06-02",
			wantTime:     "08:00",
			wantDuration: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, now, newMemoryRepo(), nil)
			got := uc.scheduleOne(occupied(), normalizeDraft(tt.draft))

			if got.Date != tt.wantDate || got.Time != tt.wantTime {
				t.Errorf("slot = %s %s, want %s %s", got.Date, got.Time, tt.wantDate, tt.wantTime)
			}
			if got.TimeAdjusted != tt.wantAdjusted {
				t.Errorf("TimeAdjusted = %v, want %v", got.TimeAdjusted, tt.wantAdjusted)
			}
			if got.AdjustmentReason != tt.wantReason {
				t.Errorf("AdjustmentReason = %q, want %q", got.AdjustmentReason, tt.wantReason)
			}
			if got.DurationMinutes != tt.wantDuration {
				t.Errorf("DurationMinutes = %d, want %d", got.DurationMinutes, tt.wantDuration)
			}
		})
	}
}

func TestScheduleOneAvoidsOccupiedHour(t *testing.T) {
	uc := newTestUseCase(t, at(2024, 5, 31, 20, 0), newMemoryRepo(), nil)
	idx := occupancy.NewIndex(timeblock.Interval{Date: "2024-06-01", Start: timeblock.MustParseClock("09:00"), Duration: 60})

	got := uc.scheduleOne(idx, schedule.TaskDraft{Title: "x", StartTime: "09:00", EstimatedMinutes: 30, DueDate: "2024-06-01"})

	start := timeblock.MustParseClock(got.Time)
	if !got.TimeAdjusted {
		t.Fatal("expected TimeAdjusted")
	}
	if start >= timeblock.MustParseClock("09:00") && start < timeblock.MustParseClock("10:00") {
		t.Errorf("start %s is inside the occupied hour", got.Time)
	}
	if idx.Len() != 2 {
		t.Errorf("index len = %d, want 2", idx.Len())
	}
}

func TestScheduleOneSaturatedDay(t *testing.T) {
	uc := newTestUseCase(t, at(2024, 5, 31, 6, 0), newMemoryRepo(), nil)
	idx := occupancy.NewIndex()
	for c := timeblock.NewClock(7, 0); c < timeblock.NewClock(22, 0); c = c.Add(30) {
		idx.Add(timeblock.Interval{Date: "2024-06-01", Start: c, Duration: 30})
	}

	got := uc.scheduleOne(idx, schedule.TaskDraft{Title: "x", EstimatedMinutes: 30, DueDate: "2024-06-01"})
	if got.Time != "21:00" || !got.Fallback {
		t.Errorf("got %s fallback=%v, want 21:00 fallback", got.Time, got.Fallback)
	}
}

func TestDraftDuration(t *testing.T) {
	tests := []struct {
		name  string
		draft schedule.TaskDraft
		want  int
	}{
		{"estimate above range", schedule.TaskDraft{EstimatedMinutes: 500}, 120},
		{"negative estimate", schedule.TaskDraft{EstimatedMinutes: -5}, 20},
		{"estimate kept", schedule.TaskDraft{EstimatedMinutes: 75}, 75},
		{"hours in title", schedule.TaskDraft{Title: "看书 1.5小时"}, 90},
		{"minutes in description", schedule.TaskDraft{Title: "冥想", Description: "10分钟"}, 20},
		{"study keyword", schedule.TaskDraft{Title: "复习高数"}, 50},
		{"fitness keyword", schedule.TaskDraft{Title: "跑步"}, 45},
		{"nothing known", schedule.TaskDraft{Title: "写代码"}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := draftDuration(tt.draft); got != tt.want {
				t.Errorf("draftDuration() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalizeDraft(t *testing.T) {
	got := normalizeDraft(schedule.TaskDraft{Title: "  ", Priority: "urgent", Quadrant: 9})
	if got.Title != defaultTaskTitle {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Priority != model.PriorityMedium || got.Quadrant != model.QuadrantImportant {
		t.Errorf("Priority/Quadrant = %s/%d", got.Priority, got.Quadrant)
	}
	if got.Tags == nil {
		t.Error("Tags should not be nil")
	}
}

func TestBucketTime(t *testing.T) {
	tests := []struct {
		text     string
		priority model.Priority
		quadrant int
		want     string
	}{
		{"阅读论文", model.PriorityLow, 4, "09:00"},
		{"训练", model.PriorityLow, 4, "14:00"},
		{"安装 Docker", model.PriorityLow, 4, "19:00"},
		{"制定周计划", model.PriorityLow, 4, "15:00"},
		{"杂事", model.PriorityHigh, 3, "09:00"},
		{"杂事", model.PriorityLow, 1, "09:00"},
		{"杂事", model.PriorityMedium, 2, "14:00"},
	}
	for _, tt := range tests {
		t.Run(tt.text+"/"+string(tt.priority), func(t *testing.T) {
			if got := bucketTime(tt.text, tt.priority, tt.quadrant).String(); got != tt.want {
				t.Errorf("bucketTime() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestReasonMentionsBothTimes(t *testing.T) {
	uc := newTestUseCase(t, at(2024, 5, 31, 20, 0), newMemoryRepo(), nil)
	idx := occupancy.NewIndex(timeblock.Interval{Date: "2024-06-01", Start: timeblock.NewClock(7, 0), Duration: 120})
	got := uc.scheduleOne(idx, schedule.TaskDraft{Title: "x", StartTime: "08:00", EstimatedMinutes: 30, DueDate: "2024-06-01"})
	if !strings.Contains(got.AdjustmentReason, "08:00") || !strings.Contains(got.AdjustmentReason, got.Time) {
		t.Errorf("reason %q", got.AdjustmentReason)
	}
}
