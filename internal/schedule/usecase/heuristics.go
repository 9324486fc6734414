package usecase

import (
	"strings"

	"task-scheduler/internal/model"
	"task-scheduler/pkg/timeblock"
)

// keywordRule maps any of its keywords to value. Tables are checked in order.
type keywordRule[T any] struct {
	keywords []string
	value    T
}

func matchRule[T any](text string, rules []keywordRule[T]) (T, bool) {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(lower, k) {
				return r.value, true
			}
		}
	}
	var zero T
	return zero, false
}

var (
	studyWords    = []string{"学习", "复习", "阅读", "背诵", "study", "review", "read"}
	fitnessWords  = []string{"健身", "运动", "跑步", "锻炼", "瑜伽", "workout", "exercise", "fitness", "yoga"}
	installWords  = []string{"安装", "下载", "配置", "install", "download", "setup", "configure"}
	practiceWords = []string{"练习", "训练", "背诵", "跟读", "practice", "drill", "train"}
	planningWords = []string{"计划", "制定", "安排", "plan", "organize"}
	speakingWords = []string{"听力", "跟读", "口语", "listening", "speaking", "shadowing"}
)

// planDurations estimates new drafts that carry no duration of their own.
var planDurations = []keywordRule[int]{
	{studyWords, 50},
	{fitnessWords, 45},
}

const planDefaultDuration = 30

// backlogDurations estimates stored tasks picked up by the sweeper.
var backlogDurations = []keywordRule[int]{
	{installWords, 30},
	{[]string{"学习", "阅读", "教材", "study", "read", "textbook"}, 60},
	{[]string{"练习", "训练", "背诵", "practice", "drill", "recite"}, 45},
	{planningWords, 30},
	{speakingWords, 20},
}

// contentBuckets picks a representative start time from what the task is about.
var contentBuckets = []keywordRule[timeblock.Clock]{
	{[]string{"学习", "阅读", "背诵", "study", "read", "recite"}, timeblock.NewClock(9, 0)},
	{practiceWords, timeblock.NewClock(14, 0)},
	{installWords, timeblock.NewClock(19, 0)},
	{planningWords, timeblock.NewClock(15, 0)},
}

func planDuration(text string) int {
	if d, ok := matchRule(text, planDurations); ok {
		return d
	}
	return planDefaultDuration
}

func backlogDuration(text string) int {
	if d, ok := matchRule(text, backlogDurations); ok {
		return d
	}
	return timeblock.DefaultDuration
}

// bucketTime falls back to priority when the content says nothing:
// high or urgent-important work goes to the forenoon, the rest to the afternoon.
func bucketTime(text string, p model.Priority, quadrant int) timeblock.Clock {
	if c, ok := matchRule(text, contentBuckets); ok {
		return c
	}
	if p == model.PriorityHigh || quadrant == model.QuadrantUrgentImportant {
		return timeblock.NewClock(9, 0)
	}
	return timeblock.NewClock(14, 0)
}

// backlogDate picks the date for a backlog task. A planned date that is not past is kept,
// then a due date that is not past, then the priority decides.
func backlogDate(t model.Task, today string) string {
	if t.Date != "" && t.Date >= today {
		return t.Date
	}
	if t.DueDate != "" && t.DueDate >= today {
		return t.DueDate
	}
	offset := 2
	switch {
	case t.Priority == model.PriorityHigh || t.Quadrant == model.QuadrantUrgentImportant:
		offset = 0
	case t.Priority == model.PriorityMedium || t.Quadrant == model.QuadrantImportant:
		offset = 1
	}
	if offset == 0 {
		return today
	}
	return addDays(today, offset)
}

func addDays(date string, n int) string {
	d, err := timeblock.ParseDate(date, nil)
	if err != nil {
		return date
	}
	return timeblock.FormatDate(d.AddDate(0, 0, n))
}
