package usecase

import (
	"context"
	"sort"
	"strings"

	"task-scheduler/internal/adjustment"
)

const (
	baseConfidence     = 0.6
	intensifierBonus   = 0.2
	maxStateConfidence = 0.9
)

// stateKeywords is checked in order; ties keep this order.
var stateKeywords = []struct {
	state    adjustment.State
	keywords []string
}{
	{adjustment.StateTired, []string{"累", "疲惫", "疲劳", "困", "没力气", "精疲力尽", "tired", "exhausted", "sleepy", "worn out"}},
	{adjustment.StateBusy, []string{"忙", "没时间", "很赶", "紧急", "来不及", "busy", "no time", "rushed", "swamped"}},
	{adjustment.StateStressed, []string{"压力大", "焦虑", "紧张", "烦躁", "心情不好", "stressed", "anxious", "nervous", "overwhelmed"}},
	{adjustment.StateMotivated, []string{"有动力", "精神好", "状态好", "想做事", "充满活力", "motivated", "energetic", "productive", "feeling great"}},
	{adjustment.StateSick, []string{"生病", "不舒服", "感冒", "发烧", "头疼", "sick", "unwell", "fever", "headache"}},
}

var intensifiers = []string{"很", "非常", "特别", "实在", "真的", "very ", "really ", "especially ", "so "}

func (uc *implUseCase) Classify(ctx context.Context, input adjustment.ClassifyInput) (adjustment.UserState, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return adjustment.UserState{}, adjustment.ErrEmptyUtterance
	}
	st := classify(text)
	uc.metrics.StateClassified(string(st.PrimaryState))
	return st, nil
}

func classify(text string) adjustment.UserState {
	lower := strings.ToLower(text)

	var candidates []adjustment.StateCandidate
	for _, row := range stateKeywords {
		for _, kw := range row.keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			candidates = append(candidates, adjustment.StateCandidate{
				State:      row.state,
				Keyword:    kw,
				Confidence: confidence(lower, kw),
			})
		}
	}

	if len(candidates) == 0 {
		return adjustment.UserState{PrimaryState: adjustment.StateNormal}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	return adjustment.UserState{
		PrimaryState:    candidates[0].State,
		Confidence:      candidates[0].Confidence,
		Candidates:      candidates,
		NeedsAdjustment: true,
	}
}

// confidence adds a bonus for every intensifier found right before kw.
func confidence(text, kw string) float64 {
	c := baseConfidence
	for _, w := range intensifiers {
		if strings.Contains(text, w+kw) {
			c += intensifierBonus
		}
	}
	if c > maxStateConfidence {
		c = maxStateConfidence
	}
	return c
}
