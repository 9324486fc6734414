package usecase

import (
	"context"
	"strings"

	"task-scheduler/internal/schedule"
	"task-scheduler/pkg/datemath"
)

// ParseTime reads a date, a time of day and a duration out of a phrase.
func (uc *implUseCase) ParseTime(ctx context.Context, input schedule.ParseInput) (schedule.ParseOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return schedule.ParseOutput{}, schedule.ErrEmptyText
	}

	out := schedule.ParseOutput{Hint: uc.parser.ParseHint(text, uc.finder.Now())}
	out.DurationMinutes, out.DurationFound = datemath.FindDuration(text)
	if !out.DurationFound {
		out.DurationMinutes = datemath.ExtractDuration(text)
	}
	return out, nil
}
