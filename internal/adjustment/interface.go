package adjustment

import (
	"context"

	"task-scheduler/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Classify detects the user's state in a free-form utterance.
	Classify(ctx context.Context, input ClassifyInput) (UserState, error)
	// Adjust classifies the utterance and rewrites the user's tasks to match the detected state.
	// Changes are applied immediately and there is no undo.
	Adjust(ctx context.Context, sc model.Scope, input AdjustInput) (AdjustOutput, error)
}
