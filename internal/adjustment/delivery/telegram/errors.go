package telegram

import (
	"errors"

	"task-scheduler/internal/adjustment"
	"task-scheduler/internal/schedule"
)

const genericFailure = "处理请求时出错了，请稍后再试。"

// errorMessage returns a user-facing string for err. Store details never reach the chat.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adjustment.ErrEmptyUtterance), errors.Is(err, schedule.ErrEmptyText):
		return "消息是空的，说说你现在的状态吧。"
	default:
		return genericFailure
	}
}
