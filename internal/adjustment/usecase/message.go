package usecase

import (
	"fmt"

	"task-scheduler/internal/adjustment"
)

const defaultMessage = "已根据你的情况调整了任务安排。"

func message(state adjustment.State, r adjustment.Result) string {
	switch state {
	case adjustment.StateTired:
		return fmt.Sprintf("知道你现在很累。已把%d个任务挪到明天，并安排了一段休息时间，好好歇一下。", len(r.Postponed))
	case adjustment.StateBusy:
		return "时间比较紧，已重新排了优先级，先把最重要的事做完。加油！"
	case adjustment.StateStressed:
		return "压力有点大的话就慢一点。任务之间留了缓冲，紧急的事也分散开了。"
	case adjustment.StateMotivated:
		return "状态不错！重要的事已经提前，顺序也调整好了，趁热打铁。"
	case adjustment.StateSick:
		return "身体不舒服就先休息。除了紧急任务，其余都已延后，早日康复！"
	default:
		return defaultMessage
	}
}
