package telegram

import (
	"context"
	"crypto/hmac"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/adjustment"
	"task-scheduler/internal/model"
	pkgLog "task-scheduler/pkg/log"
	pkgResponse "task-scheduler/pkg/response"
	pkgTelegram "task-scheduler/pkg/telegram"
)

const (
	startText = "👋 你好！我会根据你的状态调整今天的任务安排。\n\n" +
		"直接告诉我你的感受，比如 _\"我很累，今天任务太多了\"_ 或 _\"今天状态很好\"_。\n\n" +
		"输入 /help 查看所有命令。"
	helpText = "*可用命令*\n\n" +
		"/sweep 给所有未排期的任务安排时间\n" +
		"/report 查看排期统计\n\n" +
		"其它消息会被当作状态描述：累、忙、压力大、有干劲、生病都会触发相应的调整。"
	noStateText = "收到！没有检测到需要调整的状态，日程保持不变。"
)

// HandleWebhook acknowledges Telegram immediately and processes the message in the background.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.validSecret(c.GetHeader(pkgTelegram.SecretTokenHeader)) {
		h.l.Warnf(ctx, "telegram handler: rejected update with bad secret token")
		pkgResponse.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil || strings.TrimSpace(update.Message.Text) == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), h.processTimeout)
		defer cancel()
		bgCtx = context.WithValue(bgCtx, pkgLog.UserIDKey, scopeOf(msg).UserID)

		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
			if sendErr := h.bot.SendMessage(bgCtx, msg.Chat.ID, errorMessage(err)); sendErr != nil {
				h.l.Warnf(bgCtx, "telegram handler: failed to send error reply to chat %d: %v", msg.Chat.ID, sendErr)
			}
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// validSecret compares in constant time.
func (h *handler) validSecret(got string) bool {
	if h.secretToken == "" {
		return true
	}
	return hmac.Equal([]byte(got), []byte(h.secretToken))
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	if msg.From == nil {
		return model.Scope{UserID: fmt.Sprintf("telegram_%d", msg.Chat.ID)}
	}
	return model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	chatID := msg.Chat.ID
	sc := scopeOf(msg)

	switch command(text) {
	case "/start":
		return h.bot.SendMessageWithMode(ctx, chatID, startText, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(ctx, chatID, helpText, "Markdown")
	case "/sweep":
		return h.handleSweep(ctx, sc, chatID)
	case "/report":
		return h.handleReport(ctx, sc, chatID)
	}

	state, err := h.adjustUC.Classify(ctx, adjustment.ClassifyInput{Text: text})
	if err != nil {
		return err
	}
	if !state.NeedsAdjustment {
		return h.bot.SendMessage(ctx, chatID, noStateText)
	}

	output, err := h.adjustUC.Adjust(ctx, sc, adjustment.AdjustInput{Text: text})
	if err != nil {
		return fmt.Errorf("adjust: %w", err)
	}
	return h.bot.SendMessage(ctx, chatID, adjustReply(output))
}

// command strips a bot mention such as "/sweep@my_bot".
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(strings.Fields(text)[0], "@")
	return cmd
}

func (h *handler) handleSweep(ctx context.Context, sc model.Scope, chatID int64) error {
	output, err := h.scheduleUC.SweepUnscheduled(ctx, sc)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	if output.ScheduledCount == 0 {
		return h.bot.SendMessage(ctx, chatID, "所有任务都已排期，没有需要安排的。")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "已为 %d 个任务安排了时间：\n", output.ScheduledCount)
	for _, t := range output.UpdatedTasks {
		fmt.Fprintf(&b, "• %s  %s %s（%d分钟）\n", t.Title, t.Date, t.Time, t.DurationMinutes)
	}
	return h.bot.SendMessage(ctx, chatID, strings.TrimRight(b.String(), "\n"))
}

func (h *handler) handleReport(ctx context.Context, sc model.Scope, chatID int64) error {
	r, err := h.scheduleUC.ScheduleReport(ctx, sc)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return h.bot.SendMessage(ctx, chatID, fmt.Sprintf(
		"📊 排期统计\n未完成任务：%d\n已排期：%d\n未排期：%d\n排期率：%.1f%%\n今日任务：%d",
		r.TotalTasks, r.ScheduledTasks, r.UnscheduledTasks, r.SchedulingRate, r.TodayTasks,
	))
}

func adjustReply(o adjustment.AdjustOutput) string {
	var b strings.Builder
	b.WriteString(o.Message)

	if n := o.Result.Count(); n > 0 {
		fmt.Fprintf(&b, "\n\n共调整 %d 个任务", n)
		if len(o.Result.Postponed) > 0 {
			fmt.Fprintf(&b, "，延后 %d 个", len(o.Result.Postponed))
		}
		if len(o.Result.New) > 0 {
			fmt.Fprintf(&b, "，新增 %d 个", len(o.Result.New))
		}
		b.WriteString("。")
	}
	return b.String()
}
