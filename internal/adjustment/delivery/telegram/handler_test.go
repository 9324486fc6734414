package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/adjustment"
	"task-scheduler/internal/adjustment/delivery/telegram"
	"task-scheduler/internal/model"
	"task-scheduler/internal/schedule"
	"task-scheduler/pkg/log"
	pkgTelegram "task-scheduler/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockAdjustUseCase struct {
	mu        sync.Mutex
	state     adjustment.UserState
	adjustOut adjustment.AdjustOutput
	adjustErr error
	adjustSc  model.Scope
	adjusted  bool
}

func (m *mockAdjustUseCase) Classify(_ context.Context, in adjustment.ClassifyInput) (adjustment.UserState, error) {
	return m.state, nil
}

func (m *mockAdjustUseCase) Adjust(_ context.Context, sc model.Scope, _ adjustment.AdjustInput) (adjustment.AdjustOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adjustSc, m.adjusted = sc, true
	return m.adjustOut, m.adjustErr
}

func (m *mockAdjustUseCase) snapshot() (model.Scope, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.adjustSc, m.adjusted
}

type mockScheduleUseCase struct {
	sweepOut schedule.SweepOutput
	report   schedule.Report
	err      error
}

func (m *mockScheduleUseCase) Plan(context.Context, model.Scope, schedule.PlanInput) (schedule.PlanOutput, error) {
	return schedule.PlanOutput{}, nil
}

func (m *mockScheduleUseCase) SweepUnscheduled(context.Context, model.Scope) (schedule.SweepOutput, error) {
	return m.sweepOut, m.err
}

func (m *mockScheduleUseCase) ScheduleReport(context.Context, model.Scope) (schedule.Report, error) {
	return m.report, m.err
}

func (m *mockScheduleUseCase) ParseTime(context.Context, schedule.ParseInput) (schedule.ParseOutput, error) {
	return schedule.ParseOutput{}, nil
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type outbox struct {
	mu   sync.Mutex
	msgs []string
}

func (o *outbox) add(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.msgs = append(o.msgs, s)
}

func (o *outbox) all() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.msgs...)
}

func (o *outbox) waitFor(t *testing.T, atLeast int) []string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if msgs := o.all(); len(msgs) >= atLeast {
			return msgs
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d message(s), got %v", atLeast, o.all())
	return nil
}

type testEnv struct {
	engine *gin.Engine
	adjust *mockAdjustUseCase
	sched  *mockScheduleUseCase
	sent   *outbox
}

const secret = "hook-secret"

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sent := &outbox{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			var payload pkgTelegram.SendMessageRequest
			json.NewDecoder(r.Body).Decode(&payload)
			sent.add(payload.Text)
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	env := &testEnv{
		engine: gin.New(),
		adjust: &mockAdjustUseCase{},
		sched:  &mockScheduleUseCase{},
		sent:   sent,
	}
	h := telegram.New(log.NewNop(), env.adjust, env.sched, bot, secret)
	env.engine.POST("/webhook/telegram", h.HandleWebhook)
	return env
}

func sendWebhook(engine *gin.Engine, token string, update pkgTelegram.Update) *httptest.ResponseRecorder {
	body, _ := json.Marshal(update)
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(pkgTelegram.SecretTokenHeader, token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func textUpdate(text string) pkgTelegram.Update {
	return pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456, Username: "amy"},
			Text:      text,
		},
	}
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_Rejections(t *testing.T) {
	env := newTestEnv(t)

	if w := sendWebhook(env.engine, "wrong", textUpdate("hi")); w.Code != http.StatusUnauthorized {
		t.Errorf("bad secret: expected 401, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set(pkgTelegram.SecretTokenHeader, secret)
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad json: expected 400, got %d", w.Code)
	}

	for _, u := range []pkgTelegram.Update{{UpdateID: 2}, textUpdate("   ")} {
		w := sendWebhook(env.engine, secret, u)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ignored") {
			t.Errorf("expected ignored 200, got %d %s", w.Code, w.Body.String())
		}
	}
}

func TestHandleCommands(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"/start", "你好"},
		{"/help", "/sweep"},
		{"/help@scheduler_bot", "/report"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			env := newTestEnv(t)
			if w := sendWebhook(env.engine, secret, textUpdate(tt.text)); w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			assertContains(t, env.sent.waitFor(t, 1), tt.want)
		})
	}
}

func TestHandleSweep(t *testing.T) {
	env := newTestEnv(t)
	env.sched.sweepOut = schedule.SweepOutput{
		ScheduledCount: 1,
		UpdatedTasks:   []schedule.SweptTask{{ID: "t1", Title: "背单词", Date: "2024-06-01", Time: "09:00", DurationMinutes: 60}},
	}

	sendWebhook(env.engine, secret, textUpdate("/sweep"))
	msgs := env.sent.waitFor(t, 1)
	assertContains(t, msgs, "已为 1 个任务安排了时间")
	assertContains(t, msgs, "背单词  2024-06-01 09:00")
}

func TestHandleReport(t *testing.T) {
	env := newTestEnv(t)
	env.sched.report = schedule.Report{TotalTasks: 3, ScheduledTasks: 2, UnscheduledTasks: 1, SchedulingRate: 66.7}

	sendWebhook(env.engine, secret, textUpdate("/report"))
	assertContains(t, env.sent.waitFor(t, 1), "排期率：66.7%")
}

func TestHandleStateMessage(t *testing.T) {
	env := newTestEnv(t)
	env.adjust.state = adjustment.UserState{PrimaryState: adjustment.StateTired, NeedsAdjustment: true}
	env.adjust.adjustOut = adjustment.AdjustOutput{
		Message: "知道你现在很累。",
		Result: adjustment.Result{
			Postponed: []adjustment.TaskChange{{ID: "t2"}, {ID: "t3"}},
			New:       []adjustment.TaskChange{{ID: "r1"}},
		},
	}

	sendWebhook(env.engine, secret, textUpdate("我很累，今天任务太多了"))
	msgs := env.sent.waitFor(t, 1)
	assertContains(t, msgs, "知道你现在很累")
	assertContains(t, msgs, "共调整 3 个任务，延后 2 个，新增 1 个")

	sc, adjusted := env.adjust.snapshot()
	if !adjusted || sc.UserID != "telegram_456" || sc.Username != "amy" {
		t.Errorf("adjusted = %v, scope = %+v", adjusted, sc)
	}
}

func TestHandleNormalMessage(t *testing.T) {
	env := newTestEnv(t)
	env.adjust.state = adjustment.UserState{PrimaryState: adjustment.StateNormal}

	sendWebhook(env.engine, secret, textUpdate("今天吃什么"))
	assertContains(t, env.sent.waitFor(t, 1), "日程保持不变")
	if _, adjusted := env.adjust.snapshot(); adjusted {
		t.Error("normal state must not trigger Adjust")
	}
}

func TestHandleFailure(t *testing.T) {
	env := newTestEnv(t)
	env.adjust.state = adjustment.UserState{PrimaryState: adjustment.StateSick, NeedsAdjustment: true}
	env.adjust.adjustErr = errors.New("connection refused")

	sendWebhook(env.engine, secret, textUpdate("我生病了"))
	msgs := env.sent.waitFor(t, 1)
	assertContains(t, msgs, "出错了")
	for _, m := range msgs {
		if strings.Contains(m, "connection refused") {
			t.Errorf("store error leaked to chat: %q", m)
		}
	}
}

type warnRecorder struct {
	log.Logger
	mu    sync.Mutex
	warns []string
}

func (w *warnRecorder) Warnf(ctx context.Context, template string, arg ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.warns = append(w.warns, template)
}

func (w *warnRecorder) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.warns)
}

func TestHandleFailureReplyNotDelivered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": false, "description": "Forbidden: bot was blocked by the user"}`))
	}))
	defer tgServer.Close()

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	adjust := &mockAdjustUseCase{
		state:     adjustment.UserState{PrimaryState: adjustment.StateTired, Confidence: 0.6, NeedsAdjustment: true},
		adjustErr: errors.New("store down"),
	}
	rec := &warnRecorder{Logger: log.NewNop()}
	engine := gin.New()
	h := telegram.New(rec, adjust, &mockScheduleUseCase{}, bot, secret)
	engine.POST("/webhook/telegram", h.HandleWebhook)

	if w := sendWebhook(engine, secret, textUpdate("好累")); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	deadline := time.Now().Add(2 * time.Second)
	for rec.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if rec.count() != 1 {
		t.Errorf("warnings = %d, want 1 for the undelivered error reply", rec.count())
	}
}
