package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
	"task-scheduler/pkg/response"
)

// Plan godoc
// @Summary     Plan task groups
// @Description Assigns a date, start time and time block to every draft without overlapping existing tasks or each other, then stores the result unless dry_run is set.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  true "User ID"
// @Param       body      body   planReq true "Task groups to plan"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/plans [POST]
func (h *handler) Plan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Plan(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Plan: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// Sweep godoc
// @Summary     Schedule the backlog
// @Description Gives every incomplete task lacking a date or time a conflict-free slot.
// @Tags        Schedule
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Success     200 {object} sweepResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/sweep [POST]
func (h *handler) Sweep(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SweepUnscheduled(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.SweepUnscheduled: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSweepResp(output))
}

// Report godoc
// @Summary     Scheduling report
// @Description Counts incomplete tasks by scheduling state.
// @Tags        Schedule
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Success     200 {object} reportResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/report [GET]
func (h *handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ScheduleReport(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ScheduleReport: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReportResp(output))
}

// Parse godoc
// @Summary     Parse a time phrase
// @Description Extracts a time hint and a duration from free-form text such as "明天下午3点 1.5小时".
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "User ID"
// @Param       body      body   parseReq true "Text to parse"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/schedule/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ParseTime(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}
