package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
	"task-scheduler/pkg/response"
)

// Classify godoc
// @Summary     Classify a user state
// @Description Detects a self-reported state (tired, busy, stressed, motivated, sick) in free text. Nothing is changed.
// @Tags        Adjustment
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  true "User ID"
// @Param       body      body   textReq true "Utterance"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/adjustments/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Classify(ctx, req.toClassifyInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStateResp(output))
}

// Adjust godoc
// @Summary     Adjust the schedule to a user state
// @Description Classifies the utterance and, unless the state is normal, postpones, shortens, reorders or adds tasks accordingly.
// @Tags        Adjustment
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  true "User ID"
// @Param       body      body   textReq true "Utterance"
// @Success     200 {object} adjustResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/adjustments [POST]
func (h *handler) Adjust(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Adjust(ctx, middleware.GetScope(c), req.toAdjustInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Adjust: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAdjustResp(output))
}
