package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "task-scheduler/pkg/errors"
)

func (h *handler) processTextReq(c *gin.Context) (textReq, error) {
	var req textReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, err.Error())
	}
	return req, nil
}
