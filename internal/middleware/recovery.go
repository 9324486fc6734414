package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"task-scheduler/pkg/response"
)

// Recovery turns a handler panic into a logged 500 with the standard envelope.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		response.InternalError(c, err)
	})
}
