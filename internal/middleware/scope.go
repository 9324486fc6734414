package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/model"
	"task-scheduler/pkg/log"
	"task-scheduler/pkg/response"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUsername = "X-Username"

	scopeKey = "scope"
)

// UserScope requires the caller to identify itself and stores the scope on the context.
func (m Middleware) UserScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			response.Unauthorized(c)
			return
		}

		sc := model.Scope{
			UserID:   userID,
			Username: strings.TrimSpace(c.GetHeader(HeaderUsername)),
		}
		c.Set(scopeKey, sc)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), log.UserIDKey, userID))
		c.Next()
	}
}

// GetScope returns the scope set by UserScope, or the zero scope.
func GetScope(c *gin.Context) model.Scope {
	sc, _ := scopeFrom(c)
	return sc
}

func scopeFrom(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
