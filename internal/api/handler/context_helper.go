package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JosiephousPierre/SELab-final/pkg/response"
)

// MustGetUserID extracts user_id from the context. When the JWT middleware
// did not inject it, a 401 is written and ok is false; callers must return.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// userID extracts user_id without failing the request; unauthenticated
// requests get an empty string.
func userID(c *gin.Context) string {
	if v, exists := c.Get("user_id"); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// pathID parses a numeric :id path parameter. On failure a 400 is written
// and ok is false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}

// queryID parses an optional numeric query parameter; absent values return 0.
func queryID(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		response.BadRequest(c, 10001, "invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}
