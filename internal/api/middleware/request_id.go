package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader 请求与响应中携带追踪 ID 的头
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
	// 外部传入的追踪 ID 超过该长度时重新生成，避免污染日志
	requestIDMaxLen = 64
)

// RequestID 为每个请求分配追踪 ID 并回写到响应头
// 客户端已携带合法的 X-Request-ID 时沿用，便于前后端日志对齐
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.NewString()
		}

		c.Set(requestIDKey, rid)
		c.Header(RequestIDHeader, rid)

		c.Next()
	}
}

// GetRequestID 读取当前请求的追踪 ID；未经过 RequestID 中间件时返回空串
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
