package middleware

import (
	"strconv"
	"time"

	"ecertify/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIdHeader = "X-Request-Id"
	requestIdKey    = "request_id"
)

// RequestLogger logs one line per request. Incoming request ids are kept, missing ones are generated.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Set(requestIdKey, requestId)
		c.Header(RequestIdHeader, requestId)

		start := time.Now()
		c.Next()

		actor, _ := ActorAddress(c)
		logger.Default().WithFields(map[string]string{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     strconv.Itoa(c.Writer.Status()),
			"latency_ms": strconv.FormatInt(time.Since(start).Milliseconds(), 10),
			"actor":      actor,
			"request_id": requestId,
		}).Debug("http_request")
	}
}
