package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ja7ad/fpgabuild/internal/logger"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// requestID tags every request with an ID and a logrus entry carrying it,
// then logs the outcome.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(HeaderRequestID, id)

		entry := logrus.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		})
		c.Request = c.Request.WithContext(logger.WithEntry(c.Request.Context(), entry))

		c.Next()

		status := c.Writer.Status()
		e := entry.WithFields(logrus.Fields{
			"status":  status,
			"latency": time.Since(start).String(),
			"client":  c.ClientIP(),
		})
		switch {
		case status >= 500:
			e.Error("request completed")
		case status >= 400:
			e.Warn("request completed")
		default:
			e.Debug("request completed")
		}
	}
}
