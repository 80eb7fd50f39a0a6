package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/VictorKimathi/medical-ai-assistant/internal/adapters/http/dto"
	"github.com/VictorKimathi/medical-ai-assistant/internal/domain"
	"github.com/VictorKimathi/medical-ai-assistant/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// multipartOverhead leaves room for boundaries and part headers on top of
// the file itself.
const multipartOverhead = 64 << 10

func AddRequestIDAndTime() gin.HandlerFunc {

	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()

		}
		c.Writer.Header().Set("X-Request-Id", requestID)
		c.Set("RequestID", requestID)

		ctx := observability.WithRequestID(c.Request.Context(), requestID)
		ctx = observability.WithRequestStartTime(ctx, time.Now())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func LimitUploadSize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)
		}
		c.Next()
	}
}

func LoggingRequestMiddleware(logger domain.LoggingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {

		logger.Info("http_request_start",
			"request_id", c.GetString("RequestID"),
			"method", c.Request.Method,
			"user-agent", c.Request.UserAgent(),
			"path", c.FullPath())

		c.Next()

		args := []any{
			"request_id", c.GetString("RequestID"),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
		}
		if start, ok := observability.GetRequestStartTime(c.Request.Context()); ok {
			args = append(args, "duration_us", time.Since(start).Microseconds())
		}
		logger.Info("http_request_end", args...)
	}
}

func PanicRecoveryMiddleware(logger domain.LoggingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {

		defer func() {
			if r := recover(); r != nil {
				logger.Error("internal server error",
					"request_id", c.GetString("RequestID"),
					"method", c.Request.Method,
					"path", c.FullPath(),
					"reason", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)

				httpErr := dto.HttpError{Message: "internal server error", Code: domain.ErrCodeInternal, StatusCode: http.StatusInternalServerError}
				c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			}
		}()

		c.Next()
	}
}
