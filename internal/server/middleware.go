package server

import (
	"io"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	headerRequestID = "X-Request-ID"
	keyRequestID    = "request_id"
)

// requestID keeps a caller-supplied UUID request id or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(keyRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func accessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("HTTP Response",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.Int("response_size", c.Writer.Size()),
			zap.String("remote_addr", c.ClientIP()),
			zap.String("request_id", c.GetString(keyRequestID)),
		)
	}
}

// recovery turns a panic in a handler into the standard error envelope.
func recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error("panic while handling request",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(keyRequestID)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Detail: detailInternal})
	})
}

const (
	headerRequestHeaders = "Access-Control-Request-Headers"
	headerAllowHeaders   = "Access-Control-Allow-Headers"
)

// corsMiddleware allows every method and every request header. A "*" origin
// echoes the caller's origin back so credentials keep working.
func corsMiddleware(origins []string) gin.HandlerFunc {
	allowAll := len(origins) == 0 || slices.Contains(origins, "*")

	return cors.New(cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		ExposeHeaders:    []string{headerRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		AllowOriginWithContextFunc: func(c *gin.Context, origin string) bool {
			if !allowAll && !slices.Contains(origins, origin) {
				return false
			}
			// A wildcard Allow-Headers is taken literally on credentialed
			// requests, so preflights get their own header list back.
			if c.Request.Method == http.MethodOptions {
				if requested := c.GetHeader(headerRequestHeaders); requested != "" {
					c.Header(headerAllowHeaders, requested)
				}
			}
			return true
		},
	})
}
