package api

import (
	"bytes"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// IdempotencyKeyHeader is the client-supplied deduplication key. Recording
// a personal best is not an idempotent write: retried deliveries of the
// same improving submission would append duplicate history entries, so
// retrying clients send a key and get the first response replayed.
const IdempotencyKeyHeader = "X-Idempotency-Key"

// bodyCaptureWriter tees the response body so it can be cached after the
// handler runs.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the cached response when the same key is
// seen again within the TTL. Requests without a key pass through
// unchecked. Only successful (2xx) responses are cached.
func IdempotencyMiddleware(redisClient *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		cacheKey := fmt.Sprintf("idempotency:%s", key)

		cached, err := redisClient.Get(c.Request.Context(), cacheKey).Bytes()
		if err == nil && len(cached) > 4 {
			// Cached as "<status> <body>".
			status, convErr := strconv.Atoi(string(cached[:3]))
			if convErr == nil {
				c.Header("X-Idempotent-Replay", "true")
				c.Data(status, "application/json", cached[4:])
				c.Abort()
				return
			}
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 || writer.body.Len() == 0 {
			return
		}
		value := append([]byte(strconv.Itoa(status)+" "), writer.body.Bytes()...)
		if err := redisClient.Set(c.Request.Context(), cacheKey, value, ttl).Err(); err != nil {
			log.Printf("ERROR: Failed to cache idempotent response for key '%s': %v", key, err)
		}
	}
}
