package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hris-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"

	ContextIdempotencyCacheKey = "idempotency_cache_key"
	ContextIdempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL = 30 * time.Second
)

// Idempotency replays the cached body of an earlier POST with the same
// Idempotency-Key, and rejects a duplicate while the first is in flight.
// Handlers store the result under the cache key and release the lock.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	logger := zap.L().Named("middleware.idempotency")
	return func(c *gin.Context) {
		idempKey := c.GetHeader(HeaderIdempotencyKey)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id_validated")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				logger.Debug("idempotent replay", zap.String("key", cacheKey))
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			logger.Warn("idempotency lock failed, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			abort(c, ErrInProgress, nil)
			return
		}

		c.Set(ContextIdempotencyCacheKey, cacheKey)
		c.Set(ContextIdempotencyLockKey, lockKey)

		c.Next()
	}
}
