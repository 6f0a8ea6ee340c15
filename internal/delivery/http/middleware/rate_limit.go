package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"github.com/DrekStyler/handypro-api/internal/delivery/http/response"
	"github.com/DrekStyler/handypro-api/internal/domain"
)

// RateLimitConfig holds configuration for the fixed-window rate limiter.
type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	KeyPrefix string
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// Lua script for atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// RateLimit limits requests per authenticated user (falling back to client IP) over
// a fixed window. With a nil Redis client, counting is in-memory per process.
func RateLimit(rdb *goredis.Client, cfg RateLimitConfig) gin.HandlerFunc {
	var memory sync.Map

	return func(c *gin.Context) {
		key := c.GetString(string(domain.KeyUserID))
		if key == "" {
			key = c.ClientIP()
		}
		key = cfg.KeyPrefix + key

		var count int
		if rdb != nil {
			n, err := rdb.Eval(c.Request.Context(), rateLimitLuaScript,
				[]string{key}, int(cfg.Window.Seconds())).Int()
			if err == nil {
				count = n
			}
			// Redis errors fall through with count 0: fail open rather than block
			// legitimate uploads on an infra hiccup
		} else {
			count = memoryIncr(&memory, key, cfg.Window)
		}

		if count > cfg.Limit {
			c.Header("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
			response.Error(c, http.StatusTooManyRequests,
				fmt.Sprintf("Rate limit exceeded. Try again in %d seconds.", int(cfg.Window.Seconds())), nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func memoryIncr(store *sync.Map, key string, window time.Duration) int {
	now := time.Now()
	v, _ := store.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(window)})
	entry := v.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count
}
