package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/gamebay/retail-ops/pkg/logger"
)

// CacheConfig holds cache configuration
type CacheConfig struct {
	DefaultTTL       time.Duration
	CacheableMethods []string
	CacheableStatus  []int
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL:       time.Minute,
		CacheableMethods: []string{"GET", "HEAD"},
		CacheableStatus:  []int{200, 203, 301, 404, 410},
	}
}

// CacheMiddleware implements response caching with Redis
func CacheMiddleware(redisClient *redis.Client, config CacheConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if redisClient == nil {
			return c.Next()
		}

		if !isMethodCacheable(c.Method(), config.CacheableMethods) {
			return c.Next()
		}

		cacheKey := generateCacheKey(c)

		ctx := context.Background()
		cachedResponse, err := redisClient.Get(ctx, cacheKey).Bytes()
		if err == nil && len(cachedResponse) > 0 {
			logger.Logger.Debug().
				Str("path", c.Path()).
				Str("cache_key", cacheKey).
				Msg("Cache hit")

			c.Set("X-Cache", "HIT")
			c.Set("Content-Type", "application/json")
			return c.Send(cachedResponse)
		}

		err = c.Next()

		statusCode := c.Response().StatusCode()
		if isStatusCacheable(statusCode, config.CacheableStatus) {
			responseBody := c.Response().Body()

			if cacheErr := redisClient.Set(ctx, cacheKey, responseBody, config.DefaultTTL).Err(); cacheErr != nil {
				logger.Logger.Warn().
					Err(cacheErr).
					Str("cache_key", cacheKey).
					Msg("Failed to cache response")
			}

			c.Set("X-Cache", "MISS")
		}

		return err
	}
}

// generateCacheKey builds a key from method, path, query and the caller's
// Authorization header.
func generateCacheKey(c *fiber.Ctx) string {
	keyComponents := fmt.Sprintf("%s:%s:%s:%s",
		c.Method(),
		c.Path(),
		string(c.Request().URI().QueryString()),
		c.Get("Authorization"),
	)

	hash := sha256.Sum256([]byte(keyComponents))
	return fmt.Sprintf("cache:%s", hex.EncodeToString(hash[:]))
}

func isMethodCacheable(method string, cacheableMethods []string) bool {
	for _, m := range cacheableMethods {
		if m == method {
			return true
		}
	}
	return false
}

func isStatusCacheable(status int, cacheableStatus []int) bool {
	for _, s := range cacheableStatus {
		if s == status {
			return true
		}
	}
	return false
}
