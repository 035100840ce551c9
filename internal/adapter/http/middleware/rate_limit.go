package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// Counter decides whether one more request fits in the window for key.
type Counter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, remaining int, reset time.Time, err error)
}

// RateLimit limits requests per client IP and route. Counter failures let
// the request through.
func RateLimit(counter Counter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		key := fmt.Sprintf("rate_limit:pix:%s:%s", c.ClientIP(), route)

		allowed, remaining, reset, err := counter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			log.Printf("[ratelimit] check failed key=%s err=%v", key, err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if !allowed {
			retry := int64(time.Until(reset).Seconds())
			if retry < 1 {
				retry = 1
			}
			log.Printf("[ratelimit] exceeded key=%s", key)
			c.Header("Retry-After", strconv.FormatInt(retry, 10))
			appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", "Muitas requisições, tente novamente em instantes", http.StatusTooManyRequests)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
