package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ItaloOlivier/shopcrypto/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Rate Limit Tiers
const (
	// Auth and order submission (Strict)
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// General API traffic (Default)
	limitGeneral = rate.Limit(10)
	burstGeneral = 20

	// Storefront browsing: catalog and category listings
	limitBrowse = rate.Limit(20)
	burstBrowse = 40
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

// init starts the background cleanup routine.
func init() {
	go cleanupVisitors()
}

// getVisitor retrieves or creates a rate limiter for the given bucket key.
func getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes old entries from the visitors map to prevent memory leaks.
func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		mu.Lock()
		for key, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, key)
			}
		}
		mu.Unlock()
	}
}

// RateLimit checks the request against the per-visitor limiter for its tier.
func RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Determine Rate Tier
		limit, burst, tier := resolveRateTier(c.Request.URL.Path)

		// 2. Determine Identity Key: user ID when authenticated, IP otherwise
		var identity string
		if userID, ok := utils.GetUserIDFromContext(c.Request.Context()); ok {
			identity = "user:" + userID
		} else {
			identity = "ip:" + c.ClientIP()
		}

		// 3. Combine for the final bucket key so the same visitor has
		// separate quotas for strict vs general actions.
		key := fmt.Sprintf("%s:%s", identity, tier)

		if !getVisitor(key, limit, burst).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				gin.H{"error": http.StatusText(http.StatusTooManyRequests)})
			return
		}

		c.Next()
	}
}

// resolveRateTier determines which rate limit policy applies to the path.
func resolveRateTier(path string) (rate.Limit, int, string) {
	switch {
	case strings.HasPrefix(path, "/api/auth/"):
		return limitStrict, burstStrict, "strict"
	case path == "/api/orders" || strings.HasPrefix(path, "/api/orders/"):
		return limitStrict, burstStrict, "strict"
	case strings.HasPrefix(path, "/api/products") || strings.HasPrefix(path, "/api/categories"):
		return limitBrowse, burstBrowse, "browse"
	default:
		return limitGeneral, burstGeneral, "general"
	}
}
