package middleware

import (
	"sync"

	"personal-crm-backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// AuthRateLimit throttles credential endpoints per client IP.
func AuthRateLimit(r rate.Limit, burst int) fiber.Handler {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	return func(c *fiber.Ctx) error {
		ip := c.IP()

		mu.Lock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(r, burst)
			limiters[ip] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests, "Too many requests, slow down", "RATE_LIMITED")
		}
		return c.Next()
	}
}
