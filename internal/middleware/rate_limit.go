// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/burim/garant-backend/internal/config"
	"github.com/burim/garant-backend/internal/i18n"
	"github.com/burim/garant-backend/internal/utils"
)

const clientIdleTTL = 3 * time.Minute

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client IP. Buckets for IPs that
// stay quiet longer than clientIdleTTL are evicted by a background sweep.
type RateLimiter struct {
	mtx     sync.Mutex
	clients map[string]*rateLimitClient
	limit   rate.Limit
	burst   int
}

func NewRateLimiter(limit rate.Limit, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*rateLimitClient),
		limit:   limit,
		burst:   burst,
	}
	go rl.evictIdle()
	return rl
}

func (rl *RateLimiter) evictIdle() {
	for range time.Tick(time.Minute) {
		rl.mtx.Lock()
		for ip, client := range rl.clients {
			if time.Since(client.lastSeen) > clientIdleTTL {
				delete(rl.clients, ip)
			}
		}
		rl.mtx.Unlock()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	client, ok := rl.clients[ip]
	if !ok {
		client = &rateLimitClient{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = client
	}
	client.lastSeen = time.Now()
	return client.limiter.Allow()
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			lang := utils.GetLangFromContext(c)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": i18n.T(lang, i18n.KeyRateLimitExceeded),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimits bundles the per-surface limiters. Rates and bursts come from
// configuration, like every other tunable in this service.
type RateLimits struct {
	General gin.HandlerFunc
	Auth    gin.HandlerFunc
	Upload  gin.HandlerFunc
}

func NewRateLimits(cfg config.RateLimitConfig) *RateLimits {
	return &RateLimits{
		General: NewRateLimiter(perSecond(cfg.GeneralPerSecond), atLeastOne(cfg.GeneralBurst)).Middleware(),
		Auth:    NewRateLimiter(perMinute(cfg.AuthPerMinute), atLeastOne(cfg.AuthBurst)).Middleware(),
		Upload:  NewRateLimiter(perMinute(cfg.UploadPerMinute), atLeastOne(cfg.UploadBurst)).Middleware(),
	}
}

func perSecond(n int) rate.Limit {
	return rate.Every(time.Second / time.Duration(atLeastOne(n)))
}

func perMinute(n int) rate.Limit {
	return rate.Every(time.Minute / time.Duration(atLeastOne(n)))
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
