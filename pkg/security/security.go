package security

import (
	"context"
	"net/http"
	"sync"
	"time"

	"trivia_backend/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CORS 白名单中包含 "*" 时允许任意 Origin
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", util.RequestIDHeader},
		ExposeHeaders: []string{util.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range allowedOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			break
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = allowedOrigins
	}

	return cors.New(cfg)
}

// secureHeaders 每个响应都带的安全头
var secureHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "DENY",
	"Referrer-Policy":        "no-referrer",
}

// Secure 写入安全响应头，HTTPS 请求额外带 HSTS
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		for k, v := range secureHeaders {
			h.Set(k, v)
		}
		if c.Request.TLS != nil {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Next()
	}
}

// RateLimiter 按客户端 IP 限流，window 内最多 maxRequests 次（令牌桶，允许突发 maxRequests）。
// 空闲的 IP 由后台协程定期清理，ctx 结束后协程退出。
func RateLimiter(ctx context.Context, maxRequests int, window time.Duration) gin.HandlerFunc {
	if maxRequests <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiters := newIPLimiters(rate.Every(window/time.Duration(maxRequests)), maxRequests)
	go limiters.sweep(ctx, time.Minute, idleTTL(window))

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			util.Abort(c, http.StatusTooManyRequests, util.MsgTooManyRequests)
			return
		}
		c.Next()
	}
}

// idleTTL 超过该时长没有请求的 IP 会被清理，至少 1 分钟
func idleTTL(window time.Duration) time.Duration {
	if ttl := 3 * window; ttl > time.Minute {
		return ttl
	}
	return time.Minute
}

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipLimiters struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	entries map[string]*ipEntry
	now     func() time.Time
}

func newIPLimiters(limit rate.Limit, burst int) *ipLimiters {
	return &ipLimiters{
		limit:   limit,
		burst:   burst,
		entries: make(map[string]*ipEntry),
		now:     time.Now,
	}
}

func (l *ipLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[ip]
	if !ok {
		e = &ipEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[ip] = e
	}
	e.lastSeen = l.now()
	return e.limiter
}

// evictIdle 删除 ttl 内没有请求的 IP，返回删除数量
func (l *ipLimiters) evictIdle(ttl time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-ttl)
	removed := 0
	for ip, e := range l.entries {
		if e.lastSeen.Before(cutoff) {
			delete(l.entries, ip)
			removed++
		}
	}
	return removed
}

func (l *ipLimiters) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *ipLimiters) sweep(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.evictIdle(ttl)
		}
	}
}
