package http

import (
	"net"
	"net/http"
	"strconv"

	"cheongyak-calculator/logger"
	"cheongyak-calculator/metrics"
)

func RateLimitMiddleware(
	limiter *RateLimiter,
	route string,
	log logger.Logger,
	next http.Handler,
) http.Handler {

	retryAfter := strconv.Itoa(int(limiter.LimitFor(route).Refill.Seconds()))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ip := clientIP(r)

		if !limiter.Allow(route, ip) {
			metrics.RateLimitedRequests.WithLabelValues(route).Inc()
			log.Debug("rate limited", map[string]interface{}{
				"requestId": RequestID(r.Context()),
				"route":     route,
				"remote":    ip,
			})
			w.Header().Set("Retry-After", retryAfter)
			writeStatus(w, log, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
