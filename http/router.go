package http

import (
	"net/http"

	"cheongyak-calculator/logger"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ScoreRoute = "/api/score"
	ShareRoute = "/api/score/share"
)

// Router wires handlers onto a mux. Score endpoints are rate limited, each
// route with its own buckets.
type Router struct {
	Score       *ScoreHandler
	Blog        *BlogHandler
	RateLimiter *RateLimiter
	Logger      logger.Logger
}

func (rt Router) Handler() http.Handler {
	mux := http.NewServeMux()

	route := func(pattern string, h http.Handler) {
		mux.Handle(pattern, AccessLogMiddleware(rt.Logger, pattern, h))
	}
	limited := func(pattern string, h http.HandlerFunc) {
		route(pattern, RateLimitMiddleware(rt.RateLimiter, pattern, rt.Logger, h))
	}

	limited(ScoreRoute, rt.Score.Calculate)
	limited(ShareRoute, rt.Score.Share)
	route(postsPath, http.HandlerFunc(rt.Blog.ListPosts))
	route(postsPath+"/{slug}", http.HandlerFunc(rt.Blog.GetPost))
	route("/healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, rt.Logger, http.StatusOK, map[string]string{"status": "ok"})
	}))
	mux.Handle("/metrics", promhttp.Handler())

	return RequestIDMiddleware(mux)
}
