package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"cheongyak-calculator/domain"
	"cheongyak-calculator/logger"
	"cheongyak-calculator/metrics"
	"cheongyak-calculator/repository"
)

type BlogService struct {
	repo     repository.PostRepository
	cache    repository.CacheRepository
	cacheTTL time.Duration
	perPage  int
	logger   logger.Logger
}

// NewBlogService creates a BlogService. perPage <= 0 falls back to
// DefaultPostsPerPage.
func NewBlogService(
	repo repository.PostRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	perPage int,
	log logger.Logger,
) *BlogService {
	if perPage <= 0 {
		perPage = DefaultPostsPerPage
	}
	return &BlogService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		perPage:  perPage,
		logger:   log.WithFields(map[string]interface{}{"component": "blog"}),
	}
}

// ListPublished returns one page of published posts, newest first. Pages
// below 1 are treated as 1; pages past the end are empty.
func (s *BlogService) ListPublished(ctx context.Context, page int) (domain.PostPage, error) {
	if page < 1 {
		page = 1
	}

	key := fmt.Sprintf("posts:page:%d:%d", s.perPage, page)
	var cached domain.PostPage
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	total, err := s.repo.CountPublished(ctx)
	if err != nil {
		return domain.PostPage{}, fmt.Errorf("count posts: %w", err)
	}

	result := domain.PostPage{
		Posts:      []domain.Post{},
		Page:       page,
		PerPage:    s.perPage,
		TotalPosts: total,
		TotalPages: (total + s.perPage - 1) / s.perPage,
	}

	// Past the end: no store read and no cache entry.
	if page > result.TotalPages {
		return result, nil
	}

	posts, err := s.repo.ListPublished(ctx, s.perPage, (page-1)*s.perPage)
	if err != nil {
		return domain.PostPage{}, fmt.Errorf("list posts: %w", err)
	}
	result.Posts = posts

	s.cacheSet(ctx, key, result)
	return result, nil
}

// GetPublished returns the published post with the given slug, or
// ErrPostNotFound.
func (s *BlogService) GetPublished(ctx context.Context, slug string) (domain.Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return domain.Post{}, ErrPostNotFound
	}

	key := "post:" + slug
	var cached domain.Post
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	post, err := s.repo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Post{}, fmt.Errorf("%w: %s", ErrPostNotFound, slug)
		}
		return domain.Post{}, fmt.Errorf("get post: %w", err)
	}

	s.cacheSet(ctx, key, post)
	return post, nil
}

// Cache failures only cost a round trip to the store; they are logged and
// otherwise ignored.
func (s *BlogService) cacheGet(ctx context.Context, key string, dst interface{}) bool {
	if s.cache == nil {
		return false
	}
	val, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.WithError(err).Warn("post cache read failed", map[string]interface{}{"key": key})
		metrics.PostCacheLookups.WithLabelValues("error").Inc()
		return false
	}
	if !ok {
		metrics.PostCacheLookups.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal([]byte(val), dst); err != nil {
		s.logger.WithError(err).Warn("post cache entry unreadable", map[string]interface{}{"key": key})
		metrics.PostCacheLookups.WithLabelValues("error").Inc()
		return false
	}
	metrics.PostCacheLookups.WithLabelValues("hit").Inc()
	return true
}

func (s *BlogService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
		s.logger.WithError(err).Warn("post cache write failed", map[string]interface{}{"key": key})
	}
}
