package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"cheongyak-calculator/domain"
	"cheongyak-calculator/logger"
	"cheongyak-calculator/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockPostRepository struct {
	*repository.PostRepositoryMemory
	ListCalls  int
	FindCalls  int
	ForceError bool
}

func (m *MockPostRepository) ListPublished(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	m.ListCalls++
	if m.ForceError {
		return nil, errors.New("db down")
	}
	return m.PostRepositoryMemory.ListPublished(ctx, limit, offset)
}

func (m *MockPostRepository) CountPublished(ctx context.Context) (int, error) {
	if m.ForceError {
		return 0, errors.New("db down")
	}
	return m.PostRepositoryMemory.CountPublished(ctx)
}

func (m *MockPostRepository) FindPublishedBySlug(ctx context.Context, slug string) (domain.Post, error) {
	m.FindCalls++
	if m.ForceError {
		return domain.Post{}, errors.New("db down")
	}
	return m.PostRepositoryMemory.FindPublishedBySlug(ctx, slug)
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("redis unavailable")
}

func (failingCache) Set(context.Context, string, string, time.Duration) error {
	return errors.New("redis unavailable")
}

func newMockRepo(published int) *MockPostRepository {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mem := repository.NewPostRepositoryMemory()
	for i := 1; i <= published; i++ {
		mem.Add(domain.Post{
			ID:        fmt.Sprintf("p%d", i),
			Title:     fmt.Sprintf("글 %d", i),
			Slug:      fmt.Sprintf("post-%d", i),
			Content:   "<p>본문</p>",
			Published: true,
			CreatedAt: base.AddDate(0, 0, i),
		})
	}
	mem.Add(domain.Post{ID: "draft", Slug: "draft", Published: false, CreatedAt: base.AddDate(1, 0, 0)})
	return &MockPostRepository{PostRepositoryMemory: mem}
}

func TestBlogService_ListPublished_Pagination(t *testing.T) {
	repo := newMockRepo(13)
	svc := NewBlogService(repo, nil, time.Minute, 0, logger.NewTestLogger(t))
	ctx := context.Background()

	first, err := svc.ListPublished(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Page)
	assert.Equal(t, DefaultPostsPerPage, first.PerPage)
	assert.Equal(t, 13, first.TotalPosts)
	assert.Equal(t, 3, first.TotalPages)
	require.Len(t, first.Posts, 6)
	assert.Equal(t, "post-13", first.Posts[0].Slug)

	last, err := svc.ListPublished(ctx, 3)
	require.NoError(t, err)
	require.Len(t, last.Posts, 1)
	assert.Equal(t, "post-1", last.Posts[0].Slug)

	past, err := svc.ListPublished(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, past.Posts)
	assert.Equal(t, 3, past.TotalPages)

	clamped, err := svc.ListPublished(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, clamped.Page)
}

func TestBlogService_ListPublished_Empty(t *testing.T) {
	svc := NewBlogService(newMockRepo(0), nil, time.Minute, 6, logger.NewTestLogger(t))

	page, err := svc.ListPublished(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Zero(t, page.TotalPages)
}

func TestBlogService_CachesReads(t *testing.T) {
	repo := newMockRepo(3)
	cache := repository.NewMemoryCache()
	defer cache.Close()
	svc := NewBlogService(repo, cache, time.Minute, 6, logger.NewTestLogger(t))
	ctx := context.Background()

	a, err := svc.ListPublished(ctx, 1)
	require.NoError(t, err)
	b, err := svc.ListPublished(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, repo.ListCalls)

	_, err = svc.GetPublished(ctx, "post-2")
	require.NoError(t, err)
	post, err := svc.GetPublished(ctx, "post-2")
	require.NoError(t, err)
	assert.Equal(t, "p2", post.ID)
	assert.Equal(t, 1, repo.FindCalls)
}

func TestBlogService_CacheFailureFallsThrough(t *testing.T) {
	repo := newMockRepo(2)
	svc := NewBlogService(repo, failingCache{}, time.Minute, 6, logger.NewTestLogger(t))

	post, err := svc.GetPublished(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Equal(t, "p1", post.ID)

	page, err := svc.ListPublished(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 2)
}

func TestBlogService_GetPublished_NotFound(t *testing.T) {
	svc := NewBlogService(newMockRepo(2), nil, time.Minute, 6, logger.NewTestLogger(t))
	ctx := context.Background()

	for _, slug := range []string{"missing", "draft", "", "   "} {
		_, err := svc.GetPublished(ctx, slug)
		assert.ErrorIs(t, err, ErrPostNotFound, "slug=%q", slug)
	}
}

func TestBlogService_RepositoryError(t *testing.T) {
	repo := newMockRepo(2)
	repo.ForceError = true
	svc := NewBlogService(repo, nil, time.Minute, 6, logger.NewTestLogger(t))

	_, err := svc.GetPublished(context.Background(), "post-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPostNotFound)

	_, err = svc.ListPublished(context.Background(), 1)
	assert.Error(t, err)
}

func TestBlogService_ListPublished_FarPastEnd(t *testing.T) {
	repo := newMockRepo(1)
	cache := repository.NewMemoryCache()
	defer cache.Close()
	svc := NewBlogService(repo, cache, time.Minute, 6, logger.NewTestLogger(t))
	ctx := context.Background()

	for _, page := range []int{2, 1000, math.MaxInt/6 + 2, math.MaxInt} {
		result, err := svc.ListPublished(ctx, page)
		require.NoError(t, err, "page=%d", page)
		assert.Empty(t, result.Posts, "page=%d", page)
		assert.Equal(t, page, result.Page)
		assert.Equal(t, 1, result.TotalPosts)
		assert.Equal(t, 1, result.TotalPages)
	}

	assert.Zero(t, repo.ListCalls, "pages past the end never reach the store")
	assert.Zero(t, cache.Len(), "pages past the end are not cached")
}

func TestBlogService_CacheFailureLogsError(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	svc := NewBlogService(newMockRepo(1), failingCache{}, time.Minute, 6, logger.NewZapAdapter(zap.New(core)))

	_, err := svc.GetPublished(context.Background(), "post-1")
	require.NoError(t, err)

	entries := logs.FilterMessage("post cache read failed").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "redis unavailable", ctx["error"])
	assert.Equal(t, "post:post-1", ctx["key"])
	assert.Equal(t, 1, logs.FilterMessage("post cache write failed").Len())
}
