package repository

import (
	"context"
	"sort"
	"sync"

	"cheongyak-calculator/domain"
)

// PostRepositoryMemory is an in-memory implementation of PostRepository.
type PostRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.Post
}

// NewPostRepositoryMemory creates a repository holding the given posts.
func NewPostRepositoryMemory(posts ...domain.Post) *PostRepositoryMemory {
	r := &PostRepositoryMemory{}
	for _, p := range posts {
		r.Add(p)
	}
	return r
}

// Add stores a post, keeping the slice ordered newest first.
func (r *PostRepositoryMemory) Add(post domain.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, post)
	sort.SliceStable(r.data, func(i, j int) bool {
		return r.data[i].CreatedAt.After(r.data[j].CreatedAt)
	})
}

func (r *PostRepositoryMemory) ListPublished(_ context.Context, limit, offset int) ([]domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := []domain.Post{}
	skipped := 0
	for _, p := range r.data {
		if !p.Published {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if len(posts) == limit {
			break
		}
		p.Content = ""
		posts = append(posts, p)
	}
	return posts, nil
}

func (r *PostRepositoryMemory) CountPublished(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, p := range r.data {
		if p.Published {
			n++
		}
	}
	return n, nil
}

func (r *PostRepositoryMemory) FindPublishedBySlug(_ context.Context, slug string) (domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.data {
		if p.Published && p.Slug == slug {
			return p, nil
		}
	}
	return domain.Post{}, ErrNotFound
}
