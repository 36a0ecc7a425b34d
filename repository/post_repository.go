package repository

import (
	"context"
	"errors"

	"cheongyak-calculator/domain"
)

var ErrNotFound = errors.New("not found")

// PostRepository is the read side of the content store. Only published
// posts are ever returned.
type PostRepository interface {
	// ListPublished returns published posts newest first, without content.
	ListPublished(ctx context.Context, limit, offset int) ([]domain.Post, error)
	CountPublished(ctx context.Context) (int, error)
	// FindPublishedBySlug returns ErrNotFound when no published post matches.
	FindPublishedBySlug(ctx context.Context, slug string) (domain.Post, error)
}
