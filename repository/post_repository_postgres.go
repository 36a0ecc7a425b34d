package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cheongyak-calculator/config"
	"cheongyak-calculator/domain"

	_ "github.com/lib/pq"
)

const (
	listPublishedQuery = `SELECT id, title, slug, excerpt, thumbnail, category, created_at, published
FROM posts WHERE published = true ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	countPublishedQuery = `SELECT COUNT(*) FROM posts WHERE published = true`
	findBySlugQuery     = `SELECT id, title, slug, excerpt, thumbnail, content, category, created_at, published
FROM posts WHERE slug = $1 AND published = true`
)

// OpenPostgres opens a pooled lib/pq connection.
func OpenPostgres(cfg config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

// PostRepositoryPostgres reads posts from the posts table.
type PostRepositoryPostgres struct {
	db *sql.DB
}

func NewPostRepositoryPostgres(db *sql.DB) *PostRepositoryPostgres {
	return &PostRepositoryPostgres{db: db}
}

func (r *PostRepositoryPostgres) ListPublished(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, listPublishedQuery, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var (
			p         domain.Post
			thumbnail sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &thumbnail,
			&p.Category, &p.CreatedAt, &p.Published); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		p.Thumbnail = nullableString(thumbnail)
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepositoryPostgres) CountPublished(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countPublishedQuery).Scan(&n); err != nil {
		return 0, fmt.Errorf("count published posts: %w", err)
	}
	return n, nil
}

func (r *PostRepositoryPostgres) FindPublishedBySlug(ctx context.Context, slug string) (domain.Post, error) {
	var (
		p         domain.Post
		thumbnail sql.NullString
	)
	err := r.db.QueryRowContext(ctx, findBySlugQuery, slug).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &thumbnail,
		&p.Content, &p.Category, &p.CreatedAt, &p.Published,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, ErrNotFound
		}
		return domain.Post{}, fmt.Errorf("find post %q: %w", slug, err)
	}
	p.Thumbnail = nullableString(thumbnail)
	return p, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
