package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listColumns = []string{"id", "title", "slug", "excerpt", "thumbnail", "category", "created_at", "published"}

func TestPostRepositoryPostgres_ListPublished(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	newer := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	older := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(listColumns).
		AddRow("p2", "신혼부부 특공", "newlywed", "요약2", "https://img/2.png", "청약팁", newer, true).
		AddRow("p1", "가점 계산법", "how-to", "요약1", nil, "가이드", older, true)

	mock.ExpectQuery(regexp.QuoteMeta(listPublishedQuery)).
		WithArgs(6, 0).
		WillReturnRows(rows)

	repo := NewPostRepositoryPostgres(db)
	posts, err := repo.ListPublished(context.Background(), 6, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "newlywed", posts[0].Slug)
	require.NotNil(t, posts[0].Thumbnail)
	assert.Equal(t, "https://img/2.png", *posts[0].Thumbnail)
	assert.Nil(t, posts[1].Thumbnail)
	assert.Equal(t, older, posts[1].CreatedAt)
	assert.Empty(t, posts[1].Content)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryPostgres_ListPublished_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(listPublishedQuery)).
		WithArgs(6, 6).
		WillReturnError(errors.New("connection reset"))

	_, err = NewPostRepositoryPostgres(db).ListPublished(context.Background(), 6, 6)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list published posts")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryPostgres_CountPublished(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(countPublishedQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(13))

	n, err := NewPostRepositoryPostgres(db).CountPublished(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 13, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryPostgres_FindPublishedBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(findBySlugQuery)).
		WithArgs("how-to").
		WillReturnRows(sqlmock.NewRows(append(listColumns[:5:5], "content", "category", "created_at", "published")).
			AddRow("p1", "가점 계산법", "how-to", "요약1", nil, "<p>본문</p>", "가이드", created, true))

	post, err := NewPostRepositoryPostgres(db).FindPublishedBySlug(context.Background(), "how-to")
	require.NoError(t, err)
	assert.Equal(t, "p1", post.ID)
	assert.Equal(t, "<p>본문</p>", post.Content)
	assert.True(t, post.Published)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryPostgres_FindPublishedBySlug_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(findBySlugQuery)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = NewPostRepositoryPostgres(db).FindPublishedBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
