package domain

import "time"

// Post is an article record from the content store.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Thumbnail *string   `json:"thumbnail"`
	Content   string    `json:"content,omitempty"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	Published bool      `json:"published"`
}

type PostPage struct {
	Posts      []Post `json:"posts"`
	Page       int    `json:"page"`
	PerPage    int    `json:"perPage"`
	TotalPosts int    `json:"totalPosts"`
	TotalPages int    `json:"totalPages"`
}
