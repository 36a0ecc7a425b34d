package http

import (
	"errors"
	"net/http"
	"strconv"

	"cheongyak-calculator/logger"
	"cheongyak-calculator/service"
)

const postsPath = "/api/posts"

type BlogHandler struct {
	service *service.BlogService
	logger  logger.Logger
}

func NewBlogHandler(blogService *service.BlogService, log logger.Logger) *BlogHandler {
	return &BlogHandler{
		service: blogService,
		logger:  log.WithFields(map[string]interface{}{"handler": "blog"}),
	}
}

// ListPosts serves GET /api/posts?page=N. A missing or malformed page is
// page 1.
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeStatus(w, h.logger, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		return
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		page = 1
	}

	result, err := h.service.ListPublished(r.Context(), page)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// GetPost serves GET /api/posts/{slug}. Unknown slugs are sent back to the
// list.
func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeStatus(w, h.logger, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		return
	}

	slug := r.PathValue("slug")
	post, err := h.service.GetPublished(r.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			h.logger.Debug("post not found, redirecting to list", map[string]interface{}{"slug": slug})
			http.Redirect(w, r, postsPath, http.StatusSeeOther)
			return
		}
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, post)
}
