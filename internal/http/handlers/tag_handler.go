package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-cms/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-cms/internal/http/response"
	"github.com/ignatzorin/portfolio-cms/internal/service"
)

// TagHandler предоставляет HTTP слой для меток блога.
type TagHandler struct {
	blogs *service.BlogService
}

// NewTagHandler создаёт хэндлер.
func NewTagHandler(blogs *service.BlogService) *TagHandler {
	return &TagHandler{blogs: blogs}
}

// List обрабатывает GET /admin/blogs/tags.
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.blogs.ListTags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, tags, "Tags fetched successfully")
}

// Create обрабатывает POST /admin/blogs/tags.
func (h *TagHandler) Create(c *gin.Context) {
	var req service.TagInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	t, err := h.blogs.CreateTag(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusCreated, t, "Tag created successfully")
}

// Update обрабатывает PUT /admin/blogs/tags/:id.
func (h *TagHandler) Update(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	var req service.TagInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	t, err := h.blogs.UpdateTag(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, t, "Tag updated successfully")
}

// Delete обрабатывает DELETE /admin/blogs/tags/:id.
func (h *TagHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	if err := h.blogs.DeleteTag(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, nil, "Tag deleted successfully")
}
