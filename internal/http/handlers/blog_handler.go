package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-cms/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-cms/internal/http/response"
	"github.com/ignatzorin/portfolio-cms/internal/service"
)

// BlogHandler предоставляет HTTP слой для записей блога и меток.
type BlogHandler struct {
	blogs         *service.BlogService
	publicBaseURL string
}

// NewBlogHandler создаёт хэндлер. publicBaseURL используется для
// абсолютных ссылок пагинации и навигации.
func NewBlogHandler(blogs *service.BlogService, publicBaseURL string) *BlogHandler {
	return &BlogHandler{blogs: blogs, publicBaseURL: publicBaseURL}
}

// PublicList обрабатывает GET /public/blogs: только видимые записи,
// постранично, со ссылками на соседние страницы.
func (h *BlogHandler) PublicList(c *gin.Context) {
	page, limit := common.GetPagination(c)

	blogs, total, err := h.blogs.List(c.Request.Context(), page, limit, false)
	if err != nil {
		response.Error(c, err)
		return
	}

	baseURL := common.RequestBaseURL(c, h.publicBaseURL)
	pagination := response.NewPagination(baseURL, page, limit, total)
	response.Paginated(c, blogs, "Blogs fetched successfully", pagination)
}

// PublicGetBySlug обрабатывает GET /public/blogs/:slug: видимая запись
// вместе со ссылками на хронологических соседей.
func (h *BlogHandler) PublicGetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	b, neighbors, err := h.blogs.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Ссылки на соседей строятся на том же маршруте, что и текущая запись.
	baseURL := common.RequestBaseURL(c, h.publicBaseURL)
	dir := strings.TrimSuffix(baseURL, "/"+slug)

	links := response.AdjacentLinks{}
	if neighbors.NextSlug != nil {
		next := dir + "/" + *neighbors.NextSlug
		links.Next = &next
		links.HasNext = true
	}
	if neighbors.PreviousSlug != nil {
		prev := dir + "/" + *neighbors.PreviousSlug
		links.Previous = &prev
		links.HasPrevious = true
	}

	response.WithLinks(c, b, "Blog fetched successfully", nil, links)
}

// AdminList обрабатывает GET /admin/blogs/blog: все записи, включая скрытые.
func (h *BlogHandler) AdminList(c *gin.Context) {
	page, limit := common.GetPagination(c)

	blogs, total, err := h.blogs.List(c.Request.Context(), page, limit, true)
	if err != nil {
		response.Error(c, err)
		return
	}

	baseURL := common.RequestBaseURL(c, h.publicBaseURL)
	pagination := response.NewPagination(baseURL, page, limit, total)
	response.Paginated(c, blogs, "Blogs fetched successfully", pagination)
}

// Get обрабатывает GET /admin/blogs/blog/:id.
func (h *BlogHandler) Get(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	b, err := h.blogs.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, b, "Blog fetched successfully")
}

// Create обрабатывает POST /admin/blogs/blog.
func (h *BlogHandler) Create(c *gin.Context) {
	var req service.BlogInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	b, err := h.blogs.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, b, "Blog created successfully")
}

// Update обрабатывает PUT /admin/blogs/blog/:id.
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	var req service.BlogUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	b, err := h.blogs.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, b, "Blog updated successfully")
}

// Hide обрабатывает PUT /admin/blogs/blog/:id/hide.
func (h *BlogHandler) Hide(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	if err := h.blogs.Hide(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, nil, "Blog hidden successfully")
}

// Unhide обрабатывает PUT /admin/blogs/blog/:id/unhide.
func (h *BlogHandler) Unhide(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	if err := h.blogs.Unhide(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, nil, "Blog unhidden successfully")
}

// Delete обрабатывает DELETE /admin/blogs/blog/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	if err := h.blogs.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, nil, "Blog deleted successfully")
}
