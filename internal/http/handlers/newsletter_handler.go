package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-cms/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-cms/internal/http/response"
	"github.com/ignatzorin/portfolio-cms/internal/service"
)

// NewsletterHandler предоставляет HTTP слой для подписок на рассылку.
type NewsletterHandler struct {
	newsletters   *service.NewsletterService
	publicBaseURL string
}

// NewNewsletterHandler создаёт хэндлер.
func NewNewsletterHandler(newsletters *service.NewsletterService, publicBaseURL string) *NewsletterHandler {
	return &NewsletterHandler{newsletters: newsletters, publicBaseURL: publicBaseURL}
}

// Subscribe обрабатывает POST /public/newsletter.
// Повторная подписка того же email не считается ошибкой.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email is required")
		return
	}

	n, created, err := h.newsletters.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Respond(c, status, n, "Email added successfully")
}

// List обрабатывает GET /admin/newsletter: страница подписок.
func (h *NewsletterHandler) List(c *gin.Context) {
	page, limit := common.GetPagination(c)

	items, total, err := h.newsletters.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	baseURL := common.RequestBaseURL(c, h.publicBaseURL)
	pagination := response.NewPagination(baseURL, page, limit, total)
	response.Paginated(c, items, "Emails fetched successfully", pagination)
}

// Delete обрабатывает DELETE /admin/newsletter/:id.
func (h *NewsletterHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	if err := h.newsletters.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, nil, "Email deleted successfully")
}
