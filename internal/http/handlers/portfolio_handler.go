package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-cms/internal/http/response"
	"github.com/ignatzorin/portfolio-cms/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-cms/internal/service"
)

// PortfolioHandler предоставляет HTTP слой для портфолио.
type PortfolioHandler struct {
	portfolio *service.PortfolioService
}

// NewPortfolioHandler создаёт хэндлер.
func NewPortfolioHandler(portfolio *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

// GetPublic обрабатывает GET /public/portfolio: портфолио со всеми
// дочерними коллекциями. Отсутствие портфолио — это 200 с пустым
// списком, исходный контракт API не отдаёт здесь 404.
func (h *PortfolioHandler) GetPublic(c *gin.Context) {
	aggregates, err := h.portfolio.GetAggregates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Portfolio fetched successfully"
	if len(aggregates) == 0 {
		message = "Portfolio not found"
	}
	response.Respond(c, http.StatusOK, aggregates, message)
}

// GetInfo обрабатывает GET /admin/portfolio: портфолио без дочерних
// коллекций.
func (h *PortfolioHandler) GetInfo(c *gin.Context) {
	portfolios, err := h.portfolio.GetInfo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Portfolio fetched successfully"
	if len(portfolios) == 0 {
		message = "Portfolio not found"
	}
	response.Respond(c, http.StatusOK, portfolios, message)
}

// Create обрабатывает POST /admin/portfolio.
func (h *PortfolioHandler) Create(c *gin.Context) {
	var req service.PortfolioInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	p, err := h.portfolio.Create(c.Request.Context(), req)
	if err != nil {
		// Повторное создание возвращает существующую запись в теле.
		if errors.Is(err, apperror.ErrPortfolioExists) {
			response.Respond(c, http.StatusBadRequest, p, "Portfolio Already Available")
			return
		}
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusCreated, p, "Portfolio created successfully")
}

// Update обрабатывает PUT /admin/portfolio.
func (h *PortfolioHandler) Update(c *gin.Context) {
	var req service.PortfolioInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	p, err := h.portfolio.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, p, "Portfolio updated successfully")
}

// Delete обрабатывает DELETE /admin/portfolio. Дочерние сущности
// удаляются каскадом.
func (h *PortfolioHandler) Delete(c *gin.Context) {
	if err := h.portfolio.Delete(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, nil, "Portfolio deleted successfully")
}
