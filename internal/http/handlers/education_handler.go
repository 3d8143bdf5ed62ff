package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-cms/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-cms/internal/http/response"
	"github.com/ignatzorin/portfolio-cms/internal/service"
)

// EducationHandler предоставляет HTTP слой для записей об образовании.
type EducationHandler struct {
	portfolio *service.PortfolioService
}

// NewEducationHandler создаёт хэндлер.
func NewEducationHandler(portfolio *service.PortfolioService) *EducationHandler {
	return &EducationHandler{portfolio: portfolio}
}

// List обрабатывает GET /admin/education.
func (h *EducationHandler) List(c *gin.Context) {
	educations, err := h.portfolio.ListEducations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, educations, "Education fetched successfully")
}

// Add обрабатывает POST /admin/education.
func (h *EducationHandler) Add(c *gin.Context) {
	var req service.EducationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	e, err := h.portfolio.AddEducation(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusCreated, e, "Education added successfully")
}

// Update обрабатывает PUT /admin/education/:id.
func (h *EducationHandler) Update(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	var req service.EducationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	e, err := h.portfolio.UpdateEducation(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, e, "Education updated successfully")
}

// Delete обрабатывает DELETE /admin/education/:id.
func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	if err := h.portfolio.DeleteEducation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, nil, "Education deleted successfully")
}
