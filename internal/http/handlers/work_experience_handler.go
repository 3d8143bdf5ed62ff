package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-cms/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-cms/internal/http/response"
	"github.com/ignatzorin/portfolio-cms/internal/service"
)

// WorkExperienceHandler предоставляет HTTP слой для записей об опыте работы.
type WorkExperienceHandler struct {
	portfolio *service.PortfolioService
}

// NewWorkExperienceHandler создаёт хэндлер.
func NewWorkExperienceHandler(portfolio *service.PortfolioService) *WorkExperienceHandler {
	return &WorkExperienceHandler{portfolio: portfolio}
}

// List обрабатывает GET /admin/work-experience.
func (h *WorkExperienceHandler) List(c *gin.Context) {
	experiences, err := h.portfolio.ListWorkExperiences(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, experiences, "Work experience fetched successfully")
}

// Add обрабатывает POST /admin/work-experience.
func (h *WorkExperienceHandler) Add(c *gin.Context) {
	var req service.WorkExperienceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	w, err := h.portfolio.AddWorkExperience(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusCreated, w, "Work experience added successfully")
}

// Update обрабатывает PUT /admin/work-experience/:id.
func (h *WorkExperienceHandler) Update(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	var req service.WorkExperienceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	w, err := h.portfolio.UpdateWorkExperience(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, w, "Work experience updated successfully")
}

// Delete обрабатывает DELETE /admin/work-experience/:id.
func (h *WorkExperienceHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	if err := h.portfolio.DeleteWorkExperience(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, nil, "Work experience deleted successfully")
}
