package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-cms/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-cms/internal/http/response"
	"github.com/ignatzorin/portfolio-cms/internal/service"
)

// SkillHandler предоставляет HTTP слой для навыков.
type SkillHandler struct {
	portfolio *service.PortfolioService
}

// NewSkillHandler создаёт хэндлер.
func NewSkillHandler(portfolio *service.PortfolioService) *SkillHandler {
	return &SkillHandler{portfolio: portfolio}
}

// List обрабатывает GET /admin/skills.
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.portfolio.ListSkills(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, skills, "Skills fetched successfully")
}

// Add обрабатывает POST /admin/skills.
func (h *SkillHandler) Add(c *gin.Context) {
	var req service.SkillInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	skill, err := h.portfolio.AddSkill(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusCreated, skill, "Skill added successfully")
}

// Update обрабатывает PUT /admin/skills/:id.
func (h *SkillHandler) Update(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	var req service.SkillInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	skill, err := h.portfolio.UpdateSkill(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, skill, "Skill updated successfully")
}

// Delete обрабатывает DELETE /admin/skills/:id.
func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	if err := h.portfolio.DeleteSkill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, nil, "Skill deleted successfully")
}
