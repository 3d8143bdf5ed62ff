package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-cms/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-cms/internal/http/response"
	"github.com/ignatzorin/portfolio-cms/internal/service"
)

// ProjectHandler предоставляет HTTP слой для проектов.
type ProjectHandler struct {
	portfolio *service.PortfolioService
}

// NewProjectHandler создаёт хэндлер.
func NewProjectHandler(portfolio *service.PortfolioService) *ProjectHandler {
	return &ProjectHandler{portfolio: portfolio}
}

// List обрабатывает GET /admin/projects.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.portfolio.ListProjects(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, projects, "Projects fetched successfully")
}

// Get обрабатывает GET /admin/projects/:id.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	project, err := h.portfolio.GetProject(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, project, "Project fetched successfully")
}

// Add обрабатывает POST /admin/projects.
func (h *ProjectHandler) Add(c *gin.Context) {
	var req service.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	project, err := h.portfolio.AddProject(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusCreated, project, "Project added successfully")
}

// Update обрабатывает PUT /admin/projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	var req service.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	project, err := h.portfolio.UpdateProject(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, project, "Project updated successfully")
}

// Delete обрабатывает DELETE /admin/projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	if err := h.portfolio.DeleteProject(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, nil, "Project deleted successfully")
}
