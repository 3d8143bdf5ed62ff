package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-cms/internal/http/response"
	"github.com/ignatzorin/portfolio-cms/internal/service"
)

// AccessHandler предоставляет HTTP слой для входа в админ-панель.
type AccessHandler struct {
	access *service.AccessService
}

// NewAccessHandler создаёт хэндлер.
func NewAccessHandler(access *service.AccessService) *AccessHandler {
	return &AccessHandler{access: access}
}

// Login обрабатывает POST /admin/access.
func (h *AccessHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	token, err := h.access.Login(req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Respond(c, http.StatusOK, gin.H{"access_token": token}, "Access granted")
}
