package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-cms/internal/http/response"
	"github.com/ignatzorin/portfolio-cms/internal/service"
)

// AuthMiddleware проверяет админский JWT. Учётные данные из токена
// повторно сверяются с конфигурацией: смена пароля мгновенно
// отзывает все ранее выданные токены.
func AuthMiddleware(access *service.AccessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			response.Unauthorized(c, "Unauthorized request")
			c.Abort()
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		if err := access.VerifyToken(raw); err != nil {
			response.Unauthorized(c, "Unauthorized request")
			c.Abort()
			return
		}

		c.Next()
	}
}
