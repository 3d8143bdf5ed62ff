package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrInvalidUUID возвращается при неразбираемом UUID в параметре пути.
var ErrInvalidUUID = errors.New("неверный формат UUID")

// ParseUUIDParam разбирает UUID из параметра маршрута.
func ParseUUIDParam(c *gin.Context, paramName string) (uuid.UUID, error) {
	param := c.Param(paramName)
	if param == "" {
		return uuid.Nil, fmt.Errorf("параметр %s отсутствует", paramName)
	}

	parsed, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return parsed, nil
}

// ParseIntQuery читает целочисленный query-параметр с запасным значением.
func ParseIntQuery(c *gin.Context, key string, fallback int) int {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetPagination читает page и limit из query-параметров.
// По умолчанию первая страница по 10 элементов, limit ограничен сотней.
func GetPagination(c *gin.Context) (page, limit int) {
	page = ParseIntQuery(c, "page", 1)
	limit = ParseIntQuery(c, "limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return
}

// RequestBaseURL строит абсолютный URL текущего маршрута без
// query-параметров. publicBaseURL из конфигурации имеет приоритет —
// за обратным прокси scheme и host запроса недостоверны.
func RequestBaseURL(c *gin.Context, publicBaseURL string) string {
	path := c.Request.URL.Path

	if publicBaseURL != "" {
		return strings.TrimSuffix(publicBaseURL, "/") + path
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, path)
}
