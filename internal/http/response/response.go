package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-cms/internal/logger"
	"github.com/ignatzorin/portfolio-cms/internal/pkg/apperror"
)

// Envelope — единый формат успешного ответа API.
// success вычисляется из статуса: всё ниже 400 считается успехом.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Links      interface{} `json:"links,omitempty"`
}

// ErrorEnvelope — единый формат ошибки.
type ErrorEnvelope struct {
	StatusCode int          `json:"statusCode"`
	Data       interface{}  `json:"data"`
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	Errors     []ErrorField `json:"errors"`
}

// ErrorField описывает ошибку конкретного поля запроса.
type ErrorField struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Pagination несёт метаданные постраничного списка вместе со ссылками.
type Pagination struct {
	CurrentPage     int        `json:"currentPage"`
	TotalPages      int        `json:"totalPages"`
	TotalItems      int        `json:"totalItems"`
	ItemsPerPage    int        `json:"itemsPerPage"`
	HasNextPage     bool       `json:"hasNextPage"`
	HasPreviousPage bool       `json:"hasPreviousPage"`
	Links           *PageLinks `json:"links,omitempty"`
}

// PageLinks — абсолютные ссылки текущего маршрута с подставленным page.
// На границах prev/next равны null.
type PageLinks struct {
	Self  string  `json:"self"`
	First string  `json:"first"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
	Last  string  `json:"last"`
}

// AdjacentLinks — навигация между соседними записями блога по slug.
type AdjacentLinks struct {
	Next        *string `json:"next"`
	Previous    *string `json:"previous"`
	HasNext     bool    `json:"hasNext"`
	HasPrevious bool    `json:"hasPrevious"`
}

// Respond отправляет данные в стандартном конверте.
func Respond(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, Envelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < http.StatusBadRequest,
	})
}

// Paginated отправляет страницу списка с метаданными пагинации.
func Paginated(c *gin.Context, data interface{}, message string, pagination *Pagination) {
	c.JSON(http.StatusOK, Envelope{
		StatusCode: http.StatusOK,
		Data:       data,
		Message:    message,
		Success:    true,
		Pagination: pagination,
	})
}

// WithLinks отправляет данные вместе с пагинацией и навигационными ссылками.
func WithLinks(c *gin.Context, data interface{}, message string, pagination *Pagination, links interface{}) {
	c.JSON(http.StatusOK, Envelope{
		StatusCode: http.StatusOK,
		Data:       data,
		Message:    message,
		Success:    true,
		Pagination: pagination,
		Links:      links,
	})
}

// Error переводит типизированную ошибку в конверт ошибки.
// Неизвестные ошибки маскируются под generic 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		writeError(c, appErr.HTTPStatus, appErr.Message, nil)
		return
	}

	if logger.Log != nil {
		logger.Log.WithFields(map[string]interface{}{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Error("unexpected error")
	}

	writeError(c, http.StatusInternalServerError, "Internal server error", nil)
}

// FieldError отправляет 400 с перечислением невалидных полей.
func FieldError(c *gin.Context, fields []ErrorField) {
	writeError(c, http.StatusBadRequest, "Validation failed", fields)
}

// BadRequest отправляет 400 с произвольным сообщением.
func BadRequest(c *gin.Context, message string) {
	writeError(c, http.StatusBadRequest, message, nil)
}

// Unauthorized отправляет 401 с произвольным сообщением.
func Unauthorized(c *gin.Context, message string) {
	writeError(c, http.StatusUnauthorized, message, nil)
}

func writeError(c *gin.Context, statusCode int, message string, fields []ErrorField) {
	if fields == nil {
		fields = []ErrorField{{Message: message}}
	}
	c.JSON(statusCode, ErrorEnvelope{
		StatusCode: statusCode,
		Data:       nil,
		Success:    false,
		Message:    message,
		Errors:     fields,
	})
}

// NewPagination собирает метаданные страницы и абсолютные ссылки.
// baseURL — маршрут без query-параметров (scheme://host/path).
func NewPagination(baseURL string, page, limit, totalItems int) *Pagination {
	totalPages := (totalItems + limit - 1) / limit

	p := &Pagination{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalItems:      totalItems,
		ItemsPerPage:    limit,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}

	if baseURL != "" {
		p.Links = buildPageLinks(baseURL, page, limit, totalPages)
	}

	return p
}

func buildPageLinks(baseURL string, page, limit, totalPages int) *PageLinks {
	pageURL := func(p int) string {
		return fmt.Sprintf("%s?page=%d&limit=%d", baseURL, p, limit)
	}

	links := &PageLinks{
		Self:  pageURL(page),
		First: pageURL(1),
		Last:  pageURL(totalPages),
	}
	if totalPages < 1 {
		links.Last = pageURL(1)
	}
	if page > 1 {
		prev := pageURL(page - 1)
		links.Prev = &prev
	}
	if page < totalPages {
		next := pageURL(page + 1)
		links.Next = &next
	}

	return links
}
