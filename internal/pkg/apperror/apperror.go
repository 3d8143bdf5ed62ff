package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeBadRequest   ErrorCode = "BAD_REQUEST"
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
)

// AppError — типизированная ошибка с HTTP статусом.
// Сообщение предназначено клиенту, Cause остаётся внутри.
type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeNotFound
}

func IsBadRequest(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeBadRequest
}

// Сообщения повторяют контракт исходного API: случаи "уже существует"
// исторически отдаются как 400, а не 409.
var (
	ErrPortfolioNotFound      = New(ErrCodeNotFound, "Portfolio not found")
	ErrPortfolioExists        = New(ErrCodeBadRequest, "Portfolio Already Available")
	ErrEducationNotFound      = New(ErrCodeNotFound, "Education not found")
	ErrWorkExperienceNotFound = New(ErrCodeNotFound, "Work experience not found")
	ErrSkillNotFound          = New(ErrCodeNotFound, "Skill not found")
	ErrSkillExists            = New(ErrCodeBadRequest, "Skill already exists")
	ErrProjectNotFound        = New(ErrCodeNotFound, "Project not found")
	ErrBlogNotFound           = New(ErrCodeNotFound, "Blog not found")
	ErrTagNotFound            = New(ErrCodeNotFound, "Tag not found")
	ErrTagExists              = New(ErrCodeBadRequest, "Tag already exists")
	ErrNewsletterNotFound     = New(ErrCodeNotFound, "Newsletter not found")
	ErrFieldsRequired         = New(ErrCodeBadRequest, "All fields are required")
	ErrTagsRequired           = New(ErrCodeBadRequest, "Tags are required")
	ErrTooManyTags            = New(ErrCodeBadRequest, "You can only add 3 tags")
	ErrInvalidCredentials     = New(ErrCodeUnauthorized, "Invalid username or password")
	ErrUnauthorized           = New(ErrCodeUnauthorized, "Unauthorized request")
)
