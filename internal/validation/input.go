package validation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxBioLength         = 1000
	MaxLabelLength       = 50
	MaxURLLength         = 500
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s must be at least %d characters", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s must be at most %d characters", fieldName, max)
	}
	return nil
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("Email is required")
	}

	email = strings.ToLower(strings.TrimSpace(email))

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("Invalid email format")
	}

	local, domain := parts[0], parts[1]
	if len(local) == 0 || len(local) > 64 {
		return fmt.Errorf("Invalid email format")
	}
	if len(domain) == 0 || len(domain) > 255 || !strings.Contains(domain, ".") {
		return fmt.Errorf("Invalid email format")
	}

	return nil
}

// ValidateURL проверяет, что значение является абсолютным http(s) URL.
func ValidateURL(fieldName, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if utf8.RuneCountInString(value) > MaxURLLength {
		return fmt.Errorf("%s must be at most %d characters", fieldName, MaxURLLength)
	}

	parsed, err := url.Parse(value)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%s must be a valid http(s) URL", fieldName)
	}

	return nil
}

// NormalizeEmail приводит email к каноничному виду для хранения.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
