package service

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/portfolio-cms/internal/pkg/apperror"
)

// AdminCredentials — учётные данные администратора из конфигурации.
// PasswordHash (bcrypt) имеет приоритет над открытым паролем.
type AdminCredentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// AccessService выдаёт токены доступа к админ-панели.
type AccessService struct {
	creds  AdminCredentials
	tokens *TokenManager
}

// NewAccessService создаёт сервис доступа.
func NewAccessService(creds AdminCredentials, tokens *TokenManager) *AccessService {
	return &AccessService{creds: creds, tokens: tokens}
}

// Login сверяет учётные данные и выпускает токен.
func (s *AccessService) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", apperror.New(apperror.ErrCodeBadRequest, "Username and password are required")
	}

	if !s.Match(username, password) {
		return "", apperror.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(username, password)
	if err != nil {
		return "", apperror.Wrap(err, apperror.ErrCodeInternal, "Internal server error")
	}
	return token, nil
}

// Match проверяет пару логин/пароль против конфигурации.
// Отказ при несовпадении ЛЮБОГО из двух полей.
func (s *AccessService) Match(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) != 1 {
		return false
	}

	if s.creds.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
}

// VerifyToken разбирает токен и повторно сверяет зашитые в него
// учётные данные с конфигурацией.
func (s *AccessService) VerifyToken(raw string) error {
	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return apperror.ErrUnauthorized
	}

	if !s.Match(claims.Username, claims.Password) {
		return apperror.ErrUnauthorized
	}
	return nil
}
