package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims — данные, зашитые в админский токен.
// Исходный контракт API кладёт в токен и имя, и пароль;
// оба сверяются с конфигурацией при каждом запросе.
type AdminClaims struct {
	Username string
	Password string
}

// TokenManager отвечает за выпуск и проверку админского JWT.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager создаёт менеджер токенов.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate выпускает токен доступа к админке.
func (m *TokenManager) Generate(username, password string) (string, error) {
	if len(m.secret) == 0 {
		return "", fmt.Errorf("token manager: секрет подписи не задан")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"password": password,
		"iat":      now.Unix(),
		"exp":      now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse проверяет подпись и срок действия токена и возвращает клеймы.
func (m *TokenManager) Parse(raw string) (*AdminClaims, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("token manager: неожиданный метод подписи %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		if err == nil {
			err = jwt.ErrTokenInvalidClaims
		}
		return nil, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	username, _ := claims["username"].(string)
	password, _ := claims["password"].(string)
	if username == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &AdminClaims{Username: username, Password: password}, nil
}
