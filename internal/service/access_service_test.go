package service

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/portfolio-cms/internal/pkg/apperror"
)

func newTestAccessService(ttl time.Duration) *AccessService {
	tokens := NewTokenManager("test-secret", ttl)
	return NewAccessService(AdminCredentials{
		Username: "admin",
		Password: "secret",
	}, tokens)
}

func TestAccessService_Login_RequiresBothFields(t *testing.T) {
	svc := newTestAccessService(time.Hour)

	for _, pair := range [][2]string{{"", "secret"}, {"admin", ""}, {"", ""}} {
		_, err := svc.Login(pair[0], pair[1])
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Message != "Username and password are required" {
			t.Fatalf("для %v ожидалась ошибка о пустых полях, получили %v", pair, err)
		}
	}
}

func TestAccessService_Login_RejectsMismatchedCredentials(t *testing.T) {
	svc := newTestAccessService(time.Hour)

	// Отказ при несовпадении любого из двух полей.
	cases := [][2]string{
		{"admin", "wrong"},
		{"intruder", "secret"},
		{"intruder", "wrong"},
	}
	for _, pair := range cases {
		if _, err := svc.Login(pair[0], pair[1]); !errors.Is(err, apperror.ErrInvalidCredentials) {
			t.Fatalf("для %v ожидалась ErrInvalidCredentials, получили %v", pair, err)
		}
	}
}

func TestAccessService_Login_AndVerifyToken(t *testing.T) {
	svc := newTestAccessService(time.Hour)

	token, err := svc.Login("admin", "secret")
	if err != nil {
		t.Fatalf("login вернул ошибку: %v", err)
	}
	if token == "" {
		t.Fatalf("ожидался непустой токен")
	}

	if err := svc.VerifyToken(token); err != nil {
		t.Fatalf("свежий токен должен проходить проверку: %v", err)
	}
}

func TestAccessService_VerifyToken_RejectsExpired(t *testing.T) {
	svc := newTestAccessService(-time.Minute)

	token, err := svc.Login("admin", "secret")
	if err != nil {
		t.Fatalf("login вернул ошибку: %v", err)
	}

	if err := svc.VerifyToken(token); !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("просроченный токен должен отдавать ErrUnauthorized, получили %v", err)
	}
}

func TestAccessService_VerifyToken_RevokedByPasswordChange(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	old := NewAccessService(AdminCredentials{Username: "admin", Password: "secret"}, tokens)

	token, err := old.Login("admin", "secret")
	if err != nil {
		t.Fatalf("login вернул ошибку: %v", err)
	}

	// Тот же секрет подписи, но пароль в конфигурации сменился.
	rotated := NewAccessService(AdminCredentials{Username: "admin", Password: "new-secret"}, tokens)
	if err := rotated.VerifyToken(token); !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("токен со старым паролем должен отзываться, получили %v", err)
	}
}

func TestAccessService_VerifyToken_RejectsGarbage(t *testing.T) {
	svc := newTestAccessService(time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if err := svc.VerifyToken(raw); !errors.Is(err, apperror.ErrUnauthorized) {
			t.Fatalf("мусорный токен %q должен отдавать ErrUnauthorized, получили %v", raw, err)
		}
	}
}

func TestAccessService_BcryptHashTakesPriority(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("не удалось захэшировать пароль: %v", err)
	}

	tokens := NewTokenManager("test-secret", time.Hour)
	svc := NewAccessService(AdminCredentials{
		Username:     "admin",
		Password:     "plain-ignored",
		PasswordHash: string(hash),
	}, tokens)

	if _, err := svc.Login("admin", "hashed-password"); err != nil {
		t.Fatalf("пароль из хэша должен приниматься: %v", err)
	}
	if _, err := svc.Login("admin", "plain-ignored"); !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Fatalf("открытый пароль игнорируется при заданном хэше, получили %v", err)
	}
}

func TestTokenManager_RejectsForeignSignature(t *testing.T) {
	ours := NewTokenManager("our-secret", time.Hour)
	theirs := NewTokenManager("their-secret", time.Hour)

	token, err := theirs.Generate("admin", "secret")
	if err != nil {
		t.Fatalf("generate вернул ошибку: %v", err)
	}

	if _, err := ours.Parse(token); err == nil {
		t.Fatalf("токен с чужой подписью должен отклоняться")
	}
}
