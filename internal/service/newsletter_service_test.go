package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/portfolio-cms/internal/models"
	"github.com/ignatzorin/portfolio-cms/internal/pkg/apperror"
)

// mockNewsletterRepo хранит подписки в памяти.
type mockNewsletterRepo struct {
	items []models.Newsletter
}

func (m *mockNewsletterRepo) List(ctx context.Context, limit, offset int) ([]models.Newsletter, error) {
	if offset >= len(m.items) {
		return []models.Newsletter{}, nil
	}
	end := offset + limit
	if end > len(m.items) {
		end = len(m.items)
	}
	return m.items[offset:end], nil
}

func (m *mockNewsletterRepo) Count(ctx context.Context) (int, error) {
	return len(m.items), nil
}

func (m *mockNewsletterRepo) GetByEmail(ctx context.Context, email string) (*models.Newsletter, error) {
	for i := range m.items {
		if m.items[i].Email == email {
			n := m.items[i]
			return &n, nil
		}
	}
	return nil, apperror.ErrNewsletterNotFound
}

func (m *mockNewsletterRepo) Create(ctx context.Context, n *models.Newsletter) error {
	n.ID = uuid.New()
	n.CreatedAt = time.Now()
	m.items = append(m.items, *n)
	return nil
}

func (m *mockNewsletterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return apperror.ErrNewsletterNotFound
}

func TestNewsletterService_Subscribe_Idempotent(t *testing.T) {
	repo := &mockNewsletterRepo{}
	svc := NewNewsletterService(repo)
	ctx := context.Background()

	first, created, err := svc.Subscribe(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("первая подписка вернула ошибку: %v", err)
	}
	if !created {
		t.Fatalf("первая подписка должна создавать запись")
	}

	second, created, err := svc.Subscribe(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("повторная подписка не должна быть ошибкой: %v", err)
	}
	if created {
		t.Fatalf("повторная подписка не должна создавать запись")
	}
	if second.ID != first.ID {
		t.Fatalf("повторная подписка должна вернуть существующую запись")
	}
	if len(repo.items) != 1 {
		t.Fatalf("ожидалась одна запись, получили %d", len(repo.items))
	}
}

func TestNewsletterService_Subscribe_NormalizesEmail(t *testing.T) {
	repo := &mockNewsletterRepo{}
	svc := NewNewsletterService(repo)
	ctx := context.Background()

	if _, _, err := svc.Subscribe(ctx, "Reader@Example.com "); err != nil {
		t.Fatalf("подписка вернула ошибку: %v", err)
	}
	if _, _, err := svc.Subscribe(ctx, "reader@example.com"); err != nil {
		t.Fatalf("повторная подписка вернула ошибку: %v", err)
	}
	if len(repo.items) != 1 {
		t.Fatalf("регистр и пробелы не должны плодить дубликаты, записей %d", len(repo.items))
	}
}

func TestNewsletterService_Subscribe_ValidatesEmail(t *testing.T) {
	svc := NewNewsletterService(&mockNewsletterRepo{})
	ctx := context.Background()

	_, _, err := svc.Subscribe(ctx, "")
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Message != "Email is required" {
		t.Fatalf("пустой email должен отдавать \"Email is required\", получили %v", err)
	}

	_, _, err = svc.Subscribe(ctx, "not-an-email")
	if !errors.As(err, &appErr) || appErr.Message != "Invalid email format" {
		t.Fatalf("невалидный email должен отдавать \"Invalid email format\", получили %v", err)
	}
}

func TestNewsletterService_ListAndDelete(t *testing.T) {
	repo := &mockNewsletterRepo{}
	svc := NewNewsletterService(repo)
	ctx := context.Background()

	n, _, err := svc.Subscribe(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("подписка вернула ошибку: %v", err)
	}

	items, total, err := svc.List(ctx, 1, 10)
	if err != nil {
		t.Fatalf("list вернул ошибку: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("ожидалась одна подписка: total=%d len=%d", total, len(items))
	}

	if err := svc.Delete(ctx, n.ID); err != nil {
		t.Fatalf("delete вернул ошибку: %v", err)
	}
	if err := svc.Delete(ctx, n.ID); !errors.Is(err, apperror.ErrNewsletterNotFound) {
		t.Fatalf("повторное удаление должно отдавать ErrNewsletterNotFound, получили %v", err)
	}
}
