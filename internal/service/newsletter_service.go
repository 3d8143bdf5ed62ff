package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ignatzorin/portfolio-cms/internal/models"
	"github.com/ignatzorin/portfolio-cms/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-cms/internal/validation"
)

// NewsletterRepository описывает хранилище подписок на рассылку.
type NewsletterRepository interface {
	List(ctx context.Context, limit, offset int) ([]models.Newsletter, error)
	Count(ctx context.Context) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.Newsletter, error)
	Create(ctx context.Context, n *models.Newsletter) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewsletterService отвечает за подписки на рассылку.
type NewsletterService struct {
	newsletters NewsletterRepository
}

// NewNewsletterService создаёт сервис рассылки.
func NewNewsletterService(newsletters NewsletterRepository) *NewsletterService {
	return &NewsletterService{newsletters: newsletters}
}

// Subscribe добавляет email в рассылку. Повторная подписка
// идемпотентна: возвращается уже существующая запись и created=false.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*models.Newsletter, bool, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, false, apperror.New(apperror.ErrCodeBadRequest, err.Error())
	}
	email = validation.NormalizeEmail(email)

	existing, err := s.newsletters.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperror.ErrNewsletterNotFound) {
		return nil, false, err
	}

	n := &models.Newsletter{Email: email}
	if err := s.newsletters.Create(ctx, n); err != nil {
		return nil, false, err
	}
	return n, true, nil
}

// List возвращает страницу подписок и общее их число.
func (s *NewsletterService) List(ctx context.Context, page, limit int) ([]models.Newsletter, int, error) {
	total, err := s.newsletters.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	items, err := s.newsletters.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Delete удаляет подписку.
func (s *NewsletterService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.newsletters.Delete(ctx, id)
}
