package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-cms/internal/models"
	"github.com/ignatzorin/portfolio-cms/internal/pkg/apperror"
)

// NewsletterRepository отвечает за подписки на рассылку.
type NewsletterRepository struct {
	db *sqlx.DB
}

// NewNewsletterRepository создаёт экземпляр репозитория.
func NewNewsletterRepository(db *sqlx.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// List возвращает страницу подписок, новые первыми.
func (r *NewsletterRepository) List(ctx context.Context, limit, offset int) ([]models.Newsletter, error) {
	items := []models.Newsletter{}
	query := `
		SELECT id, email, created_at
		FROM newsletters
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	if err := r.db.SelectContext(ctx, &items, query, limit, offset); err != nil {
		return nil, fmt.Errorf("newsletter repository: list %w", err)
	}
	return items, nil
}

// Count возвращает общее количество подписок.
func (r *NewsletterRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM newsletters`); err != nil {
		return 0, fmt.Errorf("newsletter repository: count %w", err)
	}
	return count, nil
}

// GetByEmail возвращает подписку по email.
func (r *NewsletterRepository) GetByEmail(ctx context.Context, email string) (*models.Newsletter, error) {
	var n models.Newsletter
	if err := r.db.GetContext(ctx, &n, `SELECT id, email, created_at FROM newsletters WHERE email = $1`, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrNewsletterNotFound
		}
		return nil, fmt.Errorf("newsletter repository: get by email %w", err)
	}
	return &n, nil
}

// Create создаёт подписку.
func (r *NewsletterRepository) Create(ctx context.Context, n *models.Newsletter) error {
	query := `INSERT INTO newsletters (email) VALUES ($1) RETURNING id, created_at`
	if err := r.db.QueryRowxContext(ctx, query, n.Email).Scan(&n.ID, &n.CreatedAt); err != nil {
		return fmt.Errorf("newsletter repository: insert %w", err)
	}
	return nil
}

// Delete удаляет подписку.
func (r *NewsletterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM newsletters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("newsletter repository: delete %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("newsletter repository: delete rows affected %w", err)
	}
	if affected == 0 {
		return apperror.ErrNewsletterNotFound
	}
	return nil
}
