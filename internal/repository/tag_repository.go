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

// TagRepository отвечает за метки блога.
type TagRepository struct {
	db *sqlx.DB
}

// NewTagRepository создаёт экземпляр репозитория.
func NewTagRepository(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

// List возвращает все метки.
func (r *TagRepository) List(ctx context.Context) ([]models.Tag, error) {
	tags := []models.Tag{}
	query := `SELECT id, label, created_at FROM tags ORDER BY label`
	if err := r.db.SelectContext(ctx, &tags, query); err != nil {
		return nil, fmt.Errorf("tag repository: list %w", err)
	}
	return tags, nil
}

// GetByID возвращает метку по идентификатору.
func (r *TagRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	var t models.Tag
	if err := r.db.GetContext(ctx, &t, `SELECT id, label, created_at FROM tags WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrTagNotFound
		}
		return nil, fmt.Errorf("tag repository: get by id %w", err)
	}
	return &t, nil
}

// ExistsByLabel проверяет, занята ли метка.
func (r *TagRepository) ExistsByLabel(ctx context.Context, label string) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM tags WHERE label = $1`, label); err != nil {
		return false, fmt.Errorf("tag repository: exists by label %w", err)
	}
	return count > 0, nil
}

// Create создаёт метку.
func (r *TagRepository) Create(ctx context.Context, t *models.Tag) error {
	query := `INSERT INTO tags (label) VALUES ($1) RETURNING id, created_at`
	if err := r.db.QueryRowxContext(ctx, query, t.Label).Scan(&t.ID, &t.CreatedAt); err != nil {
		if isPgError(err, pgUniqueViolation) {
			return apperror.ErrTagExists
		}
		return fmt.Errorf("tag repository: insert %w", err)
	}
	return nil
}

// Update переименовывает метку.
func (r *TagRepository) Update(ctx context.Context, t *models.Tag) error {
	query := `UPDATE tags SET label = $1 WHERE id = $2 RETURNING created_at`
	if err := r.db.QueryRowxContext(ctx, query, t.Label, t.ID).Scan(&t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrTagNotFound
		}
		if isPgError(err, pgUniqueViolation) {
			return apperror.ErrTagExists
		}
		return fmt.Errorf("tag repository: update %w", err)
	}
	return nil
}

// Delete удаляет метку. Связи с записями снимаются каскадом.
func (r *TagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("tag repository: delete %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("tag repository: delete rows affected %w", err)
	}
	if affected == 0 {
		return apperror.ErrTagNotFound
	}
	return nil
}
