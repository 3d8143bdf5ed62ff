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

// WorkExperienceRepository отвечает за записи об опыте работы.
type WorkExperienceRepository struct {
	db *sqlx.DB
}

// NewWorkExperienceRepository создаёт экземпляр репозитория.
func NewWorkExperienceRepository(db *sqlx.DB) *WorkExperienceRepository {
	return &WorkExperienceRepository{db: db}
}

// ListByPortfolio возвращает записи об опыте работы портфолио.
func (r *WorkExperienceRepository) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.WorkExperience, error) {
	query := `
		SELECT id, portfolio_id, company_name, position, start_date, end_date, created_at, updated_at
		FROM work_experiences
		WHERE portfolio_id = $1
		ORDER BY created_at DESC
	`
	items := []models.WorkExperience{}
	if err := r.db.SelectContext(ctx, &items, query, portfolioID); err != nil {
		return nil, fmt.Errorf("work experience repository: list %w", err)
	}
	return items, nil
}

// Create создаёт запись об опыте работы.
func (r *WorkExperienceRepository) Create(ctx context.Context, w *models.WorkExperience) error {
	query := `
		INSERT INTO work_experiences (portfolio_id, company_name, position, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	if err := r.db.QueryRowxContext(
		ctx,
		query,
		w.PortfolioID,
		w.CompanyName,
		w.Position,
		w.StartDate,
		w.EndDate,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return fmt.Errorf("work experience repository: insert %w", err)
	}
	return nil
}

// Update обновляет запись об опыте работы.
func (r *WorkExperienceRepository) Update(ctx context.Context, w *models.WorkExperience) error {
	query := `
		UPDATE work_experiences
		SET company_name = $1,
		    position = $2,
		    start_date = $3,
		    end_date = $4,
		    updated_at = NOW()
		WHERE id = $5
		RETURNING portfolio_id, created_at, updated_at
	`
	if err := r.db.QueryRowxContext(
		ctx,
		query,
		w.CompanyName,
		w.Position,
		w.StartDate,
		w.EndDate,
		w.ID,
	).Scan(&w.PortfolioID, &w.CreatedAt, &w.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrWorkExperienceNotFound
		}
		return fmt.Errorf("work experience repository: update %w", err)
	}
	return nil
}

// Delete удаляет запись об опыте работы.
func (r *WorkExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM work_experiences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("work experience repository: delete %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("work experience repository: delete rows affected %w", err)
	}
	if affected == 0 {
		return apperror.ErrWorkExperienceNotFound
	}
	return nil
}
