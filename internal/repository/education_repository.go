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

// EducationRepository отвечает за записи об образовании.
type EducationRepository struct {
	db *sqlx.DB
}

// NewEducationRepository создаёт экземпляр репозитория.
func NewEducationRepository(db *sqlx.DB) *EducationRepository {
	return &EducationRepository{db: db}
}

// ListByPortfolio возвращает записи об образовании портфолио.
func (r *EducationRepository) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.Education, error) {
	query := `
		SELECT id, portfolio_id, institution, degree, start_date, end_date, status, created_at, updated_at
		FROM educations
		WHERE portfolio_id = $1
		ORDER BY created_at DESC
	`
	items := []models.Education{}
	if err := r.db.SelectContext(ctx, &items, query, portfolioID); err != nil {
		return nil, fmt.Errorf("education repository: list %w", err)
	}
	return items, nil
}

// Create создаёт запись об образовании.
func (r *EducationRepository) Create(ctx context.Context, e *models.Education) error {
	query := `
		INSERT INTO educations (portfolio_id, institution, degree, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	if err := r.db.QueryRowxContext(
		ctx,
		query,
		e.PortfolioID,
		e.Institution,
		e.Degree,
		e.StartDate,
		e.EndDate,
		e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return fmt.Errorf("education repository: insert %w", err)
	}
	return nil
}

// Update обновляет запись об образовании.
func (r *EducationRepository) Update(ctx context.Context, e *models.Education) error {
	query := `
		UPDATE educations
		SET institution = $1,
		    degree = $2,
		    start_date = $3,
		    end_date = $4,
		    status = $5,
		    updated_at = NOW()
		WHERE id = $6
		RETURNING portfolio_id, created_at, updated_at
	`
	if err := r.db.QueryRowxContext(
		ctx,
		query,
		e.Institution,
		e.Degree,
		e.StartDate,
		e.EndDate,
		e.Status,
		e.ID,
	).Scan(&e.PortfolioID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrEducationNotFound
		}
		return fmt.Errorf("education repository: update %w", err)
	}
	return nil
}

// Delete удаляет запись об образовании.
func (r *EducationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM educations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("education repository: delete %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("education repository: delete rows affected %w", err)
	}
	if affected == 0 {
		return apperror.ErrEducationNotFound
	}
	return nil
}
