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

// SkillRepository отвечает за навыки.
type SkillRepository struct {
	db *sqlx.DB
}

// NewSkillRepository создаёт экземпляр репозитория.
func NewSkillRepository(db *sqlx.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// ListByPortfolio возвращает навыки портфолио.
func (r *SkillRepository) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.Skill, error) {
	query := `
		SELECT id, portfolio_id, label, url, created_at, updated_at
		FROM skills
		WHERE portfolio_id = $1
		ORDER BY created_at DESC
	`
	items := []models.Skill{}
	if err := r.db.SelectContext(ctx, &items, query, portfolioID); err != nil {
		return nil, fmt.Errorf("skill repository: list %w", err)
	}
	return items, nil
}

// ExistsByLabel проверяет, занята ли метка навыка.
func (r *SkillRepository) ExistsByLabel(ctx context.Context, label string) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM skills WHERE label = $1`, label); err != nil {
		return false, fmt.Errorf("skill repository: exists by label %w", err)
	}
	return count > 0, nil
}

// Create создаёт навык.
func (r *SkillRepository) Create(ctx context.Context, s *models.Skill) error {
	query := `
		INSERT INTO skills (portfolio_id, label, url)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	if err := r.db.QueryRowxContext(ctx, query, s.PortfolioID, s.Label, s.URL).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return fmt.Errorf("skill repository: insert %w", err)
	}
	return nil
}

// Update обновляет навык.
func (r *SkillRepository) Update(ctx context.Context, s *models.Skill) error {
	query := `
		UPDATE skills
		SET label = $1,
		    url = $2,
		    updated_at = NOW()
		WHERE id = $3
		RETURNING portfolio_id, created_at, updated_at
	`
	if err := r.db.QueryRowxContext(ctx, query, s.Label, s.URL, s.ID).
		Scan(&s.PortfolioID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrSkillNotFound
		}
		return fmt.Errorf("skill repository: update %w", err)
	}
	return nil
}

// Delete удаляет навык. Связи с проектами снимаются каскадом.
func (r *SkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("skill repository: delete %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("skill repository: delete rows affected %w", err)
	}
	if affected == 0 {
		return apperror.ErrSkillNotFound
	}
	return nil
}
