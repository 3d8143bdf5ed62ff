package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-cms/internal/models"
	"github.com/ignatzorin/portfolio-cms/internal/pkg/apperror"
)

// PortfolioRepository отвечает за единственную запись портфолио.
type PortfolioRepository struct {
	db *sqlx.DB
}

// NewPortfolioRepository создаёт экземпляр репозитория.
func NewPortfolioRepository(db *sqlx.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// Get возвращает запись портфолио, если она существует.
func (r *PortfolioRepository) Get(ctx context.Context) (*models.Portfolio, error) {
	var p models.Portfolio
	query := `
		SELECT id, email, name, bio, about, image_url, x_url, github_url, linkedin_url, facebook_url, created_at, updated_at
		FROM portfolio
		LIMIT 1
	`
	if err := r.db.GetContext(ctx, &p, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("portfolio repository: get %w", err)
	}
	return &p, nil
}

// Create создаёт запись портфолио.
func (r *PortfolioRepository) Create(ctx context.Context, p *models.Portfolio) error {
	query := `
		INSERT INTO portfolio (email, name, bio, about, image_url, x_url, github_url, linkedin_url, facebook_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	if err := r.db.QueryRowxContext(
		ctx,
		query,
		p.Email,
		p.Name,
		p.Bio,
		p.About,
		p.ImageURL,
		p.XURL,
		p.GithubURL,
		p.LinkedinURL,
		p.FacebookURL,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("portfolio repository: insert %w", err)
	}
	return nil
}

// Update перезаписывает изменяемые поля существующего портфолио.
func (r *PortfolioRepository) Update(ctx context.Context, p *models.Portfolio) error {
	query := `
		UPDATE portfolio
		SET email = $1,
		    name = $2,
		    bio = $3,
		    about = $4,
		    image_url = $5,
		    x_url = $6,
		    github_url = $7,
		    linkedin_url = $8,
		    facebook_url = $9,
		    updated_at = NOW()
		WHERE id = $10
		RETURNING created_at, updated_at
	`
	if err := r.db.QueryRowxContext(
		ctx,
		query,
		p.Email,
		p.Name,
		p.Bio,
		p.About,
		p.ImageURL,
		p.XURL,
		p.GithubURL,
		p.LinkedinURL,
		p.FacebookURL,
		p.ID,
	).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrPortfolioNotFound
		}
		return fmt.Errorf("portfolio repository: update %w", err)
	}
	return nil
}

// DeleteAll удаляет все записи портфолио (ожидаемая кардинальность 0 или 1).
// Дочерние сущности удаляются каскадом по внешним ключам.
func (r *PortfolioRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM portfolio`); err != nil {
		return fmt.Errorf("portfolio repository: delete all %w", err)
	}
	return nil
}
