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

// ProjectRepository отвечает за проекты и их связи с навыками.
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository создаёт экземпляр репозитория.
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ListByPortfolio возвращает проекты портфолио с навыками.
func (r *ProjectRepository) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.Project, error) {
	query := `
		SELECT id, portfolio_id, name, description, start_date, end_date, image_url, web_url, created_at, updated_at
		FROM projects
		WHERE portfolio_id = $1
		ORDER BY created_at DESC
	`
	projects := []models.Project{}
	if err := r.db.SelectContext(ctx, &projects, query, portfolioID); err != nil {
		return nil, fmt.Errorf("project repository: list %w", err)
	}

	if err := r.loadSkills(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByID возвращает проект с навыками.
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	query := `
		SELECT id, portfolio_id, name, description, start_date, end_date, image_url, web_url, created_at, updated_at
		FROM projects
		WHERE id = $1
	`
	var p models.Project
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrProjectNotFound
		}
		return nil, fmt.Errorf("project repository: get by id %w", err)
	}

	projects := []models.Project{p}
	if err := r.loadSkills(ctx, projects); err != nil {
		return nil, err
	}
	return &projects[0], nil
}

// Create создаёт проект и привязывает навыки одной транзакцией.
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project, skillIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("project repository: begin tx %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		INSERT INTO projects (portfolio_id, name, description, start_date, end_date, image_url, web_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	if err = tx.QueryRowxContext(
		ctx,
		query,
		p.PortfolioID,
		p.Name,
		p.Description,
		p.StartDate,
		p.EndDate,
		p.ImageURL,
		p.WebURL,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("project repository: insert %w", err)
	}

	if len(skillIDs) > 0 {
		linkQuery := `INSERT INTO project_skills (project_id, skill_id) VALUES `
		linkValues := make([]interface{}, 0, len(skillIDs)*2)
		for i, skillID := range skillIDs {
			if i > 0 {
				linkQuery += ", "
			}
			linkQuery += fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2)
			linkValues = append(linkValues, p.ID, skillID)
		}
		linkQuery += " ON CONFLICT DO NOTHING"

		if _, err = tx.ExecContext(ctx, linkQuery, linkValues...); err != nil {
			return fmt.Errorf("project repository: link skills %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("project repository: commit %w", err)
	}
	return nil
}

// Update обновляет поля проекта. Состав навыков этим путём не меняется.
func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) error {
	query := `
		UPDATE projects
		SET name = $1,
		    description = $2,
		    start_date = $3,
		    end_date = $4,
		    image_url = $5,
		    web_url = $6,
		    updated_at = NOW()
		WHERE id = $7
		RETURNING portfolio_id, created_at, updated_at
	`
	if err := r.db.QueryRowxContext(
		ctx,
		query,
		p.Name,
		p.Description,
		p.StartDate,
		p.EndDate,
		p.ImageURL,
		p.WebURL,
		p.ID,
	).Scan(&p.PortfolioID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.ErrProjectNotFound
		}
		return fmt.Errorf("project repository: update %w", err)
	}
	return nil
}

// Delete удаляет проект вместе со связями.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("project repository: delete %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("project repository: delete rows affected %w", err)
	}
	if affected == 0 {
		return apperror.ErrProjectNotFound
	}
	return nil
}

// loadSkills подгружает навыки для набора проектов одним запросом.
func (r *ProjectRepository) loadSkills(ctx context.Context, projects []models.Project) error {
	if len(projects) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(projects))
	for i := range projects {
		projects[i].Skills = []models.Skill{}
		ids = append(ids, projects[i].ID)
	}

	query, args, err := sqlx.In(`
		SELECT ps.project_id, s.id, s.portfolio_id, s.label, s.url, s.created_at, s.updated_at
		FROM project_skills ps
		JOIN skills s ON s.id = ps.skill_id
		WHERE ps.project_id IN (?)
		ORDER BY s.created_at DESC
	`, ids)
	if err != nil {
		return fmt.Errorf("project repository: load skills query %w", err)
	}

	rows, err := r.db.QueryxContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("project repository: load skills %w", err)
	}
	defer rows.Close()

	byProject := make(map[uuid.UUID][]models.Skill, len(projects))
	for rows.Next() {
		var projectID uuid.UUID
		var s models.Skill
		if err := rows.Scan(&projectID, &s.ID, &s.PortfolioID, &s.Label, &s.URL, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return fmt.Errorf("project repository: load skills scan %w", err)
		}
		byProject[projectID] = append(byProject[projectID], s)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("project repository: load skills rows %w", err)
	}

	for i := range projects {
		if skills, ok := byProject[projects[i].ID]; ok {
			projects[i].Skills = skills
		}
	}
	return nil
}
