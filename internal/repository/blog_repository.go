package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/portfolio-cms/internal/models"
	"github.com/ignatzorin/portfolio-cms/internal/pkg/apperror"
)

// Коды ошибок PostgreSQL, которые репозиторий переводит в доменные.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// BlogRepository отвечает за записи блога и их связи с метками.
type BlogRepository struct {
	db *sqlx.DB
}

// NewBlogRepository создаёт экземпляр репозитория.
func NewBlogRepository(db *sqlx.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// List возвращает страницу записей, отсортированных по дате создания (новые первыми).
func (r *BlogRepository) List(ctx context.Context, limit, offset int, includeHidden bool) ([]models.Blog, error) {
	query := `
		SELECT id, title, description, content, image_url, slug, reading_time, is_hidden, created_at, updated_at
		FROM blogs
	`
	if !includeHidden {
		query += ` WHERE is_hidden = FALSE`
	}
	query += `
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	blogs := []models.Blog{}
	if err := r.db.SelectContext(ctx, &blogs, query, limit, offset); err != nil {
		return nil, fmt.Errorf("blog repository: list %w", err)
	}

	if err := r.loadTags(ctx, blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// Count возвращает количество записей.
func (r *BlogRepository) Count(ctx context.Context, includeHidden bool) (int, error) {
	query := `SELECT COUNT(*) FROM blogs`
	if !includeHidden {
		query += ` WHERE is_hidden = FALSE`
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("blog repository: count %w", err)
	}
	return count, nil
}

// GetByID возвращает запись с метками.
func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	query := `
		SELECT id, title, description, content, image_url, slug, reading_time, is_hidden, created_at, updated_at
		FROM blogs
		WHERE id = $1
	`
	var b models.Blog
	if err := r.db.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrBlogNotFound
		}
		return nil, fmt.Errorf("blog repository: get by id %w", err)
	}

	blogs := []models.Blog{b}
	if err := r.loadTags(ctx, blogs); err != nil {
		return nil, err
	}
	return &blogs[0], nil
}

// GetVisibleBySlug возвращает видимую запись по слагу.
func (r *BlogRepository) GetVisibleBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	query := `
		SELECT id, title, description, content, image_url, slug, reading_time, is_hidden, created_at, updated_at
		FROM blogs
		WHERE slug = $1 AND is_hidden = FALSE
	`
	var b models.Blog
	if err := r.db.GetContext(ctx, &b, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrBlogNotFound
		}
		return nil, fmt.Errorf("blog repository: get by slug %w", err)
	}

	blogs := []models.Blog{b}
	if err := r.loadTags(ctx, blogs); err != nil {
		return nil, err
	}
	return &blogs[0], nil
}

// Neighbors возвращает слаги хронологических соседей среди видимых записей:
// next — ближайшая более новая, previous — ближайшая более старая.
func (r *BlogRepository) Neighbors(ctx context.Context, createdAt time.Time) (*models.BlogNeighbors, error) {
	neighbors := &models.BlogNeighbors{}

	var next string
	err := r.db.GetContext(ctx, &next, `
		SELECT slug FROM blogs
		WHERE is_hidden = FALSE AND created_at > $1
		ORDER BY created_at ASC
		LIMIT 1
	`, createdAt)
	switch {
	case err == nil:
		neighbors.NextSlug = &next
	case errors.Is(err, sql.ErrNoRows):
		// самая новая запись
	default:
		return nil, fmt.Errorf("blog repository: next neighbor %w", err)
	}

	var prev string
	err = r.db.GetContext(ctx, &prev, `
		SELECT slug FROM blogs
		WHERE is_hidden = FALSE AND created_at < $1
		ORDER BY created_at DESC
		LIMIT 1
	`, createdAt)
	switch {
	case err == nil:
		neighbors.PreviousSlug = &prev
	case errors.Is(err, sql.ErrNoRows):
		// самая старая запись
	default:
		return nil, fmt.Errorf("blog repository: previous neighbor %w", err)
	}

	return neighbors, nil
}

// Create создаёт запись и привязывает метки одной транзакцией.
func (r *BlogRepository) Create(ctx context.Context, b *models.Blog, tagIDs []uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("blog repository: begin tx %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		INSERT INTO blogs (title, description, content, image_url, slug, reading_time, is_hidden)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	if err = tx.QueryRowxContext(
		ctx,
		query,
		b.Title,
		b.Description,
		b.Content,
		b.ImageURL,
		b.Slug,
		b.ReadingTime,
		b.IsHidden,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("blog repository: insert %w", err)
	}

	if len(tagIDs) > 0 {
		linkQuery := `INSERT INTO blog_tags (blog_id, tag_id) VALUES `
		linkValues := make([]interface{}, 0, len(tagIDs)*2)
		for i, tagID := range tagIDs {
			if i > 0 {
				linkQuery += ", "
			}
			linkQuery += fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2)
			linkValues = append(linkValues, b.ID, tagID)
		}
		linkQuery += " ON CONFLICT DO NOTHING"

		if _, err = tx.ExecContext(ctx, linkQuery, linkValues...); err != nil {
			if isPgError(err, pgForeignKeyViolation) {
				err = apperror.ErrTagNotFound
				return err
			}
			return fmt.Errorf("blog repository: link tags %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("blog repository: commit %w", err)
	}
	return nil
}

// Update обновляет поля записи и довешивает новые метки по label.
// Уже привязанные метки этим путём не снимаются.
func (r *BlogRepository) Update(ctx context.Context, b *models.Blog, newLabels []string) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("blog repository: begin tx %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		UPDATE blogs
		SET title = $1,
		    description = $2,
		    content = $3,
		    image_url = $4,
		    reading_time = $5,
		    updated_at = NOW()
		WHERE id = $6
		RETURNING slug, is_hidden, created_at, updated_at
	`
	if err = tx.QueryRowxContext(
		ctx,
		query,
		b.Title,
		b.Description,
		b.Content,
		b.ImageURL,
		b.ReadingTime,
		b.ID,
	).Scan(&b.Slug, &b.IsHidden, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = apperror.ErrBlogNotFound
			return err
		}
		return fmt.Errorf("blog repository: update %w", err)
	}

	for _, label := range newLabels {
		var tagID uuid.UUID
		// Метка либо создаётся, либо переиспользуется существующая.
		if err = tx.QueryRowxContext(ctx, `
			INSERT INTO tags (label) VALUES ($1)
			ON CONFLICT (label) DO UPDATE SET label = EXCLUDED.label
			RETURNING id
		`, label).Scan(&tagID); err != nil {
			return fmt.Errorf("blog repository: upsert tag %w", err)
		}

		if _, err = tx.ExecContext(ctx, `
			INSERT INTO blog_tags (blog_id, tag_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, b.ID, tagID); err != nil {
			return fmt.Errorf("blog repository: attach tag %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("blog repository: commit %w", err)
	}
	return nil
}

// SetHidden переключает видимость записи.
func (r *BlogRepository) SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE blogs SET is_hidden = $1, updated_at = NOW() WHERE id = $2
	`, hidden, id)
	if err != nil {
		return fmt.Errorf("blog repository: set hidden %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("blog repository: set hidden rows affected %w", err)
	}
	if affected == 0 {
		return apperror.ErrBlogNotFound
	}
	return nil
}

// Delete удаляет запись. Метки остаются: они принадлежат блогу в целом.
func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("blog repository: delete %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("blog repository: delete rows affected %w", err)
	}
	if affected == 0 {
		return apperror.ErrBlogNotFound
	}
	return nil
}

// loadTags подгружает метки для набора записей одним запросом.
func (r *BlogRepository) loadTags(ctx context.Context, blogs []models.Blog) error {
	if len(blogs) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(blogs))
	for i := range blogs {
		blogs[i].Tags = []models.Tag{}
		ids = append(ids, blogs[i].ID)
	}

	query, args, err := sqlx.In(`
		SELECT bt.blog_id, t.id, t.label, t.created_at
		FROM blog_tags bt
		JOIN tags t ON t.id = bt.tag_id
		WHERE bt.blog_id IN (?)
		ORDER BY t.label
	`, ids)
	if err != nil {
		return fmt.Errorf("blog repository: load tags query %w", err)
	}

	rows, err := r.db.QueryxContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("blog repository: load tags %w", err)
	}
	defer rows.Close()

	byBlog := make(map[uuid.UUID][]models.Tag, len(blogs))
	for rows.Next() {
		var blogID uuid.UUID
		var t models.Tag
		if err := rows.Scan(&blogID, &t.ID, &t.Label, &t.CreatedAt); err != nil {
			return fmt.Errorf("blog repository: load tags scan %w", err)
		}
		byBlog[blogID] = append(byBlog[blogID], t)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("blog repository: load tags rows %w", err)
	}

	for i := range blogs {
		if tags, ok := byBlog[blogs[i].ID]; ok {
			blogs[i].Tags = tags
		}
	}
	return nil
}

// isPgError проверяет код ошибки PostgreSQL.
func isPgError(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}
