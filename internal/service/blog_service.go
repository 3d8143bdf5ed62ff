package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/portfolio-cms/internal/models"
	"github.com/ignatzorin/portfolio-cms/internal/pkg/apperror"
)

// Средняя скорость чтения для оценки времени — слов в минуту.
const wordsPerMinute = 200

// maxBlogTags — максимум меток, допустимых при создании записи.
const maxBlogTags = 3

// BlogStorage описывает взаимодействие сервиса с хранилищем блога.
type BlogStorage interface {
	List(ctx context.Context, limit, offset int, includeHidden bool) ([]models.Blog, error)
	Count(ctx context.Context, includeHidden bool) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	GetVisibleBySlug(ctx context.Context, slug string) (*models.Blog, error)
	Neighbors(ctx context.Context, createdAt time.Time) (*models.BlogNeighbors, error)
	Create(ctx context.Context, b *models.Blog, tagIDs []uuid.UUID) error
	Update(ctx context.Context, b *models.Blog, newLabels []string) error
	SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TagStorage описывает хранилище меток блога.
type TagStorage interface {
	List(ctx context.Context) ([]models.Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tag, error)
	ExistsByLabel(ctx context.Context, label string) (bool, error)
	Create(ctx context.Context, t *models.Tag) error
	Update(ctx context.Context, t *models.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BlogInput — поля для создания записи. Tags — идентификаторы
// существующих меток.
type BlogInput struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Content     string      `json:"content"`
	ImageURL    string      `json:"image_url"`
	Tags        []uuid.UUID `json:"tags"`
}

// BlogUpdateInput — поля для обновления записи. Tags — метки по label:
// новые создаются, существующие довешиваются, снятие меток этим путём
// не выполняется.
type BlogUpdateInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
}

// TagInput — поля метки.
type TagInput struct {
	Label string `json:"label"`
}

// BlogService отвечает за записи блога: слаги, время чтения,
// видимость и хронологическую навигацию.
type BlogService struct {
	blogs BlogStorage
	tags  TagStorage
	now   func() time.Time
}

// NewBlogService создаёт сервис блога.
func NewBlogService(blogs BlogStorage, tags TagStorage) *BlogService {
	return &BlogService{
		blogs: blogs,
		tags:  tags,
		now:   time.Now,
	}
}

// Create создаёт видимую запись блога. Слаг выводится из заголовка
// и метки времени, время чтения — из содержимого.
func (s *BlogService) Create(ctx context.Context, input BlogInput) (*models.Blog, error) {
	if input.Title == "" || input.Description == "" || input.Content == "" || input.ImageURL == "" {
		return nil, apperror.ErrFieldsRequired
	}
	if len(input.Tags) == 0 {
		return nil, apperror.ErrTagsRequired
	}
	if len(input.Tags) > maxBlogTags {
		return nil, apperror.ErrTooManyTags
	}

	b := &models.Blog{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		ImageURL:    input.ImageURL,
		Slug:        s.slugify(input.Title),
		ReadingTime: readingTime(input.Content),
	}
	if err := s.blogs.Create(ctx, b, input.Tags); err != nil {
		return nil, err
	}

	return s.blogs.GetByID(ctx, b.ID)
}

// List возвращает страницу записей и общее их число.
func (s *BlogService) List(ctx context.Context, page, limit int, includeHidden bool) ([]models.Blog, int, error) {
	total, err := s.blogs.Count(ctx, includeHidden)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	blogs, err := s.blogs.List(ctx, limit, offset, includeHidden)
	if err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

// GetByID возвращает запись по идентификатору, включая скрытые.
func (s *BlogService) GetByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	return s.blogs.GetByID(ctx, id)
}

// GetBySlug возвращает видимую запись и её хронологических соседей.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*models.Blog, *models.BlogNeighbors, error) {
	b, err := s.blogs.GetVisibleBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	neighbors, err := s.blogs.Neighbors(ctx, b.CreatedAt)
	if err != nil {
		return nil, nil, err
	}
	return b, neighbors, nil
}

// Update перезаписывает поля записи и пересчитывает время чтения.
// Слаг и видимость не меняются.
func (s *BlogService) Update(ctx context.Context, id uuid.UUID, input BlogUpdateInput) (*models.Blog, error) {
	if input.Title == "" || input.Description == "" || input.Content == "" || input.ImageURL == "" {
		return nil, apperror.ErrFieldsRequired
	}
	if len(input.Tags) == 0 {
		return nil, apperror.ErrTagsRequired
	}
	if len(input.Tags) > maxBlogTags {
		return nil, apperror.ErrTooManyTags
	}

	b := &models.Blog{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		ImageURL:    input.ImageURL,
		ReadingTime: readingTime(input.Content),
	}
	if err := s.blogs.Update(ctx, b, input.Tags); err != nil {
		return nil, err
	}

	return s.blogs.GetByID(ctx, id)
}

// Hide скрывает запись из публичной выдачи.
func (s *BlogService) Hide(ctx context.Context, id uuid.UUID) error {
	return s.blogs.SetHidden(ctx, id, true)
}

// Unhide возвращает запись в публичную выдачу.
func (s *BlogService) Unhide(ctx context.Context, id uuid.UUID) error {
	return s.blogs.SetHidden(ctx, id, false)
}

// Delete удаляет запись.
func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.blogs.Delete(ctx, id)
}

// ListTags возвращает все метки.
func (s *BlogService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.tags.List(ctx)
}

// CreateTag создаёт метку. Метка должна быть свободна.
func (s *BlogService) CreateTag(ctx context.Context, input TagInput) (*models.Tag, error) {
	if input.Label == "" {
		return nil, apperror.ErrFieldsRequired
	}

	exists, err := s.tags.ExistsByLabel(ctx, input.Label)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.ErrTagExists
	}

	t := &models.Tag{Label: input.Label}
	if err := s.tags.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTag переименовывает метку.
func (s *BlogService) UpdateTag(ctx context.Context, id uuid.UUID, input TagInput) (*models.Tag, error) {
	if input.Label == "" {
		return nil, apperror.ErrFieldsRequired
	}

	t := &models.Tag{ID: id, Label: input.Label}
	if err := s.tags.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTag удаляет метку.
func (s *BlogService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return s.tags.Delete(ctx, id)
}

// slugify строит слаг из заголовка: нижний регистр, пробелы заменяются
// дефисами, в конец дописывается метка времени в миллисекундах.
// Метка времени делает слаг уникальным при совпадающих заголовках.
func (s *BlogService) slugify(title string) string {
	base := strings.ReplaceAll(strings.ToLower(title), " ", "-")
	return fmt.Sprintf("%s-%d", base, s.now().UnixMilli())
}

// readingTime оценивает время чтения: количество слов, делённое на
// скорость чтения, с округлением вверх.
func readingTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return fmt.Sprintf("%d min", minutes)
}
