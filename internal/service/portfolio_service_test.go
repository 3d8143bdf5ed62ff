package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/portfolio-cms/internal/models"
	"github.com/ignatzorin/portfolio-cms/internal/pkg/apperror"
)

// mockPortfolioRepo хранит единственную запись портфолио в памяти.
type mockPortfolioRepo struct {
	portfolio *models.Portfolio
}

func (m *mockPortfolioRepo) Get(ctx context.Context) (*models.Portfolio, error) {
	if m.portfolio == nil {
		return nil, apperror.ErrPortfolioNotFound
	}
	p := *m.portfolio
	return &p, nil
}

func (m *mockPortfolioRepo) Create(ctx context.Context, p *models.Portfolio) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	copied := *p
	m.portfolio = &copied
	return nil
}

func (m *mockPortfolioRepo) Update(ctx context.Context, p *models.Portfolio) error {
	if m.portfolio == nil {
		return apperror.ErrPortfolioNotFound
	}
	p.ID = m.portfolio.ID
	p.UpdatedAt = time.Now()
	copied := *p
	m.portfolio = &copied
	return nil
}

func (m *mockPortfolioRepo) DeleteAll(ctx context.Context) error {
	m.portfolio = nil
	return nil
}

// mockEducationRepo хранит записи об образовании в памяти.
type mockEducationRepo struct {
	items []models.Education
}

func (m *mockEducationRepo) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.Education, error) {
	out := []models.Education{}
	for _, e := range m.items {
		if e.PortfolioID == portfolioID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEducationRepo) Create(ctx context.Context, e *models.Education) error {
	e.ID = uuid.New()
	m.items = append(m.items, *e)
	return nil
}

func (m *mockEducationRepo) Update(ctx context.Context, e *models.Education) error {
	for i := range m.items {
		if m.items[i].ID == e.ID {
			e.PortfolioID = m.items[i].PortfolioID
			m.items[i] = *e
			return nil
		}
	}
	return apperror.ErrEducationNotFound
}

func (m *mockEducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return apperror.ErrEducationNotFound
}

// mockWorkExperienceRepo хранит записи об опыте работы в памяти.
type mockWorkExperienceRepo struct {
	items []models.WorkExperience
}

func (m *mockWorkExperienceRepo) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.WorkExperience, error) {
	out := []models.WorkExperience{}
	for _, w := range m.items {
		if w.PortfolioID == portfolioID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *mockWorkExperienceRepo) Create(ctx context.Context, w *models.WorkExperience) error {
	w.ID = uuid.New()
	m.items = append(m.items, *w)
	return nil
}

func (m *mockWorkExperienceRepo) Update(ctx context.Context, w *models.WorkExperience) error {
	for i := range m.items {
		if m.items[i].ID == w.ID {
			w.PortfolioID = m.items[i].PortfolioID
			m.items[i] = *w
			return nil
		}
	}
	return apperror.ErrWorkExperienceNotFound
}

func (m *mockWorkExperienceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return apperror.ErrWorkExperienceNotFound
}

// mockSkillRepo хранит навыки в памяти.
type mockSkillRepo struct {
	items []models.Skill
}

func (m *mockSkillRepo) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.Skill, error) {
	out := []models.Skill{}
	for _, s := range m.items {
		if s.PortfolioID == portfolioID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSkillRepo) ExistsByLabel(ctx context.Context, label string) (bool, error) {
	for _, s := range m.items {
		if s.Label == label {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSkillRepo) Create(ctx context.Context, s *models.Skill) error {
	s.ID = uuid.New()
	m.items = append(m.items, *s)
	return nil
}

func (m *mockSkillRepo) Update(ctx context.Context, s *models.Skill) error {
	for i := range m.items {
		if m.items[i].ID == s.ID {
			s.PortfolioID = m.items[i].PortfolioID
			m.items[i] = *s
			return nil
		}
	}
	return apperror.ErrSkillNotFound
}

func (m *mockSkillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return apperror.ErrSkillNotFound
}

// mockProjectRepo хранит проекты в памяти.
type mockProjectRepo struct {
	items  []models.Project
	skills *mockSkillRepo
}

func (m *mockProjectRepo) ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.Project, error) {
	out := []models.Project{}
	for _, p := range m.items {
		if p.PortfolioID == portfolioID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			p := m.items[i]
			return &p, nil
		}
	}
	return nil, apperror.ErrProjectNotFound
}

func (m *mockProjectRepo) Create(ctx context.Context, p *models.Project, skillIDs []uuid.UUID) error {
	p.ID = uuid.New()
	p.Skills = []models.Skill{}
	for _, skillID := range skillIDs {
		for _, s := range m.skills.items {
			if s.ID == skillID {
				p.Skills = append(p.Skills, s)
			}
		}
	}
	m.items = append(m.items, *p)
	return nil
}

func (m *mockProjectRepo) Update(ctx context.Context, p *models.Project) error {
	for i := range m.items {
		if m.items[i].ID == p.ID {
			p.PortfolioID = m.items[i].PortfolioID
			p.Skills = m.items[i].Skills
			m.items[i] = *p
			return nil
		}
	}
	return apperror.ErrProjectNotFound
}

func (m *mockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return apperror.ErrProjectNotFound
}

func newTestPortfolioService() (*PortfolioService, *mockPortfolioRepo, *mockSkillRepo) {
	portfolioRepo := &mockPortfolioRepo{}
	skillRepo := &mockSkillRepo{}
	svc := NewPortfolioService(
		portfolioRepo,
		&mockEducationRepo{},
		&mockWorkExperienceRepo{},
		skillRepo,
		&mockProjectRepo{skills: skillRepo},
	)
	return svc, portfolioRepo, skillRepo
}

func validPortfolioInput() PortfolioInput {
	return PortfolioInput{
		Email:       "me@example.com",
		Name:        "Ignat",
		Bio:         "bio",
		About:       "about",
		ImageURL:    "http://example.com/me.png",
		XURL:        "http://x.com/me",
		GithubURL:   "http://github.com/me",
		LinkedinURL: "http://linkedin.com/in/me",
		FacebookURL: "http://facebook.com/me",
	}
}

func TestPortfolioService_Create_RequiresAllFields(t *testing.T) {
	svc, _, _ := newTestPortfolioService()

	input := validPortfolioInput()
	input.About = ""
	if _, err := svc.Create(context.Background(), input); err != apperror.ErrFieldsRequired {
		t.Fatalf("ожидалась ErrFieldsRequired, получили %v", err)
	}
}

func TestPortfolioService_Create_SecondCreateReturnsExisting(t *testing.T) {
	svc, _, _ := newTestPortfolioService()
	ctx := context.Background()

	first, err := svc.Create(ctx, validPortfolioInput())
	if err != nil {
		t.Fatalf("первое создание вернуло ошибку: %v", err)
	}

	second, err := svc.Create(ctx, validPortfolioInput())
	if !errors.Is(err, apperror.ErrPortfolioExists) {
		t.Fatalf("ожидалась ErrPortfolioExists, получили %v", err)
	}
	if second == nil || second.ID != first.ID {
		t.Fatalf("повторное создание должно вернуть существующую запись")
	}
}

func TestPortfolioService_Update_WithoutPortfolio(t *testing.T) {
	svc, _, _ := newTestPortfolioService()

	if _, err := svc.Update(context.Background(), validPortfolioInput()); !errors.Is(err, apperror.ErrPortfolioNotFound) {
		t.Fatalf("ожидалась ErrPortfolioNotFound, получили %v", err)
	}
}

func TestPortfolioService_GetAggregates_EmptyWithoutPortfolio(t *testing.T) {
	svc, _, _ := newTestPortfolioService()

	aggregates, err := svc.GetAggregates(context.Background())
	if err != nil {
		t.Fatalf("get aggregates вернул ошибку: %v", err)
	}
	if len(aggregates) != 0 {
		t.Fatalf("без портфолио ожидался пустой список, получили %d", len(aggregates))
	}
}

func TestPortfolioService_GetAggregates_CollectsChildren(t *testing.T) {
	svc, _, _ := newTestPortfolioService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, validPortfolioInput()); err != nil {
		t.Fatalf("create вернул ошибку: %v", err)
	}
	if _, err := svc.AddSkill(ctx, SkillInput{Label: "Go", URL: "http://go.dev"}); err != nil {
		t.Fatalf("add skill вернул ошибку: %v", err)
	}
	if _, err := svc.AddEducation(ctx, EducationInput{Institution: "MSU", Degree: "BSc", StartDate: "2018", EndDate: "2022", Status: "done"}); err != nil {
		t.Fatalf("add education вернул ошибку: %v", err)
	}

	aggregates, err := svc.GetAggregates(ctx)
	if err != nil {
		t.Fatalf("get aggregates вернул ошибку: %v", err)
	}
	if len(aggregates) != 1 {
		t.Fatalf("ожидалась одна запись, получили %d", len(aggregates))
	}

	agg := aggregates[0]
	if len(agg.Skills) != 1 || len(agg.Educations) != 1 {
		t.Fatalf("дочерние коллекции должны заполняться: skills=%d education=%d", len(agg.Skills), len(agg.Educations))
	}
	if agg.WorkExperiences == nil || agg.Projects == nil {
		t.Fatalf("пустые коллекции должны быть слайсами, а не nil")
	}
}

func TestPortfolioService_AddSkill_WithoutPortfolio(t *testing.T) {
	svc, _, skillRepo := newTestPortfolioService()

	_, err := svc.AddSkill(context.Background(), SkillInput{Label: "Go", URL: "http://go.dev"})
	if !errors.Is(err, apperror.ErrPortfolioNotFound) {
		t.Fatalf("ожидалась ErrPortfolioNotFound, получили %v", err)
	}
	if len(skillRepo.items) != 0 {
		t.Fatalf("навык не должен сохраняться без портфолио")
	}
}

func TestPortfolioService_AddSkill_DuplicateLabel(t *testing.T) {
	svc, _, _ := newTestPortfolioService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, validPortfolioInput()); err != nil {
		t.Fatalf("create вернул ошибку: %v", err)
	}
	if _, err := svc.AddSkill(ctx, SkillInput{Label: "Go", URL: "http://go.dev"}); err != nil {
		t.Fatalf("первый навык вернул ошибку: %v", err)
	}

	if _, err := svc.AddSkill(ctx, SkillInput{Label: "Go", URL: "http://go.dev"}); !errors.Is(err, apperror.ErrSkillExists) {
		t.Fatalf("ожидалась ErrSkillExists, получили %v", err)
	}
}

func TestPortfolioService_AddProject_RequiresAllFields(t *testing.T) {
	svc, _, _ := newTestPortfolioService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, validPortfolioInput()); err != nil {
		t.Fatalf("create вернул ошибку: %v", err)
	}

	_, err := svc.AddProject(ctx, ProjectInput{
		Name:        "CMS",
		Description: "",
		StartDate:   "2024",
		EndDate:     "2025",
		ImageURL:    "http://example.com/p.png",
		WebURL:      "http://example.com",
	})
	if !errors.Is(err, apperror.ErrFieldsRequired) {
		t.Fatalf("ожидалась ErrFieldsRequired, получили %v", err)
	}
}

func TestPortfolioService_AddProject_LinksSkills(t *testing.T) {
	svc, _, _ := newTestPortfolioService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, validPortfolioInput()); err != nil {
		t.Fatalf("create вернул ошибку: %v", err)
	}
	skill, err := svc.AddSkill(ctx, SkillInput{Label: "Go", URL: "http://go.dev"})
	if err != nil {
		t.Fatalf("add skill вернул ошибку: %v", err)
	}

	project, err := svc.AddProject(ctx, ProjectInput{
		Name:        "CMS",
		Description: "portfolio backend",
		StartDate:   "2024",
		EndDate:     "2025",
		ImageURL:    "http://example.com/p.png",
		WebURL:      "http://example.com",
		Skills:      []uuid.UUID{skill.ID},
	})
	if err != nil {
		t.Fatalf("add project вернул ошибку: %v", err)
	}
	if len(project.Skills) != 1 || project.Skills[0].ID != skill.ID {
		t.Fatalf("проект должен вернуться с привязанными навыками")
	}
}

func TestPortfolioService_Delete_RemovesPortfolio(t *testing.T) {
	svc, portfolioRepo, _ := newTestPortfolioService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, validPortfolioInput()); err != nil {
		t.Fatalf("create вернул ошибку: %v", err)
	}
	if err := svc.Delete(ctx); err != nil {
		t.Fatalf("delete вернул ошибку: %v", err)
	}
	if portfolioRepo.portfolio != nil {
		t.Fatalf("портфолио должно удалиться")
	}

	if _, err := svc.ListSkills(ctx); !errors.Is(err, apperror.ErrPortfolioNotFound) {
		t.Fatalf("после удаления дочерние операции должны отдавать ErrPortfolioNotFound, получили %v", err)
	}
}
