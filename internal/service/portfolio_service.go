package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ignatzorin/portfolio-cms/internal/models"
	"github.com/ignatzorin/portfolio-cms/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-cms/internal/validation"
)

// PortfolioRepository описывает взаимодействие сервиса с хранилищем портфолио.
type PortfolioRepository interface {
	Get(ctx context.Context) (*models.Portfolio, error)
	Create(ctx context.Context, p *models.Portfolio) error
	Update(ctx context.Context, p *models.Portfolio) error
	DeleteAll(ctx context.Context) error
}

// EducationRepository описывает хранилище записей об образовании.
type EducationRepository interface {
	ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.Education, error)
	Create(ctx context.Context, e *models.Education) error
	Update(ctx context.Context, e *models.Education) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WorkExperienceRepository описывает хранилище записей об опыте работы.
type WorkExperienceRepository interface {
	ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.WorkExperience, error)
	Create(ctx context.Context, w *models.WorkExperience) error
	Update(ctx context.Context, w *models.WorkExperience) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SkillRepository описывает хранилище навыков.
type SkillRepository interface {
	ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.Skill, error)
	ExistsByLabel(ctx context.Context, label string) (bool, error)
	Create(ctx context.Context, s *models.Skill) error
	Update(ctx context.Context, s *models.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectRepository описывает хранилище проектов.
type ProjectRepository interface {
	ListByPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]models.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Create(ctx context.Context, p *models.Project, skillIDs []uuid.UUID) error
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PortfolioInput — изменяемые поля портфолио.
type PortfolioInput struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	About       string `json:"about"`
	ImageURL    string `json:"image_url"`
	XURL        string `json:"x_url"`
	GithubURL   string `json:"github_url"`
	LinkedinURL string `json:"linkedin_url"`
	FacebookURL string `json:"facebook_url"`
}

// EducationInput — поля записи об образовании.
type EducationInput struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      string `json:"status"`
}

// WorkExperienceInput — поля записи об опыте работы.
type WorkExperienceInput struct {
	CompanyName string `json:"companyName"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// SkillInput — поля навыка.
type SkillInput struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ProjectInput — поля проекта. Skills — идентификаторы существующих навыков.
type ProjectInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	ImageURL    string      `json:"image_url"`
	WebURL      string      `json:"web_url"`
	Skills      []uuid.UUID `json:"skills"`
}

// PortfolioService поддерживает инвариант единственного портфолио и
// жизненный цикл его дочерних сущностей. Принадлежность детей выражена
// внешним ключом, дополнительных списков ссылок нет.
type PortfolioService struct {
	portfolio       PortfolioRepository
	educations      EducationRepository
	workExperiences WorkExperienceRepository
	skills          SkillRepository
	projects        ProjectRepository
}

// NewPortfolioService создаёт сервис портфолио.
func NewPortfolioService(
	portfolio PortfolioRepository,
	educations EducationRepository,
	workExperiences WorkExperienceRepository,
	skills SkillRepository,
	projects ProjectRepository,
) *PortfolioService {
	return &PortfolioService{
		portfolio:       portfolio,
		educations:      educations,
		workExperiences: workExperiences,
		skills:          skills,
		projects:        projects,
	}
}

// GetAggregates возвращает портфолио со всеми дочерними коллекциями.
// Отсутствие портфолио — не ошибка для публичного чтения: возвращается
// пустой список.
func (s *PortfolioService) GetAggregates(ctx context.Context) ([]models.PortfolioAggregate, error) {
	p, err := s.portfolio.Get(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrPortfolioNotFound) {
			return []models.PortfolioAggregate{}, nil
		}
		return nil, err
	}

	agg := models.PortfolioAggregate{Portfolio: *p}

	if agg.Educations, err = s.educations.ListByPortfolio(ctx, p.ID); err != nil {
		return nil, err
	}
	if agg.WorkExperiences, err = s.workExperiences.ListByPortfolio(ctx, p.ID); err != nil {
		return nil, err
	}
	if agg.Projects, err = s.projects.ListByPortfolio(ctx, p.ID); err != nil {
		return nil, err
	}
	if agg.Skills, err = s.skills.ListByPortfolio(ctx, p.ID); err != nil {
		return nil, err
	}

	return []models.PortfolioAggregate{agg}, nil
}

// GetInfo возвращает портфолио без дочерних коллекций.
func (s *PortfolioService) GetInfo(ctx context.Context) ([]models.Portfolio, error) {
	p, err := s.portfolio.Get(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrPortfolioNotFound) {
			return []models.Portfolio{}, nil
		}
		return nil, err
	}
	return []models.Portfolio{*p}, nil
}

// Create создаёт портфолио. Если оно уже существует, возвращает
// существующую запись вместе с ошибкой ErrPortfolioExists.
func (s *PortfolioService) Create(ctx context.Context, input PortfolioInput) (*models.Portfolio, error) {
	existing, err := s.portfolio.Get(ctx)
	if err == nil {
		return existing, apperror.ErrPortfolioExists
	}
	if !errors.Is(err, apperror.ErrPortfolioNotFound) {
		return nil, err
	}

	if input.Email == "" || input.Name == "" || input.Bio == "" || input.About == "" ||
		input.ImageURL == "" || input.XURL == "" || input.GithubURL == "" ||
		input.LinkedinURL == "" || input.FacebookURL == "" {
		return nil, apperror.ErrFieldsRequired
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		return nil, apperror.New(apperror.ErrCodeBadRequest, err.Error())
	}

	p := &models.Portfolio{
		Email:       validation.NormalizeEmail(input.Email),
		Name:        input.Name,
		Bio:         input.Bio,
		About:       input.About,
		ImageURL:    input.ImageURL,
		XURL:        input.XURL,
		GithubURL:   input.GithubURL,
		LinkedinURL: input.LinkedinURL,
		FacebookURL: input.FacebookURL,
	}
	if err := s.portfolio.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update перезаписывает изменяемые поля существующего портфолио.
func (s *PortfolioService) Update(ctx context.Context, input PortfolioInput) (*models.Portfolio, error) {
	p, err := s.portfolio.Get(ctx)
	if err != nil {
		return nil, err
	}

	p.Email = input.Email
	p.Name = input.Name
	p.Bio = input.Bio
	p.About = input.About
	p.ImageURL = input.ImageURL
	p.XURL = input.XURL
	p.GithubURL = input.GithubURL
	p.LinkedinURL = input.LinkedinURL
	p.FacebookURL = input.FacebookURL

	if err := s.portfolio.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete удаляет портфолио вместе с дочерними сущностями (каскад по FK).
func (s *PortfolioService) Delete(ctx context.Context) error {
	return s.portfolio.DeleteAll(ctx)
}

// requirePortfolio возвращает портфолио или ErrPortfolioNotFound.
// Все мутации дочерних сущностей проходят через эту проверку.
func (s *PortfolioService) requirePortfolio(ctx context.Context) (*models.Portfolio, error) {
	return s.portfolio.Get(ctx)
}

// ListEducations возвращает записи об образовании.
func (s *PortfolioService) ListEducations(ctx context.Context) ([]models.Education, error) {
	p, err := s.requirePortfolio(ctx)
	if err != nil {
		return nil, err
	}
	return s.educations.ListByPortfolio(ctx, p.ID)
}

// AddEducation создаёт запись об образовании.
func (s *PortfolioService) AddEducation(ctx context.Context, input EducationInput) (*models.Education, error) {
	p, err := s.requirePortfolio(ctx)
	if err != nil {
		return nil, err
	}

	e := &models.Education{
		PortfolioID: p.ID,
		Institution: input.Institution,
		Degree:      input.Degree,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      input.Status,
	}
	if err := s.educations.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateEducation обновляет существующую запись об образовании.
func (s *PortfolioService) UpdateEducation(ctx context.Context, id uuid.UUID, input EducationInput) (*models.Education, error) {
	if _, err := s.requirePortfolio(ctx); err != nil {
		return nil, err
	}

	e := &models.Education{
		ID:          id,
		Institution: input.Institution,
		Degree:      input.Degree,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      input.Status,
	}
	if err := s.educations.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEducation удаляет запись об образовании.
func (s *PortfolioService) DeleteEducation(ctx context.Context, id uuid.UUID) error {
	if _, err := s.requirePortfolio(ctx); err != nil {
		return err
	}
	return s.educations.Delete(ctx, id)
}

// ListWorkExperiences возвращает записи об опыте работы.
func (s *PortfolioService) ListWorkExperiences(ctx context.Context) ([]models.WorkExperience, error) {
	p, err := s.requirePortfolio(ctx)
	if err != nil {
		return nil, err
	}
	return s.workExperiences.ListByPortfolio(ctx, p.ID)
}

// AddWorkExperience создаёт запись об опыте работы.
func (s *PortfolioService) AddWorkExperience(ctx context.Context, input WorkExperienceInput) (*models.WorkExperience, error) {
	p, err := s.requirePortfolio(ctx)
	if err != nil {
		return nil, err
	}

	w := &models.WorkExperience{
		PortfolioID: p.ID,
		CompanyName: input.CompanyName,
		Position:    input.Position,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	if err := s.workExperiences.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// UpdateWorkExperience обновляет существующую запись об опыте работы.
func (s *PortfolioService) UpdateWorkExperience(ctx context.Context, id uuid.UUID, input WorkExperienceInput) (*models.WorkExperience, error) {
	if _, err := s.requirePortfolio(ctx); err != nil {
		return nil, err
	}

	w := &models.WorkExperience{
		ID:          id,
		CompanyName: input.CompanyName,
		Position:    input.Position,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	if err := s.workExperiences.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// DeleteWorkExperience удаляет запись об опыте работы.
func (s *PortfolioService) DeleteWorkExperience(ctx context.Context, id uuid.UUID) error {
	if _, err := s.requirePortfolio(ctx); err != nil {
		return err
	}
	return s.workExperiences.Delete(ctx, id)
}

// ListSkills возвращает навыки.
func (s *PortfolioService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	p, err := s.requirePortfolio(ctx)
	if err != nil {
		return nil, err
	}
	return s.skills.ListByPortfolio(ctx, p.ID)
}

// AddSkill создаёт навык. Метка должна быть свободна.
func (s *PortfolioService) AddSkill(ctx context.Context, input SkillInput) (*models.Skill, error) {
	p, err := s.requirePortfolio(ctx)
	if err != nil {
		return nil, err
	}

	exists, err := s.skills.ExistsByLabel(ctx, input.Label)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.ErrSkillExists
	}

	skill := &models.Skill{
		PortfolioID: p.ID,
		Label:       input.Label,
		URL:         input.URL,
	}
	if err := s.skills.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// UpdateSkill обновляет существующий навык.
func (s *PortfolioService) UpdateSkill(ctx context.Context, id uuid.UUID, input SkillInput) (*models.Skill, error) {
	if _, err := s.requirePortfolio(ctx); err != nil {
		return nil, err
	}

	skill := &models.Skill{
		ID:    id,
		Label: input.Label,
		URL:   input.URL,
	}
	if err := s.skills.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// DeleteSkill удаляет навык.
func (s *PortfolioService) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	if _, err := s.requirePortfolio(ctx); err != nil {
		return err
	}
	return s.skills.Delete(ctx, id)
}

// ListProjects возвращает проекты с навыками.
func (s *PortfolioService) ListProjects(ctx context.Context) ([]models.Project, error) {
	p, err := s.requirePortfolio(ctx)
	if err != nil {
		return nil, err
	}
	return s.projects.ListByPortfolio(ctx, p.ID)
}

// GetProject возвращает проект по идентификатору.
func (s *PortfolioService) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// AddProject создаёт проект со связями на существующие навыки.
func (s *PortfolioService) AddProject(ctx context.Context, input ProjectInput) (*models.Project, error) {
	p, err := s.requirePortfolio(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name == "" || input.Description == "" || input.StartDate == "" ||
		input.EndDate == "" || input.ImageURL == "" || input.WebURL == "" {
		return nil, apperror.ErrFieldsRequired
	}

	project := &models.Project{
		PortfolioID: p.ID,
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		ImageURL:    input.ImageURL,
		WebURL:      input.WebURL,
	}
	if err := s.projects.Create(ctx, project, input.Skills); err != nil {
		return nil, err
	}

	return s.projects.GetByID(ctx, project.ID)
}

// UpdateProject обновляет поля проекта. Состав навыков не меняется.
func (s *PortfolioService) UpdateProject(ctx context.Context, id uuid.UUID, input ProjectInput) (*models.Project, error) {
	if _, err := s.requirePortfolio(ctx); err != nil {
		return nil, err
	}

	project := &models.Project{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		ImageURL:    input.ImageURL,
		WebURL:      input.WebURL,
	}
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return s.projects.GetByID(ctx, id)
}

// DeleteProject удаляет проект.
func (s *PortfolioService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if _, err := s.requirePortfolio(ctx); err != nil {
		return err
	}
	return s.projects.Delete(ctx, id)
}
