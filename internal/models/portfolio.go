package models

import (
	"time"

	"github.com/google/uuid"
)

// Portfolio описывает единственную запись портфолио, к которой
// привязаны все остальные сущности.
type Portfolio struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Email       string    `db:"email" json:"email"`
	Name        string    `db:"name" json:"name"`
	Bio         string    `db:"bio" json:"bio"`
	About       string    `db:"about" json:"about"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	XURL        string    `db:"x_url" json:"x_url"`
	GithubURL   string    `db:"github_url" json:"github_url"`
	LinkedinURL string    `db:"linkedin_url" json:"linkedin_url"`
	FacebookURL string    `db:"facebook_url" json:"facebook_url"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// PortfolioAggregate — портфолио вместе со всеми дочерними коллекциями.
// Отдаётся публичным эндпоинтом.
type PortfolioAggregate struct {
	Portfolio
	Educations      []Education      `json:"education"`
	WorkExperiences []WorkExperience `json:"workExperience"`
	Projects        []Project        `json:"projects"`
	Skills          []Skill          `json:"skills"`
}

// Education описывает запись об образовании.
type Education struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PortfolioID uuid.UUID `db:"portfolio_id" json:"portfolioId"`
	Institution string    `db:"institution" json:"institution"`
	Degree      string    `db:"degree" json:"degree"`
	StartDate   string    `db:"start_date" json:"startDate"`
	EndDate     string    `db:"end_date" json:"endDate"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// WorkExperience описывает запись об опыте работы.
type WorkExperience struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PortfolioID uuid.UUID `db:"portfolio_id" json:"portfolioId"`
	CompanyName string    `db:"company_name" json:"companyName"`
	Position    string    `db:"position" json:"position"`
	StartDate   string    `db:"start_date" json:"startDate"`
	EndDate     string    `db:"end_date" json:"endDate"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Skill описывает навык. Метка уникальна в пределах всей базы.
type Skill struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PortfolioID uuid.UUID `db:"portfolio_id" json:"portfolioId"`
	Label       string    `db:"label" json:"label"`
	URL         string    `db:"url" json:"url"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Project описывает проект. Связан с навыками через many-to-many.
type Project struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PortfolioID uuid.UUID `db:"portfolio_id" json:"portfolioId"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	StartDate   string    `db:"start_date" json:"startDate"`
	EndDate     string    `db:"end_date" json:"endDate"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	WebURL      string    `db:"web_url" json:"web_url"`
	Skills      []Skill   `db:"-" json:"skills"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
