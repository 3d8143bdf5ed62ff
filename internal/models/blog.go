package models

import (
	"time"

	"github.com/google/uuid"
)

// Blog описывает запись блога. Создаётся сразу видимой,
// скрывается и возвращается явными операциями hide/unhide.
type Blog struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Content     string    `db:"content" json:"content"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	Slug        string    `db:"slug" json:"slug"`
	ReadingTime string    `db:"reading_time" json:"readingTime"`
	IsHidden    bool      `db:"is_hidden" json:"isHidden"`
	Tags        []Tag     `db:"-" json:"tags"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Tag описывает метку блога. Метка уникальна.
type Tag struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Label     string    `db:"label" json:"label"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// BlogNeighbors хранит слаги хронологических соседей видимой записи.
type BlogNeighbors struct {
	NextSlug     *string
	PreviousSlug *string
}
