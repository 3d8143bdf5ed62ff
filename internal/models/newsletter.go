package models

import (
	"time"

	"github.com/google/uuid"
)

// Newsletter описывает подписку на рассылку.
type Newsletter struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
