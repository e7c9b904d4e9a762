package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account. Only the fields auth needs live here.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
