// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record behind every session token. It is created on
// registration, mutated only through profile updates and never deleted by
// any exposed operation.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"` // Login identifier; uniqueness is checked before insert.
	Password  string    `json:"-"`     // Hex SHA-256 digest, never the plaintext.
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
