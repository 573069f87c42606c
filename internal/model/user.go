package model

import "time"

// Roles for directory users.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User represents a registered store customer. This directory is intentionally
// disjoint from the static access-policy accounts in internal/auth; merging the
// two identity systems is a product decision that has not been taken.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName     string    `json:"fullName" gorm:"size:255"`
	Role         string    `json:"role" gorm:"size:50;default:'USER'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the caller-visible projection of a User.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Public returns the projection safe to echo back to clients.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}
