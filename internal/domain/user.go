package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é um usuário da API. Quando vinculado a uma pessoa do diretório,
// PersonID aponta para ela e a visibilidade é resolvida a partir daí.
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	PersonID     *string    `json:"person_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Claims struct {
	UserID       int
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserRoleID   int
	PersonID     string
	jwt.RegisteredClaims
}
