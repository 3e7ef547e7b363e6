// Package models defines the server-side records persisted in PostgreSQL
// and the values derived from them.
package models

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Profile is an authenticated user of the back office.
type Profile struct {
	ID           string
	Email        string
	Name         string
	Role         Role
	PasswordHash []byte
	CreatedAt    time.Time
}

func (p *Profile) IsAdmin() bool { return p.Role == RoleAdmin }
