package user

import "time"

type UserDB struct {
	ID           int64
	Mobile       string
	Email        *string
	PasswordHash string
	FirstName    string
	LastName     string
	Address      string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RoleCountDB struct {
	Role  string
	Count int64
}
