package models

import (
	"strings"
	"time"
)

// User represents a local account
type User struct {
	ID         int64     `json:"pk" db:"id"`
	Username   string    `json:"username" db:"username"`
	Email      string    `json:"email" db:"email"`
	FirstName  string    `json:"first_name" db:"first_name"`
	LastName   string    `json:"last_name" db:"last_name"`
	DateJoined time.Time `json:"-" db:"date_joined"`
}

// UserProfile is the public projection of a user returned by the profile endpoint
type UserProfile struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Profile returns the public fields of the user
func (u *User) Profile() UserProfile {
	return UserProfile{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// UsernameFromEmail returns the local part of an email address,
// i.e. everything before the first '@'
func UsernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
