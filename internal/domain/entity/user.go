// Package entity contains the core business objects of the back office,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a back-office operator who can sign in and place orders on behalf of clients.
type User struct {
	ID           uint      // Primary key.
	Email        string    // Login identifier, unique across users.
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash of the password; never serialized.
	CreatedAt    time.Time // Timestamp of sign-up.
}

// Session records a token issued at sign-in. A token is only accepted while its session row exists.
type Session struct {
	ID        uint
	UserID    uint
	Token     string
	CreatedAt time.Time
}
