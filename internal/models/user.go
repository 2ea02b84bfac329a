package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. Exactly one admin account exists in a default deployment;
// the role is seeded from config at registration time.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account in the voice classification system.
// Feedback, analytics and sample documents reference users by email,
// not by ObjectID — the email is the cross-collection join key.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// IsAdmin reports whether the user may access cross-user resources.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
