package models

import "time"

// User represents a user account in the system.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"` // Never expose this to the client
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
}
