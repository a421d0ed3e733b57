package models

import "time"

// User is a registered account. PasswordHash must never be serialized
// outward, hence the json:"-" tag.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
