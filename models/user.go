package models

import "time"

// User is a booking party (a patient).
type User struct {
	ID          string    `bson:"id" json:"id,omitempty"`
	Name        string    `bson:"name" json:"name,omitempty"`
	Email       string    `bson:"email" json:"email,omitempty"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Security    Security  `bson:"security" json:"security,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitempty"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt,omitempty"`
}

// UserAuthResponse is returned on successful registration or login.
type UserAuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
