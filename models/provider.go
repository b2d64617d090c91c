package models

import "time"

// Profile holds the provider's public-facing details.
type Profile struct {
	Name        string `bson:"name" json:"name,omitempty"`
	Specialty   string `bson:"specialty" json:"specialty,omitempty"`
	Email       string `bson:"email" json:"email,omitempty"`
	PhoneNumber string `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Address     string `bson:"address" json:"address,omitempty"`
	Bio         string `bson:"bio" json:"bio,omitempty"`
}

// Security carries credential material. Plaintext fields never reach Mongo;
// hashes never reach JSON.
type Security struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash" json:"-"`
}

// Provider is a bookable service provider (a doctor). Availability is nil
// until the provider publishes a weekly template.
type Provider struct {
	ID           string        `bson:"id" json:"id,omitempty"`
	Profile      Profile       `bson:"profile" json:"profile"`
	Security     Security      `bson:"security" json:"security,omitempty"`
	Availability *Availability `bson:"availability,omitempty" json:"availability,omitempty"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt,omitempty"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt,omitempty"`
}

// ProviderAuthResponse is returned on successful registration or login.
type ProviderAuthResponse struct {
	Provider Provider `json:"provider"`
	Token    string   `json:"token"`
}
