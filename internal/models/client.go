package models

import "time"

// Client has no login. WalkIn marks the client reserved for anonymous express visits.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Phone  string `gorm:"size:20" json:"phone"`
	Email  string `gorm:"size:100" json:"email"`
	WalkIn bool   `gorm:"not null;default:false;index" json:"walk_in"`

	RegisteredOn string `gorm:"size:10" json:"registered_on"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
