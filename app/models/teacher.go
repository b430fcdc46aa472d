package models

import "time"

type Teacher struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	PrincipalID    int       `json:"principal_id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone,omitempty"`
	Qualification  string    `json:"qualification,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	Email          string    `json:"email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
