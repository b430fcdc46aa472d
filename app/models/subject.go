package models

import "time"

// Moderation states shared by subject proposals and exam marks.
// Pending is the only non-terminal state.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusDeclined = "Declined"
)

type Subject struct {
	ID          int       `json:"id"`
	PrincipalID int       `json:"principal_id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}

// TeacherSubject grants a teacher permission to record marks for a
// subject. Rows are created only by proposal approval.
type TeacherSubject struct {
	ID          int       `json:"id"`
	PrincipalID int       `json:"principal_id"`
	TeacherID   int       `json:"teacher_id"`
	SubjectID   int       `json:"subject_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type SubjectProposal struct {
	ID          int       `json:"id"`
	PrincipalID int       `json:"principal_id"`
	TeacherID   int       `json:"teacher_id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	TeacherName string    `json:"teacher_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
