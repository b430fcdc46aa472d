package models

import "time"

type Student struct {
	ID          int       `json:"id"`
	PrincipalID int       `json:"principal_id"`
	TeacherID   *int      `json:"teacher_id,omitempty"`
	Name        string    `json:"name"`
	RollNo      string    `json:"roll_no,omitempty"`
	ClassName   string    `json:"class_name,omitempty"`
	Standard    string    `json:"standard,omitempty"`
	Section     string    `json:"section,omitempty"`
	DOB         string    `json:"dob,omitempty"`
	TeacherName string    `json:"teacher_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
