package models

import "time"

type Exam struct {
	ID          int       `json:"id"`
	PrincipalID int       `json:"principal_id"`
	Name        string    `json:"name"`
	MaxMarks    int       `json:"max_marks"`
	CreatedAt   time.Time `json:"created_at"`
}

type ExamMark struct {
	ID          int       `json:"id"`
	ExamID      int       `json:"exam_id"`
	StudentID   int       `json:"student_id"`
	SubjectName string    `json:"subject_name"`
	Marks       int       `json:"marks"`
	Status      string    `json:"status"`
	CreatedBy   int       `json:"created_by"`
	ExamName    string    `json:"exam_name,omitempty"`
	MaxMarks    int       `json:"max_marks,omitempty"`
	StudentName string    `json:"student_name,omitempty"`
	TeacherName string    `json:"teacher_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
