package database

import (
	"database/sql"

	"student-management/app/models"
)

func InsertMark(db *sql.DB, examID, studentID int, subjectName string, marks, createdBy int) error {
	query := `INSERT INTO exam_marks (exam_id, student_id, subject_name, marks, status, created_by)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := db.Exec(query, examID, studentID, subjectName, marks, models.StatusPending, createdBy)
	return err
}

// ListPendingMarks returns the principal's moderation queue for one
// exam, with student and submitting teacher names resolved.
func ListPendingMarks(db *sql.DB, examID int) ([]*models.ExamMark, error) {
	query := `SELECT em.id, em.exam_id, em.student_id, COALESCE(em.subject_name, ''), em.marks,
				em.status, COALESCE(em.created_by, 0), em.created_at, s.name, COALESCE(t.name, '')
			  FROM exam_marks em
			  JOIN students s ON em.student_id = s.id
			  LEFT JOIN teachers t ON em.created_by = t.id
			  WHERE em.exam_id = $1 AND em.status = $2
			  ORDER BY em.created_at`
	rows, err := db.Query(query, examID, models.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks []*models.ExamMark
	for rows.Next() {
		m := &models.ExamMark{}
		if err := rows.Scan(&m.ID, &m.ExamID, &m.StudentID, &m.SubjectName, &m.Marks,
			&m.Status, &m.CreatedBy, &m.CreatedAt, &m.StudentName, &m.TeacherName); err != nil {
			return nil, err
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

// ListApprovedMarks returns a student's approved marks with exam name
// and max marks resolved, newest exam first. Pending and declined rows
// never appear in student-facing output.
func ListApprovedMarks(db *sql.DB, studentID int) ([]*models.ExamMark, error) {
	query := `SELECT em.id, em.exam_id, em.student_id, COALESCE(em.subject_name, ''), em.marks,
				em.status, COALESCE(em.created_by, 0), em.created_at, ex.name, ex.max_marks
			  FROM exam_marks em
			  JOIN exams ex ON em.exam_id = ex.id
			  WHERE em.student_id = $1 AND em.status = $2
			  ORDER BY ex.created_at DESC, em.subject_name`
	rows, err := db.Query(query, studentID, models.StatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks []*models.ExamMark
	for rows.Next() {
		m := &models.ExamMark{}
		if err := rows.Scan(&m.ID, &m.ExamID, &m.StudentID, &m.SubjectName, &m.Marks,
			&m.Status, &m.CreatedBy, &m.CreatedAt, &m.ExamName, &m.MaxMarks); err != nil {
			return nil, err
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

func markDecisionErr(db *sql.DB, markID, principalID int) error {
	var status string
	err := db.QueryRow(
		`SELECT em.status FROM exam_marks em JOIN exams ex ON em.exam_id = ex.id
		 WHERE em.id = $1 AND ex.principal_id = $2`,
		markID, principalID).Scan(&status)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return ErrAlreadyDecided
}

// SetMarkStatus moves a mark out of Pending. Tenancy is checked by
// joining through the exam, and the update is conditional on the row
// still being Pending so a decided mark can never transition again.
func SetMarkStatus(db *sql.DB, markID, principalID int, status string) error {
	res, err := db.Exec(
		`UPDATE exam_marks em SET status = $1
		 FROM exams ex
		 WHERE em.exam_id = ex.id AND em.id = $2 AND ex.principal_id = $3 AND em.status = $4`,
		status, markID, principalID, models.StatusPending,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return markDecisionErr(db, markID, principalID)
	}
	return nil
}

// CountPendingMarks counts the principal's whole moderation queue
// across exams, for the dashboard.
func CountPendingMarks(db *sql.DB, principalID int) (int, error) {
	var c int
	query := `SELECT COUNT(em.id) FROM exam_marks em
			  JOIN exams ex ON em.exam_id = ex.id
			  WHERE ex.principal_id = $1 AND em.status = $2`
	err := db.QueryRow(query, principalID, models.StatusPending).Scan(&c)
	return c, err
}
