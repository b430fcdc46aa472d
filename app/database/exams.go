package database

import (
	"database/sql"

	"student-management/app/models"
)

func CreateExam(db *sql.DB, principalID int, name string, maxMarks int) (int, error) {
	var id int
	err := db.QueryRow(`INSERT INTO exams (principal_id, name, max_marks) VALUES ($1, $2, $3) RETURNING id`,
		principalID, name, maxMarks).Scan(&id)
	return id, err
}

func ListExams(db *sql.DB, principalID int) ([]*models.Exam, error) {
	query := `SELECT id, principal_id, name, max_marks, created_at FROM exams
			  WHERE principal_id = $1 ORDER BY id DESC`
	rows, err := db.Query(query, principalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		e := &models.Exam{}
		if err := rows.Scan(&e.ID, &e.PrincipalID, &e.Name, &e.MaxMarks, &e.CreatedAt); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// GetExam is tenant-scoped; callers pass the acting principal's id or
// a teacher's inherited principal_id.
func GetExam(db *sql.DB, examID, principalID int) (*models.Exam, error) {
	e := &models.Exam{}
	query := `SELECT id, principal_id, name, max_marks, created_at FROM exams
			  WHERE id = $1 AND principal_id = $2`
	err := db.QueryRow(query, examID, principalID).Scan(
		&e.ID, &e.PrincipalID, &e.Name, &e.MaxMarks, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}
