package database

import (
	"database/sql"

	"student-management/app/models"
)

func ListSubjects(db *sql.DB, principalID int) ([]*models.Subject, error) {
	query := `SELECT id, principal_id, name, created_at FROM subjects
			  WHERE principal_id = $1 ORDER BY id DESC`
	rows, err := db.Query(query, principalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		s := &models.Subject{}
		if err := rows.Scan(&s.ID, &s.PrincipalID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// ListGrantedSubjects returns the subjects a teacher may record marks
// for, i.e. those reachable through a teacher_subjects grant.
func ListGrantedSubjects(db *sql.DB, teacherID, principalID int) ([]*models.Subject, error) {
	query := `SELECT s.id, s.principal_id, s.name, s.created_at
			  FROM subjects s JOIN teacher_subjects ts ON ts.subject_id = s.id
			  WHERE ts.teacher_id = $1 AND ts.principal_id = $2 ORDER BY s.name`
	rows, err := db.Query(query, teacherID, principalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		s := &models.Subject{}
		if err := rows.Scan(&s.ID, &s.PrincipalID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func CreateSubject(db *sql.DB, principalID int, name string) (int, error) {
	var id int
	err := db.QueryRow(`INSERT INTO subjects (principal_id, name) VALUES ($1, $2) RETURNING id`,
		principalID, name).Scan(&id)
	return id, err
}

func DeleteSubject(db *sql.DB, subjectID, principalID int) error {
	res, err := db.Exec(`DELETE FROM subjects WHERE id = $1 AND principal_id = $2`, subjectID, principalID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func CountSubjects(db *sql.DB, principalID int) (int, error) {
	var c int
	err := db.QueryRow(`SELECT COUNT(*) FROM subjects WHERE principal_id = $1`, principalID).Scan(&c)
	return c, err
}
