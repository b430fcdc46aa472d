package database

import (
	"database/sql"

	"student-management/app/models"
)

const teacherColumns = `t.id, t.user_id, t.principal_id, COALESCE(t.name, ''), COALESCE(t.phone, ''),
	COALESCE(t.qualification, ''), COALESCE(t.specialization, ''), t.created_at`

func scanTeacher(row *sql.Row) (*models.Teacher, error) {
	t := &models.Teacher{}
	err := row.Scan(
		&t.ID, &t.UserID, &t.PrincipalID, &t.Name, &t.Phone,
		&t.Qualification, &t.Specialization, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetTeacherByUserID fetches the teacher profile owning a user row.
// Returns ErrNotFound for accounts provisioned without a profile.
func GetTeacherByUserID(db *sql.DB, userID int) (*models.Teacher, error) {
	row := db.QueryRow(`SELECT `+teacherColumns+` FROM teachers t WHERE t.user_id = $1`, userID)
	t, err := scanTeacher(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func GetTeacherByID(db *sql.DB, teacherID, principalID int) (*models.Teacher, error) {
	row := db.QueryRow(`SELECT `+teacherColumns+` FROM teachers t WHERE t.id = $1 AND t.principal_id = $2`,
		teacherID, principalID)
	t, err := scanTeacher(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func ListTeachers(db *sql.DB, principalID int) ([]*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + `, COALESCE(u.email, '')
			  FROM teachers t LEFT JOIN users u ON t.user_id = u.id
			  WHERE t.principal_id = $1 ORDER BY t.id DESC`
	rows, err := db.Query(query, principalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		t := &models.Teacher{}
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.PrincipalID, &t.Name, &t.Phone,
			&t.Qualification, &t.Specialization, &t.CreatedAt, &t.Email,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// ProvisionTeacher creates the login user and the teacher profile in
// one transaction so a failed profile insert never strands a login.
func ProvisionTeacher(db *sql.DB, principalID int, name, email, phone, qualification, specialization, passwordHash string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var userID int
	err = tx.QueryRow(
		`INSERT INTO users (name, email, password, role, must_change_password)
		 VALUES ($1, $2, $3, $4, TRUE) RETURNING id`,
		name, email, passwordHash, models.RoleTeacher,
	).Scan(&userID)
	if err != nil {
		return 0, err
	}

	var teacherID int
	err = tx.QueryRow(
		`INSERT INTO teachers (user_id, principal_id, name, phone, qualification, specialization)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		userID, principalID, name, phone, qualification, specialization,
	).Scan(&teacherID)
	if err != nil {
		return 0, err
	}

	return teacherID, tx.Commit()
}

func UpdateTeacher(db *sql.DB, teacherID int, name, phone, qualification, specialization string) error {
	query := `UPDATE teachers SET name = $1, phone = $2, qualification = $3, specialization = $4
			  WHERE id = $5`
	_, err := db.Exec(query, name, phone, qualification, specialization, teacherID)
	return err
}

// DeleteTeacher removes the teacher profile together with its login
// user. Students assigned to the teacher keep a dangling teacher_id;
// the schema does not cascade.
func DeleteTeacher(db *sql.DB, teacherID, principalID int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var userID sql.NullInt64
	err = tx.QueryRow(
		`DELETE FROM teachers WHERE id = $1 AND principal_id = $2 RETURNING user_id`,
		teacherID, principalID,
	).Scan(&userID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if userID.Valid {
		if _, err := tx.Exec(`DELETE FROM users WHERE id = $1`, userID.Int64); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func CountTeachers(db *sql.DB, principalID int) (int, error) {
	var c int
	err := db.QueryRow(`SELECT COUNT(*) FROM teachers WHERE principal_id = $1`, principalID).Scan(&c)
	return c, err
}
