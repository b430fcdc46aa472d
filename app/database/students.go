package database

import (
	"database/sql"

	"student-management/app/models"
)

const studentColumns = `s.id, s.principal_id, s.teacher_id, s.name, COALESCE(s.roll_no, ''),
	COALESCE(s.class_name, ''), COALESCE(s.standard, ''), COALESCE(s.section, ''),
	COALESCE(s.dob::text, ''), s.created_at`

func scanStudents(rows *sql.Rows, withTeacherName bool) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		dest := []interface{}{
			&s.ID, &s.PrincipalID, &s.TeacherID, &s.Name, &s.RollNo,
			&s.ClassName, &s.Standard, &s.Section, &s.DOB, &s.CreatedAt,
		}
		if withTeacherName {
			dest = append(dest, &s.TeacherName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func ListStudentsByPrincipal(db *sql.DB, principalID int) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + `, COALESCE(t.name, '')
			  FROM students s LEFT JOIN teachers t ON s.teacher_id = t.id
			  WHERE s.principal_id = $1 ORDER BY s.id DESC`
	rows, err := db.Query(query, principalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStudents(rows, true)
}

func ListStudentsByTeacher(db *sql.DB, teacherID int) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + `, COALESCE(t.name, '')
			  FROM students s LEFT JOIN teachers t ON s.teacher_id = t.id
			  WHERE s.teacher_id = $1 ORDER BY s.id DESC`
	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStudents(rows, true)
}

func getStudent(db *sql.DB, filter string, args ...interface{}) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT ` + studentColumns + ` FROM students s WHERE ` + filter
	err := db.QueryRow(query, args...).Scan(
		&s.ID, &s.PrincipalID, &s.TeacherID, &s.Name, &s.RollNo,
		&s.ClassName, &s.Standard, &s.Section, &s.DOB, &s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func GetStudentForPrincipal(db *sql.DB, studentID, principalID int) (*models.Student, error) {
	return getStudent(db, `s.id = $1 AND s.principal_id = $2`, studentID, principalID)
}

func GetStudentForTeacher(db *sql.DB, studentID, teacherID int) (*models.Student, error) {
	return getStudent(db, `s.id = $1 AND s.teacher_id = $2`, studentID, teacherID)
}

// GetStudentByCredentials authenticates a student by plain equality on
// (roll_no, dob). Deliberately weaker than the password scheme; swap
// this function out to harden the student credential model. The dob is
// compared as text so malformed input fails the lookup instead of the
// statement.
func GetStudentByCredentials(db *sql.DB, rollNo, dob string) (*models.Student, error) {
	return getStudent(db, `s.roll_no = $1 AND s.dob::text = $2`, rollNo, dob)
}

// GetStudentWithTeacher returns a student row with the assigned
// teacher's name resolved, for the student's own dashboard.
func GetStudentWithTeacher(db *sql.DB, studentID int) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT ` + studentColumns + `, COALESCE(t.name, '')
			  FROM students s LEFT JOIN teachers t ON s.teacher_id = t.id
			  WHERE s.id = $1`
	err := db.QueryRow(query, studentID).Scan(
		&s.ID, &s.PrincipalID, &s.TeacherID, &s.Name, &s.RollNo,
		&s.ClassName, &s.Standard, &s.Section, &s.DOB, &s.CreatedAt, &s.TeacherName,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func CreateStudent(db *sql.DB, s *models.Student) (int, error) {
	var id int
	query := `INSERT INTO students (principal_id, teacher_id, name, roll_no, class_name, standard, section, dob)
			  VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, '')::date)
			  RETURNING id`
	err := db.QueryRow(query, s.PrincipalID, s.TeacherID, s.Name, s.RollNo,
		s.ClassName, s.Standard, s.Section, s.DOB).Scan(&id)
	return id, err
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students SET name = $1, roll_no = NULLIF($2, ''), class_name = NULLIF($3, ''),
			  standard = NULLIF($4, ''), section = NULLIF($5, ''), dob = NULLIF($6, '')::date, teacher_id = $7
			  WHERE id = $8`
	_, err := db.Exec(query, s.Name, s.RollNo, s.ClassName, s.Standard, s.Section, s.DOB, s.TeacherID, s.ID)
	return err
}

func deleteStudent(db *sql.DB, filter string, args ...interface{}) error {
	res, err := db.Exec(`DELETE FROM students WHERE `+filter, args...)
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

func DeleteStudentByPrincipal(db *sql.DB, studentID, principalID int) error {
	return deleteStudent(db, `id = $1 AND principal_id = $2`, studentID, principalID)
}

func DeleteStudentByTeacher(db *sql.DB, studentID, teacherID int) error {
	return deleteStudent(db, `id = $1 AND teacher_id = $2`, studentID, teacherID)
}

func CountStudents(db *sql.DB, principalID int) (int, error) {
	var c int
	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE principal_id = $1`, principalID).Scan(&c)
	return c, err
}
