package database

import (
	"database/sql"

	"student-management/app/models"
)

// GetUserByEmailAndRole looks up an active login row. The role comes
// from the stored row, never from the request, so the filter here only
// narrows which login form may match.
func GetUserByEmailAndRole(db *sql.DB, email, role string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, COALESCE(name, ''), email, password, role, must_change_password, created_at
			  FROM users WHERE email = $1 AND role = $2`

	err := db.QueryRow(query, email, role).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.Role, &user.MustChangePassword, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID int) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, COALESCE(name, ''), email, password, role, must_change_password, created_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.Role, &user.MustChangePassword, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func EmailExists(db *sql.DB, email string) (bool, error) {
	var id int
	err := db.QueryRow(`SELECT id FROM users WHERE email = $1`, email).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func CreateUser(db *sql.DB, name, email, passwordHash, role string, mustChangePassword bool) (int, error) {
	var id int
	query := `INSERT INTO users (name, email, password, role, must_change_password)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := db.QueryRow(query, name, email, passwordHash, role, mustChangePassword).Scan(&id)
	return id, err
}

// UpdateUserPassword replaces the password hash and clears the forced
// password change flag set at teacher provisioning.
func UpdateUserPassword(db *sql.DB, userID int, passwordHash string) error {
	query := `UPDATE users SET password = $1, must_change_password = FALSE WHERE id = $2`
	_, err := db.Exec(query, passwordHash, userID)
	return err
}
