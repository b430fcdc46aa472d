package database

import (
	"database/sql"
	"log"
)

// EnsureSchema creates the core tables if they are missing. Failures
// are logged and skipped so the process can still start against a
// partially provisioned database.
func EnsureSchema(db *sql.DB) {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name VARCHAR(150),
			email VARCHAR(200) UNIQUE,
			password VARCHAR(255),
			role VARCHAR(20) DEFAULT 'Teacher',
			must_change_password BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS teachers (
			id SERIAL PRIMARY KEY,
			user_id INT,
			principal_id INT,
			name VARCHAR(150),
			phone VARCHAR(30),
			qualification VARCHAR(255),
			specialization VARCHAR(255),
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id SERIAL PRIMARY KEY,
			principal_id INT,
			teacher_id INT,
			name VARCHAR(150) NOT NULL,
			roll_no VARCHAR(80),
			class_name VARCHAR(80),
			standard VARCHAR(50),
			section VARCHAR(20),
			dob DATE,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS subjects (
			id SERIAL PRIMARY KEY,
			principal_id INT,
			name VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS teacher_subjects (
			id SERIAL PRIMARY KEY,
			principal_id INT,
			teacher_id INT,
			subject_id INT,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS subject_proposals (
			id SERIAL PRIMARY KEY,
			principal_id INT,
			teacher_id INT,
			name VARCHAR(255) NOT NULL,
			status VARCHAR(20) DEFAULT 'Pending',
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS exams (
			id SERIAL PRIMARY KEY,
			principal_id INT,
			name VARCHAR(255) NOT NULL,
			max_marks INT NOT NULL DEFAULT 100,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS exam_marks (
			id SERIAL PRIMARY KEY,
			exam_id INT,
			student_id INT,
			subject_name VARCHAR(255),
			marks INT,
			status VARCHAR(20) DEFAULT 'Pending',
			created_by INT,
			created_at TIMESTAMP DEFAULT NOW()
		)`,
	}

	for _, s := range statements {
		if _, err := db.Exec(s); err != nil {
			log.Printf("Schema ensure error: %v", err)
		}
	}
}
