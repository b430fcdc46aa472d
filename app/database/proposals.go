package database

import (
	"database/sql"

	"student-management/app/models"
)

func CreateProposal(db *sql.DB, principalID, teacherID int, name string) (int, error) {
	var id int
	query := `INSERT INTO subject_proposals (principal_id, teacher_id, name, status)
			  VALUES ($1, $2, $3, $4) RETURNING id`
	err := db.QueryRow(query, principalID, teacherID, name, models.StatusPending).Scan(&id)
	return id, err
}

func ListProposals(db *sql.DB, principalID int) ([]*models.SubjectProposal, error) {
	query := `SELECT p.id, p.principal_id, p.teacher_id, p.name, p.status, p.created_at, COALESCE(t.name, '')
			  FROM subject_proposals p JOIN teachers t ON p.teacher_id = t.id
			  WHERE p.principal_id = $1 ORDER BY p.id DESC`
	rows, err := db.Query(query, principalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var proposals []*models.SubjectProposal
	for rows.Next() {
		p := &models.SubjectProposal{}
		if err := rows.Scan(&p.ID, &p.PrincipalID, &p.TeacherID, &p.Name,
			&p.Status, &p.CreatedAt, &p.TeacherName); err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}

func ListProposalsByTeacher(db *sql.DB, teacherID int) ([]*models.SubjectProposal, error) {
	query := `SELECT id, principal_id, teacher_id, name, status, created_at
			  FROM subject_proposals WHERE teacher_id = $1 ORDER BY id DESC`
	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var proposals []*models.SubjectProposal
	for rows.Next() {
		p := &models.SubjectProposal{}
		if err := rows.Scan(&p.ID, &p.PrincipalID, &p.TeacherID, &p.Name,
			&p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}

// proposalDecisionErr maps a failed conditional transition to the
// right error without leaking whether the row exists outside the
// caller's tenant.
func proposalDecisionErr(db *sql.DB, proposalID, principalID int) error {
	var status string
	err := db.QueryRow(`SELECT status FROM subject_proposals WHERE id = $1 AND principal_id = $2`,
		proposalID, principalID).Scan(&status)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return ErrAlreadyDecided
}

// ApproveProposal performs the whole approval as one transaction:
// transition the proposal out of Pending, create the subject, and
// grant the proposing teacher access to it. The status update is
// conditional on Pending so two concurrent approvals cannot both
// apply the side effects.
func ApproveProposal(db *sql.DB, proposalID, principalID int) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var teacherID int
	var name string
	err = tx.QueryRow(
		`UPDATE subject_proposals SET status = $1
		 WHERE id = $2 AND principal_id = $3 AND status = $4
		 RETURNING teacher_id, name`,
		models.StatusApproved, proposalID, principalID, models.StatusPending,
	).Scan(&teacherID, &name)
	if err == sql.ErrNoRows {
		return 0, proposalDecisionErr(db, proposalID, principalID)
	}
	if err != nil {
		return 0, err
	}

	var subjectID int
	err = tx.QueryRow(`INSERT INTO subjects (principal_id, name) VALUES ($1, $2) RETURNING id`,
		principalID, name).Scan(&subjectID)
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(`INSERT INTO teacher_subjects (principal_id, teacher_id, subject_id) VALUES ($1, $2, $3)`,
		principalID, teacherID, subjectID)
	if err != nil {
		return 0, err
	}

	return subjectID, tx.Commit()
}

// DeclineProposal is terminal and has no side effects beyond the
// status change. Like approval it only transitions Pending rows.
func DeclineProposal(db *sql.DB, proposalID, principalID int) error {
	res, err := db.Exec(
		`UPDATE subject_proposals SET status = $1
		 WHERE id = $2 AND principal_id = $3 AND status = $4`,
		models.StatusDeclined, proposalID, principalID, models.StatusPending,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return proposalDecisionErr(db, proposalID, principalID)
	}
	return nil
}
