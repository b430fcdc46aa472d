package models

// Identity is the caller classification carried through a request.
// Exactly one variant is attached per authenticated request; handlers
// switch on the concrete type so access checks stay exhaustive instead
// of comparing role strings.
type Identity interface {
	identity()
}

// PrincipalIdentity identifies a logged-in principal. The principal's
// user id doubles as the tenant key (principal_id) on every scoped row.
type PrincipalIdentity struct {
	UserID int
	Name   string
}

// TeacherIdentity identifies a logged-in teacher by their user row.
// The teacher profile row (teachers.id, principal_id) is looked up per
// request because a freshly provisioned account may not have one yet.
type TeacherIdentity struct {
	UserID             int
	Name               string
	MustChangePassword bool
}

// StudentIdentity identifies a student authenticated via the weaker
// (roll_no, dob) credential pair.
type StudentIdentity struct {
	StudentID int
	Name      string
}

func (PrincipalIdentity) identity() {}
func (TeacherIdentity) identity()   {}
func (StudentIdentity) identity()   {}
