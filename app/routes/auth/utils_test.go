package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-management/app/models"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		ident models.Identity
	}{
		{"principal", models.PrincipalIdentity{UserID: 7, Name: "Head"}},
		{"teacher", models.TeacherIdentity{UserID: 12, Name: "Ms Jones"}},
		{"teacher with forced password change", models.TeacherIdentity{UserID: 13, Name: "New Hire", MustChangePassword: true}},
		{"student", models.StudentIdentity{StudentID: 99, Name: "Alex"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateSessionToken(tt.ident)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := ValidateSessionToken(token)
			require.NoError(t, err)

			got, err := IdentityFromClaims(claims)
			require.NoError(t, err)
			assert.Equal(t, tt.ident, got)
		})
	}
}

func TestValidateSessionTokenRejectsTampering(t *testing.T) {
	token, err := GenerateSessionToken(models.PrincipalIdentity{UserID: 1, Name: "Head"})
	require.NoError(t, err)

	_, err = ValidateSessionToken(token + "x")
	assert.Error(t, err)

	_, err = ValidateSessionToken("not-a-token")
	assert.Error(t, err)
}

func TestIdentityFromClaimsUnknownRole(t *testing.T) {
	_, err := IdentityFromClaims(&SessionClaims{Role: "Superuser"})
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("teacher123")
	require.NoError(t, err)
	assert.NotEqual(t, "teacher123", hash)

	assert.True(t, CheckPasswordHash("teacher123", hash))
	assert.False(t, CheckPasswordHash("teacher124", hash))
	assert.False(t, CheckPasswordHash("teacher123", "not-a-hash"))
}
