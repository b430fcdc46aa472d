package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"student-management/app/models"
)

const sessionCookie = "session_token"

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// SessionClaims is the JWT payload carrying the caller's identity.
// Exactly one of the role shapes is populated; IdentityFromClaims
// rebuilds the tagged variant on every request.
type SessionClaims struct {
	Role               string `json:"role"`
	UserID             int    `json:"user_id,omitempty"`
	StudentID          int    `json:"student_id,omitempty"`
	Name               string `json:"name,omitempty"`
	MustChangePassword bool   `json:"must_change_password,omitempty"`
	jwt.RegisteredClaims
}

const roleStudent = "Student"

func getSessionSecret() []byte {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "change_me_in_prod_please" // Default for development
	}
	return []byte(secret)
}

// GenerateSessionToken signs a JWT for the given identity. The session
// is the only place role information lives between requests; the role
// is never taken from a later request body.
func GenerateSessionToken(ident models.Identity) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "student-management",
		},
	}

	switch id := ident.(type) {
	case models.PrincipalIdentity:
		claims.Role = models.RolePrincipal
		claims.UserID = id.UserID
		claims.Name = id.Name
	case models.TeacherIdentity:
		claims.Role = models.RoleTeacher
		claims.UserID = id.UserID
		claims.Name = id.Name
		claims.MustChangePassword = id.MustChangePassword
	case models.StudentIdentity:
		claims.Role = roleStudent
		claims.StudentID = id.StudentID
		claims.Name = id.Name
	default:
		return "", errors.New("unknown identity")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getSessionSecret())
}

func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return getSessionSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrInvalidKey
}

// IdentityFromClaims rebuilds the identity variant from a validated
// token.
func IdentityFromClaims(claims *SessionClaims) (models.Identity, error) {
	switch claims.Role {
	case models.RolePrincipal:
		return models.PrincipalIdentity{UserID: claims.UserID, Name: claims.Name}, nil
	case models.RoleTeacher:
		return models.TeacherIdentity{
			UserID:             claims.UserID,
			Name:               claims.Name,
			MustChangePassword: claims.MustChangePassword,
		}, nil
	case roleStudent:
		return models.StudentIdentity{StudentID: claims.StudentID, Name: claims.Name}, nil
	}
	return nil, errors.New("unknown role")
}
