package auth

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var ErrUnauthorized = errors.New("unauthorized")

// RoleStaff is the only role the gate issues. Mutation routes require it.
const RoleStaff = "STAFF"

// Gate checks a single static credential pair and issues tokens for it.
// The store has exactly one staff account, configured at startup.
type Gate struct {
	username     string
	passwordHash string
	secret       string
	tokenTTL     time.Duration
}

func NewGate(username, passwordHash, secret string, tokenTTL time.Duration) *Gate {
	return &Gate{
		username:     username,
		passwordHash: passwordHash,
		secret:       secret,
		tokenTTL:     tokenTTL,
	}
}

// Login verifies the credentials and returns a signed token on success.
func (g *Gate) Login(username, password string) (string, error) {
	if username != g.username || !VerifyPassword(g.passwordHash, password) {
		return "", ErrUnauthorized
	}
	return GenerateToken(g.secret, g.username, RoleStaff, g.tokenTTL)
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
