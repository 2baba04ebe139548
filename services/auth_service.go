package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	stderrors "errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/pbkdf2"

	"room-reservation-backend/errors"
	"room-reservation-backend/repository"
)

const (
	pbkdf2Iterations = 100000
	pbkdf2KeyLength  = 32
	saltLength       = 16
	tokenTTL         = 7 * 24 * time.Hour
)

// HashPassword derives a 256-bit PBKDF2-HMACSHA256 digest and returns it
// base64-encoded, the format stored in the user table.
func HashPassword(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}

// GenerateSalt draws a fresh random password salt, base64-encoded.
func GenerateSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

type AuthService struct {
	repos    repository.Factory
	tokenKey []byte
	now      func() time.Time
}

func NewAuthService(repos repository.Factory, tokenKey []byte) *AuthService {
	return &AuthService{repos: repos, tokenKey: tokenKey, now: time.Now}
}

// Login verifies the credentials and issues a signed HS256 token valid for
// seven days.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repos.New().Users().GetByUsername(ctx, username)
	if stderrors.Is(err, repository.ErrNotFound) {
		return "", errors.Unauthorized("wrong username or password")
	}
	if err != nil {
		return "", errors.Internal("failed to load user", err)
	}

	salt, err := base64.StdEncoding.DecodeString(user.PasswordSalt)
	if err != nil {
		return "", errors.Internal("stored password salt is not valid base64", err)
	}
	if HashPassword(password, salt) != user.PasswordHash {
		return "", errors.Unauthorized("wrong username or password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID.String(),
		"username": user.Username,
		"exp":      s.now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.tokenKey)
	if err != nil {
		return "", errors.Internal("failed to sign token", err)
	}
	return signed, nil
}
