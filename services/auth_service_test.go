package services

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"

	"room-reservation-backend/errors"
	"room-reservation-backend/models"
)

var testTokenKey = []byte("test-signing-key")

func seedUser(t *testing.T, uow *fakeUnitOfWork, username, password string) models.User {
	t.Helper()
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatal(err)
	}
	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		t.Fatal(err)
	}
	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: HashPassword(password, rawSalt),
		PasswordSalt: salt,
	}
	uow.usersByName[user.Username] = user
	return user
}

func TestHashPasswordIsDeterministicPerSalt(t *testing.T) {
	salt := []byte("0123456789abcdef")
	if HashPassword("secret", salt) != HashPassword("secret", salt) {
		t.Error("same password and salt must hash identically")
	}
	if HashPassword("secret", salt) == HashPassword("secret", []byte("fedcba9876543210")) {
		t.Error("different salts must produce different hashes")
	}
	if HashPassword("secret", salt) == HashPassword("Secret", salt) {
		t.Error("different passwords must produce different hashes")
	}
}

func TestGenerateSaltIsRandom(t *testing.T) {
	a, err := GenerateSalt()
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateSalt()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two fresh salts should differ")
	}
	raw, err := base64.StdEncoding.DecodeString(a)
	if err != nil {
		t.Fatalf("salt is not valid base64: %v", err)
	}
	if len(raw) != saltLength {
		t.Errorf("salt length = %d, want %d", len(raw), saltLength)
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	uow := newFakeUnitOfWork()
	user := seedUser(t, uow, "admin", "admin123")
	svc := NewAuthService(fakeFactory{uow}, testTokenKey)
	issued := time.Now()
	svc.now = func() time.Time { return issued }

	signed, err := svc.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatal(err)
	}

	token, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) { return testTokenKey, nil })
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	if claims["sub"] != user.ID.String() {
		t.Errorf("sub = %v, want %s", claims["sub"], user.ID)
	}
	if claims["username"] != "admin" {
		t.Errorf("username = %v, want admin", claims["username"])
	}
	if exp := int64(claims["exp"].(float64)); exp != issued.Add(tokenTTL).Unix() {
		t.Errorf("exp = %d, want %d", exp, issued.Add(tokenTTL).Unix())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	uow := newFakeUnitOfWork()
	seedUser(t, uow, "admin", "admin123")
	svc := NewAuthService(fakeFactory{uow}, testTokenKey)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	if errors.CodeOf(err) != errors.ErrCodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := NewAuthService(fakeFactory{uow}, testTokenKey)

	_, err := svc.Login(context.Background(), "nobody", "whatever")
	if errors.CodeOf(err) != errors.ErrCodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
}
