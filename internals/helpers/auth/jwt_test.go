package helper

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func TestIssueAndParseToken(t *testing.T) {
	id := uuid.New()
	now := time.Now()
	raw, exp, err := IssueToken("secret", time.Hour, id, "a@x.id", "ADMIN", now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !exp.Equal(now.Add(time.Hour)) {
		t.Errorf("exp = %v", exp)
	}

	claims, gotID, err := ParseToken("secret", raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if gotID != id || claims.Email != "a@x.id" || claims.Role != "ADMIN" {
		t.Fatalf("claims = %+v id=%s", claims, gotID)
	}
}

func TestParseTokenRejects(t *testing.T) {
	id := uuid.New()
	valid, _, _ := IssueToken("secret", time.Hour, id, "a@x.id", "USER", time.Now())
	expired, _, _ := IssueToken("secret", time.Hour, id, "a@x.id", "USER", time.Now().Add(-2*time.Hour))

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: id.String()}).SignedString([]byte("secret"))
	badID, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:           "bukan-uuid",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))
	hs512, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		UserID:           id.String(),
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))

	cases := map[string]struct {
		secret string
		raw    string
	}{
		"wrong secret": {"other", valid},
		"expired":      {"secret", expired},
		"garbage":      {"secret", "abc.def.ghi"},
		"empty":        {"secret", ""},
		"no exp":       {"secret", noExp},
		"bad user id":  {"secret", badID},
		"other alg":    {"secret", hs512},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, err := ParseToken(tc.secret, tc.raw); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
