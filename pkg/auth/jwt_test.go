package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/chainsafe/cryptoballot/pkg/config"
)

func newTestIssuer(now time.Time) *TokenIssuer {
	issuer := NewTokenIssuer(config.AuthConfig{
		Issuer:        "cryptoballot-test",
		AccessSecret:  "access-secret-0123456789",
		RefreshSecret: "refresh-secret-0123456789",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    24 * time.Hour,
	})
	issuer.now = func() time.Time { return now }
	return issuer
}

func TestTokenIssuer_AccessRoundTrip(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	issuer := newTestIssuer(now)

	token, expiresAt, err := issuer.IssueAccess(42, "ada@example.com")
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}
	if !expiresAt.Equal(now.Add(15 * time.Minute)) {
		t.Fatalf("unexpected expiry %v", expiresAt)
	}

	claims, err := issuer.ParseAccess(token)
	if err != nil {
		t.Fatalf("ParseAccess failed: %v", err)
	}
	id, err := claims.AccountID()
	if err != nil || id != 42 {
		t.Fatalf("expected account id 42, got %d (%v)", id, err)
	}
	if claims.Email != "ada@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
}

func TestTokenIssuer_RefreshCarriesTokenID(t *testing.T) {
	issuer := newTestIssuer(time.Unix(1_700_000_000, 0))

	token, _, err := issuer.IssueRefresh(7, "bob@example.com", "3f1c6a5e-0000-4000-8000-000000000001")
	if err != nil {
		t.Fatalf("IssueRefresh failed: %v", err)
	}
	claims, err := issuer.ParseRefresh(token)
	if err != nil {
		t.Fatalf("ParseRefresh failed: %v", err)
	}
	if claims.ID != "3f1c6a5e-0000-4000-8000-000000000001" {
		t.Fatalf("unexpected jti %q", claims.ID)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	issuer := newTestIssuer(now)

	token, _, err := issuer.IssueAccess(1, "a@example.com")
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}

	issuer.now = func() time.Time { return now.Add(16 * time.Minute) }
	if _, err := issuer.ParseAccess(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenIssuer_KindMismatch(t *testing.T) {
	issuer := newTestIssuer(time.Unix(1_700_000_000, 0))

	refresh, _, err := issuer.IssueRefresh(1, "a@example.com", "jti")
	if err != nil {
		t.Fatalf("IssueRefresh failed: %v", err)
	}
	if _, err := issuer.ParseAccess(refresh); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("refresh token accepted as access token: %v", err)
	}

	access, _, err := issuer.IssueAccess(1, "a@example.com")
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}
	if _, err := issuer.ParseRefresh(access); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("access token accepted as refresh token: %v", err)
	}
}

func TestTokenIssuer_WrongSecretOrIssuer(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	issuer := newTestIssuer(now)
	token, _, err := issuer.IssueAccess(1, "a@example.com")
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}

	other := newTestIssuer(now)
	other.accessSecret = []byte("another-access-secret-000")
	if _, err := other.ParseAccess(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}

	foreign := newTestIssuer(now)
	foreign.issuer = "someone-else"
	if _, err := foreign.ParseAccess(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong issuer, got %v", err)
	}

	if _, err := issuer.ParseAccess("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}
