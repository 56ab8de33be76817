package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chainsafe/cryptoballot/pkg/config"
)

var (
	// ErrTokenExpired is returned when a token is well-formed but past its expiry
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidToken is returned for tokens with a bad signature, issuer or shape
	ErrInvalidToken = errors.New("invalid token")
)

// TokenKind separates access tokens from refresh tokens so one can never be
// presented as the other.
type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// Claims are the JWT claims issued for an account
type Claims struct {
	Email string    `json:"email"`
	Kind  TokenKind `json:"typ"`
	jwt.RegisteredClaims
}

// AccountID returns the account id carried in the subject claim
func (c *Claims) AccountID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, c.Subject)
	}
	return id, nil
}

// TokenIssuer signs and verifies HS256 access and refresh tokens
type TokenIssuer struct {
	issuer        string
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewTokenIssuer creates a token issuer from the auth configuration
func NewTokenIssuer(cfg config.AuthConfig) *TokenIssuer {
	return &TokenIssuer{
		issuer:        cfg.Issuer,
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           time.Now,
	}
}

// IssueAccess returns a signed access token and its expiry
func (i *TokenIssuer) IssueAccess(accountID int64, email string) (string, time.Time, error) {
	return i.sign(AccessToken, accountID, email, "", i.accessTTL, i.accessSecret)
}

// IssueRefresh returns a signed refresh token whose jti is tokenID
func (i *TokenIssuer) IssueRefresh(accountID int64, email, tokenID string) (string, time.Time, error) {
	return i.sign(RefreshToken, accountID, email, tokenID, i.refreshTTL, i.refreshSecret)
}

// ParseAccess validates an access token
func (i *TokenIssuer) ParseAccess(token string) (*Claims, error) {
	return i.parse(token, AccessToken, i.accessSecret)
}

// ParseRefresh validates a refresh token. The caller still has to check
// that the jti has not been revoked.
func (i *TokenIssuer) ParseRefresh(token string) (*Claims, error) {
	return i.parse(token, RefreshToken, i.refreshSecret)
}

func (i *TokenIssuer) sign(
	kind TokenKind,
	accountID int64,
	email, tokenID string,
	ttl time.Duration,
	secret []byte,
) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(ttl)

	claims := &Claims{
		Email: email,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   strconv.FormatInt(accountID, 10),
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign %s token: %w", kind, err)
	}
	return signed, expiresAt, nil
}

func (i *TokenIssuer) parse(token string, kind TokenKind, secret []byte) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Kind != kind {
		return nil, fmt.Errorf("%w: expected %s token, got %q", ErrInvalidToken, kind, claims.Kind)
	}
	if _, err := claims.AccountID(); err != nil {
		return nil, err
	}
	return claims, nil
}
