// Package account holds the account, session token and profile types shared
// by the account service and its postgres store.
package account

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrWalletTaken          = errors.New("wallet already connected to another account")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenRevoked  = errors.New("refresh token revoked or expired")
	ErrWalletSignature      = errors.New("wallet signature does not match address")
)

// Account is a registered user. PasswordHash never leaves the service layer.
type Account struct {
	ID            int64
	Name          string
	Surname       string
	Email         string
	PasswordHash  string
	WalletAddress string
	CreatedAt     time.Time
}

// Profile is the externally visible view of an account
type Profile struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Surname       string    `json:"surname"`
	Email         string    `json:"email"`
	WalletAddress string    `json:"walletAddress,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Profile strips the credentials off an account
func (a *Account) Profile() *Profile {
	return &Profile{
		ID:            a.ID,
		Name:          a.Name,
		Surname:       a.Surname,
		Email:         a.Email,
		WalletAddress: a.WalletAddress,
		CreatedAt:     a.CreatedAt,
	}
}

// RefreshToken is the persisted half of a refresh JWT; ID is the token's jti.
type RefreshToken struct {
	ID        uuid.UUID
	AccountID int64
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Usable reports whether the token can still be exchanged at now
func (t *RefreshToken) Usable(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

// TokenPair is returned by login and refresh
type TokenPair struct {
	AccessToken      string    `json:"accessToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshToken     string    `json:"refreshToken"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
	TokenType        string    `json:"tokenType"`
}

// SignupRequest carries a new account's details
type SignupRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Surname         string `json:"surname" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email,max=254"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// ConnectWalletRequest binds an EVM address to the caller's account.
// Signature is optional; when present it must be an EIP-191 signature of
// WalletChallenge by the wallet.
type ConnectWalletRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required"`
	Signature     string `json:"signature,omitempty"`
}

// WalletChallenge is the message a wallet signs to prove ownership when
// connecting to an account.
func WalletChallenge(accountID int64, walletAddress string) string {
	return fmt.Sprintf("Connect wallet %s to CryptoBallot account %d", walletAddress, accountID)
}
