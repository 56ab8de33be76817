package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chainsafe/cryptoballot/internal/metrics"
	"github.com/chainsafe/cryptoballot/pkg/account"
	apperrors "github.com/chainsafe/cryptoballot/pkg/app/errors"
	"github.com/chainsafe/cryptoballot/pkg/auth"
)

const tokenType = "Bearer"

// Store is the account persistence the service needs
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateAccount(ctx context.Context, a *account.Account) error
	GetAccountByID(ctx context.Context, id int64) (*account.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*account.Account, error)
	GetAccountByWallet(ctx context.Context, walletAddress string) (*account.Account, error)
	SetWalletAddress(ctx context.Context, accountID int64, walletAddress string) error
	CreateRefreshToken(ctx context.Context, token *account.RefreshToken) error
	GetRefreshToken(ctx context.Context, id uuid.UUID) (*account.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id uuid.UUID, at time.Time) error
	RotateRefreshToken(ctx context.Context, oldID uuid.UUID, next *account.RefreshToken, now time.Time) error
}

// TokenIssuer signs access/refresh tokens and verifies refresh tokens
type TokenIssuer interface {
	IssueAccess(accountID int64, email string) (string, time.Time, error)
	IssueRefresh(accountID int64, email, tokenID string) (string, time.Time, error)
	ParseRefresh(token string) (*auth.Claims, error)
}

// Service defines the account and session operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Signup(ctx context.Context, req *account.SignupRequest) (*account.Profile, error)
	Login(ctx context.Context, email, password string) (*account.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*account.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	ConnectWallet(ctx context.Context, accountID int64, req *account.ConnectWalletRequest) (*account.Profile, error)
	Profile(ctx context.Context, accountID int64) (*account.Profile, error)
	GetAccount(ctx context.Context, id int64) (*account.Profile, error)
	Username(ctx context.Context, accountID int64) (string, error)
}

type accountService struct {
	store  Store
	tokens TokenIssuer
	settings
}

// NewService creates a new account service
func NewService(store Store, tokens TokenIssuer, opts ...Option) Service {
	return &accountService{
		store:    store,
		tokens:   tokens,
		settings: applyOptions(opts),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *accountService) cleanName(v string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(v))
}

// Signup registers a new account. The email is stored lower-cased.
func (s *accountService) Signup(ctx context.Context, req *account.SignupRequest) (_ *account.Profile, err error) {
	defer func() { metrics.AuthAttempts.WithLabelValues("signup", metrics.Result(err)).Inc() }()

	if req.Password != req.ConfirmPassword {
		return nil, apperrors.BadRequestError(nil, "passwords do not match")
	}

	a := &account.Account{
		Name:    s.cleanName(req.Name),
		Surname: s.cleanName(req.Surname),
		Email:   normalizeEmail(req.Email),
	}
	if a.Name == "" || a.Surname == "" || a.Email == "" {
		return nil, apperrors.BadRequestError(nil, "name, surname and email are required")
	}

	a.PasswordHash, err = auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}

	if err = s.store.CreateAccount(ctx, a); err != nil {
		if errors.Is(err, account.ErrEmailTaken) {
			return nil, apperrors.ConflictError(err, "email already registered")
		}
		return nil, apperrors.StoreError(err)
	}
	return a.Profile(), nil
}

// Login checks credentials and issues a fresh token pair.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *accountService) Login(ctx context.Context, email, password string) (_ *account.TokenPair, err error) {
	defer func() { metrics.AuthAttempts.WithLabelValues("login", metrics.Result(err)).Inc() }()

	a, err := s.store.GetAccountByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, apperrors.UnAuthorizedError(account.ErrInvalidCredentials, account.ErrInvalidCredentials.Error())
		}
		return nil, apperrors.StoreError(err)
	}
	if err = auth.CheckPassword(a.PasswordHash, password); err != nil {
		return nil, apperrors.UnAuthorizedError(account.ErrInvalidCredentials, account.ErrInvalidCredentials.Error())
	}

	pair, next, err := s.issuePair(a.ID, a.Email)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	if err = s.store.CreateRefreshToken(ctx, next); err != nil {
		return nil, apperrors.StoreError(err)
	}
	return pair, nil
}

// Refresh exchanges a usable refresh token for a new pair and revokes the old one
func (s *accountService) Refresh(ctx context.Context, refreshToken string) (_ *account.TokenPair, err error) {
	defer func() { metrics.AuthAttempts.WithLabelValues("refresh", metrics.Result(err)).Inc() }()

	claims, tokenID, err := s.parseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}
	accountID, _ := claims.AccountID()

	pair, next, err := s.issuePair(accountID, claims.Email)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}

	err = s.store.RotateRefreshToken(ctx, tokenID, next, s.now())
	switch {
	case err == nil:
		return pair, nil
	case errors.Is(err, account.ErrRefreshTokenNotFound), errors.Is(err, account.ErrRefreshTokenRevoked):
		return nil, apperrors.UnAuthorizedError(err, "invalid refresh token")
	default:
		return nil, apperrors.StoreError(err)
	}
}

// Logout revokes the refresh token. Logging out twice is not an error.
// The stored token must belong to the account named in the claims.
func (s *accountService) Logout(ctx context.Context, refreshToken string) (err error) {
	defer func() { metrics.AuthAttempts.WithLabelValues("logout", metrics.Result(err)).Inc() }()

	claims, tokenID, err := s.parseRefresh(refreshToken)
	if err != nil {
		return err
	}
	accountID, _ := claims.AccountID()

	stored, err := s.store.GetRefreshToken(ctx, tokenID)
	switch {
	case errors.Is(err, account.ErrRefreshTokenNotFound):
		return apperrors.UnAuthorizedError(err, "invalid refresh token")
	case err != nil:
		return apperrors.StoreError(err)
	case stored.AccountID != accountID:
		return apperrors.UnAuthorizedError(nil, "invalid refresh token")
	case stored.RevokedAt != nil:
		return nil
	}

	if err = s.store.RevokeRefreshToken(ctx, tokenID, s.now()); err != nil {
		return apperrors.StoreError(err)
	}
	return nil
}

// ConnectWallet binds an EVM address to the account.
// Re-binding the same address is a no-op; an address owned by another account is a Conflict.
func (s *accountService) ConnectWallet(ctx context.Context, accountID int64, req *account.ConnectWalletRequest) (*account.Profile, error) {
	if !auth.ValidateEVMAddress(req.WalletAddress) {
		return nil, apperrors.BadRequestError(nil, "invalid wallet address")
	}
	wallet := auth.NormalizeAddress(req.WalletAddress)

	if req.Signature != "" {
		signer, err := auth.VerifyEIP191Signature(account.WalletChallenge(accountID, wallet), req.Signature)
		if err != nil {
			return nil, apperrors.BadRequestError(err, "invalid wallet signature")
		}
		if signer.Hex() != wallet {
			return nil, apperrors.ForbiddenError(account.ErrWalletSignature, account.ErrWalletSignature.Error())
		}
	}

	a, err := s.getAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if a.WalletAddress == wallet {
		return a.Profile(), nil
	}

	owner, err := s.store.GetAccountByWallet(ctx, wallet)
	switch {
	case err == nil && owner.ID != accountID:
		return nil, apperrors.ConflictError(account.ErrWalletTaken, account.ErrWalletTaken.Error())
	case err != nil && !errors.Is(err, account.ErrAccountNotFound):
		return nil, apperrors.StoreError(err)
	}

	if err = s.store.SetWalletAddress(ctx, accountID, wallet); err != nil {
		switch {
		case errors.Is(err, account.ErrWalletTaken):
			return nil, apperrors.ConflictError(err, err.Error())
		case errors.Is(err, account.ErrAccountNotFound):
			return nil, apperrors.ResourceNotFoundError(err, "User not found")
		}
		return nil, apperrors.StoreError(err)
	}

	a.WalletAddress = wallet
	return a.Profile(), nil
}

// Profile returns the caller's own profile
func (s *accountService) Profile(ctx context.Context, accountID int64) (*account.Profile, error) {
	a, err := s.getAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return a.Profile(), nil
}

// GetAccount returns the public profile of any account
func (s *accountService) GetAccount(ctx context.Context, id int64) (*account.Profile, error) {
	if id < 1 {
		return nil, apperrors.BadRequestError(nil, "invalid account id")
	}
	a, err := s.getAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.Profile(), nil
}

// Username returns the account's first name
func (s *accountService) Username(ctx context.Context, accountID int64) (string, error) {
	a, err := s.getAccount(ctx, accountID)
	if err != nil {
		return "", err
	}
	return a.Name, nil
}

func (s *accountService) getAccount(ctx context.Context, id int64) (*account.Account, error) {
	a, err := s.store.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "User not found")
		}
		return nil, apperrors.StoreError(err)
	}
	return a, nil
}

func (s *accountService) parseRefresh(token string) (*auth.Claims, uuid.UUID, error) {
	claims, err := s.tokens.ParseRefresh(token)
	if err != nil {
		msg := "invalid refresh token"
		if errors.Is(err, auth.ErrTokenExpired) {
			msg = "refresh token expired"
		}
		return nil, uuid.Nil, apperrors.UnAuthorizedError(err, msg)
	}
	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, uuid.Nil, apperrors.UnAuthorizedError(err, "invalid refresh token")
	}
	return claims, tokenID, nil
}

// issuePair signs a new access/refresh pair and returns the refresh row to persist
func (s *accountService) issuePair(accountID int64, email string) (*account.TokenPair, *account.RefreshToken, error) {
	access, accessExp, err := s.tokens.IssueAccess(accountID, email)
	if err != nil {
		return nil, nil, err
	}

	tokenID := s.newTokenID()
	refresh, refreshExp, err := s.tokens.IssueRefresh(accountID, email, tokenID.String())
	if err != nil {
		return nil, nil, err
	}

	pair := &account.TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
		TokenType:        tokenType,
	}
	row := &account.RefreshToken{
		ID:        tokenID,
		AccountID: accountID,
		ExpiresAt: refreshExp,
	}
	return pair, row, nil
}
