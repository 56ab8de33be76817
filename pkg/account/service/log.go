package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/cryptoballot/pkg/account"
)

// logService wraps Service with automatic logging of all method calls.
// Passwords and tokens are never logged.
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the account Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger.With(zap.String("service", "AccountService")),
	}
}

func (ls *logService) done(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		ls.logger.Warn(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Debug(method+" completed", fields...)
}

// Signup wraps the service method with logging
func (ls *logService) Signup(ctx context.Context, req *account.SignupRequest) (profile *account.Profile, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{zap.String("email", req.Email)}
		if profile != nil {
			fields = append(fields, zap.Int64("account_id", profile.ID))
		}
		ls.done("Signup", start, err, fields...)
	}()
	return ls.svc.Signup(ctx, req)
}

// Login wraps the service method with logging
func (ls *logService) Login(ctx context.Context, email, password string) (pair *account.TokenPair, err error) {
	start := time.Now()
	defer func() { ls.done("Login", start, err, zap.String("email", email)) }()
	return ls.svc.Login(ctx, email, password)
}

// Refresh wraps the service method with logging
func (ls *logService) Refresh(ctx context.Context, refreshToken string) (pair *account.TokenPair, err error) {
	start := time.Now()
	defer func() { ls.done("Refresh", start, err) }()
	return ls.svc.Refresh(ctx, refreshToken)
}

// Logout wraps the service method with logging
func (ls *logService) Logout(ctx context.Context, refreshToken string) (err error) {
	start := time.Now()
	defer func() { ls.done("Logout", start, err) }()
	return ls.svc.Logout(ctx, refreshToken)
}

// ConnectWallet wraps the service method with logging
func (ls *logService) ConnectWallet(ctx context.Context, accountID int64, req *account.ConnectWalletRequest) (profile *account.Profile, err error) {
	start := time.Now()
	defer func() {
		ls.done("ConnectWallet", start, err,
			zap.Int64("account_id", accountID),
			zap.String("wallet", req.WalletAddress),
			zap.Bool("signed", req.Signature != ""))
	}()
	return ls.svc.ConnectWallet(ctx, accountID, req)
}

// Profile wraps the service method with logging
func (ls *logService) Profile(ctx context.Context, accountID int64) (profile *account.Profile, err error) {
	start := time.Now()
	defer func() { ls.done("Profile", start, err, zap.Int64("account_id", accountID)) }()
	return ls.svc.Profile(ctx, accountID)
}

// GetAccount wraps the service method with logging
func (ls *logService) GetAccount(ctx context.Context, id int64) (profile *account.Profile, err error) {
	start := time.Now()
	defer func() { ls.done("GetAccount", start, err, zap.Int64("account_id", id)) }()
	return ls.svc.GetAccount(ctx, id)
}

// Username wraps the service method with logging
func (ls *logService) Username(ctx context.Context, accountID int64) (name string, err error) {
	start := time.Now()
	defer func() { ls.done("Username", start, err, zap.Int64("account_id", accountID)) }()
	return ls.svc.Username(ctx, accountID)
}
