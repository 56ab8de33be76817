package accountstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/cryptoballot/pkg/account"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the account store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// uniqueViolation maps a unique constraint error on accounts to the matching
// sentinel, or returns nil when err is something else.
func uniqueViolation(err error) error {
	var pgErr pgdriver.Error
	if !errors.As(err, &pgErr) || !pgErr.IntegrityViolation() {
		return nil
	}
	constraint := pgErr.Field('n')
	switch {
	case strings.Contains(constraint, "wallet"):
		return account.ErrWalletTaken
	case strings.Contains(constraint, "email"):
		return account.ErrEmailTaken
	}
	return nil
}

func (s *pgStore) CreateAccount(ctx context.Context, a *account.Account) error {
	dao := toAccountDao(a)

	_, err := s.db.NewInsert().
		Model(dao).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		if sentinel := uniqueViolation(err); sentinel != nil {
			return sentinel
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	a.ID = dao.ID
	a.CreatedAt = dao.CreatedAt
	return nil
}

func (s *pgStore) GetAccountByID(ctx context.Context, id int64) (*account.Account, error) {
	return s.getAccount(ctx, "id = ?", id)
}

func (s *pgStore) GetAccountByEmail(ctx context.Context, email string) (*account.Account, error) {
	return s.getAccount(ctx, "email = ?", email)
}

func (s *pgStore) GetAccountByWallet(ctx context.Context, walletAddress string) (*account.Account, error) {
	return s.getAccount(ctx, "wallet_address = ?", walletAddress)
}

func (s *pgStore) getAccount(ctx context.Context, where string, arg any) (*account.Account, error) {
	dao := new(AccountDao)
	err := s.db.NewSelect().
		Model(dao).
		Where(where, arg).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return toAccount(dao), nil
}

func (s *pgStore) SetWalletAddress(ctx context.Context, accountID int64, walletAddress string) error {
	res, err := s.db.NewUpdate().
		Model((*AccountDao)(nil)).
		Set("wallet_address = ?", walletAddress).
		Where("id = ?", accountID).
		Exec(ctx)
	if err != nil {
		if sentinel := uniqueViolation(err); sentinel != nil {
			return sentinel
		}
		return fmt.Errorf("failed to set wallet address: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

func (s *pgStore) CreateRefreshToken(ctx context.Context, token *account.RefreshToken) error {
	_, err := s.db.NewInsert().
		Model(toRefreshTokenDao(token)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

func (s *pgStore) GetRefreshToken(ctx context.Context, id uuid.UUID) (*account.RefreshToken, error) {
	dao := new(RefreshTokenDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrRefreshTokenNotFound
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return toRefreshToken(dao), nil
}

// RevokeRefreshToken marks the token revoked. Revoking an already revoked or
// unknown token is not an error.
func (s *pgStore) RevokeRefreshToken(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := s.db.NewUpdate().
		Model((*RefreshTokenDao)(nil)).
		Set("revoked_at = ?", at).
		Where("id = ?", id).
		Where("revoked_at IS NULL").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RotateRefreshToken revokes oldID and stores next in one transaction.
// The old row is locked so two concurrent rotations of the same token cannot
// both succeed.
func (s *pgStore) RotateRefreshToken(ctx context.Context, oldID uuid.UUID, next *account.RefreshToken, now time.Time) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		current := new(RefreshTokenDao)
		err := tx.NewSelect().
			Model(current).
			Where("id = ?", oldID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return account.ErrRefreshTokenNotFound
			}
			return fmt.Errorf("failed to lock refresh token: %w", err)
		}
		if current.AccountID != next.AccountID || !toRefreshToken(current).Usable(now) {
			return account.ErrRefreshTokenRevoked
		}

		if _, err = tx.NewUpdate().
			Model(current).
			Set("revoked_at = ?", now).
			WherePK().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}

		if _, err = tx.NewInsert().
			Model(toRefreshTokenDao(next)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}
		return nil
	})
}
