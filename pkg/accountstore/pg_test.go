package accountstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/chainsafe/cryptoballot/pkg/account"
	"github.com/chainsafe/cryptoballot/pkg/pgutil"
	mghelper "github.com/chainsafe/cryptoballot/pkg/pgutil/migrations"
)

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &AccountDao{}, &RefreshTokenDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return ctx, NewStore(db)
}

func newTestAccount(email string) *account.Account {
	return &account.Account{
		Name:         "Ada",
		Surname:      "Lovelace",
		Email:        email,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuu0123456789012345678901234567890",
	}
}

func TestAccountPGStore_CreateAndGet(t *testing.T) {
	ctx, s := setupStore(t)

	a := newTestAccount("ada@example.com")
	if err := s.CreateAccount(ctx, a); err != nil {
		t.Fatalf("CreateAccount() failed: %v", err)
	}
	if a.ID == 0 || a.CreatedAt.IsZero() {
		t.Fatalf("expected id and created_at to be populated, got %+v", a)
	}

	byID, err := s.GetAccountByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetAccountByID() failed: %v", err)
	}
	if byID.Email != "ada@example.com" || byID.WalletAddress != "" {
		t.Fatalf("unexpected account %+v", byID)
	}

	byEmail, err := s.GetAccountByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("GetAccountByEmail() failed: %v", err)
	}
	if byEmail.ID != a.ID {
		t.Fatalf("expected id %d, got %d", a.ID, byEmail.ID)
	}

	if _, err := s.GetAccountByID(ctx, a.ID+100); !errors.Is(err, account.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	err = s.CreateAccount(ctx, newTestAccount("ada@example.com"))
	if !errors.Is(err, account.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAccountPGStore_SetWalletAddress(t *testing.T) {
	ctx, s := setupStore(t)

	first := newTestAccount("first@example.com")
	second := newTestAccount("second@example.com")
	for _, a := range []*account.Account{first, second} {
		if err := s.CreateAccount(ctx, a); err != nil {
			t.Fatalf("CreateAccount() failed: %v", err)
		}
	}

	const wallet = "0x52908400098527886E0F7030069857D2E4169EE7"
	if err := s.SetWalletAddress(ctx, first.ID, wallet); err != nil {
		t.Fatalf("SetWalletAddress() failed: %v", err)
	}

	got, err := s.GetAccountByWallet(ctx, wallet)
	if err != nil {
		t.Fatalf("GetAccountByWallet() failed: %v", err)
	}
	if got.ID != first.ID {
		t.Fatalf("expected wallet owner %d, got %d", first.ID, got.ID)
	}

	if err := s.SetWalletAddress(ctx, second.ID, wallet); !errors.Is(err, account.ErrWalletTaken) {
		t.Fatalf("expected ErrWalletTaken, got %v", err)
	}
	if err := s.SetWalletAddress(ctx, 9999, "0x0000000000000000000000000000000000000001"); !errors.Is(err, account.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountPGStore_RefreshTokenLifecycle(t *testing.T) {
	ctx, s := setupStore(t)

	a := newTestAccount("tokens@example.com")
	if err := s.CreateAccount(ctx, a); err != nil {
		t.Fatalf("CreateAccount() failed: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	original := &account.RefreshToken{ID: uuid.New(), AccountID: a.ID, ExpiresAt: now.Add(time.Hour)}
	if err := s.CreateRefreshToken(ctx, original); err != nil {
		t.Fatalf("CreateRefreshToken() failed: %v", err)
	}

	stored, err := s.GetRefreshToken(ctx, original.ID)
	if err != nil {
		t.Fatalf("GetRefreshToken() failed: %v", err)
	}
	if !stored.Usable(now) {
		t.Fatalf("fresh token should be usable: %+v", stored)
	}

	next := &account.RefreshToken{ID: uuid.New(), AccountID: a.ID, ExpiresAt: now.Add(2 * time.Hour)}
	if err := s.RotateRefreshToken(ctx, original.ID, next, now); err != nil {
		t.Fatalf("RotateRefreshToken() failed: %v", err)
	}

	stored, err = s.GetRefreshToken(ctx, original.ID)
	if err != nil {
		t.Fatalf("GetRefreshToken() failed: %v", err)
	}
	if stored.RevokedAt == nil {
		t.Fatal("rotated token should be revoked")
	}

	// A rotated token cannot be rotated again.
	again := &account.RefreshToken{ID: uuid.New(), AccountID: a.ID, ExpiresAt: now.Add(2 * time.Hour)}
	if err := s.RotateRefreshToken(ctx, original.ID, again, now); !errors.Is(err, account.ErrRefreshTokenRevoked) {
		t.Fatalf("expected ErrRefreshTokenRevoked, got %v", err)
	}
	if _, err := s.GetRefreshToken(ctx, again.ID); !errors.Is(err, account.ErrRefreshTokenNotFound) {
		t.Fatalf("failed rotation must not persist the new token, got %v", err)
	}

	if err := s.RevokeRefreshToken(ctx, next.ID, now); err != nil {
		t.Fatalf("RevokeRefreshToken() failed: %v", err)
	}
	if err := s.RevokeRefreshToken(ctx, next.ID, now.Add(time.Minute)); err != nil {
		t.Fatalf("second RevokeRefreshToken() should be a no-op, got %v", err)
	}
	if err := s.RevokeRefreshToken(ctx, uuid.New(), now); err != nil {
		t.Fatalf("revoking an unknown token should be a no-op, got %v", err)
	}

	if err := s.RotateRefreshToken(ctx, uuid.New(), again, now); !errors.Is(err, account.ErrRefreshTokenNotFound) {
		t.Fatalf("expected ErrRefreshTokenNotFound, got %v", err)
	}
}

func TestAccountPGStore_ConcurrentRotation(t *testing.T) {
	ctx, s := setupStore(t)

	a := newTestAccount("race@example.com")
	if err := s.CreateAccount(ctx, a); err != nil {
		t.Fatalf("CreateAccount() failed: %v", err)
	}
	now := time.Now().UTC()
	original := &account.RefreshToken{ID: uuid.New(), AccountID: a.ID, ExpiresAt: now.Add(time.Hour)}
	if err := s.CreateRefreshToken(ctx, original); err != nil {
		t.Fatalf("CreateRefreshToken() failed: %v", err)
	}

	const workers = 5
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			next := &account.RefreshToken{ID: uuid.New(), AccountID: a.ID, ExpiresAt: now.Add(time.Hour)}
			if err := s.RotateRefreshToken(ctx, original.ID, next, now); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("expected exactly one successful rotation, got %d", successes)
	}
}
