package accountstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/cryptoballot/pkg/account"
)

// AccountDao maps to the 'accounts' table
type AccountDao struct {
	bun.BaseModel `bun:"table:accounts,alias:a"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Name          string    `bun:"name,notnull,type:varchar(100)"`
	Surname       string    `bun:"surname,notnull,type:varchar(100)"`
	Email         string    `bun:"email,unique,notnull,type:varchar(254)"`
	PasswordHash  string    `bun:"password_hash,notnull,type:varchar(72)"`
	WalletAddress *string   `bun:"wallet_address,unique,type:varchar(42)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// RefreshTokenDao maps to the 'refresh_tokens' table
type RefreshTokenDao struct {
	bun.BaseModel `bun:"table:refresh_tokens,alias:rt"`
	ID            uuid.UUID  `bun:"id,pk,type:uuid"`
	AccountID     int64      `bun:"account_id,notnull"`
	ExpiresAt     time.Time  `bun:"expires_at,notnull"`
	RevokedAt     *time.Time `bun:"revoked_at"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toAccountDao(a *account.Account) *AccountDao {
	dao := &AccountDao{
		ID:           a.ID,
		Name:         a.Name,
		Surname:      a.Surname,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	}
	if a.WalletAddress != "" {
		dao.WalletAddress = &a.WalletAddress
	}
	return dao
}

func toAccount(dao *AccountDao) *account.Account {
	a := &account.Account{
		ID:           dao.ID,
		Name:         dao.Name,
		Surname:      dao.Surname,
		Email:        dao.Email,
		PasswordHash: dao.PasswordHash,
		CreatedAt:    dao.CreatedAt,
	}
	if dao.WalletAddress != nil {
		a.WalletAddress = *dao.WalletAddress
	}
	return a
}

func toRefreshTokenDao(t *account.RefreshToken) *RefreshTokenDao {
	return &RefreshTokenDao{
		ID:        t.ID,
		AccountID: t.AccountID,
		ExpiresAt: t.ExpiresAt,
		RevokedAt: t.RevokedAt,
		CreatedAt: t.CreatedAt,
	}
}

func toRefreshToken(dao *RefreshTokenDao) *account.RefreshToken {
	return &account.RefreshToken{
		ID:        dao.ID,
		AccountID: dao.AccountID,
		ExpiresAt: dao.ExpiresAt,
		RevokedAt: dao.RevokedAt,
		CreatedAt: dao.CreatedAt,
	}
}
