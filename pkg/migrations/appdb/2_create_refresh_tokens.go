package appdb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/chainsafe/cryptoballot/pkg/accountstore"
	mghelper "github.com/chainsafe/cryptoballot/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().
			Model(&accountstore.RefreshTokenDao{}).
			IfNotExists().
			ForeignKey(`("account_id") REFERENCES "accounts" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &accountstore.RefreshTokenDao{}, "account_id", "expires_at")
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &accountstore.RefreshTokenDao{})
	})
}
