package appdb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/chainsafe/cryptoballot/pkg/accountstore"
	mghelper "github.com/chainsafe/cryptoballot/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return mghelper.CreateSchema(ctx, db, &accountstore.AccountDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &accountstore.AccountDao{})
	})
}
