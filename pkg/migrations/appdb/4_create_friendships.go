package appdb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/chainsafe/cryptoballot/pkg/friendstore"
	mghelper "github.com/chainsafe/cryptoballot/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().
			Model(&friendstore.FriendshipDao{}).
			IfNotExists().
			ForeignKey(`("user_id") REFERENCES "accounts" ("id") ON DELETE CASCADE`).
			ForeignKey(`("friend_id") REFERENCES "accounts" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &friendstore.FriendshipDao{}, "friend_id")
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &friendstore.FriendshipDao{})
	})
}
