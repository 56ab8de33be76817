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
			Model(&friendstore.FriendRequestDao{}).
			IfNotExists().
			ForeignKey(`("requester_id") REFERENCES "accounts" ("id") ON DELETE CASCADE`).
			ForeignKey(`("receiver_id") REFERENCES "accounts" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.ExecContext(ctx, `ALTER TABLE friend_requests
			ADD CONSTRAINT friend_requests_not_self CHECK (requester_id <> receiver_id),
			ADD CONSTRAINT friend_requests_status CHECK (status IN ('pending', 'accepted', 'rejected'))`); err != nil {
			return err
		}

		// At most one pending request per ordered pair.
		if _, err := db.NewCreateIndex().
			Model(&friendstore.FriendRequestDao{}).
			Index("idx_friend_requests_pending_pair").
			Column("requester_id", "receiver_id").
			Unique().
			Where("status = 'pending'").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		return mghelper.CreateModelIndexes(ctx, db, &friendstore.FriendRequestDao{}, "receiver_id", "requester_id")
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &friendstore.FriendRequestDao{})
	})
}
