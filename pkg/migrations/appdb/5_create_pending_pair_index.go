package appdb

import (
	"context"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// At most one pending request per unordered pair, whichever side sent it.
		_, err := db.ExecContext(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS idx_friend_requests_pending_unordered
			ON friend_requests (LEAST(requester_id, receiver_id), GREATEST(requester_id, receiver_id))
			WHERE status = 'pending'`)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `DROP INDEX IF EXISTS idx_friend_requests_pending_unordered`)
		return err
	})
}
