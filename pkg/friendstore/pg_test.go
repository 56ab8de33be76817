package friendstore_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/cryptoballot/pkg/account"
	"github.com/chainsafe/cryptoballot/pkg/accountstore"
	"github.com/chainsafe/cryptoballot/pkg/friend"
	"github.com/chainsafe/cryptoballot/pkg/friendstore"
	"github.com/chainsafe/cryptoballot/pkg/migrations/appdb"
	"github.com/chainsafe/cryptoballot/pkg/pgutil"
)

func setupDB(t *testing.T, accounts int) (context.Context, *bun.DB, []int64) {
	t.Helper()

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	migrator := migrate.NewMigrator(db, appdb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("failed to init migrations: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	accountStore := accountstore.NewStore(db)
	ids := make([]int64, 0, accounts)
	for i := 0; i < accounts; i++ {
		a := &account.Account{
			Name:         fmt.Sprintf("User%d", i+1),
			Surname:      "Test",
			Email:        fmt.Sprintf("user%d@example.com", i+1),
			PasswordHash: "hash",
		}
		if err := accountStore.CreateAccount(ctx, a); err != nil {
			t.Fatalf("failed to create account: %v", err)
		}
		ids = append(ids, a.ID)
	}
	return ctx, db, ids
}

func countRows(t *testing.T, ctx context.Context, db *bun.DB, model any) int {
	t.Helper()
	n, err := db.NewSelect().Model(model).Count(ctx)
	if err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}

func TestFriendPGStore_SendAcceptCheck(t *testing.T) {
	ctx, db, ids := setupDB(t, 2)
	s := friendstore.NewStore(db)
	alice, bob := ids[0], ids[1]

	req := &friend.Request{RequesterID: alice, ReceiverID: bob}
	if err := s.CreateRequest(ctx, req); err != nil {
		t.Fatalf("CreateRequest() failed: %v", err)
	}
	if req.ID == 0 || req.Status != friend.StatusPending {
		t.Fatalf("unexpected request %+v", req)
	}

	pending, err := s.PendingRequestExists(ctx, alice, bob)
	if err != nil || !pending {
		t.Fatalf("PendingRequestExists() = %v, %v", pending, err)
	}

	err = s.CreateRequest(ctx, &friend.Request{RequesterID: alice, ReceiverID: bob})
	if !errors.Is(err, friend.ErrDuplicateRequest) {
		t.Fatalf("expected ErrDuplicateRequest from the pending pair index, got %v", err)
	}

	accepted, err := s.AcceptRequest(ctx, req.ID, bob)
	if err != nil {
		t.Fatalf("AcceptRequest() failed: %v", err)
	}
	if accepted.Status != friend.StatusAccepted || accepted.RespondedAt == nil {
		t.Fatalf("unexpected accepted request %+v", accepted)
	}

	for _, p := range [][2]int64{{alice, bob}, {bob, alice}} {
		ok, err := s.AreFriends(ctx, p[0], p[1])
		if err != nil || !ok {
			t.Fatalf("AreFriends(%d,%d) = %v, %v", p[0], p[1], ok, err)
		}
	}

	friends, err := s.ListFriends(ctx, alice)
	if err != nil {
		t.Fatalf("ListFriends() failed: %v", err)
	}
	if len(friends) != 1 || friends[0].ID != bob || friends[0].Email != "user2@example.com" {
		t.Fatalf("unexpected friends %+v", friends)
	}
}

func TestFriendPGStore_RejectAfterAccept(t *testing.T) {
	ctx, db, ids := setupDB(t, 2)
	s := friendstore.NewStore(db)
	alice, bob := ids[0], ids[1]

	req := &friend.Request{RequesterID: alice, ReceiverID: bob}
	if err := s.CreateRequest(ctx, req); err != nil {
		t.Fatalf("CreateRequest() failed: %v", err)
	}
	if _, err := s.AcceptRequest(ctx, req.ID, bob); err != nil {
		t.Fatalf("AcceptRequest() failed: %v", err)
	}
	before := countRows(t, ctx, db, (*friendstore.FriendshipDao)(nil))

	if _, err := s.RejectRequest(ctx, req.ID, bob); !errors.Is(err, friend.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
	if after := countRows(t, ctx, db, (*friendstore.FriendshipDao)(nil)); after != before {
		t.Fatalf("friendship rows changed from %d to %d", before, after)
	}
}

func TestFriendPGStore_RejectCreatesNoFriendship(t *testing.T) {
	ctx, db, ids := setupDB(t, 2)
	s := friendstore.NewStore(db)

	req := &friend.Request{RequesterID: ids[0], ReceiverID: ids[1]}
	if err := s.CreateRequest(ctx, req); err != nil {
		t.Fatalf("CreateRequest() failed: %v", err)
	}
	if _, err := s.RejectRequest(ctx, req.ID, ids[0]); !errors.Is(err, friend.ErrRequestNotFound) {
		t.Fatalf("requester must not be able to respond, got %v", err)
	}
	rejected, err := s.RejectRequest(ctx, req.ID, ids[1])
	if err != nil {
		t.Fatalf("RejectRequest() failed: %v", err)
	}
	if rejected.Status != friend.StatusRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}
	if n := countRows(t, ctx, db, (*friendstore.FriendshipDao)(nil)); n != 0 {
		t.Fatalf("expected no friendships, got %d", n)
	}

	// The pending index only covers pending rows, so a new request is allowed.
	if err := s.CreateRequest(ctx, &friend.Request{RequesterID: ids[0], ReceiverID: ids[1]}); err != nil {
		t.Fatalf("CreateRequest() after reject failed: %v", err)
	}
}

func TestFriendPGStore_OppositeRequests(t *testing.T) {
	ctx, db, ids := setupDB(t, 2)
	s := friendstore.NewStore(db)
	alice, bob := ids[0], ids[1]

	if err := s.CreateRequest(ctx, &friend.Request{RequesterID: alice, ReceiverID: bob}); err != nil {
		t.Fatalf("CreateRequest() failed: %v", err)
	}
	err := s.CreateRequest(ctx, &friend.Request{RequesterID: bob, ReceiverID: alice})
	if !errors.Is(err, friend.ErrReverseRequest) {
		t.Fatalf("expected ErrReverseRequest, got %v", err)
	}

	// A writer that bypasses the store still hits the unordered pair index.
	_, err = db.ExecContext(ctx,
		"INSERT INTO friend_requests (requester_id, receiver_id, status) VALUES (?, ?, 'pending')", bob, alice)
	if err == nil {
		t.Fatal("expected the unordered pending index to reject the reverse row")
	}
}

func TestFriendPGStore_ConcurrentOppositeRequests(t *testing.T) {
	ctx, db, ids := setupDB(t, 2)
	s := friendstore.NewStore(db)

	const rounds = 10
	for i := 0; i < rounds; i++ {
		var (
			wg   sync.WaitGroup
			errs = make([]error, 2)
		)
		for j, p := range [][2]int64{{ids[0], ids[1]}, {ids[1], ids[0]}} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[j] = s.CreateRequest(ctx, &friend.Request{RequesterID: p[0], ReceiverID: p[1]})
			}()
		}
		wg.Wait()

		created := 0
		for _, err := range errs {
			switch {
			case err == nil:
				created++
			case errors.Is(err, friend.ErrReverseRequest):
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if created != 1 {
			t.Fatalf("round %d: expected exactly one request created, got %d", i, created)
		}
		if n := countRows(t, ctx, db, (*friendstore.FriendRequestDao)(nil)); n != 1 {
			t.Fatalf("round %d: expected 1 request row, got %d", i, n)
		}
		if _, err := db.NewDelete().Model((*friendstore.FriendRequestDao)(nil)).Where("TRUE").Exec(ctx); err != nil {
			t.Fatalf("failed to reset requests: %v", err)
		}
	}
}

func TestFriendPGStore_RequestWhileFriends(t *testing.T) {
	ctx, db, ids := setupDB(t, 2)
	s := friendstore.NewStore(db)

	req := &friend.Request{RequesterID: ids[0], ReceiverID: ids[1]}
	if err := s.CreateRequest(ctx, req); err != nil {
		t.Fatalf("CreateRequest() failed: %v", err)
	}
	if _, err := s.AcceptRequest(ctx, req.ID, ids[1]); err != nil {
		t.Fatalf("AcceptRequest() failed: %v", err)
	}

	err := s.CreateRequest(ctx, &friend.Request{RequesterID: ids[1], ReceiverID: ids[0]})
	if !errors.Is(err, friend.ErrAlreadyFriends) {
		t.Fatalf("expected ErrAlreadyFriends, got %v", err)
	}
}

func TestFriendPGStore_ConcurrentAccept(t *testing.T) {
	ctx, db, ids := setupDB(t, 2)
	s := friendstore.NewStore(db)

	req := &friend.Request{RequesterID: ids[0], ReceiverID: ids[1]}
	if err := s.CreateRequest(ctx, req); err != nil {
		t.Fatalf("CreateRequest() failed: %v", err)
	}

	const workers = 5
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		notFound  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AcceptRequest(ctx, req.ID, ids[1])
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, friend.ErrRequestNotFound):
				notFound++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 || notFound != workers-1 {
		t.Fatalf("expected 1 success and %d not found, got %d and %d", workers-1, successes, notFound)
	}
	if n := countRows(t, ctx, db, (*friendstore.FriendshipDao)(nil)); n != 2 {
		t.Fatalf("expected 2 friendship rows, got %d", n)
	}
}

func TestFriendPGStore_PendingListings(t *testing.T) {
	ctx, db, ids := setupDB(t, 3)
	s := friendstore.NewStore(db)

	if err := s.CreateRequest(ctx, &friend.Request{RequesterID: ids[0], ReceiverID: ids[1]}); err != nil {
		t.Fatalf("CreateRequest() failed: %v", err)
	}
	if err := s.CreateRequest(ctx, &friend.Request{RequesterID: ids[2], ReceiverID: ids[0]}); err != nil {
		t.Fatalf("CreateRequest() failed: %v", err)
	}

	out, err := s.ListOutgoing(ctx, ids[0])
	if err != nil {
		t.Fatalf("ListOutgoing() failed: %v", err)
	}
	if len(out) != 1 || out[0].UserID != ids[1] || out[0].Name != "User2" || out[0].RequestID == 0 {
		t.Fatalf("unexpected outgoing %+v", out)
	}

	in, err := s.ListIncoming(ctx, ids[0])
	if err != nil {
		t.Fatalf("ListIncoming() failed: %v", err)
	}
	if len(in) != 1 || in[0].UserID != ids[2] {
		t.Fatalf("unexpected incoming %+v", in)
	}

	none, err := s.ListIncoming(ctx, ids[2])
	if err != nil {
		t.Fatalf("ListIncoming() failed: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil listing, got %#v", none)
	}
}

func TestFriendPGStore_RemoveAndUnknownUser(t *testing.T) {
	ctx, db, ids := setupDB(t, 2)
	s := friendstore.NewStore(db)

	exists, err := s.AccountExists(ctx, ids[1])
	if err != nil || !exists {
		t.Fatalf("AccountExists() = %v, %v", exists, err)
	}
	exists, err = s.AccountExists(ctx, 999)
	if err != nil || exists {
		t.Fatalf("AccountExists(999) = %v, %v", exists, err)
	}

	if err := s.CreateRequest(ctx, &friend.Request{RequesterID: ids[0], ReceiverID: 999}); !errors.Is(err, friend.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound from the foreign key, got %v", err)
	}

	if err := s.RemoveFriendship(ctx, ids[0], ids[1]); !errors.Is(err, friend.ErrNotFriends) {
		t.Fatalf("expected ErrNotFriends, got %v", err)
	}

	req := &friend.Request{RequesterID: ids[0], ReceiverID: ids[1]}
	if err := s.CreateRequest(ctx, req); err != nil {
		t.Fatalf("CreateRequest() failed: %v", err)
	}
	if _, err := s.AcceptRequest(ctx, req.ID, ids[1]); err != nil {
		t.Fatalf("AcceptRequest() failed: %v", err)
	}
	if err := s.RemoveFriendship(ctx, ids[1], ids[0]); err != nil {
		t.Fatalf("RemoveFriendship() failed: %v", err)
	}
	if n := countRows(t, ctx, db, (*friendstore.FriendshipDao)(nil)); n != 0 {
		t.Fatalf("expected both directions removed, got %d rows", n)
	}
}
