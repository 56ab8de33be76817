package friendstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/cryptoballot/pkg/friend"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"

	pendingUnorderedIndex = "idx_friend_requests_pending_unordered"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the friend store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) AccountExists(ctx context.Context, id int64) (bool, error) {
	exists, err := s.db.NewSelect().
		TableExpr("accounts").
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check account: %w", err)
	}
	return exists, nil
}

func (s *pgStore) AreFriends(ctx context.Context, userID, otherID int64) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*FriendshipDao)(nil)).
		Where("user_id = ?", userID).
		Where("friend_id = ?", otherID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check friendship: %w", err)
	}
	return exists, nil
}

func (s *pgStore) PendingRequestExists(ctx context.Context, requesterID, receiverID int64) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*FriendRequestDao)(nil)).
		Where("requester_id = ?", requesterID).
		Where("receiver_id = ?", receiverID).
		Where("status = ?", friend.StatusPending).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check pending request: %w", err)
	}
	return exists, nil
}

// CreateRequest inserts a pending request. Requests for the same unordered
// pair serialize on a transaction-scoped advisory lock, and the pending and
// friendship checks are repeated under it. The partial unique indexes back
// this up for writers that skip the lock.
func (s *pgStore) CreateRequest(ctx context.Context, req *friend.Request) error {
	dao := &FriendRequestDao{
		RequesterID: req.RequesterID,
		ReceiverID:  req.ReceiverID,
		Status:      string(friend.StatusPending),
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockPair(ctx, tx, req.RequesterID, req.ReceiverID); err != nil {
			return err
		}

		// Pending rows are checked before the friendship so an accept that
		// commits in between is seen by the later statement.
		if err := checkPending(ctx, tx, req.RequesterID, req.ReceiverID); err != nil {
			return err
		}
		friends, err := tx.NewSelect().
			Model((*FriendshipDao)(nil)).
			Where("user_id = ?", req.RequesterID).
			Where("friend_id = ?", req.ReceiverID).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("failed to check friendship: %w", err)
		}
		if friends {
			return friend.ErrAlreadyFriends
		}

		if _, err = tx.NewInsert().
			Model(dao).
			Returning("id, created_at").
			Exec(ctx); err != nil {
			return insertError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	req.ID = dao.ID
	req.Status = friend.StatusPending
	req.CreatedAt = dao.CreatedAt
	return nil
}

func lockPair(ctx context.Context, tx bun.Tx, a, b int64) error {
	if a > b {
		a, b = b, a
	}
	key := fmt.Sprintf("friend_pair:%d:%d", a, b)
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", key); err != nil {
		return fmt.Errorf("failed to lock friend pair: %w", err)
	}
	return nil
}

func checkPending(ctx context.Context, tx bun.Tx, requesterID, receiverID int64) error {
	var rows []FriendRequestDao
	err := tx.NewSelect().
		Model(&rows).
		Column("requester_id").
		Where("status = ?", friend.StatusPending).
		Where("(requester_id = ? AND receiver_id = ?) OR (requester_id = ? AND receiver_id = ?)",
			requesterID, receiverID, receiverID, requesterID).
		Scan(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending request: %w", err)
	}
	for _, r := range rows {
		if r.RequesterID == requesterID {
			return friend.ErrDuplicateRequest
		}
	}
	if len(rows) > 0 {
		return friend.ErrReverseRequest
	}
	return nil
}

func insertError(err error) error {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') {
		case uniqueViolation:
			if pgErr.Field('n') == pendingUnorderedIndex {
				return friend.ErrReverseRequest
			}
			return friend.ErrDuplicateRequest
		case foreignKeyViolation:
			return friend.ErrUserNotFound
		}
	}
	return fmt.Errorf("failed to create friend request: %w", err)
}

// AcceptRequest moves a pending request addressed to receiverID to accepted
// and records the friendship in both directions, all in one transaction.
func (s *pgStore) AcceptRequest(ctx context.Context, requestID, receiverID int64) (*friend.Request, error) {
	return s.respond(ctx, requestID, receiverID, friend.StatusAccepted)
}

// RejectRequest moves a pending request addressed to receiverID to rejected
func (s *pgStore) RejectRequest(ctx context.Context, requestID, receiverID int64) (*friend.Request, error) {
	return s.respond(ctx, requestID, receiverID, friend.StatusRejected)
}

func (s *pgStore) respond(ctx context.Context, requestID, receiverID int64, next friend.Status) (*friend.Request, error) {
	if !friend.StatusPending.CanTransition(next) {
		return nil, friend.ErrInvalidTransition
	}

	dao := new(FriendRequestDao)
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		// Concurrent responders serialize on the row lock; the loser no longer
		// sees a pending row.
		err := tx.NewSelect().
			Model(dao).
			Where("id = ?", requestID).
			Where("receiver_id = ?", receiverID).
			Where("status = ?", friend.StatusPending).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return friend.ErrRequestNotFound
			}
			return fmt.Errorf("failed to lock friend request: %w", err)
		}

		now := time.Now().UTC()
		dao.Status = string(next)
		dao.RespondedAt = &now
		if _, err = tx.NewUpdate().
			Model(dao).
			Column("status", "responded_at").
			WherePK().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to update friend request: %w", err)
		}

		if next != friend.StatusAccepted {
			return nil
		}

		pair := []*FriendshipDao{
			{UserID: dao.RequesterID, FriendID: dao.ReceiverID},
			{UserID: dao.ReceiverID, FriendID: dao.RequesterID},
		}
		if _, err = tx.NewInsert().
			Model(&pair).
			On("CONFLICT (user_id, friend_id) DO NOTHING").
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert friendship: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toFriendRequest(dao), nil
}

// RemoveFriendship deletes both directions of a friendship
func (s *pgStore) RemoveFriendship(ctx context.Context, userID, friendID int64) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*FriendshipDao)(nil)).
			Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
				userID, friendID, friendID, userID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete friendship: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return friend.ErrNotFriends
		}
		return nil
	})
}

func (s *pgStore) ListFriends(ctx context.Context, userID int64) ([]*friend.Friend, error) {
	var rows []accountRow
	err := s.db.NewSelect().
		Model((*FriendshipDao)(nil)).
		ColumnExpr("a.id, a.name, a.surname, a.email").
		ColumnExpr("f.created_at AS at").
		Join("JOIN accounts AS a ON a.id = f.friend_id").
		Where("f.user_id = ?", userID).
		OrderExpr("a.name ASC, a.id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	return toFriends(rows), nil
}

// ListIncoming returns pending requests addressed to userID, joined with the requester
func (s *pgStore) ListIncoming(ctx context.Context, userID int64) ([]*friend.PendingRequest, error) {
	return s.listPending(ctx, "fr.receiver_id", "fr.requester_id", userID)
}

// ListOutgoing returns pending requests sent by userID, joined with the receiver
func (s *pgStore) ListOutgoing(ctx context.Context, userID int64) ([]*friend.PendingRequest, error) {
	return s.listPending(ctx, "fr.requester_id", "fr.receiver_id", userID)
}

func (s *pgStore) listPending(ctx context.Context, ownCol, otherCol string, userID int64) ([]*friend.PendingRequest, error) {
	var rows []accountRow
	err := s.db.NewSelect().
		Model((*FriendRequestDao)(nil)).
		ColumnExpr("fr.id AS request_id, fr.created_at AS at").
		ColumnExpr("a.id, a.name, a.surname, a.email").
		Join("JOIN accounts AS a ON a.id = "+otherCol).
		Where(ownCol+" = ?", userID).
		Where("fr.status = ?", friend.StatusPending).
		OrderExpr("fr.created_at DESC, fr.id DESC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return toPendingRequests(rows), nil
}
