package service

import (
	"context"
	"errors"

	"github.com/chainsafe/cryptoballot/internal/metrics"
	apperrors "github.com/chainsafe/cryptoballot/pkg/app/errors"
	"github.com/chainsafe/cryptoballot/pkg/friend"
)

// Store is the friend persistence the service needs.
// AcceptRequest and RejectRequest must be atomic with respect to the
// pending check.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	AccountExists(ctx context.Context, id int64) (bool, error)
	AreFriends(ctx context.Context, userID, otherID int64) (bool, error)
	PendingRequestExists(ctx context.Context, requesterID, receiverID int64) (bool, error)
	CreateRequest(ctx context.Context, req *friend.Request) error
	AcceptRequest(ctx context.Context, requestID, receiverID int64) (*friend.Request, error)
	RejectRequest(ctx context.Context, requestID, receiverID int64) (*friend.Request, error)
	RemoveFriendship(ctx context.Context, userID, friendID int64) error
	ListFriends(ctx context.Context, userID int64) ([]*friend.Friend, error)
	ListIncoming(ctx context.Context, userID int64) ([]*friend.PendingRequest, error)
	ListOutgoing(ctx context.Context, userID int64) ([]*friend.PendingRequest, error)
}

// Service defines the friend relationship operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	SendRequest(ctx context.Context, requesterID, receiverID int64) (*friend.Request, error)
	AcceptRequest(ctx context.Context, requestID, receiverID int64) (*friend.Request, error)
	RejectRequest(ctx context.Context, requestID, receiverID int64) (*friend.Request, error)
	ListFriends(ctx context.Context, userID int64) ([]*friend.Friend, error)
	ListIncomingPending(ctx context.Context, userID int64) ([]*friend.PendingRequest, error)
	ListOutgoingPending(ctx context.Context, userID int64) ([]*friend.PendingRequest, error)
	CheckFriendship(ctx context.Context, userID, otherID int64) (bool, error)
	RemoveFriend(ctx context.Context, userID, friendID int64) error
}

type friendService struct {
	store Store
}

// NewService creates a new friend relationship service
func NewService(store Store) Service {
	return &friendService{store: store}
}

// SendRequest creates a pending request from requester to receiver.
// A pending request in either direction, or an existing friendship, is a conflict.
func (s *friendService) SendRequest(ctx context.Context, requesterID, receiverID int64) (*friend.Request, error) {
	if receiverID < 1 {
		return nil, apperrors.BadRequestError(nil, "invalid friend id")
	}
	if requesterID == receiverID {
		return nil, apperrors.BadRequestError(friend.ErrSelfRequest, friend.ErrSelfRequest.Error())
	}

	exists, err := s.store.AccountExists(ctx, receiverID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	if !exists {
		return nil, apperrors.ResourceNotFoundError(friend.ErrUserNotFound, friend.ErrUserNotFound.Error())
	}

	friends, err := s.store.AreFriends(ctx, requesterID, receiverID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	if friends {
		return nil, apperrors.ConflictError(friend.ErrAlreadyFriends, friend.ErrAlreadyFriends.Error())
	}

	pending, err := s.store.PendingRequestExists(ctx, requesterID, receiverID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	if pending {
		return nil, apperrors.ConflictError(friend.ErrDuplicateRequest, friend.ErrDuplicateRequest.Error())
	}

	reverse, err := s.store.PendingRequestExists(ctx, receiverID, requesterID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	if reverse {
		return nil, apperrors.ConflictError(friend.ErrReverseRequest, friend.ErrReverseRequest.Error())
	}

	req := &friend.Request{RequesterID: requesterID, ReceiverID: receiverID}
	if err = s.store.CreateRequest(ctx, req); err != nil {
		switch {
		case errors.Is(err, friend.ErrDuplicateRequest),
			errors.Is(err, friend.ErrReverseRequest),
			errors.Is(err, friend.ErrAlreadyFriends):
			return nil, apperrors.ConflictError(err, err.Error())
		case errors.Is(err, friend.ErrUserNotFound):
			return nil, apperrors.ResourceNotFoundError(err, err.Error())
		}
		return nil, apperrors.StoreError(err)
	}

	metrics.FriendTransitions.WithLabelValues("sent").Inc()
	return req, nil
}

// AcceptRequest accepts a pending request addressed to receiverID
func (s *friendService) AcceptRequest(ctx context.Context, requestID, receiverID int64) (*friend.Request, error) {
	return s.respond(ctx, requestID, receiverID, friend.StatusAccepted, s.store.AcceptRequest)
}

// RejectRequest rejects a pending request addressed to receiverID
func (s *friendService) RejectRequest(ctx context.Context, requestID, receiverID int64) (*friend.Request, error) {
	return s.respond(ctx, requestID, receiverID, friend.StatusRejected, s.store.RejectRequest)
}

func (s *friendService) respond(
	ctx context.Context,
	requestID, receiverID int64,
	next friend.Status,
	apply func(ctx context.Context, requestID, receiverID int64) (*friend.Request, error),
) (*friend.Request, error) {
	if requestID < 1 {
		return nil, apperrors.BadRequestError(nil, "invalid request id")
	}

	req, err := apply(ctx, requestID, receiverID)
	if err != nil {
		if errors.Is(err, friend.ErrRequestNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, err.Error())
		}
		return nil, apperrors.StoreError(err)
	}

	metrics.FriendTransitions.WithLabelValues(string(next)).Inc()
	return req, nil
}

// ListFriends returns the accounts userID is friends with
func (s *friendService) ListFriends(ctx context.Context, userID int64) ([]*friend.Friend, error) {
	friends, err := s.store.ListFriends(ctx, userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return friends, nil
}

// ListIncomingPending returns pending requests waiting on userID
func (s *friendService) ListIncomingPending(ctx context.Context, userID int64) ([]*friend.PendingRequest, error) {
	reqs, err := s.store.ListIncoming(ctx, userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return reqs, nil
}

// ListOutgoingPending returns pending requests userID has sent
func (s *friendService) ListOutgoingPending(ctx context.Context, userID int64) ([]*friend.PendingRequest, error) {
	reqs, err := s.store.ListOutgoing(ctx, userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return reqs, nil
}

// CheckFriendship reports whether the two users are friends
func (s *friendService) CheckFriendship(ctx context.Context, userID, otherID int64) (bool, error) {
	ok, err := s.store.AreFriends(ctx, userID, otherID)
	if err != nil {
		return false, apperrors.StoreError(err)
	}
	return ok, nil
}

// RemoveFriend ends a friendship in both directions
func (s *friendService) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if err := s.store.RemoveFriendship(ctx, userID, friendID); err != nil {
		if errors.Is(err, friend.ErrNotFriends) {
			return apperrors.ResourceNotFoundError(err, err.Error())
		}
		return apperrors.StoreError(err)
	}
	metrics.FriendTransitions.WithLabelValues("removed").Inc()
	return nil
}
