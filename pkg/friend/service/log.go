package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/cryptoballot/pkg/friend"
)

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the friend Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger.With(zap.String("service", "FriendService")),
	}
}

func (ls *logService) done(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		ls.logger.Warn(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Debug(method+" completed", fields...)
}

// SendRequest wraps the service method with logging
func (ls *logService) SendRequest(ctx context.Context, requesterID, receiverID int64) (req *friend.Request, err error) {
	start := time.Now()
	defer func() {
		ls.done("SendRequest", start, err,
			zap.Int64("requester_id", requesterID),
			zap.Int64("receiver_id", receiverID))
	}()
	return ls.svc.SendRequest(ctx, requesterID, receiverID)
}

// AcceptRequest wraps the service method with logging
func (ls *logService) AcceptRequest(ctx context.Context, requestID, receiverID int64) (req *friend.Request, err error) {
	start := time.Now()
	defer func() {
		ls.done("AcceptRequest", start, err,
			zap.Int64("request_id", requestID),
			zap.Int64("receiver_id", receiverID))
	}()
	return ls.svc.AcceptRequest(ctx, requestID, receiverID)
}

// RejectRequest wraps the service method with logging
func (ls *logService) RejectRequest(ctx context.Context, requestID, receiverID int64) (req *friend.Request, err error) {
	start := time.Now()
	defer func() {
		ls.done("RejectRequest", start, err,
			zap.Int64("request_id", requestID),
			zap.Int64("receiver_id", receiverID))
	}()
	return ls.svc.RejectRequest(ctx, requestID, receiverID)
}

// ListFriends wraps the service method with logging
func (ls *logService) ListFriends(ctx context.Context, userID int64) (friends []*friend.Friend, err error) {
	start := time.Now()
	defer func() {
		ls.done("ListFriends", start, err, zap.Int64("user_id", userID), zap.Int("count", len(friends)))
	}()
	return ls.svc.ListFriends(ctx, userID)
}

// ListIncomingPending wraps the service method with logging
func (ls *logService) ListIncomingPending(ctx context.Context, userID int64) (reqs []*friend.PendingRequest, err error) {
	start := time.Now()
	defer func() {
		ls.done("ListIncomingPending", start, err, zap.Int64("user_id", userID), zap.Int("count", len(reqs)))
	}()
	return ls.svc.ListIncomingPending(ctx, userID)
}

// ListOutgoingPending wraps the service method with logging
func (ls *logService) ListOutgoingPending(ctx context.Context, userID int64) (reqs []*friend.PendingRequest, err error) {
	start := time.Now()
	defer func() {
		ls.done("ListOutgoingPending", start, err, zap.Int64("user_id", userID), zap.Int("count", len(reqs)))
	}()
	return ls.svc.ListOutgoingPending(ctx, userID)
}

// CheckFriendship wraps the service method with logging
func (ls *logService) CheckFriendship(ctx context.Context, userID, otherID int64) (ok bool, err error) {
	start := time.Now()
	defer func() {
		ls.done("CheckFriendship", start, err,
			zap.Int64("user_id", userID),
			zap.Int64("other_id", otherID),
			zap.Bool("friends", ok))
	}()
	return ls.svc.CheckFriendship(ctx, userID, otherID)
}

// RemoveFriend wraps the service method with logging
func (ls *logService) RemoveFriend(ctx context.Context, userID, friendID int64) (err error) {
	start := time.Now()
	defer func() {
		ls.done("RemoveFriend", start, err, zap.Int64("user_id", userID), zap.Int64("friend_id", friendID))
	}()
	return ls.svc.RemoveFriend(ctx, userID, friendID)
}
