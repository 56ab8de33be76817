// Package friend models friend requests and the symmetric friendship relation.
//
// A request moves pending -> accepted or pending -> rejected exactly once.
// Accepting stores the friendship in both directions.
package friend

import (
	"errors"
	"time"
)

var (
	ErrSelfRequest       = errors.New("cannot send a friend request to yourself")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateRequest  = errors.New("friend request already sent")
	ErrReverseRequest    = errors.New("this user already sent you a friend request; accept it instead")
	ErrAlreadyFriends    = errors.New("already friends")
	ErrRequestNotFound   = errors.New("friend request not found or already handled")
	ErrNotFriends        = errors.New("not friends")
	ErrInvalidTransition = errors.New("invalid friend request transition")
)

// Status is the lifecycle state of a friend request
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// CanTransition reports whether a request in s may move to next
func (s Status) CanTransition(next Status) bool {
	return s == StatusPending && (next == StatusAccepted || next == StatusRejected)
}

// Request is a directed friend request
type Request struct {
	ID          int64      `json:"id"`
	RequesterID int64      `json:"requesterId"`
	ReceiverID  int64      `json:"receiverId"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
}

// Friend is a projection of an account the user is friends with
type Friend struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Surname string    `json:"surname"`
	Email   string    `json:"email"`
	Since   time.Time `json:"since"`
}

// PendingRequest is a pending request joined with the account on the other side
type PendingRequest struct {
	RequestID int64     `json:"requestId"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
