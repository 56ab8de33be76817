package friendstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/cryptoballot/pkg/friend"
)

// FriendRequestDao maps to the 'friend_requests' table
type FriendRequestDao struct {
	bun.BaseModel `bun:"table:friend_requests,alias:fr"`
	ID            int64      `bun:"id,pk,autoincrement"`
	RequesterID   int64      `bun:"requester_id,notnull"`
	ReceiverID    int64      `bun:"receiver_id,notnull"`
	Status        string     `bun:"status,notnull,type:varchar(16),default:'pending'"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	RespondedAt   *time.Time `bun:"responded_at"`
}

// FriendshipDao maps to the 'friendships' table. Each friendship is stored
// twice, once per direction.
type FriendshipDao struct {
	bun.BaseModel `bun:"table:friendships,alias:f"`
	UserID        int64     `bun:"user_id,pk"`
	FriendID      int64     `bun:"friend_id,pk"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// accountRow is the slice of an accounts row joined into listings
type accountRow struct {
	RequestID int64     `bun:"request_id"`
	ID        int64     `bun:"id"`
	Name      string    `bun:"name"`
	Surname   string    `bun:"surname"`
	Email     string    `bun:"email"`
	At        time.Time `bun:"at"`
}

func toFriendRequest(dao *FriendRequestDao) *friend.Request {
	return &friend.Request{
		ID:          dao.ID,
		RequesterID: dao.RequesterID,
		ReceiverID:  dao.ReceiverID,
		Status:      friend.Status(dao.Status),
		CreatedAt:   dao.CreatedAt,
		RespondedAt: dao.RespondedAt,
	}
}

func toFriends(rows []accountRow) []*friend.Friend {
	out := make([]*friend.Friend, 0, len(rows))
	for _, r := range rows {
		out = append(out, &friend.Friend{
			ID:      r.ID,
			Name:    r.Name,
			Surname: r.Surname,
			Email:   r.Email,
			Since:   r.At,
		})
	}
	return out
}

func toPendingRequests(rows []accountRow) []*friend.PendingRequest {
	out := make([]*friend.PendingRequest, 0, len(rows))
	for _, r := range rows {
		out = append(out, &friend.PendingRequest{
			RequestID: r.RequestID,
			UserID:    r.ID,
			Name:      r.Name,
			Surname:   r.Surname,
			Email:     r.Email,
			CreatedAt: r.At,
		})
	}
	return out
}
