package service

import (
	"context"
	"errors"
	"net"
	"sync"
	"syscall"
	"testing"

	"github.com/stretchr/testify/mock"

	apperrors "github.com/chainsafe/cryptoballot/pkg/app/errors"
	"github.com/chainsafe/cryptoballot/pkg/friend"
	"github.com/chainsafe/cryptoballot/pkg/friend/service/mocks"
)

type pair struct{ a, b int64 }

// memStore is an in-memory Store with the same transition rules as the
// postgres store.
type memStore struct {
	mu          sync.Mutex
	accounts    map[int64]bool
	requests    map[int64]*friend.Request
	friendships map[pair]bool
	nextID      int64
}

func newMemStore(accountIDs ...int64) *memStore {
	s := &memStore{
		accounts:    map[int64]bool{},
		requests:    map[int64]*friend.Request{},
		friendships: map[pair]bool{},
	}
	for _, id := range accountIDs {
		s.accounts[id] = true
	}
	return s
}

func (s *memStore) AccountExists(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[id], nil
}

func (s *memStore) AreFriends(_ context.Context, userID, otherID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.friendships[pair{userID, otherID}], nil
}

func (s *memStore) PendingRequestExists(_ context.Context, requesterID, receiverID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.RequesterID == requesterID && r.ReceiverID == receiverID && r.Status == friend.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) CreateRequest(_ context.Context, req *friend.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	req.ID = s.nextID
	req.Status = friend.StatusPending
	stored := *req
	s.requests[req.ID] = &stored
	return nil
}

func (s *memStore) respond(requestID, receiverID int64, next friend.Status) (*friend.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[requestID]
	if !ok || r.ReceiverID != receiverID || r.Status != friend.StatusPending {
		return nil, friend.ErrRequestNotFound
	}
	r.Status = next
	if next == friend.StatusAccepted {
		s.friendships[pair{r.RequesterID, r.ReceiverID}] = true
		s.friendships[pair{r.ReceiverID, r.RequesterID}] = true
	}
	out := *r
	return &out, nil
}

func (s *memStore) AcceptRequest(_ context.Context, requestID, receiverID int64) (*friend.Request, error) {
	return s.respond(requestID, receiverID, friend.StatusAccepted)
}

func (s *memStore) RejectRequest(_ context.Context, requestID, receiverID int64) (*friend.Request, error) {
	return s.respond(requestID, receiverID, friend.StatusRejected)
}

func (s *memStore) RemoveFriendship(_ context.Context, userID, friendID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.friendships[pair{userID, friendID}] {
		return friend.ErrNotFriends
	}
	delete(s.friendships, pair{userID, friendID})
	delete(s.friendships, pair{friendID, userID})
	return nil
}

func (s *memStore) ListFriends(_ context.Context, userID int64) ([]*friend.Friend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*friend.Friend{}
	for p := range s.friendships {
		if p.a == userID {
			out = append(out, &friend.Friend{ID: p.b})
		}
	}
	return out, nil
}

func (s *memStore) ListIncoming(_ context.Context, userID int64) ([]*friend.PendingRequest, error) {
	return s.pending(func(r *friend.Request) (bool, int64) { return r.ReceiverID == userID, r.RequesterID })
}

func (s *memStore) ListOutgoing(_ context.Context, userID int64) ([]*friend.PendingRequest, error) {
	return s.pending(func(r *friend.Request) (bool, int64) { return r.RequesterID == userID, r.ReceiverID })
}

func (s *memStore) pending(match func(*friend.Request) (bool, int64)) ([]*friend.PendingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*friend.PendingRequest{}
	for _, r := range s.requests {
		if ok, other := match(r); ok && r.Status == friend.StatusPending {
			out = append(out, &friend.PendingRequest{RequestID: r.ID, UserID: other})
		}
	}
	return out, nil
}

func (s *memStore) friendshipRows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.friendships)
}

func TestSendTwiceThenAccept(t *testing.T) {
	store := newMemStore(1, 2)
	svc := NewService(store)
	ctx := context.Background()

	req, err := svc.SendRequest(ctx, 1, 2)
	if err != nil {
		t.Fatalf("first SendRequest failed: %v", err)
	}

	_, err = svc.SendRequest(ctx, 1, 2)
	if !apperrors.Is(err, apperrors.CategoryDataConflict) || !errors.Is(err, friend.ErrDuplicateRequest) {
		t.Fatalf("expected duplicate conflict, got %v", err)
	}

	accepted, err := svc.AcceptRequest(ctx, req.ID, 2)
	if err != nil {
		t.Fatalf("AcceptRequest failed: %v", err)
	}
	if accepted.Status != friend.StatusAccepted {
		t.Fatalf("expected accepted, got %s", accepted.Status)
	}

	for _, p := range []pair{{1, 2}, {2, 1}} {
		ok, err := svc.CheckFriendship(ctx, p.a, p.b)
		if err != nil {
			t.Fatalf("CheckFriendship(%d,%d) failed: %v", p.a, p.b, err)
		}
		if !ok {
			t.Fatalf("expected %d and %d to be friends", p.a, p.b)
		}
	}

	_, err = svc.SendRequest(ctx, 2, 1)
	if !errors.Is(err, friend.ErrAlreadyFriends) {
		t.Fatalf("expected already friends, got %v", err)
	}
}

func TestRejectAfterAccept(t *testing.T) {
	store := newMemStore(1, 2)
	svc := NewService(store)
	ctx := context.Background()

	req, err := svc.SendRequest(ctx, 1, 2)
	if err != nil {
		t.Fatalf("SendRequest failed: %v", err)
	}
	if _, err = svc.AcceptRequest(ctx, req.ID, 2); err != nil {
		t.Fatalf("AcceptRequest failed: %v", err)
	}
	before := store.friendshipRows()

	_, err = svc.RejectRequest(ctx, req.ID, 2)
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if after := store.friendshipRows(); after != before {
		t.Fatalf("friendship rows changed from %d to %d", before, after)
	}
}

func TestRejectLeavesNoFriendship(t *testing.T) {
	store := newMemStore(1, 2)
	svc := NewService(store)
	ctx := context.Background()

	req, err := svc.SendRequest(ctx, 1, 2)
	if err != nil {
		t.Fatalf("SendRequest failed: %v", err)
	}
	if _, err = svc.RejectRequest(ctx, req.ID, 2); err != nil {
		t.Fatalf("RejectRequest failed: %v", err)
	}
	if store.friendshipRows() != 0 {
		t.Fatal("reject must not create friendships")
	}

	// After a rejection the requester may ask again.
	if _, err = svc.SendRequest(ctx, 1, 2); err != nil {
		t.Fatalf("SendRequest after reject failed: %v", err)
	}
}

func TestOnlyReceiverCanRespond(t *testing.T) {
	store := newMemStore(1, 2, 3)
	svc := NewService(store)
	ctx := context.Background()

	req, err := svc.SendRequest(ctx, 1, 2)
	if err != nil {
		t.Fatalf("SendRequest failed: %v", err)
	}
	for _, who := range []int64{1, 3} {
		if _, err := svc.AcceptRequest(ctx, req.ID, who); !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
			t.Fatalf("user %d accepted someone else's request: %v", who, err)
		}
	}
}

func TestSendRequest_Validation(t *testing.T) {
	store := newMemStore(1, 2)
	svc := NewService(store)
	ctx := context.Background()

	if _, err := svc.SendRequest(ctx, 1, 1); !errors.Is(err, friend.ErrSelfRequest) || !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected self request validation error, got %v", err)
	}
	if _, err := svc.SendRequest(ctx, 1, 99); !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected not found for unknown receiver, got %v", err)
	}

	if _, err := svc.SendRequest(ctx, 2, 1); err != nil {
		t.Fatalf("SendRequest failed: %v", err)
	}
	_, err := svc.SendRequest(ctx, 1, 2)
	if !errors.Is(err, friend.ErrReverseRequest) || !apperrors.Is(err, apperrors.CategoryDataConflict) {
		t.Fatalf("expected reverse request conflict, got %v", err)
	}
}

func TestListings(t *testing.T) {
	store := newMemStore(1, 2, 3)
	svc := NewService(store)
	ctx := context.Background()

	if _, err := svc.SendRequest(ctx, 1, 2); err != nil {
		t.Fatalf("SendRequest failed: %v", err)
	}
	if _, err := svc.SendRequest(ctx, 3, 1); err != nil {
		t.Fatalf("SendRequest failed: %v", err)
	}

	out, err := svc.ListOutgoingPending(ctx, 1)
	if err != nil || len(out) != 1 || out[0].UserID != 2 {
		t.Fatalf("unexpected outgoing %+v (%v)", out, err)
	}
	in, err := svc.ListIncomingPending(ctx, 1)
	if err != nil || len(in) != 1 || in[0].UserID != 3 {
		t.Fatalf("unexpected incoming %+v (%v)", in, err)
	}
	friends, err := svc.ListFriends(ctx, 1)
	if err != nil || len(friends) != 0 {
		t.Fatalf("unexpected friends %+v (%v)", friends, err)
	}
}

func TestRemoveFriend(t *testing.T) {
	store := newMemStore(1, 2)
	svc := NewService(store)
	ctx := context.Background()

	if err := svc.RemoveFriend(ctx, 1, 2); !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected not found when not friends, got %v", err)
	}

	req, _ := svc.SendRequest(ctx, 1, 2)
	if _, err := svc.AcceptRequest(ctx, req.ID, 2); err != nil {
		t.Fatalf("AcceptRequest failed: %v", err)
	}
	if err := svc.RemoveFriend(ctx, 2, 1); err != nil {
		t.Fatalf("RemoveFriend failed: %v", err)
	}
	if store.friendshipRows() != 0 {
		t.Fatal("both directions must be removed")
	}
}

func TestStoreFailuresAreInternal(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().AccountExists(mock.Anything, int64(2)).Return(false, errors.New("syntax error at or near")).Once()
	store.EXPECT().ListFriends(mock.Anything, int64(1)).Return(nil, errors.New("column does not exist")).Once()
	store.EXPECT().AcceptRequest(mock.Anything, int64(5), int64(1)).Return(nil, errors.New("deadlock detected")).Once()

	svc := NewService(store)
	ctx := context.Background()

	if _, err := svc.SendRequest(ctx, 1, 2); !apperrors.Is(err, apperrors.CategoryGeneralError) {
		t.Fatalf("expected general error, got %v", err)
	}
	if _, err := svc.ListFriends(ctx, 1); !apperrors.Is(err, apperrors.CategoryGeneralError) {
		t.Fatalf("expected general error, got %v", err)
	}
	if _, err := svc.AcceptRequest(ctx, 5, 1); !apperrors.Is(err, apperrors.CategoryGeneralError) {
		t.Fatalf("expected general error, got %v", err)
	}
}

func TestStoreUnreachableIsDependencyFailure(t *testing.T) {
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}
	store := mocks.NewStore(t)
	store.EXPECT().ListFriends(mock.Anything, int64(1)).Return(nil, refused).Once()
	store.EXPECT().RemoveFriendship(mock.Anything, int64(1), int64(2)).Return(context.DeadlineExceeded).Once()

	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.ListFriends(ctx, 1)
	if !apperrors.Is(err, apperrors.CategoryDependencyFailure) || !apperrors.IsRetryable(err) {
		t.Fatalf("expected retryable dependency failure, got %v", err)
	}
	if err := svc.RemoveFriend(ctx, 1, 2); !apperrors.Is(err, apperrors.CategoryConnectionTimeout) {
		t.Fatalf("expected connection timeout, got %v", err)
	}
}

func TestCreateRequestRaceMapsToConflict(t *testing.T) {
	for _, storeErr := range []error{friend.ErrDuplicateRequest, friend.ErrReverseRequest, friend.ErrAlreadyFriends} {
		t.Run(storeErr.Error(), func(t *testing.T) {
			store := mocks.NewStore(t)
			store.EXPECT().AccountExists(mock.Anything, int64(2)).Return(true, nil).Once()
			store.EXPECT().AreFriends(mock.Anything, int64(1), int64(2)).Return(false, nil).Once()
			store.EXPECT().PendingRequestExists(mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Twice()
			store.EXPECT().CreateRequest(mock.Anything, mock.Anything).Return(storeErr).Once()

			_, err := NewService(store).SendRequest(context.Background(), 1, 2)
			if !apperrors.Is(err, apperrors.CategoryDataConflict) {
				t.Fatalf("expected conflict, got %v", err)
			}
			if !errors.Is(err, storeErr) {
				t.Fatalf("expected %v to be wrapped, got %v", storeErr, err)
			}
		})
	}
}
