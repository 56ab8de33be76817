package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/cryptoballot/pkg/app/errors"
	"github.com/chainsafe/cryptoballot/pkg/auth"
	"github.com/chainsafe/cryptoballot/pkg/friend"
	"github.com/chainsafe/cryptoballot/pkg/friend/service/mocks"
)

// asUser injects the account id the auth middleware would have resolved
func asUser(id int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(auth.WithAccountID(r.Context(), id)))
	})
}

func newFriendTestServer(svc Service, userID int64) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return asUser(userID, r)
}

func TestFriendHTTP_SendRequest(t *testing.T) {
	t.Run("missing friend id", func(t *testing.T) {
		svc := mocks.NewService(t)
		rec := httptest.NewRecorder()
		newFriendTestServer(svc, 1).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/friends/request", bytes.NewBufferString(`{}`)))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := mocks.NewService(t)
		svc.EXPECT().SendRequest(mock.Anything, int64(1), int64(2)).
			Return(nil, apperrors.ConflictError(friend.ErrDuplicateRequest, friend.ErrDuplicateRequest.Error())).Once()

		rec := httptest.NewRecorder()
		newFriendTestServer(svc, 1).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/friends/request", bytes.NewBufferString(`{"friendId":2}`)))
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected status %d, got %d", http.StatusConflict, rec.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		svc := mocks.NewService(t)
		svc.EXPECT().SendRequest(mock.Anything, int64(1), int64(2)).
			Return(&friend.Request{ID: 10, RequesterID: 1, ReceiverID: 2, Status: friend.StatusPending}, nil).Once()

		rec := httptest.NewRecorder()
		newFriendTestServer(svc, 1).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/friends/request", bytes.NewBufferString(`{"friendId":2}`)))
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
		}
	})
}

func TestFriendHTTP_AcceptUsesCaller(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().AcceptRequest(mock.Anything, int64(10), int64(2)).
		Return(&friend.Request{ID: 10, Status: friend.StatusAccepted}, nil).Once()

	rec := httptest.NewRecorder()
	newFriendTestServer(svc, 2).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPost, "/friends/accept", bytes.NewBufferString(`{"requestId":10}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestFriendHTTP_Check(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().CheckFriendship(mock.Anything, int64(1), int64(2)).Return(true, nil).Once()

	rec := httptest.NewRecorder()
	newFriendTestServer(svc, 1).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/friends/check/2", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got friendshipResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if !got.Friends {
		t.Fatal("expected friends=true")
	}
}

func TestFriendHTTP_ListFriends_EmptyArray(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ListFriends(mock.Anything, int64(1)).Return([]*friend.Friend{}, nil).Once()

	rec := httptest.NewRecorder()
	newFriendTestServer(svc, 1).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/friends", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if got := bytes.TrimSpace(rec.Body.Bytes()); string(got) != "[]" {
		t.Fatalf("expected empty JSON array, got %s", got)
	}
}

func TestFriendHTTP_Remove_BadID(t *testing.T) {
	svc := mocks.NewService(t)
	rec := httptest.NewRecorder()
	newFriendTestServer(svc, 1).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/friends/zero", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
