package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/cryptoballot/pkg/app/errors"
	apphttp "github.com/chainsafe/cryptoballot/pkg/app/http"
	"github.com/chainsafe/cryptoballot/pkg/auth"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type sendRequestBody struct {
	FriendID int64 `json:"friendId" validate:"required,gt=0"`
}

type respondBody struct {
	RequestID int64 `json:"requestId" validate:"required,gt=0"`
}

type friendshipResponse struct {
	Friends bool `json:"friends"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// RegisterRoutes registers the friend endpoints on the given chi router.
// Every route acts on the caller, so r is expected to carry the auth middleware.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, logger: logger}

	r.Route("/friends", func(r chi.Router) {
		r.Get("/", apphttp.HandleError(h.listFriends))
		r.Get("/pending", apphttp.HandleError(h.listIncoming))
		r.Get("/requests", apphttp.HandleError(h.listOutgoing))
		r.Post("/request", apphttp.HandleError(h.sendRequest))
		r.Post("/accept", apphttp.HandleError(h.accept))
		r.Post("/reject", apphttp.HandleError(h.reject))
		r.Get("/check/{id}", apphttp.HandleError(h.check))
		r.Delete("/{id}", apphttp.HandleError(h.remove))
	})
}

func (h *HTTP) listFriends(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequestAccountID(r)
	if err != nil {
		return err
	}
	friends, err := h.service.ListFriends(r.Context(), userID)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, friends)
	return nil
}

func (h *HTTP) listIncoming(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequestAccountID(r)
	if err != nil {
		return err
	}
	reqs, err := h.service.ListIncomingPending(r.Context(), userID)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, reqs)
	return nil
}

func (h *HTTP) listOutgoing(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequestAccountID(r)
	if err != nil {
		return err
	}
	reqs, err := h.service.ListOutgoingPending(r.Context(), userID)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, reqs)
	return nil
}

func (h *HTTP) sendRequest(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequestAccountID(r)
	if err != nil {
		return err
	}
	var body sendRequestBody
	if err := apphttp.DecodeJSON(r, &body); err != nil {
		return err
	}

	req, err := h.service.SendRequest(r.Context(), userID, body.FriendID)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, req)
	return nil
}

func (h *HTTP) accept(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequestAccountID(r)
	if err != nil {
		return err
	}
	var body respondBody
	if err := apphttp.DecodeJSON(r, &body); err != nil {
		return err
	}

	req, err := h.service.AcceptRequest(r.Context(), body.RequestID, userID)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, req)
	return nil
}

func (h *HTTP) reject(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequestAccountID(r)
	if err != nil {
		return err
	}
	var body respondBody
	if err := apphttp.DecodeJSON(r, &body); err != nil {
		return err
	}

	req, err := h.service.RejectRequest(r.Context(), body.RequestID, userID)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, req)
	return nil
}

func (h *HTTP) check(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequestAccountID(r)
	if err != nil {
		return err
	}
	otherID, err := pathID(r)
	if err != nil {
		return err
	}

	ok, err := h.service.CheckFriendship(r.Context(), userID, otherID)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, friendshipResponse{Friends: ok})
	return nil
}

func (h *HTTP) remove(w http.ResponseWriter, r *http.Request) error {
	userID, err := auth.RequestAccountID(r)
	if err != nil {
		return err
	}
	friendID, err := pathID(r)
	if err != nil {
		return err
	}

	if err := h.service.RemoveFriend(r.Context(), userID, friendID); err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, messageResponse{Message: "friend removed"})
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.BadRequestError(err, "invalid user id")
	}
	return id, nil
}
