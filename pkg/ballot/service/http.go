package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/cryptoballot/pkg/app/errors"
	apphttp "github.com/chainsafe/cryptoballot/pkg/app/http"
	"github.com/chainsafe/cryptoballot/pkg/ballot"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type createBallotRequest struct {
	Kind            ballot.Kind `json:"kind" validate:"required"`
	Title           string      `json:"title" validate:"required"`
	Options         []string    `json:"options" validate:"required"`
	DurationMinutes uint64      `json:"durationMinutes" validate:"required"`
}

type voteRequest struct {
	OptionIndex *int `json:"optionIndex" validate:"required"`
}

// RegisterRoutes registers the public ballot read endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, logger: logger}

	r.Get("/ballots", apphttp.HandleError(h.discoverAll))
	r.Get("/ballots/{id}", apphttp.HandleError(h.fetchOne))
	r.Get("/voting/user/{address}", apphttp.HandleError(h.voterInfo))
}

// RegisterAuthenticatedRoutes registers the ballot write endpoints.
// r is expected to carry the auth middleware.
func RegisterAuthenticatedRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, logger: logger}

	r.Post("/ballots", apphttp.HandleError(h.create))
	r.Post("/ballots/{id}/vote", apphttp.HandleError(h.vote))
	r.Post("/voting/start-user", apphttp.HandleError(h.startUser))
}

func (h *HTTP) discoverAll(w http.ResponseWriter, r *http.Request) error {
	dir, err := h.service.DiscoverAll(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, dir)
	return nil
}

func (h *HTTP) fetchOne(w http.ResponseWriter, r *http.Request) error {
	id, err := ballotID(r)
	if err != nil {
		return err
	}
	view, err := h.service.FetchOne(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, view)
	return nil
}

func (h *HTTP) create(w http.ResponseWriter, r *http.Request) error {
	var req createBallotRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	receipt, err := h.service.Create(r.Context(), &ballot.CreateRequest{
		Kind:            req.Kind,
		Title:           req.Title,
		Options:         req.Options,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		return err
	}
	writeReceipt(w, http.StatusCreated, receipt)
	return nil
}

func (h *HTTP) vote(w http.ResponseWriter, r *http.Request) error {
	id, err := ballotID(r)
	if err != nil {
		return err
	}

	var req voteRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	receipt, err := h.service.Vote(r.Context(), id, *req.OptionIndex)
	if err != nil {
		return err
	}
	writeReceipt(w, http.StatusOK, receipt)
	return nil
}

func (h *HTTP) startUser(w http.ResponseWriter, r *http.Request) error {
	receipt, err := h.service.RegisterVoter(r.Context())
	if err != nil {
		return err
	}
	writeReceipt(w, http.StatusOK, receipt)
	return nil
}

func (h *HTTP) voterInfo(w http.ResponseWriter, r *http.Request) error {
	info, err := h.service.VoterInfo(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, info)
	return nil
}

// writeReceipt answers 202 for a transaction that is broadcast but not yet mined
func writeReceipt(w http.ResponseWriter, status int, receipt *ballot.Receipt) {
	if receipt != nil && receipt.Pending {
		status = http.StatusAccepted
	}
	apphttp.WriteJSON(w, status, receipt)
}

func ballotID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.BadRequestError(err, "invalid ballot id")
	}
	return id, nil
}
