package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chainsafe/cryptoballot/pkg/account"
	apperrors "github.com/chainsafe/cryptoballot/pkg/app/errors"
	apphttp "github.com/chainsafe/cryptoballot/pkg/app/http"
	"github.com/chainsafe/cryptoballot/pkg/auth"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// RegisterRoutes registers the public account endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, logger: logger}

	r.Post("/auth/signup", apphttp.HandleError(h.signup))
	r.Post("/auth/login", apphttp.HandleError(h.login))
	r.Post("/auth/token", apphttp.HandleError(h.refresh))
	r.Post("/auth/logout", apphttp.HandleError(h.logout))
	r.Get("/profile/{id}", apphttp.HandleError(h.getAccount))
}

// RegisterAuthenticatedRoutes registers the endpoints acting on the caller's account.
// r is expected to carry the auth middleware.
func RegisterAuthenticatedRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, logger: logger}

	r.Get("/profile", apphttp.HandleError(h.profile))
	r.Get("/username", apphttp.HandleError(h.username))
	r.Post("/connect-wallet", apphttp.HandleError(h.connectWallet))
}

func (h *HTTP) signup(w http.ResponseWriter, r *http.Request) error {
	var req account.SignupRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	profile, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, profile)
	return nil
}

func (h *HTTP) login(w http.ResponseWriter, r *http.Request) error {
	var req loginRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	pair, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, pair)
	return nil
}

func (h *HTTP) refresh(w http.ResponseWriter, r *http.Request) error {
	var req refreshRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	pair, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, pair)
	return nil
}

func (h *HTTP) logout(w http.ResponseWriter, r *http.Request) error {
	var req refreshRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	if err := h.service.Logout(r.Context(), req.RefreshToken); err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, messageResponse{Message: "logged out"})
	return nil
}

func (h *HTTP) profile(w http.ResponseWriter, r *http.Request) error {
	accountID, err := auth.RequestAccountID(r)
	if err != nil {
		return err
	}

	profile, err := h.service.Profile(r.Context(), accountID)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, profile)
	return nil
}

func (h *HTTP) username(w http.ResponseWriter, r *http.Request) error {
	accountID, err := auth.RequestAccountID(r)
	if err != nil {
		return err
	}

	name, err := h.service.Username(r.Context(), accountID)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, map[string]string{"name": name})
	return nil
}

func (h *HTTP) getAccount(w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return apperrors.BadRequestError(err, "invalid account id")
	}

	profile, err := h.service.GetAccount(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, profile)
	return nil
}

func (h *HTTP) connectWallet(w http.ResponseWriter, r *http.Request) error {
	accountID, err := auth.RequestAccountID(r)
	if err != nil {
		return err
	}

	var req account.ConnectWalletRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	profile, err := h.service.ConnectWallet(r.Context(), accountID, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, profile)
	return nil
}
