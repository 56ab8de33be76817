package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/chainsafe/cryptoballot/pkg/app/errors"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var got ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got
}

func TestHandleError_ServiceError(t *testing.T) {
	h := HandleError(func(http.ResponseWriter, *http.Request) error {
		return apperrors.ResourceNotFoundError(nil, "Friend not found")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	got := decodeError(t, rec)
	if got.ErrMsg != "Friend not found" || got.ErrMsgCode != http.StatusNotFound {
		t.Fatalf("unexpected body %+v", got)
	}
}

func TestHandleError_UnknownErrorIsOpaque(t *testing.T) {
	h := HandleError(func(http.ResponseWriter, *http.Request) error {
		return errors.New("pq: relation does not exist")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if got := decodeError(t, rec); got.ErrMsg != "Unexpected Service Error" {
		t.Fatalf("internal error leaked: %q", got.ErrMsg)
	}
}

type decodeTarget struct {
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"password":"a","confirmPassword":"a"}`, ""},
		{"invalid json", `{`, "invalid JSON"},
		{"missing field", `{"confirmPassword":"a"}`, "password is required"},
		{"mismatch", `{"password":"a","confirmPassword":"b"}`, "confirmPassword must match password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst decodeTarget
			err := DecodeJSON(req, &dst)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !apperrors.Is(err, apperrors.CategoryDataError) {
				t.Fatalf("expected data error, got %v", err)
			}
			var svcErr *apperrors.ServiceError
			errors.As(err, &svcErr)
			if !strings.Contains(svcErr.Message, tt.wantErr) {
				t.Fatalf("expected message containing %q, got %q", tt.wantErr, svcErr.Message)
			}
		})
	}
}
