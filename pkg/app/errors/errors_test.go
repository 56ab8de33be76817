package errors

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"testing"
)

func TestCategories_StatusCodes(t *testing.T) {
	tests := []struct {
		err  error
		cat  Category
		code int
	}{
		{BadRequestError(nil, "bad"), CategoryDataError, http.StatusBadRequest},
		{UnAuthorizedError(nil, "who"), CategoryUnauthorized, http.StatusUnauthorized},
		{ForbiddenError(nil, "no"), CategoryForbidden, http.StatusForbidden},
		{ResourceNotFoundError(nil, "gone"), CategoryResourceNotFound, http.StatusNotFound},
		{ConflictError(nil, "dup"), CategoryDataConflict, http.StatusConflict},
		{DependencyError(errors.New("dial tcp"), "rpc down"), CategoryDependencyFailure, http.StatusBadGateway},
		{DependencyError(context.DeadlineExceeded, "rpc slow"), CategoryConnectionTimeout, http.StatusGatewayTimeout},
		{GeneralError(nil), CategoryGeneralError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			if !Is(tt.err, tt.cat) {
				t.Fatalf("expected category %s for %v", tt.cat, tt.err)
			}
			var svcErr *ServiceError
			if !errors.As(tt.err, &svcErr) {
				t.Fatalf("expected *ServiceError, got %T", tt.err)
			}
			if svcErr.StatusCode() != tt.code {
				t.Fatalf("expected status %d, got %d", tt.code, svcErr.StatusCode())
			}
		})
	}
}

func TestServiceError_KeepsSentinelChain(t *testing.T) {
	sentinel := errors.New("friend request already sent")
	err := fmt.Errorf("send: %w", ConflictError(sentinel, "friend request already sent"))

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel to be reachable through %v", err)
	}
	if !Is(err, CategoryDataConflict) {
		t.Fatalf("expected conflict category through wrapping")
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(DependencyError(errors.New("eof"), "rpc")) {
		t.Fatal("dependency failure should be retryable")
	}
	if !IsRetryable(DependencyError(context.DeadlineExceeded, "rpc")) {
		t.Fatal("timeout should be retryable")
	}
	if IsRetryable(ResourceNotFoundError(nil, "ballot not found")) {
		t.Fatal("not found must not be retryable")
	}
	if IsRetryable(errors.New("plain")) {
		t.Fatal("plain errors must not be retryable")
	}
}

func TestStoreError(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
		want Category
	}{
		{"connection refused", fmt.Errorf("failed to list friends: %w", &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}), CategoryDependencyFailure},
		{"bad connection", fmt.Errorf("query: %w", driver.ErrBadConn), CategoryDependencyFailure},
		{"query deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), CategoryConnectionTimeout},
		{"constraint violation", errors.New("ERROR: null value in column violates not-null constraint"), CategoryGeneralError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := StoreError(tc.err)
			if !Is(err, tc.want) {
				t.Fatalf("expected %s, got %v", tc.want, err)
			}
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected cause to be kept, got %v", err)
			}
		})
	}
}
