package auth

import (
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/chainsafe/cryptoballot/pkg/app/errors"
	apphttp "github.com/chainsafe/cryptoballot/pkg/app/http"
)

// AccessTokenParser validates bearer access tokens
type AccessTokenParser interface {
	ParseAccess(token string) (*Claims, error)
}

// RequireAccount rejects requests without a valid bearer access token and
// stores the account identity in the request context otherwise.
func RequireAccount(parser AccessTokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "Unauthorized"))
				return
			}

			claims, err := parser.ParseAccess(token)
			if err != nil {
				msg := "invalid token"
				if errors.Is(err, ErrTokenExpired) {
					msg = "token expired"
				}
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, msg))
				return
			}

			accountID, _ := claims.AccountID()
			ctx := WithAccountID(r.Context(), accountID)
			ctx = WithEmail(ctx, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestAccountID returns the authenticated account id or an Unauthorized error.
// Handlers mounted behind RequireAccount always find one.
func RequestAccountID(r *http.Request) (int64, error) {
	id, ok := AccountIDFromContext(r.Context())
	if !ok {
		return 0, apperrors.UnAuthorizedError(nil, "Unauthorized")
	}
	return id, nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
