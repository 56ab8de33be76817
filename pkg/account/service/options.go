package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/crypto/bcrypt"
)

type settings struct {
	now        func() time.Time
	bcryptCost int
	newTokenID func() uuid.UUID
	sanitizer  *bluemonday.Policy
}

// Option configures the account service.
type Option func(*settings)

// WithClock overrides the time source used for token bookkeeping.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithBcryptCost sets the password hashing cost.
func WithBcryptCost(cost int) Option {
	return func(s *settings) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// WithTokenIDs overrides refresh token id generation.
func WithTokenIDs(next func() uuid.UUID) Option {
	return func(s *settings) { s.newTokenID = next }
}

func applyOptions(opts []Option) settings {
	s := settings{
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
		newTokenID: uuid.New,
		sanitizer:  bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
