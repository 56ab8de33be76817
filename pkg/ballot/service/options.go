package service

import (
	"time"

	"github.com/microcosm-cc/bluemonday"
)

const defaultMaxProbe = 10000

type settings struct {
	now       func() time.Time
	maxProbe  uint64
	sanitizer *bluemonday.Policy
}

// Option configures the ballot service.
type Option func(*settings)

// WithClock overrides the time source used to derive expiry fields.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithMaxProbe bounds how many ids one discovery pass may probe.
func WithMaxProbe(n uint64) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxProbe = n
		}
	}
}

func applyOptions(opts []Option) settings {
	s := settings{
		now:       time.Now,
		maxProbe:  defaultMaxProbe,
		sanitizer: bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
