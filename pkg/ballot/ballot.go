// Package ballot holds the domain model for ballots read from the voting contract.
package ballot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the shape of a ballot on chain
type Kind uint8

const (
	// KindNone marks an id that resolved to no ballot
	KindNone Kind = iota
	// KindBinary is a two option ballot
	KindBinary
	// KindMultiChoice is a ballot with three to ten options
	KindMultiChoice
)

const (
	MinMultiChoiceOptions = 3
	MaxMultiChoiceOptions = 10
	MinDurationMinutes    = 60
)

var (
	ErrBallotNotFound      = errors.New("ballot not found")
	ErrUnknownKind         = errors.New("unknown ballot kind")
	ErrEmptyTitle          = errors.New("title is required")
	ErrEmptyOption         = errors.New("options must not be empty")
	ErrInvalidOptionCount  = errors.New("invalid number of options")
	ErrDurationTooShort    = errors.New("duration must be at least 60 minutes")
	ErrInvalidOptionIndex  = errors.New("option index out of range")
	ErrBallotExpired       = errors.New("ballot has expired")
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrReceiptPending      = errors.New("transaction submitted but receipt not yet available")
	ErrCallReverted        = errors.New("contract call reverted")
	ErrWritesDisabled      = errors.New("ballot writes are disabled")
	ErrInvalidAddress      = errors.New("invalid EVM address")
	ErrProbeLimit          = errors.New("ballot probe limit reached")
)

func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindMultiChoice:
		return "multi_choice"
	default:
		return "none"
	}
}

// MarshalText renders the kind as its lower-case name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText accepts "binary" and "multi_choice"
func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "binary":
		*k = KindBinary
	case "multi_choice", "multichoice":
		*k = KindMultiChoice
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, string(text))
	}
	return nil
}

// Ballot is one ballot as stored by the contract
type Ballot struct {
	ID         uint64
	Kind       Kind
	Title      string
	Creator    string
	EndTime    int64
	Options    []string
	VoteCounts []uint64
}

// ExpiresIn returns the seconds left until EndTime, negative once passed
func (b *Ballot) ExpiresIn(now time.Time) int64 {
	return b.EndTime - now.Unix()
}

// IsExpired reports whether the ballot no longer accepts votes at now
func (b *Ballot) IsExpired(now time.Time) bool {
	return b.ExpiresIn(now) <= 0
}

// TotalVotes sums the per-option counts
func (b *Ballot) TotalVotes() uint64 {
	var total uint64
	for _, c := range b.VoteCounts {
		total += c
	}
	return total
}

// Descriptor is the result of resolving an id against the contract.
// Kind is KindNone when no ballot exists at that id.
type Descriptor struct {
	Kind   Kind
	Ballot *Ballot
}

// Found reports whether the descriptor carries a ballot
func (d Descriptor) Found() bool {
	return d.Kind != KindNone && d.Ballot != nil
}

// View is a ballot with its time-derived fields computed against one instant
type View struct {
	ID         uint64            `json:"id"`
	Kind       Kind              `json:"kind"`
	Title      string            `json:"title"`
	Creator    string            `json:"creatorAddress"`
	EndTime    int64             `json:"endTime"`
	Options    []string          `json:"options"`
	VoteCounts []uint64          `json:"voteCounts"`
	TotalVotes uint64            `json:"totalVotes"`
	Shares     []decimal.Decimal `json:"shares"`
	ExpiresIn  int64             `json:"expiresIn"`
	IsExpired  bool              `json:"isExpired"`
}

// NewView derives the presentation fields of b at now
func NewView(b *Ballot, now time.Time) *View {
	total := b.TotalVotes()
	return &View{
		ID:         b.ID,
		Kind:       b.Kind,
		Title:      b.Title,
		Creator:    b.Creator,
		EndTime:    b.EndTime,
		Options:    b.Options,
		VoteCounts: b.VoteCounts,
		TotalVotes: total,
		Shares:     shares(b.VoteCounts, total),
		ExpiresIn:  b.ExpiresIn(now),
		IsExpired:  b.IsExpired(now),
	}
}

// shares returns each count as a percentage of total rounded to two places
func shares(counts []uint64, total uint64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(counts))
	if total == 0 {
		for i := range out {
			out[i] = decimal.Zero
		}
		return out
	}

	denom := decimal.NewFromUint64(total)
	hundred := decimal.NewFromInt(100)
	for i, c := range counts {
		out[i] = decimal.NewFromUint64(c).Mul(hundred).DivRound(denom, 2)
	}
	return out
}

// Directory is the partitioned result of a full discovery pass
type Directory struct {
	Active  []*View `json:"active"`
	Expired []*View `json:"expired"`
	AsOf    int64   `json:"asOf"`
}

// CreateRequest describes a ballot to submit
type CreateRequest struct {
	Kind            Kind     `json:"kind"`
	Title           string   `json:"title"`
	Options         []string `json:"options"`
	DurationMinutes uint64   `json:"durationMinutes"`
}

// Validate checks the request against the contract's creation rules
func (r *CreateRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}

	switch r.Kind {
	case KindBinary:
		if len(r.Options) != 2 {
			return fmt.Errorf("%w: binary ballots need exactly 2, got %d", ErrInvalidOptionCount, len(r.Options))
		}
	case KindMultiChoice:
		if len(r.Options) < MinMultiChoiceOptions || len(r.Options) > MaxMultiChoiceOptions {
			return fmt.Errorf("%w: multi choice ballots need %d to %d, got %d",
				ErrInvalidOptionCount, MinMultiChoiceOptions, MaxMultiChoiceOptions, len(r.Options))
		}
	default:
		return ErrUnknownKind
	}

	for _, opt := range r.Options {
		if strings.TrimSpace(opt) == "" {
			return ErrEmptyOption
		}
	}

	if r.DurationMinutes < MinDurationMinutes {
		return ErrDurationTooShort
	}
	return nil
}

// Receipt summarises a submitted transaction. Pending receipts carry only the
// hash and sender: the transaction was broadcast but not seen in a block before
// the mine timeout, so it must not be resubmitted.
type Receipt struct {
	TxHash      string `json:"transactionHash"`
	From        string `json:"from,omitempty"`
	BlockNumber uint64 `json:"blockNumber,omitempty"`
	Status      uint64 `json:"status"`
	Pending     bool   `json:"pending,omitempty"`
}

// VoterInfo is the contract's record for one address
type VoterInfo struct {
	Address           string   `json:"address"`
	IsUser            bool     `json:"isUser"`
	IsAdmin           bool     `json:"isAdmin"`
	TotalVotes        uint64   `json:"totalVotes"`
	LastVotedBallotID uint64   `json:"lastVotedBallotId"`
	LastVotedTime     int64    `json:"lastVotedTime"`
	BallotsCreated    []uint64 `json:"ballotsCreated"`
}
