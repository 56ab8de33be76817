package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/microcosm-cc/bluemonday"

	"github.com/chainsafe/cryptoballot/internal/metrics"
	apperrors "github.com/chainsafe/cryptoballot/pkg/app/errors"
	"github.com/chainsafe/cryptoballot/pkg/auth"
	"github.com/chainsafe/cryptoballot/pkg/ballot"
)

// Gateway is the contract access the ballot service needs.
// Defined here to keep the service decoupled from the go-ethereum binding.
//
//go:generate mockery --name Gateway --output mocks --outpkg mocks --filename mock_gateway.go --with-expecter
type Gateway interface {
	ResolveBallot(ctx context.Context, id uint64) (ballot.Descriptor, error)
	CreateBallot(ctx context.Context, req *ballot.CreateRequest) (*ballot.Receipt, error)
	Vote(ctx context.Context, kind ballot.Kind, id uint64, optionIndex int) (*ballot.Receipt, error)
	StartUser(ctx context.Context) (*ballot.Receipt, error)
	VoterInfo(ctx context.Context, address common.Address) (*ballot.VoterInfo, error)
}

// Service defines the interface for the ballot directory
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	DiscoverAll(ctx context.Context) (*ballot.Directory, error)
	FetchOne(ctx context.Context, id uint64) (*ballot.View, error)
	Create(ctx context.Context, req *ballot.CreateRequest) (*ballot.Receipt, error)
	Vote(ctx context.Context, id uint64, optionIndex int) (*ballot.Receipt, error)
	RegisterVoter(ctx context.Context) (*ballot.Receipt, error)
	VoterInfo(ctx context.Context, address string) (*ballot.VoterInfo, error)
}

type ballotService struct {
	gateway Gateway
	settings
}

// NewService creates a new ballot directory service
func NewService(gateway Gateway, opts ...Option) Service {
	return &ballotService{
		gateway:  gateway,
		settings: applyOptions(opts),
	}
}

// DiscoverAll probes ids from 1 upward until the first id that resolves to
// no ballot, and partitions what it found into active and expired.
// A transport failure aborts the whole pass.
func (s *ballotService) DiscoverAll(ctx context.Context) (*ballot.Directory, error) {
	now := s.now()
	dir := &ballot.Directory{
		Active:  []*ballot.View{},
		Expired: []*ballot.View{},
		AsOf:    now.Unix(),
	}

	for id := uint64(1); ; id++ {
		if id > s.maxProbe {
			return nil, apperrors.DependencyError(
				fmt.Errorf("%w: %d", ballot.ErrProbeLimit, s.maxProbe),
				"ballot discovery exceeded probe limit",
			)
		}
		if err := ctx.Err(); err != nil {
			return nil, apperrors.DependencyError(err, "ballot discovery cancelled")
		}

		metrics.BallotsProbed.Inc()
		desc, err := s.gateway.ResolveBallot(ctx, id)
		if err != nil {
			return nil, apperrors.DependencyError(err, fmt.Sprintf("failed to read ballot %d", id))
		}
		if !desc.Found() {
			break
		}

		view := ballot.NewView(desc.Ballot, now)
		if view.IsExpired {
			dir.Expired = append(dir.Expired, view)
		} else {
			dir.Active = append(dir.Active, view)
		}
	}

	metrics.BallotsDiscovered.WithLabelValues("active").Set(float64(len(dir.Active)))
	metrics.BallotsDiscovered.WithLabelValues("expired").Set(float64(len(dir.Expired)))
	return dir, nil
}

// FetchOne returns a single ballot
func (s *ballotService) FetchOne(ctx context.Context, id uint64) (*ballot.View, error) {
	b, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	return ballot.NewView(b, s.now()), nil
}

// Create validates and submits a new ballot
func (s *ballotService) Create(ctx context.Context, req *ballot.CreateRequest) (receipt *ballot.Receipt, err error) {
	defer func() { metrics.BallotWrites.WithLabelValues("create", writeResult(receipt, err)).Inc() }()

	clean := s.sanitize(req)
	if err := clean.Validate(); err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}

	receipt, err = s.gateway.CreateBallot(ctx, clean)
	return submitted(receipt, err, "failed to create ballot")
}

// Vote casts a vote after checking the option index and expiry locally
func (s *ballotService) Vote(ctx context.Context, id uint64, optionIndex int) (receipt *ballot.Receipt, err error) {
	defer func() { metrics.BallotWrites.WithLabelValues("vote", writeResult(receipt, err)).Inc() }()

	b, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	if optionIndex < 0 || optionIndex >= len(b.Options) {
		return nil, apperrors.BadRequestError(
			fmt.Errorf("%w: %d not in [0,%d)", ballot.ErrInvalidOptionIndex, optionIndex, len(b.Options)),
			"option index out of range",
		)
	}
	if b.IsExpired(s.now()) {
		return nil, apperrors.BadRequestError(ballot.ErrBallotExpired, "ballot has expired")
	}

	receipt, err = s.gateway.Vote(ctx, b.Kind, id, optionIndex)
	return submitted(receipt, err, "failed to cast vote")
}

// RegisterVoter registers the service's signing address on chain
func (s *ballotService) RegisterVoter(ctx context.Context) (*ballot.Receipt, error) {
	receipt, err := s.gateway.StartUser(ctx)
	return submitted(receipt, err, "failed to register voter")
}

// VoterInfo returns the contract's record for address
func (s *ballotService) VoterInfo(ctx context.Context, address string) (*ballot.VoterInfo, error) {
	if !auth.ValidateEVMAddress(address) {
		return nil, apperrors.BadRequestError(ballot.ErrInvalidAddress, "invalid address")
	}

	info, err := s.gateway.VoterInfo(ctx, common.HexToAddress(address))
	if err != nil {
		if errors.Is(err, ballot.ErrCallReverted) {
			return nil, apperrors.ResourceNotFoundError(err, "voter not found")
		}
		return nil, apperrors.DependencyError(err, "failed to read voter info")
	}
	return info, nil
}

func (s *ballotService) resolve(ctx context.Context, id uint64) (*ballot.Ballot, error) {
	if id < 1 {
		return nil, apperrors.BadRequestError(nil, "ballot id must be positive")
	}

	desc, err := s.gateway.ResolveBallot(ctx, id)
	if err != nil {
		return nil, apperrors.DependencyError(err, fmt.Sprintf("failed to read ballot %d", id))
	}
	if !desc.Found() {
		return nil, apperrors.ResourceNotFoundError(ballot.ErrBallotNotFound, "ballot not found")
	}
	return desc.Ballot, nil
}

// sanitize strips markup from user supplied text without mutating req
func (s *ballotService) sanitize(req *ballot.CreateRequest) *ballot.CreateRequest {
	clean := &ballot.CreateRequest{
		Kind:            req.Kind,
		Title:           sanitizeText(s.sanitizer, req.Title),
		Options:         make([]string, len(req.Options)),
		DurationMinutes: req.DurationMinutes,
	}
	for i, opt := range req.Options {
		clean.Options[i] = sanitizeText(s.sanitizer, opt)
	}
	return clean
}

func sanitizeText(p *bluemonday.Policy, s string) string {
	return strings.TrimSpace(p.Sanitize(s))
}

// submitted maps a gateway write result. A transaction that was broadcast but
// not mined in time is returned as a pending receipt so the caller keeps the
// hash and does not resubmit.
func submitted(receipt *ballot.Receipt, err error, msg string) (*ballot.Receipt, error) {
	switch {
	case err == nil:
		return receipt, nil
	case errors.Is(err, ballot.ErrReceiptPending) && receipt != nil:
		return receipt, nil
	default:
		return nil, writeError(err, msg)
	}
}

func writeResult(receipt *ballot.Receipt, err error) string {
	if err == nil && receipt != nil && receipt.Pending {
		return "pending"
	}
	return metrics.Result(err)
}

func writeError(err error, msg string) error {
	switch {
	case errors.Is(err, ballot.ErrTransactionReverted):
		return apperrors.ConflictError(err, "transaction reverted")
	case errors.Is(err, ballot.ErrWritesDisabled):
		return apperrors.ForbiddenError(err, "ballot writes are disabled on this server")
	default:
		return apperrors.DependencyError(err, msg)
	}
}
