package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/cryptoballot/pkg/ballot"
)

const serviceName = "BallotService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the ballot Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) done(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Info(method+" completed", fields...)
}

// DiscoverAll wraps the service method with logging
func (ls *logService) DiscoverAll(ctx context.Context) (dir *ballot.Directory, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.done("DiscoverAll", start, err)
			return
		}
		ls.done("DiscoverAll", start, nil,
			zap.Int("active", len(dir.Active)),
			zap.Int("expired", len(dir.Expired)))
	}()
	return ls.svc.DiscoverAll(ctx)
}

// FetchOne wraps the service method with logging
func (ls *logService) FetchOne(ctx context.Context, id uint64) (view *ballot.View, err error) {
	start := time.Now()
	defer func() { ls.done("FetchOne", start, err, zap.Uint64("ballot_id", id)) }()
	return ls.svc.FetchOne(ctx, id)
}

// Create wraps the service method with logging
func (ls *logService) Create(ctx context.Context, req *ballot.CreateRequest) (receipt *ballot.Receipt, err error) {
	start := time.Now()
	ls.logger.Info("Create started",
		zap.String("service", serviceName),
		zap.String("method", "Create"),
		zap.Stringer("kind", req.Kind),
		zap.Int("options", len(req.Options)),
		zap.Uint64("duration_minutes", req.DurationMinutes),
	)
	defer func() { ls.done("Create", start, err, receiptFields(receipt)...) }()
	return ls.svc.Create(ctx, req)
}

// Vote wraps the service method with logging
func (ls *logService) Vote(ctx context.Context, id uint64, optionIndex int) (receipt *ballot.Receipt, err error) {
	start := time.Now()
	ls.logger.Info("Vote started",
		zap.String("service", serviceName),
		zap.String("method", "Vote"),
		zap.Uint64("ballot_id", id),
		zap.Int("option_index", optionIndex),
	)
	defer func() { ls.done("Vote", start, err, receiptFields(receipt)...) }()
	return ls.svc.Vote(ctx, id, optionIndex)
}

// RegisterVoter wraps the service method with logging
func (ls *logService) RegisterVoter(ctx context.Context) (receipt *ballot.Receipt, err error) {
	start := time.Now()
	defer func() { ls.done("RegisterVoter", start, err, receiptFields(receipt)...) }()
	return ls.svc.RegisterVoter(ctx)
}

// VoterInfo wraps the service method with logging
func (ls *logService) VoterInfo(ctx context.Context, address string) (info *ballot.VoterInfo, err error) {
	start := time.Now()
	defer func() { ls.done("VoterInfo", start, err, zap.String("address", address)) }()
	return ls.svc.VoterInfo(ctx, address)
}

func receiptFields(r *ballot.Receipt) []zap.Field {
	if r == nil {
		return nil
	}
	return []zap.Field{
		zap.String("tx_hash", r.TxHash),
		zap.String("from", r.From),
		zap.Uint64("block_number", r.BlockNumber),
		zap.Bool("pending", r.Pending),
	}
}
