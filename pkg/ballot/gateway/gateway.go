// Package gateway adapts the CryptoBallot contract binding to the ballot domain.
//
// It owns shape disambiguation: an id is first read as a Binary ballot and,
// when that call reverts, as a MultiChoice ballot. Reads run under a per-call
// timeout and are retried with bounded backoff. Reverts are final and writes
// are never retried.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/chainsafe/cryptoballot/internal/metrics"
	"github.com/chainsafe/cryptoballot/pkg/ballot"
	"github.com/chainsafe/cryptoballot/pkg/config"
	"github.com/chainsafe/cryptoballot/pkg/ethereum"
	"github.com/chainsafe/cryptoballot/pkg/ethereum/contracts"
)

// ballotContract is the subset of the generated binding the gateway calls
type ballotContract interface {
	GetABBallot(opts *bind.CallOpts, ballotId *big.Int) (contracts.CryptoBallotABBallot, error)
	GetMEBallot(opts *bind.CallOpts, ballotId *big.Int) (contracts.CryptoBallotMEBallot, error)
	GetUserInfo(opts *bind.CallOpts, user common.Address) (contracts.CryptoBallotUserInfo, error)
	CreateABBallot(opts *bind.TransactOpts, name, optionA, optionB string, durationMinutes *big.Int) (*types.Transaction, error)
	CreateMEBallot(opts *bind.TransactOpts, name string, options []string, durationMinutes *big.Int) (*types.Transaction, error)
	StartUser(opts *bind.TransactOpts) (*types.Transaction, error)
	VoteAB(opts *bind.TransactOpts, ballotId *big.Int, option uint8) (*types.Transaction, error)
	VoteME(opts *bind.TransactOpts, ballotId *big.Int, optionIndex *big.Int) (*types.Transaction, error)
}

// signer produces signed transaction options and waits for receipts
type signer interface {
	Transactor(ctx context.Context) (*bind.TransactOpts, error)
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
	SignerAddress() common.Address
}

// Type tags stored in each ballot record, in the contract's enum order
const (
	abBallotType uint8 = 0
	meBallotType uint8 = 1
)

// Gateway reads and writes ballots through the contract binding
type Gateway struct {
	contract      ballotContract
	signer        signer
	callTimeout   time.Duration
	maxRetries    uint64
	retryInterval time.Duration
	logger        *zap.Logger
}

// New creates a gateway over an already bound contract
func New(contract ballotContract, signer signer, cfg *config.EthereumConfig, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		contract:      contract,
		signer:        signer,
		callTimeout:   cfg.CallTimeout,
		maxRetries:    cfg.MaxRetries,
		retryInterval: cfg.RetryInterval,
		logger:        logger,
	}
}

// NewFromClient creates a gateway using the client's contract binding and signer
func NewFromClient(client *ethereum.Client, cfg *config.EthereumConfig, logger *zap.Logger) *Gateway {
	return New(client.Contract(), client, cfg, logger)
}

// ResolveBallot returns the ballot stored at id with its kind.
// A record whose type tag does not match the getter that returned it is
// treated like a revert. A Descriptor with KindNone means neither read resolved.
func (g *Gateway) ResolveBallot(ctx context.Context, id uint64) (ballot.Descriptor, error) {
	bid := new(big.Int).SetUint64(id)

	var ab contracts.CryptoBallotABBallot
	err := g.read(ctx, "getABBallot", func(opts *bind.CallOpts) error {
		var err error
		ab, err = g.contract.GetABBallot(opts, bid)
		return err
	})
	switch {
	case err == nil && isPresent(ab.Id) && ab.BallotType == abBallotType:
		return ballot.Descriptor{Kind: ballot.KindBinary, Ballot: fromABBallot(ab)}, nil
	case err != nil && !errors.Is(err, ballot.ErrCallReverted):
		return ballot.Descriptor{}, err
	}

	var me contracts.CryptoBallotMEBallot
	err = g.read(ctx, "getMEBallot", func(opts *bind.CallOpts) error {
		var err error
		me, err = g.contract.GetMEBallot(opts, bid)
		return err
	})
	switch {
	case err == nil && isPresent(me.Id) && me.BallotType == meBallotType:
		return ballot.Descriptor{Kind: ballot.KindMultiChoice, Ballot: fromMEBallot(me)}, nil
	case err == nil, errors.Is(err, ballot.ErrCallReverted):
		return ballot.Descriptor{Kind: ballot.KindNone}, nil
	default:
		return ballot.Descriptor{}, err
	}
}

// VoterInfo reads the contract's record for address
func (g *Gateway) VoterInfo(ctx context.Context, address common.Address) (*ballot.VoterInfo, error) {
	var info contracts.CryptoBallotUserInfo
	err := g.read(ctx, "getUserInfo", func(opts *bind.CallOpts) error {
		var err error
		info, err = g.contract.GetUserInfo(opts, address)
		return err
	})
	if err != nil {
		return nil, err
	}
	return fromUserInfo(address, info), nil
}

// CreateBallot submits a createABBallot or createMEBallot transaction and waits for it
func (g *Gateway) CreateBallot(ctx context.Context, req *ballot.CreateRequest) (*ballot.Receipt, error) {
	duration := new(big.Int).SetUint64(req.DurationMinutes)

	return g.write(ctx, "create", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		if req.Kind == ballot.KindBinary {
			return g.contract.CreateABBallot(opts, req.Title, req.Options[0], req.Options[1], duration)
		}
		return g.contract.CreateMEBallot(opts, req.Title, req.Options, duration)
	})
}

// Vote submits a vote for optionIndex using the entry point matching kind
func (g *Gateway) Vote(ctx context.Context, kind ballot.Kind, id uint64, optionIndex int) (*ballot.Receipt, error) {
	bid := new(big.Int).SetUint64(id)

	return g.write(ctx, "vote", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		switch kind {
		case ballot.KindBinary:
			return g.contract.VoteAB(opts, bid, uint8(optionIndex))
		case ballot.KindMultiChoice:
			return g.contract.VoteME(opts, bid, big.NewInt(int64(optionIndex)))
		default:
			return nil, ballot.ErrUnknownKind
		}
	})
}

// StartUser registers the signing address as a voter
func (g *Gateway) StartUser(ctx context.Context) (*ballot.Receipt, error) {
	return g.write(ctx, "startUser", g.contract.StartUser)
}

// read runs call under the per-call timeout, retrying transport failures
func (g *Gateway) read(ctx context.Context, method string, call func(*bind.CallOpts) error) error {
	start := time.Now()
	attempts := 0

	op := func() error {
		attempts++
		callCtx, cancel := context.WithTimeout(ctx, g.callTimeout)
		defer cancel()

		err := call(&bind.CallOpts{Context: callCtx})
		if err == nil {
			return nil
		}
		if IsRevert(err) {
			return backoff.Permanent(fmt.Errorf("%w: %s: %v", ballot.ErrCallReverted, method, err))
		}
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return fmt.Errorf("%s call failed: %w", method, err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(g.newBackOff(), g.maxRetries),
		ctx,
	)
	err := backoff.RetryNotify(op, policy, func(err error, wait time.Duration) {
		g.logger.Debug("Retrying contract read",
			zap.String("method", method),
			zap.Int("attempt", attempts),
			zap.Duration("wait", wait),
			zap.Error(err))
	})

	metrics.GatewayCalls.WithLabelValues(method, outcome(err)).Inc()
	metrics.GatewayCallDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	return err
}

// write signs and sends one transaction then waits for its receipt
func (g *Gateway) write(
	ctx context.Context,
	method string,
	send func(*bind.TransactOpts) (*types.Transaction, error),
) (receipt *ballot.Receipt, err error) {
	start := time.Now()
	defer func() {
		metrics.GatewayCalls.WithLabelValues(method, outcome(err)).Inc()
		metrics.GatewayCallDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}()

	opts, err := g.signer.Transactor(ctx)
	if err != nil {
		if errors.Is(err, ethereum.ErrReadOnly) {
			return nil, ballot.ErrWritesDisabled
		}
		return nil, fmt.Errorf("failed to prepare transaction: %w", err)
	}

	tx, err := send(opts)
	if err != nil {
		if IsRevert(err) {
			return nil, fmt.Errorf("%w: %s: %v", ballot.ErrTransactionReverted, method, err)
		}
		return nil, fmt.Errorf("failed to submit %s transaction: %w", method, err)
	}

	from := g.signer.SignerAddress().Hex()
	g.logger.Info("Ballot transaction submitted",
		zap.String("method", method),
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.String("from", from))

	rcpt, err := g.signer.WaitMined(ctx, tx)
	if err != nil {
		// The transaction is already broadcast; callers get its hash and must not resend.
		pending := &ballot.Receipt{TxHash: tx.Hash().Hex(), From: from, Pending: true}
		return pending, fmt.Errorf("%w: %s: %v", ballot.ErrReceiptPending, pending.TxHash, err)
	}

	receipt = &ballot.Receipt{
		TxHash:      rcpt.TxHash.Hex(),
		From:        from,
		BlockNumber: rcpt.BlockNumber.Uint64(),
		Status:      rcpt.Status,
	}
	if rcpt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s in block %d", ballot.ErrTransactionReverted, receipt.TxHash, receipt.BlockNumber)
	}
	return receipt, nil
}

func (g *Gateway) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.retryInterval
	b.MaxElapsedTime = 0
	return b
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ballot.ErrReceiptPending):
		return "pending"
	case errors.Is(err, ballot.ErrCallReverted), errors.Is(err, ballot.ErrTransactionReverted):
		return "reverted"
	default:
		return "error"
	}
}

func isPresent(id *big.Int) bool {
	return id != nil && id.Sign() > 0
}
