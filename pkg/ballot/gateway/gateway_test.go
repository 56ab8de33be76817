package gateway

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chainsafe/cryptoballot/pkg/ballot"
	"github.com/chainsafe/cryptoballot/pkg/config"
	"github.com/chainsafe/cryptoballot/pkg/ethereum"
	"github.com/chainsafe/cryptoballot/pkg/ethereum/contracts"
)

type revertError struct{}

func (revertError) Error() string  { return "execution reverted: ballot does not exist" }
func (revertError) ErrorCode() int { return 3 }

type codedError struct{ code int }

func (e codedError) Error() string  { return fmt.Sprintf("rpc error %d", e.code) }
func (e codedError) ErrorCode() int { return e.code }

var errTransport = errors.New("dial tcp 127.0.0.1:8545: connect: connection refused")

type fakeContract struct {
	ab      map[uint64]contracts.CryptoBallotABBallot
	me      map[uint64]contracts.CryptoBallotMEBallot
	abErr   error
	abCalls int
	meCalls int

	sent    []string
	sendErr error
}

func (f *fakeContract) GetABBallot(_ *bind.CallOpts, id *big.Int) (contracts.CryptoBallotABBallot, error) {
	f.abCalls++
	if f.abErr != nil {
		return contracts.CryptoBallotABBallot{}, f.abErr
	}
	b, ok := f.ab[id.Uint64()]
	if !ok {
		return contracts.CryptoBallotABBallot{}, revertError{}
	}
	return b, nil
}

func (f *fakeContract) GetMEBallot(_ *bind.CallOpts, id *big.Int) (contracts.CryptoBallotMEBallot, error) {
	f.meCalls++
	b, ok := f.me[id.Uint64()]
	if !ok {
		return contracts.CryptoBallotMEBallot{}, revertError{}
	}
	return b, nil
}

func (f *fakeContract) GetUserInfo(_ *bind.CallOpts, _ common.Address) (contracts.CryptoBallotUserInfo, error) {
	return contracts.CryptoBallotUserInfo{
		IsUser:            true,
		TotalVotes:        big.NewInt(4),
		LastVotedBallotId: big.NewInt(2),
		LastVotedTime:     big.NewInt(1_700_000_000),
		BallotsCreated:    []*big.Int{big.NewInt(1), big.NewInt(3)},
	}, nil
}

func (f *fakeContract) tx(name string) (*types.Transaction, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, name)
	return types.NewTx(&types.LegacyTx{Nonce: uint64(len(f.sent))}), nil
}

func (f *fakeContract) CreateABBallot(*bind.TransactOpts, string, string, string, *big.Int) (*types.Transaction, error) {
	return f.tx("createABBallot")
}

func (f *fakeContract) CreateMEBallot(*bind.TransactOpts, string, []string, *big.Int) (*types.Transaction, error) {
	return f.tx("createMEBallot")
}

func (f *fakeContract) StartUser(*bind.TransactOpts) (*types.Transaction, error) {
	return f.tx("startUser")
}

func (f *fakeContract) VoteAB(*bind.TransactOpts, *big.Int, uint8) (*types.Transaction, error) {
	return f.tx("voteAB")
}

func (f *fakeContract) VoteME(*bind.TransactOpts, *big.Int, *big.Int) (*types.Transaction, error) {
	return f.tx("voteME")
}

var signerAddress = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

type fakeSigner struct {
	readOnly bool
	status   uint64
	waitErr  error
}

func (s *fakeSigner) Transactor(context.Context) (*bind.TransactOpts, error) {
	if s.readOnly {
		return nil, ethereum.ErrReadOnly
	}
	return &bind.TransactOpts{}, nil
}

func (s *fakeSigner) SignerAddress() common.Address {
	return signerAddress
}

func (s *fakeSigner) WaitMined(_ context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if s.waitErr != nil {
		return nil, s.waitErr
	}
	return &types.Receipt{Status: s.status, TxHash: tx.Hash(), BlockNumber: big.NewInt(42)}, nil
}

func newTestGateway(c *fakeContract, s *fakeSigner) *Gateway {
	return New(c, s, &config.EthereumConfig{
		CallTimeout:   time.Second,
		MaxRetries:    2,
		RetryInterval: time.Millisecond,
	}, nil)
}

func TestResolveBallot_Shapes(t *testing.T) {
	c := &fakeContract{
		ab: map[uint64]contracts.CryptoBallotABBallot{
			1: {Id: big.NewInt(1), Name: "Lunch?", OptionA: "yes", OptionB: "no",
				VotesA: big.NewInt(3), VotesB: big.NewInt(1), EndTime: big.NewInt(100)},
		},
		me: map[uint64]contracts.CryptoBallotMEBallot{
			2: {Id: big.NewInt(2), BallotType: meBallotType, Name: "Color", Options: []string{"r", "g", "b"},
				Votes: []*big.Int{big.NewInt(0), big.NewInt(5), big.NewInt(1)}, EndTime: big.NewInt(200)},
		},
	}
	g := newTestGateway(c, &fakeSigner{})
	ctx := context.Background()

	d, err := g.ResolveBallot(ctx, 1)
	if err != nil {
		t.Fatalf("resolve 1: %v", err)
	}
	if d.Kind != ballot.KindBinary || d.Ballot.Title != "Lunch?" || d.Ballot.VoteCounts[0] != 3 {
		t.Fatalf("unexpected binary descriptor: %+v", d.Ballot)
	}

	d, err = g.ResolveBallot(ctx, 2)
	if err != nil {
		t.Fatalf("resolve 2: %v", err)
	}
	if d.Kind != ballot.KindMultiChoice || len(d.Ballot.Options) != 3 || d.Ballot.VoteCounts[1] != 5 {
		t.Fatalf("unexpected multi choice descriptor: %+v", d.Ballot)
	}

	d, err = g.ResolveBallot(ctx, 3)
	if err != nil {
		t.Fatalf("resolve 3: %v", err)
	}
	if d.Found() {
		t.Fatalf("expected not found, got %+v", d)
	}
}

func TestResolveBallot_TypeTagMismatch(t *testing.T) {
	// getABBallot answers for a multi choice id instead of reverting
	c := &fakeContract{
		ab: map[uint64]contracts.CryptoBallotABBallot{
			4: {Id: big.NewInt(4), BallotType: meBallotType, Name: "Color", EndTime: big.NewInt(200)},
		},
		me: map[uint64]contracts.CryptoBallotMEBallot{
			4: {Id: big.NewInt(4), BallotType: meBallotType, Name: "Color", Options: []string{"r", "g", "b"},
				Votes: []*big.Int{big.NewInt(1), big.NewInt(0), big.NewInt(0)}, EndTime: big.NewInt(200)},
			5: {Id: big.NewInt(5), BallotType: abBallotType, Name: "Wrong shape"},
		},
	}
	g := newTestGateway(c, &fakeSigner{})
	ctx := context.Background()

	d, err := g.ResolveBallot(ctx, 4)
	if err != nil {
		t.Fatalf("resolve 4: %v", err)
	}
	if d.Kind != ballot.KindMultiChoice || len(d.Ballot.Options) != 3 {
		t.Fatalf("expected multi choice ballot, got %+v", d)
	}

	d, err = g.ResolveBallot(ctx, 5)
	if err != nil {
		t.Fatalf("resolve 5: %v", err)
	}
	if d.Found() {
		t.Fatalf("record with a foreign type tag must not resolve, got %+v", d)
	}
}

func TestResolveBallot_RevertIsNotRetried(t *testing.T) {
	c := &fakeContract{}
	g := newTestGateway(c, &fakeSigner{})

	if _, err := g.ResolveBallot(context.Background(), 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.abCalls != 1 || c.meCalls != 1 {
		t.Fatalf("expected one call per shape, got ab=%d me=%d", c.abCalls, c.meCalls)
	}
}

func TestResolveBallot_TransportFailureIsRetriedThenSurfaced(t *testing.T) {
	c := &fakeContract{abErr: errTransport}
	g := newTestGateway(c, &fakeSigner{})

	_, err := g.ResolveBallot(context.Background(), 1)
	if !errors.Is(err, errTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if errors.Is(err, ballot.ErrCallReverted) {
		t.Fatal("transport failure must not be classified as revert")
	}
	if c.abCalls != 3 {
		t.Fatalf("expected 1 attempt + 2 retries, got %d", c.abCalls)
	}
	if c.meCalls != 0 {
		t.Fatalf("multi choice read must not run after a transport failure, got %d", c.meCalls)
	}
}

func TestWrite_Receipts(t *testing.T) {
	ctx := context.Background()

	t.Run("binary create", func(t *testing.T) {
		c := &fakeContract{}
		g := newTestGateway(c, &fakeSigner{status: types.ReceiptStatusSuccessful})
		r, err := g.CreateBallot(ctx, &ballot.CreateRequest{
			Kind: ballot.KindBinary, Title: "t", Options: []string{"a", "b"}, DurationMinutes: 60,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.BlockNumber != 42 || r.Status != 1 || r.TxHash == "" || r.From != signerAddress.Hex() {
			t.Fatalf("unexpected receipt: %+v", r)
		}
		if len(c.sent) != 1 || c.sent[0] != "createABBallot" {
			t.Fatalf("unexpected transactions: %v", c.sent)
		}
	})

	t.Run("vote dispatch by kind", func(t *testing.T) {
		c := &fakeContract{}
		g := newTestGateway(c, &fakeSigner{status: types.ReceiptStatusSuccessful})
		if _, err := g.Vote(ctx, ballot.KindMultiChoice, 2, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := g.Vote(ctx, ballot.KindBinary, 1, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fmt.Sprint(c.sent) != "[voteME voteAB]" {
			t.Fatalf("unexpected transactions: %v", c.sent)
		}
	})

	t.Run("failed status", func(t *testing.T) {
		g := newTestGateway(&fakeContract{}, &fakeSigner{status: types.ReceiptStatusFailed})
		r, err := g.StartUser(ctx)
		if !errors.Is(err, ballot.ErrTransactionReverted) {
			t.Fatalf("expected ErrTransactionReverted, got %v", err)
		}
		if r == nil || r.Status != types.ReceiptStatusFailed {
			t.Fatalf("expected failed receipt to be returned, got %+v", r)
		}
	})

	t.Run("receipt wait fails after submission", func(t *testing.T) {
		c := &fakeContract{}
		waitErr := fmt.Errorf("failed waiting for transaction: %w", context.DeadlineExceeded)
		g := newTestGateway(c, &fakeSigner{waitErr: waitErr})

		r, err := g.CreateBallot(ctx, &ballot.CreateRequest{
			Kind: ballot.KindBinary, Title: "T", Options: []string{"A", "B"}, DurationMinutes: 60,
		})
		if !errors.Is(err, ballot.ErrReceiptPending) {
			t.Fatalf("expected ErrReceiptPending, got %v", err)
		}
		if r == nil || !r.Pending || r.TxHash == "" || r.From != signerAddress.Hex() {
			t.Fatalf("expected pending receipt with hash, got %+v", r)
		}
		if len(c.sent) != 1 {
			t.Fatalf("expected exactly one submission, got %v", c.sent)
		}
	})

	t.Run("revert at submission", func(t *testing.T) {
		g := newTestGateway(&fakeContract{sendErr: revertError{}}, &fakeSigner{})
		if _, err := g.StartUser(ctx); !errors.Is(err, ballot.ErrTransactionReverted) {
			t.Fatalf("expected ErrTransactionReverted, got %v", err)
		}
	})

	t.Run("read only", func(t *testing.T) {
		c := &fakeContract{}
		g := newTestGateway(c, &fakeSigner{readOnly: true})
		if _, err := g.StartUser(ctx); !errors.Is(err, ballot.ErrWritesDisabled) {
			t.Fatalf("expected ErrWritesDisabled, got %v", err)
		}
		if len(c.sent) != 0 {
			t.Fatalf("no transaction should be sent, got %v", c.sent)
		}
	})
}

func TestVoterInfo(t *testing.T) {
	g := newTestGateway(&fakeContract{}, &fakeSigner{})
	addr := common.HexToAddress("0x70D4772D570f56AA0DdE57dCA4CbBa72928c7107")

	info, err := g.VoterInfo(context.Background(), addr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !info.IsUser || info.TotalVotes != 4 || len(info.BallotsCreated) != 2 || info.Address != addr.Hex() {
		t.Fatalf("unexpected voter info: %+v", info)
	}
}

func TestIsRevert(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"code 3", codedError{code: 3}, true},
		{"other code", codedError{code: -32000}, false},
		{"message only", errors.New("execution reverted"), true},
		{"wrapped", fmt.Errorf("call: %w", revertError{}), true},
		{"transport", errTransport, false},
		{"deadline", context.DeadlineExceeded, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRevert(tt.err); got != tt.want {
				t.Fatalf("IsRevert(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
