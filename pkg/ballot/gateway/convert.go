package gateway

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/chainsafe/cryptoballot/pkg/ballot"
	"github.com/chainsafe/cryptoballot/pkg/ethereum/contracts"
)

// revertErrorCode is the JSON-RPC error code geth and most providers use for
// execution reverted.
const revertErrorCode = 3

// IsRevert reports whether err is a contract revert as opposed to a transport failure
func IsRevert(err error) bool {
	if err == nil {
		return false
	}
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == revertErrorCode {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "execution reverted")
}

func fromABBallot(b contracts.CryptoBallotABBallot) *ballot.Ballot {
	return &ballot.Ballot{
		ID:         toUint64(b.Id),
		Kind:       ballot.KindBinary,
		Title:      b.Name,
		Creator:    b.Creator.Hex(),
		EndTime:    toInt64(b.EndTime),
		Options:    []string{b.OptionA, b.OptionB},
		VoteCounts: []uint64{toUint64(b.VotesA), toUint64(b.VotesB)},
	}
}

func fromMEBallot(b contracts.CryptoBallotMEBallot) *ballot.Ballot {
	counts := make([]uint64, len(b.Options))
	for i := range counts {
		if i < len(b.Votes) {
			counts[i] = toUint64(b.Votes[i])
		}
	}
	return &ballot.Ballot{
		ID:         toUint64(b.Id),
		Kind:       ballot.KindMultiChoice,
		Title:      b.Name,
		Creator:    b.Creator.Hex(),
		EndTime:    toInt64(b.EndTime),
		Options:    b.Options,
		VoteCounts: counts,
	}
}

func fromUserInfo(address common.Address, u contracts.CryptoBallotUserInfo) *ballot.VoterInfo {
	created := make([]uint64, len(u.BallotsCreated))
	for i, id := range u.BallotsCreated {
		created[i] = toUint64(id)
	}
	return &ballot.VoterInfo{
		Address:           address.Hex(),
		IsUser:            u.IsUser,
		IsAdmin:           u.IsAdmin,
		TotalVotes:        toUint64(u.TotalVotes),
		LastVotedBallotID: toUint64(u.LastVotedBallotId),
		LastVotedTime:     toInt64(u.LastVotedTime),
		BallotsCreated:    created,
	}
}

// toUint64 saturates values that do not fit
func toUint64(v *big.Int) uint64 {
	if v == nil || v.Sign() <= 0 {
		return 0
	}
	if !v.IsUint64() {
		return ^uint64(0)
	}
	return v.Uint64()
}

func toInt64(v *big.Int) int64 {
	if v == nil {
		return 0
	}
	if !v.IsInt64() {
		if v.Sign() < 0 {
			return -1 << 63
		}
		return 1<<63 - 1
	}
	return v.Int64()
}
