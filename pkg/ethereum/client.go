package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/chainsafe/cryptoballot/pkg/config"
	"github.com/chainsafe/cryptoballot/pkg/ethereum/contracts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// ErrReadOnly is returned by Transactor when no signing key is configured
var ErrReadOnly = errors.New("ethereum client is read-only: no private key configured")

// Client represents an Ethereum client bound to the ballot contract
type Client struct {
	config          *config.EthereumConfig
	client          *ethclient.Client
	privateKey      *ecdsa.PrivateKey
	address         common.Address
	contractAddress common.Address
	ballot          *contracts.CryptoBallot
	logger          *zap.Logger
}

// NewClient dials the RPC endpoint and binds the ballot contract.
// The private key is optional; without it only reads are possible.
func NewClient(ctx context.Context, cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	c := &Client{
		config:          cfg,
		client:          client,
		contractAddress: common.HexToAddress(cfg.ContractAddress),
		logger:          logger,
	}

	if cfg.PrivateKey != "" {
		privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to load private key: %w", err)
		}
		c.privateKey = privateKey
		c.address = crypto.PubkeyToAddress(privateKey.PublicKey)
	}

	c.ballot, err = contracts.NewCryptoBallot(c.contractAddress, client)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to load ballot contract: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		logger.Warn("Failed to read chain id from RPC", zap.Error(err))
	} else if chainID.Int64() != cfg.ChainID {
		logger.Warn("RPC chain id differs from configuration",
			zap.Int64("configured", cfg.ChainID),
			zap.String("remote", chainID.String()))
	}

	fields := []zap.Field{
		zap.Int64("chain_id", cfg.ChainID),
		zap.String("rpc_url", cfg.RPCURL),
		zap.String("ballot_contract", c.contractAddress.Hex()),
	}
	if c.privateKey != nil {
		fields = append(fields, zap.String("signer_address", c.address.Hex()))
	} else {
		fields = append(fields, zap.Bool("read_only", true))
	}
	logger.Info("Connected to Ethereum", fields...)

	return c, nil
}

// Close closes the RPC connection
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// Contract returns the ballot contract binding
func (c *Client) Contract() *contracts.CryptoBallot {
	return c.ballot
}

// SignerAddress returns the address transactions are sent from
func (c *Client) SignerAddress() common.Address {
	return c.address
}

// Transactor returns transaction options signed by the configured key
func (c *Client) Transactor(ctx context.Context) (*bind.TransactOpts, error) {
	if c.privateKey == nil {
		return nil, ErrReadOnly
	}

	auth, err := bind.NewKeyedTransactorWithChainID(c.privateKey, big.NewInt(c.config.ChainID))
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	auth.Context = ctx

	nonce, err := c.client.PendingNonceAt(ctx, c.address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	auth.Nonce = new(big.Int).SetUint64(nonce)
	auth.GasLimit = c.config.GasLimit

	// Set gas price if configured
	if c.config.MaxGasPrice != "" {
		maxGasPrice, ok := new(big.Int).SetString(c.config.MaxGasPrice, 10)
		if !ok {
			return nil, fmt.Errorf("invalid max gas price %q", c.config.MaxGasPrice)
		}

		gasPrice, err := c.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", err)
		}

		if gasPrice.Cmp(maxGasPrice) > 0 {
			c.logger.Warn("Suggested gas price exceeds maximum",
				zap.String("suggested", gasPrice.String()),
				zap.String("max", maxGasPrice.String()))
			auth.GasPrice = maxGasPrice
		} else {
			auth.GasPrice = gasPrice
		}
	}

	return auth, nil
}

// WaitMined blocks until tx is included in a block or the mine timeout elapses
func (c *Client) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.MineTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(ctx, c.client, tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for transaction %s: %w", tx.Hash().Hex(), err)
	}
	return receipt, nil
}

// LatestBlockNumber gets the latest block number
func (c *Client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	n, err := c.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return n, nil
}
