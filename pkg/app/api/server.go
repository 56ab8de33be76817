// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	accountservice "github.com/chainsafe/cryptoballot/pkg/account/service"
	"github.com/chainsafe/cryptoballot/pkg/accountstore"
	apphttp "github.com/chainsafe/cryptoballot/pkg/app/http"
	"github.com/chainsafe/cryptoballot/pkg/auth"
	"github.com/chainsafe/cryptoballot/pkg/ballot/gateway"
	ballotservice "github.com/chainsafe/cryptoballot/pkg/ballot/service"
	"github.com/chainsafe/cryptoballot/pkg/config"
	"github.com/chainsafe/cryptoballot/pkg/ethereum"
	friendservice "github.com/chainsafe/cryptoballot/pkg/friend/service"
	"github.com/chainsafe/cryptoballot/pkg/friendstore"
	"github.com/chainsafe/cryptoballot/pkg/pgutil"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting CryptoBallot API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	ethClient, err := ethereum.NewClient(ctx, &cfg.Ethereum, logger)
	if err != nil {
		return fmt.Errorf("create ethereum client: %w", err)
	}
	defer ethClient.Close()

	tokens := auth.NewTokenIssuer(cfg.Auth)

	ballots := ballotservice.NewService(
		gateway.NewFromClient(ethClient, &cfg.Ethereum, logger),
		ballotservice.WithMaxProbe(cfg.Ethereum.MaxProbe),
	)
	accounts := accountservice.NewService(
		accountstore.NewStore(db),
		tokens,
		accountservice.WithBcryptCost(cfg.Auth.BcryptCost),
	)
	friends := friendservice.NewService(friendstore.NewStore(db))

	router := newRouter(cfg, &routerDeps{
		ballots:  ballotservice.NewLog(ballots, logger),
		accounts: accountservice.NewLog(accounts, logger),
		friends:  friendservice.NewLog(friends, logger),
		tokens:   tokens,
		checks: map[string]healthCheck{
			"database": db.PingContext,
			"ethereum": func(ctx context.Context) error {
				_, err := ethClient.LatestBlockNumber(ctx)
				return err
			},
		},
	}, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}
