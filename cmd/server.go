package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"beevs/internal/config"
	"beevs/internal/core"
	"beevs/internal/db"
	"beevs/internal/ethereum"
	"beevs/internal/http/handler"
	"beevs/internal/http/handler/middleware"
	"beevs/internal/http/payload"
	"beevs/internal/http/server"
	"beevs/internal/repository"
	"beevs/pkg/jwt"
	"beevs/pkg/log"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("beevs-relay", zapcore.InfoLevel)

	config, err := config.NewAppConfig()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	if !common.IsHexAddress(config.ContractAddress) {
		err = fmt.Errorf("contract address %q is not a hex address", config.ContractAddress)
		logger.Errorw("invalid configuration", "error", err)
		return err
	}
	contractAddress := common.HexToAddress(config.ContractAddress)

	dbConn, err := db.NewGormDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewRelayRepository(dbConn)
	if err = repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chain, client, err := ethereum.Dial(ctx, logger, config.NodeURL, config.ChainID)
	if err != nil {
		logger.Errorw("ethereum node connection failed", "error", err)
		return err
	}
	defer client.Close()

	credential, err := ethereum.NewCredential(config.PrivateKey)
	switch {
	case errors.Is(err, ethereum.ErrNoCredential):
		logger.Warnw("no relayer key configured, write operations are disabled")
	case err != nil:
		logger.Errorw("failed to load relayer key", "error", err)
		return err
	default:
		logger.Infow("relayer key loaded", "address", credential.Address().Hex())
	}

	contractABI, err := ethereum.LoadABI(config.ContractABI)
	if err != nil {
		logger.Errorw("failed to load contract abi", "error", err)
		return err
	}

	relayService := ethereum.NewRelayService(
		logger,
		client,
		chain,
		contractAddress,
		contractABI,
		credential,
		config.PollInterval)

	// coordinator
	coordinator := core.NewRelayCoordinator(
		logger,
		repo,
		relayService,
		relayService.Decoder(),
		core.NewMetrics(prometheus.DefaultRegisterer),
		config.ReceiptTimeout)

	if config.ReconcileInterval > 0 {
		go coordinator.RunReconciler(ctx, config.ReconcileInterval)
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))
	auth := core.NewOperatorAuth(logger, config.Operators, jwtService)

	// handler
	relayHlr := handler.NewRelayHandler(
		logger,
		payload.DecodeValidator{},
		coordinator,
		auth)

	authz := middleware.NewAuthMiddleware(logger, jwtService)
	protected := func(h http.HandlerFunc) http.Handler {
		return authz.Authorize(h)
	}

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.Health, relayHlr.HandleHealth)
	mux.HandleFunc(handler.Authenticate, relayHlr.HandleAuthenticate)
	mux.Handle(handler.RelayElection, protected(relayHlr.HandleCreateElection))
	mux.Handle(handler.RelayCandidate, protected(relayHlr.HandleAddCandidate))
	mux.Handle(handler.RelayVoter, protected(relayHlr.HandleRegisterVoter))
	mux.Handle(handler.RelayVote, protected(relayHlr.HandleCastVote))
	mux.Handle(handler.ReconcileTx, protected(relayHlr.HandleReconcile))
	mux.Handle(handler.ReconcilePending, protected(relayHlr.HandleReconcilePending))
	mux.Handle(handler.GetTally, protected(relayHlr.HandleGetTally))
	mux.Handle("GET /metrics", promhttp.Handler())

	// middleware
	hdlr := middleware.NewMetricsMiddleware(prometheus.DefaultRegisterer).Instrument(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if sdErr != nil && (err == nil || errors.Is(err, http.ErrServerClosed)) {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
