// Package app wires configuration, storage, services, and the HTTP server
// into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/reinafiec-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/reinafiec-backend/internal/adapter/postgres/audit"
	candidaterepo "github.com/heartmarshall/reinafiec-backend/internal/adapter/postgres/candidate"
	voterepo "github.com/heartmarshall/reinafiec-backend/internal/adapter/postgres/vote"
	voterrepo "github.com/heartmarshall/reinafiec-backend/internal/adapter/postgres/voter"
	jwtauth "github.com/heartmarshall/reinafiec-backend/internal/auth"
	"github.com/heartmarshall/reinafiec-backend/internal/config"
	authsvc "github.com/heartmarshall/reinafiec-backend/internal/service/auth"
	candidatesvc "github.com/heartmarshall/reinafiec-backend/internal/service/candidate"
	"github.com/heartmarshall/reinafiec-backend/internal/service/tally"
	"github.com/heartmarshall/reinafiec-backend/internal/service/voting"
	"github.com/heartmarshall/reinafiec-backend/internal/transport/middleware"
	"github.com/heartmarshall/reinafiec-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the service graph, and serves HTTP until the context
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	voters := voterrepo.New(pool)
	candidates := candidaterepo.New(pool)
	votes := voterepo.New(pool)
	audit := auditrepo.New(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, voters, jwtManager, cfg.Auth)
	votingService := voting.NewService(logger, voters, candidates, votes, audit, txm)
	tallyService := tally.NewService(logger, votes, candidates)
	candidateService := candidatesvc.NewService(logger, candidates, audit, txm)

	router := rest.NewRouter(
		rest.Handlers{
			Auth:       rest.NewAuthHandler(authService, logger),
			Voting:     rest.NewVotingHandler(votingService, logger),
			Results:    rest.NewResultsHandler(tallyService, logger),
			Candidates: rest.NewCandidateHandler(candidateService, logger),
			Health:     rest.NewHealthHandler(pool, BuildVersion()),
		},
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
