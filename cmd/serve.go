package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"gitlab.com/pcv-2026.net/internal/adapter/crypto"
	"gitlab.com/pcv-2026.net/internal/adapter/postgres/problemrepository"
	"gitlab.com/pcv-2026.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/pcv-2026.net/internal/adapter/postgres/userrepository"
	"gitlab.com/pcv-2026.net/internal/adapter/redis/draftport"
	"gitlab.com/pcv-2026.net/internal/config"
	auth2 "gitlab.com/pcv-2026.net/internal/core/services/auth"
	"gitlab.com/pcv-2026.net/internal/core/services/draft"
	"gitlab.com/pcv-2026.net/internal/core/services/problem"
	"gitlab.com/pcv-2026.net/internal/core/services/submission"
	"gitlab.com/pcv-2026.net/internal/core/services/validation"
	"gitlab.com/pcv-2026.net/internal/executor/starlarkexec"
	logger2 "gitlab.com/pcv-2026.net/internal/global/logger"
	http2 "gitlab.com/pcv-2026.net/internal/http"
	"gitlab.com/pcv-2026.net/internal/janitor"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the validation API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8082, "HTTP listen port")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := logger2.Logger
	logger.Info("Starting code validation service")

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	problemRepo := problemrepository.NewProblemRepository(db, logger)
	submissionRepo := submissionrepository.NewSubmissionRepository(db, logger, "public")
	userPort := userrepository.New(db, logger, "public")
	draftStore := draftport.NewDraftStore(redisClient, logger)
	backend := starlarkexec.NewBackend(sysCfg.ExecutionCfg, logger)

	// PRIMARY PORTS
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	// SERVICES
	validator := validation.NewValidationService(backend, sysCfg.ExecutionCfg, logger)
	problemSvc := problem.NewProblemService(problemRepo, logger)
	submissionSvc := submission.NewSubmissionService(problemRepo, submissionRepo, validator, sysCfg.ExecutionCfg, logger)
	draftSvc := draft.NewDraftService(draftStore, sysCfg.DraftCfg, logger)
	ggAuth := auth2.NewGoogleAuthService(userPort, jwtProvider, sysCfg.GGAuthConfig)
	localAuth := auth2.NewLocalAuthService(userPort, jwtProvider)

	serviceProvider := http2.NewServiceProvider(problemSvc, submissionSvc, draftSvc, jwtProvider, ggAuth, localAuth)
	httpServer := http2.NewServer(servePort, "codeValidator", *serviceProvider, logger)
	if err := httpServer.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	httpServer.Start(gctx)
	g.Go(func() error {
		return janitor.NewDraftJanitor(sysCfg.DraftCfg, draftStore, logger).Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Shutdown finished with error", "error", err)
		return err
	}

	logger.Info("successfully shutdown server")
	return nil
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.AppConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.PostgresConfig.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
