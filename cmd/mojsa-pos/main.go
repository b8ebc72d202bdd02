package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/auth"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/branch"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/config"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/db"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/menu"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/order"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/transport"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/user"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "mojsa-pos").Logger()

	log.Info().Msg("POS service starting...")

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	ctx := context.Background()

	dbConn, err := db.New(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbConn.Close()

	if err := dbConn.ApplyMigrations(cfg.Postgres); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	branches := branch.NewStore()
	seededBranches := branches.SeedDemo()
	branchIDs := make([]uuid.UUID, 0, len(seededBranches))
	for _, b := range seededBranches {
		branchIDs = append(branchIDs, b.ID)
	}

	menuSvc := menu.NewService()
	if err := menuSvc.SeedDemo(branchIDs); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed menu catalog")
	}

	orderStore := order.NewStore()
	if err := order.SeedDemo(orderStore, time.Now()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed order queue")
	}
	journal := order.NewPostgresJournal(dbConn.Pool)
	orderSvc := order.NewService(orderStore, journal, cfg.TaxRate)

	userRepo := user.NewRepository(dbConn.Pool)
	userSvc := user.NewService(userRepo)
	if err := bootstrapAdmin(ctx, userRepo, userSvc, branchIDs); err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap admin user")
	}

	authSvc := auth.NewService(userSvc, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	router := transport.NewRouter(transport.Deps{
		Orders:     orderSvc,
		OrderStore: orderStore,
		Menu:       menuSvc,
		Users:      userSvc,
		Auth:       authSvc,
		Branches:   branches,
	})

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	<-stopCh

	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Shutdown failed")
	}

	log.Info().Msg("POS service stopped gracefully")
}

// bootstrapAdmin creates the initial admin account on an empty directory so
// the dashboard is reachable after a fresh install.
func bootstrapAdmin(ctx context.Context, repo user.Repository, svc user.Service, branchIDs []uuid.UUID) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Warn().Msg("ADMIN_PASSWORD not set, using the default development password")
	}

	admin := &user.User{
		Name:  "María González",
		Email: "maria.gonzalez@mojsa.com",
		Role:  user.RoleAdmin,
	}
	if len(branchIDs) > 0 {
		admin.BranchID = branchIDs[0]
	}
	if _, err := svc.CreateUser(ctx, admin, password); err != nil {
		return err
	}
	log.Info().Str("email", admin.Email).Msg("Bootstrapped admin user")
	return nil
}
