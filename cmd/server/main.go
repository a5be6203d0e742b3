package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/tridenda/talentlytica/internal/config"
	"github.com/tridenda/talentlytica/internal/database"
	"github.com/tridenda/talentlytica/internal/handler"
	"github.com/tridenda/talentlytica/internal/logger"
	"github.com/tridenda/talentlytica/internal/repository"
	"github.com/tridenda/talentlytica/internal/roster"
	"github.com/tridenda/talentlytica/internal/router"
	"github.com/tridenda/talentlytica/internal/service"
	"github.com/tridenda/talentlytica/internal/validator"
	"github.com/tridenda/talentlytica/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Talentlytica grading form")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Build Roster ──────────────────────────────────────────────────
	ro, err := loadRoster(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build roster")
	}
	log.Info().
		Int("students", len(ro.Students())).
		Int("aspects", len(ro.Aspects())).
		Msg("Roster ready")

	// ─── Background Workers ────────────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	workersDone := make(chan struct{})

	// ─── Initialize Repository ─────────────────────────────────────────
	// Redis when configured; otherwise sessions live in process memory and
	// the sweeper evicts idle ones.
	var formRepo repository.FormRepository
	if cfg.RedisURL != "" {
		rdb, err := database.NewRedisClient(ctx, cfg.RedisURL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		formRepo = repository.NewRedisFormRepository(rdb, cfg.FormTTL, log)
		close(workersDone)
	} else {
		memRepo := repository.NewMemoryFormRepository()
		formRepo = memRepo
		sweeper := worker.NewSessionSweeper(memRepo, cfg.FormTTL, cfg.SweepInterval, log)
		go func() {
			defer close(workersDone)
			sweeper.Start(workerCtx)
		}()
		log.Info().Dur("ttl", cfg.FormTTL).Msg("Using in-memory form sessions")
	}

	// ─── Initialize Services & Handlers ────────────────────────────────
	formService := service.NewFormService(formRepo, ro, log)

	handlers := &router.Handlers{
		Roster: handler.NewRosterHandler(ro),
		Form:   handler.NewFormHandler(formService, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()
	<-workersDone

	log.Info().Msg("Shutdown complete")
}

// loadRoster reads ROSTER_FILE when set, else generates the default roster.
func loadRoster(cfg *config.Config, log zerolog.Logger) (*roster.Roster, error) {
	if cfg.RosterFile == "" {
		return roster.Default(cfg.StudentCount, cfg.AspectCount, cfg.StudentNamePrefix, cfg.AspectNamePrefix)
	}

	f, err := os.Open(cfg.RosterFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log.Info().Str("file", cfg.RosterFile).Msg("Loading roster workbook")
	return roster.LoadExcel(f, log)
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
