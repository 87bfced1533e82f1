package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v4/pgxpool"

	httpadapter "github.com/xkiven/ResumeBuilder/internal/adapter/http"
	"github.com/xkiven/ResumeBuilder/internal/adapter/remote"
	repo "github.com/xkiven/ResumeBuilder/internal/adapter/repository"
	"github.com/xkiven/ResumeBuilder/internal/config"
	"github.com/xkiven/ResumeBuilder/internal/editor"
	"github.com/xkiven/ResumeBuilder/internal/infrastructure/migration"
	"github.com/xkiven/ResumeBuilder/internal/render"
	"github.com/xkiven/ResumeBuilder/internal/usecase"
	"github.com/xkiven/ResumeBuilder/pkg/ai"
	"github.com/xkiven/ResumeBuilder/pkg/gitrepo"
	infra "github.com/xkiven/ResumeBuilder/pkg/infrastructure"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.Logger(os.Stdout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resumes, pool, err := newResumeRepository(ctx, cfg.Storage)
	if err != nil {
		slog.Error("storage setup failed", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	if pool != nil {
		defer pool.Close()
	}
	jobsRepo := repo.NewJobsRepo(pool)

	aiClient := ai.NewClient(cfg.AI.ServiceURL, cfg.AI.Language)
	svc := usecase.NewResumeService(resumes, aiClient, gitrepo.NewClient(cfg.AI.GitHubToken))

	var (
		store usecase.ResumeStore = svc
		gen   usecase.Generator   = svc
		rh                        = httpadapter.NewResumeHandler(svc, jobsRepo)
	)
	if cfg.Server.RemoteURL != "" {
		rc := remote.NewClient(cfg.Server.RemoteURL)
		store, gen, rh = rc, rc, nil
		slog.Info("sessions use remote resume service", "url", cfg.Server.RemoteURL)
	}

	variant, err := render.ParseVariant(cfg.Editor.DefaultVariant)
	if err != nil {
		slog.Error("invalid default variant", "error", err)
		os.Exit(1)
	}
	pages := render.NewRenderer(render.WithLabels(render.LabelsFor(cfg.AI.Language)))
	processor := usecase.NewProcessor(store, gen, infra.NewChromedpRenderer(cfg.Editor.ChromePath), jobsRepo, pages, cfg.Editor.OutputDir)

	app := fiber.New(fiber.Config{AppName: "resume-builder", BodyLimit: 8 << 20})
	sessions := editor.NewRegistry(cfg.Editor.SessionTTL)
	sessions.SetRemoveDelay(cfg.Editor.RemoveDelay)
	httpadapter.Register(app, rh, httpadapter.NewSessionHandler(sessions, processor, variant))

	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Warn("shutdown", "error", err)
	}
}

// newResumeRepository builds the configured store, with the redis cache in
// front when an address is set. The pool is nil for the file backend.
func newResumeRepository(ctx context.Context, cfg config.Storage) (usecase.ResumeRepository, *pgxpool.Pool, error) {
	var (
		base usecase.ResumeRepository
		pool *pgxpool.Pool
	)
	switch cfg.Backend {
	case config.BackendPostgres:
		p, err := infra.NewPool(ctx, cfg.PostgresDsn)
		if err != nil {
			return nil, nil, err
		}
		if err := migration.RunMigrations(ctx, p); err != nil {
			p.Close()
			return nil, nil, err
		}
		pool = p
		base = repo.NewPGResumeRepo(p)
	default:
		fr, err := repo.NewFileResumeRepo(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		base = fr
	}
	if cfg.RedisAddr != "" {
		base = repo.NewCachedResumeRepo(base, infra.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB), cfg.CacheTTL)
	}
	return base, pool, nil
}
