package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VETechnologiesCo/VPCO/internal/config"
	"github.com/VETechnologiesCo/VPCO/internal/content"
	"github.com/VETechnologiesCo/VPCO/internal/handler"
	"github.com/VETechnologiesCo/VPCO/internal/logging"
	"github.com/VETechnologiesCo/VPCO/internal/repository"
	"github.com/VETechnologiesCo/VPCO/internal/service"
	"github.com/VETechnologiesCo/VPCO/internal/site"
	"github.com/VETechnologiesCo/VPCO/pkg/slack"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if cfg.Wix.Configured() {
		slog.Info("wix api credentials loaded")
	} else {
		slog.Warn("wix api credentials not found; set WIX_API_KEY and WIX_API_TOKEN")
	}
	if cfg.Slack.Enabled() {
		slog.Info("slack webhook configured")
	} else {
		slog.Warn("slack webhook not configured; contact submissions will only be stored")
	}

	siteContent, err := loadContent(cfg.ContentFile)
	if err != nil {
		logging.Fatal("failed to load site content", "error", err)
	}

	// Submissions live in memory unless a database is configured.
	var (
		contactRepo repository.ContactRepository
		db          repository.DB
	)
	if cfg.DatabaseURL != "" {
		pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		defer pool.Close()
		pgRepo := repository.NewPgContactRepository(pool)
		contactRepo, db = pgRepo, pgRepo
		slog.Info("contact store: postgres")
	} else {
		contactRepo = repository.NewMemoryContactRepository()
		slog.Info("contact store: memory")
	}

	notifier := service.NewSlackNotifier(slack.NewWebhookClient(cfg.Slack.WebhookURL, cfg.Slack.Timeout), time.Local)
	contactService := service.NewContactService(contactRepo, notifier)
	catalogService := service.NewCatalogService(
		repository.NewStaticServiceRepository(siteContent.Services),
		siteContent.About,
	)
	wixService := service.NewWixService(cfg.Wix)

	router := handler.Router{
		Base:    handler.New(db, cfg.CORSOrigin),
		Contact: handler.NewContactHandler(contactService),
		Catalog: handler.NewCatalogHandler(catalogService),
		Wix:     handler.NewWixHandler(wixService),
		Site:    site.Handler(site.FS()),
	}
	if cfg.ContactRateLimit > 0 {
		limiter := handler.NewRateLimiter(cfg.ContactRateLimit)
		defer limiter.Close()
		router.ContactLimiter = limiter
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func loadContent(path string) (*content.Site, error) {
	if path == "" {
		return content.Default()
	}
	slog.Info("loading site content", "path", path)
	return content.Load(path)
}
