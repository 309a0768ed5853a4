package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/text/language"

	"github.com/mwhite7112/woodpantry-scan/internal/api"
	"github.com/mwhite7112/woodpantry-scan/internal/config"
	"github.com/mwhite7112/woodpantry-scan/internal/db"
	"github.com/mwhite7112/woodpantry-scan/internal/events"
	"github.com/mwhite7112/woodpantry-scan/internal/logging"
	"github.com/mwhite7112/woodpantry-scan/internal/openfoodfacts"
	"github.com/mwhite7112/woodpantry-scan/internal/service"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	locale, err := language.Parse(cfg.CatalogLocale)
	if err != nil {
		slog.Error("invalid CATALOG_LOCALE", "error", err)
		os.Exit(1)
	}

	sqlDB, dialect, err := db.Open(cfg.DBURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(sqlDB, dialect); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	broker := events.NewBroker()
	svc := service.New(
		db.NewStore(sqlDB, dialect),
		openfoodfacts.NewClient(cfg.OFFBaseURL, cfg.OFFUserAgent, cfg.OFFTimeout),
		service.Config{
			Catalog:          service.LoadCatalog(cfg.CatalogPath),
			Locale:           locale,
			SuggestThreshold: cfg.SuggestThreshold,
			Publisher:        broker,
		},
	)
	handler := api.NewRouter(svc, broker)

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("scan service listening", "addr", addr, "dialect", dialect)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
