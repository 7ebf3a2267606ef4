// Package app wires configuration, clients, services and storage into
// one shared core used by cmd/muskunits-server.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/muskunits/internal/clients/coingecko"
	"github.com/bobmcallan/muskunits/internal/clients/fiscaldata"
	"github.com/bobmcallan/muskunits/internal/clients/fred"
	"github.com/bobmcallan/muskunits/internal/clients/marketcap"
	"github.com/bobmcallan/muskunits/internal/clients/tic"
	"github.com/bobmcallan/muskunits/internal/clients/yahoo"
	"github.com/bobmcallan/muskunits/internal/common"
	"github.com/bobmcallan/muskunits/internal/interfaces"
	"github.com/bobmcallan/muskunits/internal/services/assets"
	"github.com/bobmcallan/muskunits/internal/services/debt"
	"github.com/bobmcallan/muskunits/internal/services/gold"
	"github.com/bobmcallan/muskunits/internal/services/holdings"
	"github.com/bobmcallan/muskunits/internal/services/quotes"
	surrealstorage "github.com/bobmcallan/muskunits/internal/storage/surrealdb"
)

// App holds all initialized services and clients.
type App struct {
	Config  *common.Config
	Logger  *common.Logger
	Storage interfaces.StorageManager // nil when no cache is configured

	AssetService    interfaces.AssetService
	HoldingsService interfaces.HoldingsService
	GoldService     interfaces.GoldService
	DebtService     interfaces.DebtService
	QuoteService    interfaces.QuoteService

	StartupTime time.Time

	schedulerCancel context.CancelFunc
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes all services, clients and storage.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	binDir := getBinaryDir()

	// Config resolution: explicit path, MUSKUNITS_CONFIG, binary dir,
	// then the development fallback.
	if configPath == "" {
		configPath = os.Getenv("MUSKUNITS_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "muskunits.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/muskunits.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	// The external cache is optional. When it is unreachable the server
	// still runs on in-memory snapshots, it just loses restart recovery.
	var storageManager interfaces.StorageManager
	var cacheStore interfaces.CacheStore
	if config.Storage.Address != "" {
		storageManager, err = surrealstorage.NewManager(logger, config)
		if err != nil {
			logger.Warn().Err(err).Msg("cache backend unavailable, continuing without it")
			storageManager = nil
		} else {
			cacheStore = storageManager.CacheStore()
		}
	}

	cryptoClient := coingecko.NewClient(
		coingecko.WithBaseURL(config.Clients.CoinGecko.BaseURL),
		coingecko.WithLogger(logger),
		coingecko.WithRateLimit(config.Clients.CoinGecko.RateLimit),
		coingecko.WithTimeout(config.Clients.CoinGecko.GetTimeout()),
	)
	fiscalClient := fiscaldata.NewClient(
		fiscaldata.WithBaseURL(config.Clients.FiscalData.BaseURL),
		fiscaldata.WithLogger(logger),
		fiscaldata.WithTimeout(config.Clients.FiscalData.GetTimeout()),
	)
	fredClient := fred.NewClient(
		fred.WithBaseURL(config.Clients.FRED.BaseURL),
		fred.WithLogger(logger),
		fred.WithTimeout(config.Clients.FRED.GetTimeout()),
	)
	ticClient := tic.NewClient(
		tic.WithBaseURL(config.Clients.TIC.BaseURL),
		tic.WithLogger(logger),
		tic.WithTimeout(config.Clients.TIC.GetTimeout()),
	)
	scraperClient := marketcap.NewClient(
		marketcap.WithBaseURL(config.Clients.MarketCap.BaseURL),
		marketcap.WithLogger(logger),
		marketcap.WithTimeout(config.Clients.MarketCap.GetTimeout()),
	)
	quoteClient := yahoo.NewClient(
		yahoo.WithBaseURL(config.Clients.Yahoo.BaseURL),
		yahoo.WithLogger(logger),
		yahoo.WithRateLimit(config.Clients.Yahoo.RateLimit),
		yahoo.WithTimeout(config.Clients.Yahoo.GetTimeout()),
	)

	a := &App{
		Config:          config,
		Logger:          logger,
		Storage:         storageManager,
		AssetService:    assets.NewService(cryptoClient, scraperClient, cacheStore, config.Reference.NetWorth, logger),
		HoldingsService: holdings.NewService(ticClient, cacheStore, logger),
		GoldService:     gold.NewService(config.Gold, logger),
		DebtService:     debt.NewService(fiscalClient, fredClient, cacheStore, logger),
		QuoteService:    quotes.NewService(quoteClient, logger),
		StartupTime:     startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.schedulerCancel != nil {
		a.schedulerCancel()
		a.schedulerCancel = nil
	}
	if a.Storage != nil {
		a.Storage.Close()
		a.Storage = nil
	}
}
