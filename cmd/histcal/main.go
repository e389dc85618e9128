package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/histcal/internal/api"
	"github.com/alexanderramin/histcal/internal/cli"
	"github.com/alexanderramin/histcal/internal/config"
	"github.com/alexanderramin/histcal/internal/db"
	"github.com/alexanderramin/histcal/internal/holiday"
	"github.com/alexanderramin/histcal/internal/logging"
	"github.com/alexanderramin/histcal/internal/repository"
	"github.com/alexanderramin/histcal/internal/settings"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logOpts := logging.DefaultOptions
	logOpts.File = cfg.LogFile
	logOpts.Level = cfg.LogLevel
	logger, logCloser := logging.New(logOpts)
	defer logCloser.Close()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	exportLogRepo := repository.NewSQLiteExportLogRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Remote sources share one fetch observer
	observer := api.NewLogObserver(logger)
	source := api.NewClient(cfg.APIURL, observer)
	nager := holiday.NewNagerClient(cfg.HolidayURL, cfg.HolidayCountry, observer)
	holidays := holiday.NewCache(
		holiday.NewStoredFetcher(nager, cfg.HolidayCountry, database, uow, logger),
		logger,
	)

	app := &cli.App{
		Config:    cfg,
		Logger:    logger,
		Source:    source,
		Holidays:  holidays,
		Store:     settings.NewRepoStore(settingsRepo, logger),
		ExportLog: exportLogRepo,
		Now:       time.Now,
	}

	// Detect interactive terminal for the browser entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	logger.Debug("starting", "api", cfg.APIURL, "db", cfg.DBPath)
	return cli.NewRootCmd(app).Execute()
}
