// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/alexanderramin/histcal/internal/api"
	"github.com/alexanderramin/histcal/internal/history"
	"github.com/alexanderramin/histcal/internal/holiday"
)

// Config holds all runtime settings.
type Config struct {
	APIURL         string
	DBPath         string
	HolidayURL     string
	HolidayCountry string
	LogFile        string
	LogLevel       string
	SearchDebounce time.Duration
	PageSize       int
	WalkMonths     int
	ExportDir      string
}

// Default returns the configuration used when no variable is set. Files
// live under home/.histcal.
func Default(home string) Config {
	dir := filepath.Join(home, ".histcal")
	return Config{
		APIURL:         api.DefaultBaseURL,
		DBPath:         filepath.Join(dir, "histcal.db"),
		HolidayURL:     holiday.DefaultBaseURL,
		HolidayCountry: holiday.DefaultCountry,
		LogFile:        filepath.Join(dir, "histcal.log"),
		LogLevel:       "info",
		SearchDebounce: history.DefaultSearchDebounce,
		PageSize:       history.DefaultPageSize,
		WalkMonths:     history.DefaultWalkMonths,
		ExportDir:      ".",
	}
}

// Load reads envFiles (or ./.env when none are given, ignoring a missing
// file) and then applies HISTCAL_* overrides on top of the defaults.
// Variables already in the environment win over file values.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	cfg := Default(home)

	setString(&cfg.APIURL, "HISTCAL_API_URL")
	setString(&cfg.DBPath, "HISTCAL_DB")
	setString(&cfg.HolidayURL, "HISTCAL_HOLIDAY_URL")
	setString(&cfg.HolidayCountry, "HISTCAL_HOLIDAY_COUNTRY")
	setString(&cfg.LogFile, "HISTCAL_LOG_FILE")
	setString(&cfg.ExportDir, "HISTCAL_EXPORT_DIR")
	if v := os.Getenv("HISTCAL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("HISTCAL_SEARCH_DEBOUNCE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SearchDebounce = time.Duration(n) * time.Millisecond
		}
	}
	setPositiveInt(&cfg.PageSize, "HISTCAL_PROJECT_PAGE_SIZE")
	setPositiveInt(&cfg.WalkMonths, "HISTCAL_DAILY_WALK_MONTHS")

	return cfg, nil
}

// History returns the controller tuning.
func (c Config) History() history.Config {
	return history.Config{
		SearchDebounce: c.SearchDebounce,
		PageSize:       c.PageSize,
		WalkMonths:     c.WalkMonths,
	}
}

func setString(dst *string, env string) {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		*dst = v
	}
}

func setPositiveInt(dst *int, env string) {
	v := os.Getenv(env)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		*dst = n
	}
}
