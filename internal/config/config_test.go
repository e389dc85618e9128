package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/histcal/internal/history"
)

var allKeys = []string{
	"HISTCAL_API_URL", "HISTCAL_DB", "HISTCAL_HOLIDAY_URL", "HISTCAL_HOLIDAY_COUNTRY",
	"HISTCAL_LOG_FILE", "HISTCAL_LOG_LEVEL", "HISTCAL_SEARCH_DEBOUNCE_MS",
	"HISTCAL_PROJECT_PAGE_SIZE", "HISTCAL_DAILY_WALK_MONTHS", "HISTCAL_EXPORT_DIR",
}

// unsetAll clears every key for the test and restores it afterwards.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestDefault(t *testing.T) {
	cfg := Default("/home/u")

	assert.Equal(t, "http://localhost:8000/api/v1", cfg.APIURL)
	assert.Equal(t, filepath.Join("/home/u", ".histcal", "histcal.db"), cfg.DBPath)
	assert.Equal(t, "KR", cfg.HolidayCountry)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 25, cfg.PageSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	unsetAll(t)
	t.Setenv("HISTCAL_API_URL", "http://api.test/v1")
	t.Setenv("HISTCAL_DB", "/tmp/h.db")
	t.Setenv("HISTCAL_LOG_LEVEL", " DEBUG ")
	t.Setenv("HISTCAL_SEARCH_DEBOUNCE_MS", "50")
	t.Setenv("HISTCAL_PROJECT_PAGE_SIZE", "10")
	t.Setenv("HISTCAL_DAILY_WALK_MONTHS", "6")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://api.test/v1", cfg.APIURL)
	assert.Equal(t, "/tmp/h.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, history.Config{
		SearchDebounce: 50 * time.Millisecond,
		PageSize:       10,
		WalkMonths:     6,
	}, cfg.History())
}

func TestLoad_InvalidNumbersKeepDefaults(t *testing.T) {
	unsetAll(t)
	t.Setenv("HISTCAL_SEARCH_DEBOUNCE_MS", "soon")
	t.Setenv("HISTCAL_PROJECT_PAGE_SIZE", "-3")
	t.Setenv("HISTCAL_DAILY_WALK_MONTHS", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, history.DefaultSearchDebounce, cfg.SearchDebounce)
	assert.Equal(t, history.DefaultPageSize, cfg.PageSize)
	assert.Equal(t, history.DefaultWalkMonths, cfg.WalkMonths)
}

func TestLoad_EnvFile(t *testing.T) {
	unsetAll(t)
	t.Setenv("HISTCAL_DB", "/from/env.db")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "HISTCAL_API_URL=http://file.test/v1\nHISTCAL_DB=/from/file.db\nHISTCAL_HOLIDAY_COUNTRY=US\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://file.test/v1", cfg.APIURL)
	assert.Equal(t, "US", cfg.HolidayCountry)
	assert.Equal(t, "/from/env.db", cfg.DBPath, "environment wins over the file")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	unsetAll(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
