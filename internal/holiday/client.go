package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/histcal/internal/api"
	"github.com/alexanderramin/histcal/internal/domain"
)

// ErrFetch indicates the holiday source could not provide a year's data.
var ErrFetch = errors.New("holiday fetch failed")

// DefaultBaseURL and DefaultCountry point at the public Nager.Date API.
const (
	DefaultBaseURL = "https://date.nager.at"
	DefaultCountry = "KR"
)

// Entry is one public holiday as returned by the source.
type Entry = domain.Holiday

// Fetcher returns the public holidays of one year.
type Fetcher interface {
	PublicHolidays(ctx context.Context, year int) ([]Entry, error)
}

// NagerClient fetches holidays from a Nager.Date compatible endpoint.
type NagerClient struct {
	baseURL  string
	country  string
	http     *http.Client
	observer api.Observer
}

// NewNagerClient creates a client for baseURL and country. Blank values fall
// back to the public defaults.
func NewNagerClient(baseURL, country string, observer api.Observer) *NagerClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(country) == "" {
		country = DefaultCountry
	}
	if observer == nil {
		observer = api.NoopObserver{}
	}
	return &NagerClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		country:  strings.ToUpper(country),
		http:     &http.Client{},
		observer: observer,
	}
}

func (c *NagerClient) PublicHolidays(ctx context.Context, year int) ([]Entry, error) {
	start := time.Now()
	path := fmt.Sprintf("/api/v3/PublicHolidays/%d/%s", year, c.country)

	entries, err := c.fetch(ctx, path)
	c.observer.OnFetch(ctx, api.FetchEvent{
		RequestID: uuid.NewString(),
		Endpoint:  path,
		Duration:  time.Since(start),
		Items:     len(entries),
		Err:       err,
	})
	return entries, err
}

func (c *NagerClient) fetch(ctx context.Context, path string) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode)
	}
	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: decoding: %v", ErrFetch, err)
	}
	return entries, nil
}
