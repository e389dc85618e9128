package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/histcal/internal/domain"
)

// Endpoint paths relative to the base URL.
const (
	PathFilters  = "/projects/history/filters"
	PathCalendar = "/projects/history/calendar"
	PathSummary  = "/projects/history/summary"
	PathProjects = "/projects/history/projects"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8000/api/v1"

// ProjectQuery selects one page of the project search.
type ProjectQuery struct {
	Keyword  string
	Page     int
	PageSize int
}

// Source provides the remote history data the browser reads.
type Source interface {
	// FilterOptions returns the five multi-select option lists.
	FilterOptions(ctx context.Context) (domain.FilterOptions, error)

	// Calendar returns the events matching params (date_from, date_to and filters).
	Calendar(ctx context.Context, params url.Values) ([]domain.Event, error)

	// ActivitySummary returns per-date activity-type counts for params.
	ActivitySummary(ctx context.Context, params url.Values) (domain.ActivitySummary, error)

	// SearchProjects returns one page of projects matching the keyword.
	SearchProjects(ctx context.Context, q ProjectQuery) (domain.ProjectPage, error)
}

// Client implements Source over HTTP.
type Client struct {
	baseURL  string
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for baseURL. A nil observer discards events.
func NewClient(baseURL string, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

type filterOptionsResponse struct {
	Fields []struct {
		Code string `json:"field_code"`
		Name string `json:"field_name"`
	} `json:"fields"`
	Services []struct {
		Code string `json:"service_code"`
		Name string `json:"service_name"`
	} `json:"services"`
	ActivityTypes []struct {
		Code string `json:"activity_type"`
		Name string `json:"activity_type_name"`
	} `json:"activity_types"`
	Managers []struct {
		LoginID string `json:"login_id"`
		Name    string `json:"user_name"`
	} `json:"managers"`
	OrgUnits []struct {
		ID   domain.FlexID `json:"org_id"`
		Name string        `json:"org_name"`
	} `json:"org_units"`
}

func option(value, label string) domain.Option {
	return domain.Option{Value: value, Label: domain.CoalesceStr(label, value)}
}

func (c *Client) FilterOptions(ctx context.Context) (domain.FilterOptions, error) {
	var resp filterOptionsResponse
	if err := c.getJSON(ctx, PathFilters, nil, &resp); err != nil {
		return domain.FilterOptions{}, err
	}
	var opts domain.FilterOptions
	for _, f := range resp.Fields {
		opts.Fields = append(opts.Fields, option(f.Code, f.Name))
	}
	for _, s := range resp.Services {
		opts.Services = append(opts.Services, option(s.Code, s.Name))
	}
	for _, a := range resp.ActivityTypes {
		opts.ActivityTypes = append(opts.ActivityTypes, option(a.Code, a.Name))
	}
	for _, m := range resp.Managers {
		opts.Managers = append(opts.Managers, option(m.LoginID, m.Name))
	}
	for _, o := range resp.OrgUnits {
		opts.Orgs = append(opts.Orgs, option(string(o.ID), o.Name))
	}
	return opts, nil
}

type calendarResponse struct {
	Items []domain.Event `json:"items"`
}

func (r *calendarResponse) itemCount() int { return len(r.Items) }

type summaryResponse struct {
	Items []struct {
		BaseDate     string      `json:"base_date"`
		ActivityType string      `json:"activity_type"`
		Count        json.Number `json:"activity_count"`
	} `json:"items"`
}

func (r *summaryResponse) itemCount() int { return len(r.Items) }

type projectsResponse struct {
	Items      []domain.ProjectOption `json:"items"`
	TotalPages json.Number            `json:"total_pages"`
}

func (r *projectsResponse) itemCount() int { return len(r.Items) }

func (r *filterOptionsResponse) itemCount() int {
	return len(r.Fields) + len(r.Services) + len(r.ActivityTypes) + len(r.Managers) + len(r.OrgUnits)
}

func (c *Client) Calendar(ctx context.Context, params url.Values) ([]domain.Event, error) {
	var resp calendarResponse
	if err := c.getJSON(ctx, PathCalendar, params, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) ActivitySummary(ctx context.Context, params url.Values) (domain.ActivitySummary, error) {
	var resp summaryResponse
	if err := c.getJSON(ctx, PathSummary, params, &resp); err != nil {
		return nil, err
	}
	summary := domain.ActivitySummary{}
	for _, item := range resp.Items {
		if item.BaseDate == "" {
			continue
		}
		n, _ := item.Count.Int64()
		summary.Set(item.BaseDate, item.ActivityType, int(n))
	}
	return summary, nil
}

func (c *Client) SearchProjects(ctx context.Context, q ProjectQuery) (domain.ProjectPage, error) {
	params := url.Values{}
	if kw := strings.TrimSpace(q.Keyword); kw != "" {
		params.Set("keyword", kw)
	}
	page := max(1, q.Page)
	params.Set("page", strconv.Itoa(page))
	if q.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(q.PageSize))
	}

	var resp projectsResponse
	if err := c.getJSON(ctx, PathProjects, params, &resp); err != nil {
		return domain.ProjectPage{}, err
	}
	total, _ := resp.TotalPages.Int64()
	return domain.ProjectPage{
		Items:      resp.Items,
		Page:       page,
		TotalPages: max(1, int(total)),
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	start := time.Now()
	reqID := uuid.NewString()
	items := 0

	err := c.doGet(ctx, path, params, reqID, out)
	if err == nil {
		items = countItems(out)
	}
	c.observer.OnFetch(ctx, FetchEvent{
		RequestID: reqID,
		Endpoint:  path,
		Duration:  time.Since(start),
		Items:     items,
		Err:       err,
	})
	return err
}

func (c *Client) doGet(ctx context.Context, path string, params url.Values, reqID string, out any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if isConnectionError(err) {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: GET %s status %d: %s", ErrStatus, path, resp.StatusCode, truncate(string(body), 200))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return nil
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

type itemCounter interface {
	itemCount() int
}

func countItems(out any) int {
	if c, ok := out.(itemCounter); ok {
		return c.itemCount()
	}
	return 0
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
