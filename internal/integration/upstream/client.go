// Package upstream implements the dashboard repositories on top of the sales
// backend REST API.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sales-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/sales-dashboard/backend/internal/domain/entity"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
)

const (
	yearlySalesPath    = "/sales/yearly"
	quarterlySalesPath = "/sales/quarterly"
	salesMetricsPath   = "/sales/metrics"

	// maxErrorBodyBytes bounds how much of a failed response ends up in the error.
	maxErrorBodyBytes = 512

	// DefaultMaxResponseBytes caps a successful response body when no
	// positive limit is configured.
	DefaultMaxResponseBytes int64 = 4 << 20
)

var errResponseTooLarge = errors.New("response body too large")

type accessTokenKey struct{}

// WithAccessToken stores the caller's bearer token so outgoing backend
// requests can carry it.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFromContext returns the bearer token stored by WithAccessToken.
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey{}).(string)
	return token, ok && token != ""
}

// Client talks to the sales backend.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	maxResponseBytes int64
}

// NewClient creates a new backend client. Successful responses larger than
// maxResponseBytes are rejected.
func NewClient(baseURL string, timeout time.Duration, maxResponseBytes int64) *Client {
	if maxResponseBytes <= 0 {
		maxResponseBytes = DefaultMaxResponseBytes
	}
	return &Client{
		baseURL:          strings.TrimRight(baseURL, "/"),
		httpClient:       &http.Client{Timeout: timeout},
		maxResponseBytes: maxResponseBytes,
	}
}

var (
	_ dashboard.SalesRepository   = (*Client)(nil)
	_ dashboard.MetricsRepository = (*Client)(nil)
)

// GetYearlySales fetches monthly sales grouped by year.
func (c *Client) GetYearlySales(ctx context.Context) ([]entity.MonthlyYearSeries, error) {
	var result []entity.MonthlyYearSeries
	if err := c.get(ctx, yearlySalesPath, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetQuarterlySales fetches quarterly sales grouped by year.
func (c *Client) GetQuarterlySales(ctx context.Context) ([]entity.QuarterlyYearSeries, error) {
	var result []entity.QuarterlyYearSeries
	if err := c.get(ctx, quarterlySalesPath, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetSalesMetrics fetches the KPI metrics for the query window.
func (c *Client) GetSalesMetrics(ctx context.Context, query entity.KPIQuery) (*entity.SalesMetrics, error) {
	params := url.Values{}
	params.Set("from", query.From)
	params.Set("to", query.To)
	params.Set("timezone", query.Timezone)

	var result entity.SalesMetrics
	if err := c.get(ctx, salesMetricsPath, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token, ok := AccessTokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return unavailable(fmt.Sprintf("request to %s failed", path), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return unavailable(
			fmt.Sprintf("%s returned status %d", path, resp.StatusCode),
			fmt.Errorf("%s", strings.TrimSpace(string(body))),
		)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseBytes+1))
	if err != nil {
		return unavailable(fmt.Sprintf("failed to read %s response", path), err)
	}
	if int64(len(body)) > c.maxResponseBytes {
		return unavailable(
			fmt.Sprintf("%s response exceeds %d bytes", path, c.maxResponseBytes),
			errResponseTooLarge,
		)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return unavailable(fmt.Sprintf("failed to decode %s response", path), err)
	}

	return nil
}

func unavailable(message string, cause error) error {
	return domainerror.NewDashboardError(
		domainerror.ErrCodeUpstreamUnavailable,
		message,
		fmt.Errorf("%w: %w", domainerror.ErrUpstreamUnavailable, cause),
	)
}
