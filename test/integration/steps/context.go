// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/sales-dashboard/backend/config"
	"github.com/sales-dashboard/backend/internal/infra/cache"
	"github.com/sales-dashboard/backend/internal/infra/dependency"
	"github.com/sales-dashboard/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string
	accessToken    string

	// Collaborators
	backend     *mock.ApiMock
	redisServer *miniredis.Miniredis
	redisClient *redis.Client
	timeMock    *mock.Time

	// Config
	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

var backend *mock.ApiMock

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		// Set Gin to test mode
		gin.SetMode(gin.TestMode)

		backend = mock.NewApiServer()
		backend.Start()
	})

	ctx.AfterSuite(func() {
		backend.Close()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		redisServer, redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}
		backend.Reset()

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			backend:        backend,
			redisServer:    redisServer,
			redisClient:    redisClient,
			timeMock:       mock.NewTime(),
			cfg:            testConfig(backend.GetUrl()),
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	// Register step definitions
	registerSetupSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerBackendSteps(ctx)
}

func testConfig(upstreamURL string) *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Upstream.BaseURL = upstreamURL
	cfg.Upstream.Timeout = 5 * time.Second
	cfg.Cache.Enabled = true
	cfg.Cache.TTL = time.Minute
	cfg.Dashboard.DefaultTimezone = "PST"
	cfg.Dashboard.StrictLastWeek = false
	return cfg
}

// ensureServer builds the API from the scenario's config on first use.
func (tc *TestContext) ensureServer() {
	if tc.server != nil {
		return
	}
	injector := dependency.NewInjector(tc.cfg, cache.NewRedis(tc.redisClient), tc.timeMock)
	tc.server = httptest.NewServer(injector.Router.Setup(tc.cfg.Server.Environment))
}

// registerSetupSteps registers scenario setup steps.
func registerSetupSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^the current time is "([^"]*)"$`, theCurrentTimeIs)
	ctx.Step(`^last-week classification is strict$`, lastWeekClassificationIsStrict)
	ctx.Step(`^the default timezone is "([^"]*)"$`, theDefaultTimezoneIs)
	ctx.Step(`^the sales cache is disabled$`, theSalesCacheIsDisabled)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I am authenticated with token "([^"]*)"$`, iAmAuthenticatedWithToken)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^the response header "([^"]*)" should exist$`, theResponseHeaderShouldExist)
	ctx.Step(`^the response should match json:$`, theResponseShouldMatchJSON)
}

// registerBackendSteps registers sales backend and cache steps.
func registerBackendSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the sales backend responds to "([^"]*)" with status (\d+) and body:$`, theSalesBackendRespondsWith)
	ctx.Step(`^the sales backend should have received (\d+) requests? to "([^"]*)"$`, theSalesBackendShouldHaveReceivedRequests)
	ctx.Step(`^the sales backend should have received the query "([^"]*)" with "([^"]*)" on "([^"]*)"$`, theSalesBackendShouldHaveReceivedQuery)
	ctx.Step(`^the sales backend should have received the header "([^"]*)" with "([^"]*)" on "([^"]*)"$`, theSalesBackendShouldHaveReceivedHeader)
	ctx.Step(`^the cache should contain an entry for "([^"]*)"$`, theCacheShouldContainAnEntryFor)
	ctx.Step(`^the cache should not contain an entry for "([^"]*)"$`, theCacheShouldNotContainAnEntryFor)
}

// Step implementations

func scenario(ctx context.Context) (*TestContext, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}
	return tc, nil
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	tc.ensureServer()
	return nil
}

func theCurrentTimeIs(ctx context.Context, value string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	tc.timeMock.SetCurrentTime(now)
	return nil
}

func reconfigure(ctx context.Context, apply func(cfg *config.Config)) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	if tc.server != nil {
		tc.server.Close()
		tc.server = nil
	}
	apply(tc.cfg)
	return nil
}

func lastWeekClassificationIsStrict(ctx context.Context) error {
	return reconfigure(ctx, func(cfg *config.Config) {
		cfg.Dashboard.StrictLastWeek = true
	})
}

func theDefaultTimezoneIs(ctx context.Context, timezone string) error {
	return reconfigure(ctx, func(cfg *config.Config) {
		cfg.Dashboard.DefaultTimezone = timezone
	})
}

func theSalesCacheIsDisabled(ctx context.Context) error {
	return reconfigure(ctx, func(cfg *config.Config) {
		cfg.Cache.Enabled = false
	})
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	return sendRequest(ctx, method, endpoint, bytes.NewBufferString(body.Content))
}

func sendRequest(ctx context.Context, method, endpoint string, body io.Reader) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	tc.ensureServer()

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Add headers
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	// Add auth token if present
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	tc.requestHeaders[header] = value
	return nil
}

func iAmAuthenticatedWithToken(ctx context.Context, token string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	tc.accessToken = token
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

// lookupField walks a dotted path such as "data.series.0.name".
func lookupField(body []byte, path string) (any, error) {
	var current any
	if err := json.Unmarshal(body, &current); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response", path)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("index '%s' out of range in '%s'", part, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field '%s' not found in response", path)
		}
	}

	return current, nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}

	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}

	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	_, err = lookupField(tc.responseBody, field)
	return err
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, count int) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}

	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return err
	}

	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not an array", field)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func theResponseHeaderShouldExist(ctx context.Context, header string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	if tc.response == nil || tc.response.Header.Get(header) == "" {
		return fmt.Errorf("header '%s' not found in response", header)
	}
	return nil
}

func theResponseShouldMatchJSON(ctx context.Context, body *godog.DocString) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}

	var expected, actual interface{}

	if err := json.Unmarshal([]byte(body.Content), &expected); err != nil {
		return fmt.Errorf("failed to parse expected JSON: %w", err)
	}

	if err := json.Unmarshal(tc.responseBody, &actual); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	expectedJSON, _ := json.Marshal(expected)
	actualJSON, _ := json.Marshal(actual)

	if string(expectedJSON) != string(actualJSON) {
		return fmt.Errorf("expected JSON:\n%s\nactual JSON:\n%s", string(expectedJSON), string(actualJSON))
	}

	return nil
}

func theSalesBackendRespondsWith(ctx context.Context, path string, status int, body *godog.DocString) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	tc.backend.SetResponse(http.MethodGet, path, status, body.Content)
	return nil
}

func theSalesBackendShouldHaveReceivedRequests(ctx context.Context, count int, path string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	if got := tc.backend.RequestCount(http.MethodGet, path); got != count {
		return fmt.Errorf("expected %d requests to %s, got %d", count, path, got)
	}
	return nil
}

func theSalesBackendShouldHaveReceivedQuery(ctx context.Context, param, expected, path string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	value, ok := tc.backend.GetQuery(http.MethodGet, path, -1, param)
	if !ok {
		return fmt.Errorf("query '%s' not received on %s", param, path)
	}
	if value != expected {
		return fmt.Errorf("query '%s' on %s expected '%s', got '%s'", param, path, expected, value)
	}
	return nil
}

func theSalesBackendShouldHaveReceivedHeader(ctx context.Context, header, expected, path string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	value, ok := tc.backend.GetHeader(http.MethodGet, path, -1, header)
	if !ok {
		return fmt.Errorf("header '%s' not received on %s", header, path)
	}
	if value != expected {
		return fmt.Errorf("header '%s' on %s expected '%s', got '%s'", header, path, expected, value)
	}
	return nil
}

// cachedEntries returns the keys stored under prefix. Entries are scoped
// per caller, so the prefix is followed by a token hash.
func (tc *TestContext) cachedEntries(prefix string) []string {
	var keys []string
	for _, key := range tc.redisServer.Keys() {
		if strings.HasPrefix(key, prefix+":") {
			keys = append(keys, key)
		}
	}
	return keys
}

func theCacheShouldContainAnEntryFor(ctx context.Context, prefix string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	if len(tc.cachedEntries(prefix)) == 0 {
		return fmt.Errorf("no cache entry found for '%s'", prefix)
	}
	return nil
}

func theCacheShouldNotContainAnEntryFor(ctx context.Context, prefix string) error {
	tc, err := scenario(ctx)
	if err != nil {
		return err
	}
	if keys := tc.cachedEntries(prefix); len(keys) > 0 {
		return fmt.Errorf("cache entries for '%s' should not exist, found %v", prefix, keys)
	}
	return nil
}
