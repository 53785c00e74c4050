package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Lutefd/curconv/internal/commons"
	"github.com/Lutefd/curconv/internal/logger"
	"github.com/Lutefd/curconv/internal/model"
	"github.com/fatih/color"
)

const progressMessage = "🔄 Загрузка актуальных курсов валют..."

type ExchangeRateAPIClient struct {
	baseURL  string
	client   *http.Client
	timeout  time.Duration
	progress io.Writer
	silent   bool
}

type Option func(*ExchangeRateAPIClient)

func WithTimeout(timeout time.Duration) Option {
	return func(c *ExchangeRateAPIClient) {
		c.timeout = timeout
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *ExchangeRateAPIClient) {
		c.client = client
	}
}

func WithProgress(w io.Writer) Option {
	return func(c *ExchangeRateAPIClient) {
		c.progress = w
	}
}

// WithSilent suppresses the user-facing progress line. Machine-readable
// output modes construct silent clients.
func WithSilent(silent bool) Option {
	return func(c *ExchangeRateAPIClient) {
		c.silent = silent
	}
}

func NewExchangeRateAPIClient(baseURL string, opts ...Option) *ExchangeRateAPIClient {
	c := &ExchangeRateAPIClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		timeout:  commons.FetchTimeout,
		progress: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}
	return c
}

type exchangeRateResponse struct {
	Base            string             `json:"base"`
	Date            string             `json:"date"`
	TimeLastUpdated int64              `json:"time_last_updated"`
	Rates           map[string]float64 `json:"rates"`
}

func (c *ExchangeRateAPIClient) FetchRates(ctx context.Context, base string) (*model.RatesSnapshot, error) {
	if !c.silent {
		color.New(color.FgCyan).Fprintln(c.progress, progressMessage)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + "/" + url.PathEscape(base)
	logger.WithField("url", endpoint).Debug("fetching rates")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", model.ErrNetwork, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %w", model.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: API request failed with status code: %d", model.ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", model.ErrNetwork, err)
	}

	var payload exchangeRateResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", model.ErrResponseParse, err)
	}
	if payload.Rates == nil {
		return nil, fmt.Errorf("%w: response has no rates", model.ErrResponseParse)
	}
	if payload.Base == "" {
		payload.Base = base
	}

	logger.Debugf("fetched %d rates for %s", len(payload.Rates), payload.Base)

	return &model.RatesSnapshot{
		Base:      payload.Base,
		Rates:     payload.Rates,
		UpdatedAt: time.Unix(payload.TimeLastUpdated, 0),
	}, nil
}
