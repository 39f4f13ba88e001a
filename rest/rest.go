// Package rest performs signed round trips to the OKX Web3 API and
// normalizes every outcome into a Result.
package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/banky/go-okx-web3/auth"
	"github.com/banky/go-okx-web3/constants"
	"github.com/banky/go-okx-web3/types"
	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/samber/mo"
)

// Signer produces the authentication headers for one request
type Signer interface {
	Headers(method string, path string, params types.Params, body any) (auth.SignedRequest, error)
}

var _ Signer = (*auth.Signer)(nil)

type Client struct {
	baseUrl string
	timeout mo.Option[time.Duration]
	signer  Signer
	http    *resty.Client
	logger  zerolog.Logger
	metrics mo.Option[*metrics]
}

// ClientInterface defines the contract for REST API calls
type ClientInterface interface {
	Request(ctx context.Context, method string, path string, params types.Params, body any) (Result, error)
}

var _ ClientInterface = (*Client)(nil)

type Config struct {
	// BaseUrl is the base URL for the OKX API
	// If none is provided, the mainnet url will be used
	BaseUrl string
	// Timeout is the timeout for network requests
	// If none is provided, no timeout will be enforced
	Timeout time.Duration
	// Signer signs every outgoing request. Required.
	Signer Signer
	// Logger receives request diagnostics. Defaults to a no-op logger.
	Logger *zerolog.Logger
	// Registerer enables request metrics when set
	Registerer prometheus.Registerer
	// HTTPClient is the underlying transport. Defaults to a fresh client.
	HTTPClient *http.Client
}

// New creates a new client instance with the
// provided configuration.
func New(c Config) (*Client, error) {
	if c.Signer == nil {
		return nil, errors.New("signer is required")
	}

	var baseUrl string = strings.TrimRight(c.BaseUrl, "/")
	var timeout mo.Option[time.Duration]

	if baseUrl == "" {
		baseUrl = constants.MAINNET_API_URL
	}
	if c.Timeout > 0 {
		timeout = mo.Some(c.Timeout)
	}

	logger := zerolog.Nop()
	if c.Logger != nil {
		logger = *c.Logger
	}

	var httpClient *resty.Client
	if c.HTTPClient != nil {
		httpClient = resty.NewWithClient(c.HTTPClient)
	} else {
		httpClient = resty.New()
	}
	httpClient.SetLogger(restyLogger{logger: logger})

	client := &Client{
		baseUrl: baseUrl,
		timeout: timeout,
		signer:  c.Signer,
		http:    httpClient,
		logger:  logger,
	}

	if c.Registerer != nil {
		m, err := newMetrics(c.Registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		client.metrics = mo.Some(m)
	}

	return client, nil
}

// BaseUrl returns the host requests are sent to
func (c *Client) BaseUrl() string {
	return c.baseUrl
}

// Join builds a full request path from a service prefix and an endpoint.
func Join(prefix string, endpoint string) string {
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// Get sends a signed GET request with params as the query string.
func (c *Client) Get(ctx context.Context, path string, params types.Params) (Result, error) {
	return c.Request(ctx, http.MethodGet, path, params, nil)
}

// Post sends a signed POST request with body as its JSON payload.
func (c *Client) Post(ctx context.Context, path string, body any) (Result, error) {
	return c.Request(ctx, http.MethodPost, path, nil, body)
}

// Request performs one authenticated round trip. Upstream and transport
// failures are reported in the Result; the returned error is reserved for
// failures before anything is sent (unsupported method, signing).
func (c *Client) Request(
	ctx context.Context,
	method string,
	path string,
	params types.Params,
	body any,
) (Result, error) {
	method = strings.ToUpper(method)
	if method != http.MethodGet && method != http.MethodPost {
		return Result{}, fmt.Errorf("unsupported method: %s", method)
	}

	signed, err := c.signer.Headers(method, path, params, body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to sign request: %w", err)
	}

	// Apply timeout to context if specified
	if timeout, ok := c.timeout.Get(); ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	r := c.http.R().
		SetContext(ctx).
		SetHeaderMultiValues(signed.Headers)

	// The query goes out exactly as it was signed.
	url := c.baseUrl + path
	if signed.Query != "" {
		url += "?" + signed.Query
	}
	if method == http.MethodPost && len(signed.Body) > 0 {
		r.SetBody(signed.Body)
	}

	start := time.Now()
	resp, err := r.Execute(method, url)

	var result Result
	if err != nil {
		result = transportFailure(err)
	} else {
		result = handleResponse(resp)
	}

	code := "200"
	if result.Error != nil {
		code = result.Error.Code
	}
	if m, ok := c.metrics.Get(); ok {
		m.observe(method, code, time.Since(start))
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("code", code).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	return result, nil
}

// restyLogger routes resty's own diagnostics to zerolog
type restyLogger struct {
	logger zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Msgf(format, v...)
}
