// Package okx is the entry point of the SDK. A Client owns one signer and
// one dispatcher, shared by every domain client.
package okx

import (
	"fmt"
	"net/http"
	"time"

	"github.com/banky/go-okx-web3/auth"
	"github.com/banky/go-okx-web3/defi"
	"github.com/banky/go-okx-web3/dex"
	"github.com/banky/go-okx-web3/marketplace"
	"github.com/banky/go-okx-web3/rest"
	"github.com/banky/go-okx-web3/wallet"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Config for initializing the Client
type Config struct {
	Credentials auth.Credentials
	// BaseURL defaults to mainnet
	BaseURL string
	// Timeout applies to every request. Zero means none.
	Timeout time.Duration
	Logger  *zerolog.Logger
	// Registerer enables request metrics when set
	Registerer prometheus.Registerer
	HTTPClient *http.Client
}

type Client struct {
	Dex         *dex.Dex
	Wallet      *wallet.Wallet
	Defi        *defi.Defi
	Marketplace *marketplace.Marketplace

	signer *auth.Signer
	rest   *rest.Client
}

// New validates the credentials and wires the domain clients. No network
// request is made.
func New(cfg Config) (*Client, error) {
	var signerOpts []auth.Option
	if cfg.Logger != nil {
		signerOpts = append(signerOpts, auth.WithLogger(*cfg.Logger))
	}

	signer, err := auth.NewSigner(cfg.Credentials, signerOpts...)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	restClient, err := rest.New(rest.Config{
		BaseUrl:    cfg.BaseURL,
		Timeout:    cfg.Timeout,
		Signer:     signer,
		Logger:     cfg.Logger,
		Registerer: cfg.Registerer,
		HTTPClient: cfg.HTTPClient,
	})
	if err != nil {
		return nil, err
	}

	creds := signer.Credentials()
	return &Client{
		Dex: dex.New(dex.Config{
			Rest:          restClient,
			WalletAddress: creds.WalletAddress,
		}),
		Wallet: wallet.New(wallet.Config{
			Rest:      restClient,
			AccountID: creds.AccountID,
		}),
		Defi:        defi.New(defi.Config{Rest: restClient}),
		Marketplace: marketplace.New(marketplace.Config{Rest: restClient}),
		signer:      signer,
		rest:        restClient,
	}, nil
}

// NewFromFile loads credentials from a JSON or YAML file. Any credentials
// already in cfg are replaced.
func NewFromFile(path string, cfg Config) (*Client, error) {
	creds, err := auth.LoadCredentialsFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Credentials = creds
	return New(cfg)
}

// NewFromEnv loads credentials from the OKX_* environment variables,
// reading the given dotenv files first.
func NewFromEnv(cfg Config, files ...string) (*Client, error) {
	creds, err := auth.CredentialsFromEnv(files...)
	if err != nil {
		return nil, err
	}
	cfg.Credentials = creds
	return New(cfg)
}

func (c *Client) Signer() *auth.Signer {
	return c.signer
}

// BaseUrl returns the host requests are sent to
func (c *Client) BaseUrl() string {
	return c.rest.BaseUrl()
}
