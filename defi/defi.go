// Package defi wraps the DeFi services. Each service lives under its own
// prefix and has its own client: Explore finds protocols and products,
// Calculator previews positions, Transaction builds call data and User
// reads existing positions.
package defi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/banky/go-okx-web3/constants"
	"github.com/banky/go-okx-web3/rest"
	"github.com/banky/go-okx-web3/types"
)

// Config for initializing the Defi client
type Config struct {
	Rest rest.ClientInterface
}

// Defi groups the DeFi service clients
type Defi struct {
	Explore     *Explore
	Calculator  *Calculator
	Transaction *Transaction
	User        *User
}

// New creates a new Defi client
func New(cfg Config) *Defi {
	return &Defi{
		Explore:     &Explore{service{rest: cfg.Rest, prefix: constants.DEFI_EXPLORE_PATH}},
		Calculator:  &Calculator{service{rest: cfg.Rest, prefix: constants.DEFI_CALCULATOR_PATH}},
		Transaction: &Transaction{service{rest: cfg.Rest, prefix: constants.DEFI_TRANSACTION_PATH}},
		User:        &User{service{rest: cfg.Rest, prefix: constants.DEFI_USER_PATH}},
	}
}

type service struct {
	rest   rest.ClientInterface
	prefix string
}

func (s service) get(ctx context.Context, endpoint string, params types.Params) (rest.Result, error) {
	return s.rest.Request(ctx, http.MethodGet, rest.Join(s.prefix, endpoint), params, nil)
}

func (s service) post(ctx context.Context, endpoint string, body any) (rest.Result, error) {
	return s.rest.Request(ctx, http.MethodPost, rest.Join(s.prefix, endpoint), nil, body)
}

func requireList(name string, n int) error {
	if n == 0 {
		return fmt.Errorf("missing required parameter(s): %s", name)
	}
	return nil
}
