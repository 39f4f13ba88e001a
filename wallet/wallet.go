// Package wallet wraps the wallet pre-transaction services (gas, nonce,
// sign info, address validation, broadcast) and the post-transaction order
// history.
package wallet

import (
	"context"
	"net/http"

	"github.com/banky/go-okx-web3/constants"
	"github.com/banky/go-okx-web3/internal/utils"
	"github.com/banky/go-okx-web3/rest"
	"github.com/banky/go-okx-web3/types"
	"github.com/samber/mo"
)

// Config for initializing the Wallet client
type Config struct {
	Rest rest.ClientInterface
	// AccountID is used by TransactionOrders when no account is given
	AccountID string
}

// Wallet provides access to the wallet services via REST API
type Wallet struct {
	rest      rest.ClientInterface
	accountID mo.Option[string]
}

// New creates a new Wallet client
func New(cfg Config) *Wallet {
	var accountID mo.Option[string]
	if cfg.AccountID != "" {
		accountID = mo.Some(cfg.AccountID)
	}

	return &Wallet{
		rest:      cfg.Rest,
		accountID: accountID,
	}
}

// SignInfo returns the data needed to sign a transfer.
func (w *Wallet) SignInfo(
	ctx context.Context,
	chainIndex string,
	fromAddr string,
	toAddr string,
	opts ...TxInfoOption,
) (rest.Result, error) {
	body, err := txInfoRequest(chainIndex, fromAddr, toAddr, opts)
	if err != nil {
		return rest.Result{}, err
	}

	return w.post(ctx, "pre-transaction/sign-info", body)
}

// GasPrice returns the current gas price levels of a chain.
func (w *Wallet) GasPrice(ctx context.Context, chainIndex string) (rest.Result, error) {
	if err := utils.Required("chainIndex", chainIndex); err != nil {
		return rest.Result{}, err
	}

	return w.get(ctx, "pre-transaction/gas-price", types.Params{"chainIndex": chainIndex})
}

// GasLimit estimates the gas limit of a transfer.
func (w *Wallet) GasLimit(
	ctx context.Context,
	chainIndex string,
	fromAddr string,
	toAddr string,
	opts ...TxInfoOption,
) (rest.Result, error) {
	body, err := txInfoRequest(chainIndex, fromAddr, toAddr, opts)
	if err != nil {
		return rest.Result{}, err
	}

	return w.post(ctx, "pre-transaction/gas-limit", body)
}

// Nonce returns the next nonce of an address.
func (w *Wallet) Nonce(ctx context.Context, chainIndex string, address string) (rest.Result, error) {
	if err := utils.Required("chainIndex", chainIndex, "address", address); err != nil {
		return rest.Result{}, err
	}

	return w.get(ctx, "pre-transaction/nonce", types.Params{
		"address":    address,
		"chainIndex": chainIndex,
	})
}

// SuiObjects lists the coin objects an address owns for a token on Sui.
func (w *Wallet) SuiObjects(
	ctx context.Context,
	chainIndex string,
	address string,
	tokenAddress string,
	opts ...SuiObjectsOption,
) (rest.Result, error) {
	if err := utils.Required(
		"chainIndex", chainIndex,
		"address", address,
		"tokenAddress", tokenAddress,
	); err != nil {
		return rest.Result{}, err
	}

	cfg := suiObjectsConfig{limit: DEFAULT_SUI_OBJECT_LIMIT}
	for _, opt := range opts {
		opt(&cfg)
	}

	return w.post(ctx, "pre-transaction/sui-object", SuiObjectsRequest{
		ChainIndex:   chainIndex,
		Address:      address,
		TokenAddress: tokenAddress,
		Limit:        cfg.limit,
		Cursor:       cfg.cursor.OrEmpty(),
	})
}

// ValidateAddress checks the format of an address and whether it is
// blacklisted.
func (w *Wallet) ValidateAddress(ctx context.Context, chainIndex string, address string) (rest.Result, error) {
	if err := utils.Required("chainIndex", chainIndex, "address", address); err != nil {
		return rest.Result{}, err
	}

	return w.get(ctx, "pre-transaction/validate-address", types.Params{
		"address":    address,
		"chainIndex": chainIndex,
	})
}

// BroadcastTransaction submits a signed transaction to the network.
func (w *Wallet) BroadcastTransaction(
	ctx context.Context,
	signedTx string,
	chainIndex string,
	address string,
	opts ...BroadcastOption,
) (rest.Result, error) {
	if err := utils.Required(
		"signedTx", signedTx,
		"chainIndex", chainIndex,
		"address", address,
	); err != nil {
		return rest.Result{}, err
	}

	req := BroadcastRequest{
		SignedTx:   signedTx,
		ChainIndex: chainIndex,
		Address:    address,
	}
	for _, opt := range opts {
		opt(&req)
	}

	return w.post(ctx, "pre-transaction/broadcast-transaction", req)
}

// TransactionOrders lists transactions broadcast through the API, newest
// first. Without an explicit account the configured default is used.
func (w *Wallet) TransactionOrders(ctx context.Context, opts ...OrdersOption) (rest.Result, error) {
	cfg := ordersConfig{
		accountID: w.accountID,
		limit:     DEFAULT_ORDERS_LIMIT,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	params := types.Params{}
	utils.SetOption(params, "accountId", cfg.accountID)
	utils.SetOption(params, "address", cfg.address)
	utils.SetOption(params, "chainIndex", cfg.chainIndex)
	utils.SetOption(params, "cursor", cfg.cursor)
	params.Set("limit", cfg.limit)
	utils.SetOption(params, "orderId", cfg.orderID)
	utils.SetOption(params, "txStatus", cfg.txStatus)

	return w.get(ctx, "post-transaction/orders", params)
}

func txInfoRequest(
	chainIndex string,
	fromAddr string,
	toAddr string,
	opts []TxInfoOption,
) (TransactionInfoRequest, error) {
	if err := utils.Required(
		"chainIndex", chainIndex,
		"fromAddr", fromAddr,
		"toAddr", toAddr,
	); err != nil {
		return TransactionInfoRequest{}, err
	}

	cfg := txInfoConfig{txAmount: DEFAULT_TX_AMOUNT}
	for _, opt := range opts {
		opt(&cfg)
	}

	return TransactionInfoRequest{
		ChainIndex: chainIndex,
		FromAddr:   fromAddr,
		ToAddr:     toAddr,
		TxAmount:   cfg.txAmount,
		ExtJSON:    cfg.extJSON,
	}, nil
}

func (w *Wallet) get(ctx context.Context, endpoint string, params types.Params) (rest.Result, error) {
	return w.rest.Request(ctx, http.MethodGet, rest.Join(constants.WALLET_PATH, endpoint), params, nil)
}

func (w *Wallet) post(ctx context.Context, endpoint string, body any) (rest.Result, error) {
	return w.rest.Request(ctx, http.MethodPost, rest.Join(constants.WALLET_PATH, endpoint), nil, body)
}
