// Package dex wraps the DEX aggregator endpoints: supported chains, tokens,
// liquidity sources, quotes, approvals and swaps.
package dex

import (
	"context"
	"fmt"
	"net/http"

	"github.com/banky/go-okx-web3/constants"
	"github.com/banky/go-okx-web3/internal/utils"
	"github.com/banky/go-okx-web3/rest"
	"github.com/banky/go-okx-web3/types"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"
)

// Config for initializing the Dex client
type Config struct {
	Rest rest.ClientInterface
	// WalletAddress is used by Swap when no user wallet is given
	WalletAddress string
}

// Dex provides access to the aggregator via REST API
type Dex struct {
	rest          rest.ClientInterface
	walletAddress mo.Option[string]
}

// New creates a new Dex client
func New(cfg Config) *Dex {
	var walletAddress mo.Option[string]
	if cfg.WalletAddress != "" {
		walletAddress = mo.Some(cfg.WalletAddress)
	}

	return &Dex{
		rest:          cfg.Rest,
		walletAddress: walletAddress,
	}
}

// SupportedChains lists the chains available for single-chain swaps.
// An empty chainID lists all of them.
func (d *Dex) SupportedChains(ctx context.Context, chainID string) (rest.Result, error) {
	params := types.Params{}
	params.Set("chainId", chainID)

	return d.get(ctx, "supported/chain", params)
}

// AllTokens lists the tokens tradable on a chain.
func (d *Dex) AllTokens(ctx context.Context, chainID string) (rest.Result, error) {
	if err := utils.Required("chainId", chainID); err != nil {
		return rest.Result{}, err
	}

	return d.get(ctx, "all-tokens", types.Params{"chainId": chainID})
}

// Liquidity lists the liquidity sources on a chain.
func (d *Dex) Liquidity(ctx context.Context, chainID string) (rest.Result, error) {
	if err := utils.Required("chainId", chainID); err != nil {
		return rest.Result{}, err
	}

	return d.get(ctx, "get-liquidity", types.Params{"chainId": chainID})
}

// Quote gets the best route for swapping amount (in the smallest unit of
// the source token) of fromToken into toToken.
func (d *Dex) Quote(
	ctx context.Context,
	chainID string,
	amount string,
	fromToken string,
	toToken string,
	opts ...QuoteOption,
) (rest.Result, error) {
	if err := utils.Required(
		"chainId", chainID,
		"amount", amount,
		"fromTokenAddress", fromToken,
		"toTokenAddress", toToken,
	); err != nil {
		return rest.Result{}, err
	}

	var cfg quoteConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	params := types.Params{
		"chainId":          chainID,
		"amount":           amount,
		"fromTokenAddress": fromToken,
		"toTokenAddress":   toToken,
	}
	utils.SetOption(params, "dexIds", cfg.dexIds)
	utils.SetOption(params, "feePercent", cfg.feePercent)
	utils.SetOption(params, "priceImpactProtectionPercentage", cfg.priceImpactProtection)

	return d.get(ctx, "quote", params)
}

// ApproveTransaction returns the call data for approving the router to
// spend approveAmount of a token.
func (d *Dex) ApproveTransaction(
	ctx context.Context,
	chainID string,
	tokenAddress string,
	approveAmount string,
) (rest.Result, error) {
	if err := utils.Required(
		"chainId", chainID,
		"tokenContractAddress", tokenAddress,
		"approveAmount", approveAmount,
	); err != nil {
		return rest.Result{}, err
	}

	return d.get(ctx, "approve-transaction", types.Params{
		"chainId":              chainID,
		"tokenContractAddress": tokenAddress,
		"approveAmount":        approveAmount,
	})
}

// Swap returns the transaction data for a swap. An empty userWallet falls
// back to the wallet address from the credentials.
func (d *Dex) Swap(
	ctx context.Context,
	chainID string,
	amount string,
	fromToken string,
	toToken string,
	slippage string,
	userWallet string,
	opts ...SwapOption,
) (rest.Result, error) {
	if userWallet == "" {
		userWallet = d.walletAddress.OrEmpty()
	}
	if err := utils.Required(
		"chainId", chainID,
		"amount", amount,
		"fromTokenAddress", fromToken,
		"toTokenAddress", toToken,
		"slippage", slippage,
		"userWalletAddress", userWallet,
	); err != nil {
		return rest.Result{}, err
	}

	cfg := defaultSwapConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	params := types.Params{
		"chainId":           chainID,
		"amount":            amount,
		"fromTokenAddress":  fromToken,
		"toTokenAddress":    toToken,
		"slippage":          slippage,
		"userWalletAddress": userWallet,
	}
	utils.SetOption(params, "swapReceiverAddress", cfg.receiverAddress)
	utils.SetOption(params, "referrerAddress", cfg.referrerAddress)
	utils.SetOption(params, "dexIds", cfg.dexIds)
	utils.SetOption(params, "feePercent", cfg.feePercent)
	utils.SetOption(params, "gaslimit", cfg.gasLimit)
	params.Set("gasLevel", cfg.gasLevel)
	utils.SetOption(params, "priceImpactProtectionPercentage", cfg.priceImpactProtection)
	utils.SetOption(params, "autoSlippage", cfg.autoSlippage)
	utils.SetOption(params, "maxAutoSlippage", cfg.maxAutoSlippage)

	return d.get(ctx, "swap", params)
}

// BuyWithStablecoin quotes spending amount of the chain's default
// stablecoin on token. chain is a chain name or id from constants.Chains;
// token is an address or a symbol known to that chain.
func (d *Dex) BuyWithStablecoin(
	ctx context.Context,
	chain string,
	token string,
	amount string,
	opts ...QuoteOption,
) (rest.Result, error) {
	c, stable, token, err := stablecoinFor(chain, token)
	if err != nil {
		return rest.Result{}, err
	}

	return d.Quote(ctx, c.ID, amount, stable, token, opts...)
}

// SellForStablecoin quotes selling amount of token for the chain's default
// stablecoin.
func (d *Dex) SellForStablecoin(
	ctx context.Context,
	chain string,
	token string,
	amount string,
	opts ...QuoteOption,
) (rest.Result, error) {
	c, stable, token, err := stablecoinFor(chain, token)
	if err != nil {
		return rest.Result{}, err
	}

	return d.Quote(ctx, c.ID, amount, token, stable, opts...)
}

// ToMinimalUnits converts a human readable amount into the smallest unit of
// a token with the given number of decimals, as Quote and Swap expect.
func ToMinimalUnits(amount decimal.Decimal, decimals int32) (string, error) {
	return utils.ToMinimalUnits(amount, decimals)
}

// FromMinimalUnits is the inverse of ToMinimalUnits, for reading amounts such
// as toTokenAmount out of a quote.
func FromMinimalUnits(raw string, decimals int32) (decimal.Decimal, error) {
	return utils.FromMinimalUnits(raw, decimals)
}

// stablecoinFor resolves the chain, its stablecoin and the token address.
func stablecoinFor(chain string, token string) (constants.Chain, string, string, error) {
	c, ok := constants.LookupChain(chain)
	if !ok {
		return constants.Chain{}, "", "", fmt.Errorf("unknown chain: %s", chain)
	}

	stable, ok := c.StablecoinAddress()
	if !ok {
		return constants.Chain{}, "", "", fmt.Errorf("no stablecoin configured for chain: %s", c.Name)
	}

	if addr, ok := c.Token(token); ok {
		return c, stable, addr, nil
	}

	addr, err := constants.NormalizeAddress(c, token)
	if err != nil {
		return constants.Chain{}, "", "", err
	}

	return c, stable, addr, nil
}

func (d *Dex) get(ctx context.Context, endpoint string, params types.Params) (rest.Result, error) {
	return d.rest.Request(
		ctx,
		http.MethodGet,
		rest.Join(constants.DEX_AGGREGATOR_PATH, endpoint),
		params,
		nil,
	)
}
