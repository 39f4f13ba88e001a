package defi

import (
	"context"

	"github.com/banky/go-okx-web3/internal/utils"
	"github.com/banky/go-okx-web3/rest"
	"github.com/banky/go-okx-web3/types"
)

// Explore lists protocols, tokens, networks and investment products.
type Explore struct {
	service
}

// ProtocolList lists supported protocols, optionally filtered by platform.
func (e *Explore) ProtocolList(ctx context.Context, opts ...ProtocolListOption) (rest.Result, error) {
	var cfg protocolListConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	params := types.Params{}
	utils.SetOption(params, "platformId", cfg.platformID)
	utils.SetOption(params, "platformName", cfg.platformName)

	return e.get(ctx, "protocol/list", params)
}

// TokenList lists tokens that can be invested.
func (e *Explore) TokenList(ctx context.Context, opts ...TokenListOption) (rest.Result, error) {
	var cfg tokenListConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	params := types.Params{}
	utils.SetOption(params, "tokenAddress", cfg.tokenAddress)
	utils.SetOption(params, "chainId", cfg.chainID)

	return e.get(ctx, "token/list", params)
}

// ProductList searches investment products on a network.
// simplifyInvestType is the product family, e.g. "100" for stablecoin
// products or "101" for single token ones.
func (e *Explore) ProductList(
	ctx context.Context,
	network string,
	simplifyInvestType string,
	opts ...ProductListOption,
) (rest.Result, error) {
	if err := utils.Required(
		"network", network,
		"simplifyInvestType", simplifyInvestType,
	); err != nil {
		return rest.Result{}, err
	}

	req := ProductListRequest{
		Network:            network,
		SimplifyInvestType: simplifyInvestType,
		Limit:              DEFAULT_PRODUCT_LIMIT,
	}
	for _, opt := range opts {
		opt(&req)
	}

	return e.post(ctx, "product/list", req)
}

// ProductDetail returns one investment product. An empty
// investmentCategory is omitted.
func (e *Explore) ProductDetail(
	ctx context.Context,
	investmentID string,
	investmentCategory string,
) (rest.Result, error) {
	if err := utils.Required("investmentId", investmentID); err != nil {
		return rest.Result{}, err
	}

	params := types.Params{"investmentId": investmentID}
	params.Set("investmentCategory", investmentCategory)

	return e.get(ctx, "product/detail", params)
}

// NetworkList lists the networks DeFi products are available on.
func (e *Explore) NetworkList(ctx context.Context, opts ...NetworkListOption) (rest.Result, error) {
	var cfg networkListConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	params := types.Params{}
	utils.SetOption(params, "network", cfg.network)
	utils.SetOption(params, "chainId", cfg.chainID)

	return e.get(ctx, "network-list", params)
}
