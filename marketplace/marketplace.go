// Package marketplace wraps the NFT marketplace read endpoints:
// collections, assets and open orders.
package marketplace

import (
	"context"
	"net/http"

	"github.com/banky/go-okx-web3/constants"
	"github.com/banky/go-okx-web3/internal/utils"
	"github.com/banky/go-okx-web3/rest"
	"github.com/banky/go-okx-web3/types"
)

// Config for initializing the Marketplace client
type Config struct {
	Rest rest.ClientInterface
}

// Marketplace provides access to the NFT marketplace via REST API
type Marketplace struct {
	rest rest.ClientInterface
}

// New creates a new Marketplace client
func New(cfg Config) *Marketplace {
	return &Marketplace{rest: cfg.Rest}
}

// Collections lists collections, newest first.
func (m *Marketplace) Collections(ctx context.Context, opts ...PageOption) (rest.Result, error) {
	cfg := newPageConfig(opts)

	params := types.Params{}
	utils.SetOption(params, "chain", cfg.chain)
	utils.SetOption(params, "cursor", cfg.cursor)
	params.Set("limit", cfg.limit)

	return m.get(ctx, "collection/list", params)
}

// CollectionDetail returns one collection by its slug.
func (m *Marketplace) CollectionDetail(ctx context.Context, slug string) (rest.Result, error) {
	if err := utils.Required("slug", slug); err != nil {
		return rest.Result{}, err
	}

	return m.get(ctx, "collection/detail", types.Params{"slug": slug})
}

// AssetDetail returns a single token.
func (m *Marketplace) AssetDetail(
	ctx context.Context,
	chain string,
	contractAddress string,
	tokenID string,
) (rest.Result, error) {
	if err := utils.Required(
		"chain", chain,
		"contractAddress", contractAddress,
		"tokenId", tokenID,
	); err != nil {
		return rest.Result{}, err
	}

	return m.get(ctx, "asset/detail", types.Params{
		"chain":           chain,
		"contractAddress": contractAddress,
		"tokenId":         tokenID,
	})
}

// Listings returns the open sell orders of a collection.
func (m *Marketplace) Listings(
	ctx context.Context,
	chain string,
	collectionAddress string,
	opts ...PageOption,
) (rest.Result, error) {
	return m.orders(ctx, "markets/listings", chain, collectionAddress, opts)
}

// Offers returns the open buy orders of a collection.
func (m *Marketplace) Offers(
	ctx context.Context,
	chain string,
	collectionAddress string,
	opts ...PageOption,
) (rest.Result, error) {
	return m.orders(ctx, "markets/offers", chain, collectionAddress, opts)
}

func (m *Marketplace) orders(
	ctx context.Context,
	endpoint string,
	chain string,
	collectionAddress string,
	opts []PageOption,
) (rest.Result, error) {
	if err := utils.Required(
		"chain", chain,
		"collectionAddress", collectionAddress,
	); err != nil {
		return rest.Result{}, err
	}

	cfg := newPageConfig(opts)

	params := types.Params{
		"chain":             chain,
		"collectionAddress": collectionAddress,
	}
	utils.SetOption(params, "tokenId", cfg.tokenID)
	utils.SetOption(params, "maker", cfg.maker)
	utils.SetOption(params, "cursor", cfg.cursor)
	params.Set("limit", cfg.limit)

	return m.get(ctx, endpoint, params)
}

func (m *Marketplace) get(ctx context.Context, endpoint string, params types.Params) (rest.Result, error) {
	return m.rest.Request(ctx, http.MethodGet, rest.Join(constants.MARKETPLACE_PATH, endpoint), params, nil)
}
