package marketplace

import (
	"github.com/banky/go-okx-web3/internal/utils"
	"github.com/samber/mo"
)

const DEFAULT_PAGE_LIMIT = "50"

// PageOption is a functional option for the paginated listing calls
type PageOption func(*pageConfig)

type pageConfig struct {
	chain   mo.Option[string]
	cursor  mo.Option[string]
	limit   string
	tokenID mo.Option[string]
	maker   mo.Option[string]
}

func newPageConfig(opts []PageOption) pageConfig {
	cfg := pageConfig{limit: DEFAULT_PAGE_LIMIT}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithChain filters collections by chain name, e.g. "eth" or "polygon"
func WithChain(chain string) PageOption {
	return func(cfg *pageConfig) {
		cfg.chain = utils.NonEmpty(chain)
	}
}

// WithCursor continues from the cursor returned by the previous page
func WithCursor(cursor string) PageOption {
	return func(cfg *pageConfig) {
		cfg.cursor = utils.NonEmpty(cursor)
	}
}

func WithLimit(limit string) PageOption {
	return func(cfg *pageConfig) {
		cfg.limit = limit
	}
}

// WithTokenID narrows listings and offers to one token of the collection
func WithTokenID(tokenID string) PageOption {
	return func(cfg *pageConfig) {
		cfg.tokenID = utils.NonEmpty(tokenID)
	}
}

// WithMaker narrows listings and offers to one maker address
func WithMaker(maker string) PageOption {
	return func(cfg *pageConfig) {
		cfg.maker = utils.NonEmpty(maker)
	}
}
