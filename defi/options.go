package defi

import (
	"github.com/banky/go-okx-web3/internal/utils"
	"github.com/samber/mo"
)

/*//////////////////////////////////////////////////////////////
                            EXPLORE
//////////////////////////////////////////////////////////////*/

// ProtocolListOption is a functional option for ProtocolList
type ProtocolListOption func(*protocolListConfig)

type protocolListConfig struct {
	platformID   mo.Option[string]
	platformName mo.Option[string]
}

func WithPlatformID(id string) ProtocolListOption {
	return func(cfg *protocolListConfig) {
		cfg.platformID = utils.NonEmpty(id)
	}
}

func WithPlatformName(name string) ProtocolListOption {
	return func(cfg *protocolListConfig) {
		cfg.platformName = utils.NonEmpty(name)
	}
}

// TokenListOption is a functional option for TokenList
type TokenListOption func(*tokenListConfig)

type tokenListConfig struct {
	tokenAddress mo.Option[string]
	chainID      mo.Option[string]
}

func WithTokenAddress(address string) TokenListOption {
	return func(cfg *tokenListConfig) {
		cfg.tokenAddress = utils.NonEmpty(address)
	}
}

func WithTokenChainID(chainID string) TokenListOption {
	return func(cfg *tokenListConfig) {
		cfg.chainID = utils.NonEmpty(chainID)
	}
}

const DEFAULT_PRODUCT_LIMIT = "20"

// ProductListOption is a functional option for ProductList
type ProductListOption func(*ProductListRequest)

func WithPoolVersion(version string) ProductListOption {
	return func(req *ProductListRequest) {
		req.PoolVersion = version
	}
}

func WithPlatformIDs(ids ...string) ProductListOption {
	return func(req *ProductListRequest) {
		req.PlatformIDs = ids
	}
}

func WithTokenIDs(ids ...string) ProductListOption {
	return func(req *ProductListRequest) {
		req.TokenIDs = ids
	}
}

// WithSort orders the results. Orders are applied in the given sequence.
func WithSort(orders ...SortOrder) ProductListOption {
	return func(req *ProductListRequest) {
		if len(orders) > 0 {
			req.Sort = &ProductSort{Orders: orders}
		}
	}
}

func WithOffset(offset string) ProductListOption {
	return func(req *ProductListRequest) {
		req.Offset = offset
	}
}

func WithProductLimit(limit string) ProductListOption {
	return func(req *ProductListRequest) {
		req.Limit = limit
	}
}

// NetworkListOption is a functional option for NetworkList
type NetworkListOption func(*networkListConfig)

type networkListConfig struct {
	network mo.Option[string]
	chainID mo.Option[string]
}

func WithNetwork(network string) NetworkListOption {
	return func(cfg *networkListConfig) {
		cfg.network = utils.NonEmpty(network)
	}
}

func WithNetworkChainID(chainID string) NetworkListOption {
	return func(cfg *networkListConfig) {
		cfg.chainID = utils.NonEmpty(chainID)
	}
}

/*//////////////////////////////////////////////////////////////
                           CALCULATOR
//////////////////////////////////////////////////////////////*/

// CalculatorOption is a functional option for SubscribeInfo and RedeemInfo
type CalculatorOption func(*CalculatorRequest)

// WithCalculatorTokenAddress selects the token to enter or exit with
func WithCalculatorTokenAddress(address string) CalculatorOption {
	return func(req *CalculatorRequest) {
		req.TokenAddress = address
	}
}

// WithSingleToken requests a single token route for multi-token pools
func WithSingleToken() CalculatorOption {
	return func(req *CalculatorRequest) {
		req.IsSingle = true
	}
}

func WithCalculatorCategory(category string) CalculatorOption {
	return func(req *CalculatorRequest) {
		req.InvestmentCategory = category
	}
}

/*//////////////////////////////////////////////////////////////
                          TRANSACTION
//////////////////////////////////////////////////////////////*/

// TransactionOption is a functional option for the transaction calls
type TransactionOption func(*TransactionRequest)

// WithExpectOutput sets the minimum amounts the caller expects back
func WithExpectOutput(outputs ...TokenAmount) TransactionOption {
	return func(req *TransactionRequest) {
		req.ExpectOutputList = outputs
	}
}

// WithExtra passes the opaque extra field returned by the calculator
func WithExtra(extra string) TransactionOption {
	return func(req *TransactionRequest) {
		req.Extra = extra
	}
}
