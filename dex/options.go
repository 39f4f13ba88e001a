package dex

import (
	"github.com/banky/go-okx-web3/internal/utils"
	"github.com/samber/mo"
)

/*//////////////////////////////////////////////////////////////
                             QUOTE
//////////////////////////////////////////////////////////////*/

// QuoteOption is a functional option for Quote
type QuoteOption func(*quoteConfig)

type quoteConfig struct {
	dexIds                mo.Option[string]
	feePercent            mo.Option[string]
	priceImpactProtection mo.Option[string]
}

// WithQuoteDexIDs restricts the quote to the given liquidity sources
func WithQuoteDexIDs(ids ...string) QuoteOption {
	return func(cfg *quoteConfig) {
		if len(ids) > 0 {
			cfg.dexIds = utils.NonEmpty(utils.JoinList(ids))
		}
	}
}

// WithQuoteFeePercent sets the referrer fee percentage
func WithQuoteFeePercent(percent string) QuoteOption {
	return func(cfg *quoteConfig) {
		cfg.feePercent = utils.NonEmpty(percent)
	}
}

// WithQuotePriceImpactProtection sets the maximum allowed price impact,
// as a percentage
func WithQuotePriceImpactProtection(percent string) QuoteOption {
	return func(cfg *quoteConfig) {
		cfg.priceImpactProtection = utils.NonEmpty(percent)
	}
}

/*//////////////////////////////////////////////////////////////
                              SWAP
//////////////////////////////////////////////////////////////*/

// DEFAULT_GAS_LEVEL is the gas price level used when none is given
const DEFAULT_GAS_LEVEL = "average"

// SwapOption is a functional option for Swap
type SwapOption func(*swapConfig)

type swapConfig struct {
	receiverAddress       mo.Option[string]
	referrerAddress       mo.Option[string]
	dexIds                mo.Option[string]
	feePercent            mo.Option[string]
	gasLimit              mo.Option[string]
	gasLevel              string
	priceImpactProtection mo.Option[string]
	autoSlippage          mo.Option[string]
	maxAutoSlippage       mo.Option[string]
}

func defaultSwapConfig() swapConfig {
	return swapConfig{gasLevel: DEFAULT_GAS_LEVEL}
}

// WithSwapReceiverAddress sends the bought tokens to another address
func WithSwapReceiverAddress(addr string) SwapOption {
	return func(cfg *swapConfig) {
		cfg.receiverAddress = utils.NonEmpty(addr)
	}
}

// WithSwapReferrerAddress sets the address receiving the referrer fee
func WithSwapReferrerAddress(addr string) SwapOption {
	return func(cfg *swapConfig) {
		cfg.referrerAddress = utils.NonEmpty(addr)
	}
}

// WithSwapDexIDs restricts routing to the given liquidity sources
func WithSwapDexIDs(ids ...string) SwapOption {
	return func(cfg *swapConfig) {
		if len(ids) > 0 {
			cfg.dexIds = utils.NonEmpty(utils.JoinList(ids))
		}
	}
}

// WithSwapFeePercent sets the referrer fee percentage
func WithSwapFeePercent(percent string) SwapOption {
	return func(cfg *swapConfig) {
		cfg.feePercent = utils.NonEmpty(percent)
	}
}

// WithSwapGasLimit overrides the estimated gas limit
func WithSwapGasLimit(limit string) SwapOption {
	return func(cfg *swapConfig) {
		cfg.gasLimit = utils.NonEmpty(limit)
	}
}

// WithSwapGasLevel sets the gas price level (slow, average, fast).
// An empty level omits the parameter.
func WithSwapGasLevel(level string) SwapOption {
	return func(cfg *swapConfig) {
		cfg.gasLevel = level
	}
}

func WithSwapPriceImpactProtection(percent string) SwapOption {
	return func(cfg *swapConfig) {
		cfg.priceImpactProtection = utils.NonEmpty(percent)
	}
}

// WithSwapAutoSlippage lets the aggregator pick the slippage
func WithSwapAutoSlippage(enabled string) SwapOption {
	return func(cfg *swapConfig) {
		cfg.autoSlippage = utils.NonEmpty(enabled)
	}
}

// WithSwapMaxAutoSlippage caps the slippage chosen by auto slippage
func WithSwapMaxAutoSlippage(percent string) SwapOption {
	return func(cfg *swapConfig) {
		cfg.maxAutoSlippage = utils.NonEmpty(percent)
	}
}
