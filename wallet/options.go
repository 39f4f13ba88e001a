package wallet

import (
	"github.com/banky/go-okx-web3/internal/utils"
	"github.com/samber/mo"
)

/*//////////////////////////////////////////////////////////////
                        TRANSACTION INFO
//////////////////////////////////////////////////////////////*/

// DEFAULT_TX_AMOUNT is sent when no transfer amount is given
const DEFAULT_TX_AMOUNT = "0"

// TxInfoOption is a functional option for SignInfo and GasLimit
type TxInfoOption func(*txInfoConfig)

type txInfoConfig struct {
	txAmount string
	extJSON  map[string]any
}

// WithTxAmount sets the amount transferred by the transaction
func WithTxAmount(amount string) TxInfoOption {
	return func(cfg *txInfoConfig) {
		cfg.txAmount = amount
	}
}

// WithExtJSON passes chain specific fields such as inputData
func WithExtJSON(ext map[string]any) TxInfoOption {
	return func(cfg *txInfoConfig) {
		cfg.extJSON = ext
	}
}

/*//////////////////////////////////////////////////////////////
                          SUI OBJECTS
//////////////////////////////////////////////////////////////*/

const DEFAULT_SUI_OBJECT_LIMIT = "50"

// SuiObjectsOption is a functional option for SuiObjects
type SuiObjectsOption func(*suiObjectsConfig)

type suiObjectsConfig struct {
	limit  string
	cursor mo.Option[string]
}

func WithSuiObjectsLimit(limit string) SuiObjectsOption {
	return func(cfg *suiObjectsConfig) {
		cfg.limit = limit
	}
}

// WithSuiObjectsCursor continues from a previous page
func WithSuiObjectsCursor(cursor string) SuiObjectsOption {
	return func(cfg *suiObjectsConfig) {
		cfg.cursor = utils.NonEmpty(cursor)
	}
}

/*//////////////////////////////////////////////////////////////
                           BROADCAST
//////////////////////////////////////////////////////////////*/

// BroadcastOption is a functional option for BroadcastTransaction
type BroadcastOption func(*BroadcastRequest)

// WithBaseFee sets the base fee for EVM chains
func WithBaseFee(fee string) BroadcastOption {
	return func(req *BroadcastRequest) {
		req.BaseFee = fee
	}
}

// WithPriorityFee sets the priority fee
func WithPriorityFee(fee string) BroadcastOption {
	return func(req *BroadcastRequest) {
		req.PriorityFee = fee
	}
}

// WithRecentBlockHash sets the block hash a Solana transaction was built on
func WithRecentBlockHash(hash string) BroadcastOption {
	return func(req *BroadcastRequest) {
		req.RecentBlockHash = hash
	}
}

func WithLastValidBlockHeight(height string) BroadcastOption {
	return func(req *BroadcastRequest) {
		req.LastValidBlockHeight = height
	}
}

// WithBroadcastAccountID attributes the transaction to an account
func WithBroadcastAccountID(accountID string) BroadcastOption {
	return func(req *BroadcastRequest) {
		req.AccountID = accountID
	}
}

/*//////////////////////////////////////////////////////////////
                       TRANSACTION ORDERS
//////////////////////////////////////////////////////////////*/

const DEFAULT_ORDERS_LIMIT = "20"

// OrdersOption is a functional option for TransactionOrders
type OrdersOption func(*ordersConfig)

type ordersConfig struct {
	accountID  mo.Option[string]
	address    mo.Option[string]
	chainIndex mo.Option[string]
	cursor     mo.Option[string]
	limit      string
	orderID    mo.Option[string]
	txStatus   mo.Option[string]
}

// WithOrdersAccountID overrides the configured account. An empty id keeps
// the default.
func WithOrdersAccountID(accountID string) OrdersOption {
	return func(cfg *ordersConfig) {
		if id := utils.NonEmpty(accountID); id.IsPresent() {
			cfg.accountID = id
		}
	}
}

func WithOrdersAddress(address string) OrdersOption {
	return func(cfg *ordersConfig) {
		cfg.address = utils.NonEmpty(address)
	}
}

func WithOrdersChainIndex(chainIndex string) OrdersOption {
	return func(cfg *ordersConfig) {
		cfg.chainIndex = utils.NonEmpty(chainIndex)
	}
}

// WithOrdersCursor continues from a previous page
func WithOrdersCursor(cursor string) OrdersOption {
	return func(cfg *ordersConfig) {
		cfg.cursor = utils.NonEmpty(cursor)
	}
}

func WithOrdersLimit(limit string) OrdersOption {
	return func(cfg *ordersConfig) {
		cfg.limit = limit
	}
}

func WithOrdersOrderID(orderID string) OrdersOption {
	return func(cfg *ordersConfig) {
		cfg.orderID = utils.NonEmpty(orderID)
	}
}

// WithOrdersTxStatus filters by status: 1 pending, 2 success, 3 failed
func WithOrdersTxStatus(status string) OrdersOption {
	return func(cfg *ordersConfig) {
		cfg.txStatus = utils.NonEmpty(status)
	}
}
