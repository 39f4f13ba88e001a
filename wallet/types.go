package wallet

// TransactionInfoRequest is the body of the sign-info and gas-limit calls.
type TransactionInfoRequest struct {
	ChainIndex string         `json:"chainIndex"`
	FromAddr   string         `json:"fromAddr"`
	ToAddr     string         `json:"toAddr"`
	TxAmount   string         `json:"txAmount"`
	ExtJSON    map[string]any `json:"extJson,omitempty"`
}

// SuiObjectsRequest is the body of the sui-object call.
type SuiObjectsRequest struct {
	ChainIndex   string `json:"chainIndex"`
	Address      string `json:"address"`
	TokenAddress string `json:"tokenAddress"`
	Limit        string `json:"limit"`
	Cursor       string `json:"cursor,omitempty"`
}

// BroadcastRequest is the body of the broadcast-transaction call.
type BroadcastRequest struct {
	SignedTx             string `json:"signedTx"`
	ChainIndex           string `json:"chainIndex"`
	Address              string `json:"address"`
	AccountID            string `json:"accountId,omitempty"`
	BaseFee              string `json:"baseFee,omitempty"`
	PriorityFee          string `json:"priorityFee,omitempty"`
	RecentBlockHash      string `json:"recentBlockHash,omitempty"`
	LastValidBlockHeight string `json:"lastValidBlockHeight,omitempty"`
}
