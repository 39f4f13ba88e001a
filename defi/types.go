package defi

// ProductListRequest is the body of the explore product/list call.
type ProductListRequest struct {
	Network            string       `json:"network"`
	SimplifyInvestType string       `json:"simplifyInvestType"`
	Limit              string       `json:"limit"`
	PoolVersion        string       `json:"poolVersion,omitempty"`
	PlatformIDs        []string     `json:"platformIds,omitempty"`
	TokenIDs           []string     `json:"tokenIds,omitempty"`
	Sort               *ProductSort `json:"sort,omitempty"`
	Offset             string       `json:"offset,omitempty"`
}

// ProductSort orders the product list, e.g. by TVL or APY.
type ProductSort struct {
	Orders []SortOrder `json:"orders"`
}

type SortOrder struct {
	Direction string `json:"direction"`
	Property  string `json:"property"`
}

// TokenAmount is one entry of a user input or expected output list.
type TokenAmount struct {
	ChainID      string `json:"chainId"`
	CoinAmount   string `json:"coinAmount"`
	TokenAddress string `json:"tokenAddress"`
}

// CalculatorRequest is the body of the subscribe-info and redeem-info calls.
type CalculatorRequest struct {
	Address            string `json:"address"`
	InvestmentID       string `json:"investmentId"`
	InputTokenAmount   string `json:"inputTokenAmount,omitempty"`
	OutputTokenAmount  string `json:"outputTokenAmount,omitempty"`
	TokenAddress       string `json:"tokenAddress,omitempty"`
	IsSingle           bool   `json:"isSingle,omitempty"`
	InvestmentCategory string `json:"investmentCategory,omitempty"`
}

// TransactionRequest is shared by the subscription, redemption,
// authorization and bonus calls.
type TransactionRequest struct {
	Address          string        `json:"address"`
	InvestmentID     string        `json:"investmentId"`
	Type             string        `json:"type,omitempty"`
	UserInputList    []TokenAmount `json:"userInputList,omitempty"`
	ExpectOutputList []TokenAmount `json:"expectOutputList,omitempty"`
	Extra            string        `json:"extra,omitempty"`
}

// WalletAddress pairs a chain with an address to look positions up for.
type WalletAddress struct {
	ChainID       string `json:"chainId"`
	WalletAddress string `json:"walletAddress"`
}

type PlatformListRequest struct {
	WalletAddressList []WalletAddress `json:"walletAddressList"`
}

type PlatformDetailRequest struct {
	WalletAddressList []WalletAddress `json:"walletAddressList"`
	PlatformList      []PlatformRef   `json:"platformList"`
}

type PlatformRef struct {
	AnalysisPlatformID string `json:"analysisPlatformId"`
}
