package constants

import "fmt"

const MAINNET_API_URL = "https://www.okx.com"
const AWS_API_URL = "https://aws.okx.com"
const LOCAL_API_URL = "http://localhost:3001"

// ApiURL maps a network name (mainnet, aws, local) to its base URL.
func ApiURL(network string) (string, error) {
	switch network {
	case "", "mainnet":
		return MAINNET_API_URL, nil
	case "aws":
		return AWS_API_URL, nil
	case "local":
		return LOCAL_API_URL, nil
	default:
		return "", fmt.Errorf("unknown network: %s", network)
	}
}

// Service path prefixes. Each domain client owns one of these.
const (
	DEX_AGGREGATOR_PATH   = "/api/v5/dex/aggregator"
	WALLET_PATH           = "/api/v5/wallet"
	DEFI_EXPLORE_PATH     = "/api/v5/defi/explore"
	DEFI_CALCULATOR_PATH  = "/api/v5/defi/calculator"
	DEFI_TRANSACTION_PATH = "/api/v5/defi/transaction"
	DEFI_USER_PATH        = "/api/v5/defi/user"
	MARKETPLACE_PATH      = "/api/v5/mktplace/nft"
)

// Authentication headers attached to every signed request.
const (
	HEADER_CONTENT_TYPE = "Content-Type"
	HEADER_ACCESS_KEY   = "OK-ACCESS-KEY"
	HEADER_SIGN         = "OK-ACCESS-SIGN"
	HEADER_TIMESTAMP    = "OK-ACCESS-TIMESTAMP"
	HEADER_PASSPHRASE   = "OK-ACCESS-PASSPHRASE"
	HEADER_PROJECT      = "OK-ACCESS-PROJECT"

	CONTENT_TYPE_JSON = "application/json"
)

// TIMESTAMP_FORMAT is ISO-8601 UTC with millisecond precision. The server
// re-derives the signature from the header value verbatim.
const TIMESTAMP_FORMAT = "2006-01-02T15:04:05.000Z"

// Code used for transport failures in the normalized error record.
const TRANSPORT_ERROR_CODE = "500"

// SUCCESS_CODE is the business code the upstream returns inside a 200 body.
const SUCCESS_CODE = "0"
