package constants

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"
)

// NATIVE_TOKEN_ADDRESS is the placeholder the aggregator uses for the native
// coin of EVM chains.
const NATIVE_TOKEN_ADDRESS = "0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE"

const SOLANA_CHAIN_ID = "501"

// Chain describes a chain the aggregator supports and a few well-known token
// addresses on it.
type Chain struct {
	Name       string
	ID         string
	Stablecoin string
	Tokens     map[string]string
}

// Token returns the address of the token with the given symbol.
func (c Chain) Token(symbol string) (string, bool) {
	addr, ok := c.Tokens[strings.ToUpper(symbol)]
	return addr, ok
}

// StablecoinAddress returns the address of the chain's default stablecoin.
func (c Chain) StablecoinAddress() (string, bool) {
	return c.Token(c.Stablecoin)
}

// IsSolana reports whether addresses on the chain are base58 public keys.
func (c Chain) IsSolana() bool {
	return c.ID == SOLANA_CHAIN_ID
}

var Chains = map[string]Chain{
	"solana": {
		Name:       "Solana",
		ID:         SOLANA_CHAIN_ID,
		Stablecoin: "USDT",
		Tokens: map[string]string{
			"USDT":  "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB",
			"USDC":  "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
			"BTC":   "9n4nbM75f5Ui33ZbPYXn59EwSgE8CGsHtAeTH5YFeJ9E",
			"ETH":   "7vfCXTUXx5WJV5JADk17DUJ4ksgau7utNKj4b963voxs",
			"SOL":   "So11111111111111111111111111111111111111112",
			"BONK":  "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263",
			"RAY":   "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R",
			"MATIC": "Gz7VkD4MacbEB6yC5XD3HcumEiYx2EtDYYrfikGsvopG",
		},
	},
	"ethereum": {
		Name:       "Ethereum",
		ID:         "1",
		Stablecoin: "USDT",
		Tokens: map[string]string{
			"ETH":   NATIVE_TOKEN_ADDRESS,
			"WETH":  "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
			"USDT":  "0xdAC17F958D2ee523a2206206994597C13D831ec7",
			"USDC":  "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
			"WBTC":  "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599",
			"DAI":   "0x6B175474E89094C44Da98b954EedeAC495271d0F",
			"UNI":   "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984",
			"LINK":  "0x514910771AF9Ca656af840dff83E8264EcF986CA",
			"AAVE":  "0x7Fc66500c84A76Ad7e9c93437bFc5Ac33E2DDaE9",
			"MATIC": "0x7D1AfA7B718fb893dB30A3aBc0Cfc608AaCfeBB0",
		},
	},
	"bsc": {
		Name:       "BNB Chain",
		ID:         "56",
		Stablecoin: "USDT",
		Tokens: map[string]string{
			"BNB":  NATIVE_TOKEN_ADDRESS,
			"USDT": "0x55d398326f99059fF775485246999027B3197955",
			"USDC": "0x8AC76a51cc950d9822D68b83fE1Ad97B32Cd580d",
		},
	},
	"polygon": {
		Name:       "Polygon",
		ID:         "137",
		Stablecoin: "USDT",
		Tokens: map[string]string{
			"POL":  NATIVE_TOKEN_ADDRESS,
			"USDT": "0xc2132D05D31c914a87C6611C10748AEb04B58e8F",
			"USDC": "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359",
		},
	},
	"arbitrum": {
		Name:       "Arbitrum One",
		ID:         "42161",
		Stablecoin: "USDT",
		Tokens: map[string]string{
			"ETH":  NATIVE_TOKEN_ADDRESS,
			"USDT": "0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9",
			"USDC": "0xaf88d065e77c8cC2239327C5EDb3A432268e5831",
		},
	},
	"base": {
		Name:       "Base",
		ID:         "8453",
		Stablecoin: "USDC",
		Tokens: map[string]string{
			"ETH":  NATIVE_TOKEN_ADDRESS,
			"USDC": "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
		},
	},
}

// LookupChain finds a chain by case-insensitive name or by chain id.
func LookupChain(nameOrID string) (Chain, bool) {
	if c, ok := Chains[strings.ToLower(nameOrID)]; ok {
		return c, true
	}
	for _, c := range Chains {
		if c.ID == nameOrID {
			return c, true
		}
	}
	return Chain{}, false
}

// ValidateAddress checks that addr is well formed for the chain: a base58
// public key on Solana, a hex address everywhere else.
func ValidateAddress(chain Chain, addr string) error {
	if chain.IsSolana() {
		if _, err := solana.PublicKeyFromBase58(addr); err != nil {
			return fmt.Errorf("invalid %s address %q: %w", chain.Name, addr, err)
		}
		return nil
	}

	if !common.IsHexAddress(addr) {
		return fmt.Errorf("invalid %s address %q", chain.Name, addr)
	}
	return nil
}

// NormalizeAddress returns the canonical form of addr: EIP-55 checksum for
// EVM chains, unchanged for Solana.
func NormalizeAddress(chain Chain, addr string) (string, error) {
	if err := ValidateAddress(chain, addr); err != nil {
		return "", err
	}
	if chain.IsSolana() {
		return addr, nil
	}
	return common.HexToAddress(addr).Hex(), nil
}
