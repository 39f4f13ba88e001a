// Command okxweb3 runs a single API call and prints the JSON result.
//
//	okxweb3 -env .env -chain 1 gas-price
//	okxweb3 -creds creds.yaml -chain 501 -amount 1000000 -from <mint> -to <mint> quote
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/banky/go-okx-web3/constants"
	"github.com/banky/go-okx-web3/internal/logging"
	"github.com/banky/go-okx-web3/okx"
	"github.com/banky/go-okx-web3/rest"
)

type options struct {
	chain   string
	amount  string
	from    string
	to      string
	address string
}

func main() {
	var (
		envFile  = flag.String("env", "", "dotenv file with OKX_* credentials")
		credFile = flag.String("creds", "", "JSON or YAML credentials file")
		baseURL  = flag.String("base-url", getEnv("OKX_BASE_URL", ""), "API base URL, overrides -network")
		network  = flag.String("network", getEnv("OKX_NETWORK", "mainnet"), "mainnet, aws or local")
		timeout  = flag.Duration("timeout", 15*time.Second, "request timeout")
		level    = flag.String("log-level", getEnv("LOG_LEVEL", "info"), "log level")
		opts     options
	)
	flag.StringVar(&opts.chain, "chain", "1", "chain id")
	flag.StringVar(&opts.amount, "amount", "", "amount in the token's smallest unit")
	flag.StringVar(&opts.from, "from", "", "source token address")
	flag.StringVar(&opts.to, "to", "", "destination token address")
	flag.StringVar(&opts.address, "address", "", "wallet address")
	flag.Usage = usage
	flag.Parse()

	logger := logging.NewLogger(*level)

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	op := flag.Arg(0)

	if *baseURL == "" {
		url, err := constants.ApiURL(*network)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid -network")
		}
		*baseURL = url
	}

	cfg := okx.Config{
		BaseURL: *baseURL,
		Timeout: *timeout,
		Logger:  &logger,
	}

	var (
		client *okx.Client
		err    error
	)
	switch {
	case *credFile != "":
		client, err = okx.NewFromFile(*credFile, cfg)
	case *envFile != "":
		client, err = okx.NewFromEnv(cfg, *envFile)
	default:
		client, err = okx.NewFromEnv(cfg)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create client")
	}

	result, err := run(context.Background(), client, op, opts)
	if err != nil {
		logger.Fatal().Err(err).Str("op", op).Msg("request failed")
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to encode result")
	}
	fmt.Println(string(out))

	if !result.OK() {
		os.Exit(1)
	}
}

func run(ctx context.Context, client *okx.Client, op string, opts options) (rest.Result, error) {
	switch op {
	case "chains":
		return client.Dex.SupportedChains(ctx, "")
	case "tokens":
		return client.Dex.AllTokens(ctx, opts.chain)
	case "liquidity":
		return client.Dex.Liquidity(ctx, opts.chain)
	case "quote":
		return client.Dex.Quote(ctx, opts.chain, opts.amount, opts.from, opts.to)
	case "gas-price":
		return client.Wallet.GasPrice(ctx, opts.chain)
	case "nonce":
		return client.Wallet.Nonce(ctx, opts.chain, opts.address)
	case "validate-address":
		return client.Wallet.ValidateAddress(ctx, opts.chain, opts.address)
	case "orders":
		return client.Wallet.TransactionOrders(ctx)
	case "defi-networks":
		return client.Defi.Explore.NetworkList(ctx)
	case "collections":
		return client.Marketplace.Collections(ctx)
	default:
		return rest.Result{}, fmt.Errorf("unknown operation: %s", op)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <operation>\n\n", os.Args[0])
	fmt.Fprintln(flag.CommandLine.Output(), "operations: chains, tokens, liquidity, quote, gas-price, nonce,")
	fmt.Fprintln(flag.CommandLine.Output(), "            validate-address, orders, defi-networks, collections")
	fmt.Fprintln(flag.CommandLine.Output())
	flag.PrintDefaults()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
