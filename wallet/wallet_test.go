package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/banky/go-okx-web3/auth"
	"github.com/banky/go-okx-web3/rest"
	"github.com/banky/go-okx-web3/types"
	"github.com/maxatome/go-testdeep/td"
)

// Mock REST client for testing
type mockRestClient struct {
	requestFunc func(ctx context.Context, method string, path string, params types.Params, body any) (rest.Result, error)
}

var _ rest.ClientInterface = (*mockRestClient)(nil)

func (m *mockRestClient) Request(ctx context.Context, method string, path string, params types.Params, body any) (rest.Result, error) {
	return m.requestFunc(ctx, method, path, params, body)
}

type recordedCall struct {
	method string
	path   string
	params types.Params
	body   string
}

func recordingWallet(t *testing.T, accountID string) (*Wallet, *[]recordedCall) {
	calls := &[]recordedCall{}
	mock := &mockRestClient{
		requestFunc: func(ctx context.Context, method string, path string, params types.Params, body any) (rest.Result, error) {
			encoded, err := auth.EncodeBody(body)
			if err != nil {
				t.Fatalf("unexpected body encoding error: %v", err)
			}
			*calls = append(*calls, recordedCall{method: method, path: path, params: params, body: string(encoded)})
			return rest.Result{Body: json.RawMessage(`{"code":"0","data":[]}`)}, nil
		},
	}
	return New(Config{Rest: mock, AccountID: accountID}), calls
}

func TestSignInfoDefaultsTxAmount(t *testing.T) {
	w, calls := recordingWallet(t, "")

	_, err := w.SignInfo(context.Background(), "1", "0xfrom", "0xto")
	td.CmpNoError(t, err)

	td.Cmp(t, *calls, []recordedCall{{
		method: http.MethodPost,
		path:   "/api/v5/wallet/pre-transaction/sign-info",
		body:   `{"chainIndex":"1","fromAddr":"0xfrom","toAddr":"0xto","txAmount":"0"}`,
	}})
}

func TestGasLimitWithExtJSON(t *testing.T) {
	w, calls := recordingWallet(t, "")

	_, err := w.GasLimit(
		context.Background(),
		"1", "0xfrom", "0xto",
		WithTxAmount("1000"),
		WithExtJSON(map[string]any{"inputData": "0x"}),
	)
	td.CmpNoError(t, err)

	td.Cmp(t, (*calls)[0].path, "/api/v5/wallet/pre-transaction/gas-limit")
	td.Cmp(t, (*calls)[0].body, `{"chainIndex":"1","fromAddr":"0xfrom","toAddr":"0xto","txAmount":"1000","extJson":{"inputData":"0x"}}`)
}

func TestSignInfoRequiresAddresses(t *testing.T) {
	w, calls := recordingWallet(t, "")

	_, err := w.SignInfo(context.Background(), "1", "", "")
	td.CmpString(t, err, "missing required parameter(s): fromAddr, toAddr")
	td.CmpEmpty(t, *calls)
}

func TestGasPriceNonceAndValidateAddress(t *testing.T) {
	w, calls := recordingWallet(t, "")
	ctx := context.Background()

	_, err := w.GasPrice(ctx, "1")
	td.CmpNoError(t, err)
	_, err = w.Nonce(ctx, "1", "0xabc")
	td.CmpNoError(t, err)
	_, err = w.ValidateAddress(ctx, "501", "So11111111111111111111111111111111111111112")
	td.CmpNoError(t, err)

	td.Cmp(t, *calls, []recordedCall{
		{
			method: http.MethodGet,
			path:   "/api/v5/wallet/pre-transaction/gas-price",
			params: types.Params{"chainIndex": "1"},
		},
		{
			method: http.MethodGet,
			path:   "/api/v5/wallet/pre-transaction/nonce",
			params: types.Params{"address": "0xabc", "chainIndex": "1"},
		},
		{
			method: http.MethodGet,
			path:   "/api/v5/wallet/pre-transaction/validate-address",
			params: types.Params{"address": "So11111111111111111111111111111111111111112", "chainIndex": "501"},
		},
	})
}

func TestSuiObjects(t *testing.T) {
	w, calls := recordingWallet(t, "")
	ctx := context.Background()

	_, err := w.SuiObjects(ctx, "784", "0xowner", "0x2::sui::SUI")
	td.CmpNoError(t, err)
	_, err = w.SuiObjects(ctx, "784", "0xowner", "0x2::sui::SUI", WithSuiObjectsLimit("10"), WithSuiObjectsCursor("next"))
	td.CmpNoError(t, err)

	td.Cmp(t, (*calls)[0].path, "/api/v5/wallet/pre-transaction/sui-object")
	td.Cmp(t, (*calls)[0].body, `{"chainIndex":"784","address":"0xowner","tokenAddress":"0x2::sui::SUI","limit":"50"}`)
	td.Cmp(t, (*calls)[1].body, `{"chainIndex":"784","address":"0xowner","tokenAddress":"0x2::sui::SUI","limit":"10","cursor":"next"}`)
}

func TestBroadcastTransactionOmitsAbsentOptionals(t *testing.T) {
	w, calls := recordingWallet(t, "acct-default")

	_, err := w.BroadcastTransaction(context.Background(), "0xsigned", "1", "0xfrom")
	td.CmpNoError(t, err)

	td.Cmp(t, (*calls)[0].method, http.MethodPost)
	td.Cmp(t, (*calls)[0].path, "/api/v5/wallet/pre-transaction/broadcast-transaction")
	td.Cmp(t, (*calls)[0].body, `{"signedTx":"0xsigned","chainIndex":"1","address":"0xfrom"}`)
}

func TestBroadcastTransactionWithOptions(t *testing.T) {
	w, calls := recordingWallet(t, "")

	_, err := w.BroadcastTransaction(
		context.Background(),
		"base64tx", "501", "Sender111",
		WithBroadcastAccountID("acct-1"),
		WithBaseFee("5000"),
		WithPriorityFee("100"),
		WithRecentBlockHash("hash"),
		WithLastValidBlockHeight("12345"),
	)
	td.CmpNoError(t, err)

	td.CmpJSON(t, json.RawMessage((*calls)[0].body), `{
		"signedTx": "base64tx",
		"chainIndex": "501",
		"address": "Sender111",
		"accountId": "acct-1",
		"baseFee": "5000",
		"priorityFee": "100",
		"recentBlockHash": "hash",
		"lastValidBlockHeight": "12345"
	}`, nil)
}

func TestTransactionOrdersDefaults(t *testing.T) {
	w, calls := recordingWallet(t, "acct-default")

	_, err := w.TransactionOrders(context.Background())
	td.CmpNoError(t, err)

	td.Cmp(t, (*calls)[0], recordedCall{
		method: http.MethodGet,
		path:   "/api/v5/wallet/post-transaction/orders",
		params: types.Params{"accountId": "acct-default", "limit": "20"},
	})
}

func TestTransactionOrdersWithFilters(t *testing.T) {
	w, calls := recordingWallet(t, "")

	_, err := w.TransactionOrders(
		context.Background(),
		WithOrdersAccountID("acct-2"),
		WithOrdersAddress("0xabc"),
		WithOrdersChainIndex("1"),
		WithOrdersCursor("c1"),
		WithOrdersLimit("5"),
		WithOrdersOrderID("o1"),
		WithOrdersTxStatus("2"),
	)
	td.CmpNoError(t, err)

	td.Cmp(t, (*calls)[0].params, types.Params{
		"accountId":  "acct-2",
		"address":    "0xabc",
		"chainIndex": "1",
		"cursor":     "c1",
		"limit":      "5",
		"orderId":    "o1",
		"txStatus":   "2",
	})
}

func TestTransactionOrdersWithoutAccount(t *testing.T) {
	w, calls := recordingWallet(t, "")

	_, err := w.TransactionOrders(context.Background(), WithOrdersAddress("0xabc"))
	td.CmpNoError(t, err)
	td.CmpNot(t, (*calls)[0].params, td.ContainsKey("accountId"))
}

func TestTransactionOrdersEmptyFiltersAreOmitted(t *testing.T) {
	w, calls := recordingWallet(t, "acct-default")

	_, err := w.TransactionOrders(
		context.Background(),
		WithOrdersAccountID(""),
		WithOrdersAddress(""),
		WithOrdersCursor(""),
		WithOrdersTxStatus(""),
	)
	td.CmpNoError(t, err)
	td.Cmp(t, (*calls)[0].params, types.Params{"accountId": "acct-default", "limit": "20"})
}
