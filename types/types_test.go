package types

import (
	"encoding/json"
	"testing"

	"github.com/banky/go-okx-web3/constants"
	"github.com/maxatome/go-testdeep/td"
	"github.com/shopspring/decimal"
)

func TestParamsCanonical(t *testing.T) {
	params := Params{"toTokenAddress": "0xb", "amount": "10", "chainId": "1"}
	td.Cmp(t, params.Keys(), []string{"amount", "chainId", "toTokenAddress"})
	td.Cmp(t, params.Canonical(), "amount=10&chainId=1&toTokenAddress=0xb")

	td.Cmp(t, Params{}.Canonical(), "")
	td.Cmp(t, Params{"q": "a b&c"}.Canonical(), "q=a b&c")
}

func TestParamsSetIgnoresEmpty(t *testing.T) {
	params := Params{}
	params.Set("a", "1")
	params.Set("b", "")
	td.Cmp(t, params, Params{"a": "1"})
}

func TestDecimalStringUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "string", input: `"1.25"`, expected: "1.25"},
		{name: "number", input: `0.000001`, expected: "0.000001"},
		{name: "large integer string", input: `"123456789012345678901234567890"`, expected: "123456789012345678901234567890"},
		{name: "empty string", input: `""`, expected: "0"},
		{name: "null", input: `null`, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DecimalString
			td.Require(t).CmpNoError(json.Unmarshal([]byte(tt.input), &d))
			td.CmpTrue(t, d.Raw().Equal(decimal.RequireFromString(tt.expected)), "got %s", d.String())
		})
	}

	var d DecimalString
	td.CmpError(t, json.Unmarshal([]byte(`"abc"`), &d))
	td.CmpError(t, json.Unmarshal([]byte(`true`), &d))
}

func TestDecimalStringMarshalsAsString(t *testing.T) {
	out, err := json.Marshal(struct {
		Price DecimalString `json:"price"`
	}{Price: DecimalString{decimal.RequireFromString("1.50")}})
	td.Require(t).CmpNoError(err)
	td.Cmp(t, string(out), `{"price":"1.5"}`)
}

func TestEnvelope(t *testing.T) {
	var env Envelope
	td.Require(t).CmpNoError(json.Unmarshal([]byte(`{"code":"0","msg":"","data":[{"chainId":"1"}]}`), &env))
	td.CmpTrue(t, env.IsOK())

	var data []struct {
		ChainID string `json:"chainId"`
	}
	td.Require(t).CmpNoError(env.DecodeData(&data))
	td.Cmp(t, data[0].ChainID, "1")

	var numeric Envelope
	td.Require(t).CmpNoError(json.Unmarshal([]byte(`{"code":51000,"msg":"Parameter error"}`), &numeric))
	td.CmpFalse(t, numeric.IsOK())
	td.CmpString(t, numeric.DecodeData(&data), "response has no data (code 51000): Parameter error")

	var zero Envelope
	td.Require(t).CmpNoError(json.Unmarshal([]byte(`{"code":0,"msg":""}`), &zero))
	td.CmpTrue(t, zero.IsOK())
	td.Cmp(t, zero.Code.String(), constants.SUCCESS_CODE)
}
