package auth

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"
	"time"

	"github.com/banky/go-okx-web3/constants"
	"github.com/banky/go-okx-web3/types"
	"github.com/maxatome/go-testdeep/td"
	"github.com/rs/zerolog"
)

var testCreds = Credentials{
	AccessKey:  "test-access-key",
	SecretKey:  "test-secret-key",
	Passphrase: "test-passphrase",
	ProjectID:  "test-project",
}

func fixedClock(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}

func testSigner(t *testing.T, opts ...Option) *Signer {
	s, err := NewSigner(testCreds, opts...)
	td.Require(t).CmpNoError(err)
	return s
}

// independentSignature recomputes the signature without going through the
// package helpers.
func independentSignature(secret string, message string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestNewSignerRejectsIncompleteCredentials(t *testing.T) {
	_, err := NewSigner(Credentials{AccessKey: "k", SecretKey: "s"})
	td.CmpErrorIs(t, err, ErrMissingCredential)
}

func TestTimestampFormat(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{
			name:     "milliseconds are truncated, not rounded",
			at:       time.Date(2024, 1, 15, 10, 30, 0, 123_999_999, time.UTC),
			expected: "2024-01-15T10:30:00.123Z",
		},
		{
			name:     "zero milliseconds keep three digits",
			at:       time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			expected: "2024-01-15T10:30:00.000Z",
		},
		{
			name:     "non-UTC instant is converted",
			at:       time.Date(2024, 1, 15, 18, 30, 0, 5_000_000, time.FixedZone("UTC+8", 8*3600)),
			expected: "2024-01-15T10:30:00.005Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSigner(t, fixedClock(tt.at))
			td.Cmp(t, s.Timestamp(), tt.expected)
		})
	}
}

func TestPrehash(t *testing.T) {
	ts := "2024-01-15T10:30:00.123Z"

	tests := []struct {
		name     string
		method   string
		params   types.Params
		body     []byte
		expected string
	}{
		{
			name:     "get with params sorts keys",
			method:   "GET",
			params:   types.Params{"toTokenAddress": "0xb", "chainId": "1", "amount": "10"},
			expected: ts + "GET/api/v5/x?amount=10&chainId=1&toTokenAddress=0xb",
		},
		{
			name:     "get without params",
			method:   "GET",
			params:   types.Params{},
			expected: ts + "GET/api/v5/x",
		},
		{
			name:     "lowercase method is normalized",
			method:   "get",
			params:   types.Params{"a": "1"},
			expected: ts + "GET/api/v5/x?a=1",
		},
		{
			name:     "post appends body",
			method:   "POST",
			body:     []byte(`{"b":1,"a":2}`),
			expected: ts + `POST/api/v5/x{"b":1,"a":2}`,
		},
		{
			name:     "post ignores params",
			method:   "POST",
			params:   types.Params{"a": "1"},
			expected: ts + "POST/api/v5/x",
		},
		{
			name:     "get ignores body",
			method:   "GET",
			body:     []byte(`{"a":1}`),
			expected: ts + "GET/api/v5/x",
		},
		{
			name:     "values are not escaped",
			method:   "GET",
			params:   types.Params{"dexIds": "1,2", "q": "a b"},
			expected: ts + "GET/api/v5/x?dexIds=1,2&q=a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td.Cmp(t, Prehash(ts, tt.method, "/api/v5/x", tt.params, tt.body), tt.expected)
		})
	}
}

func TestSignIsInvariantUnderParamOrder(t *testing.T) {
	s := testSigner(t, fixedClock(time.Now()))

	ab := types.Params{}
	ab["a"] = "1"
	ab["b"] = "2"
	ba := types.Params{}
	ba["b"] = "2"
	ba["a"] = "1"

	ts := "2024-01-15T10:30:00.123Z"
	td.Cmp(t, s.SignAt("GET", "/p", ab, nil, ts), s.SignAt("GET", "/p", ba, nil, ts))
}

func TestSignChangesWithTimestamp(t *testing.T) {
	s := testSigner(t)
	params := types.Params{"chainIndex": "1"}
	body := []byte(`{"chainIndex":"1"}`)

	for _, method := range []string{"GET", "POST"} {
		first := s.SignAt(method, "/p", params, body, "2024-01-15T10:30:00.123Z")
		second := s.SignAt(method, "/p", params, body, "2024-01-15T10:30:00.124Z")
		td.CmpNot(t, first, second, "method %s", method)
	}
}

func TestSignUsesCurrentTimestamp(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 30, 0, 123_000_000, time.UTC)
	s := testSigner(t, fixedClock(at))

	sig, ts, err := s.Sign("GET", "/api/v5/wallet/pre-transaction/nonce", types.Params{"chainIndex": "1", "address": "0xabc"}, nil)
	td.Require(t).CmpNoError(err)
	td.Cmp(t, ts, "2024-01-15T10:30:00.123Z")

	message := "2024-01-15T10:30:00.123ZGET/api/v5/wallet/pre-transaction/nonce?address=0xabc&chainIndex=1"
	td.Cmp(t, sig, independentSignature("test-secret-key", message))
}

func TestSignIgnoresBodyForGet(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 30, 0, 123_000_000, time.UTC)
	s := testSigner(t, fixedClock(at))
	params := types.Params{"chainIndex": "1"}

	sig, ts, err := s.Sign("get", "/p", params, map[string]any{"ch": make(chan int)})
	td.Require(t).CmpNoError(err)
	td.Cmp(t, sig, independentSignature("test-secret-key", ts+"GET/p?chainIndex=1"))

	_, _, err = s.Sign("POST", "/p", nil, map[string]any{"ch": make(chan int)})
	td.CmpError(t, err)
}

func TestHeadersRoundTrip(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 30, 0, 123_000_000, time.UTC)
	s := testSigner(t, fixedClock(at))

	type body struct {
		ChainIndex string `json:"chainIndex"`
		FromAddr   string `json:"fromAddr"`
		ToAddr     string `json:"toAddr"`
		TxAmount   string `json:"txAmount"`
	}

	signed, err := s.Headers("post", "/api/v5/wallet/pre-transaction/sign-info", nil, body{
		ChainIndex: "1",
		FromAddr:   "0xfrom",
		ToAddr:     "0xto",
		TxAmount:   "0",
	})
	td.Require(t).CmpNoError(err)

	expectedBody := `{"chainIndex":"1","fromAddr":"0xfrom","toAddr":"0xto","txAmount":"0"}`
	td.Cmp(t, string(signed.Body), expectedBody)
	td.Cmp(t, signed.Method, "POST")

	message := signed.Timestamp + "POST/api/v5/wallet/pre-transaction/sign-info" + expectedBody
	td.Cmp(t, signed.Signature, independentSignature("test-secret-key", message))

	td.Cmp(t, signed.Headers.Get(constants.HEADER_CONTENT_TYPE), "application/json")
	td.Cmp(t, signed.Headers.Get(constants.HEADER_ACCESS_KEY), "test-access-key")
	td.Cmp(t, signed.Headers.Get(constants.HEADER_SIGN), signed.Signature)
	td.Cmp(t, signed.Headers.Get(constants.HEADER_TIMESTAMP), "2024-01-15T10:30:00.123Z")
	td.Cmp(t, signed.Headers.Get(constants.HEADER_PASSPHRASE), "test-passphrase")
	td.Cmp(t, signed.Headers.Get(constants.HEADER_PROJECT), "test-project")
	td.Cmp(t, len(signed.Headers), 6)
}

func TestHeadersGetCarriesCanonicalQuery(t *testing.T) {
	s := testSigner(t)

	signed, err := s.Headers("GET", "/p", types.Params{"b": "2", "a": "1"}, map[string]any{"ignored": true})
	td.Require(t).CmpNoError(err)
	td.Cmp(t, signed.Query, "a=1&b=2")
	td.CmpNil(t, signed.Body)
}

func TestHeadersPropagatesEncodingError(t *testing.T) {
	s := testSigner(t)

	_, err := s.Headers("POST", "/p", nil, map[string]any{"ch": make(chan int)})
	td.CmpError(t, err)
	td.CmpContains(t, err.Error(), "encode request body")
}

func TestEncodeBody(t *testing.T) {
	type ordered struct {
		Zeta  string   `json:"zeta"`
		Alpha string   `json:"alpha"`
		List  []string `json:"list,omitempty"`
	}

	tests := []struct {
		name     string
		body     any
		expected []byte
	}{
		{name: "nil", body: nil, expected: nil},
		{name: "typed nil pointer", body: (*ordered)(nil), expected: nil},
		{name: "raw bytes untouched", body: []byte(`{"a": 1}`), expected: []byte(`{"a": 1}`)},
		{name: "struct keeps field order", body: ordered{Zeta: "z", Alpha: "a"}, expected: []byte(`{"zeta":"z","alpha":"a"}`)},
		{name: "no html escaping", body: map[string]string{"q": "<a&b>"}, expected: []byte(`{"q":"<a&b>"}`)},
		{name: "empty map is still a body", body: map[string]string{}, expected: []byte(`{}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeBody(tt.body)
			td.Require(t).CmpNoError(err)
			td.CmpTrue(t, bytes.Equal(got, tt.expected), "got %q", got)
		})
	}
}

func TestSigningNeverLogsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	s := testSigner(t, WithLogger(logger))

	signed, err := s.Headers("POST", "/p", nil, map[string]string{"signedTx": "0xabc"})
	td.Require(t).CmpNoError(err)

	out := buf.String()
	td.CmpContains(t, out, "signed request")
	td.CmpNot(t, out, td.Contains("test-secret-key"))
	td.CmpNot(t, out, td.Contains(signed.Signature))
	td.CmpNot(t, out, td.Contains("0xabc"))
}
