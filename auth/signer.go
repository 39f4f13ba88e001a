// Package auth signs requests to the OKX Web3 API.
//
// Every authenticated call carries an HMAC-SHA256 signature over the
// canonical message
//
//	timestamp + method + path [+ "?" + sorted query | + JSON body]
//
// keyed by the project's secret key and base64 encoded.
package auth

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/banky/go-okx-web3/constants"
	"github.com/banky/go-okx-web3/types"
	"github.com/rs/zerolog"
)

// Signer produces authentication headers. It holds only immutable
// credentials and is safe for concurrent use.
type Signer struct {
	creds  Credentials
	now    func() time.Time
	logger zerolog.Logger
}

// SignedRequest is everything needed to send one authenticated request.
// Body holds the exact bytes that were signed and must be sent unchanged.
type SignedRequest struct {
	Method    string
	Path      string
	Query     string
	Body      []byte
	Timestamp string
	Signature string
	Headers   http.Header
}

// Option configures a Signer
type Option func(*Signer)

// WithClock replaces the time source used for timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		s.now = now
	}
}

// WithLogger sets the logger for signing diagnostics. The secret key,
// signature and signed message are never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Signer) {
		s.logger = logger
	}
}

// NewSigner validates the credentials and returns a Signer.
func NewSigner(creds Credentials, opts ...Option) (*Signer, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	s := &Signer{
		creds:  creds,
		now:    time.Now,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Credentials returns a copy of the signer's credentials.
func (s *Signer) Credentials() Credentials {
	return s.creds
}

// Timestamp formats the current instant as required by the API,
// e.g. 2024-01-15T10:30:00.123Z.
func (s *Signer) Timestamp() string {
	return FormatTimestamp(s.now())
}

// FormatTimestamp formats t in UTC with millisecond precision and a Z suffix.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(constants.TIMESTAMP_FORMAT)
}

// Sign returns the signature and the timestamp it was computed at. The body is
// only encoded and signed for POST.
func (s *Signer) Sign(
	method string,
	path string,
	params types.Params,
	body any,
) (string, string, error) {
	timestamp := s.Timestamp()

	var encoded []byte
	if strings.ToUpper(method) == http.MethodPost {
		var err error
		encoded, err = EncodeBody(body)
		if err != nil {
			return "", "", err
		}
	}

	return s.SignAt(method, path, params, encoded, timestamp), timestamp, nil
}

// SignAt signs an already encoded body at the given timestamp.
func (s *Signer) SignAt(
	method string,
	path string,
	params types.Params,
	body []byte,
	timestamp string,
) string {
	message := Prehash(timestamp, method, path, params, body)
	return ComputeSignature(s.creds.SecretKey, message)
}

// Headers signs the request and assembles the authentication headers.
// Only GET uses params and only POST uses body.
func (s *Signer) Headers(
	method string,
	path string,
	params types.Params,
	body any,
) (SignedRequest, error) {
	method = strings.ToUpper(method)

	var encoded []byte
	if method == http.MethodPost {
		var err error
		encoded, err = EncodeBody(body)
		if err != nil {
			return SignedRequest{}, err
		}
	}
	if method != http.MethodGet {
		params = nil
	}

	timestamp := s.Timestamp()
	signature := s.SignAt(method, path, params, encoded, timestamp)

	headers := http.Header{}
	headers.Set(constants.HEADER_CONTENT_TYPE, constants.CONTENT_TYPE_JSON)
	headers.Set(constants.HEADER_ACCESS_KEY, s.creds.AccessKey)
	headers.Set(constants.HEADER_SIGN, signature)
	headers.Set(constants.HEADER_TIMESTAMP, timestamp)
	headers.Set(constants.HEADER_PASSPHRASE, s.creds.Passphrase)
	headers.Set(constants.HEADER_PROJECT, s.creds.ProjectID)

	s.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("timestamp", timestamp).
		Int("params", len(params)).
		Int("body_bytes", len(encoded)).
		Msg("signed request")

	return SignedRequest{
		Method:    method,
		Path:      path,
		Query:     params.Canonical(),
		Body:      encoded,
		Timestamp: timestamp,
		Signature: signature,
		Headers:   headers,
	}, nil
}

// Prehash builds the canonical message to sign.
func Prehash(
	timestamp string,
	method string,
	path string,
	params types.Params,
	body []byte,
) string {
	method = strings.ToUpper(method)
	message := timestamp + method + path

	switch {
	case method == http.MethodGet && len(params) > 0:
		return message + "?" + params.Canonical()
	case method == http.MethodPost && len(body) > 0:
		return message + string(body)
	default:
		return message
	}
}

// ComputeSignature returns base64(HMAC-SHA256(secret, message)).
func ComputeSignature(secret string, message string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// EncodeBody serializes a request body to compact JSON. Struct fields keep
// their declaration order; HTML characters are not escaped. A nil body, or
// one that is already raw bytes, is returned as is.
func EncodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	out := bytes.TrimRight(buf.Bytes(), "\n")
	if string(out) == "null" {
		return nil, nil
	}
	return out, nil
}
