package rest

import (
	"encoding/json"
	"errors"

	"github.com/banky/go-okx-web3/types"
)

// Result holds exactly one of: the upstream JSON body of a 200 response,
// unchanged, or a normalized error record.
type Result struct {
	Body  json.RawMessage
	Error *ErrorRecord
}

// OK reports whether the round trip produced an HTTP 200 JSON body.
func (r Result) OK() bool {
	return r.Error == nil && r.Body != nil
}

// Err returns the error record as an error, or nil on success.
func (r Result) Err() error {
	if r.Error == nil {
		return nil
	}
	return r.Error
}

// Decode unmarshals the body into v.
func (r Result) Decode(v any) error {
	if r.Error != nil {
		return r.Error
	}
	if r.Body == nil {
		return errors.New("empty result")
	}
	return json.Unmarshal(r.Body, v)
}

// Envelope decodes the body as the upstream {code, msg, data} envelope.
func (r Result) Envelope() (types.Envelope, error) {
	var env types.Envelope
	if err := r.Decode(&env); err != nil {
		return types.Envelope{}, err
	}
	return env, nil
}

// MarshalJSON renders the body verbatim, or the error record.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Error != nil {
		return json.Marshal(r.Error)
	}
	if r.Body == nil {
		return []byte("null"), nil
	}
	return r.Body, nil
}
