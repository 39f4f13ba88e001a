package types

import (
	"encoding/json"
	"fmt"

	"github.com/banky/go-okx-web3/constants"
)

// Envelope is the {code, msg, data} shape of a successful upstream response.
// A 200 response may still carry a non-zero business code.
type Envelope struct {
	Code json.Number     `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// IsOK reports whether the business code signals success.
func (e Envelope) IsOK() bool {
	return e.Code.String() == constants.SUCCESS_CODE
}

// DecodeData unmarshals the data field into v.
func (e Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("response has no data (code %s): %s", e.Code, e.Msg)
	}
	return json.Unmarshal(e.Data, v)
}
