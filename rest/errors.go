package rest

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/banky/go-okx-web3/constants"
	"github.com/go-resty/resty/v2"
)

// ErrorRecord is the normalized shape of every failed round trip. Code is the
// HTTP status as a string, or "500" for transport failures.
type ErrorRecord struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorRecord) Error() string {
	return fmt.Sprintf("request failed (code %s): %s", e.Code, e.Message)
}

// IsTransport reports whether the request never got an HTTP response.
// An upstream 500 is indistinguishable by code alone.
func (e *ErrorRecord) IsTransport() bool {
	return e.Code == constants.TRANSPORT_ERROR_CODE
}

func transportFailure(err error) Result {
	return Result{
		Error: &ErrorRecord{
			Code:    constants.TRANSPORT_ERROR_CODE,
			Message: err.Error(),
		},
	}
}

func handleResponse(resp *resty.Response) Result {
	statusCode := resp.StatusCode()
	body := resp.Body()

	if statusCode != 200 {
		return Result{
			Error: &ErrorRecord{
				Code:    strconv.Itoa(statusCode),
				Message: string(body),
			},
		}
	}

	if !json.Valid(body) {
		return Result{
			Error: &ErrorRecord{
				Code:    constants.TRANSPORT_ERROR_CODE,
				Message: fmt.Sprintf("invalid JSON in response body: %q", body),
			},
		}
	}

	return Result{Body: body}
}
