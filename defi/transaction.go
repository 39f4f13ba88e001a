package defi

import (
	"context"

	"github.com/banky/go-okx-web3/internal/utils"
	"github.com/banky/go-okx-web3/rest"
)

// Transaction builds the call data for entering, leaving and claiming
// from a product. The caller signs and broadcasts the result.
type Transaction struct {
	service
}

// Authorization types accepted by the authorization call
const (
	AUTHORIZATION_SUBSCRIBE = "3"
	AUTHORIZATION_REDEEM    = "4"
)

// Subscription builds the transaction that deposits inputs into a product.
func (t *Transaction) Subscription(
	ctx context.Context,
	address string,
	investmentID string,
	inputs []TokenAmount,
	opts ...TransactionOption,
) (rest.Result, error) {
	return t.submit(ctx, "subscription", address, investmentID, "", inputs, true, opts)
}

// Redemption builds the transaction that withdraws from a product.
func (t *Transaction) Redemption(
	ctx context.Context,
	address string,
	investmentID string,
	inputs []TokenAmount,
	opts ...TransactionOption,
) (rest.Result, error) {
	return t.submit(ctx, "redemption", address, investmentID, "", inputs, true, opts)
}

// Authorization builds the token approval needed before a subscription or
// redemption. authType is AUTHORIZATION_SUBSCRIBE or AUTHORIZATION_REDEEM.
func (t *Transaction) Authorization(
	ctx context.Context,
	address string,
	investmentID string,
	authType string,
	inputs []TokenAmount,
	opts ...TransactionOption,
) (rest.Result, error) {
	if err := utils.Required("type", authType); err != nil {
		return rest.Result{}, err
	}

	return t.submit(ctx, "authorization", address, investmentID, authType, inputs, true, opts)
}

// Bonus builds the transaction that claims rewards. inputs may be empty.
func (t *Transaction) Bonus(
	ctx context.Context,
	address string,
	investmentID string,
	inputs []TokenAmount,
	opts ...TransactionOption,
) (rest.Result, error) {
	return t.submit(ctx, "bonus", address, investmentID, "", inputs, false, opts)
}

func (t *Transaction) submit(
	ctx context.Context,
	endpoint string,
	address string,
	investmentID string,
	authType string,
	inputs []TokenAmount,
	inputsRequired bool,
	opts []TransactionOption,
) (rest.Result, error) {
	if err := utils.Required(
		"address", address,
		"investmentId", investmentID,
	); err != nil {
		return rest.Result{}, err
	}
	if inputsRequired {
		if err := requireList("userInputList", len(inputs)); err != nil {
			return rest.Result{}, err
		}
	}

	req := TransactionRequest{
		Address:       address,
		InvestmentID:  investmentID,
		Type:          authType,
		UserInputList: inputs,
	}
	for _, opt := range opts {
		opt(&req)
	}

	return t.post(ctx, endpoint, req)
}
