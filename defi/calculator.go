package defi

import (
	"context"

	"github.com/banky/go-okx-web3/internal/utils"
	"github.com/banky/go-okx-web3/rest"
)

// Calculator previews what entering or leaving a product would yield.
type Calculator struct {
	service
}

// SubscribeInfo estimates the position received for inputAmount.
func (c *Calculator) SubscribeInfo(
	ctx context.Context,
	address string,
	investmentID string,
	inputAmount string,
	opts ...CalculatorOption,
) (rest.Result, error) {
	if err := utils.Required(
		"address", address,
		"investmentId", investmentID,
		"inputTokenAmount", inputAmount,
	); err != nil {
		return rest.Result{}, err
	}

	req := CalculatorRequest{
		Address:          address,
		InvestmentID:     investmentID,
		InputTokenAmount: inputAmount,
	}
	for _, opt := range opts {
		opt(&req)
	}

	return c.post(ctx, "subscribe-info", req)
}

// RedeemInfo estimates the tokens returned for redeeming outputAmount.
func (c *Calculator) RedeemInfo(
	ctx context.Context,
	address string,
	investmentID string,
	outputAmount string,
	opts ...CalculatorOption,
) (rest.Result, error) {
	if err := utils.Required(
		"address", address,
		"investmentId", investmentID,
		"outputTokenAmount", outputAmount,
	); err != nil {
		return rest.Result{}, err
	}

	req := CalculatorRequest{
		Address:           address,
		InvestmentID:      investmentID,
		OutputTokenAmount: outputAmount,
	}
	for _, opt := range opts {
		opt(&req)
	}

	return c.post(ctx, "redeem-info", req)
}
