package defi

import (
	"context"

	"github.com/banky/go-okx-web3/rest"
)

// User reads the positions held by a set of addresses.
type User struct {
	service
}

// PlatformList summarizes positions per protocol.
func (u *User) PlatformList(ctx context.Context, wallets []WalletAddress) (rest.Result, error) {
	if err := requireList("walletAddressList", len(wallets)); err != nil {
		return rest.Result{}, err
	}

	return u.post(ctx, "asset/platform/list", PlatformListRequest{
		WalletAddressList: wallets,
	})
}

// PlatformDetail returns the positions held on the given protocols.
func (u *User) PlatformDetail(
	ctx context.Context,
	wallets []WalletAddress,
	platformIDs ...string,
) (rest.Result, error) {
	if err := requireList("walletAddressList", len(wallets)); err != nil {
		return rest.Result{}, err
	}
	if err := requireList("platformList", len(platformIDs)); err != nil {
		return rest.Result{}, err
	}

	platforms := make([]PlatformRef, 0, len(platformIDs))
	for _, id := range platformIDs {
		platforms = append(platforms, PlatformRef{AnalysisPlatformID: id})
	}

	return u.post(ctx, "asset/platform/detail", PlatformDetailRequest{
		WalletAddressList: wallets,
		PlatformList:      platforms,
	})
}
