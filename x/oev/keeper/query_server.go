package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/GPTx-global/oev-relay/x/oev/types"
)

var _ types.QueryServer = Keeper{}

// Params queries the parameters of the module
func (k Keeper) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	params := k.GetParams(sdk.UnwrapSDKContext(ctx))
	return &types.QueryParamsResponse{
		Params: params,
	}, nil
}

// ModeratorAddress queries the moderator address
func (k Keeper) ModeratorAddress(ctx context.Context, req *types.QueryModeratorAddressRequest) (*types.QueryModeratorAddressResponse, error) {
	address := k.GetModeratorAddress(sdk.UnwrapSDKContext(ctx))
	return &types.QueryModeratorAddressResponse{
		ModeratorAddress: address,
	}, nil
}

// Proceeds queries the bids collected by the module
func (k Keeper) Proceeds(ctx context.Context, req *types.QueryProceedsRequest) (*types.QueryProceedsResponse, error) {
	return &types.QueryProceedsResponse{
		Proceeds: k.GetProceeds(sdk.UnwrapSDKContext(ctx)),
	}, nil
}

// ClaimantMessageHash returns the hash and signed digest an oracle has to sign
// to accept the given bid.
func (k Keeper) ClaimantMessageHash(_ context.Context, req *types.QueryClaimantMessageHashRequest) (*types.QueryClaimantMessageHashResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "empty request")
	}

	claimant, err := sdk.AccAddressFromBech32(req.Claimant)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid claimant address (%s)", err)
	}
	if err := types.ValidateBidAmount(req.BidAmount); err != nil {
		return nil, err
	}

	hash := types.ClaimantMessageHash(req.BeaconID, req.ExpireTimestamp, types.ClaimantAddress(claimant), req.BidAmount)
	return &types.QueryClaimantMessageHashResponse{
		MessageHash: hash,
		Digest:      types.SignedDigest(hash),
	}, nil
}
