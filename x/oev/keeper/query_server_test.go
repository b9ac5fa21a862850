package keeper

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/GPTx-global/oev-relay/x/oev/testutil"
	"github.com/GPTx-global/oev-relay/x/oev/types"
)

func TestQueryParamsAndModerator(t *testing.T) {
	k, f := setupKeeper(t)
	goCtx := sdk.WrapSDKContext(f.Ctx)

	params, err := k.Params(goCtx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), params.Params)

	moderator := testutil.AccAddress("moderator").String()
	k.SetModeratorAddress(f.Ctx, moderator)
	res, err := k.ModeratorAddress(goCtx, &types.QueryModeratorAddressRequest{})
	require.NoError(t, err)
	require.Equal(t, moderator, res.ModeratorAddress)
}

func TestQueryProceeds(t *testing.T) {
	k, f := setupKeeper(t)
	f.Bank.Fund(f.Ctx, k.ModuleAddress(), sdk.NewCoins(coin(12)))

	res, err := k.Proceeds(sdk.WrapSDKContext(f.Ctx), &types.QueryProceedsRequest{})
	require.NoError(t, err)
	requireCoin(t, coin(12), res.Proceeds)
}

func TestQueryClaimantMessageHash(t *testing.T) {
	k, f := setupKeeper(t)
	goCtx := sdk.WrapSDKContext(f.Ctx)
	oracle := testutil.NewOracle(t)
	claimant := testutil.AccAddress("searcher")
	beaconID := common.HexToHash("0xbeac00")

	res, err := k.ClaimantMessageHash(goCtx, &types.QueryClaimantMessageHashRequest{
		BeaconID:        beaconID,
		ExpireTimestamp: f.Now() + 60,
		Claimant:        claimant.String(),
		BidAmount:       sdkmath.NewInt(100),
	})
	require.NoError(t, err)

	// a signature over the returned digest is accepted by the verifier
	sig, err := crypto.Sign(res.Digest, oracle.Key)
	require.NoError(t, err)
	require.NoError(t, k.VerifyClaimantSignature(f.Ctx, beaconID, f.Now()+60, types.ClaimantAddress(claimant), sdkmath.NewInt(100), sig, oracle.Address))

	_, err = k.ClaimantMessageHash(goCtx, nil)
	require.Error(t, err)

	_, err = k.ClaimantMessageHash(goCtx, &types.QueryClaimantMessageHashRequest{Claimant: "nope", BidAmount: sdkmath.NewInt(1)})
	require.Error(t, err)

	_, err = k.ClaimantMessageHash(goCtx, &types.QueryClaimantMessageHashRequest{Claimant: claimant.String(), BidAmount: sdkmath.NewInt(-1)})
	require.ErrorIs(t, err, types.ErrInvalidBid)
}
