package keeper

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/GPTx-global/oev-relay/x/oev/testutil"
	"github.com/GPTx-global/oev-relay/x/oev/types"
)

func TestSendProceeds(t *testing.T) {
	moderator := testutil.AccAddress("moderator")
	recipient := testutil.AccAddress("recipient")

	tests := []struct {
		name      string
		moderator string
		sender    sdk.AccAddress
		amount    sdk.Coin
		expErr    error
	}{
		{
			name:      "1. moderator withdraws part of the proceeds",
			moderator: moderator.String(),
			sender:    moderator,
			amount:    coin(40),
		},
		{
			name:      "2. moderator withdraws everything",
			moderator: moderator.String(),
			sender:    moderator,
			amount:    coin(100),
		},
		{
			name:      "3. more than collected",
			moderator: moderator.String(),
			sender:    moderator,
			amount:    coin(101),
			expErr:    types.ErrInsufficientProceeds,
		},
		{
			name:      "4. not the moderator",
			moderator: moderator.String(),
			sender:    recipient,
			amount:    coin(40),
			expErr:    types.ErrWrongModerator,
		},
		{
			name:      "5. no moderator set",
			moderator: "",
			sender:    moderator,
			amount:    coin(40),
			expErr:    types.ErrWrongModerator,
		},
		{
			name:      "6. denom never collected",
			moderator: moderator.String(),
			sender:    moderator,
			amount:    sdk.NewCoin("uatom", sdkmath.NewInt(1)),
			expErr:    types.ErrInsufficientProceeds,
		},
		{
			name:      "7. negative amount",
			moderator: moderator.String(),
			sender:    moderator,
			amount:    sdk.Coin{Denom: testDenom, Amount: sdkmath.NewInt(-5)},
			expErr:    sdkerrors.ErrInvalidCoins,
		},
		{
			name:      "8. nil amount",
			moderator: moderator.String(),
			sender:    moderator,
			amount:    sdk.Coin{Denom: testDenom},
			expErr:    sdkerrors.ErrInvalidCoins,
		},
		{
			name:      "9. invalid denom",
			moderator: moderator.String(),
			sender:    moderator,
			amount:    sdk.Coin{Denom: "1x", Amount: sdkmath.NewInt(1)},
			expErr:    sdkerrors.ErrInvalidCoins,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, f := setupKeeper(t)
			k.SetModeratorAddress(f.Ctx, tc.moderator)
			f.Bank.Fund(f.Ctx, k.ModuleAddress(), sdk.NewCoins(coin(100)))

			err := k.SendProceeds(f.Ctx, tc.sender, recipient, tc.amount)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				requireCoin(t, coin(100), k.GetProceeds(f.Ctx))
				return
			}

			require.NoError(t, err)
			requireCoin(t, coin(100).Sub(tc.amount), k.GetProceeds(f.Ctx))
			requireCoin(t, tc.amount, f.Bank.GetBalance(f.Ctx, recipient, testDenom))
		})
	}
}

func TestGetProceedsFollowsBidDenom(t *testing.T) {
	k, f := setupKeeper(t)
	f.Bank.Fund(f.Ctx, k.ModuleAddress(), sdk.NewCoins(coin(7), sdk.NewCoin("uatom", sdkmath.NewInt(3))))

	requireCoin(t, coin(7), k.GetProceeds(f.Ctx))

	require.NoError(t, k.SetParams(f.Ctx, types.NewParams(true, "uatom")))
	requireCoin(t, sdk.NewCoin("uatom", sdkmath.NewInt(3)), k.GetProceeds(f.Ctx))
}
