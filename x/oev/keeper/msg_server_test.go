package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/GPTx-global/oev-relay/x/oev/testutil"
	"github.com/GPTx-global/oev-relay/x/oev/types"
)

func TestMsgServerUpdateBeaconWithSignedData(t *testing.T) {
	k, f := setupKeeper(t)
	oracle := testutil.NewOracle(t)
	searcher := testutil.AccAddress("searcher")
	f.Bank.Fund(f.Ctx, searcher, sdk.NewCoins(coin(1000)))

	subscriptionID, beaconID := registerBeacon(t, k, f, oracle, "eth-usd")
	req := oracle.SignedRequest(t, testutil.Bid{
		SubscriptionID: subscriptionID,
		BeaconID:       beaconID,
		Claimant:       searcher,
		Amount:         100,
		ValueTimestamp: f.Now(),
		Expire:         f.Now() + 60,
		Value:          42,
	})

	goCtx := sdk.WrapSDKContext(f.Ctx)

	msg := types.NewMsgUpdateBeaconWithSignedData(searcher, coin(100), req)
	require.NoError(t, msg.ValidateBasic())
	_, err := k.UpdateBeaconWithSignedData(goCtx, msg)
	require.NoError(t, err)

	value, _, ok := f.FeedStore.BeaconValue(f.Ctx, beaconID)
	require.True(t, ok)
	require.Equal(t, int64(42), value.Int64())

	msg.Claimant = "not-an-address"
	_, err = k.UpdateBeaconWithSignedData(goCtx, msg)
	require.Error(t, err)
}

func TestMsgServerUpdateBeaconSetWithSignedData(t *testing.T) {
	s := newBatchSetup(t, 2)

	batch := types.NewAggregateUpdateBatch(s.request(t, 0, 10, 100), s.request(t, 1, 20, 300))
	msg := types.NewMsgUpdateBeaconSetWithSignedData(s.searcher, coin(30), batch)
	require.NoError(t, msg.ValidateBasic())

	res, err := s.k.UpdateBeaconSetWithSignedData(sdk.WrapSDKContext(s.f.Ctx), msg)
	require.NoError(t, err)
	require.Equal(t, testutil.DeriveBeaconSetID(s.beacons), res.BeaconSetID)
	require.Equal(t, uint32(2), res.SettledCount)

	value, ok := s.f.FeedStore.BeaconSetValue(s.f.Ctx, res.BeaconSetID)
	require.True(t, ok)
	require.Equal(t, int64(200), value.Int64())
}

func TestMsgServerRegisterBeaconUpdateSubscription(t *testing.T) {
	k, f := setupKeeper(t)
	oracle := testutil.NewOracle(t)
	templateID := common.HexToHash("0x02")

	msg := types.NewMsgRegisterBeaconUpdateSubscription(testutil.AccAddress("anyone"), oracle.Address, templateID)
	require.NoError(t, msg.ValidateBasic())

	res, err := k.RegisterBeaconUpdateSubscription(sdk.WrapSDKContext(f.Ctx), msg)
	require.NoError(t, err)
	require.Equal(t, testutil.DeriveBeaconID(oracle.Address, templateID), f.FeedStore.SubscriptionBeaconID(f.Ctx, res.SubscriptionID))
}

func TestMsgServerWithdrawProceeds(t *testing.T) {
	k, f := setupKeeper(t)
	moderator := testutil.AccAddress("moderator")
	recipient := testutil.AccAddress("recipient")
	k.SetModeratorAddress(f.Ctx, moderator.String())
	f.Bank.Fund(f.Ctx, k.ModuleAddress(), sdk.NewCoins(coin(50)))

	goCtx := sdk.WrapSDKContext(f.Ctx)

	_, err := k.WithdrawProceeds(goCtx, types.NewMsgWithdrawProceeds(recipient, recipient, coin(50)))
	require.ErrorIs(t, err, types.ErrWrongModerator)

	_, err = k.WithdrawProceeds(goCtx, types.NewMsgWithdrawProceeds(moderator, recipient, coin(50)))
	require.NoError(t, err)
	requireCoin(t, coin(50), f.Bank.GetBalance(f.Ctx, recipient, testDenom))
	require.True(t, k.GetProceeds(f.Ctx).IsZero())
}

func TestMsgServerUpdateModeratorAddress(t *testing.T) {
	moderator := testutil.AccAddress("moderator")
	successor := testutil.AccAddress("successor")

	tests := []struct {
		name   string
		msg    *types.MsgUpdateModeratorAddress
		expErr bool
	}{
		{
			name: "1. current moderator hands over",
			msg:  types.NewMsgUpdateModeratorAddress(moderator, successor),
		},
		{
			name:   "2. someone else",
			msg:    types.NewMsgUpdateModeratorAddress(successor, successor),
			expErr: true,
		},
		{
			name: "3. invalid new address",
			msg: &types.MsgUpdateModeratorAddress{
				ModeratorAddress:    moderator.String(),
				NewModeratorAddress: "guru1invalid",
			},
			expErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, f := setupKeeper(t)
			k.SetModeratorAddress(f.Ctx, moderator.String())

			_, err := k.UpdateModeratorAddress(sdk.WrapSDKContext(f.Ctx), tc.msg)
			if tc.expErr {
				require.Error(t, err)
				require.Equal(t, moderator.String(), k.GetModeratorAddress(f.Ctx))
				return
			}

			require.NoError(t, err)
			require.Equal(t, successor.String(), k.GetModeratorAddress(f.Ctx))
		})
	}
}
