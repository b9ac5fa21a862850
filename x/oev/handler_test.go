package oev

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/GPTx-global/oev-relay/x/oev/testutil"
	"github.com/GPTx-global/oev-relay/x/oev/types"
)

type unknownMsg struct {
	types.MsgUpdateModeratorAddress
}

func TestNewHandler(t *testing.T) {
	f, k := setupTest(t)
	InitGenesis(f.Ctx, k, types.NewGenesisState(types.DefaultParams(), testutil.AccAddress("moderator").String()))
	handler := NewHandler(k)

	oracle := testutil.NewOracle(t)
	searcher := testutil.AccAddress("searcher")
	f.Bank.Fund(f.Ctx, searcher, sdk.NewCoins(sdk.NewInt64Coin(types.DefaultBidDenom, 100)))

	// register through the handler, then settle a bid on the new subscription
	templateID := common.HexToHash("0x05")
	res, err := handler(f.Ctx, types.NewMsgRegisterBeaconUpdateSubscription(searcher, oracle.Address, templateID))
	require.NoError(t, err)
	require.NotEmpty(t, res.Data)
	require.Len(t, res.Events, 1)

	subscriptionID, err := k.RegisterRelayedSubscription(f.Ctx, oracle.Address, templateID)
	require.NoError(t, err)

	req := oracle.SignedRequest(t, testutil.Bid{
		SubscriptionID: subscriptionID,
		BeaconID:       testutil.DeriveBeaconID(oracle.Address, templateID),
		Claimant:       searcher,
		Amount:         40,
		ValueTimestamp: f.Now(),
		Expire:         f.Now() + 60,
		Value:          9,
	})

	malformed := req
	malformed.ClaimantSignature = req.ClaimantSignature[:64]

	tests := []struct {
		name   string
		msg    types.Msg
		expErr error
	}{
		{
			name:   "1. invalid message is rejected before execution",
			msg:    &types.MsgUpdateBeaconWithSignedData{Claimant: "bad"},
			expErr: sdkerrors.ErrInvalidAddress,
		},
		{
			name:   "2. malformed claimant signature is an authorization failure",
			msg:    types.NewMsgUpdateBeaconWithSignedData(searcher, sdk.NewInt64Coin(types.DefaultBidDenom, 40), malformed),
			expErr: types.ErrSignatureMismatch,
		},
		{
			name: "3. settle bid",
			msg:  types.NewMsgUpdateBeaconWithSignedData(searcher, sdk.NewInt64Coin(types.DefaultBidDenom, 40), req),
		},
		{
			name:   "4. withdraw from non moderator",
			msg:    types.NewMsgWithdrawProceeds(searcher, searcher, sdk.NewInt64Coin(types.DefaultBidDenom, 40)),
			expErr: types.ErrWrongModerator,
		},
		{
			name: "5. withdraw by moderator",
			msg:  types.NewMsgWithdrawProceeds(testutil.AccAddress("moderator"), searcher, sdk.NewInt64Coin(types.DefaultBidDenom, 40)),
		},
		{
			name:   "6. unknown message",
			msg:    &unknownMsg{*types.NewMsgUpdateModeratorAddress(searcher, searcher)},
			expErr: sdkerrors.ErrUnknownRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := handler(f.Ctx, tc.msg)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				require.Nil(t, res)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, res)
			require.NotEmpty(t, res.Events)
		})
	}

	require.Equal(t, int64(100), f.Bank.GetBalance(f.Ctx, searcher, types.DefaultBidDenom).Amount.Int64())
}
