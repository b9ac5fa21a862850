package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/oev-relay/x/oev/types"
)

// MsgServer implementation
var _ types.MsgServer = &Keeper{}

// UpdateBeaconWithSignedData implements types.MsgServer.
func (k Keeper) UpdateBeaconWithSignedData(goCtx context.Context, msg *types.MsgUpdateBeaconWithSignedData) (*types.MsgUpdateBeaconWithSignedDataResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	claimant, err := sdk.AccAddressFromBech32(msg.Claimant)
	if err != nil {
		return nil, err
	}

	if err := k.SettleBeaconUpdate(ctx, claimant, msg.Payment, msg.Request); err != nil {
		return nil, err
	}

	defer func() {
		telemetry.IncrCounterWithLabels(
			[]string{types.ModuleName, "settle", "beacon"},
			1,
			[]metrics.Label{telemetry.NewLabel("oracle", msg.Request.OracleAddress.Hex())},
		)
		if !msg.Payment.Amount.IsNil() && msg.Payment.Amount.IsInt64() {
			telemetry.SetGaugeWithLabels(
				[]string{types.ModuleName, "payment"},
				float32(msg.Payment.Amount.Int64()),
				[]metrics.Label{telemetry.NewLabel("denom", msg.Payment.Denom)},
			)
		}
	}()

	return &types.MsgUpdateBeaconWithSignedDataResponse{}, nil
}

// UpdateBeaconSetWithSignedData implements types.MsgServer.
func (k Keeper) UpdateBeaconSetWithSignedData(goCtx context.Context, msg *types.MsgUpdateBeaconSetWithSignedData) (*types.MsgUpdateBeaconSetWithSignedDataResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	claimant, err := sdk.AccAddressFromBech32(msg.Claimant)
	if err != nil {
		return nil, err
	}

	beaconSetID, settled, err := k.SettleBeaconSetUpdate(ctx, claimant, msg.Payment, msg.Batch)
	if err != nil {
		return nil, err
	}

	defer func() {
		telemetry.IncrCounter(1, types.ModuleName, "settle", "beacon_set")
		telemetry.IncrCounter(float32(settled), types.ModuleName, "settle", "beacon_set", "entries")
	}()

	return &types.MsgUpdateBeaconSetWithSignedDataResponse{
		BeaconSetID:  beaconSetID,
		SettledCount: uint32(settled),
	}, nil
}

// RegisterBeaconUpdateSubscription implements types.MsgServer.
func (k Keeper) RegisterBeaconUpdateSubscription(goCtx context.Context, msg *types.MsgRegisterBeaconUpdateSubscription) (*types.MsgRegisterBeaconUpdateSubscriptionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	subscriptionID, err := k.RegisterRelayedSubscription(ctx, msg.Oracle, msg.TemplateID)
	if err != nil {
		return nil, err
	}

	return &types.MsgRegisterBeaconUpdateSubscriptionResponse{
		SubscriptionID: subscriptionID,
	}, nil
}

// WithdrawProceeds implements types.MsgServer.
func (k Keeper) WithdrawProceeds(goCtx context.Context, msg *types.MsgWithdrawProceeds) (*types.MsgWithdrawProceedsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	moderator, err := sdk.AccAddressFromBech32(msg.ModeratorAddress)
	if err != nil {
		return nil, err
	}
	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, err
	}

	if err := k.SendProceeds(ctx, moderator, recipient, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgWithdrawProceedsResponse{}, nil
}

// UpdateModeratorAddress implements types.MsgServer.
func (k Keeper) UpdateModeratorAddress(goCtx context.Context, msg *types.MsgUpdateModeratorAddress) (*types.MsgUpdateModeratorAddressResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	moderatorAddress := k.GetModeratorAddress(ctx)
	if moderatorAddress != msg.ModeratorAddress {
		return nil, errorsmod.Wrapf(types.ErrWrongModerator, "expected: %s, got: %s", moderatorAddress, msg.ModeratorAddress)
	}

	if _, err := sdk.AccAddressFromBech32(msg.NewModeratorAddress); err != nil {
		return nil, err
	}

	k.SetModeratorAddress(ctx, msg.NewModeratorAddress)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeChangeModerator,
			sdk.NewAttribute(types.AttributeKeyModerator, msg.NewModeratorAddress),
		),
	)

	return &types.MsgUpdateModeratorAddressResponse{}, nil
}
