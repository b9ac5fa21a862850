package oev

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/GPTx-global/oev-relay/x/oev/types"
)

// Handler executes one oev message.
type Handler func(ctx sdk.Context, msg types.Msg) (*sdk.Result, error)

// NewHandler creates a new handler for oev messages
func NewHandler(msgServer types.MsgServer) Handler {
	return func(ctx sdk.Context, msg types.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		if err := msg.ValidateBasic(); err != nil {
			return nil, err
		}

		switch msg := msg.(type) {
		case *types.MsgUpdateBeaconWithSignedData:
			res, err := msgServer.UpdateBeaconWithSignedData(sdk.WrapSDKContext(ctx), msg)
			return wrapResult(ctx, res, err)

		case *types.MsgUpdateBeaconSetWithSignedData:
			res, err := msgServer.UpdateBeaconSetWithSignedData(sdk.WrapSDKContext(ctx), msg)
			return wrapResult(ctx, res, err)

		case *types.MsgRegisterBeaconUpdateSubscription:
			res, err := msgServer.RegisterBeaconUpdateSubscription(sdk.WrapSDKContext(ctx), msg)
			return wrapResult(ctx, res, err)

		case *types.MsgWithdrawProceeds:
			res, err := msgServer.WithdrawProceeds(sdk.WrapSDKContext(ctx), msg)
			return wrapResult(ctx, res, err)

		case *types.MsgUpdateModeratorAddress:
			res, err := msgServer.UpdateModeratorAddress(sdk.WrapSDKContext(ctx), msg)
			return wrapResult(ctx, res, err)

		default:
			err := errorsmod.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
			return nil, err
		}
	}
}

// wrapResult is sdk.WrapServiceResult for responses encoded as amino JSON.
func wrapResult(ctx sdk.Context, res interface{}, err error) (*sdk.Result, error) {
	if err != nil {
		return nil, err
	}

	data, err := types.ModuleCdc.MarshalJSON(res)
	if err != nil {
		return nil, err
	}

	return &sdk.Result{
		Data:   data,
		Events: ctx.EventManager().ABCIEvents(),
	}, nil
}
