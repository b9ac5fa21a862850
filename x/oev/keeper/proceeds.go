package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/GPTx-global/oev-relay/x/oev/types"
)

// GetProceeds returns the bids collected in the module account.
func (k Keeper) GetProceeds(ctx sdk.Context) sdk.Coin {
	return k.bankKeeper.GetBalance(ctx, k.moduleAddress, k.GetParams(ctx).BidDenom)
}

// SendProceeds sends collected bids to recipient. Only the moderator may
// withdraw.
func (k Keeper) SendProceeds(ctx sdk.Context, moderator, recipient sdk.AccAddress, amount sdk.Coin) error {
	if expected := k.GetModeratorAddress(ctx); expected == "" || expected != moderator.String() {
		return errorsmod.Wrapf(types.ErrWrongModerator, "expected: %s, got: %s", expected, moderator)
	}
	if !amount.IsValid() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "invalid withdrawal amount %s", amount)
	}

	balance := k.bankKeeper.GetBalance(ctx, k.moduleAddress, amount.Denom)
	if balance.Amount.LT(amount.Amount) {
		return errorsmod.Wrapf(types.ErrInsufficientProceeds, "proceeds %s, requested %s", balance, amount)
	}

	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, sdk.NewCoins(amount)); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawProceeds,
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}
