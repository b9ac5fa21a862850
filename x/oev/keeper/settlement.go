package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/oev-relay/x/oev/types"
)

// SettleBeaconUpdate settles a single searcher bid. Every effect is
// staged in a cache context and written only after all checks pass, so a
// rejected call changes neither the feed store nor any balance.
func (k Keeper) SettleBeaconUpdate(ctx sdk.Context, caller sdk.AccAddress, payment sdk.Coin, req types.BeaconUpdateRequest) error {
	params := k.GetParams(ctx)
	if !params.EnableSettlement {
		return types.ErrSettlementDisabled
	}

	cacheCtx, writeCache := ctx.CacheContext()

	if err := k.authorizeUpdate(cacheCtx, caller, req); err != nil {
		return err
	}
	if err := checkPayment(params, payment, req.BidAmount); err != nil {
		return err
	}
	if err := k.forwardUpdate(cacheCtx, req); err != nil {
		return err
	}
	if err := k.collectPayment(cacheCtx, caller, payment); err != nil {
		return err
	}

	writeCache()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateBeacon,
			sdk.NewAttribute(types.AttributeKeyClaimant, caller.String()),
			sdk.NewAttribute(types.AttributeKeySubscriptionID, req.SubscriptionID.Hex()),
			sdk.NewAttribute(types.AttributeKeyBeaconID, req.BeaconID.Hex()),
			sdk.NewAttribute(types.AttributeKeyOracle, req.OracleAddress.Hex()),
			sdk.NewAttribute(types.AttributeKeyBidAmount, req.BidAmount.String()),
			sdk.NewAttribute(types.AttributeKeyPayment, payment.String()),
		),
	)
	k.Logger(ctx).Info("beacon updated with signed data", "beacon_id", req.BeaconID.Hex(), "claimant", caller.String(), "bid", req.BidAmount.String())

	return nil
}

// authorizeUpdate runs the per-request checks: the subscription must point at
// the request's beacon and the oracle must have signed the bid for caller.
func (k Keeper) authorizeUpdate(ctx sdk.Context, caller sdk.AccAddress, req types.BeaconUpdateRequest) error {
	if err := types.ValidateBidAmount(req.BidAmount); err != nil {
		return err
	}

	if beaconID := k.feedStore.SubscriptionBeaconID(ctx, req.SubscriptionID); beaconID != req.BeaconID {
		return errorsmod.Wrapf(types.ErrSubscriptionMismatch, "subscription %s updates %s, not %s", req.SubscriptionID.Hex(), beaconID.Hex(), req.BeaconID.Hex())
	}

	claimant := types.ClaimantAddress(caller)
	if err := k.VerifyClaimantSignature(ctx, req.BeaconID, req.ExpireTimestamp, claimant, req.BidAmount, req.ClaimantSignature, req.OracleAddress); err != nil {
		return err
	}

	// kept apart from the verifier so the guard stays explicit
	return checkExpiry(ctx, req.ExpireTimestamp)
}

// forwardUpdate hands the oracle-signed value to the feed store with the module
// as relayer and beneficiary.
func (k Keeper) forwardUpdate(ctx sdk.Context, req types.BeaconUpdateRequest) error {
	err := k.feedStore.FulfillUpdate(
		ctx,
		req.SubscriptionID,
		req.OracleAddress,
		k.moduleAddress,
		k.moduleAddress,
		req.ValueTimestamp,
		req.UpdateData,
		req.OracleSignature,
	)
	if err != nil {
		return errorsmod.Wrapf(err, "fulfill subscription %s", req.SubscriptionID.Hex())
	}
	return nil
}

// collectPayment moves the whole payment from the caller to the module account.
func (k Keeper) collectPayment(ctx sdk.Context, caller sdk.AccAddress, payment sdk.Coin) error {
	if payment.Amount.IsNil() || !payment.Amount.IsPositive() {
		return nil
	}
	return k.bankKeeper.SendCoinsFromAccountToModule(ctx, caller, types.ModuleName, sdk.NewCoins(payment))
}

// checkPayment requires payment in the bid denom covering required.
func checkPayment(params types.Params, payment sdk.Coin, required sdkmath.Int) error {
	amount := payment.Amount
	if amount.IsNil() {
		amount = sdkmath.ZeroInt()
	}

	if amount.IsPositive() && payment.Denom != params.BidDenom {
		return errorsmod.Wrapf(types.ErrInvalidDenom, "expected %s, got %s", params.BidDenom, payment.Denom)
	}
	if amount.LT(required) {
		return errorsmod.Wrapf(types.ErrInsufficientBid, "paid %s, bid %s%s", amount, required, params.BidDenom)
	}
	return nil
}
