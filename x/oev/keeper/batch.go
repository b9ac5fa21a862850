package keeper

import (
	"strconv"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/GPTx-global/oev-relay/x/oev/types"
)

// SettleBeaconSetUpdate settles every signed entry of batch and then
// recomputes the beacon set over all of its beacons. Entries without a claimant
// signature are neither verified nor paid for but still count towards the
// beacon set. The payment is checked against the sum of settled bids only after
// all entries are forwarded; the cache context discards those forwards when it
// falls short.
func (k Keeper) SettleBeaconSetUpdate(ctx sdk.Context, caller sdk.AccAddress, payment sdk.Coin, batch types.AggregateUpdateBatch) (common.Hash, int, error) {
	params := k.GetParams(ctx)
	if !params.EnableSettlement {
		return common.Hash{}, 0, types.ErrSettlementDisabled
	}

	if err := batch.ValidateShape(); err != nil {
		return common.Hash{}, 0, err
	}

	cacheCtx, writeCache := ctx.CacheContext()

	total := sdkmath.ZeroInt()
	settled := 0
	for i := 0; i < batch.Len(); i++ {
		req := batch.Request(i)
		if req.IsSkipped() {
			continue
		}

		if err := k.authorizeUpdate(cacheCtx, caller, req); err != nil {
			return common.Hash{}, 0, err
		}
		if err := k.forwardUpdate(cacheCtx, req); err != nil {
			return common.Hash{}, 0, err
		}

		total = total.Add(req.BidAmount)
		settled++
	}

	if err := checkPayment(params, payment, total); err != nil {
		return common.Hash{}, 0, err
	}

	beaconSetID, err := k.feedStore.RecomputeAggregate(cacheCtx, batch.BeaconIDs)
	if err != nil {
		return common.Hash{}, 0, err
	}

	if err := k.collectPayment(cacheCtx, caller, payment); err != nil {
		return common.Hash{}, 0, err
	}

	writeCache()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateBeaconSet,
			sdk.NewAttribute(types.AttributeKeyClaimant, caller.String()),
			sdk.NewAttribute(types.AttributeKeyBeaconSetID, beaconSetID.Hex()),
			sdk.NewAttribute(types.AttributeKeySettledCount, strconv.Itoa(settled)),
			sdk.NewAttribute(types.AttributeKeyBidAmount, total.String()),
			sdk.NewAttribute(types.AttributeKeyPayment, payment.String()),
		),
	)
	k.Logger(ctx).Info("beacon set updated with signed data", "beacon_set_id", beaconSetID.Hex(), "beacons", batch.Len(), "settled", settled)

	return beaconSetID, settled, nil
}
