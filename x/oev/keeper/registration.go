package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/GPTx-global/oev-relay/x/oev/types"
)

// RegisterRelayedSubscription registers the module as both relayer and
// beneficiary of the oracle/template pair in the feed store.
func (k Keeper) RegisterRelayedSubscription(ctx sdk.Context, oracle common.Address, templateID common.Hash) (common.Hash, error) {
	subscriptionID, err := k.feedStore.RegisterRelayedSubscription(ctx, oracle, templateID, k.moduleAddress, k.moduleAddress)
	if err != nil {
		return common.Hash{}, errorsmod.Wrapf(err, "register subscription for oracle %s", oracle.Hex())
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRegisterSubscription,
			sdk.NewAttribute(types.AttributeKeySubscriptionID, subscriptionID.Hex()),
			sdk.NewAttribute(types.AttributeKeyOracle, oracle.Hex()),
			sdk.NewAttribute(types.AttributeKeyTemplateID, templateID.Hex()),
		),
	)

	return subscriptionID, nil
}
