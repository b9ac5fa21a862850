package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
)

// AccountKeeper defines the contract required for account APIs.
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
}

// BankKeeper moves bids into the module account and proceeds out of it.
type BankKeeper interface {
	GetBalance(ctx sdk.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// FeedStore is the data feed store that owns beacon values, subscriptions and
// beacon set aggregation. It verifies oracle signatures itself.
type FeedStore interface {
	// RegisterRelayedSubscription registers relayer as the party allowed to
	// fulfill updates for the oracle/template pair and returns the subscription id.
	RegisterRelayedSubscription(ctx sdk.Context, oracle common.Address, templateID common.Hash, relayer, beneficiary sdk.AccAddress) (common.Hash, error)

	// SubscriptionBeaconID returns the beacon a subscription updates, or the
	// zero hash when the subscription is unknown.
	SubscriptionBeaconID(ctx sdk.Context, subscriptionID common.Hash) common.Hash

	// FulfillUpdate checks the oracle signature over the data and persists it.
	FulfillUpdate(ctx sdk.Context, subscriptionID common.Hash, oracle common.Address, relayer, beneficiary sdk.AccAddress, timestamp uint64, data, signature []byte) error

	// RecomputeAggregate updates the beacon set addressed by beaconIDs from the
	// current beacon values and returns the beacon set id.
	RecomputeAggregate(ctx sdk.Context, beaconIDs []common.Hash) (common.Hash, error)
}
