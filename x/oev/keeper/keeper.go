package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/GPTx-global/oev-relay/x/oev/types"
)

// Keeper of the oev store
type Keeper struct {
	storeKey storetypes.StoreKey

	// relays updates and collects bids
	moduleAddress sdk.AccAddress

	bankKeeper types.BankKeeper
	feedStore  types.FeedStore
}

// NewKeeper panics when the feed store is missing or the module account is
// not registered.
func NewKeeper(
	storeKey storetypes.StoreKey,
	ak types.AccountKeeper,
	bk types.BankKeeper,
	fs types.FeedStore,
) Keeper {
	if fs == nil {
		panic(errorsmod.Wrap(types.ErrZeroAddress, "feed store must be set"))
	}

	// ensure oev module account is set
	addr := ak.GetModuleAddress(types.ModuleName)
	if addr == nil {
		panic("the oev module account has not been set")
	}

	return Keeper{
		storeKey:      storeKey,
		moduleAddress: addr,
		bankKeeper:    bk,
		feedStore:     fs,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// ModuleAddress returns the account acting as relayer and bid beneficiary.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return k.moduleAddress
}

// GetParams returns the module parameters, or the zero value before genesis.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyParams)
	if len(bz) == 0 {
		return types.Params{}
	}

	var params types.Params
	types.ModuleCdc.MustUnmarshalJSON(bz, &params)
	return params
}

// SetParams validates and stores the module parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyParams, types.ModuleCdc.MustMarshalJSON(&params))
	return nil
}

// GetModeratorAddress returns the current moderator address.
func (k Keeper) GetModeratorAddress(ctx sdk.Context) string {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyModeratorAddress)
	if len(bz) == 0 {
		return ""
	}
	return string(bz)
}

// SetModeratorAddress adds/updates the moderator address.
func (k Keeper) SetModeratorAddress(ctx sdk.Context, moderatorAddress string) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyModeratorAddress, []byte(moderatorAddress))
}
