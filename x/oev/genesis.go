package oev

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/oev-relay/x/oev/keeper"
	"github.com/GPTx-global/oev-relay/x/oev/types"
)

// InitGenesis new oev genesis
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data types.GenesisState) {
	if err := data.Validate(); err != nil {
		panic(errorsmod.Wrapf(err, "invalid %s genesis state", types.ModuleName))
	}

	if err := k.SetParams(ctx, data.Params); err != nil {
		panic(errorsmod.Wrapf(err, "error setting params"))
	}

	if data.ModeratorAddress != "" {
		k.SetModeratorAddress(ctx, data.ModeratorAddress)
	}
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) types.GenesisState {
	return types.NewGenesisState(k.GetParams(ctx), k.GetModeratorAddress(ctx))
}
