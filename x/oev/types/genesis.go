package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the oev module's genesis state.
type GenesisState struct {
	Params           Params `json:"params" yaml:"params"`
	ModeratorAddress string `json:"moderator_address" yaml:"moderator_address"`
}

// NewGenesisState creates a new genesis state.
func NewGenesisState(params Params, moderatorAddress string) GenesisState {
	return GenesisState{
		Params:           params,
		ModeratorAddress: moderatorAddress,
	}
}

// DefaultGenesisState returns a default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params:           DefaultParams(),
		ModeratorAddress: "",
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	if gs.ModeratorAddress != "" {
		if _, err := sdk.AccAddressFromBech32(gs.ModeratorAddress); err != nil {
			return fmt.Errorf("invalid moderator address: %w", err)
		}
	}

	return nil
}
