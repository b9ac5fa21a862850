package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultBidDenom is the denom bids are paid in unless configured otherwise.
const DefaultBidDenom = "aguru"

// Params defines the oev module parameters.
type Params struct {
	EnableSettlement bool   `json:"enable_settlement" yaml:"enable_settlement"`
	BidDenom         string `json:"bid_denom" yaml:"bid_denom"`
}

// NewParams creates a new Params instance
func NewParams(enableSettlement bool, bidDenom string) Params {
	return Params{
		EnableSettlement: enableSettlement,
		BidDenom:         bidDenom,
	}
}

// DefaultParams returns default oev module parameters
func DefaultParams() Params {
	return NewParams(true, DefaultBidDenom)
}

// Validate performs basic validation on oev parameters
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.BidDenom); err != nil {
		return fmt.Errorf("invalid bid denom: %w", err)
	}
	return nil
}
