package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
)

// QueryServer is the server API for the oev module's queries.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	ModeratorAddress(context.Context, *QueryModeratorAddressRequest) (*QueryModeratorAddressResponse, error)
	Proceeds(context.Context, *QueryProceedsRequest) (*QueryProceedsResponse, error)
	ClaimantMessageHash(context.Context, *QueryClaimantMessageHashRequest) (*QueryClaimantMessageHashResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryModeratorAddressRequest struct{}

type QueryModeratorAddressResponse struct {
	ModeratorAddress string `json:"moderator_address"`
}

type QueryProceedsRequest struct{}

type QueryProceedsResponse struct {
	Proceeds sdk.Coin `json:"proceeds"`
}

// QueryClaimantMessageHashRequest asks for the digest an oracle has to sign to
// accept a bid from Claimant.
type QueryClaimantMessageHashRequest struct {
	BeaconID        common.Hash `json:"beacon_id"`
	ExpireTimestamp uint64      `json:"expire_timestamp"`
	Claimant        string      `json:"claimant"`
	BidAmount       sdkmath.Int `json:"bid_amount"`
}

type QueryClaimantMessageHashResponse struct {
	MessageHash common.Hash `json:"message_hash"`
	Digest      []byte      `json:"digest"`
}
