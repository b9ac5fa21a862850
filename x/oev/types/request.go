package types

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// maxBidBitLen bounds bids to uint256.
const maxBidBitLen = 256

// BeaconUpdateRequest is one signed update for a single-source beacon.
type BeaconUpdateRequest struct {
	SubscriptionID    common.Hash    `json:"subscription_id"`
	BeaconID          common.Hash    `json:"beacon_id"`
	OracleAddress     common.Address `json:"oracle_address"`
	BidAmount         sdkmath.Int    `json:"bid_amount"`
	ValueTimestamp    uint64         `json:"value_timestamp"`
	ExpireTimestamp   uint64         `json:"expire_timestamp"`
	UpdateData        []byte         `json:"update_data"`
	OracleSignature   []byte         `json:"oracle_signature"`
	ClaimantSignature []byte         `json:"claimant_signature"`
}

// IsSkipped reports whether the request carries no claimant signature, meaning
// the beacon was settled earlier and only feeds the aggregate.
func (r BeaconUpdateRequest) IsSkipped() bool {
	return len(r.ClaimantSignature) == 0
}

// ValidateBasic checks the request fields that do not depend on state.
func (r BeaconUpdateRequest) ValidateBasic() error {
	if err := ValidateBidAmount(r.BidAmount); err != nil {
		return err
	}
	if len(r.ClaimantSignature) != crypto.SignatureLength {
		return errorsmod.Wrapf(ErrSignatureMismatch, "malformed claimant signature of length %d", len(r.ClaimantSignature))
	}
	return nil
}

// ValidateBidAmount requires a non-negative bid that fits in a uint256.
func ValidateBidAmount(bid sdkmath.Int) error {
	if bid.IsNil() || bid.IsNegative() {
		return errorsmod.Wrapf(ErrInvalidBid, "bid must be non-negative")
	}
	if bid.BigInt().BitLen() > maxBidBitLen {
		return errorsmod.Wrapf(ErrInvalidBid, "bid exceeds %d bits", maxBidBitLen)
	}
	return nil
}

// AggregateUpdateBatch holds one entry per contributing beacon as parallel
// sequences. BeaconIDs also addresses the resulting beacon set.
type AggregateUpdateBatch struct {
	SubscriptionIDs    []common.Hash    `json:"subscription_ids"`
	BeaconIDs          []common.Hash    `json:"beacon_ids"`
	OracleAddresses    []common.Address `json:"oracle_addresses"`
	BidAmounts         []sdkmath.Int    `json:"bid_amounts"`
	ValueTimestamps    []uint64         `json:"value_timestamps"`
	ExpireTimestamps   []uint64         `json:"expire_timestamps"`
	UpdateData         [][]byte         `json:"update_data"`
	OracleSignatures   [][]byte         `json:"oracle_signatures"`
	ClaimantSignatures [][]byte         `json:"claimant_signatures"`
}

// NewAggregateUpdateBatch lays requests out as parallel sequences.
func NewAggregateUpdateBatch(reqs ...BeaconUpdateRequest) AggregateUpdateBatch {
	b := AggregateUpdateBatch{}
	for _, r := range reqs {
		b.SubscriptionIDs = append(b.SubscriptionIDs, r.SubscriptionID)
		b.BeaconIDs = append(b.BeaconIDs, r.BeaconID)
		b.OracleAddresses = append(b.OracleAddresses, r.OracleAddress)
		b.BidAmounts = append(b.BidAmounts, r.BidAmount)
		b.ValueTimestamps = append(b.ValueTimestamps, r.ValueTimestamp)
		b.ExpireTimestamps = append(b.ExpireTimestamps, r.ExpireTimestamp)
		b.UpdateData = append(b.UpdateData, r.UpdateData)
		b.OracleSignatures = append(b.OracleSignatures, r.OracleSignature)
		b.ClaimantSignatures = append(b.ClaimantSignatures, r.ClaimantSignature)
	}
	return b
}

// Len returns the number of entries, which is the length of BeaconIDs.
func (b AggregateUpdateBatch) Len() int {
	return len(b.BeaconIDs)
}

// Request returns entry i as a single request. Call ValidateShape first.
func (b AggregateUpdateBatch) Request(i int) BeaconUpdateRequest {
	return BeaconUpdateRequest{
		SubscriptionID:    b.SubscriptionIDs[i],
		BeaconID:          b.BeaconIDs[i],
		OracleAddress:     b.OracleAddresses[i],
		BidAmount:         b.BidAmounts[i],
		ValueTimestamp:    b.ValueTimestamps[i],
		ExpireTimestamp:   b.ExpireTimestamps[i],
		UpdateData:        b.UpdateData[i],
		OracleSignature:   b.OracleSignatures[i],
		ClaimantSignature: b.ClaimantSignatures[i],
	}
}

// ValidateShape requires equal-length sequences and more than one beacon.
// The length check runs first.
func (b AggregateUpdateBatch) ValidateShape() error {
	n := len(b.BeaconIDs)
	lengths := []int{
		len(b.SubscriptionIDs),
		len(b.OracleAddresses),
		len(b.BidAmounts),
		len(b.ValueTimestamps),
		len(b.ExpireTimestamps),
		len(b.UpdateData),
		len(b.OracleSignatures),
		len(b.ClaimantSignatures),
	}
	for _, l := range lengths {
		if l != n {
			return errorsmod.Wrapf(ErrParameterLengthMismatch, "expected %d entries, got %d", n, l)
		}
	}
	if n <= 1 {
		return errorsmod.Wrapf(ErrInsufficientBeaconCount, "beacon set needs more than one beacon, got %d", n)
	}
	return nil
}

// ValidateBasic checks shape, bids and the encoding of every present signature.
func (b AggregateUpdateBatch) ValidateBasic() error {
	if err := b.ValidateShape(); err != nil {
		return err
	}
	for i := 0; i < b.Len(); i++ {
		req := b.Request(i)
		if req.IsSkipped() {
			continue
		}
		if err := req.ValidateBasic(); err != nil {
			return errorsmod.Wrapf(err, "entry %d", i)
		}
	}
	return nil
}
