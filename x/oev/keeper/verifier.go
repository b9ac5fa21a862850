package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/GPTx-global/oev-relay/x/oev/types"
)

// VerifyClaimantSignature checks that expected signed the claimant message for
// (beaconID, expireTimestamp, claimant, bidAmount) and that the signature has
// not expired at the current block time. Expiry is checked first.
func (k Keeper) VerifyClaimantSignature(
	ctx sdk.Context,
	beaconID common.Hash,
	expireTimestamp uint64,
	claimant common.Address,
	bidAmount sdkmath.Int,
	signature []byte,
	expected common.Address,
) error {
	if err := checkExpiry(ctx, expireTimestamp); err != nil {
		return err
	}

	signer := types.RecoverClaimantSigner(beaconID, expireTimestamp, claimant, bidAmount, signature)
	if signer == (common.Address{}) || signer != expected {
		return errorsmod.Wrapf(types.ErrSignatureMismatch, "recovered %s, expected %s", signer.Hex(), expected.Hex())
	}
	return nil
}

// IsAuthorized is the boolean form of VerifyClaimantSignature.
func (k Keeper) IsAuthorized(
	ctx sdk.Context,
	beaconID common.Hash,
	expireTimestamp uint64,
	claimant common.Address,
	bidAmount sdkmath.Int,
	signature []byte,
	expected common.Address,
) bool {
	return k.VerifyClaimantSignature(ctx, beaconID, expireTimestamp, claimant, bidAmount, signature, expected) == nil
}

// checkExpiry requires the block time to be strictly before expireTimestamp.
func checkExpiry(ctx sdk.Context, expireTimestamp uint64) error {
	now := ctx.BlockTime().Unix()
	if now < 0 {
		now = 0
	}
	if uint64(now) >= expireTimestamp {
		return errorsmod.Wrapf(types.ErrSignatureExpired, "block time %d, expired at %d", now, expireTimestamp)
	}
	return nil
}
