package keeper

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/GPTx-global/oev-relay/x/oev/testutil"
	"github.com/GPTx-global/oev-relay/x/oev/types"
)

func TestVerifyClaimantSignature(t *testing.T) {
	k, f := setupKeeper(t)
	oracle := testutil.NewOracle(t)
	other := testutil.NewOracle(t)

	beaconID := common.HexToHash("0xbeac00")
	claimant := types.ClaimantAddress(testutil.AccAddress("searcher"))
	bid := sdkmath.NewInt(100)
	expire := f.Now() + 60

	sig, err := types.SignClaimantMessage(oracle.Key, beaconID, expire, claimant, bid)
	require.NoError(t, err)

	// raw signature with V in {0, 1}
	rawSig, err := crypto.Sign(types.SignedDigest(types.ClaimantMessageHash(beaconID, expire, claimant, bid)), oracle.Key)
	require.NoError(t, err)

	otherSig, err := types.SignClaimantMessage(other.Key, beaconID, expire, claimant, bid)
	require.NoError(t, err)

	tests := []struct {
		name     string
		beaconID common.Hash
		expire   uint64
		claimant common.Address
		bid      sdkmath.Int
		sig      []byte
		expected common.Address
		now      uint64
		expErr   error
	}{
		{"1. valid signature", beaconID, expire, claimant, bid, sig, oracle.Address, f.Now(), nil},
		{"2. valid signature with raw recovery id", beaconID, expire, claimant, bid, rawSig, oracle.Address, f.Now(), nil},
		{"3. one second before expiry", beaconID, expire, claimant, bid, sig, oracle.Address, expire - 1, nil},
		{"4. at expiry", beaconID, expire, claimant, bid, sig, oracle.Address, expire, types.ErrSignatureExpired},
		{"5. after expiry with bad signature", beaconID, expire, claimant, bid, otherSig, oracle.Address, expire + 1, types.ErrSignatureExpired},
		{"6. signed by another oracle", beaconID, expire, claimant, bid, otherSig, oracle.Address, f.Now(), types.ErrSignatureMismatch},
		{"7. bid substituted", beaconID, expire, claimant, sdkmath.NewInt(99), sig, oracle.Address, f.Now(), types.ErrSignatureMismatch},
		{"8. claimant substituted", beaconID, expire, common.HexToAddress("0x01"), bid, sig, oracle.Address, f.Now(), types.ErrSignatureMismatch},
		{"9. beacon substituted", common.HexToHash("0x02"), expire, claimant, bid, sig, oracle.Address, f.Now(), types.ErrSignatureMismatch},
		{"10. expiry substituted", beaconID, expire + 1, claimant, bid, sig, oracle.Address, f.Now(), types.ErrSignatureMismatch},
		{"11. truncated signature", beaconID, expire, claimant, bid, sig[:64], oracle.Address, f.Now(), types.ErrSignatureMismatch},
		{"12. empty signature", beaconID, expire, claimant, bid, nil, oracle.Address, f.Now(), types.ErrSignatureMismatch},
		{"13. zero expected signer", beaconID, expire, claimant, bid, make([]byte, 65), common.Address{}, f.Now(), types.ErrSignatureMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := f.Ctx.WithBlockTime(unixTime(tc.now))

			err := k.VerifyClaimantSignature(ctx, tc.beaconID, tc.expire, tc.claimant, tc.bid, tc.sig, tc.expected)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				require.False(t, k.IsAuthorized(ctx, tc.beaconID, tc.expire, tc.claimant, tc.bid, tc.sig, tc.expected))
			} else {
				require.NoError(t, err)
				require.True(t, k.IsAuthorized(ctx, tc.beaconID, tc.expire, tc.claimant, tc.bid, tc.sig, tc.expected))
			}
		})
	}
}
