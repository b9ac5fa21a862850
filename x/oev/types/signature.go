package types

import (
	"crypto/ecdsa"
	"math/big"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
)

// ClaimantMessageLength is the size of the packed claimant message:
// bytes32 beacon id, uint256 expiry, address claimant, uint256 bid.
const ClaimantMessageLength = common.HashLength + 32 + common.AddressLength + 32

// ClaimantMessage packs the fields an oracle signs when it accepts a bid.
// The layout is abi.encodePacked(bytes32, uint256, address, uint256); changing it
// invalidates every signature issued so far.
func ClaimantMessage(beaconID common.Hash, expireTimestamp uint64, claimant common.Address, bidAmount sdkmath.Int) []byte {
	bid := new(big.Int)
	if !bidAmount.IsNil() {
		bid = bidAmount.BigInt()
	}

	msg := make([]byte, 0, ClaimantMessageLength)
	msg = append(msg, beaconID.Bytes()...)
	msg = append(msg, math.U256Bytes(new(big.Int).SetUint64(expireTimestamp))...)
	msg = append(msg, claimant.Bytes()...)
	msg = append(msg, math.U256Bytes(bid)...)
	return msg
}

// ClaimantMessageHash returns keccak256 of the packed claimant message.
func ClaimantMessageHash(beaconID common.Hash, expireTimestamp uint64, claimant common.Address, bidAmount sdkmath.Int) common.Hash {
	return crypto.Keccak256Hash(ClaimantMessage(beaconID, expireTimestamp, claimant, bidAmount))
}

// SignedDigest wraps a message hash in the EIP-191 personal message prefix.
func SignedDigest(hash common.Hash) []byte {
	return accounts.TextHash(hash.Bytes())
}

// RecoverSigner returns the address that produced sig over digest. Malformed,
// high-s or otherwise unrecoverable signatures yield the zero address.
func RecoverSigner(digest, sig []byte) common.Address {
	if len(digest) != common.HashLength || len(sig) != crypto.SignatureLength {
		return common.Address{}
	}

	rsv := make([]byte, crypto.SignatureLength)
	copy(rsv, sig)
	if rsv[crypto.RecoveryIDOffset] >= 27 {
		rsv[crypto.RecoveryIDOffset] -= 27
	}

	r := new(big.Int).SetBytes(rsv[:32])
	s := new(big.Int).SetBytes(rsv[32:64])
	if !crypto.ValidateSignatureValues(rsv[crypto.RecoveryIDOffset], r, s, true) {
		return common.Address{}
	}

	pub, err := crypto.SigToPub(digest, rsv)
	if err != nil {
		return common.Address{}
	}
	return crypto.PubkeyToAddress(*pub)
}

// RecoverClaimantSigner recovers the oracle that signed the claimant message.
func RecoverClaimantSigner(beaconID common.Hash, expireTimestamp uint64, claimant common.Address, bidAmount sdkmath.Int, sig []byte) common.Address {
	hash := ClaimantMessageHash(beaconID, expireTimestamp, claimant, bidAmount)
	return RecoverSigner(SignedDigest(hash), sig)
}

// SignClaimantMessage produces the claimant signature with V in {27, 28}.
func SignClaimantMessage(key *ecdsa.PrivateKey, beaconID common.Hash, expireTimestamp uint64, claimant common.Address, bidAmount sdkmath.Int) ([]byte, error) {
	hash := ClaimantMessageHash(beaconID, expireTimestamp, claimant, bidAmount)
	sig, err := crypto.Sign(SignedDigest(hash), key)
	if err != nil {
		return nil, err
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// ClaimantAddress converts an account address into the address bound by the
// claimant message.
func ClaimantAddress(addr sdk.AccAddress) common.Address {
	return common.BytesToAddress(addr)
}
