package cli

import (
	"fmt"
	"strings"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cast"

	"github.com/GPTx-global/oev-relay/oevd/config"
	"github.com/GPTx-global/oev-relay/x/oev/types"
)

const (
	FlagKeyFile  = "key-file"
	FlagRequest  = "request"
	FlagClaimant = "claimant"
)

// now is replaced in tests.
var now = func() time.Time { return time.Now() }

func parseBeaconID(s string) (common.Hash, error) {
	bz, err := hexutil.Decode(s)
	if err != nil {
		return common.Hash{}, fmt.Errorf("beacon id: %w", err)
	}
	if len(bz) != common.HashLength {
		return common.Hash{}, fmt.Errorf("beacon id must be %d bytes, got %d", common.HashLength, len(bz))
	}
	return common.BytesToHash(bz), nil
}

// parseExpire accepts unix seconds, or +N for N seconds from now. Both forms
// must be plain decimal.
func parseExpire(s string) (uint64, error) {
	if rest, ok := strings.CutPrefix(s, "+"); ok {
		offset, err := parseDecimal(rest)
		if err != nil {
			return 0, fmt.Errorf("expire offset: %w", err)
		}
		return uint64(now().Unix()) + offset, nil
	}

	expire, err := parseDecimal(s)
	if err != nil {
		return 0, fmt.Errorf("expire timestamp: %w", err)
	}
	return expire, nil
}

// parseDecimal rejects the hex, octal and binary forms cast would accept.
func parseDecimal(s string) (uint64, error) {
	if s == "" || (len(s) > 1 && s[0] == '0') || strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("%q is not a decimal number", s)
	}
	return cast.ToUint64E(s)
}

// parseClaimant accepts a 0x-prefixed hex address or a bech32 account address.
func parseClaimant(s string) (common.Address, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if !common.IsHexAddress(s) {
			return common.Address{}, fmt.Errorf("invalid claimant address %s", s)
		}
		return common.HexToAddress(s), nil
	}

	prefix := config.Bech32Prefix()
	if prefix == "" {
		prefix = sdk.GetConfig().GetBech32AccountAddrPrefix()
	}

	bz, err := sdk.GetFromBech32(s, prefix)
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid claimant address: %w", err)
	}
	if err := sdk.VerifyAddressFormat(bz); err != nil {
		return common.Address{}, fmt.Errorf("invalid claimant address: %w", err)
	}
	return types.ClaimantAddress(bz), nil
}

func parseBid(s string) (sdkmath.Int, error) {
	bid, ok := sdkmath.NewIntFromString(s)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("invalid bid amount %s", s)
	}
	if err := types.ValidateBidAmount(bid); err != nil {
		return sdkmath.Int{}, err
	}
	return bid, nil
}

// bidTerms are the fields bound by a claimant signature.
type bidTerms struct {
	beaconID common.Hash
	expire   uint64
	claimant common.Address
	bid      sdkmath.Int
}

func parseBidTerms(beaconID, expire, claimant, bid string) (bidTerms, error) {
	var (
		terms bidTerms
		err   error
	)
	if terms.beaconID, err = parseBeaconID(beaconID); err != nil {
		return bidTerms{}, err
	}
	if terms.expire, err = parseExpire(expire); err != nil {
		return bidTerms{}, err
	}
	if terms.claimant, err = parseClaimant(claimant); err != nil {
		return bidTerms{}, err
	}
	if terms.bid, err = parseBid(bid); err != nil {
		return bidTerms{}, err
	}
	return terms, nil
}

func (t bidTerms) hash() common.Hash {
	return types.ClaimantMessageHash(t.beaconID, t.expire, t.claimant, t.bid)
}
