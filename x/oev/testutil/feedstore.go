package testutil

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"

	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/GPTx-global/oev-relay/x/oev/types"
)

const (
	prefixSubscription = iota + 1
	prefixBeacon
	prefixBeaconSet
)

// FeedStore is a KV-backed feed store used to exercise the keeper. Stored state
// lives in the context's multistore and therefore follows cache context
// commits and rollbacks; the call logs do not.
type FeedStore struct {
	storeKey storetypes.StoreKey

	// subscription ids passed to FulfillUpdate, in call order
	Fulfilled []common.Hash
	// beacon id sequences passed to RecomputeAggregate, in call order
	Aggregated [][]common.Hash
}

var _ types.FeedStore = &FeedStore{}

func NewFeedStore(storeKey storetypes.StoreKey) *FeedStore {
	return &FeedStore{storeKey: storeKey}
}

// DeriveBeaconID returns the beacon id of an oracle/template pair.
func DeriveBeaconID(oracle common.Address, templateID common.Hash) common.Hash {
	return crypto.Keccak256Hash(oracle.Bytes(), templateID.Bytes())
}

// DeriveBeaconSetID returns the beacon set id of an ordered beacon sequence.
func DeriveBeaconSetID(beaconIDs []common.Hash) common.Hash {
	packed := make([]byte, 0, len(beaconIDs)*common.HashLength)
	for _, id := range beaconIDs {
		packed = append(packed, id.Bytes()...)
	}
	return crypto.Keccak256Hash(packed)
}

// OracleDataDigest is what an oracle signs to vouch for a beacon value.
func OracleDataDigest(subscriptionID common.Hash, timestamp uint64, data []byte) []byte {
	hash := crypto.Keccak256Hash(subscriptionID.Bytes(), math.U256Bytes(new(big.Int).SetUint64(timestamp)), data)
	return types.SignedDigest(hash)
}

// EncodeValue encodes v as an int256 word.
func EncodeValue(v int64) []byte {
	return math.U256Bytes(big.NewInt(v))
}

func (s *FeedStore) RegisterRelayedSubscription(ctx sdk.Context, oracle common.Address, templateID common.Hash, relayer, beneficiary sdk.AccAddress) (common.Hash, error) {
	if oracle == (common.Address{}) {
		return common.Hash{}, fmt.Errorf("oracle address zero")
	}

	subscriptionID := crypto.Keccak256Hash(oracle.Bytes(), templateID.Bytes(), relayer, beneficiary)
	beaconID := DeriveBeaconID(oracle, templateID)

	record := make([]byte, 0, common.HashLength+common.AddressLength+len(relayer))
	record = append(record, beaconID.Bytes()...)
	record = append(record, oracle.Bytes()...)
	record = append(record, relayer...)

	ctx.KVStore(s.storeKey).Set(key(prefixSubscription, subscriptionID), record)
	return subscriptionID, nil
}

func (s *FeedStore) SubscriptionBeaconID(ctx sdk.Context, subscriptionID common.Hash) common.Hash {
	record := ctx.KVStore(s.storeKey).Get(key(prefixSubscription, subscriptionID))
	if len(record) < common.HashLength {
		return common.Hash{}
	}
	return common.BytesToHash(record[:common.HashLength])
}

func (s *FeedStore) FulfillUpdate(ctx sdk.Context, subscriptionID common.Hash, oracle common.Address, relayer, beneficiary sdk.AccAddress, timestamp uint64, data, signature []byte) error {
	s.Fulfilled = append(s.Fulfilled, subscriptionID)

	store := ctx.KVStore(s.storeKey)
	record := store.Get(key(prefixSubscription, subscriptionID))
	if len(record) < common.HashLength+common.AddressLength {
		return fmt.Errorf("subscription %s not registered", subscriptionID.Hex())
	}

	beaconID := common.BytesToHash(record[:common.HashLength])
	registered := common.BytesToAddress(record[common.HashLength : common.HashLength+common.AddressLength])
	if registered != oracle {
		return fmt.Errorf("oracle %s does not serve subscription", oracle.Hex())
	}
	if !bytes.Equal(record[common.HashLength+common.AddressLength:], relayer) {
		return fmt.Errorf("relayer %s is not registered", relayer)
	}
	if len(data) != common.HashLength {
		return fmt.Errorf("data length %d", len(data))
	}
	if types.RecoverSigner(OracleDataDigest(subscriptionID, timestamp, data), signature) != oracle {
		return fmt.Errorf("invalid oracle signature")
	}
	if _, current, ok := s.BeaconValue(ctx, beaconID); ok && timestamp <= current {
		return fmt.Errorf("timestamp %d does not update beacon at %d", timestamp, current)
	}

	value := make([]byte, 0, 8+common.HashLength)
	value = append(value, sdk.Uint64ToBigEndian(timestamp)...)
	value = append(value, data...)
	store.Set(key(prefixBeacon, beaconID), value)
	return nil
}

func (s *FeedStore) RecomputeAggregate(ctx sdk.Context, beaconIDs []common.Hash) (common.Hash, error) {
	s.Aggregated = append(s.Aggregated, append([]common.Hash(nil), beaconIDs...))

	values := make([]*big.Int, 0, len(beaconIDs))
	for _, id := range beaconIDs {
		v, _, ok := s.BeaconValue(ctx, id)
		if !ok {
			return common.Hash{}, fmt.Errorf("beacon %s not initialized", id.Hex())
		}
		values = append(values, v)
	}

	setID := DeriveBeaconSetID(beaconIDs)
	ctx.KVStore(s.storeKey).Set(key(prefixBeaconSet, setID), math.U256Bytes(median(values)))
	return setID, nil
}

// BeaconValue returns the stored value and timestamp of a beacon.
func (s *FeedStore) BeaconValue(ctx sdk.Context, beaconID common.Hash) (*big.Int, uint64, bool) {
	bz := ctx.KVStore(s.storeKey).Get(key(prefixBeacon, beaconID))
	if len(bz) != 8+common.HashLength {
		return nil, 0, false
	}
	return math.S256(new(big.Int).SetBytes(bz[8:])), sdk.BigEndianToUint64(bz[:8]), true
}

// BeaconSetValue returns the stored aggregate of a beacon set.
func (s *FeedStore) BeaconSetValue(ctx sdk.Context, beaconSetID common.Hash) (*big.Int, bool) {
	bz := ctx.KVStore(s.storeKey).Get(key(prefixBeaconSet, beaconSetID))
	if len(bz) == 0 {
		return nil, false
	}
	return math.S256(new(big.Int).SetBytes(bz)), true
}

func median(values []*big.Int) *big.Int {
	sorted := append([]*big.Int(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Cmp(sorted[j]) < 0 })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return new(big.Int).Set(sorted[mid])
	}
	sum := new(big.Int).Add(sorted[mid-1], sorted[mid])
	return sum.Quo(sum, big.NewInt(2))
}

func key(prefix byte, id common.Hash) []byte {
	return append([]byte{prefix}, id.Bytes()...)
}
