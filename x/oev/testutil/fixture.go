package testutil

import (
	"crypto/ecdsa"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/store"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	tmdb "github.com/tendermint/tm-db"

	"github.com/GPTx-global/oev-relay/x/oev/types"
)

// Bech32Prefix is the account prefix of every address the tests encode.
const Bech32Prefix = "guru"

// BlockTime is the block time of contexts built by NewFixture.
var BlockTime = time.Unix(1_700_000_000, 0).UTC()

// The sdk caches the bech32 string of an address the first time it is
// encoded, so the prefix must be set before any test builds one.
func init() {
	setBech32Prefix()
}

func setBech32Prefix() {
	config := sdk.GetConfig()
	config.SetBech32PrefixForAccount(Bech32Prefix, Bech32Prefix+sdk.PrefixPublic)
}

// Fixture bundles a context with the stores the oev keeper depends on.
type Fixture struct {
	Ctx       sdk.Context
	StoreKey  *storetypes.KVStoreKey
	FeedStore *FeedStore
	Bank      BankKeeper
	Accounts  AccountKeeper
}

// NewFixture mounts the oev, feed and bank stores on one IAVL multistore.
func NewFixture(t require.TestingT) *Fixture {
	setBech32Prefix()

	storeKey := sdk.NewKVStoreKey(types.StoreKey)
	memStoreKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)
	feedKey := sdk.NewKVStoreKey("feeds")
	bankKey := sdk.NewKVStoreKey("testbank")

	db := tmdb.NewMemDB()
	stateStore := store.NewCommitMultiStore(db)
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memStoreKey, storetypes.StoreTypeMemory, nil)
	stateStore.MountStoreWithDB(feedKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	ctx := sdk.NewContext(stateStore, tmproto.Header{Time: BlockTime}, false, log.NewNopLogger())

	return &Fixture{
		Ctx:       ctx,
		StoreKey:  storeKey,
		FeedStore: NewFeedStore(feedKey),
		Bank:      NewBankKeeper(bankKey),
		Accounts:  AccountKeeper{},
	}
}

// Now returns the fixture's block time in unix seconds.
func (f *Fixture) Now() uint64 {
	return uint64(f.Ctx.BlockTime().Unix())
}

// Oracle is a signing identity for beacon values and bid acceptance.
type Oracle struct {
	Key     *ecdsa.PrivateKey
	Address common.Address
}

// NewOracle generates a fresh oracle key.
func NewOracle(t require.TestingT) Oracle {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return Oracle{Key: key, Address: crypto.PubkeyToAddress(key.PublicKey)}
}

// SignData signs a beacon value for subscriptionID.
func (o Oracle) SignData(t require.TestingT, subscriptionID common.Hash, timestamp uint64, data []byte) []byte {
	sig, err := crypto.Sign(OracleDataDigest(subscriptionID, timestamp, data), o.Key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27
	return sig
}

// Bid describes the terms of a request built by SignedRequest.
type Bid struct {
	SubscriptionID common.Hash
	BeaconID       common.Hash
	Claimant       sdk.AccAddress
	Amount         int64
	ValueTimestamp uint64
	Expire         uint64
	Value          int64
}

// SignedRequest builds a request carrying both the data and claimant
// signatures of o.
func (o Oracle) SignedRequest(t require.TestingT, bid Bid) types.BeaconUpdateRequest {
	data := EncodeValue(bid.Value)
	amount := sdkmath.NewInt(bid.Amount)

	claimantSig, err := types.SignClaimantMessage(o.Key, bid.BeaconID, bid.Expire, types.ClaimantAddress(bid.Claimant), amount)
	require.NoError(t, err)

	return types.BeaconUpdateRequest{
		SubscriptionID:    bid.SubscriptionID,
		BeaconID:          bid.BeaconID,
		OracleAddress:     o.Address,
		BidAmount:         amount,
		ValueTimestamp:    bid.ValueTimestamp,
		ExpireTimestamp:   bid.Expire,
		UpdateData:        data,
		OracleSignature:   o.SignData(t, bid.SubscriptionID, bid.ValueTimestamp, data),
		ClaimantSignature: claimantSig,
	}
}

// AccAddress derives a deterministic account address from seed.
func AccAddress(seed string) sdk.AccAddress {
	return sdk.AccAddress(crypto.Keccak256([]byte(seed))[:common.AddressLength])
}
