package types

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "oev"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_oev"
)

// KV Store key prefix bytes
const (
	prefixParams = iota + 1
	prefixModeratorAddress
)

// KV Store key prefixes
var (
	KeyParams           = []byte{prefixParams}
	KeyModeratorAddress = []byte{prefixModeratorAddress}
)

// ModuleAddress is the account that relays updates and collects bids.
var ModuleAddress = authtypes.NewModuleAddress(ModuleName)
