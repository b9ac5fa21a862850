package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// ModuleCdc encodes params and message sign bytes. The module's types are
// plain Go structs, so the amino JSON codec is used instead of protobuf.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	ModuleCdc.Seal()
}
