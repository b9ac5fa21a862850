package keeper

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func unixTime(sec uint64) time.Time {
	return time.Unix(int64(sec), 0).UTC()
}

// requireCoin compares coins by value; sdk.Int internals differ between
// computed and decoded amounts.
func requireCoin(t require.TestingT, expected, actual sdk.Coin) {
	require.Equal(t, expected.String(), actual.String())
}
