package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GPTx-global/oev-relay/x/oev/types"
)

func TestGenesisStateValidate(t *testing.T) {
	tests := []struct {
		name     string
		genesis  types.GenesisState
		expError bool
	}{
		{
			name:    "1. default genesis",
			genesis: *types.DefaultGenesisState(),
		},
		{
			name:    "2. with moderator",
			genesis: types.NewGenesisState(types.DefaultParams(), testAccount("moderator").String()),
		},
		{
			name:     "3. invalid moderator",
			genesis:  types.NewGenesisState(types.DefaultParams(), "guru1invalid"),
			expError: true,
		},
		{
			name:     "4. empty bid denom",
			genesis:  types.NewGenesisState(types.NewParams(true, ""), ""),
			expError: true,
		},
		{
			name:    "5. settlement disabled",
			genesis: types.NewGenesisState(types.NewParams(false, "uatom"), ""),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genesis.Validate()
			if tc.expError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDefaultParams(t *testing.T) {
	params := types.DefaultParams()
	require.True(t, params.EnableSettlement)
	require.Equal(t, types.DefaultBidDenom, params.BidDenom)
	require.NoError(t, params.Validate())
}
