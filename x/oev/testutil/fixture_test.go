package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GPTx-global/oev-relay/x/oev/types"
)

// Addresses encoded before any fixture exists must still carry the guru prefix.
func TestAccAddressBeforeFixture(t *testing.T) {
	moderator := AccAddress("prefix-before-fixture").String()
	require.True(t, strings.HasPrefix(moderator, Bech32Prefix+"1"), moderator)

	NewFixture(t)
	require.Equal(t, moderator, AccAddress("prefix-before-fixture").String())
	require.NoError(t, types.NewGenesisState(types.DefaultParams(), moderator).Validate())
}
