package testutil

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/GPTx-global/oev-relay/x/oev/types"
)

// AccountKeeper derives module addresses the way x/auth does.
type AccountKeeper struct{}

var _ types.AccountKeeper = AccountKeeper{}

func (AccountKeeper) GetModuleAddress(name string) sdk.AccAddress {
	return authtypes.NewModuleAddress(name)
}

// BankKeeper keeps balances in a KV store so transfers roll back with the
// cache context that made them.
type BankKeeper struct {
	storeKey storetypes.StoreKey
}

var _ types.BankKeeper = BankKeeper{}

func NewBankKeeper(storeKey storetypes.StoreKey) BankKeeper {
	return BankKeeper{storeKey: storeKey}
}

func (b BankKeeper) GetBalance(ctx sdk.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	bz := ctx.KVStore(b.storeKey).Get(balanceKey(addr, denom))
	if len(bz) == 0 {
		return sdk.NewCoin(denom, sdkmath.ZeroInt())
	}

	var amount sdkmath.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(err)
	}
	return sdk.NewCoin(denom, amount)
}

// Fund credits addr out of thin air.
func (b BankKeeper) Fund(ctx sdk.Context, addr sdk.AccAddress, coins sdk.Coins) {
	for _, coin := range coins {
		b.setBalance(ctx, addr, b.GetBalance(ctx, addr, coin.Denom).Add(coin))
	}
}

func (b BankKeeper) SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.send(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (b BankKeeper) SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.send(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (b BankKeeper) send(ctx sdk.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	for _, coin := range amt {
		balance := b.GetBalance(ctx, from, coin.Denom)
		if balance.Amount.LT(coin.Amount) {
			return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "%s is smaller than %s", balance, coin)
		}
		b.setBalance(ctx, from, balance.Sub(coin))
		b.setBalance(ctx, to, b.GetBalance(ctx, to, coin.Denom).Add(coin))
	}
	return nil
}

func (b BankKeeper) setBalance(ctx sdk.Context, addr sdk.AccAddress, coin sdk.Coin) {
	bz, err := coin.Amount.Marshal()
	if err != nil {
		panic(err)
	}
	ctx.KVStore(b.storeKey).Set(balanceKey(addr, coin.Denom), bz)
}

func balanceKey(addr sdk.AccAddress, denom string) []byte {
	return append(append([]byte{byte(len(addr))}, addr...), []byte(denom)...)
}
