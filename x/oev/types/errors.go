package types

import (
	errorsmod "cosmossdk.io/errors"
)

// errors
var (
	ErrZeroAddress             = errorsmod.Register(ModuleName, 2, "feed store address is zero")
	ErrSubscriptionMismatch    = errorsmod.Register(ModuleName, 3, "subscription does not match beacon")
	ErrSignatureMismatch       = errorsmod.Register(ModuleName, 4, "signature mismatch")
	ErrSignatureExpired        = errorsmod.Register(ModuleName, 5, "signature expired")
	ErrInsufficientBid         = errorsmod.Register(ModuleName, 6, "insufficient bid")
	ErrParameterLengthMismatch = errorsmod.Register(ModuleName, 7, "parameter length mismatch")
	ErrInsufficientBeaconCount = errorsmod.Register(ModuleName, 8, "insufficient beacon count")
	ErrInvalidBid              = errorsmod.Register(ModuleName, 9, "invalid bid amount")
	ErrInvalidDenom            = errorsmod.Register(ModuleName, 10, "invalid payment denom")
	ErrSettlementDisabled      = errorsmod.Register(ModuleName, 11, "settlement is disabled")
	ErrWrongModerator          = errorsmod.Register(ModuleName, 12, "the operation is allowed only from moderator address")
	ErrInsufficientProceeds    = errorsmod.Register(ModuleName, 13, "insufficient proceeds")
	ErrInvalidSignature        = errorsmod.Register(ModuleName, 14, "invalid signature encoding")
)
