package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/ethereum/go-ethereum/common"
)

// message types for the oev module
const (
	TypeMsgUpdateBeaconWithSignedData       = "update_beacon_with_signed_data"
	TypeMsgUpdateBeaconSetWithSignedData    = "update_beacon_set_with_signed_data"
	TypeMsgRegisterBeaconUpdateSubscription = "register_beacon_update_subscription"
	TypeMsgWithdrawProceeds                 = "withdraw_proceeds"
	TypeMsgUpdateModeratorAddress           = "update_moderator_address"
)

// Msg is implemented by every oev message. The messages are plain structs
// signed over their amino JSON, so they do not satisfy sdk.Msg.
type Msg interface {
	Route() string
	Type() string
	ValidateBasic() error
	GetSigners() []sdk.AccAddress
	GetSignBytes() []byte
}

var (
	_ Msg = &MsgUpdateBeaconWithSignedData{}
	_ Msg = &MsgUpdateBeaconSetWithSignedData{}
	_ Msg = &MsgRegisterBeaconUpdateSubscription{}
	_ Msg = &MsgWithdrawProceeds{}
	_ Msg = &MsgUpdateModeratorAddress{}
)

// MsgServer is the server API for the oev module's messages.
type MsgServer interface {
	UpdateBeaconWithSignedData(context.Context, *MsgUpdateBeaconWithSignedData) (*MsgUpdateBeaconWithSignedDataResponse, error)
	UpdateBeaconSetWithSignedData(context.Context, *MsgUpdateBeaconSetWithSignedData) (*MsgUpdateBeaconSetWithSignedDataResponse, error)
	RegisterBeaconUpdateSubscription(context.Context, *MsgRegisterBeaconUpdateSubscription) (*MsgRegisterBeaconUpdateSubscriptionResponse, error)
	WithdrawProceeds(context.Context, *MsgWithdrawProceeds) (*MsgWithdrawProceedsResponse, error)
	UpdateModeratorAddress(context.Context, *MsgUpdateModeratorAddress) (*MsgUpdateModeratorAddressResponse, error)
}

// MsgUpdateBeaconWithSignedData settles one searcher bid.
type MsgUpdateBeaconWithSignedData struct {
	Claimant string              `json:"claimant"`
	Payment  sdk.Coin            `json:"payment"`
	Request  BeaconUpdateRequest `json:"request"`
}

type MsgUpdateBeaconWithSignedDataResponse struct{}

// MsgUpdateBeaconSetWithSignedData settles a batch of bids and updates the
// beacon set built from them.
type MsgUpdateBeaconSetWithSignedData struct {
	Claimant string               `json:"claimant"`
	Payment  sdk.Coin             `json:"payment"`
	Batch    AggregateUpdateBatch `json:"batch"`
}

type MsgUpdateBeaconSetWithSignedDataResponse struct {
	BeaconSetID  common.Hash `json:"beacon_set_id"`
	SettledCount uint32      `json:"settled_count"`
}

// MsgRegisterBeaconUpdateSubscription registers the module as relayer of an
// oracle/template pair.
type MsgRegisterBeaconUpdateSubscription struct {
	Sender     string         `json:"sender"`
	Oracle     common.Address `json:"oracle"`
	TemplateID common.Hash    `json:"template_id"`
}

type MsgRegisterBeaconUpdateSubscriptionResponse struct {
	SubscriptionID common.Hash `json:"subscription_id"`
}

// MsgWithdrawProceeds moves collected bids out of the module account.
type MsgWithdrawProceeds struct {
	ModeratorAddress string   `json:"moderator_address"`
	Recipient        string   `json:"recipient"`
	Amount           sdk.Coin `json:"amount"`
}

type MsgWithdrawProceedsResponse struct{}

// MsgUpdateModeratorAddress hands the moderator role to a new address.
type MsgUpdateModeratorAddress struct {
	ModeratorAddress    string `json:"moderator_address"`
	NewModeratorAddress string `json:"new_moderator_address"`
}

type MsgUpdateModeratorAddressResponse struct{}

// NewMsgUpdateBeaconWithSignedData creates a new MsgUpdateBeaconWithSignedData instance
func NewMsgUpdateBeaconWithSignedData(claimant sdk.AccAddress, payment sdk.Coin, req BeaconUpdateRequest) *MsgUpdateBeaconWithSignedData {
	return &MsgUpdateBeaconWithSignedData{
		Claimant: claimant.String(),
		Payment:  payment,
		Request:  req,
	}
}

// Route implements the Msg interface
func (msg MsgUpdateBeaconWithSignedData) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgUpdateBeaconWithSignedData) Type() string { return TypeMsgUpdateBeaconWithSignedData }

// GetSigners implements the Msg interface
func (msg MsgUpdateBeaconWithSignedData) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Claimant)}
}

// GetSignBytes implements the Msg interface
func (msg MsgUpdateBeaconWithSignedData) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the Msg interface
func (msg MsgUpdateBeaconWithSignedData) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Claimant); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid claimant address (%s)", err)
	}
	if err := validatePayment(msg.Payment); err != nil {
		return err
	}
	return msg.Request.ValidateBasic()
}

// NewMsgUpdateBeaconSetWithSignedData creates a new MsgUpdateBeaconSetWithSignedData instance
func NewMsgUpdateBeaconSetWithSignedData(claimant sdk.AccAddress, payment sdk.Coin, batch AggregateUpdateBatch) *MsgUpdateBeaconSetWithSignedData {
	return &MsgUpdateBeaconSetWithSignedData{
		Claimant: claimant.String(),
		Payment:  payment,
		Batch:    batch,
	}
}

// Route implements the Msg interface
func (msg MsgUpdateBeaconSetWithSignedData) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgUpdateBeaconSetWithSignedData) Type() string {
	return TypeMsgUpdateBeaconSetWithSignedData
}

// GetSigners implements the Msg interface
func (msg MsgUpdateBeaconSetWithSignedData) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Claimant)}
}

// GetSignBytes implements the Msg interface
func (msg MsgUpdateBeaconSetWithSignedData) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the Msg interface
func (msg MsgUpdateBeaconSetWithSignedData) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Claimant); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid claimant address (%s)", err)
	}
	if err := validatePayment(msg.Payment); err != nil {
		return err
	}
	return msg.Batch.ValidateBasic()
}

// NewMsgRegisterBeaconUpdateSubscription creates a new MsgRegisterBeaconUpdateSubscription instance
func NewMsgRegisterBeaconUpdateSubscription(sender sdk.AccAddress, oracle common.Address, templateID common.Hash) *MsgRegisterBeaconUpdateSubscription {
	return &MsgRegisterBeaconUpdateSubscription{
		Sender:     sender.String(),
		Oracle:     oracle,
		TemplateID: templateID,
	}
}

// Route implements the Msg interface
func (msg MsgRegisterBeaconUpdateSubscription) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgRegisterBeaconUpdateSubscription) Type() string {
	return TypeMsgRegisterBeaconUpdateSubscription
}

// GetSigners implements the Msg interface
func (msg MsgRegisterBeaconUpdateSubscription) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Sender)}
}

// GetSignBytes implements the Msg interface
func (msg MsgRegisterBeaconUpdateSubscription) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the Msg interface
func (msg MsgRegisterBeaconUpdateSubscription) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address (%s)", err)
	}
	if msg.Oracle == (common.Address{}) {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "oracle address cannot be zero")
	}
	return nil
}

// NewMsgWithdrawProceeds creates a new MsgWithdrawProceeds instance
func NewMsgWithdrawProceeds(moderator, recipient sdk.AccAddress, amount sdk.Coin) *MsgWithdrawProceeds {
	return &MsgWithdrawProceeds{
		ModeratorAddress: moderator.String(),
		Recipient:        recipient.String(),
		Amount:           amount,
	}
}

// Route implements the Msg interface
func (msg MsgWithdrawProceeds) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgWithdrawProceeds) Type() string { return TypeMsgWithdrawProceeds }

// GetSigners implements the Msg interface
func (msg MsgWithdrawProceeds) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.ModeratorAddress)}
}

// GetSignBytes implements the Msg interface
func (msg MsgWithdrawProceeds) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the Msg interface
func (msg MsgWithdrawProceeds) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.ModeratorAddress); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid moderator address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid recipient address (%s)", err)
	}
	if !msg.Amount.IsValid() || msg.Amount.IsZero() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "invalid amount %s", msg.Amount)
	}
	return nil
}

// NewMsgUpdateModeratorAddress creates a new MsgUpdateModeratorAddress instance
func NewMsgUpdateModeratorAddress(moderator, newModerator sdk.AccAddress) *MsgUpdateModeratorAddress {
	return &MsgUpdateModeratorAddress{
		ModeratorAddress:    moderator.String(),
		NewModeratorAddress: newModerator.String(),
	}
}

// Route implements the Msg interface
func (msg MsgUpdateModeratorAddress) Route() string { return RouterKey }

// Type implements the Msg interface
func (msg MsgUpdateModeratorAddress) Type() string { return TypeMsgUpdateModeratorAddress }

// GetSigners implements the Msg interface
func (msg MsgUpdateModeratorAddress) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.ModeratorAddress)}
}

// GetSignBytes implements the Msg interface
func (msg MsgUpdateModeratorAddress) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the Msg interface
func (msg MsgUpdateModeratorAddress) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.ModeratorAddress); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid moderator address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewModeratorAddress); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid new moderator address (%s)", err)
	}
	return nil
}

func validatePayment(payment sdk.Coin) error {
	if err := payment.Validate(); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "invalid payment (%s)", err)
	}
	return nil
}
