package types

// oev module event types
const (
	// event types
	EventTypeUpdateBeacon         = ModuleName + "_update_beacon"
	EventTypeUpdateBeaconSet      = ModuleName + "_update_beacon_set"
	EventTypeRegisterSubscription = ModuleName + "_register_subscription"
	EventTypeWithdrawProceeds     = ModuleName + "_withdraw_proceeds"
	EventTypeChangeModerator      = ModuleName + "_change_moderator_address"

	// event attributes
	AttributeKeyClaimant       = "claimant"
	AttributeKeySubscriptionID = "subscription_id"
	AttributeKeyBeaconID       = "beacon_id"
	AttributeKeyBeaconSetID    = "beacon_set_id"
	AttributeKeyOracle         = "oracle"
	AttributeKeyTemplateID     = "template_id"
	AttributeKeyBidAmount      = "bid_amount"
	AttributeKeyPayment        = "payment"
	AttributeKeySettledCount   = "settled_count"
	AttributeKeyRecipient      = "recipient"
	AttributeKeyAmount         = "amount"
	AttributeKeyModerator      = "moderator"
)
