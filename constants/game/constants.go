package game_constants

// Run defaults. NOTE: keep in sync with what the frontend shows on the run HUD
const StartingMoney = 4
const TotalHandPlays = 4
const TotalDiscards = 3
const BaseHandSize = 8
const MaxJokersPerRun = 5
const MaxConsumablesPerRun = 2
const MaxSelectedCards = 5
const FinalAnte = 8

// Blind rewards
const (
	SmallBlindReward = 3
	BigBlindReward   = 4
	BossBlindReward  = 5
)

// Score target multipliers over the ante base
const (
	SmallBlindMultiplier = 1.0
	BigBlindMultiplier   = 1.5
	BossBlindMultiplier  = 2.0
	WallBlindMultiplier  = 4.0
)

// Cash-out extras
const MoneyPerHandLeft = 1
const InterestDenominator = 5 // $1 of interest per $5 held
const MaxInterest = 5
const MoneyPerGoldCard = 3

// Shop constants
const (
	ShopJokerSlots      = 2
	ShopConsumableSlots = 2
	BaseRerollCost      = 5
	MinSellValue        = 1
	VoucherPrice        = 10
)

// Pack types (1-3) - Used to identify the type of pack
const (
	PACK_TYPE_CELESTIAL = 1 // Contains planet cards
	PACK_TYPE_ARCANA    = 2 // Contains tarot cards
	PACK_TYPE_BUFFOON   = 3 // Contains a joker
)

// Offer type constants
const JOKER_TYPE = "joker"
const CONSUMABLE_TYPE = "consumable"
const PACK_TYPE = "pack"
const VOUCHER_TYPE = "voucher"
