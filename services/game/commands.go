package game

// Action types, mirroring the realtime event names.
const (
	ActionNewRun        = "new_run"
	ActionSelectBlind   = "select_blind"
	ActionSkipBlind     = "skip_blind"
	ActionToggleCard    = "toggle_card"
	ActionSortHand      = "sort_hand"
	ActionPlayHand      = "play_hand"
	ActionDiscard       = "discard"
	ActionUseConsumable = "use_consumable"
	ActionBuyOffer      = "buy_offer"
	ActionSellJoker     = "sell_joker"
	ActionRerollShop    = "reroll_shop"
	ActionLeaveShop     = "leave_shop"
	ActionQuit          = "quit"
)

// Action is one player intent. Index points at a hand card, shop offer,
// joker or consumable depending on Type; Targets carries the hand indices a
// tarot is used on; Seed only matters for new_run.
type Action struct {
	Type    string `json:"type" mapstructure:"type"`
	Index   int    `json:"index" mapstructure:"index"`
	Targets []int  `json:"targets" mapstructure:"targets"`
	SortBy  string `json:"sort_by" mapstructure:"sort_by"`
	Seed    uint64 `json:"seed" mapstructure:"seed"`
}

// Apply routes one command to its operation. Commands are processed one at
// a time to completion; a returned error means nothing changed.
func (s *RunState) Apply(a Action) error {
	switch a.Type {
	case ActionNewRun:
		s.Reset(a.Seed)
		return nil
	case ActionQuit:
		return s.Quit()
	case ActionSelectBlind:
		return s.SelectBlind()
	case ActionSkipBlind:
		return s.SkipBlind()
	case ActionToggleCard:
		return s.ToggleCardSelection(a.Index)
	case ActionSortHand:
		return s.SortHandBy(a.SortBy)
	case ActionPlayHand:
		return s.PlaySelection()
	case ActionDiscard:
		return s.DiscardSelection()
	case ActionUseConsumable:
		return s.UseConsumable(a.Index, a.Targets)
	case ActionBuyOffer:
		return s.BuyOffer(a.Index)
	case ActionSellJoker:
		return s.SellJoker(a.Index)
	case ActionRerollShop:
		return s.RerollShop()
	case ActionLeaveShop:
		return s.LeaveShop()
	default:
		return ErrIllegalTransition
	}
}
