package game

import (
	game_constants "Farol/constants/game"
	"Farol/services/poker"
)

// Display views of owned items, with catalog data resolved so clients
// never need the catalogs themselves.
type JokerView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      int    `json:"rarity"`
	SellValue   int    `json:"sell_value"`
}

type ConsumableView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Kind        int    `json:"kind"`
}

type OfferView struct {
	Index    int    `json:"index"`
	Type     string `json:"type"`
	ItemID   int    `json:"item_id,omitempty"`
	PackType int    `json:"pack_type,omitempty"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
}

type ShopView struct {
	Offers     []OfferView `json:"offers"`
	RerollCost int         `json:"reroll_cost"`
	Rerolls    int         `json:"rerolls"`
}

// Snapshot is the read-only projection of a run that rendering layers
// consume. It carries everything the HUD shows, including the full trace
// of the last scored play.
type Snapshot struct {
	Phase string `json:"phase"`

	Ante   int              `json:"ante"`
	Blind  string           `json:"blind"`
	Boss   *poker.BossBlind `json:"boss,omitempty"`
	Target int              `json:"target"`

	Money        int `json:"money"`
	RoundScore   int `json:"round_score"`
	HandsLeft    int `json:"hands_left"`
	DiscardsLeft int `json:"discards_left"`

	Hand     []poker.Card `json:"hand"`
	Selected []int        `json:"selected"`
	HandSize int          `json:"hand_size"`
	DeckLeft int          `json:"deck_left"`

	Jokers          []JokerView      `json:"jokers"`
	JokerSlots      int              `json:"joker_slots"`
	Consumables     []ConsumableView `json:"consumables"`
	ConsumableSlots int              `json:"consumable_slots"`
	Vouchers        []VoucherDef     `json:"vouchers"`
	HandLevels      poker.HandLevels `json:"hand_levels"`

	Shop *ShopView `json:"shop,omitempty"`

	LastHand    string            `json:"last_hand,omitempty"`
	LastTrace   []poker.ScoreStep `json:"last_trace,omitempty"`
	LastCashOut *CashOut          `json:"last_cash_out,omitempty"`
}

// Snapshot builds the current display projection of the run.
func (s *RunState) Snapshot() *Snapshot {
	snap := &Snapshot{
		Phase:           s.Phase,
		Ante:            s.Ante,
		Blind:           s.Blind,
		Target:          s.Target,
		Money:           s.Money,
		RoundScore:      s.RoundScore,
		HandsLeft:       s.HandsLeft,
		DiscardsLeft:    s.DiscardsLeft,
		Hand:            append([]poker.Card{}, s.Hand...),
		Selected:        append([]int{}, s.Selected...),
		HandSize:        s.HandSize(),
		DeckLeft:        s.Deck.CardsLeft(),
		JokerSlots:      s.JokerSlots(),
		ConsumableSlots: s.ConsumableSlots(),
		HandLevels:      s.Levels,
		LastTrace:       s.LastTrace,
		LastCashOut:     s.LastCashOut,
	}
	if boss, ok := poker.BossByID(s.BossID); ok {
		snap.Boss = &boss
	}
	if s.LastHandID != poker.HandNone {
		snap.LastHand = poker.HandName(s.LastHandID)
	}

	snap.Jokers = make([]JokerView, 0, len(s.Jokers))
	for _, owned := range s.Jokers {
		view := JokerView{ID: owned.ID, SellValue: owned.SellValue()}
		if def, ok := poker.JokerDefByID(owned.ID); ok {
			view.Name = def.Name
			view.Description = def.Description
			view.Rarity = def.Rarity
		}
		snap.Jokers = append(snap.Jokers, view)
	}

	snap.Consumables = make([]ConsumableView, 0, len(s.Consumables))
	for _, id := range s.Consumables {
		view := ConsumableView{ID: id}
		if def, ok := poker.ConsumableDefByID(id); ok {
			view.Name = def.Name
			view.Description = def.Description
			view.Kind = def.Kind
		}
		snap.Consumables = append(snap.Consumables, view)
	}

	snap.Vouchers = make([]VoucherDef, 0, len(s.Vouchers))
	for _, id := range s.Vouchers {
		if def, ok := VoucherByID(id); ok {
			snap.Vouchers = append(snap.Vouchers, def)
		}
	}

	if s.Shop != nil {
		shop := &ShopView{RerollCost: s.Shop.RerollCost(), Rerolls: s.Shop.Rerolls}
		for i, offer := range s.Shop.Offers {
			shop.Offers = append(shop.Offers, OfferView{
				Index:    i,
				Type:     offer.Type,
				ItemID:   offer.ItemID,
				PackType: offer.PackType,
				Name:     offerName(offer),
				Price:    offer.Price,
			})
		}
		snap.Shop = shop
	}
	return snap
}

func offerName(offer ShopOffer) string {
	switch offer.Type {
	case game_constants.JOKER_TYPE:
		if def, ok := poker.JokerDefByID(offer.ItemID); ok {
			return def.Name
		}
	case game_constants.CONSUMABLE_TYPE:
		if def, ok := poker.ConsumableDefByID(offer.ItemID); ok {
			return def.Name
		}
	case game_constants.VOUCHER_TYPE:
		if def, ok := VoucherByID(offer.ItemID); ok {
			return def.Name
		}
	case game_constants.PACK_TYPE:
		if def, ok := PackByType(offer.PackType); ok {
			return def.Name
		}
	}
	return ""
}
