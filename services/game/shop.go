package game

import (
	game_constants "Farol/constants/game"
	"Farol/services/poker"

	"golang.org/x/exp/rand"
)

// ShopOffer is one purchasable entry of the current shop.
type ShopOffer struct {
	Type     string `json:"type"`
	ItemID   int    `json:"item_id,omitempty"`
	PackType int    `json:"pack_type,omitempty"`
	Price    int    `json:"price"`
	PackSeed uint64 `json:"pack_seed,omitempty"`
}

// Shop is the offer list of one shop visit. Bought offers are removed;
// rerolling regenerates the joker and consumable offers while vouchers and
// packs stay on the shelf.
type Shop struct {
	Offers  []ShopOffer `json:"offers"`
	Rerolls int         `json:"rerolls"`
}

// RerollCost grows by one with every reroll of the visit and resets on the
// next shop entry.
func (s *Shop) RerollCost() int {
	return game_constants.BaseRerollCost + s.Rerolls
}

type PackDef struct {
	Type  int    `json:"type"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Items int    `json:"items"`
}

var packTable = map[int]PackDef{
	game_constants.PACK_TYPE_CELESTIAL: {Type: game_constants.PACK_TYPE_CELESTIAL, Name: "Celestial Pack", Price: 4, Items: 2},
	game_constants.PACK_TYPE_ARCANA:    {Type: game_constants.PACK_TYPE_ARCANA, Name: "Arcana Pack", Price: 4, Items: 2},
	game_constants.PACK_TYPE_BUFFOON:   {Type: game_constants.PACK_TYPE_BUFFOON, Name: "Buffoon Pack", Price: 6, Items: 1},
}

// PackByType looks a pack up in the catalog.
func PackByType(packType int) (PackDef, bool) {
	def, ok := packTable[packType]
	return def, ok
}

// PackContents expands a pack seed into the item IDs the pack grants.
// The same seed always yields the same contents.
func PackContents(packType int, seed uint64) []int {
	def, ok := packTable[packType]
	if !ok {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	contents := make([]int, 0, def.Items)
	for i := 0; i < def.Items; i++ {
		switch packType {
		case game_constants.PACK_TYPE_CELESTIAL:
			contents = append(contents, poker.RandomPlanetID(rng))
		case game_constants.PACK_TYPE_ARCANA:
			contents = append(contents, poker.RandomTarotID(rng))
		case game_constants.PACK_TYPE_BUFFOON:
			contents = append(contents, poker.RandomJokerID(rng))
		}
	}
	return contents
}

// generateShop rolls a full shop for the current blind: two jokers, two
// consumables and a fifth slot holding a pack or an unowned voucher.
func (s *RunState) generateShop(rerolls int) *Shop {
	rng := newRng(s.Seed, "shop", s.Ante, s.Blind, rerolls)
	offers := s.rollItemOffers(rng)

	if roll := rng.Intn(100); roll < 30 {
		if unowned := UnownedVouchers(s.Vouchers); len(unowned) > 0 {
			id := unowned[rng.Intn(len(unowned))]
			offers = append(offers, ShopOffer{
				Type:   game_constants.VOUCHER_TYPE,
				ItemID: id,
				Price:  game_constants.VoucherPrice,
			})
		}
	} else {
		packType := rng.Intn(len(packTable)) + 1
		def := packTable[packType]
		offers = append(offers, ShopOffer{
			Type:     game_constants.PACK_TYPE,
			PackType: packType,
			Price:    def.Price,
			PackSeed: GenerateSeed(s.Seed, "pack", s.Ante, s.Blind, rerolls),
		})
	}
	return &Shop{Offers: offers, Rerolls: rerolls}
}

// rollItemOffers rolls the joker and consumable offers of a shop, avoiding
// a duplicate joker within the same shelf.
func (s *RunState) rollItemOffers(rng *rand.Rand) []ShopOffer {
	offers := make([]ShopOffer, 0, game_constants.ShopJokerSlots+game_constants.ShopConsumableSlots+1)

	seen := make(map[int]bool, game_constants.ShopJokerSlots)
	for i := 0; i < game_constants.ShopJokerSlots; i++ {
		id := poker.RandomJokerID(rng)
		for retry := 0; retry < 10 && seen[id]; retry++ {
			id = poker.RandomJokerID(rng)
		}
		seen[id] = true
		price := 0
		if def, ok := poker.JokerDefByID(id); ok {
			price = def.Price
		}
		offers = append(offers, ShopOffer{Type: game_constants.JOKER_TYPE, ItemID: id, Price: price})
	}

	for i := 0; i < game_constants.ShopConsumableSlots; i++ {
		id := poker.RandomShopConsumableID(rng)
		price := 0
		if def, ok := poker.ConsumableDefByID(id); ok {
			price = def.Price
		}
		offers = append(offers, ShopOffer{Type: game_constants.CONSUMABLE_TYPE, ItemID: id, Price: price})
	}
	return offers
}

// BuyOffer purchases one shop offer. Failed purchases change nothing.
func (s *RunState) BuyOffer(index int) error {
	if s.Phase != PhaseShop || s.Shop == nil {
		return ErrIllegalTransition
	}
	if index < 0 || index >= len(s.Shop.Offers) {
		return ErrNotFound
	}
	offer := s.Shop.Offers[index]
	if s.Money < offer.Price {
		return ErrInsufficientFunds
	}

	switch offer.Type {
	case game_constants.JOKER_TYPE:
		if len(s.Jokers) >= s.JokerSlots() {
			return ErrInventoryFull
		}
		s.Jokers = append(s.Jokers, poker.Joker{ID: offer.ItemID})
	case game_constants.CONSUMABLE_TYPE:
		if len(s.Consumables) >= s.ConsumableSlots() {
			return ErrInventoryFull
		}
		s.Consumables = append(s.Consumables, offer.ItemID)
	case game_constants.VOUCHER_TYPE:
		s.Vouchers = append(s.Vouchers, offer.ItemID)
	case game_constants.PACK_TYPE:
		if err := s.openPack(offer); err != nil {
			return err
		}
	default:
		return ErrNotFound
	}

	s.Money -= offer.Price
	s.Shop.Offers = append(s.Shop.Offers[:index], s.Shop.Offers[index+1:]...)
	return nil
}

// openPack grants a pack's contents. The pack needs at least one free slot
// of its content type; contents past capacity are lost.
func (s *RunState) openPack(offer ShopOffer) error {
	contents := PackContents(offer.PackType, offer.PackSeed)
	if len(contents) == 0 {
		return ErrNotFound
	}
	if offer.PackType == game_constants.PACK_TYPE_BUFFOON {
		if len(s.Jokers) >= s.JokerSlots() {
			return ErrInventoryFull
		}
		for _, id := range contents {
			if len(s.Jokers) < s.JokerSlots() {
				s.Jokers = append(s.Jokers, poker.Joker{ID: id})
			}
		}
		return nil
	}
	if len(s.Consumables) >= s.ConsumableSlots() {
		return ErrInventoryFull
	}
	for _, id := range contents {
		if len(s.Consumables) < s.ConsumableSlots() {
			s.Consumables = append(s.Consumables, id)
		}
	}
	return nil
}

// SellJoker sells an owned joker for half its price plus any accumulated
// bonus. Allowed while playing a round and in the shop.
func (s *RunState) SellJoker(index int) error {
	if s.Phase != PhaseRound && s.Phase != PhaseShop {
		return ErrIllegalTransition
	}
	if index < 0 || index >= len(s.Jokers) {
		return ErrNotFound
	}
	s.Money += s.Jokers[index].SellValue()
	s.Jokers = append(s.Jokers[:index], s.Jokers[index+1:]...)
	return nil
}

// RerollShop pays the escalating reroll cost and rolls fresh joker and
// consumable offers. Pack and voucher offers survive the reroll.
func (s *RunState) RerollShop() error {
	if s.Phase != PhaseShop || s.Shop == nil {
		return ErrIllegalTransition
	}
	cost := s.Shop.RerollCost()
	if s.Money < cost {
		return ErrInsufficientFunds
	}
	s.Money -= cost

	rerolls := s.Shop.Rerolls + 1
	rng := newRng(s.Seed, "shop", s.Ante, s.Blind, rerolls)
	offers := s.rollItemOffers(rng)
	for _, offer := range s.Shop.Offers {
		if offer.Type == game_constants.PACK_TYPE || offer.Type == game_constants.VOUCHER_TYPE {
			offers = append(offers, offer)
		}
	}
	s.Shop = &Shop{Offers: offers, Rerolls: rerolls}
	return nil
}

// LeaveShop closes the shop and moves on to the next blind.
func (s *RunState) LeaveShop() error {
	if s.Phase != PhaseShop {
		return ErrIllegalTransition
	}
	s.Shop = nil
	s.advanceBlind()
	return nil
}
