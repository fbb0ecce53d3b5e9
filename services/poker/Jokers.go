package poker

import (
	"sort"

	"golang.org/x/exp/rand"
)

// Joker rarities.
const (
	RarityCommon    = 1
	RarityUncommon  = 2
	RarityRare      = 3
	RarityLegendary = 4
)

// Joker identifiers, stable across shop offers and saved runs.
const (
	JokerJoker      = 1
	JokerGreedy     = 2
	JokerLusty      = 3
	JokerWrathful   = 4
	JokerGluttonous = 5
	JokerJolly      = 6
	JokerZany       = 7
	JokerCrazy      = 8
	JokerHalf       = 9
	JokerBanner     = 10
	JokerOddTodd    = 11
	JokerScholar    = 12
	JokerSteel      = 13
	JokerBlackboard = 14
	JokerTheDuo     = 15
	JokerTheTrio    = 16
	JokerEgg        = 17
	JokerGolden     = 18
	JokerHack       = 19
	JokerBlueprint  = 20
)

// Joker is an owned copy in a run. SellBonus grows while it is held.
type Joker struct {
	ID        int `json:"id"`
	SellBonus int `json:"sell_bonus,omitempty"`
}

// Effect is the contribution of one joker trigger. XMult of zero means
// no multiplier.
type Effect struct {
	Chips float64
	Mult  float64
	XMult float64
}

// JokerDef describes a catalog entry and its scoring hooks. PerCard
// fires once for every scoring card, PerHand once after the card and
// held stages. Retrigger returns extra triggers for a played card.
type JokerDef struct {
	ID          int
	Name        string
	Description string
	Rarity      int
	Price       int
	PerCard     func(ctx *ScoreContext, card Card) (Effect, bool)
	PerHand     func(ctx *ScoreContext, handID int) (Effect, bool)
	Retrigger   func(card Card) int
	RoundMoney  int
	SellGrowth  int
	Copies      bool
}

// suitMult builds the per-suit jokers: flat mult for every scoring
// card of one suit, wild cards included.
func suitMult(suit string) func(ctx *ScoreContext, card Card) (Effect, bool) {
	return func(ctx *ScoreContext, card Card) (Effect, bool) {
		if !card.CountsAsSuit(suit) {
			return Effect{}, false
		}
		return Effect{Mult: 3}, true
	}
}

func plainJoker(ctx *ScoreContext, handID int) (Effect, bool) {
	return Effect{Mult: 4}, true
}

func jollyJoker(ctx *ScoreContext, handID int) (Effect, bool) {
	if !containsPair(ctx.Played) {
		return Effect{}, false
	}
	return Effect{Mult: 8}, true
}

func zanyJoker(ctx *ScoreContext, handID int) (Effect, bool) {
	if !containsThreeOfAKind(ctx.Played) {
		return Effect{}, false
	}
	return Effect{Mult: 12}, true
}

func crazyJoker(ctx *ScoreContext, handID int) (Effect, bool) {
	if !containsStraight(handID) {
		return Effect{}, false
	}
	return Effect{Mult: 12}, true
}

func halfJoker(ctx *ScoreContext, handID int) (Effect, bool) {
	if len(ctx.Played) > 3 {
		return Effect{}, false
	}
	return Effect{Mult: 20}, true
}

func bannerJoker(ctx *ScoreContext, handID int) (Effect, bool) {
	if ctx.DiscardsLeft <= 0 {
		return Effect{}, false
	}
	return Effect{Chips: float64(30 * ctx.DiscardsLeft)}, true
}

func oddToddJoker(ctx *ScoreContext, card Card) (Effect, bool) {
	if card.IsStone() || !card.IsOdd() {
		return Effect{}, false
	}
	return Effect{Chips: 31}, true
}

func scholarJoker(ctx *ScoreContext, card Card) (Effect, bool) {
	if card.IsStone() || grade(card) != 14 {
		return Effect{}, false
	}
	return Effect{Chips: 20, Mult: 4}, true
}

func steelJoker(ctx *ScoreContext, handID int) (Effect, bool) {
	steel := 0
	for _, c := range ctx.Held {
		if c.Enhancement == EnhancementSteel {
			steel++
		}
	}
	if steel == 0 {
		return Effect{}, false
	}
	return Effect{XMult: 1 + 0.2*float64(steel)}, true
}

func blackboardJoker(ctx *ScoreContext, handID int) (Effect, bool) {
	if len(ctx.Held) == 0 {
		return Effect{}, false
	}
	for _, c := range ctx.Held {
		if !c.CountsAsSuit("s") && !c.CountsAsSuit("c") {
			return Effect{}, false
		}
	}
	return Effect{XMult: 3}, true
}

func theDuoJoker(ctx *ScoreContext, handID int) (Effect, bool) {
	if !containsPair(ctx.Played) {
		return Effect{}, false
	}
	return Effect{XMult: 2}, true
}

func theTrioJoker(ctx *ScoreContext, handID int) (Effect, bool) {
	if !containsThreeOfAKind(ctx.Played) {
		return Effect{}, false
	}
	return Effect{XMult: 3}, true
}

func hackRetrigger(card Card) int {
	if card.IsStone() {
		return 0
	}
	if g := grade(card); g >= 2 && g <= 5 {
		return 1
	}
	return 0
}

var jokerTable = map[int]JokerDef{
	JokerJoker:      {ID: JokerJoker, Name: "Joker", Description: "+4 mult", Rarity: RarityCommon, Price: 4, PerHand: plainJoker},
	JokerGreedy:     {ID: JokerGreedy, Name: "Greedy Joker", Description: "Played cards with diamond suit give +3 mult when scored", Rarity: RarityCommon, Price: 4, PerCard: suitMult("d")},
	JokerLusty:      {ID: JokerLusty, Name: "Lusty Joker", Description: "Played cards with heart suit give +3 mult when scored", Rarity: RarityCommon, Price: 4, PerCard: suitMult("h")},
	JokerWrathful:   {ID: JokerWrathful, Name: "Wrathful Joker", Description: "Played cards with spade suit give +3 mult when scored", Rarity: RarityCommon, Price: 4, PerCard: suitMult("s")},
	JokerGluttonous: {ID: JokerGluttonous, Name: "Gluttonous Joker", Description: "Played cards with club suit give +3 mult when scored", Rarity: RarityCommon, Price: 4, PerCard: suitMult("c")},
	JokerJolly:      {ID: JokerJolly, Name: "Jolly Joker", Description: "+8 mult if played hand contains a Pair", Rarity: RarityCommon, Price: 4, PerHand: jollyJoker},
	JokerZany:       {ID: JokerZany, Name: "Zany Joker", Description: "+12 mult if played hand contains a Three of a Kind", Rarity: RarityCommon, Price: 4, PerHand: zanyJoker},
	JokerCrazy:      {ID: JokerCrazy, Name: "Crazy Joker", Description: "+12 mult if played hand contains a Straight", Rarity: RarityCommon, Price: 4, PerHand: crazyJoker},
	JokerHalf:       {ID: JokerHalf, Name: "Half Joker", Description: "+20 mult if played hand has 3 or fewer cards", Rarity: RarityCommon, Price: 4, PerHand: halfJoker},
	JokerBanner:     {ID: JokerBanner, Name: "Banner", Description: "+30 chips for each remaining discard", Rarity: RarityCommon, Price: 4, PerHand: bannerJoker},
	JokerOddTodd:    {ID: JokerOddTodd, Name: "Odd Todd", Description: "Played cards with odd rank give +31 chips when scored", Rarity: RarityCommon, Price: 4, PerCard: oddToddJoker},
	JokerScholar:    {ID: JokerScholar, Name: "Scholar", Description: "Played Aces give +20 chips and +4 mult when scored", Rarity: RarityUncommon, Price: 6, PerCard: scholarJoker},
	JokerSteel:      {ID: JokerSteel, Name: "Steel Joker", Description: "x0.2 mult more for each Steel card held in hand", Rarity: RarityUncommon, Price: 6, PerHand: steelJoker},
	JokerBlackboard: {ID: JokerBlackboard, Name: "Blackboard", Description: "x3 mult if all cards held in hand are spades or clubs", Rarity: RarityRare, Price: 8, PerHand: blackboardJoker},
	JokerTheDuo:     {ID: JokerTheDuo, Name: "The Duo", Description: "x2 mult if played hand contains a Pair", Rarity: RarityUncommon, Price: 6, PerHand: theDuoJoker},
	JokerTheTrio:    {ID: JokerTheTrio, Name: "The Trio", Description: "x3 mult if played hand contains a Three of a Kind", Rarity: RarityUncommon, Price: 6, PerHand: theTrioJoker},
	JokerEgg:        {ID: JokerEgg, Name: "Egg", Description: "Gains $3 of sell value at end of each round", Rarity: RarityCommon, Price: 4, SellGrowth: 3},
	JokerGolden:     {ID: JokerGolden, Name: "Golden Joker", Description: "Earn $4 at end of each round", Rarity: RarityCommon, Price: 4, RoundMoney: 4},
	JokerHack:       {ID: JokerHack, Name: "Hack", Description: "Retrigger each played 2, 3, 4 or 5", Rarity: RarityCommon, Price: 4, Retrigger: hackRetrigger},
	JokerBlueprint:  {ID: JokerBlueprint, Name: "Blueprint", Description: "Copies the ability of the joker to the right", Rarity: RarityRare, Price: 8, Copies: true},
}

// jokerIDsByRarity is filled at init for weighted shop draws.
var jokerIDsByRarity = map[int][]int{}

func init() {
	for id, def := range jokerTable {
		jokerIDsByRarity[def.Rarity] = append(jokerIDsByRarity[def.Rarity], id)
	}
	for rarity := range jokerIDsByRarity {
		sort.Ints(jokerIDsByRarity[rarity])
	}
}

// RarityWeights drives the shop joker draw.
var RarityWeights = []struct {
	Rarity int
	Weight int
}{
	{RarityCommon, 70},
	{RarityUncommon, 25},
	{RarityRare, 5},
}

// JokerDefByID looks a joker up in the catalog.
func JokerDefByID(id int) (JokerDef, bool) {
	def, ok := jokerTable[id]
	return def, ok
}

// AllJokerIDs returns every catalog ID in ascending order.
func AllJokerIDs() []int {
	ids := make([]int, 0, len(jokerTable))
	for id := range jokerTable {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// JokerIDsByRarity returns the catalog IDs of one rarity.
func JokerIDsByRarity(rarity int) []int {
	return append([]int{}, jokerIDsByRarity[rarity]...)
}

// RandomJokerID draws a joker for the shop: rarity by weight, then
// uniformly inside the rarity.
func RandomJokerID(rng *rand.Rand) int {
	totalWeight := 0
	for _, rw := range RarityWeights {
		if len(jokerIDsByRarity[rw.Rarity]) > 0 {
			totalWeight += rw.Weight
		}
	}
	roll := rng.Intn(totalWeight)
	for _, rw := range RarityWeights {
		ids := jokerIDsByRarity[rw.Rarity]
		if len(ids) == 0 {
			continue
		}
		if roll < rw.Weight {
			return ids[rng.Intn(len(ids))]
		}
		roll -= rw.Weight
	}
	return JokerJoker
}

// SellValue is half the shop price rounded down, at least 1, plus any
// bonus the copy accumulated.
func (j Joker) SellValue() int {
	def, ok := jokerTable[j.ID]
	if !ok {
		return 1
	}
	v := def.Price / 2
	if v < 1 {
		v = 1
	}
	return v + j.SellBonus
}

// Name returns the catalog name of an owned joker.
func (j Joker) Name() string {
	if def, ok := jokerTable[j.ID]; ok {
		return def.Name
	}
	return "Unknown"
}

// ResolveJokerDefs maps owned jokers to the definitions that act for
// them. A Blueprint resolves to its right neighbor's definition, or to
// nothing when the neighbor is missing or another Blueprint.
func ResolveJokerDefs(owned []Joker) []*JokerDef {
	out := make([]*JokerDef, len(owned))
	for i := range owned {
		def, ok := jokerTable[owned[i].ID]
		if !ok {
			continue
		}
		if def.Copies {
			if i+1 < len(owned) {
				if target, ok := jokerTable[owned[i+1].ID]; ok && !target.Copies {
					out[i] = &target
				}
			}
			continue
		}
		out[i] = &def
	}
	return out
}

// containsPair reports a rank appearing at least twice among the
// played cards.
func containsPair(cards []Card) bool {
	groups := rankGroups(cards)
	return len(groups) > 0 && len(groups[0].indices) >= 2
}

// containsThreeOfAKind reports a rank appearing at least three times.
func containsThreeOfAKind(cards []Card) bool {
	groups := rankGroups(cards)
	return len(groups) > 0 && len(groups[0].indices) >= 3
}

// containsStraight is true only for straight-shaped hands.
func containsStraight(handID int) bool {
	return handID == HandStraight || handID == HandStraightFlush
}
