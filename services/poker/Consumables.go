package poker

import (
	"sort"

	"golang.org/x/exp/rand"
)

// Consumable kinds.
const (
	ConsumablePlanet = 1
	ConsumableTarot  = 2
)

// Planet identifiers.
const (
	PlanetPluto   = 1
	PlanetMercury = 2
	PlanetUranus  = 3
	PlanetVenus   = 4
	PlanetSaturn  = 5
	PlanetJupiter = 6
	PlanetEarth   = 7
	PlanetMars    = 8
	PlanetNeptune = 9
	PlanetPlanetX = 10
	PlanetCeres   = 11
	PlanetEris    = 12
)

// Tarot identifiers.
const (
	TarotTheFool          = 13
	TarotTheMagician      = 14
	TarotTheHighPriestess = 15
	TarotTheEmpress       = 16
	TarotTheEmperor       = 17
	TarotTheHierophant    = 18
	TarotTheLovers        = 19
	TarotTheChariot       = 20
	TarotStrength         = 21
	TarotTheHermit        = 22
	TarotTemperance       = 23
	TarotDeath            = 24
)

// ConsumableDef describes a planet or tarot card. MinCards and
// MaxCards bound the hand selection a tarot must be used on; Transform
// mutates the selected cards for the arcana that touch cards. Secret
// planets never show up in shop pools.
type ConsumableDef struct {
	ID          int
	Name        string
	Description string
	Kind        int
	Price       int
	HandID      int
	MinCards    int
	MaxCards    int
	Secret      bool
	Transform   func(cards []Card)
}

// enhance builds the arcana that overwrite the enhancement of the
// chosen cards.
func enhance(enhancement int) func(cards []Card) {
	return func(cards []Card) {
		for i := range cards {
			cards[i].Enhancement = enhancement
		}
	}
}

func strengthTransform(cards []Card) {
	for i := range cards {
		cards[i].Rank = nextRank(cards[i].Rank)
	}
}

func deathTransform(cards []Card) {
	if len(cards) != 2 {
		return
	}
	cards[0] = cards[1]
}

// nextRank raises a rank by one step, aces wrapping around to 2.
func nextRank(rank string) string {
	for i, r := range Ranks {
		if r == rank {
			return Ranks[(i+1)%len(Ranks)]
		}
	}
	return rank
}

var consumableTable = map[int]ConsumableDef{
	PlanetPluto:   {ID: PlanetPluto, Name: "Pluto", Description: "Level up High Card", Kind: ConsumablePlanet, Price: 3, HandID: HandHighCard},
	PlanetMercury: {ID: PlanetMercury, Name: "Mercury", Description: "Level up Pair", Kind: ConsumablePlanet, Price: 3, HandID: HandPair},
	PlanetUranus:  {ID: PlanetUranus, Name: "Uranus", Description: "Level up Two Pair", Kind: ConsumablePlanet, Price: 3, HandID: HandTwoPair},
	PlanetVenus:   {ID: PlanetVenus, Name: "Venus", Description: "Level up Three of a Kind", Kind: ConsumablePlanet, Price: 3, HandID: HandThreeOfAKind},
	PlanetSaturn:  {ID: PlanetSaturn, Name: "Saturn", Description: "Level up Straight", Kind: ConsumablePlanet, Price: 3, HandID: HandStraight},
	PlanetJupiter: {ID: PlanetJupiter, Name: "Jupiter", Description: "Level up Flush", Kind: ConsumablePlanet, Price: 3, HandID: HandFlush},
	PlanetEarth:   {ID: PlanetEarth, Name: "Earth", Description: "Level up Full House", Kind: ConsumablePlanet, Price: 3, HandID: HandFullHouse},
	PlanetMars:    {ID: PlanetMars, Name: "Mars", Description: "Level up Four of a Kind", Kind: ConsumablePlanet, Price: 3, HandID: HandFourOfAKind},
	PlanetNeptune: {ID: PlanetNeptune, Name: "Neptune", Description: "Level up Straight Flush", Kind: ConsumablePlanet, Price: 3, HandID: HandStraightFlush},
	PlanetPlanetX: {ID: PlanetPlanetX, Name: "Planet X", Description: "Level up Five of a Kind", Kind: ConsumablePlanet, Price: 3, HandID: HandFiveOfAKind, Secret: true},
	PlanetCeres:   {ID: PlanetCeres, Name: "Ceres", Description: "Level up Flush House", Kind: ConsumablePlanet, Price: 3, HandID: HandFlushHouse, Secret: true},
	PlanetEris:    {ID: PlanetEris, Name: "Eris", Description: "Level up Flush Five", Kind: ConsumablePlanet, Price: 3, HandID: HandFlushFive, Secret: true},

	TarotTheFool:          {ID: TarotTheFool, Name: "The Fool", Description: "Creates a copy of the last planet or tarot used", Kind: ConsumableTarot, Price: 3},
	TarotTheMagician:      {ID: TarotTheMagician, Name: "The Magician", Description: "Turns up to 2 selected cards into Lucky cards", Kind: ConsumableTarot, Price: 3, MinCards: 1, MaxCards: 2, Transform: enhance(EnhancementLucky)},
	TarotTheHighPriestess: {ID: TarotTheHighPriestess, Name: "The High Priestess", Description: "Creates up to 2 random planet cards", Kind: ConsumableTarot, Price: 3},
	TarotTheEmpress:       {ID: TarotTheEmpress, Name: "The Empress", Description: "Turns up to 2 selected cards into Mult cards", Kind: ConsumableTarot, Price: 3, MinCards: 1, MaxCards: 2, Transform: enhance(EnhancementMult)},
	TarotTheEmperor:       {ID: TarotTheEmperor, Name: "The Emperor", Description: "Creates up to 2 random tarot cards", Kind: ConsumableTarot, Price: 3},
	TarotTheHierophant:    {ID: TarotTheHierophant, Name: "The Hierophant", Description: "Turns up to 2 selected cards into Bonus cards", Kind: ConsumableTarot, Price: 3, MinCards: 1, MaxCards: 2, Transform: enhance(EnhancementBonus)},
	TarotTheLovers:        {ID: TarotTheLovers, Name: "The Lovers", Description: "Turns 1 selected card into a Wild card", Kind: ConsumableTarot, Price: 3, MinCards: 1, MaxCards: 1, Transform: enhance(EnhancementWild)},
	TarotTheChariot:       {ID: TarotTheChariot, Name: "The Chariot", Description: "Turns 1 selected card into a Steel card", Kind: ConsumableTarot, Price: 3, MinCards: 1, MaxCards: 1, Transform: enhance(EnhancementSteel)},
	TarotStrength:         {ID: TarotStrength, Name: "Strength", Description: "Raises the rank of up to 2 selected cards by 1", Kind: ConsumableTarot, Price: 3, MinCards: 1, MaxCards: 2, Transform: strengthTransform},
	TarotTheHermit:        {ID: TarotTheHermit, Name: "The Hermit", Description: "Doubles money, up to $20", Kind: ConsumableTarot, Price: 3},
	TarotTemperance:       {ID: TarotTemperance, Name: "Temperance", Description: "Gives the total sell value of all jokers, up to $50", Kind: ConsumableTarot, Price: 3},
	TarotDeath:            {ID: TarotDeath, Name: "Death", Description: "Select 2 cards, the left card becomes a copy of the right", Kind: ConsumableTarot, Price: 3, MinCards: 2, MaxCards: 2, Transform: deathTransform},
}

// ConsumableDefByID looks a consumable up in the catalog.
func ConsumableDefByID(id int) (ConsumableDef, bool) {
	def, ok := consumableTable[id]
	return def, ok
}

// PlanetForHand returns the planet that levels a hand category.
func PlanetForHand(handID int) (int, bool) {
	for id, def := range consumableTable {
		if def.Kind == ConsumablePlanet && def.HandID == handID {
			return id, true
		}
	}
	return 0, false
}

// ShopPlanetIDs lists the planets that can appear in shops.
func ShopPlanetIDs() []int {
	ids := []int{}
	for id, def := range consumableTable {
		if def.Kind == ConsumablePlanet && !def.Secret {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// ShopTarotIDs lists every tarot.
func ShopTarotIDs() []int {
	ids := []int{}
	for id, def := range consumableTable {
		if def.Kind == ConsumableTarot {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// RandomPlanetID draws a non-secret planet.
func RandomPlanetID(rng *rand.Rand) int {
	ids := ShopPlanetIDs()
	return ids[rng.Intn(len(ids))]
}

// RandomTarotID draws a tarot.
func RandomTarotID(rng *rand.Rand) int {
	ids := ShopTarotIDs()
	return ids[rng.Intn(len(ids))]
}

// RandomShopConsumableID draws a shop consumable, favoring planets.
func RandomShopConsumableID(rng *rand.Rand) int {
	if rng.Intn(100) < 70 {
		return RandomPlanetID(rng)
	}
	return RandomTarotID(rng)
}

// ConsumableSellValue is half the shop price rounded down, at least 1.
func ConsumableSellValue(id int) int {
	def, ok := consumableTable[id]
	if !ok {
		return 1
	}
	v := def.Price / 2
	if v < 1 {
		v = 1
	}
	return v
}
