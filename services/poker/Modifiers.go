package poker

import (
	"golang.org/x/exp/rand"
)

// Boss blind identifiers.
const (
	BossTheHook    = 1
	BossTheWall    = 2
	BossThePsychic = 3
	BossTheNeedle  = 4
	BossTheClub    = 5
	BossTheGoad    = 6
	BossTheWindow  = 7
	BossTheHead    = 8
)

// BossBlind describes a boss and the rule it imposes for the round.
// Zero values mean the rule does not apply.
type BossBlind struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	ChipsMultiplier float64 `json:"chips_multiplier"`
	DebuffSuit      string  `json:"debuff_suit,omitempty"`
	ExactPlaySize   int     `json:"exact_play_size,omitempty"`
	HalvesHandSize  bool    `json:"halves_hand_size,omitempty"`
	DiscardsPerPlay int     `json:"discards_per_play,omitempty"`
}

var bossTable = map[int]BossBlind{
	BossTheHook:    {ID: BossTheHook, Name: "The Hook", Description: "Discards 2 random cards held in hand after each played hand", ChipsMultiplier: 2, DiscardsPerPlay: 2},
	BossTheWall:    {ID: BossTheWall, Name: "The Wall", Description: "Extra large blind", ChipsMultiplier: 4},
	BossThePsychic: {ID: BossThePsychic, Name: "The Psychic", Description: "Must play 5 cards", ChipsMultiplier: 2, ExactPlaySize: 5},
	BossTheNeedle:  {ID: BossTheNeedle, Name: "The Needle", Description: "Start the round with half your hand size", ChipsMultiplier: 2, HalvesHandSize: true},
	BossTheClub:    {ID: BossTheClub, Name: "The Club", Description: "All club cards are debuffed", ChipsMultiplier: 2, DebuffSuit: "c"},
	BossTheGoad:    {ID: BossTheGoad, Name: "The Goad", Description: "All spade cards are debuffed", ChipsMultiplier: 2, DebuffSuit: "s"},
	BossTheWindow:  {ID: BossTheWindow, Name: "The Window", Description: "All diamond cards are debuffed", ChipsMultiplier: 2, DebuffSuit: "d"},
	BossTheHead:    {ID: BossTheHead, Name: "The Head", Description: "All heart cards are debuffed", ChipsMultiplier: 2, DebuffSuit: "h"},
}

// BossByID looks a boss up in the catalog.
func BossByID(id int) (BossBlind, bool) {
	boss, ok := bossTable[id]
	return boss, ok
}

// RandomBossID draws the boss of an ante.
func RandomBossID(rng *rand.Rand) int {
	return rng.Intn(len(bossTable)) + 1
}

// DebuffCards marks the cards hit by the boss suit debuff. Wild cards
// count as every suit, so a suit debuff always hits them.
func (b BossBlind) DebuffCards(cards []Card) {
	if b.DebuffSuit == "" {
		return
	}
	for i := range cards {
		if cards[i].CountsAsSuit(b.DebuffSuit) {
			cards[i].Debuffed = true
		}
	}
}
