package poker

import (
	"fmt"
	"strconv"
)

// Cards A, 2, 3, 4, 5, 6, 7, 8, 9, 10, J, Q, K
// Suit s (spades), c (clubs), d (diamonds), h (hearts)

// Enhancement values a card can carry
const (
	EnhancementNone  = 0
	EnhancementBonus = 1 // +30 chips
	EnhancementMult  = 2 // +4 mult
	EnhancementWild  = 3 // counts as every suit
	EnhancementGlass = 4 // x2 mult, 1 in 4 chance to shatter after scoring
	EnhancementSteel = 5 // x1.5 mult while held in hand
	EnhancementStone = 6 // +50 chips, no rank/suit, always scores
	EnhancementGold  = 7 // $3 if held at end of round
	EnhancementLucky = 8 // 1 in 5: +20 mult, 1 in 15: $20
)

// Edition values
const (
	EditionBase        = 0
	EditionFoil        = 1 // +50 chips
	EditionHolographic = 2 // +10 mult
	EditionPolychrome  = 3 // x1.5 mult
)

// Seal values
const (
	SealNone   = 0
	SealGold   = 1 // $3 when the card is played and scores
	SealRed    = 2 // retrigger the card once
	SealBlue   = 3 // creates the planet of the played hand
	SealPurple = 4 // creates a tarot when discarded
)

type Card struct {
	Rank        string `json:"rank"`
	Suit        string `json:"suit"`
	Enhancement int    `json:"enhancement"`
	Edition     int    `json:"edition"`
	Seal        int    `json:"seal"`
	Debuffed    bool   `json:"debuffed"`
}

var Ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
var Suits = []string{"h", "d", "c", "s"}

var RankMap = map[string]bool{
	"A": true, "2": true, "3": true, "4": true, "5": true,
	"6": true, "7": true, "8": true, "9": true, "10": true,
	"J": true, "Q": true, "K": true,
}

var SuitMap = map[string]bool{
	"h": true, "d": true, "c": true, "s": true,
}

func grade(c Card) int {
	switch c.Rank {
	case "K":
		return 13
	case "Q":
		return 12
	case "J":
		return 11
	case "A":
		return 14
	default:
		rank, _ := strconv.Atoi(c.Rank)
		return rank
	}
}

// Grade exposes the numeric rank (2..14, aces high) for sorting and display
func Grade(c Card) int {
	return grade(c)
}

// Get the base CHIPS a fixed card will score when played as part of a hand.
// Face cards are worth 10 chips, numbered cards are worth their rank, aces 11.
// Stone cards ignore their printed rank and are always worth 50.
func PointsPerCard(c Card) int {
	if c.Enhancement == EnhancementStone {
		return 50
	}
	var value int
	switch c.Rank {
	case "K", "Q", "J":
		value = 10
	case "A":
		value = 11
	default:
		value, _ = strconv.Atoi(c.Rank)
	}
	return value
}

// IsWild reports whether the card counts as every suit
func (c Card) IsWild() bool {
	return c.Enhancement == EnhancementWild
}

// IsStone reports whether the card has no rank/suit and always scores
func (c Card) IsStone() bool {
	return c.Enhancement == EnhancementStone
}

// CountsAsSuit is the suit test every detector must use so wilds behave
func (c Card) CountsAsSuit(suit string) bool {
	if c.IsStone() {
		return false
	}
	return c.Suit == suit || c.IsWild()
}

func (c Card) IsFace() bool {
	return c.Rank == "J" || c.Rank == "Q" || c.Rank == "K"
}

// Odd ranks: 3, 5, 7, 9, J, K
func (c Card) IsOdd() bool {
	return grade(c)%2 == 1
}

// ChipBonus is the flat chip add from enhancement+edition (0 when debuffed)
func (c Card) ChipBonus() int {
	if c.Debuffed {
		return 0
	}
	bonus := 0
	if c.Enhancement == EnhancementBonus {
		bonus += 30
	}
	if c.Edition == EditionFoil {
		bonus += 50
	}
	return bonus
}

// MultBonus is the flat mult add from enhancement+edition (0 when debuffed)
func (c Card) MultBonus() int {
	if c.Debuffed {
		return 0
	}
	bonus := 0
	if c.Enhancement == EnhancementMult {
		bonus += 4
	}
	if c.Edition == EditionHolographic {
		bonus += 10
	}
	return bonus
}

// XMult is the multiplicative factor from enhancement+edition (1 when debuffed)
func (c Card) XMult() float64 {
	if c.Debuffed {
		return 1.0
	}
	x := 1.0
	if c.Enhancement == EnhancementGlass {
		x *= 2.0
	}
	if c.Edition == EditionPolychrome {
		x *= 1.5
	}
	return x
}

// SameCard compares printed rank and suit, ignoring attached state
func SameCard(a, b Card) bool {
	return a.Rank == b.Rank && a.Suit == b.Suit
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}
