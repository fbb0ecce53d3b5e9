package poker

import (
	"sort"
)

// Hand category identifiers, weakest to strongest.
const (
	HandNone          = 0
	HandHighCard      = 1
	HandPair          = 2
	HandTwoPair       = 3
	HandThreeOfAKind  = 4
	HandStraight      = 5
	HandFlush         = 6
	HandFullHouse     = 7
	HandFourOfAKind   = 8
	HandStraightFlush = 9
	HandFiveOfAKind   = 10
	HandFlushHouse    = 11
	HandFlushFive     = 12
)

// HandValue holds the level-1 base score of a hand category and the
// per-level increments applied by planet cards.
type HandValue struct {
	Name       string
	Chips      int
	Mult       int
	LevelChips int
	LevelMult  int
}

// HandTable maps every category to its base values and growth rates.
var HandTable = map[int]HandValue{
	HandHighCard:      {Name: "High Card", Chips: 5, Mult: 1, LevelChips: 10, LevelMult: 1},
	HandPair:          {Name: "Pair", Chips: 10, Mult: 2, LevelChips: 15, LevelMult: 1},
	HandTwoPair:       {Name: "Two Pair", Chips: 20, Mult: 2, LevelChips: 20, LevelMult: 1},
	HandThreeOfAKind:  {Name: "Three of a Kind", Chips: 30, Mult: 3, LevelChips: 20, LevelMult: 2},
	HandStraight:      {Name: "Straight", Chips: 30, Mult: 4, LevelChips: 30, LevelMult: 3},
	HandFlush:         {Name: "Flush", Chips: 35, Mult: 4, LevelChips: 15, LevelMult: 2},
	HandFullHouse:     {Name: "Full House", Chips: 40, Mult: 4, LevelChips: 25, LevelMult: 2},
	HandFourOfAKind:   {Name: "Four of a Kind", Chips: 60, Mult: 7, LevelChips: 30, LevelMult: 3},
	HandStraightFlush: {Name: "Straight Flush", Chips: 100, Mult: 8, LevelChips: 40, LevelMult: 4},
	HandFiveOfAKind:   {Name: "Five of a Kind", Chips: 120, Mult: 12, LevelChips: 35, LevelMult: 3},
	HandFlushHouse:    {Name: "Flush House", Chips: 140, Mult: 14, LevelChips: 40, LevelMult: 4},
	HandFlushFive:     {Name: "Flush Five", Chips: 160, Mult: 16, LevelChips: 50, LevelMult: 3},
}

// HandName returns the display name of a hand category.
func HandName(handID int) string {
	if v, ok := HandTable[handID]; ok {
		return v.Name
	}
	return "None"
}

// rankGroup is a set of card indices sharing one rank.
type rankGroup struct {
	grade   int
	indices []int
}

// rankGroups buckets the playable (non-stone) cards of a selection by
// rank, largest group first, higher rank first on equal size.
func rankGroups(cards []Card) []rankGroup {
	byGrade := make(map[int][]int)
	for i, c := range cards {
		if c.IsStone() {
			continue
		}
		g := grade(c)
		byGrade[g] = append(byGrade[g], i)
	}
	groups := make([]rankGroup, 0, len(byGrade))
	for g, idx := range byGrade {
		groups = append(groups, rankGroup{grade: g, indices: idx})
	}
	sort.Slice(groups, func(a, b int) bool {
		if len(groups[a].indices) != len(groups[b].indices) {
			return len(groups[a].indices) > len(groups[b].indices)
		}
		return groups[a].grade > groups[b].grade
	})
	return groups
}

// playableCount is the number of selected cards that carry a rank.
func playableCount(cards []Card) int {
	n := 0
	for _, c := range cards {
		if !c.IsStone() {
			n++
		}
	}
	return n
}

// FlushFive detects five cards of one rank and one suit.
func FlushFive(cards []Card) ([]int, bool) {
	idx, ok := FiveOfAKind(cards)
	if !ok {
		return nil, false
	}
	if _, flush := Flush(cards); !flush {
		return nil, false
	}
	return idx, true
}

// FlushHouse detects a full house whose five cards share a suit.
func FlushHouse(cards []Card) ([]int, bool) {
	idx, ok := FullHouse(cards)
	if !ok {
		return nil, false
	}
	if _, flush := Flush(cards); !flush {
		return nil, false
	}
	return idx, true
}

// FiveOfAKind detects five cards of the same rank.
func FiveOfAKind(cards []Card) ([]int, bool) {
	groups := rankGroups(cards)
	if len(groups) == 0 || len(groups[0].indices) < 5 {
		return nil, false
	}
	return sortedCopy(groups[0].indices), true
}

// StraightFlush detects a straight whose cards also share a suit.
func StraightFlush(cards []Card) ([]int, bool) {
	idx, ok := Straight(cards)
	if !ok {
		return nil, false
	}
	if _, flush := Flush(cards); !flush {
		return nil, false
	}
	return idx, true
}

// FourOfAKind detects four cards of the same rank.
func FourOfAKind(cards []Card) ([]int, bool) {
	groups := rankGroups(cards)
	if len(groups) == 0 || len(groups[0].indices) < 4 {
		return nil, false
	}
	return sortedCopy(groups[0].indices[:4]), true
}

// FullHouse detects a three of a kind plus a pair.
func FullHouse(cards []Card) ([]int, bool) {
	groups := rankGroups(cards)
	if len(groups) < 2 || len(groups[0].indices) < 3 || len(groups[1].indices) < 2 {
		return nil, false
	}
	idx := append([]int{}, groups[0].indices[:3]...)
	idx = append(idx, groups[1].indices[:2]...)
	return sortedCopy(idx), true
}

// Flush detects five cards sharing a suit. Wild cards count as any
// suit; stone cards have no suit and break the flush.
func Flush(cards []Card) ([]int, bool) {
	if len(cards) != 5 {
		return nil, false
	}
	for _, suit := range Suits {
		all := true
		for _, c := range cards {
			if !c.CountsAsSuit(suit) {
				all = false
				break
			}
		}
		if all {
			return []int{0, 1, 2, 3, 4}, true
		}
	}
	return nil, false
}

// Straight detects five cards of consecutive rank. The ace plays high
// (10-J-Q-K-A) or low (A-2-3-4-5).
func Straight(cards []Card) ([]int, bool) {
	if len(cards) != 5 || playableCount(cards) != 5 {
		return nil, false
	}
	grades := make([]int, 5)
	for i, c := range cards {
		grades[i] = grade(c)
	}
	if isRun(grades) {
		return []int{0, 1, 2, 3, 4}, true
	}
	// Ace-low: treat the ace as 1 and retry.
	hasAce := false
	low := make([]int, 5)
	for i, g := range grades {
		if g == 14 {
			hasAce = true
			low[i] = 1
		} else {
			low[i] = g
		}
	}
	if hasAce && isRun(low) {
		return []int{0, 1, 2, 3, 4}, true
	}
	return nil, false
}

// isRun reports whether the grades form five consecutive values.
func isRun(grades []int) bool {
	sorted := append([]int{}, grades...)
	sort.Ints(sorted)
	for i := 1; i < 5; i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return true
}

// ThreeOfAKind detects three cards of the same rank.
func ThreeOfAKind(cards []Card) ([]int, bool) {
	groups := rankGroups(cards)
	if len(groups) == 0 || len(groups[0].indices) < 3 {
		return nil, false
	}
	return sortedCopy(groups[0].indices[:3]), true
}

// TwoPair detects two distinct pairs.
func TwoPair(cards []Card) ([]int, bool) {
	groups := rankGroups(cards)
	if len(groups) < 2 || len(groups[0].indices) < 2 || len(groups[1].indices) < 2 {
		return nil, false
	}
	idx := append([]int{}, groups[0].indices[:2]...)
	idx = append(idx, groups[1].indices[:2]...)
	return sortedCopy(idx), true
}

// Pair detects two cards of the same rank.
func Pair(cards []Card) ([]int, bool) {
	groups := rankGroups(cards)
	if len(groups) == 0 || len(groups[0].indices) < 2 {
		return nil, false
	}
	return sortedCopy(groups[0].indices[:2]), true
}

// HighCard scores only the highest ranked card.
func HighCard(cards []Card) ([]int, bool) {
	best := -1
	bestGrade := -1
	for i, c := range cards {
		if c.IsStone() {
			continue
		}
		if g := grade(c); g > bestGrade {
			best, bestGrade = i, g
		}
	}
	if best < 0 {
		return nil, false
	}
	return []int{best}, true
}

// BestHand classifies a selection of one to five cards and returns the
// hand category together with the indices of the cards that score, in
// selection order. Stone cards never belong to the pattern; scoring
// adds them separately because they always score.
func BestHand(cards []Card) (int, []int) {
	if len(cards) == 0 || len(cards) > 5 {
		return HandNone, nil
	}
	type detector struct {
		id int
		fn func([]Card) ([]int, bool)
	}
	detectors := []detector{
		{HandFlushFive, FlushFive},
		{HandFlushHouse, FlushHouse},
		{HandFiveOfAKind, FiveOfAKind},
		{HandStraightFlush, StraightFlush},
		{HandFourOfAKind, FourOfAKind},
		{HandFullHouse, FullHouse},
		{HandFlush, Flush},
		{HandStraight, Straight},
		{HandThreeOfAKind, ThreeOfAKind},
		{HandTwoPair, TwoPair},
		{HandPair, Pair},
		{HandHighCard, HighCard},
	}
	for _, d := range detectors {
		if idx, ok := d.fn(cards); ok {
			return d.id, idx
		}
	}
	// All stones: no pattern, every card still scores via the stone pass.
	return HandHighCard, []int{}
}

func sortedCopy(idx []int) []int {
	out := append([]int{}, idx...)
	sort.Ints(out)
	return out
}

// LessByRank orders two cards by descending rank for hand display.
func LessByRank(a, b Card) bool {
	return grade(a) > grade(b)
}

// LessBySuit orders two cards by suit, then by descending rank.
func LessBySuit(a, b Card) bool {
	suitOrder := func(s string) int {
		for i, suit := range Suits {
			if suit == s {
				return i
			}
		}
		return len(Suits)
	}
	if suitOrder(a.Suit) != suitOrder(b.Suit) {
		return suitOrder(a.Suit) < suitOrder(b.Suit)
	}
	return grade(a) > grade(b)
}

// SortCardsByRank orders cards by descending rank for hand display.
func SortCardsByRank(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return LessByRank(cards[i], cards[j])
	})
}

// SortCardsBySuit orders cards by suit, then by descending rank.
func SortCardsBySuit(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return LessBySuit(cards[i], cards[j])
	})
}
