package poker

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Pipeline stage labels carried on every trace step.
const (
	StageBase  = "base"
	StageCard  = "card"
	StageHeld  = "held"
	StageJoker = "joker"
	StageFinal = "final"
)

// ScoreStep records one observable change of the running totals.
// Money is the amount earned by the step, zero for pure score steps.
type ScoreStep struct {
	Stage       string  `json:"stage"`
	Source      string  `json:"source"`
	ChipsBefore float64 `json:"chips_before"`
	ChipsAfter  float64 `json:"chips_after"`
	MultBefore  float64 `json:"mult_before"`
	MultAfter   float64 `json:"mult_after"`
	Money       int     `json:"money,omitempty"`
}

// HandLevels tracks the planet level of every hand category.
type HandLevels map[int]int

// NewHandLevels starts every category at level 1.
func NewHandLevels() HandLevels {
	levels := make(HandLevels, len(HandTable))
	for id := range HandTable {
		levels[id] = 1
	}
	return levels
}

// Level returns the current level of a category, never below 1.
func (l HandLevels) Level(handID int) int {
	if lvl, ok := l[handID]; ok && lvl > 0 {
		return lvl
	}
	return 1
}

// LevelUp raises a category by one level.
func (l HandLevels) LevelUp(handID int) {
	l[handID] = l.Level(handID) + 1
}

// BaseChips is the leveled starting chip count of a category.
func (l HandLevels) BaseChips(handID int) int {
	v, ok := HandTable[handID]
	if !ok {
		return 0
	}
	return v.Chips + (l.Level(handID)-1)*v.LevelChips
}

// BaseMult is the leveled starting mult of a category.
func (l HandLevels) BaseMult(handID int) int {
	v, ok := HandTable[handID]
	if !ok {
		return 0
	}
	return v.Mult + (l.Level(handID)-1)*v.LevelMult
}

// ScoreContext carries everything one play needs to be scored.
type ScoreContext struct {
	Played       []Card
	Held         []Card
	Jokers       []Joker
	Levels       HandLevels
	DiscardsLeft int
	Rng          *rand.Rand
}

// ScoreResult is the outcome of scoring one play.
type ScoreResult struct {
	HandID       int         `json:"hand_id"`
	HandName     string      `json:"hand_name"`
	Level        int         `json:"level"`
	ScoringIdx   []int       `json:"scoring_idx"`
	Chips        float64     `json:"chips"`
	Mult         float64     `json:"mult"`
	Total        int         `json:"total"`
	Money        int         `json:"money"`
	ShatteredIdx []int       `json:"shattered_idx,omitempty"`
	Steps        []ScoreStep `json:"steps"`
}

// scoreState accumulates the running totals and the trace.
type scoreState struct {
	chips float64
	mult  float64
	money int
	steps []ScoreStep
}

func (s *scoreState) record(stage, source string, chipsBefore, multBefore float64, money int) {
	s.steps = append(s.steps, ScoreStep{
		Stage:       stage,
		Source:      source,
		ChipsBefore: chipsBefore,
		ChipsAfter:  s.chips,
		MultBefore:  multBefore,
		MultAfter:   s.mult,
		Money:       money,
	})
}

func (s *scoreState) addChips(stage, source string, n float64) {
	if n == 0 {
		return
	}
	cb, mb := s.chips, s.mult
	s.chips += n
	s.record(stage, source, cb, mb, 0)
}

func (s *scoreState) addMult(stage, source string, n float64) {
	if n == 0 {
		return
	}
	cb, mb := s.chips, s.mult
	s.mult += n
	s.record(stage, source, cb, mb, 0)
}

func (s *scoreState) timesMult(stage, source string, x float64) {
	if x == 1 {
		return
	}
	cb, mb := s.chips, s.mult
	s.mult *= x
	s.record(stage, source, cb, mb, 0)
}

func (s *scoreState) earn(stage, source string, n int) {
	if n == 0 {
		return
	}
	s.money += n
	s.record(stage, source, s.chips, s.mult, n)
}

func (s *scoreState) applyEffect(stage, source string, e Effect) {
	s.addChips(stage, source, e.Chips)
	s.addMult(stage, source, e.Mult)
	if e.XMult != 0 {
		s.timesMult(stage, source, e.XMult)
	}
}

// jokerSource labels a trace step with the joker that produced it,
// naming the copied joker when the slot holds a Blueprint.
func jokerSource(owned []Joker, slot int, def *JokerDef) string {
	if slot < len(owned) && jokerTable[owned[slot].ID].Copies {
		return fmt.Sprintf("Blueprint (%s)", def.Name)
	}
	return def.Name
}

// ScoringIndices merges the pattern indices with the stone cards of the
// selection, which always score, preserving play order.
func ScoringIndices(played []Card, patternIdx []int) []int {
	inPattern := make(map[int]bool, len(patternIdx))
	for _, i := range patternIdx {
		inPattern[i] = true
	}
	out := make([]int, 0, len(played))
	for i, c := range played {
		if inPattern[i] || c.IsStone() {
			out = append(out, i)
		}
	}
	return out
}

// ScoreHand runs the full scoring pipeline over one play and returns
// the totals together with a step-by-step trace.
func ScoreHand(ctx *ScoreContext) *ScoreResult {
	handID, patternIdx := BestHand(ctx.Played)
	scoringIdx := ScoringIndices(ctx.Played, patternIdx)
	resolved := ResolveJokerDefs(ctx.Jokers)

	s := &scoreState{
		chips: float64(ctx.Levels.BaseChips(handID)),
		mult:  float64(ctx.Levels.BaseMult(handID)),
	}
	s.record(StageBase, HandName(handID), 0, 0, 0)

	// Card stage: every scoring card in play order, retriggered by its
	// red seal and by rank retrigger jokers.
	for _, idx := range scoringIdx {
		card := ctx.Played[idx]
		if card.Debuffed {
			continue
		}
		triggers := 1
		if card.Seal == SealRed {
			triggers++
		}
		for _, def := range resolved {
			if def != nil && def.Retrigger != nil {
				triggers += def.Retrigger(card)
			}
		}
		for t := 0; t < triggers; t++ {
			source := card.String()
			s.addChips(StageCard, source, float64(PointsPerCard(card)+card.ChipBonus()))
			s.addMult(StageCard, source, float64(card.MultBonus()))
			if card.Enhancement == EnhancementLucky {
				if ctx.Rng != nil && ctx.Rng.Intn(5) == 0 {
					s.addMult(StageCard, "Lucky "+source, 20)
				}
				if ctx.Rng != nil && ctx.Rng.Intn(15) == 0 {
					s.earn(StageCard, "Lucky "+source, 20)
				}
			}
			if x := card.XMult(); x != 1 {
				s.timesMult(StageCard, source, x)
			}
			for slot, def := range resolved {
				if def == nil || def.PerCard == nil {
					continue
				}
				if e, ok := def.PerCard(ctx, card); ok {
					s.applyEffect(StageCard, jokerSource(ctx.Jokers, slot, def), e)
				}
			}
			if card.Seal == SealGold {
				s.earn(StageCard, "Gold Seal "+source, 3)
			}
		}
	}

	// Held stage: steel cards in hand, retriggered by red seals.
	for _, card := range ctx.Held {
		if card.Debuffed || card.Enhancement != EnhancementSteel {
			continue
		}
		triggers := 1
		if card.Seal == SealRed {
			triggers++
		}
		for t := 0; t < triggers; t++ {
			s.timesMult(StageHeld, card.String(), 1.5)
		}
	}

	// Joker stage: slot order, additions before multipliers per joker.
	for slot, def := range resolved {
		if def == nil || def.PerHand == nil {
			continue
		}
		if e, ok := def.PerHand(ctx, handID); ok {
			s.applyEffect(StageJoker, jokerSource(ctx.Jokers, slot, def), e)
		}
	}

	total := int(math.Round(s.chips * s.mult))
	if total < 0 {
		total = 0
	}
	cb, mb := s.chips, s.mult
	s.record(StageFinal, HandName(handID), cb, mb, 0)

	// Glass cards that scored may shatter after the play resolves.
	var shattered []int
	if ctx.Rng != nil {
		for _, idx := range scoringIdx {
			card := ctx.Played[idx]
			if card.Enhancement == EnhancementGlass && !card.Debuffed && ctx.Rng.Intn(4) == 0 {
				shattered = append(shattered, idx)
			}
		}
	}

	return &ScoreResult{
		HandID:       handID,
		HandName:     HandName(handID),
		Level:        ctx.Levels.Level(handID),
		ScoringIdx:   scoringIdx,
		Chips:        s.chips,
		Mult:         s.mult,
		Total:        total,
		Money:        s.money,
		ShatteredIdx: shattered,
		Steps:        s.steps,
	}
}
