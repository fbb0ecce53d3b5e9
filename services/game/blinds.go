package game

import (
	game_constants "Farol/constants/game"
	"Farol/services/poker"
	"math"
)

// Base chip requirement per ante. Antes past the table keep growing by a
// flat 25000 per ante.
var anteBaseChips = []int{300, 800, 2000, 5000, 11000, 20000, 35000, 50000}

// AnteBase returns the base chip requirement of an ante.
func AnteBase(ante int) int {
	if ante < 1 {
		ante = 1
	}
	if ante <= len(anteBaseChips) {
		return anteBaseChips[ante-1]
	}
	last := anteBaseChips[len(anteBaseChips)-1]
	return last + 25000*(ante-len(anteBaseChips))
}

// BlindTarget is the score needed to beat a blind of the given kind at the
// given ante. Boss blinds use the boss's own multiplier.
func BlindTarget(ante int, blind string, bossID int) int {
	mult := game_constants.SmallBlindMultiplier
	switch blind {
	case BlindBig:
		mult = game_constants.BigBlindMultiplier
	case BlindBoss:
		mult = game_constants.BossBlindMultiplier
		if boss, ok := poker.BossByID(bossID); ok {
			mult = boss.ChipsMultiplier
		}
	}
	return int(math.Round(float64(AnteBase(ante)) * mult))
}

// BlindReward is the money granted for beating a blind kind.
func BlindReward(blind string) int {
	switch blind {
	case BlindBig:
		return game_constants.BigBlindReward
	case BlindBoss:
		return game_constants.BossBlindReward
	default:
		return game_constants.SmallBlindReward
	}
}

// SelectBlind enters the pending blind: fresh round counters, a reshuffled
// deck and a newly dealt hand with the boss rule applied.
func (s *RunState) SelectBlind() error {
	if s.Phase != PhaseBlindSelect {
		return ErrIllegalTransition
	}

	s.Target = BlindTarget(s.Ante, s.Blind, s.BossID)
	s.RoundScore = 0
	s.HandsLeft = s.RoundHandPlays()
	s.DiscardsLeft = s.RoundDiscardLimit()
	s.RoundPlays = 0
	s.RoundDiscards = 0
	s.Selected = nil
	s.LastTrace = nil
	s.LastCashOut = nil
	s.Phase = PhaseRound

	s.Deck.Shuffle(newRng(s.Seed, "deal", s.Ante, s.Blind))
	s.Hand = nil
	s.refillHand()
	return nil
}

// SkipBlind passes on the pending small or big blind without reward. Boss
// blinds can never be skipped.
func (s *RunState) SkipBlind() error {
	if s.Phase != PhaseBlindSelect {
		return ErrIllegalTransition
	}
	if s.Blind == BlindBoss {
		return ErrIllegalTransition
	}
	s.advanceBlind()
	return nil
}

// advanceBlind moves to the next blind of the ante, rolling a new boss when
// an ante is completed.
func (s *RunState) advanceBlind() {
	switch s.Blind {
	case BlindSmall:
		s.Blind = BlindBig
	case BlindBig:
		s.Blind = BlindBoss
	case BlindBoss:
		s.Ante++
		s.Blind = BlindSmall
		s.BossID = rollBoss(s.Seed, s.Ante)
	}
	s.Phase = PhaseBlindSelect
}
