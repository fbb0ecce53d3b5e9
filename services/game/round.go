package game

import (
	game_constants "Farol/constants/game"
	"Farol/services/poker"
	"sort"

	"golang.org/x/exp/rand"
)

// Hand sort modes.
const (
	SortByRank = "rank"
	SortBySuit = "suit"
)

// ToggleCardSelection selects or deselects a card of the hand. At most
// five cards can be selected at once.
func (s *RunState) ToggleCardSelection(index int) error {
	if s.Phase != PhaseRound {
		return ErrIllegalTransition
	}
	if index < 0 || index >= len(s.Hand) {
		return ErrNotFound
	}
	for i, sel := range s.Selected {
		if sel == index {
			s.Selected = append(s.Selected[:i], s.Selected[i+1:]...)
			return nil
		}
	}
	if len(s.Selected) >= game_constants.MaxSelectedCards {
		return ErrInvalidSelection
	}
	s.Selected = append(s.Selected, index)
	return nil
}

// SortHandBy reorders the hand by rank or by suit. The selection follows
// the cards to their new positions.
func (s *RunState) SortHandBy(mode string) error {
	if s.Phase != PhaseRound {
		return ErrIllegalTransition
	}
	var less func(a, b poker.Card) bool
	switch mode {
	case SortByRank:
		less = poker.LessByRank
	case SortBySuit:
		less = poker.LessBySuit
	default:
		return ErrInvalidSelection
	}

	perm := make([]int, len(s.Hand))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return less(s.Hand[perm[a]], s.Hand[perm[b]])
	})

	newPos := make(map[int]int, len(perm))
	sorted := make([]poker.Card, len(s.Hand))
	for newIdx, oldIdx := range perm {
		sorted[newIdx] = s.Hand[oldIdx]
		newPos[oldIdx] = newIdx
	}
	s.Hand = sorted
	for i, sel := range s.Selected {
		s.Selected[i] = newPos[sel]
	}
	return nil
}

// PlaySelection plays the selected cards: classifies, scores, removes the
// played cards and draws replacements. Winning the round moves to the shop,
// running out of hands below the target ends the run.
func (s *RunState) PlaySelection() error {
	if s.Phase != PhaseRound {
		return ErrIllegalTransition
	}
	n := len(s.Selected)
	if n == 0 || n > game_constants.MaxSelectedCards || s.HandsLeft <= 0 {
		return ErrInvalidSelection
	}
	boss := s.activeBossRule()
	if boss != nil && boss.ExactPlaySize > 0 && n != boss.ExactPlaySize {
		return ErrInvalidSelection
	}

	played, rest := s.splitSelection()
	rng := newRng(s.Seed, "play", s.Ante, s.Blind, s.RoundPlays)
	result := poker.ScoreHand(&poker.ScoreContext{
		Played:       played,
		Held:         rest,
		Jokers:       s.Jokers,
		Levels:       s.Levels,
		DiscardsLeft: s.DiscardsLeft,
		Rng:          rng,
	})

	s.RoundPlays++
	s.HandsLeft--
	s.Money += result.Money
	s.RoundScore += result.Total
	if result.Total > s.BestHandScore {
		s.BestHandScore = result.Total
	}
	s.LastHandID = result.HandID
	s.LastTrace = result.Steps

	// Shattered glass cards leave the run for good, the rest of the play
	// goes to the played pile and returns at the next shuffle.
	shattered := make(map[int]bool, len(result.ShatteredIdx))
	for _, idx := range result.ShatteredIdx {
		shattered[idx] = true
	}
	kept := make([]poker.Card, 0, len(played))
	for i, card := range played {
		if !shattered[i] {
			kept = append(kept, card)
		}
	}
	s.Deck.MarkAsPlayed(kept)
	s.Hand = rest
	s.Selected = nil

	if s.RoundScore >= s.Target {
		s.finishRound()
		return nil
	}
	if boss != nil && boss.DiscardsPerPlay > 0 {
		s.forcedDiscards(rng, boss.DiscardsPerPlay)
	}
	if s.HandsLeft == 0 {
		s.Phase = PhaseGameOver
		return nil
	}
	s.refillHand()
	return nil
}

// DiscardSelection throws the selected cards away and redraws, without
// scoring. Purple seals on discarded cards yield tarots.
func (s *RunState) DiscardSelection() error {
	if s.Phase != PhaseRound {
		return ErrIllegalTransition
	}
	n := len(s.Selected)
	if n == 0 || n > game_constants.MaxSelectedCards || s.DiscardsLeft <= 0 {
		return ErrInvalidSelection
	}

	discarded, rest := s.splitSelection()
	rng := newRng(s.Seed, "discard", s.Ante, s.Blind, s.RoundDiscards)
	s.Deck.MarkAsPlayed(discarded)
	for _, card := range discarded {
		s.sealTarot(card, rng)
	}
	s.Hand = rest
	s.Selected = nil
	s.DiscardsLeft--
	s.RoundDiscards++
	s.refillHand()
	return nil
}

// splitSelection returns the selected cards in hand order and the cards
// left behind.
func (s *RunState) splitSelection() (selected, rest []poker.Card) {
	picked := make(map[int]bool, len(s.Selected))
	for _, idx := range s.Selected {
		picked[idx] = true
	}
	for i, card := range s.Hand {
		if picked[i] {
			selected = append(selected, card)
		} else {
			rest = append(rest, card)
		}
	}
	return selected, rest
}

// refillHand draws back up to hand size. Drawn cards start clean and get
// debuffed by the active boss rule as they enter the hand.
func (s *RunState) refillHand() {
	need := s.HandSize() - len(s.Hand)
	if need <= 0 {
		return
	}
	drawn := s.Deck.Draw(need)
	for i := range drawn {
		drawn[i].Debuffed = false
	}
	if boss := s.activeBossRule(); boss != nil {
		boss.DebuffCards(drawn)
	}
	s.Hand = append(s.Hand, drawn...)
}

// forcedDiscards is The Hook's after-play rule: random held cards get
// discarded, as long as more than two cards remain.
func (s *RunState) forcedDiscards(rng *rand.Rand, count int) {
	for i := 0; i < count && len(s.Hand) > 2; i++ {
		idx := rng.Intn(len(s.Hand))
		card := s.Hand[idx]
		s.Hand = append(s.Hand[:idx], s.Hand[idx+1:]...)
		s.Deck.MarkAsPlayed([]poker.Card{card})
		s.sealTarot(card, rng)
	}
}

// sealTarot grants the random tarot a discarded purple seal card yields,
// if there is room for it.
func (s *RunState) sealTarot(card poker.Card, rng *rand.Rand) {
	if card.Seal != poker.SealPurple || card.Debuffed {
		return
	}
	if len(s.Consumables) >= s.ConsumableSlots() {
		return
	}
	s.Consumables = append(s.Consumables, poker.RandomTarotID(rng))
}

// finishRound pays out a beaten blind and moves on: to the shop normally,
// straight to victory when the final ante's boss falls.
func (s *RunState) finishRound() {
	goldCards := 0
	for _, card := range s.Hand {
		if card.Enhancement == poker.EnhancementGold && !card.Debuffed {
			goldCards++
		}
	}
	// Blue seals held at round end turn into the planet of the last hand.
	for _, card := range s.Hand {
		if card.Seal != poker.SealBlue || card.Debuffed {
			continue
		}
		planet, ok := poker.PlanetForHand(s.LastHandID)
		if !ok || len(s.Consumables) >= s.ConsumableSlots() {
			continue
		}
		s.Consumables = append(s.Consumables, planet)
	}

	jokerMoney := 0
	for i, owned := range s.Jokers {
		def, ok := poker.JokerDefByID(owned.ID)
		if !ok {
			continue
		}
		jokerMoney += def.RoundMoney
		if def.SellGrowth > 0 {
			s.Jokers[i].SellBonus += def.SellGrowth
		}
	}

	cashOut := &CashOut{
		Blind:      s.Blind,
		Reward:     BlindReward(s.Blind),
		HandsBonus: s.HandsLeft * game_constants.MoneyPerHandLeft,
		Interest:   s.Money / game_constants.InterestDenominator,
		JokerMoney: jokerMoney,
		GoldCards:  goldCards * game_constants.MoneyPerGoldCard,
	}
	if cashOut.Interest > game_constants.MaxInterest {
		cashOut.Interest = game_constants.MaxInterest
	}
	cashOut.Total = cashOut.Reward + cashOut.HandsBonus + cashOut.Interest +
		cashOut.JokerMoney + cashOut.GoldCards
	s.Money += cashOut.Total
	s.LastCashOut = cashOut

	s.Deck.MarkAsPlayed(s.Hand)
	s.Hand = nil
	s.Selected = nil
	s.BlindsBeaten++

	if s.Blind == BlindBoss && s.Ante >= game_constants.FinalAnte {
		s.Phase = PhaseVictory
		return
	}
	s.Phase = PhaseShop
	s.Shop = s.generateShop(0)
}
