package game

import (
	"Farol/services/poker"

	"golang.org/x/exp/rand"
)

// UseConsumable consumes an owned planet or tarot. Targets are hand indices
// for tarots that transform cards; their count must sit inside the card's
// required range. Valid while playing a round and in the shop.
func (s *RunState) UseConsumable(index int, targets []int) error {
	if s.Phase != PhaseRound && s.Phase != PhaseShop {
		return ErrIllegalTransition
	}
	if index < 0 || index >= len(s.Consumables) {
		return ErrNotFound
	}
	def, ok := poker.ConsumableDefByID(s.Consumables[index])
	if !ok {
		return ErrNotFound
	}
	if len(targets) < def.MinCards || len(targets) > def.MaxCards {
		return ErrInvalidSelection
	}
	seen := make(map[int]bool, len(targets))
	for _, t := range targets {
		if t < 0 || t >= len(s.Hand) || seen[t] {
			return ErrInvalidSelection
		}
		seen[t] = true
	}
	if def.ID == poker.TarotTheFool {
		last, ok := poker.ConsumableDefByID(s.LastConsumableID)
		if !ok || last.ID == poker.TarotTheFool {
			return ErrInvalidSelection
		}
	}

	s.Consumables = append(s.Consumables[:index], s.Consumables[index+1:]...)

	switch {
	case def.Kind == poker.ConsumablePlanet:
		s.Levels.LevelUp(def.HandID)
	case def.Transform != nil:
		picked := make([]poker.Card, len(targets))
		for i, t := range targets {
			picked[i] = s.Hand[t]
		}
		def.Transform(picked)
		for i, t := range targets {
			s.Hand[t] = picked[i]
		}
	default:
		s.applyTarot(def, newRng(s.Seed, "consumable", s.ConsumablesUsed))
	}

	s.ConsumablesUsed++
	s.LastConsumableID = def.ID
	return nil
}

// applyTarot runs the tarots that do something other than transforming
// selected cards. The used card's slot is already free at this point.
func (s *RunState) applyTarot(def poker.ConsumableDef, rng *rand.Rand) {
	switch def.ID {
	case poker.TarotTheFool:
		if len(s.Consumables) < s.ConsumableSlots() {
			s.Consumables = append(s.Consumables, s.LastConsumableID)
		}
	case poker.TarotTheHighPriestess:
		for i := 0; i < 2 && len(s.Consumables) < s.ConsumableSlots(); i++ {
			s.Consumables = append(s.Consumables, poker.RandomPlanetID(rng))
		}
	case poker.TarotTheEmperor:
		for i := 0; i < 2 && len(s.Consumables) < s.ConsumableSlots(); i++ {
			s.Consumables = append(s.Consumables, poker.RandomTarotID(rng))
		}
	case poker.TarotTheHermit:
		gain := s.Money
		if gain > 20 {
			gain = 20
		}
		s.Money += gain
	case poker.TarotTemperance:
		gain := 0
		for _, j := range s.Jokers {
			gain += j.SellValue()
		}
		if gain > 50 {
			gain = 50
		}
		s.Money += gain
	}
}
