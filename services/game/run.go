// Package game drives a single run: the blind/ante progression, the round
// loop, the shop and the player economy. All state lives in RunState, which
// is owned by exactly one caller and mutated only through commands; a
// rejected command never leaves partial effects behind.
package game

import (
	game_constants "Farol/constants/game"
	"Farol/services/poker"
)

// Run phases.
const (
	PhaseMainMenu    = "main_menu"
	PhaseBlindSelect = "blind_select"
	PhaseRound       = "round"
	PhaseShop        = "shop"
	PhaseGameOver    = "game_over"
	PhaseVictory     = "victory"
)

// Blind kinds inside an ante, always played in this order.
const (
	BlindSmall = "small"
	BlindBig   = "big"
	BlindBoss  = "boss"
)

// CashOut is the line-item breakdown of the money granted for beating a
// blind, kept for display until the next round starts.
type CashOut struct {
	Blind      string `json:"blind"`
	Reward     int    `json:"reward"`
	HandsBonus int    `json:"hands_bonus"`
	Interest   int    `json:"interest"`
	JokerMoney int    `json:"joker_money"`
	GoldCards  int    `json:"gold_cards"`
	Total      int    `json:"total"`
}

// RunState is the whole state of one run. It serializes to JSON as-is so
// adapters can persist and restore live runs; no live RNG is stored, every
// draw derives its stream from Seed plus the event counters below.
type RunState struct {
	Seed  uint64 `json:"seed"`
	Phase string `json:"phase"`

	Ante   int    `json:"ante"`
	Blind  string `json:"blind"`
	BossID int    `json:"boss_id"`

	Money        int `json:"money"`
	RoundScore   int `json:"round_score"`
	Target       int `json:"target"`
	HandsLeft    int `json:"hands_left"`
	DiscardsLeft int `json:"discards_left"`

	Deck     poker.Deck   `json:"deck"`
	Hand     []poker.Card `json:"hand"`
	Selected []int        `json:"selected"`

	Jokers      []poker.Joker    `json:"jokers"`
	Consumables []int            `json:"consumables"`
	Vouchers    []int            `json:"vouchers"`
	Levels      poker.HandLevels `json:"hand_levels"`

	Shop *Shop `json:"shop,omitempty"`

	LastHandID       int               `json:"last_hand_id"`
	LastConsumableID int               `json:"last_consumable_id"`
	LastTrace        []poker.ScoreStep `json:"last_trace,omitempty"`
	LastCashOut      *CashOut          `json:"last_cash_out,omitempty"`

	// Event counters, used both for stats and to derive RNG streams.
	RoundPlays      int `json:"round_plays"`
	RoundDiscards   int `json:"round_discards"`
	ConsumablesUsed int `json:"consumables_used"`
	BlindsBeaten    int `json:"blinds_beaten"`
	BestHandScore   int `json:"best_hand_score"`
}

// NewRun builds a fresh run at the first blind-select screen.
func NewRun(seed uint64) *RunState {
	s := &RunState{
		Seed:        seed,
		Phase:       PhaseBlindSelect,
		Ante:        1,
		Blind:       BlindSmall,
		Money:       game_constants.StartingMoney,
		Deck:        *poker.NewStandardDeck(),
		Jokers:      make([]poker.Joker, 0, game_constants.MaxJokersPerRun),
		Consumables: make([]int, 0, game_constants.MaxConsumablesPerRun),
		Vouchers:    []int{},
		Levels:      poker.NewHandLevels(),
	}
	s.BossID = rollBoss(seed, s.Ante)
	return s
}

// Reset rebuilds the receiver as a brand new run.
func (s *RunState) Reset(seed uint64) {
	*s = *NewRun(seed)
}

// Quit abandons the run and returns to the main menu. The final state stays
// readable so adapters can archive the abandoned run.
func (s *RunState) Quit() error {
	s.Phase = PhaseMainMenu
	return nil
}

func (s *RunState) ownsVoucher(id int) bool {
	for _, v := range s.Vouchers {
		if v == id {
			return true
		}
	}
	return false
}

// JokerSlots is the joker capacity, grown by the Antimatter voucher.
func (s *RunState) JokerSlots() int {
	slots := game_constants.MaxJokersPerRun
	if s.ownsVoucher(VoucherAntimatter) {
		slots++
	}
	return slots
}

// ConsumableSlots is the consumable capacity, grown by the Crystal Ball voucher.
func (s *RunState) ConsumableSlots() int {
	slots := game_constants.MaxConsumablesPerRun
	if s.ownsVoucher(VoucherCrystalBall) {
		slots++
	}
	return slots
}

// HandSize is how many cards the hand refills to. The Needle halves it for
// the round it is played.
func (s *RunState) HandSize() int {
	size := game_constants.BaseHandSize
	if s.ownsVoucher(VoucherPaintBrush) {
		size++
	}
	if boss := s.activeBossRule(); boss != nil && boss.HalvesHandSize {
		size = (size + 1) / 2
	}
	return size
}

// RoundHandPlays is how many plays a round starts with.
func (s *RunState) RoundHandPlays() int {
	plays := game_constants.TotalHandPlays
	if s.ownsVoucher(VoucherGrabber) {
		plays++
	}
	return plays
}

// RoundDiscardLimit is how many discards a round starts with.
func (s *RunState) RoundDiscardLimit() int {
	discards := game_constants.TotalDiscards
	if s.ownsVoucher(VoucherWasteful) {
		discards++
	}
	return discards
}

// activeBossRule returns the boss definition while a boss blind is being
// played, nil on small and big blinds.
func (s *RunState) activeBossRule() *poker.BossBlind {
	if s.Blind != BlindBoss {
		return nil
	}
	boss, ok := poker.BossByID(s.BossID)
	if !ok {
		return nil
	}
	return &boss
}

func rollBoss(seed uint64, ante int) int {
	return poker.RandomBossID(newRng(seed, "boss", ante))
}
