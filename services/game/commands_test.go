package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"Farol/services/poker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRoutesActions(t *testing.T) {
	t.Run("new run", func(t *testing.T) {
		s := NewRun(1)
		require.NoError(t, s.Apply(Action{Type: ActionNewRun, Seed: 7}))
		assert.Equal(t, uint64(7), s.Seed)
		assert.Equal(t, PhaseBlindSelect, s.Phase)
	})

	t.Run("blind select", func(t *testing.T) {
		s := NewRun(1)
		require.NoError(t, s.Apply(Action{Type: ActionSelectBlind}))
		assert.Equal(t, PhaseRound, s.Phase)

		s = NewRun(1)
		require.NoError(t, s.Apply(Action{Type: ActionSkipBlind}))
		assert.Equal(t, BlindBig, s.Blind)
	})

	t.Run("round commands", func(t *testing.T) {
		s := NewRun(1)
		require.NoError(t, s.Apply(Action{Type: ActionSelectBlind}))

		require.NoError(t, s.Apply(Action{Type: ActionToggleCard, Index: 0}))
		assert.Equal(t, []int{0}, s.Selected)

		require.NoError(t, s.Apply(Action{Type: ActionSortHand, SortBy: SortByRank}))
		require.NoError(t, s.Apply(Action{Type: ActionDiscard}))
		assert.Equal(t, 1, s.RoundDiscards)

		require.NoError(t, s.Apply(Action{Type: ActionToggleCard, Index: 0}))
		require.NoError(t, s.Apply(Action{Type: ActionPlayHand}))
		assert.Equal(t, 1, s.RoundPlays)

		s.Consumables = []int{poker.PlanetMercury}
		require.NoError(t, s.Apply(Action{Type: ActionUseConsumable, Index: 0}))
		assert.Equal(t, 2, s.Levels.Level(poker.HandPair))
	})

	t.Run("shop commands", func(t *testing.T) {
		s := shopRun(11)
		price := s.Shop.Offers[0].Price
		require.NoError(t, s.Apply(Action{Type: ActionBuyOffer, Index: 0}))
		assert.Equal(t, 40-price, s.Money)

		require.NoError(t, s.Apply(Action{Type: ActionSellJoker, Index: 0}))
		assert.Empty(t, s.Jokers)

		require.NoError(t, s.Apply(Action{Type: ActionRerollShop}))
		assert.Equal(t, 1, s.Shop.Rerolls)

		require.NoError(t, s.Apply(Action{Type: ActionLeaveShop}))
		assert.Equal(t, PhaseBlindSelect, s.Phase)
	})

	t.Run("quit", func(t *testing.T) {
		s := NewRun(1)
		require.NoError(t, s.Apply(Action{Type: ActionQuit}))
		assert.Equal(t, PhaseMainMenu, s.Phase)
	})
}

func TestApplyUnknownAction(t *testing.T) {
	s := NewRun(1)
	assert.ErrorIs(t, s.Apply(Action{Type: "deal_with_it"}), ErrIllegalTransition)
	assert.ErrorIs(t, s.Apply(Action{}), ErrIllegalTransition)
}

func TestApplyOnFinishedRun(t *testing.T) {
	s := NewRun(1)
	s.Phase = PhaseGameOver

	for _, action := range []string{
		ActionSelectBlind, ActionSkipBlind, ActionToggleCard, ActionSortHand,
		ActionPlayHand, ActionDiscard, ActionUseConsumable, ActionBuyOffer,
		ActionSellJoker, ActionRerollShop, ActionLeaveShop,
	} {
		assert.ErrorIs(t, s.Apply(Action{Type: action, SortBy: SortByRank}), ErrIllegalTransition, action)
	}

	require.NoError(t, s.Apply(Action{Type: ActionNewRun, Seed: 2}))
	assert.Equal(t, PhaseBlindSelect, s.Phase)
	assert.Equal(t, 1, s.Ante)
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "invalid_selection", ErrorCode(ErrInvalidSelection))
	assert.Equal(t, "insufficient_funds", ErrorCode(ErrInsufficientFunds))
	assert.Equal(t, "inventory_full", ErrorCode(ErrInventoryFull))
	assert.Equal(t, "not_found", ErrorCode(ErrNotFound))
	assert.Equal(t, "illegal_transition", ErrorCode(ErrIllegalTransition))
	assert.Equal(t, "not_found", ErrorCode(fmt.Errorf("offer 9: %w", ErrNotFound)))
	assert.Equal(t, "internal_error", ErrorCode(errors.New("redis down")))
}

func TestActionDecodesFromJSON(t *testing.T) {
	var a Action
	require.NoError(t, json.Unmarshal([]byte(`{"type":"use_consumable","index":1,"targets":[0,2]}`), &a))
	assert.Equal(t, Action{Type: ActionUseConsumable, Index: 1, Targets: []int{0, 2}}, a)
}

// Replaying the same action script on the same seed must land on the exact
// same state, byte for byte. This is what lets a run be restored from its
// seed and command log.
func TestScriptedRunReplays(t *testing.T) {
	script := []Action{
		{Type: ActionSelectBlind},
		{Type: ActionSortHand, SortBy: SortByRank},
		{Type: ActionToggleCard, Index: 5},
		{Type: ActionToggleCard, Index: 6},
		{Type: ActionDiscard},
		{Type: ActionToggleCard, Index: 0},
		{Type: ActionToggleCard, Index: 1},
		{Type: ActionToggleCard, Index: 2},
		{Type: ActionToggleCard, Index: 3},
		{Type: ActionToggleCard, Index: 4},
		{Type: ActionPlayHand},
		{Type: ActionToggleCard, Index: 0},
		{Type: ActionToggleCard, Index: 1},
		{Type: ActionPlayHand},
		{Type: ActionBuyOffer, Index: 2},
		{Type: ActionLeaveShop},
	}

	play := func() ([]byte, []string) {
		s := NewRun(1234)
		codes := make([]string, 0, len(script))
		for _, a := range script {
			if err := s.Apply(a); err != nil {
				codes = append(codes, ErrorCode(err))
			} else {
				codes = append(codes, "")
			}
		}
		blob, err := json.Marshal(s)
		require.NoError(t, err)
		return blob, codes
	}

	firstState, firstCodes := play()
	secondState, secondCodes := play()

	assert.Equal(t, firstCodes, secondCodes)
	assert.Equal(t, firstState, secondState)
}
