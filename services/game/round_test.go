package game

import (
	"encoding/json"
	"testing"

	"Farol/services/poker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleCardSelection(t *testing.T) {
	s := roundRun([]poker.Card{
		card("K", "h"), card("K", "d"), card("5", "s"), card("9", "c"),
		card("2", "d"), card("7", "h"), card("3", "s"), card("8", "d"),
	})

	t.Run("selects and deselects", func(t *testing.T) {
		assert.NoError(t, s.ToggleCardSelection(0))
		assert.NoError(t, s.ToggleCardSelection(3))
		assert.Equal(t, []int{0, 3}, s.Selected)

		assert.NoError(t, s.ToggleCardSelection(0))
		assert.Equal(t, []int{3}, s.Selected)

		assert.NoError(t, s.ToggleCardSelection(3))
		assert.Empty(t, s.Selected)
	})

	t.Run("caps the selection at five", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			assert.NoError(t, s.ToggleCardSelection(i))
		}
		assert.ErrorIs(t, s.ToggleCardSelection(5), ErrInvalidSelection)
		assert.Len(t, s.Selected, 5)
		s.Selected = nil
	})

	t.Run("rejects bad indices", func(t *testing.T) {
		assert.ErrorIs(t, s.ToggleCardSelection(-1), ErrNotFound)
		assert.ErrorIs(t, s.ToggleCardSelection(8), ErrNotFound)
	})

	t.Run("only while playing", func(t *testing.T) {
		s.Phase = PhaseShop
		assert.ErrorIs(t, s.ToggleCardSelection(0), ErrIllegalTransition)
		s.Phase = PhaseRound
	})
}

func TestSortHandBy(t *testing.T) {
	hand := []poker.Card{
		card("2", "h"), card("K", "d"), card("5", "s"), card("A", "h"),
		card("9", "c"), card("3", "d"), card("Q", "s"), card("7", "h"),
	}

	t.Run("by rank keeps the selection on its cards", func(t *testing.T) {
		s := roundRun(append([]poker.Card{}, hand...))
		require.NoError(t, s.ToggleCardSelection(3)) // Ah
		require.NoError(t, s.ToggleCardSelection(0)) // 2h

		require.NoError(t, s.SortHandBy(SortByRank))

		want := []poker.Card{
			card("A", "h"), card("K", "d"), card("Q", "s"), card("9", "c"),
			card("7", "h"), card("5", "s"), card("3", "d"), card("2", "h"),
		}
		assert.Equal(t, want, s.Hand)
		assert.Equal(t, []int{0, 7}, s.Selected)
	})

	t.Run("by suit groups suits in fixed order", func(t *testing.T) {
		s := roundRun(append([]poker.Card{}, hand...))
		require.NoError(t, s.SortHandBy(SortBySuit))

		want := []poker.Card{
			card("A", "h"), card("7", "h"), card("2", "h"),
			card("K", "d"), card("3", "d"),
			card("9", "c"),
			card("Q", "s"), card("5", "s"),
		}
		assert.Equal(t, want, s.Hand)
	})

	t.Run("rejects unknown modes", func(t *testing.T) {
		s := roundRun(append([]poker.Card{}, hand...))
		assert.ErrorIs(t, s.SortHandBy("color"), ErrInvalidSelection)
	})
}

func TestPlaySelectionScoresAndRedraws(t *testing.T) {
	s := roundRun([]poker.Card{
		card("K", "h"), card("K", "d"), card("5", "s"), card("9", "c"),
		card("2", "d"), card("7", "h"), card("3", "s"), card("8", "d"),
	})
	require.NoError(t, s.ToggleCardSelection(0))
	require.NoError(t, s.ToggleCardSelection(1))

	require.NoError(t, s.PlaySelection())

	// Pair of kings: (10 + 10 + 10) x 2.
	assert.Equal(t, 60, s.RoundScore)
	assert.Equal(t, 60, s.BestHandScore)
	assert.Equal(t, poker.HandPair, s.LastHandID)
	assert.Equal(t, 3, s.HandsLeft)
	assert.Equal(t, 1, s.RoundPlays)
	assert.Equal(t, 4, s.Money)
	assert.Len(t, s.Hand, 8)
	assert.Empty(t, s.Selected)
	assert.Len(t, s.Deck.PlayedCards, 2)
	assert.NotEmpty(t, s.LastTrace)
	assert.Equal(t, poker.StageBase, s.LastTrace[0].Stage)
}

func TestPlaySelectionValidation(t *testing.T) {
	s := roundRun([]poker.Card{
		card("K", "h"), card("K", "d"), card("5", "s"), card("9", "c"),
		card("2", "d"), card("7", "h"), card("3", "s"), card("8", "d"),
	})

	t.Run("empty selection", func(t *testing.T) {
		assert.ErrorIs(t, s.PlaySelection(), ErrInvalidSelection)
	})

	t.Run("psychic requires exactly five cards", func(t *testing.T) {
		s.Blind = BlindBoss
		s.BossID = poker.BossThePsychic
		require.NoError(t, s.ToggleCardSelection(0))
		require.NoError(t, s.ToggleCardSelection(1))

		before, err := json.Marshal(s)
		require.NoError(t, err)
		assert.ErrorIs(t, s.PlaySelection(), ErrInvalidSelection)
		after, err := json.Marshal(s)
		require.NoError(t, err)
		assert.Equal(t, before, after)

		for _, i := range []int{2, 3, 4} {
			require.NoError(t, s.ToggleCardSelection(i))
		}
		assert.NoError(t, s.PlaySelection())
	})
}

func TestPlaySelectionWinsTheRound(t *testing.T) {
	s := roundRun([]poker.Card{
		card("K", "h"), card("K", "d"), enhanced("5", "s", poker.EnhancementGold),
		card("9", "c"), card("2", "d"), card("7", "h"), card("3", "s"), card("8", "d"),
	})
	s.Target = 60
	s.Jokers = []poker.Joker{{ID: poker.JokerGolden}, {ID: poker.JokerEgg}}
	require.NoError(t, s.ToggleCardSelection(0))
	require.NoError(t, s.ToggleCardSelection(1))

	require.NoError(t, s.PlaySelection())

	assert.Equal(t, PhaseShop, s.Phase)
	require.NotNil(t, s.LastCashOut)

	// $3 small blind + $3 for three hands left + $0 interest + $4 golden
	// joker + $3 for the held gold card.
	assert.Equal(t, 3, s.LastCashOut.Reward)
	assert.Equal(t, 3, s.LastCashOut.HandsBonus)
	assert.Equal(t, 0, s.LastCashOut.Interest)
	assert.Equal(t, 4, s.LastCashOut.JokerMoney)
	assert.Equal(t, 3, s.LastCashOut.GoldCards)
	assert.Equal(t, 13, s.LastCashOut.Total)
	assert.Equal(t, 17, s.Money)

	// The egg grew its sell value.
	assert.Equal(t, 3, s.Jokers[1].SellBonus)

	assert.Empty(t, s.Hand)
	assert.Len(t, s.Deck.PlayedCards, 8)
	assert.Equal(t, 1, s.BlindsBeaten)
	require.NotNil(t, s.Shop)
	assert.Len(t, s.Shop.Offers, 5)
}

func TestCashOutInterest(t *testing.T) {
	t.Run("one dollar per five held", func(t *testing.T) {
		s := roundRun([]poker.Card{card("K", "h"), card("K", "d"), card("5", "s")})
		s.Target = 60
		s.Money = 23
		require.NoError(t, s.ToggleCardSelection(0))
		require.NoError(t, s.ToggleCardSelection(1))
		require.NoError(t, s.PlaySelection())
		assert.Equal(t, 4, s.LastCashOut.Interest)
	})

	t.Run("capped at five", func(t *testing.T) {
		s := roundRun([]poker.Card{card("K", "h"), card("K", "d"), card("5", "s")})
		s.Target = 60
		s.Money = 49
		require.NoError(t, s.ToggleCardSelection(0))
		require.NoError(t, s.ToggleCardSelection(1))
		require.NoError(t, s.PlaySelection())
		assert.Equal(t, 5, s.LastCashOut.Interest)
	})
}

func TestBlueSealMakesLastHandPlanet(t *testing.T) {
	held := card("9", "c")
	held.Seal = poker.SealBlue
	s := roundRun([]poker.Card{card("K", "h"), card("K", "d"), held})
	s.Target = 60
	require.NoError(t, s.ToggleCardSelection(0))
	require.NoError(t, s.ToggleCardSelection(1))

	require.NoError(t, s.PlaySelection())

	assert.Equal(t, []int{poker.PlanetMercury}, s.Consumables)
}

func TestPlaySelectionLosesTheRun(t *testing.T) {
	s := roundRun([]poker.Card{
		card("K", "h"), card("K", "d"), card("5", "s"), card("9", "c"),
		card("2", "d"), card("7", "h"), card("3", "s"), card("8", "d"),
	})
	s.HandsLeft = 1
	require.NoError(t, s.ToggleCardSelection(0))
	require.NoError(t, s.ToggleCardSelection(1))

	require.NoError(t, s.PlaySelection())

	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.Equal(t, 60, s.RoundScore)
	assert.ErrorIs(t, s.PlaySelection(), ErrIllegalTransition)
	assert.ErrorIs(t, s.DiscardSelection(), ErrIllegalTransition)
	assert.ErrorIs(t, s.ToggleCardSelection(0), ErrIllegalTransition)
}

func TestWinOnLastHandBeatsTheLossCheck(t *testing.T) {
	s := roundRun([]poker.Card{card("K", "h"), card("K", "d"), card("5", "s")})
	s.HandsLeft = 1
	s.Target = 60
	require.NoError(t, s.ToggleCardSelection(0))
	require.NoError(t, s.ToggleCardSelection(1))

	require.NoError(t, s.PlaySelection())
	assert.Equal(t, PhaseShop, s.Phase)
}

func TestHookDiscardsAfterEachPlay(t *testing.T) {
	s := roundRun([]poker.Card{
		card("K", "h"), card("K", "d"), card("5", "s"), card("9", "c"),
		card("2", "d"), card("7", "h"), card("3", "s"), card("8", "d"),
	})
	s.Blind = BlindBoss
	s.BossID = poker.BossTheHook
	require.NoError(t, s.ToggleCardSelection(0))
	require.NoError(t, s.ToggleCardSelection(1))

	require.NoError(t, s.PlaySelection())

	// Two cards played plus two hooked away, all refilled afterwards.
	assert.Len(t, s.Deck.PlayedCards, 4)
	assert.Len(t, s.Hand, 8)
}

func TestGlassShatterBookkeeping(t *testing.T) {
	hand := []poker.Card{
		enhanced("K", "h", poker.EnhancementGlass), enhanced("K", "d", poker.EnhancementGlass),
		card("5", "s"), card("9", "c"), card("2", "d"),
	}
	s := roundRun(append([]poker.Card{}, hand...))
	require.NoError(t, s.ToggleCardSelection(0))
	require.NoError(t, s.ToggleCardSelection(1))

	// Mirror the engine's scoring stream to know which cards shattered.
	expected := poker.ScoreHand(&poker.ScoreContext{
		Played:       hand[:2],
		Held:         hand[2:],
		Levels:       s.Levels,
		DiscardsLeft: s.DiscardsLeft,
		Rng:          newRng(s.Seed, "play", s.Ante, s.Blind, 0),
	})

	require.NoError(t, s.PlaySelection())

	assert.Equal(t, expected.Total, s.RoundScore)
	assert.Len(t, s.Deck.PlayedCards, 2-len(expected.ShatteredIdx))
}

func TestDiscardSelection(t *testing.T) {
	s := roundRun([]poker.Card{
		card("K", "h"), card("K", "d"), card("5", "s"), card("9", "c"),
		card("2", "d"), card("7", "h"), card("3", "s"), card("8", "d"),
	})
	require.NoError(t, s.ToggleCardSelection(2))
	require.NoError(t, s.ToggleCardSelection(4))

	require.NoError(t, s.DiscardSelection())

	assert.Equal(t, 0, s.RoundScore)
	assert.Equal(t, 2, s.DiscardsLeft)
	assert.Equal(t, 4, s.HandsLeft)
	assert.Len(t, s.Hand, 8)
	assert.Len(t, s.Deck.PlayedCards, 2)
	assert.Empty(t, s.Selected)
}

func TestDiscardSelectionValidation(t *testing.T) {
	s := roundRun([]poker.Card{card("K", "h"), card("K", "d")})

	t.Run("empty selection", func(t *testing.T) {
		assert.ErrorIs(t, s.DiscardSelection(), ErrInvalidSelection)
	})

	t.Run("no discards left", func(t *testing.T) {
		s.DiscardsLeft = 0
		require.NoError(t, s.ToggleCardSelection(0))
		assert.ErrorIs(t, s.DiscardSelection(), ErrInvalidSelection)
		assert.Equal(t, []int{0}, s.Selected)
	})
}

func TestPurpleSealYieldsTarotOnDiscard(t *testing.T) {
	sealed := card("5", "s")
	sealed.Seal = poker.SealPurple

	t.Run("grants a tarot", func(t *testing.T) {
		s := roundRun([]poker.Card{sealed, card("9", "c"), card("2", "d")})
		require.NoError(t, s.ToggleCardSelection(0))
		require.NoError(t, s.DiscardSelection())

		require.Len(t, s.Consumables, 1)
		def, ok := poker.ConsumableDefByID(s.Consumables[0])
		require.True(t, ok)
		assert.Equal(t, poker.ConsumableTarot, def.Kind)
	})

	t.Run("skipped when debuffed", func(t *testing.T) {
		debuffed := sealed
		debuffed.Debuffed = true
		s := roundRun([]poker.Card{debuffed, card("9", "c"), card("2", "d")})
		require.NoError(t, s.ToggleCardSelection(0))
		require.NoError(t, s.DiscardSelection())
		assert.Empty(t, s.Consumables)
	})

	t.Run("skipped when slots are full", func(t *testing.T) {
		s := roundRun([]poker.Card{sealed, card("9", "c"), card("2", "d")})
		s.Consumables = []int{poker.PlanetPluto, poker.PlanetMars}
		require.NoError(t, s.ToggleCardSelection(0))
		require.NoError(t, s.DiscardSelection())
		assert.Len(t, s.Consumables, 2)
	})
}
