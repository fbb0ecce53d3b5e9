package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsPerCard(t *testing.T) {
	assert.Equal(t, 11, PointsPerCard(card("A", "h")))
	assert.Equal(t, 10, PointsPerCard(card("K", "h")))
	assert.Equal(t, 10, PointsPerCard(card("Q", "h")))
	assert.Equal(t, 10, PointsPerCard(card("J", "h")))
	assert.Equal(t, 10, PointsPerCard(card("10", "h")))
	assert.Equal(t, 7, PointsPerCard(card("7", "h")))
	assert.Equal(t, 2, PointsPerCard(card("2", "h")))
	assert.Equal(t, 50, PointsPerCard(enhanced("2", "h", EnhancementStone)))
}

func TestCardContributions(t *testing.T) {
	t.Run("chip bonuses", func(t *testing.T) {
		assert.Equal(t, 30, enhanced("K", "h", EnhancementBonus).ChipBonus())
		foil := card("K", "h")
		foil.Edition = EditionFoil
		assert.Equal(t, 50, foil.ChipBonus())
		both := enhanced("K", "h", EnhancementBonus)
		both.Edition = EditionFoil
		assert.Equal(t, 80, both.ChipBonus())
	})

	t.Run("mult bonuses", func(t *testing.T) {
		assert.Equal(t, 4, enhanced("K", "h", EnhancementMult).MultBonus())
		holo := card("K", "h")
		holo.Edition = EditionHolographic
		assert.Equal(t, 10, holo.MultBonus())
	})

	t.Run("multiplicative factors", func(t *testing.T) {
		assert.Equal(t, 2.0, enhanced("K", "h", EnhancementGlass).XMult())
		poly := card("K", "h")
		poly.Edition = EditionPolychrome
		assert.Equal(t, 1.5, poly.XMult())
		both := enhanced("K", "h", EnhancementGlass)
		both.Edition = EditionPolychrome
		assert.Equal(t, 3.0, both.XMult())
	})

	t.Run("debuffed cards contribute nothing", func(t *testing.T) {
		c := enhanced("K", "h", EnhancementGlass)
		c.Edition = EditionFoil
		c.Debuffed = true
		assert.Equal(t, 0, c.ChipBonus())
		assert.Equal(t, 0, c.MultBonus())
		assert.Equal(t, 1.0, c.XMult())
	})
}

func TestCardSuitAndRankChecks(t *testing.T) {
	t.Run("wild counts as every suit", func(t *testing.T) {
		wild := enhanced("K", "h", EnhancementWild)
		for _, suit := range Suits {
			assert.True(t, wild.CountsAsSuit(suit))
		}
	})

	t.Run("stone counts as no suit", func(t *testing.T) {
		stone := enhanced("K", "h", EnhancementStone)
		for _, suit := range Suits {
			assert.False(t, stone.CountsAsSuit(suit))
		}
	})

	t.Run("odd ranks", func(t *testing.T) {
		for _, rank := range []string{"3", "5", "7", "9", "J", "K"} {
			assert.True(t, card(rank, "h").IsOdd(), rank)
		}
		for _, rank := range []string{"A", "2", "4", "6", "8", "10", "Q"} {
			assert.False(t, card(rank, "h").IsOdd(), rank)
		}
	})

	t.Run("grades", func(t *testing.T) {
		assert.Equal(t, 14, Grade(card("A", "h")))
		assert.Equal(t, 13, Grade(card("K", "h")))
		assert.Equal(t, 11, Grade(card("J", "h")))
		assert.Equal(t, 2, Grade(card("2", "h")))
	})
}
