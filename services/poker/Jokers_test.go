package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestJokerCatalog(t *testing.T) {
	ids := AllJokerIDs()
	assert.Len(t, ids, 20)

	for _, id := range ids {
		def, ok := JokerDefByID(id)
		assert.True(t, ok)
		assert.Equal(t, id, def.ID)
		assert.NotEmpty(t, def.Name)
		assert.NotEmpty(t, def.Description)
		switch def.Rarity {
		case RarityCommon:
			assert.Equal(t, 4, def.Price)
		case RarityUncommon:
			assert.Equal(t, 6, def.Price)
		case RarityRare:
			assert.Equal(t, 8, def.Price)
		case RarityLegendary:
			assert.Equal(t, 20, def.Price)
		default:
			t.Fatalf("joker %d has unknown rarity %d", id, def.Rarity)
		}
	}

	assert.Len(t, JokerIDsByRarity(RarityCommon), 14)
	assert.Len(t, JokerIDsByRarity(RarityUncommon), 4)
	assert.Len(t, JokerIDsByRarity(RarityRare), 2)
	assert.Empty(t, JokerIDsByRarity(RarityLegendary))
}

func TestRandomJokerID(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	byRarity := map[int]int{}
	for i := 0; i < 1000; i++ {
		id := RandomJokerID(rng)
		def, ok := JokerDefByID(id)
		assert.True(t, ok)
		byRarity[def.Rarity]++
	}
	// 70/25/5 weights, with a wide margin for the draw.
	assert.Greater(t, byRarity[RarityCommon], 550)
	assert.Greater(t, byRarity[RarityUncommon], 120)
	assert.Greater(t, byRarity[RarityRare], 0)
	assert.Less(t, byRarity[RarityRare], 150)
}

func TestJokerSellValue(t *testing.T) {
	assert.Equal(t, 2, Joker{ID: JokerJoker}.SellValue())
	assert.Equal(t, 3, Joker{ID: JokerScholar}.SellValue())
	assert.Equal(t, 4, Joker{ID: JokerBlueprint}.SellValue())
	// An egg that grew over two rounds.
	assert.Equal(t, 8, Joker{ID: JokerEgg, SellBonus: 6}.SellValue())
	assert.Equal(t, 1, Joker{ID: 999}.SellValue())
}

func TestJokerEconomyHooks(t *testing.T) {
	egg, _ := JokerDefByID(JokerEgg)
	assert.Equal(t, 3, egg.SellGrowth)
	assert.Nil(t, egg.PerCard)
	assert.Nil(t, egg.PerHand)

	golden, _ := JokerDefByID(JokerGolden)
	assert.Equal(t, 4, golden.RoundMoney)
}

func TestResolveJokerDefs(t *testing.T) {
	t.Run("plain jokers resolve to themselves", func(t *testing.T) {
		resolved := ResolveJokerDefs([]Joker{{ID: JokerJoker}, {ID: JokerBanner}})
		assert.Equal(t, JokerJoker, resolved[0].ID)
		assert.Equal(t, JokerBanner, resolved[1].ID)
	})

	t.Run("blueprint takes the right neighbor", func(t *testing.T) {
		resolved := ResolveJokerDefs([]Joker{{ID: JokerBlueprint}, {ID: JokerHack}})
		assert.Equal(t, JokerHack, resolved[0].ID)
		assert.Equal(t, JokerHack, resolved[1].ID)
	})

	t.Run("blueprint with no neighbor resolves to nothing", func(t *testing.T) {
		resolved := ResolveJokerDefs([]Joker{{ID: JokerBlueprint}})
		assert.Nil(t, resolved[0])
	})

	t.Run("blueprint does not copy a blueprint", func(t *testing.T) {
		resolved := ResolveJokerDefs([]Joker{{ID: JokerBlueprint}, {ID: JokerBlueprint}, {ID: JokerJoker}})
		assert.Nil(t, resolved[0])
		assert.Equal(t, JokerJoker, resolved[1].ID)
		assert.Equal(t, JokerJoker, resolved[2].ID)
	})

	t.Run("unknown ids resolve to nothing", func(t *testing.T) {
		resolved := ResolveJokerDefs([]Joker{{ID: 999}})
		assert.Nil(t, resolved[0])
	})
}
