package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestBossCatalog(t *testing.T) {
	for id := 1; id <= 8; id++ {
		boss, ok := BossByID(id)
		assert.True(t, ok)
		assert.Equal(t, id, boss.ID)
		assert.NotEmpty(t, boss.Name)
		if boss.ID == BossTheWall {
			assert.Equal(t, 4.0, boss.ChipsMultiplier)
		} else {
			assert.Equal(t, 2.0, boss.ChipsMultiplier)
		}
	}

	_, ok := BossByID(99)
	assert.False(t, ok)
}

func TestRandomBossID(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		id := RandomBossID(rng)
		assert.GreaterOrEqual(t, id, 1)
		assert.LessOrEqual(t, id, 8)
		seen[id] = true
	}
	assert.Len(t, seen, 8)
}

func TestBossDebuffCards(t *testing.T) {
	t.Run("suit debuff hits matching and wild cards", func(t *testing.T) {
		boss, _ := BossByID(BossTheHead)
		cards := []Card{
			card("A", "h"),
			card("K", "s"),
			enhanced("2", "c", EnhancementWild),
			enhanced("9", "h", EnhancementStone),
		}
		boss.DebuffCards(cards)
		assert.True(t, cards[0].Debuffed)
		assert.False(t, cards[1].Debuffed)
		assert.True(t, cards[2].Debuffed)
		assert.False(t, cards[3].Debuffed)
	})

	t.Run("bosses without a suit rule touch nothing", func(t *testing.T) {
		boss, _ := BossByID(BossTheWall)
		cards := []Card{card("A", "h"), card("K", "s")}
		boss.DebuffCards(cards)
		assert.False(t, cards[0].Debuffed)
		assert.False(t, cards[1].Debuffed)
	})
}

func TestBossRules(t *testing.T) {
	hook, _ := BossByID(BossTheHook)
	assert.Equal(t, 2, hook.DiscardsPerPlay)

	psychic, _ := BossByID(BossThePsychic)
	assert.Equal(t, 5, psychic.ExactPlaySize)

	needle, _ := BossByID(BossTheNeedle)
	assert.True(t, needle.HalvesHandSize)

	club, _ := BossByID(BossTheClub)
	assert.Equal(t, "c", club.DebuffSuit)
	goad, _ := BossByID(BossTheGoad)
	assert.Equal(t, "s", goad.DebuffSuit)
	window, _ := BossByID(BossTheWindow)
	assert.Equal(t, "d", window.DebuffSuit)
	head, _ := BossByID(BossTheHead)
	assert.Equal(t, "h", head.DebuffSuit)
}
