package handlers

import (
	"testing"

	"Farol/services/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeActionWithoutPayload(t *testing.T) {
	action, err := decodeAction(nil, game.ActionLeaveShop)
	require.NoError(t, err)
	assert.Equal(t, game.ActionLeaveShop, action.Type)
}

func TestDecodeActionConvertsSocketNumbers(t *testing.T) {
	// Socket.io delivers JSON numbers as float64
	payload := map[string]interface{}{
		"index":   float64(3),
		"targets": []interface{}{float64(0), float64(4)},
		"seed":    float64(99),
	}

	action, err := decodeAction([]interface{}{payload}, game.ActionUseConsumable)
	require.NoError(t, err)
	assert.Equal(t, game.ActionUseConsumable, action.Type)
	assert.Equal(t, 3, action.Index)
	assert.Equal(t, []int{0, 4}, action.Targets)
	assert.Equal(t, uint64(99), action.Seed)
}

func TestDecodeActionIgnoresTypeInPayload(t *testing.T) {
	payload := map[string]interface{}{"type": "buy_offer", "index": float64(1)}

	action, err := decodeAction([]interface{}{payload}, game.ActionSellJoker)
	require.NoError(t, err)
	assert.Equal(t, game.ActionSellJoker, action.Type)
	assert.Equal(t, 1, action.Index)
}

func TestTerminalPhase(t *testing.T) {
	assert.True(t, terminalPhase(game.PhaseGameOver))
	assert.True(t, terminalPhase(game.PhaseVictory))
	assert.True(t, terminalPhase(game.PhaseMainMenu))
	assert.False(t, terminalPhase(game.PhaseRound))
	assert.False(t, terminalPhase(game.PhaseShop))
	assert.False(t, terminalPhase(game.PhaseBlindSelect))
}
