package handlers

import (
	redis_models "Farol/models/redis"
	"Farol/services/game"
	"Farol/services/poker"
	"Farol/services/redis"
	"Farol/services/sync"
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mitchellh/mapstructure"
	"github.com/zishang520/socket.io/v2/socket"
)

// loadRun deserializes the player's live run from Redis. No session means
// no run, which is not an error.
func loadRun(redisClient *redis.RedisClient, username string) (*game.RunState, error) {
	session, err := redisClient.GetRunSession(username)
	if err != nil || session == nil {
		return nil, err
	}
	var run game.RunState
	if err := json.Unmarshal(session.Run, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// saveRun writes the run back to Redis with a fresh activity timestamp.
func saveRun(redisClient *redis.RedisClient, client *socket.Socket, username string, run *game.RunState) error {
	raw, err := json.Marshal(run)
	if err != nil {
		return err
	}
	return redisClient.SaveRunSession(&redis_models.RunSession{
		Username:   username,
		SocketID:   string(client.Id()),
		Phase:      run.Phase,
		Run:        raw,
		LastAction: time.Now().Unix(),
	})
}

func emitUpdate(client *socket.Socket, run *game.RunState) {
	client.Emit("run_update", run.Snapshot())
}

func emitError(client *socket.Socket, message, code string) {
	client.Emit("error", gin.H{"error": message, "code": code})
}

// decodeAction builds the Action an event carries. Payloads are optional,
// events like leave_shop send none. Socket.io hands numbers over as
// float64, so the decode has to be weakly typed.
func decodeAction(args []interface{}, actionType string) (game.Action, error) {
	action := game.Action{Type: actionType}
	if len(args) == 0 {
		return action, nil
	}
	payload, ok := args[0].(map[string]interface{})
	if !ok {
		return action, nil
	}
	if err := mapstructure.WeakDecode(payload, &action); err != nil {
		return action, err
	}
	action.Type = actionType
	return action, nil
}

// terminalPhase reports whether a run is over and ready to be archived.
// Quitting counts, an abandoned run gets archived too.
func terminalPhase(phase string) bool {
	return phase == game.PhaseGameOver || phase == game.PhaseVictory || phase == game.PhaseMainMenu
}

// HandleNewRun starts a fresh run for the player, optionally on a seed the
// client chose. An unfinished run has to be quit first.
func HandleNewRun(redisClient *redis.RedisClient, client *socket.Socket,
	username string, syncManager *sync.SyncManager) func(args ...interface{}) {
	return func(args ...interface{}) {
		action, err := decodeAction(args, game.ActionNewRun)
		if err != nil {
			log.Printf("[RUN-ERROR] Usuario %s sent a bad new_run payload: %v", username, err)
			emitError(client, "Invalid new_run payload", "invalid_selection")
			return
		}

		existing, err := loadRun(redisClient, username)
		if err != nil {
			log.Printf("[RUN-ERROR] Error loading run for %s: %v", username, err)
		}
		if existing != nil && !terminalPhase(existing.Phase) {
			emitError(client, "A run is already in progress, quit it first", "illegal_transition")
			return
		}

		seed := action.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		run := game.NewRun(seed)

		if err := saveRun(redisClient, client, username, run); err != nil {
			log.Printf("[RUN-ERROR] Error saving new run for %s: %v", username, err)
			emitError(client, "Could not start the run", "internal_error")
			return
		}
		if err := syncManager.SetInRun(username, true); err != nil {
			log.Printf("[RUN-SYNC] Error flagging %s as in a run: %v", username, err)
		}
		refreshPresence(redisClient, client, username, redis_models.StatusInRun)

		log.Printf("[RUN] Usuario %s started a run with seed %d", username, seed)
		emitUpdate(client, run)
	}
}

// HandleRunCommand applies one game command to the player's live run and
// pushes the new snapshot. play_hand additionally emits the scoring trace,
// and a finished run is archived on the spot.
func HandleRunCommand(redisClient *redis.RedisClient, client *socket.Socket,
	username string, syncManager *sync.SyncManager, actionType string) func(args ...interface{}) {
	return func(args ...interface{}) {
		action, err := decodeAction(args, actionType)
		if err != nil {
			log.Printf("[RUN-ERROR] Usuario %s sent a bad %s payload: %v", username, actionType, err)
			emitError(client, "Invalid "+actionType+" payload", "invalid_selection")
			return
		}

		run, err := loadRun(redisClient, username)
		if err != nil {
			log.Printf("[RUN-ERROR] Error loading run for %s: %v", username, err)
			emitError(client, "Could not load the run", "internal_error")
			return
		}
		if run == nil {
			emitError(client, "No run in progress, start one with new_run", "not_found")
			return
		}

		if err := run.Apply(action); err != nil {
			emitError(client, err.Error(), game.ErrorCode(err))
			return
		}

		if err := saveRun(redisClient, client, username, run); err != nil {
			log.Printf("[RUN-ERROR] Error saving run for %s: %v", username, err)
			emitError(client, "Could not save the run", "internal_error")
			return
		}

		emitUpdate(client, run)
		if actionType == game.ActionPlayHand && len(run.LastTrace) > 0 {
			client.Emit("hand_scored", gin.H{
				"hand":        poker.HandName(run.LastHandID),
				"steps":       run.LastTrace,
				"round_score": run.RoundScore,
				"target":      run.Target,
			})
		}

		if terminalPhase(run.Phase) {
			archiveFinishedRun(syncManager, redisClient, client, username, run)
		}
	}
}

// HandleGetSnapshot pushes the current snapshot so a client can redraw
// without replaying anything.
func HandleGetSnapshot(redisClient *redis.RedisClient, client *socket.Socket,
	username string) func(args ...interface{}) {
	return func(args ...interface{}) {
		run, err := loadRun(redisClient, username)
		if err != nil {
			log.Printf("[RUN-ERROR] Error loading run for %s: %v", username, err)
			emitError(client, "Could not load the run", "internal_error")
			return
		}
		if run == nil {
			emitError(client, "No run in progress, start one with new_run", "not_found")
			return
		}
		emitUpdate(client, run)
	}
}

// archiveFinishedRun moves a finished run from Redis into Postgres and
// tells the client how it went.
func archiveFinishedRun(syncManager *sync.SyncManager, redisClient *redis.RedisClient,
	client *socket.Socket, username string, run *game.RunState) {
	outcome := sync.OutcomeForPhase(run.Phase)
	log.Printf("[RUN-SYNC] Archiving run of %s, outcome %s", username, outcome)

	if err := syncManager.ArchiveRun(username, run); err != nil {
		log.Printf("[RUN-SYNC] Error archiving run of %s: %v", username, err)
		emitError(client, "Could not archive the run", "internal_error")
		return
	}

	// Archiving wiped the player's Redis keys, they are still connected
	refreshPresence(redisClient, client, username, redis_models.StatusOnline)

	client.Emit("run_over", gin.H{
		"outcome":         outcome,
		"ante":            run.Ante,
		"blinds_beaten":   run.BlindsBeaten,
		"best_hand_score": run.BestHandScore,
		"money":           run.Money,
	})
}
