package sync

import (
	"Farol/models/postgres"
	"Farol/services/game"
	"Farol/services/redis"
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SyncManager moves finished runs from their live Redis session into the
// PostgreSQL archive.
type SyncManager struct {
	redisClient *redis.RedisClient
	db          *gorm.DB
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(redisClient *redis.RedisClient, db *gorm.DB) *SyncManager {
	return &SyncManager{
		redisClient: redisClient,
		db:          db,
	}
}

// ProfileStats is the JSONB layout of game_profiles.user_stats.
type ProfileStats struct {
	RunsPlayed    int `json:"runs_played"`
	RunsWon       int `json:"runs_won"`
	BestHandScore int `json:"best_hand_score"`
	BestAnte      int `json:"best_ante"`
}

// OutcomeForPhase maps an engine phase to the archive outcome. Anything
// short of a terminal phase counts as abandoned.
func OutcomeForPhase(phase string) string {
	switch phase {
	case game.PhaseVictory:
		return postgres.OutcomeVictory
	case game.PhaseGameOver:
		return postgres.OutcomeDefeat
	default:
		return postgres.OutcomeAbandoned
	}
}

// MergeStats folds one archived run into a profile's lifetime stats.
func MergeStats(stats ProfileStats, run *game.RunState, outcome string) ProfileStats {
	stats.RunsPlayed++
	if outcome == postgres.OutcomeVictory {
		stats.RunsWon++
	}
	if run.BestHandScore > stats.BestHandScore {
		stats.BestHandScore = run.BestHandScore
	}
	if run.Ante > stats.BestAnte {
		stats.BestAnte = run.Ante
	}
	return stats
}

// ArchiveRun persists a run as a RunRecord, folds it into the profile's
// lifetime stats and drops the player's Redis keys. The record and the stats
// update land in one transaction.
func (sm *SyncManager) ArchiveRun(username string, run *game.RunState) error {
	finalState, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("error marshaling final run state: %v", err)
	}
	outcome := OutcomeForPhase(run.Phase)

	record := postgres.RunRecord{
		Username:      username,
		Seed:          run.Seed,
		Outcome:       outcome,
		Ante:          run.Ante,
		BlindsBeaten:  run.BlindsBeaten,
		BestHandScore: run.BestHandScore,
		FinalMoney:    run.Money,
		FinalState:    datatypes.JSON(finalState),
	}

	err = sm.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("error creating run record: %v", err)
		}

		var profile postgres.GameProfile
		if err := tx.Where("username = ?", username).First(&profile).Error; err != nil {
			return fmt.Errorf("error fetching game profile: %v", err)
		}

		var stats ProfileStats
		if len(profile.UserStats) > 0 {
			// A malformed blob starts the stats over instead of failing the archive.
			if err := json.Unmarshal(profile.UserStats, &stats); err != nil {
				log.Printf("Resetting malformed stats for %s: %v", username, err)
				stats = ProfileStats{}
			}
		}
		stats = MergeStats(stats, run, outcome)

		blob, err := json.Marshal(stats)
		if err != nil {
			return fmt.Errorf("error marshaling profile stats: %v", err)
		}

		return tx.Model(&postgres.GameProfile{}).
			Where("username = ?", username).
			Updates(map[string]interface{}{
				"user_stats":  datatypes.JSON(blob),
				"is_in_a_run": false,
			}).Error
	})
	if err != nil {
		return err
	}

	// Redis cleanup failing only costs a stale key, the archive already
	// committed.
	if sm.redisClient != nil {
		if err := sm.redisClient.CleanupPlayer(username); err != nil {
			log.Printf("Error cleaning up Redis keys for %s: %v", username, err)
		}
	}
	return nil
}

// SetInRun flips the profile's live-run flag.
func (sm *SyncManager) SetInRun(username string, inRun bool) error {
	return sm.db.Model(&postgres.GameProfile{}).
		Where("username = ?", username).
		Update("is_in_a_run", inRun).Error
}
