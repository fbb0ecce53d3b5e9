package postgres

import (
	"errors"
	"math/rand"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Outcomes a run can be archived with.
const (
	OutcomeVictory   = "victory"
	OutcomeDefeat    = "defeat"
	OutcomeAbandoned = "abandoned"
)

/*
 * 'RunRecord' archives one finished or abandoned run. It contains a reference
 * to GameProfile; FinalState keeps the closing engine snapshot as JSONB so
 * archived runs stay inspectable.
 */
type RunRecord struct {
	ID            string         `gorm:"primaryKey;size:50;not null"`
	Username      string         `gorm:"size:50;not null;index:idx_run_records_username"`
	Seed          uint64         `gorm:"not null"`
	Outcome       string         `gorm:"size:20;not null;index:idx_run_records_outcome"`
	Ante          int            `gorm:"default:1"`
	BlindsBeaten  int            `gorm:"default:0"`
	BestHandScore int            `gorm:"default:0"`
	FinalMoney    int            `gorm:"default:0"`
	FinalState    datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	CreatedAt     time.Time      `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationship with the player's game profile
	GameProfile GameProfile `gorm:"foreignKey:Username;constraint:OnDelete:CASCADE"`
}

// Random record id generation
const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generateRecordID(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// GORM hook to reject unknown outcomes before they reach the table
func (r *RunRecord) BeforeSave(tx *gorm.DB) error {
	switch r.Outcome {
	case OutcomeVictory, OutcomeDefeat, OutcomeAbandoned:
		return nil
	}
	return errors.New("unknown run outcome: " + r.Outcome)
}

// Ensure the id is trully unique. We wont have problems, reduced number of ids
func (r *RunRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID != "" {
		return nil
	}
	// Ensure the generated ID is unique
	for {
		newID := generateRecordID(8)
		var existing RunRecord
		if err := tx.Where("id = ?", newID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				// If no existing record, use this ID
				r.ID = newID
				return nil
			}
			// Return any unexpected error
			return err
		}
		// Otherwise, loop again to generate a new unique ID
	}
}
