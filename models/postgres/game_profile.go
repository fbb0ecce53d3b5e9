package postgres

import (
	"gorm.io/datatypes"
)

/*
 * 'GameProfile' defines the structure for a user's game profile. It is
 * referenced in User and RunRecord; UserStats carries the lifetime counters
 * (runs played, runs won, best hand score) as JSONB.
 */
type GameProfile struct {
	Username  string         `gorm:"primaryKey;size:50;not null"`
	UserStats datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	UserIcon  int            `gorm:"default:0"`
	IsInARun  bool           `gorm:"default:false"`

	// NOTE: was creating a circular dependency between GameProfile and User
	// User       *User       `gorm:"foreignKey:Username"`
	RunRecords []RunRecord `gorm:"foreignKey:Username"`
}
