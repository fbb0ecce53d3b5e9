package controllers

import (
	"Farol/middleware"
	models "Farol/models/postgres"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary List the caller's archived runs
// @Description Returns the archived runs of the logged user, newest first
// @Tags runs
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {array} object{id=string,seed=integer,outcome=string,ante=integer,blinds_beaten=integer,best_hand_score=integer,final_money=integer,created_at=string}
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /auth/runs [get]
// @Security ApiKeyAuth
func GetRunHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, err := middleware.JWT_decoder(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found: invalid email"})
			return
		}

		var records []models.RunRecord
		result := db.Where("username = ?", user.ProfileUsername).
			Order("created_at DESC").
			Find(&records)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching run history"})
			return
		}

		simplified := make([]gin.H, len(records))
		for i, record := range records {
			simplified[i] = gin.H{
				"id":              record.ID,
				"seed":            record.Seed,
				"outcome":         record.Outcome,
				"ante":            record.Ante,
				"blinds_beaten":   record.BlindsBeaten,
				"best_hand_score": record.BestHandScore,
				"final_money":     record.FinalMoney,
				"created_at":      record.CreatedAt,
			}
		}

		c.JSON(http.StatusOK, simplified)
	}
}

// @Summary Get one archived run
// @Description Returns a single archived run of the logged user, closing snapshot included
// @Tags runs
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path string true "Run record id"
// @Success 200 {object} object{id=string,seed=integer,outcome=string,ante=integer,blinds_beaten=integer,best_hand_score=integer,final_money=integer,final_state=object,created_at=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /auth/runs/{id} [get]
// @Security ApiKeyAuth
func GetRunRecord(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, err := middleware.JWT_decoder(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found: invalid email"})
			return
		}

		var record models.RunRecord
		result := db.Where("id = ? AND username = ?", c.Param("id"), user.ProfileUsername).
			First(&record)
		if result.Error != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":              record.ID,
			"seed":            record.Seed,
			"outcome":         record.Outcome,
			"ante":            record.Ante,
			"blinds_beaten":   record.BlindsBeaten,
			"best_hand_score": record.BestHandScore,
			"final_money":     record.FinalMoney,
			"final_state":     json.RawMessage(record.FinalState),
			"created_at":      record.CreatedAt,
		})
	}
}

// One leaderboard row, the best numbers of one player across all of their
// archived runs.
type leaderboardRow struct {
	Username      string `json:"username"`
	BestHandScore int    `json:"best_hand_score"`
	BestAnte      int    `json:"best_ante"`
	Runs          int    `json:"runs"`
	Victories     int    `json:"victories"`
}

// @Summary Get the global leaderboard
// @Description Returns the best archived run numbers per player, ordered by hand score
// @Tags runs
// @Produce json
// @Param limit query integer false "Maximum rows to return (default 10, max 50)"
// @Success 200 {array} object{username=string,best_hand_score=integer,best_ante=integer,runs=integer,victories=integer}
// @Failure 500 {object} object{error=string}
// @Router /leaderboard [get]
func GetLeaderboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 10
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Limit must be a positive number"})
				return
			}
			if parsed > 50 {
				parsed = 50
			}
			limit = parsed
		}

		var rows []leaderboardRow
		result := db.Model(&models.RunRecord{}).
			Select("username, MAX(best_hand_score) AS best_hand_score, MAX(ante) AS best_ante, COUNT(*) AS runs, SUM(CASE WHEN outcome = 'victory' THEN 1 ELSE 0 END) AS victories").
			Group("username").
			Order("best_hand_score DESC").
			Limit(limit).
			Scan(&rows)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching leaderboard"})
			return
		}

		c.JSON(http.StatusOK, rows)
	}
}
