package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Farol/controllers"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRecordColumns() []string {
	return []string{
		"id", "username", "seed", "outcome", "ante",
		"blinds_beaten", "best_hand_score", "final_money",
		"final_state", "created_at",
	}
}

func TestGetRunHistory(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, mock, db := mockRouter(t)
	r.GET("/auth/runs", controllers.GetRunHistory(db))

	token := loginToken(t, "ines@example.com")

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email =`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"email", "profile_username"}).
			AddRow("ines@example.com", "ines"))

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "run_records" WHERE username =`).
		WillReturnRows(sqlmock.NewRows(runRecordColumns()).
			AddRow("run00001", "ines", int64(42), "victory", 8, 24, 31200, 55, []byte(`{}`), now).
			AddRow("run00002", "ines", int64(7), "defeat", 3, 6, 900, 2, []byte(`{}`), now.Add(-time.Hour)))

	req := httptest.NewRequest("GET", "/auth/runs", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "run00001")
	assert.Contains(t, w.Body.String(), "run00002")
	assert.Contains(t, w.Body.String(), `"best_hand_score":31200`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRunHistoryNeedsToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, _, db := mockRouter(t)
	r.GET("/auth/runs", controllers.GetRunHistory(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/auth/runs", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetRunRecordIncludesFinalState(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, mock, db := mockRouter(t)
	r.GET("/auth/runs/:id", controllers.GetRunRecord(db))

	token := loginToken(t, "ines@example.com")

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email =`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"email", "profile_username"}).
			AddRow("ines@example.com", "ines"))
	mock.ExpectQuery(`SELECT \* FROM "run_records" WHERE id = .+ AND username =`).
		WillReturnRows(sqlmock.NewRows(runRecordColumns()).
			AddRow("run00001", "ines", int64(42), "victory", 8, 24, 31200, 55,
				[]byte(`{"phase":"victory","ante":8}`), time.Now()))

	req := httptest.NewRequest("GET", "/auth/runs/run00001", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"phase":"victory"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRunRecordHidesOtherPlayersRuns(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, mock, db := mockRouter(t)
	r.GET("/auth/runs/:id", controllers.GetRunRecord(db))

	token := loginToken(t, "ines@example.com")

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email =`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"email", "profile_username"}).
			AddRow("ines@example.com", "ines"))
	// The record exists but belongs to someone else, the query returns nothing
	mock.ExpectQuery(`SELECT \* FROM "run_records" WHERE id = .+ AND username =`).
		WillReturnRows(sqlmock.NewRows(runRecordColumns()))

	req := httptest.NewRequest("GET", "/auth/runs/run99999", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLeaderboard(t *testing.T) {
	r, mock, db := mockRouter(t)
	r.GET("/leaderboard", controllers.GetLeaderboard(db))

	// One row per player, aggregated over all of their archived runs
	mock.ExpectQuery(`SELECT username, MAX\(best_hand_score\) AS best_hand_score, .+ FROM "run_records" GROUP BY .+ ORDER BY best_hand_score DESC`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"username", "best_hand_score", "best_ante", "runs", "victories"}).
			AddRow("marco", 50000, 8, 12, 2).
			AddRow("ines", 31200, 8, 5, 1))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/leaderboard", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "marco")
	assert.Contains(t, w.Body.String(), `"best_hand_score":50000`)
	assert.Contains(t, w.Body.String(), `"victories":2`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLeaderboardValidatesLimit(t *testing.T) {
	r, _, db := mockRouter(t)
	r.GET("/leaderboard", controllers.GetLeaderboard(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/leaderboard?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/leaderboard?limit=-2", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
