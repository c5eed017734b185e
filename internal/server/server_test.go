package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/medal"
	"github.com/abhisek/hanjaolympics/internal/shuffle"
	"github.com/abhisek/hanjaolympics/internal/store"
)

type fakeBoards struct {
	gotGame  string
	gotGrade hanja.Grade
	gotLimit int
	rows     []store.LeaderboardEntry
	err      error
}

func (f *fakeBoards) Leaderboard(_ context.Context, gameID string, grade hanja.Grade) ([]store.LeaderboardEntry, error) {
	f.gotGame, f.gotGrade = gameID, grade
	return f.rows, f.err
}

func (f *fakeBoards) TopScores(_ context.Context, gameID string, limit int) ([]store.LeaderboardEntry, error) {
	f.gotGame, f.gotLimit = gameID, limit
	return f.rows, f.err
}

func setupServer(t *testing.T, boards *fakeBoards) (*Handler, http.Handler) {
	t.Helper()
	h := NewHandler(boards, zap.NewNop())
	return h, NewRouter(h, zap.NewNop(), 1000)
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	_, router := setupServer(t, &fakeBoards{})
	w := get(t, router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGames(t *testing.T) {
	_, router := setupServer(t, &fakeBoards{})
	w := get(t, router, "/api/games")
	require.Equal(t, http.StatusOK, w.Code)

	var games []gameJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &games))
	assert.Len(t, games, len(game.Catalog()))
	assert.Equal(t, "archery", games[0].ID)
	assert.False(t, games[len(games)-1].Ranked)
}

func TestGrades(t *testing.T) {
	_, router := setupServer(t, &fakeBoards{})
	w := get(t, router, "/api/grades")
	require.Equal(t, http.StatusOK, w.Code)

	var grades []gradeJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grades))
	require.Len(t, grades, len(hanja.GradeHierarchy()))
	assert.Equal(t, "8급", grades[0].Grade)
	assert.Equal(t, len(hanja.ForGrade(hanja.Grade8)), grades[0].Pool)
	assert.Equal(t, len(hanja.All()), grades[len(grades)-1].Pool)
}

func TestLeaderboard(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		boards     *fakeBoards
		wantStatus int
		wantGame   string
		wantGrade  hanja.Grade
	}{
		{
			name: "game board with grade",
			path: "/api/leaderboard/archery?grade=6%EA%B8%89",
			boards: &fakeBoards{rows: []store.LeaderboardEntry{
				{Rank: 1, Username: "서연", Score: 9, Medal: medal.Gold},
			}},
			wantStatus: http.StatusOK,
			wantGame:   "archery",
			wantGrade:  hanja.Grade6,
		},
		{
			name:       "total board",
			path:       "/api/leaderboard/total",
			boards:     &fakeBoards{},
			wantStatus: http.StatusOK,
			wantGame:   "total",
		},
		{
			name:       "unknown game",
			path:       "/api/leaderboard/curling",
			boards:     &fakeBoards{},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown grade",
			path:       "/api/leaderboard/archery?grade=10%EA%B8%89",
			boards:     &fakeBoards{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "store error",
			path:       "/api/leaderboard/archery",
			boards:     &fakeBoards{err: errors.New("database is locked")},
			wantStatus: http.StatusInternalServerError,
			wantGame:   "archery",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := setupServer(t, tt.boards)
			w := get(t, router, tt.path)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantGame, tt.boards.gotGame)
			assert.Equal(t, tt.wantGrade, tt.boards.gotGrade)
			if tt.wantStatus == http.StatusOK {
				var rows []entryJSON
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
				assert.Len(t, rows, len(tt.boards.rows))
			}
		})
	}
}

func TestTop(t *testing.T) {
	boards := &fakeBoards{}
	_, router := setupServer(t, boards)

	w := get(t, router, "/api/top/gymnastics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, store.DefaultTopLimit, boards.gotLimit)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = get(t, router, "/api/top/gymnastics?limit=3")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, boards.gotLimit)

	w = get(t, router, "/api/top/gymnastics?limit=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDaily(t *testing.T) {
	h, router := setupServer(t, &fakeBoards{})
	day := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	h.today = func() time.Time { return day }

	w := get(t, router, "/api/daily")
	require.Equal(t, http.StatusOK, w.Code)

	var got dailyJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "2026-03-05", got.Date)
	assert.Equal(t, int64(20260305), got.Seed)
	assert.Equal(t, "8급", got.Grade)

	want := game.SharedQuestions(hanja.ForGrade(hanja.Grade8), shuffle.DateSeed(day), 10)
	require.Len(t, got.Symbols, len(want))
	for i := range want {
		assert.Equal(t, want[i].Symbol, got.Symbols[i])
	}
}

func TestRateLimit(t *testing.T) {
	h := NewHandler(&fakeBoards{}, zap.NewNop())
	router := NewRouter(h, zap.NewNop(), 2)

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, get(t, router, "/health").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, get(t, router, "/health").Code)
}
