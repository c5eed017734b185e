package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abhisek/hanjaolympics/internal/game"
	"github.com/abhisek/hanjaolympics/internal/hanja"
	"github.com/abhisek/hanjaolympics/internal/shuffle"
	"github.com/abhisek/hanjaolympics/internal/store"
)

// Boards is the read side of the store the API serves.
type Boards interface {
	Leaderboard(ctx context.Context, gameID string, grade hanja.Grade) ([]store.LeaderboardEntry, error)
	TopScores(ctx context.Context, gameID string, limit int) ([]store.LeaderboardEntry, error)
}

// Handler serves the read-only leaderboard API.
type Handler struct {
	boards Boards
	logger *zap.Logger
	today  func() time.Time
}

// NewHandler creates a handler over boards.
func NewHandler(boards Boards, logger *zap.Logger) *Handler {
	return &Handler{boards: boards, logger: logger, today: time.Now}
}

// RegisterRoutes registers the API routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/games", h.Games)
		r.Get("/grades", h.Grades)
		r.Get("/leaderboard/{gameID}", h.Leaderboard)
		r.Get("/top/{gameID}", h.Top)
		r.Get("/daily", h.Daily)
	})
}

type gameJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Multiplayer bool   `json:"multiplayer"`
	Ranked      bool   `json:"ranked"`
}

type gradeJSON struct {
	Grade string `json:"grade"`
	New   int    `json:"new"`
	Pool  int    `json:"pool"`
}

type entryJSON struct {
	Rank      int            `json:"rank"`
	Username  string         `json:"username"`
	Icon      string         `json:"icon"`
	Grade     string         `json:"grade"`
	Score     int            `json:"score"`
	Medal     string         `json:"medal,omitempty"`
	Breakdown map[string]int `json:"breakdown,omitempty"`
}

type dailyJSON struct {
	Date    string   `json:"date"`
	Seed    int64    `json:"seed"`
	Grade   string   `json:"grade"`
	Symbols []string `json:"symbols"`
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Games handles GET /api/games
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	var out []gameJSON
	for _, g := range game.Catalog() {
		out = append(out, gameJSON{
			ID:          string(g.ID),
			Name:        g.Name,
			Icon:        g.Icon,
			Description: g.Description,
			Multiplayer: g.Multiplayer,
			Ranked:      g.ID != game.Daily,
		})
	}
	h.respondJSON(w, http.StatusOK, out)
}

// Grades handles GET /api/grades
func (h *Handler) Grades(w http.ResponseWriter, r *http.Request) {
	counts := hanja.GradeCounts(hanja.All())
	var out []gradeJSON
	pool := 0
	for _, g := range hanja.GradeHierarchy() {
		pool += counts[g]
		out = append(out, gradeJSON{Grade: string(g), New: counts[g], Pool: pool})
	}
	h.respondJSON(w, http.StatusOK, out)
}

// Leaderboard handles GET /api/leaderboard/{gameID}?grade=G
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	gameID, ok := h.boardID(w, r)
	if !ok {
		return
	}
	grade, ok := h.gradeParam(w, r)
	if !ok {
		return
	}

	rows, err := h.boards.Leaderboard(r.Context(), gameID, grade)
	if err != nil {
		h.logger.Error("leaderboard", zap.String("game", gameID), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}
	h.respondJSON(w, http.StatusOK, toEntries(rows))
}

// Top handles GET /api/top/{gameID}?limit=N
func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	gameID, ok := h.boardID(w, r)
	if !ok {
		return
	}

	limit := store.DefaultTopLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			h.respondError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	rows, err := h.boards.TopScores(r.Context(), gameID, limit)
	if err != nil {
		h.logger.Error("top scores", zap.String("game", gameID), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to load top scores")
		return
	}
	h.respondJSON(w, http.StatusOK, toEntries(rows))
}

// Daily handles GET /api/daily?grade=G
func (h *Handler) Daily(w http.ResponseWriter, r *http.Request) {
	grade, ok := h.gradeParam(w, r)
	if !ok {
		return
	}
	grade = hanja.LabelOrDefault(grade)

	today := h.today()
	seed := shuffle.DateSeed(today)
	var symbols []string
	for _, e := range game.SharedQuestions(hanja.ForGrade(grade), seed, 10) {
		symbols = append(symbols, e.Symbol)
	}
	h.respondJSON(w, http.StatusOK, dailyJSON{
		Date:    today.Format(store.DateLayout),
		Seed:    seed,
		Grade:   string(grade),
		Symbols: symbols,
	})
}

// boardID reads {gameID}, accepting ranked games and the composite board.
func (h *Handler) boardID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "gameID")
	if id == game.TotalBoard {
		return id, true
	}
	if _, err := game.Lookup(id); err != nil {
		if errors.Is(err, game.ErrUnknownGame) {
			h.respondError(w, http.StatusNotFound, "unknown game")
			return "", false
		}
		h.respondError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return id, true
}

func (h *Handler) gradeParam(w http.ResponseWriter, r *http.Request) (hanja.Grade, bool) {
	v := r.URL.Query().Get("grade")
	if v == "" {
		return "", true
	}
	g, ok := hanja.ParseGrade(v)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "unknown grade")
		return "", false
	}
	return g, true
}

func toEntries(rows []store.LeaderboardEntry) []entryJSON {
	out := make([]entryJSON, 0, len(rows))
	for _, e := range rows {
		out = append(out, entryJSON{
			Rank:      e.Rank,
			Username:  e.Username,
			Icon:      e.Icon,
			Grade:     string(e.Grade),
			Score:     e.Score,
			Medal:     string(e.Medal),
			Breakdown: e.Breakdown,
		})
	}
	return out
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
