// Package tracker persists gameplay in the background so the UI loop never
// waits on the database.
package tracker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/hanjaolympics/internal/logger"
	"github.com/abhisek/hanjaolympics/internal/session"
	"github.com/abhisek/hanjaolympics/internal/store"
)

// DefaultQueueSize is the event buffer used when none is configured.
const DefaultQueueSize = 64

// writeTimeout bounds each store call made by the worker.
const writeTimeout = 5 * time.Second

// Sink is the part of the store the tracker writes to.
type Sink interface {
	AppendAnswer(ctx context.Context, rec store.AnswerRecord) error
	SaveScore(ctx context.Context, rec store.ScoreRecord) error
}

type job struct {
	answer *store.AnswerRecord
	score  *store.ScoreRecord
}

// Service implements session.Recorder over a buffered queue drained by one
// worker goroutine. A full queue drops the event with a warning, and store
// errors are logged and discarded.
type Service struct {
	sink    Sink
	userID  string
	pending chan job
	done    chan struct{}
	mu      sync.RWMutex
	closed  bool
	log     *zap.Logger
	now     func() time.Time
}

var _ session.Recorder = (*Service)(nil)

// New starts a tracker writing for userID. queueSize <= 0 uses
// DefaultQueueSize.
func New(sink Sink, userID string, queueSize int) *Service {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	s := &Service{
		sink:    sink,
		userID:  userID,
		pending: make(chan job, queueSize),
		done:    make(chan struct{}),
		log:     logger.Named("tracker"),
		now:     time.Now,
	}
	go s.processLoop()
	return s
}

// RecordAnswer queues one answer event.
func (s *Service) RecordAnswer(gameID, symbol string, correct bool) {
	s.enqueue(job{answer: &store.AnswerRecord{
		UserID:    s.userID,
		GameID:    gameID,
		Symbol:    symbol,
		Correct:   correct,
		CreatedAt: s.now(),
	}})
}

// RecordResult queues a finished game.
func (s *Service) RecordResult(res session.Result) {
	at := res.FinishedAt
	if at.IsZero() {
		at = s.now()
	}
	s.enqueue(job{score: &store.ScoreRecord{
		SessionID:  res.SessionID,
		UserID:     s.userID,
		GameID:     res.GameID,
		Grade:      res.Grade,
		Score:      res.Score,
		Total:      res.Total,
		Medal:      res.Medal,
		Detail:     res.Detail,
		Wrong:      res.Wrong,
		Duration:   res.Duration,
		CreatedAt:  at,
		Incomplete: res.Incomplete,
	}})
}

func (s *Service) enqueue(j job) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		s.log.Warn("tracker closed, dropping event")
		return
	}
	select {
	case s.pending <- j:
	default:
		s.log.Warn("event queue full, dropping event", zap.Int("capacity", cap(s.pending)))
	}
}

func (s *Service) processLoop() {
	defer close(s.done)
	for j := range s.pending {
		s.write(j)
	}
}

func (s *Service) write(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	switch {
	case j.answer != nil:
		if err := s.sink.AppendAnswer(ctx, *j.answer); err != nil {
			s.log.Error("record answer",
				zap.String("game", j.answer.GameID),
				zap.String("symbol", j.answer.Symbol),
				zap.Error(err))
		}
	case j.score != nil:
		if err := s.sink.SaveScore(ctx, *j.score); err != nil {
			s.log.Error("record result",
				zap.String("game", j.score.GameID),
				zap.Int("score", j.score.Score),
				zap.Error(err))
		}
	}
}

// Close stops accepting events, writes what is queued and waits for the
// worker. Safe to call more than once.
func (s *Service) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.pending)
	}
	s.mu.Unlock()
	<-s.done
}
