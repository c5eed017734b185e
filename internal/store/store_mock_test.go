package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockStore creates a store over a mock database.
func setupMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return newWithDB(db), mock
}

func expectSequence(mock sqlmock.Sqlmock, next int64) {
	mock.ExpectQuery(`UPDATE global_sequence`).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(next))
}

func TestSaveScore_Errors(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(sqlmock.Sqlmock)
		wantErr   string
	}{
		{
			name: "sequence error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE global_sequence`).WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: "next sequence",
		},
		{
			name: "begin error",
			setupMock: func(mock sqlmock.Sqlmock) {
				expectSequence(mock, 1)
				mock.ExpectBegin().WillReturnError(errors.New("database is locked"))
			},
			wantErr: "begin",
		},
		{
			name: "insert error",
			setupMock: func(mock sqlmock.Sqlmock) {
				expectSequence(mock, 1)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `scores`").WillReturnError(errors.New("constraint failed"))
				mock.ExpectRollback()
			},
			wantErr: "save score",
		},
		{
			name: "daily upsert error",
			setupMock: func(mock sqlmock.Sqlmock) {
				expectSequence(mock, 1)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `scores`").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO `daily_challenges`").WillReturnError(errors.New("constraint failed"))
				mock.ExpectRollback()
			},
			wantErr: "save daily challenge",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := setupMockStore(t)
			tt.setupMock(mock)

			err := s.SaveScore(context.Background(), ScoreRecord{UserID: "u", GameID: DailyGameID, Score: 3})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSaveScore_Commits(t *testing.T) {
	s, mock := setupMockStore(t)
	expectSequence(mock, 7)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `scores`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := s.SaveScore(context.Background(), ScoreRecord{UserID: "u", GameID: "archery", Score: 9})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendAnswer_StatsError(t *testing.T) {
	s, mock := setupMockStore(t)
	expectSequence(mock, 1)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `answer_log`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `hanja_stats`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.AppendAnswer(context.Background(), AnswerRecord{UserID: "u", GameID: "archery", Symbol: "金"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "update hanja stats")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileByName_QueryError(t *testing.T) {
	s, mock := setupMockStore(t)
	mock.ExpectQuery("SELECT (.+) FROM `profiles`").WillReturnError(errors.New("connection reset"))

	_, err := s.ProfileByName(context.Background(), "서연")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureProfile_InsertError(t *testing.T) {
	s, mock := setupMockStore(t)
	mock.ExpectQuery("SELECT (.+) FROM `profiles`").
		WillReturnRows(sqlmock.NewRows(profileColumns))
	mock.ExpectExec("INSERT INTO `profiles`").WillReturnError(errors.New("readonly database"))

	_, err := s.EnsureProfile(context.Background(), "서연")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create profile")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderboard_QueryError(t *testing.T) {
	s, mock := setupMockStore(t)
	mock.ExpectQuery("SELECT (.+) FROM `scores`").WillReturnError(errors.New("no such table"))

	_, err := s.Leaderboard(context.Background(), "archery", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query leaderboard archery")
}

func TestDailyStreak_BadDate(t *testing.T) {
	s, mock := setupMockStore(t)
	mock.ExpectQuery("SELECT (.+) FROM `daily_challenges`").
		WillReturnRows(sqlmock.NewRows([]string{"date"}).AddRow("yesterday"))

	_, err := s.DailyStreak(context.Background(), "u", timeFixture())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse daily date")
}

func timeFixture() time.Time {
	return time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
}
