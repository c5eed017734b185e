package session

import "github.com/abhisek/hanjaolympics/internal/hanja"

// Recorder persists what happens in a session. Implementations must not
// block the caller; the session drives them from the UI loop.
type Recorder interface {
	RecordAnswer(gameID, symbol string, correct bool)
	RecordResult(res Result)
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) RecordAnswer(string, string, bool) {}
func (NopRecorder) RecordResult(Result) {}

// Profile supplies the learner's grade.
type Profile interface {
	Grade() hanja.Grade
}

// FixedGrade is a Profile that always reports the same grade.
type FixedGrade hanja.Grade

func (g FixedGrade) Grade() hanja.Grade { return hanja.Grade(g) }

// gradeOf returns the profile's grade, 8급 when unset.
func gradeOf(p Profile) hanja.Grade {
	if p == nil {
		return hanja.DefaultGrade
	}
	return hanja.LabelOrDefault(p.Grade())
}
