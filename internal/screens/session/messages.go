package session

import "time"

// timerTickMsg is sent every second while a game runs. id ties it to one
// session so a tick left over from a finished game is ignored.
type timerTickMsg struct {
	id string
	at time.Time
}

// advanceMsg is sent when the feedback display period for question n ends.
type advanceMsg struct {
	id string
	n  int
}

// sessionEndMsg is sent to trigger the results flow.
type sessionEndMsg struct{}
