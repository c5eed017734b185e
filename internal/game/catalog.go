package game

import (
	"errors"
	"fmt"
)

// ID identifies a mini-game.
type ID string

const (
	Archery       ID = "archery"
	Swimming      ID = "swimming"
	Weightlifting ID = "weightlifting"
	Gymnastics    ID = "gymnastics"
	Marathon      ID = "marathon"
	Antonym       ID = "antonym"
	Idiom         ID = "idiom"
	Homonym       ID = "homonym"
	Daily         ID = "daily"
)

// TotalBoard is the leaderboard id for composite rankings across games.
const TotalBoard = "total"

// ErrUnknownGame is returned when a game id is not in the catalog.
var ErrUnknownGame = errors.New("unknown game")

// Info describes a game for menus and listings.
type Info struct {
	ID          ID
	Name        string
	Icon        string
	Description string
	Multiplayer bool
}

var catalog = []Info{
	{ID: Archery, Name: "양궁", Icon: "🏹", Description: "한자 뜻 맞추기"},
	{ID: Swimming, Name: "수영", Icon: "🏊", Description: "60초 스피드 퀴즈", Multiplayer: true},
	{ID: Weightlifting, Name: "역도", Icon: "🏋️", Description: "연속 정답 도전"},
	{ID: Gymnastics, Name: "카드 뒤집기", Icon: "🃏", Description: "카드 매칭 게임"},
	{ID: Marathon, Name: "마라톤", Icon: "🏃", Description: "장애물 달리기"},
	{ID: Antonym, Name: "반의어", Icon: "🔄", Description: "반대말 매칭", Multiplayer: true},
	{ID: Idiom, Name: "사자성어", Icon: "📜", Description: "사자성어 퀴즈", Multiplayer: true},
	{ID: Homonym, Name: "동음이의", Icon: "🔤", Description: "같은 소리 다른 뜻", Multiplayer: true},
	{ID: Daily, Name: "일일 도전", Icon: "📅", Description: "오늘의 10문제"},
}

// Catalog returns every game, the daily challenge last.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Ranked returns the eight games that appear on leaderboards.
func Ranked() []Info {
	var out []Info
	for _, g := range catalog {
		if g.ID != Daily {
			out = append(out, g)
		}
	}
	return out
}

// Lookup finds a game by id.
func Lookup(id string) (Info, error) {
	for _, g := range catalog {
		if string(g.ID) == id {
			return g, nil
		}
	}
	return Info{}, fmt.Errorf("%w: %q", ErrUnknownGame, id)
}

// Title renders the icon and name.
func (i Info) Title() string {
	return i.Icon + " " + i.Name
}
