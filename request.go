package main // import "github.com/calebowens/CorneliusCodes"

import (
	"github.com/go-kit/log"
)

// Request is the body the engine posts to /start, /move and /end. It is
// decoded fresh for every callback and discarded afterwards.
type Request struct {
	Game  Game  `json:"game"`
	Turn  int   `json:"turn"`
	Board Board `json:"board"`
	You   Snake `json:"you"`
}

type Game struct {
	ID      string  `json:"id" binding:"required"`
	Ruleset Ruleset `json:"ruleset"`
	Map     string  `json:"map"`
	Timeout int     `json:"timeout"`
	Source  string  `json:"source"`
}

type Ruleset struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Logger decorates base with the keys used to correlate one game's lines.
func (r *Request) Logger(base log.Logger) log.Logger {
	return log.With(base, "game_id", r.Game.ID, "turn", r.Turn, "snake", r.You.Name)
}

// Result is how the game ended from our point of view.
func (r *Request) Result() string {
	switch {
	case r.Board.Snake(r.You.ID) != nil:
		return "won"
	case len(r.Board.Snakes) == 0:
		return "draw"
	default:
		return "lost"
	}
}
