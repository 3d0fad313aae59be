package main // import "github.com/calebowens/CorneliusCodes"

import (
	"fmt"
	"io"
	"strings"
)

type Board struct {
	Height  int     `json:"height"`
	Width   int     `json:"width"`
	Food    []Coord `json:"food"`
	Hazards []Coord `json:"hazards"`
	Snakes  []Snake `json:"snakes"`
}

// Occupied reports whether any snake, including the caller's own, covers
// spot right now. Tails that will move away next turn still count.
func Occupied(spot Coord, snakes []Snake) bool {
	for i := range snakes {
		if snakes[i].Covers(spot) {
			return true
		}
	}
	return false
}

// Threatened reports whether an opponent at least as long as me could move
// its head onto spot next turn.
func Threatened(spot Coord, snakes []Snake, me *Snake) bool {
	for i := range snakes {
		snake := &snakes[i]
		if !snake.Enemy(me) || !snake.Outweighs(me) {
			continue
		}
		if containsCoord(snake.Head.Neighbors(), spot) {
			return true
		}
	}
	return false
}

func (b *Board) Occupied(spot Coord) bool {
	return Occupied(spot, b.Snakes)
}

func (b *Board) Threatened(spot Coord, me *Snake) bool {
	return Threatened(spot, b.Snakes, me)
}

// Valid reports whether moving my head onto spot is considered safe.
//
// The edge checks reject the whole x=0 column and y=0 row, and compare y
// against Width and x against Height. On square boards the transposition
// is invisible; board_test.go pins the non-square behaviour.
func (b *Board) Valid(spot Coord, me *Snake) bool {
	switch {
	case spot.Y == 0, spot.X == 0:
		return false
	case spot.Y == b.Width, spot.X == b.Height:
		return false
	case b.Occupied(spot):
		return false
	case b.Threatened(spot, me):
		return false
	}
	return true
}

// Outside reports whether spot is off the playable grid.
func (b *Board) Outside(spot Coord) bool {
	return spot.X < 0 || spot.X >= b.Width || spot.Y < 0 || spot.Y >= b.Height
}

// Snake looks up a snake by id.
func (b *Board) Snake(id string) *Snake {
	for i := range b.Snakes {
		if b.Snakes[i].ID == id {
			return &b.Snakes[i]
		}
	}
	return nil
}

// PrintGrid renders the board top row first: M/m for me, A/a, B/b... for
// the others (upper case head, m skipped), F food, H hazard, - empty.
func PrintGrid(w io.Writer, b *Board, me *Snake) {
	grid := make([][]byte, b.Height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat("-", b.Width))
	}
	put := func(c Coord, sym byte) {
		if b.Outside(c) {
			return
		}
		grid[c.Y][c.X] = sym
	}
	for _, h := range b.Hazards {
		put(h, 'H')
	}
	for _, f := range b.Food {
		put(f, 'F')
	}
	other := byte('a')
	for i := range b.Snakes {
		snake := &b.Snakes[i]
		sym := other
		if me != nil && !snake.Enemy(me) {
			sym = 'm'
		} else {
			other++
			if other == 'm' {
				other++
			}
		}
		for _, p := range snake.Body {
			put(p, sym)
		}
		put(snake.Head, sym-('a'-'A'))
	}
	for y := b.Height - 1; y >= 0; y-- {
		fmt.Fprintf(w, "%s\n", grid[y])
	}
}
