package main // import "github.com/calebowens/CorneliusCodes"

import (
	"fmt"

	"github.com/joonazan/vec2"
)

// Coord is a board cell. (0,0) is the bottom-left corner.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the cell one move away in direction d. The result may lie
// off the board; callers decide what that means.
func (c Coord) Step(d Direction) Coord {
	delta := d.Delta()
	return Coord{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// Neighbors returns the four orthogonal cells in Directions order.
func (c Coord) Neighbors() []Coord {
	n := make([]Coord, len(Directions))
	for i, d := range Directions {
		n[i] = c.Step(d)
	}
	return n
}

func (c Coord) Vec() vec2.Vector {
	return vec2.Vector{X: float64(c.X), Y: float64(c.Y)}
}

// Distance is the straight line distance between two cells.
func (c Coord) Distance(to Coord) float64 {
	return c.Vec().Minus(to.Vec()).Length()
}

func containsCoord(coords []Coord, c Coord) bool {
	for _, p := range coords {
		if p == c {
			return true
		}
	}
	return false
}
