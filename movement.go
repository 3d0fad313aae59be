package main // import "github.com/calebowens/CorneliusCodes"

import (
	"encoding/json"
	"fmt"
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions is the order candidate moves are enumerated in.
var Directions = []Direction{Up, Down, Left, Right}

var (
	directionTokens = map[Direction]string{
		Up:    "up",
		Down:  "down",
		Left:  "left",
		Right: "right",
	}
	directionDeltas = map[Direction]Coord{
		Up:    {X: 0, Y: 1},
		Down:  {X: 0, Y: -1},
		Left:  {X: -1, Y: 0},
		Right: {X: 1, Y: 0},
	}
)

func (d Direction) String() string {
	if s, ok := directionTokens[d]; ok {
		return s
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) Delta() Coord {
	return directionDeltas[d]
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func ParseDirection(s string) (Direction, error) {
	for d, token := range directionTokens {
		if token == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Direction) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Movement is a candidate step ranked by Magnitude, the remaining distance
// to whatever the step is aimed at.
type Movement struct {
	Direction Direction
	Magnitude float64
	Target    Coord
}

type Movements []*Movement

func (p Movements) Len() int           { return len(p) }
func (p Movements) Less(i, j int) bool { return p[i].Magnitude < p[j].Magnitude }
func (p Movements) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }
