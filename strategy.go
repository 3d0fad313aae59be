package main // import "github.com/calebowens/CorneliusCodes"

import (
	"math/rand"
	"sync"
)

// Strategy proposes a move for the turn, or reports that it has none.
type Strategy interface {
	Name() string
	Propose(r *Request) (Direction, bool)
}

// Rand is the slice of *rand.Rand the strategies need.
type Rand interface {
	Intn(n int) int
}

type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedRand returns a Rand safe for use from concurrent requests.
func NewLockedRand(seed int64) Rand {
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

// SafeMoves returns the directions whose destination passes Board.Valid.
func SafeMoves(r *Request) []Direction {
	moves := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if r.Board.Valid(r.You.Head.Step(d), &r.You) {
			moves = append(moves, d)
		}
	}
	return moves
}

// SafeRandom picks uniformly among the safe moves.
type SafeRandom struct {
	Rand Rand
}

func (s *SafeRandom) Name() string { return "safe-random" }

func (s *SafeRandom) Propose(r *Request) (Direction, bool) {
	moves := SafeMoves(r)
	if len(moves) == 0 {
		return 0, false
	}
	return moves[s.Rand.Intn(len(moves))], true
}

// Fixed always proposes the same direction. It stands in for a real
// heuristic tier.
type Fixed struct {
	Direction Direction
}

func (f *Fixed) Name() string { return "fixed-" + f.Direction.String() }

func (f *Fixed) Propose(*Request) (Direction, bool) {
	return f.Direction, true
}
