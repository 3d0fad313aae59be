package main // import "github.com/calebowens/CorneliusCodes"

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultMove is answered when no strategy has anything to offer.
const DefaultMove = Left

// Selector asks each strategy in turn and keeps the first answer.
type Selector struct {
	Strategies []Strategy
	Default    Direction
	Logger     log.Logger
}

// NewSelector builds the usual chain: a random safe move, then heuristic.
// A nil heuristic falls back to Fixed{DefaultMove}.
func NewSelector(rnd Rand, heuristic Strategy, logger log.Logger) *Selector {
	if heuristic == nil {
		heuristic = &Fixed{Direction: DefaultMove}
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Selector{
		Strategies: []Strategy{&SafeRandom{Rand: rnd}, heuristic},
		Default:    DefaultMove,
		Logger:     logger,
	}
}

func (s *Selector) Move(r *Request) Direction {
	logger := s.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	logger = r.Logger(logger)
	for tier, strategy := range s.Strategies {
		if strategy == nil {
			continue
		}
		d, ok := strategy.Propose(r)
		if !ok {
			_ = level.Debug(logger).Log("msg", "strategy declined", "strategy", strategy.Name(), "tier", tier)
			continue
		}
		_ = level.Debug(logger).Log("msg", "strategy chose", "strategy", strategy.Name(), "tier", tier, "move", d)
		return d
	}
	_ = level.Debug(logger).Log("msg", "falling back to default", "move", s.Default)
	return s.Default
}
