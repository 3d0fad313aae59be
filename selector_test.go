package main // import "github.com/calebowens/CorneliusCodes"

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorPrimary(t *testing.T) {
	s := NewSelector(stubRand(0), &Fixed{Direction: Left}, nil)
	assert.Equal(t, Right, s.Move(onlyRight()))
}

func TestSelectorFallsToHeuristic(t *testing.T) {
	s := NewSelector(stubRand(0), &Fixed{Direction: Left}, nil)
	assert.Equal(t, Left, s.Move(boxedIn()))

	s = NewSelector(stubRand(0), &Fixed{Direction: Up}, nil)
	assert.Equal(t, Up, s.Move(boxedIn()))
}

func TestSelectorFallsToDefault(t *testing.T) {
	s := NewSelector(stubRand(0), declining{}, nil)
	assert.Equal(t, DefaultMove, s.Move(boxedIn()))

	s = &Selector{Default: Down}
	assert.Equal(t, Down, s.Move(open()))
}

func TestSelectorNilHeuristic(t *testing.T) {
	s := NewSelector(stubRand(0), nil, nil)
	assert.Equal(t, DefaultMove, s.Move(boxedIn()))

	s = &Selector{
		Strategies: []Strategy{nil, &Fixed{Direction: Up}},
		Default:    Left,
	}
	assert.Equal(t, Up, s.Move(boxedIn()))
}

func TestSelectorStrategyOrder(t *testing.T) {
	s := &Selector{
		Strategies: []Strategy{declining{}, &Fixed{Direction: Down}, &Fixed{Direction: Up}},
		Default:    Left,
	}
	assert.Equal(t, Down, s.Move(open()))
}

func TestSelectorLogsTier(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "logfmt", "debug")
	require.NoError(t, err)

	s := NewSelector(stubRand(0), &Fixed{Direction: Left}, logger)
	s.Move(boxedIn())

	out := buf.String()
	assert.Contains(t, out, `msg="strategy declined" strategy=safe-random tier=0`)
	assert.Contains(t, out, `msg="strategy chose" strategy=fixed-left tier=1`)
	assert.Contains(t, out, "game_id=game-1")
}
