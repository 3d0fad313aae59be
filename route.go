package main // import "github.com/calebowens/CorneliusCodes"

import (
	"fmt"
	"io"
	"sort"

	"github.com/nickdavies/go-astar/astar"
)

// Route is a path from my head to one piece of food.
type Route struct {
	ID         int
	From       Coord
	To         Coord
	Steps      Movements
	StepCount  int
	Unresolved bool
}

type Routes []*Route

func (p Routes) Len() int           { return len(p) }
func (p Routes) Less(i, j int) bool { return p[i].StepCount < p[j].StepCount }
func (p Routes) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// FoodRoute heads for the closest reachable food. It only plans this
// turn's step; opponents are treated as standing still. It runs after the
// safe tier has given up, so a first step next to a longer head is taken.
type FoodRoute struct {
	// Log receives one line per resolved route when set.
	Log io.Writer
}

func (f *FoodRoute) Name() string { return "food-route" }

func (f *FoodRoute) Propose(r *Request) (Direction, bool) {
	routes := f.Routes(r)
	for _, route := range routes {
		if route.Unresolved || len(route.Steps) == 0 {
			continue
		}
		step := route.Steps[0]
		if !r.Board.Outside(step.Target) && !r.Board.Occupied(step.Target) {
			return step.Direction, true
		}
	}
	return 0, false
}

// Routes resolves one route per food, closest food first, and sorts the
// resolved ones by length.
func (f *FoodRoute) Routes(r *Request) Routes {
	head := r.You.Head
	food := make(Movements, 0, len(r.Board.Food))
	for _, c := range r.Board.Food {
		if r.Board.Outside(c) {
			continue
		}
		food = append(food, &Movement{Target: c, Magnitude: head.Distance(c)})
	}
	sort.Stable(food)

	routes := make(Routes, 0, len(food))
	for i, m := range food {
		route := &Route{ID: i, From: head, To: m.Target}
		route.Resolve(&r.Board)
		if f.Log != nil {
			route.Print(f.Log)
		}
		routes = append(routes, route)
	}
	sort.Stable(routes)
	return routes
}

// Resolve searches the board for a path with every snake cell blocked.
func (rt *Route) Resolve(b *Board) {
	rt.Steps = Movements{}
	rt.StepCount = 0
	rt.Unresolved = true
	if b.Outside(rt.From) || b.Outside(rt.To) || rt.From == rt.To {
		return
	}

	grid := astar.NewAStar(b.Height, b.Width)
	for i := range b.Snakes {
		snake := &b.Snakes[i]
		for _, c := range append([]Coord{snake.Head}, snake.Body...) {
			if c == rt.From || b.Outside(c) {
				continue
			}
			grid.FillTile(toAstar(c), -1)
		}
	}
	path := grid.FindPath(astar.NewPointToPoint(),
		[]astar.Point{toAstar(rt.From)},
		[]astar.Point{toAstar(rt.To)})

	cells := []Coord{}
	for p := path; p != nil; p = p.Parent {
		cells = append(cells, fromAstar(p.Point))
	}
	if len(cells) < 2 {
		return
	}
	if cells[0] != rt.From {
		for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
			cells[i], cells[j] = cells[j], cells[i]
		}
	}
	if cells[0] != rt.From || cells[len(cells)-1] != rt.To {
		return
	}

	prev := rt.From
	for _, c := range cells[1:] {
		d, ok := directionBetween(prev, c)
		if !ok {
			rt.Steps = Movements{}
			rt.StepCount = 0
			return
		}
		rt.Steps = append(rt.Steps, &Movement{Direction: d, Target: c, Magnitude: c.Distance(rt.To)})
		rt.StepCount++
		prev = c
	}
	rt.Unresolved = false
}

func (rt *Route) Print(w io.Writer) {
	if rt.Unresolved {
		fmt.Fprintf(w, "%d. food %v: distance: %f, unresolved\n",
			rt.ID, rt.To, rt.From.Distance(rt.To))
		return
	}
	fmt.Fprintf(w, "%d. food %v: distance: %f, step count: %d, step: %s%v\n",
		rt.ID, rt.To, rt.From.Distance(rt.To), rt.StepCount,
		rt.Steps[0].Direction, rt.Steps[0].Target)
}

func directionBetween(from, to Coord) (Direction, bool) {
	for _, d := range Directions {
		if from.Step(d) == to {
			return d, true
		}
	}
	return 0, false
}

// go-astar addresses cells by row and column; rows are y.
func toAstar(c Coord) astar.Point {
	return astar.Point{Row: c.Y, Col: c.X}
}

func fromAstar(p astar.Point) Coord {
	return Coord{X: p.Col, Y: p.Row}
}
