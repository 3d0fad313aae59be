package main // import "github.com/calebowens/CorneliusCodes"

// Snake is one battlesnake as reported for the current turn. Length is the
// engine's reported length and is kept apart from len(Body).
type Snake struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  int     `json:"health"`
	Body    []Coord `json:"body"`
	Head    Coord   `json:"head"`
	Length  int     `json:"length"`
	Latency string  `json:"latency"`
	Shout   string  `json:"shout"`
	Squad   string  `json:"squad"`
}

// Covers reports whether the snake's head or any body segment is on c.
func (s *Snake) Covers(c Coord) bool {
	return s.Head == c || containsCoord(s.Body, c)
}

// Enemy reports whether s is somebody other than me.
func (s *Snake) Enemy(me *Snake) bool {
	return s.ID != me.ID
}

// Outweighs reports whether s would survive or tie a head-to-head with me.
func (s *Snake) Outweighs(me *Snake) bool {
	return s.Length >= me.Length
}
