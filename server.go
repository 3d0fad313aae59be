package main // import "github.com/calebowens/CorneliusCodes"

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Info is the personalisation answered on GET /.
type Info struct {
	APIVersion string `json:"apiversion"`
	Author     string `json:"author"`
	Color      string `json:"color"`
	Head       string `json:"head"`
	Tail       string `json:"tail"`
	Version    string `json:"version,omitempty"`
}

type MoveResponse struct {
	Move  Direction `json:"move"`
	Shout string    `json:"shout,omitempty"`
}

var Version = "dev"

func snakeInfo() Info {
	return Info{
		APIVersion: "1",
		Author:     "ChaelCodes",
		Color:      "#F09383",
		Head:       "bendr",
		Tail:       "round-bum",
		Version:    Version,
	}
}

type Server struct {
	Selector *Selector
	Logger   log.Logger
	// Debug renders the board into the log on every move.
	Debug bool
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), accessLog(s.Logger))

	r.GET("/", s.info)
	r.POST("/start", s.start)
	r.POST("/move", s.move)
	r.POST("/end", s.end)
	r.POST("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	return r
}

func (s *Server) bind(c *gin.Context) (*Request, bool) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = level.Warn(s.Logger).Log("msg", "bad request", "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &req, true
}

func (s *Server) info(c *gin.Context) {
	_ = level.Debug(s.Logger).Log("msg", "INFO")
	c.JSON(http.StatusOK, snakeInfo())
}

func (s *Server) start(c *gin.Context) {
	req, ok := s.bind(c)
	if !ok {
		return
	}
	_ = level.Info(req.Logger(s.Logger)).Log("msg", "START",
		"width", req.Board.Width, "height", req.Board.Height,
		"snakes", len(req.Board.Snakes), "ruleset", req.Game.Ruleset.Name)
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) move(c *gin.Context) {
	req, ok := s.bind(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, MoveResponse{Move: s.decide(req)})
}

func (s *Server) end(c *gin.Context) {
	req, ok := s.bind(c)
	if !ok {
		return
	}
	_ = level.Info(req.Logger(s.Logger)).Log("msg", "END", "result", req.Result())
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) decide(req *Request) Direction {
	logger := req.Logger(s.Logger)
	if s.Debug {
		PrintGrid(lineWriter{logger: logger, key: "grid"}, &req.Board, &req.You)
	}
	d := s.Selector.Move(req)
	_ = level.Info(logger).Log("msg", "MOVE", "move", d)
	return d
}
