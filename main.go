package main // import "github.com/calebowens/CorneliusCodes"

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type config struct {
	listen    string
	seed      int64
	heuristic string
	logLevel  string
	logFormat string
	debug     bool
	move      bool
}

func parseFlags(args []string) (*config, error) {
	listen := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		listen = ":" + port
	}

	cfg := &config{}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.StringVar(&cfg.listen, "listen", listen, "HTTP listen address")
	fs.Int64Var(&cfg.seed, "seed", 0, "Random seed for move selection (0 uses the clock)")
	fs.StringVar(&cfg.heuristic, "heuristic", "left", "Fallback heuristic when no move is safe: left or food")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.logFormat, "log-format", "logfmt", "Log format: logfmt or json")
	fs.BoolVar(&cfg.debug, "debug", false, "Render the board into the log on every move")
	fs.BoolVar(&cfg.move, "move", false, "Read one move request from stdin and print the answer")
	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func heuristicFor(name string, logger log.Logger) (Strategy, error) {
	switch name {
	case "left":
		return &Fixed{Direction: Left}, nil
	case "food":
		return &FoodRoute{Log: lineWriter{logger: logger, key: "route"}}, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	logger, err := NewLogger(stderr, cfg.logFormat, cfg.logLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	heuristic, err := heuristicFor(cfg.heuristic, logger)
	if err != nil {
		return fmt.Errorf("heuristic: %w", err)
	}
	server := &Server{
		Selector: NewSelector(NewLockedRand(cfg.seed), heuristic, logger),
		Logger:   logger,
		Debug:    cfg.debug,
	}

	if cfg.move {
		var req Request
		if err := json.NewDecoder(stdin).Decode(&req); err != nil {
			return fmt.Errorf("decode request: %w", err)
		}
		fmt.Fprintln(stdout, server.decide(&req))
		return nil
	}

	gin.SetMode(gin.ReleaseMode)
	_ = level.Info(logger).Log("msg", "listening", "addr", cfg.listen, "heuristic", cfg.heuristic, "seed", cfg.seed)
	return server.Router().Run(cfg.listen)
}

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
