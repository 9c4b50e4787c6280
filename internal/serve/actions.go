package serve

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yhlin/n8n-consultant/internal/consult"
	"github.com/yhlin/n8n-consultant/models"
)

func ServeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	pipeline, err := consult.NewPipeline(cfg)
	if err != nil {
		return err
	}

	addr := c.String("listen")
	if addr == "" {
		addr = cfg.Listen
	}

	return NewServer(pipeline, logger).ListenAndServe(addr)
}
