package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yhlin/n8n-consultant/internal/consult"
	"github.com/yhlin/n8n-consultant/internal/history"
	"github.com/yhlin/n8n-consultant/internal/industries"
	"github.com/yhlin/n8n-consultant/internal/serve"
)

func main() {
	app := &cli.App{
		Name:  "n8n-consultant",
		Usage: "AI adoption consultant: turn a business pain point into an n8n automation roadmap",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to YAML config file (missing file uses defaults)",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "consult",
				Usage:  "Run a consultation (interactive unless --pain is given)",
				Action: consult.ConsultAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "industry",
						Usage: "industry name, e.g. 零售",
					},
					&cli.StringFlag{
						Name:  "department",
						Usage: "department within the industry, empty means all departments",
					},
					&cli.StringFlag{
						Name:  "pain",
						Usage: "pain point description; skips the interactive prompts",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "text",
						Usage: "output format: text, json or yaml",
					},
					&cli.BoolFlag{
						Name:  "community",
						Usage: "augment the roadmap with public n8n templates",
					},
					&cli.BoolFlag{
						Name:  "export",
						Usage: "also write the roadmap to roadmap_<industry>_<timestamp>.json",
					},
					&cli.BoolFlag{
						Name:  "no-save",
						Usage: "skip recording this consultation in the history database",
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Start the JSON HTTP API",
				Action: serve.ServeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen address, overrides the config file",
					},
				},
			},
			{
				Name:   "industries",
				Usage:  "List supported industries and departments",
				Action: industries.ListAction,
			},
			{
				Name:  "history",
				Usage: "Browse past consultations",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List recent consultations",
						Action: history.ListAction,
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "maximum rows to show",
							},
						},
					},
					{
						Name:      "show",
						Usage:     "Replay the full report of one consultation",
						ArgsUsage: "<id>",
						Action:    history.ShowAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
