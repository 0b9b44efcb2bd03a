package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/readscore/internal/score"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "readscore",
		Usage: "compute readability scores for text, HTML files, and URLs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "readscore.yaml",
				Usage: "path to YAML config file",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "path to the SQLite database (default: next to the binary)",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "score",
				Usage:     "score one or more inputs (file paths, URLs, or - for stdin)",
				ArgsUsage: "[inputs...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format: json or yaml",
					},
					&cli.BoolFlag{
						Name:  "no-cache",
						Usage: "skip the content-hash report cache",
					},
					&cli.BoolFlag{
						Name:  "no-db",
						Usage: "skip score persistence",
					},
					&cli.BoolFlag{
						Name:  "lang-check",
						Usage: "detect document language and warn when not English",
					},
				},
				Action: score.ScoreAction,
			},
			{
				Name:      "batch",
				Usage:     "score many inputs concurrently and record the run",
				ArgsUsage: "inputs...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "workers",
						Usage: "number of concurrent scoring workers",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format: json or yaml",
					},
					&cli.BoolFlag{
						Name:  "no-cache",
						Usage: "skip the content-hash report cache",
					},
					&cli.BoolFlag{
						Name:  "no-db",
						Usage: "skip score persistence",
					},
					&cli.BoolFlag{
						Name:  "lang-check",
						Usage: "detect document language and warn when not English",
					},
				},
				Action: score.BatchAction,
			},
			{
				Name:  "history",
				Usage: "list recently scored documents from the database",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of rows to list",
					},
				},
				Action: score.HistoryAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
