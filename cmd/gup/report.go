package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sonnes/gupshup/core"
	"github.com/urfave/cli/v3"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Print a chat statistics report",
		Flags: []cli.Flag{
			chatJSONFlag(),
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: terminal, markdown, html, json",
				Value: "terminal",
			},
			stopwordsFlag(),
			topNFlag("Ranking size in the report", 10),
			anonymizeFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a := newApp()

			rnd, err := a.renderer(cmd.String("o"))
			if err != nil {
				return err
			}

			chat, err := loadChat(cmd)
			if err != nil {
				return err
			}
			tok, err := newTokenizer(cmd)
			if err != nil {
				return err
			}

			topN := int(cmd.Int("top_n"))
			stats := core.Aggregate(chat, tok)
			graph := core.BuildGraph(chat, topN)
			rep := core.NewReport(chat, stats, graph, topN)

			if err := rnd.Render(os.Stdout, rep); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			return nil
		},
	}
}
