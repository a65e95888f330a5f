package main

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/sonnes/gupshup/core"
	"github.com/sonnes/gupshup/render/network"
	"github.com/urfave/cli/v3"
)

func graphCmd() *cli.Command {
	return &cli.Command{
		Name:  "graph",
		Usage: "Generate an interactive reply graph from a chat export",
		Flags: []cli.Flag{
			chatJSONFlag(),
			&cli.StringFlag{
				Name:  "output_graph_path",
				Usage: "Path for the generated graph HTML file",
				Value: "graph.html",
			},
			topNFlag("Restrict the graph to the N most active users (0 = all)", 0),
			anonymizeFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			chat, err := loadChat(cmd)
			if err != nil {
				return err
			}

			g := core.BuildGraph(chat, int(cmd.Int("top_n")))
			log.Info("built reply graph", "users", g.NodeCount(), "edges", g.EdgeCount())

			path := cmd.String("output_graph_path")
			r := &network.Renderer{Title: core.CleanName(chat.Name)}
			if err := writeFile(path, func(w io.Writer) error {
				return r.Render(w, g)
			}); err != nil {
				return err
			}
			log.Info("saved reply graph", "path", path)

			return nil
		},
	}
}
