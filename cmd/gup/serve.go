package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sonnes/gupshup/core"
	htmlrender "github.com/sonnes/gupshup/render/html"
	"github.com/sonnes/gupshup/render/network"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the report and reply graph for browsing in a local web UI",
		Flags: []cli.Flag{
			chatJSONFlag(),
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
				Value: 8080,
			},
			stopwordsFlag(),
			topNFlag("Ranking size in the report and graph", 10),
			anonymizeFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
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

			reportRenderer := htmlrender.New()
			reportRenderer.GraphHref = "/graph"
			graphRenderer := &network.Renderer{Title: core.CleanName(chat.Name)}

			mux := http.NewServeMux()

			mux.HandleFunc("GET /", func(w http.ResponseWriter, req *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				if err := reportRenderer.Render(w, rep); err != nil {
					slog.Error("render report", "error", err)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			})

			mux.HandleFunc("GET /graph", func(w http.ResponseWriter, req *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				if err := graphRenderer.Render(w, graph); err != nil {
					slog.Error("render graph", "error", err)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			})

			addr := fmt.Sprintf(":%d", cmd.Int("port"))
			slog.Info("serving", "addr", "http://localhost"+addr, "messages", len(chat.Messages))
			return http.ListenAndServe(addr, mux)
		},
	}
}
