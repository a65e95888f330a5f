package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/sonnes/gupshup/core"
	"github.com/sonnes/gupshup/render/chart"
	"github.com/sonnes/gupshup/render/wordcloud"
	"github.com/urfave/cli/v3"
)

func statsCmd() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Generate a word cloud and top-users chart from a chat export",
		Flags: []cli.Flag{
			chatJSONFlag(),
			&cli.StringFlag{
				Name:  "output_dir",
				Usage: "Directory for the generated images",
				Value: ".",
			},
			&cli.StringFlag{
				Name:  "font",
				Usage: "Path to a TTF font for the word cloud (default: embedded Liberation Sans)",
			},
			&cli.StringFlag{
				Name:  "mask",
				Usage: "Path to a mask image shaping the word cloud",
			},
			stopwordsFlag(),
			topNFlag("Number of users in the top-users chart", 10),
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

			log.Info("aggregating chat statistics", "messages", len(chat.Messages))
			stats := core.Aggregate(chat, tok)

			// Render everything in memory first; files are written only
			// once every render has succeeded, so a failed run leaves no
			// output behind.
			top := stats.TopAnswerers(int(cmd.Int("top_n")))
			bc := &chart.Renderer{
				Title:  "Top users by answers",
				YLabel: "answers",
			}
			log.Info("generating top users chart", "users", len(top))
			var chartBuf bytes.Buffer
			if err := bc.Render(&chartBuf, top); err != nil {
				return err
			}

			wc := &wordcloud.Renderer{
				FontPath: cmd.String("font"),
				MaskPath: cmd.String("mask"),
			}
			log.Info("generating word cloud", "words", len(stats.Words))
			var cloudBuf bytes.Buffer
			if err := wc.Render(&cloudBuf, stats.Words); err != nil {
				return err
			}

			outDir := cmd.String("output_dir")
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			outputs := []struct {
				name string
				data []byte
			}{
				{"word_cloud.png", cloudBuf.Bytes()},
				{"top_users.png", chartBuf.Bytes()},
			}
			var written []string
			for _, o := range outputs {
				path := filepath.Join(outDir, o.name)
				if err := os.WriteFile(path, o.data, 0o644); err != nil {
					for _, p := range written {
						os.Remove(p)
					}
					return fmt.Errorf("write %s: %w", o.name, err)
				}
				written = append(written, path)
				log.Info("saved output", "path", path)
			}

			return nil
		},
	}
}
