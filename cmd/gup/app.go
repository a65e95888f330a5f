package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sonnes/gupshup/anonymize"
	"github.com/sonnes/gupshup/core"
	"github.com/sonnes/gupshup/reader/telegram"
	"github.com/sonnes/gupshup/render"
	htmlrender "github.com/sonnes/gupshup/render/html"
	jsonrender "github.com/sonnes/gupshup/render/json"
	"github.com/sonnes/gupshup/render/markdown"
	"github.com/sonnes/gupshup/render/terminal"
	"github.com/sonnes/gupshup/tokenize"
	"github.com/urfave/cli/v3"
)

// app holds the report renderer registry used by CLI commands.
type app struct {
	renderers map[string]func() render.Renderer
}

func newApp() *app {
	return &app{
		renderers: map[string]func() render.Renderer{
			"terminal": func() render.Renderer { return terminal.New() },
			"markdown": func() render.Renderer { return markdown.New() },
			"html":     func() render.Renderer { return htmlrender.New() },
			"json":     func() render.Renderer { return jsonrender.New() },
		},
	}
}

func (a *app) renderer(name string) (render.Renderer, error) {
	fn, ok := a.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(), nil
}

// loadChat reads the --chat_json export and applies transformers selected
// by flags.
func loadChat(cmd *cli.Command) (*core.Chat, error) {
	r := &telegram.Reader{}
	chat, err := r.ReadFile(cmd.String("chat_json"))
	if err != nil {
		return nil, err
	}
	if cmd.Bool("anonymize") {
		if err := core.Chain(chat, anonymize.New(anonymize.Config{})); err != nil {
			return nil, fmt.Errorf("anonymize: %w", err)
		}
	}
	return chat, nil
}

// newTokenizer builds the tokenizer, loading extra stopwords when
// --stopwords is set.
func newTokenizer(cmd *cli.Command) (*tokenize.Tokenizer, error) {
	tok := tokenize.New()
	if path := cmd.String("stopwords"); path != "" {
		if err := tok.LoadStopwords(path); err != nil {
			return nil, err
		}
	}
	return tok, nil
}

// writeFile renders into path, removing the partial file on error so a
// failed run leaves no half-written output behind.
func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	if err := fn(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// Flags shared by commands.

func chatJSONFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "chat_json",
		Usage:    "Path to the exported chat JSON file",
		Required: true,
	}
}

func topNFlag(usage string, value int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:  "top_n",
		Usage: usage,
		Value: value,
	}
}

func stopwordsFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "stopwords",
		Usage: "Path to an extra stopword file, one word per line",
	}
}

func anonymizeFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "anonymize",
		Usage: "Replace participant names with stable aliases",
	}
}
