// Package wordcloud renders a word-frequency map as a word cloud PNG.
package wordcloud

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/go-fonts/liberation/liberationsansregular"
	"github.com/psykhi/wordclouds"

	"github.com/sonnes/gupshup/core"
)

const (
	defaultSize  = 1200
	defaultWords = 100
	maxFontSize  = 250
	minFontSize  = 12
)

// defaultPalette spans cool blue to warm red, matching the graph renderer's
// color ramp.
var defaultPalette = []color.Color{
	color.RGBA{0x1e, 0x3a, 0x8a, 0xff},
	color.RGBA{0x25, 0x63, 0xeb, 0xff},
	color.RGBA{0x7c, 0x3a, 0xed, 0xff},
	color.RGBA{0xdb, 0x27, 0x77, 0xff},
	color.RGBA{0xdc, 0x26, 0x26, 0xff},
}

// Renderer draws word clouds. All fields have usable defaults; an empty
// FontPath falls back to the bundled Liberation Sans face.
type Renderer struct {
	FontPath string
	// MaskPath points to an optional mask image; words are placed only
	// where the mask differs from white.
	MaskPath string
	Width    int
	Height   int
	// MaxWords caps how many of the most frequent words are drawn.
	MaxWords int
	Colors   []color.Color
}

// Render draws the word cloud and writes it as PNG to w.
func (r *Renderer) Render(w io.Writer, words core.WordCount) error {
	width, height := r.Width, r.Height
	if width == 0 {
		width = defaultSize
	}
	if height == 0 {
		height = defaultSize
	}
	maxWords := r.MaxWords
	if maxWords == 0 {
		maxWords = defaultWords
	}

	counts := make(map[string]int, maxWords)
	for _, p := range words.Top(maxWords) {
		counts[p.Name] = p.Count
	}
	if len(counts) == 0 {
		return fmt.Errorf("word cloud: no words to draw")
	}

	colors := r.Colors
	if len(colors) == 0 {
		colors = defaultPalette
	}

	fontPath := r.FontPath
	if fontPath == "" {
		path, cleanup, err := defaultFontFile()
		if err != nil {
			return fmt.Errorf("word cloud: %w", err)
		}
		defer cleanup()
		fontPath = path
	}

	opts := []wordclouds.Option{
		wordclouds.FontFile(fontPath),
		wordclouds.FontMaxSize(maxFontSize),
		wordclouds.FontMinSize(minFontSize),
		wordclouds.Width(width),
		wordclouds.Height(height),
		wordclouds.BackgroundColor(color.White),
		wordclouds.Colors(colors),
	}
	if r.MaskPath != "" {
		boundaries := wordclouds.Mask(r.MaskPath, width, height,
			color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
		opts = append(opts, wordclouds.MaskBoxes(boundaries))
	}

	img := wordclouds.NewWordcloud(counts, opts...).Draw()
	return png.Encode(w, img)
}

// defaultFontFile materializes the bundled Liberation Sans face to a
// temporary file, since the cloud layout loads fonts by path.
func defaultFontFile() (string, func(), error) {
	f, err := os.CreateTemp("", "wordcloud-*.ttf")
	if err != nil {
		return "", nil, err
	}
	if _, err := f.Write(liberationsansregular.TTF); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", nil, err
	}
	return f.Name(), func() { os.Remove(f.Name()) }, nil
}
