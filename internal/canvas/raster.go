package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/atomicstack/text-style-control/internal/logging"
	"github.com/atomicstack/text-style-control/internal/logging/events"
	"github.com/atomicstack/text-style-control/internal/style"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Padding surrounds the rasterized text on every side.
const Padding = 16

// ErrEmptyPath is returned by SavePNG when no destination is given.
var ErrEmptyPath = errors.New("export path required")

type faceKey struct {
	mono, bold, italic bool
}

type fontBank struct {
	once  sync.Once
	fonts map[faceKey]*opentype.Font
}

var bank fontBank

func (b *fontBank) load() {
	b.once.Do(func() {
		sources := []struct {
			key faceKey
			ttf []byte
		}{
			{faceKey{}, goregular.TTF},
			{faceKey{bold: true}, gobold.TTF},
			{faceKey{italic: true}, goitalic.TTF},
			{faceKey{bold: true, italic: true}, gobolditalic.TTF},
			{faceKey{mono: true}, gomono.TTF},
			{faceKey{mono: true, bold: true}, gomonobold.TTF},
			{faceKey{mono: true, italic: true}, gomonoitalic.TTF},
			{faceKey{mono: true, bold: true, italic: true}, gomonobolditalic.TTF},
		}
		b.fonts = make(map[faceKey]*opentype.Font, len(sources))
		for _, src := range sources {
			f, err := opentype.Parse(src.ttf)
			if err != nil {
				logging.Error(fmt.Errorf("parse builtin font: %w", err))
				continue
			}
			b.fonts[src.key] = f
		}
	})
}

var monoHints = []string{"mono", "courier", "consol", "code", "terminal", "fixed"}

// Monospaced reports whether family should be drawn with the fixed-width
// fallback. Families are not resolved against the system; anything else
// uses the proportional Go fonts.
func Monospaced(family string) bool {
	lower := strings.ToLower(family)
	for _, hint := range monoHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

func faceFor(s style.Snapshot) font.Face {
	bank.load()
	key := faceKey{mono: Monospaced(s.FontFamily), bold: s.Bold, italic: s.Italic}
	base, ok := bank.fonts[key]
	if !ok {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(base, &opentype.FaceOptions{
		Size:    float64(s.FontSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		logging.Error(err)
		return basicfont.Face7x13
	}
	return face
}

// background picks a backdrop that keeps light text readable.
func background(c style.RGB) color.Color {
	if c.Luminance() > 0.85 {
		return color.Black
	}
	return color.White
}

// Rasterize draws the element onto a new image sized to fit the text.
func (c *Canvas) Rasterize() *image.RGBA {
	snap := c.model.Snapshot()
	face := faceFor(snap)
	defer face.Close()

	metrics := face.Metrics()
	advance := int(math.Ceil(float64(metrics.Height.Ceil()) * snap.LineHeight))
	if advance < 1 {
		advance = 1
	}
	lines := strings.Split(snap.Text, "\n")
	widths := make([]int, len(lines))
	maxWidth := 0
	for i, line := range lines {
		widths[i] = font.MeasureString(face, line).Ceil()
		if widths[i] > maxWidth {
			maxWidth = widths[i]
		}
	}
	contentHeight := advance*(len(lines)-1) + metrics.Ascent.Ceil() + metrics.Descent.Ceil()
	bounds := image.Rect(0, 0, maxWidth+2*Padding, contentHeight+2*Padding)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(background(snap.Color)), image.Point{}, draw.Src)

	drawer := font.Drawer{Dst: img, Src: image.NewUniform(snap.Color.ImageColor()), Face: face}
	baseline := Padding + metrics.Ascent.Ceil()
	for i, line := range lines {
		x := Padding
		switch snap.Justification {
		case style.Center:
			x += (maxWidth - widths[i]) / 2
		case style.Right:
			x += maxWidth - widths[i]
		}
		drawer.Dot = fixed.P(x, baseline+i*advance)
		drawer.DrawString(line)
	}
	events.Canvas.Rasterize(c.ID(), bounds.Dx(), bounds.Dy())
	return img
}

// SavePNG rasterizes the element and writes it to path.
func (c *Canvas) SavePNG(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, c.Rasterize()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
