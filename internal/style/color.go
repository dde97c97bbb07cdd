package style

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	Black = RGB{}
	White = RGB{R: 0xff, G: 0xff, B: 0xff}
)

var namedColors = map[string]RGB{
	"black":   Black,
	"white":   White,
	"red":     {R: 0xff},
	"green":   {G: 0x80},
	"blue":    {B: 0xff},
	"yellow":  {R: 0xff, G: 0xff},
	"cyan":    {G: 0xff, B: 0xff},
	"magenta": {R: 0xff, B: 0xff},
	"gray":    {R: 0x80, G: 0x80, B: 0x80},
	"grey":    {R: 0x80, G: 0x80, B: 0x80},
	"orange":  {R: 0xff, G: 0xa5},
	"purple":  {R: 0x80, B: 0x80},
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	return c.toColorful().Hex()
}

func (c RGB) String() string { return c.Hex() }

// ImageColor converts to the image/color representation used by the rasterizer.
func (c RGB) ImageColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Luminance returns the perceived lightness in [0,1].
func (c RGB) Luminance() float64 {
	l, _, _ := c.toColorful().Lab()
	return l
}

// ParseColor accepts #rrggbb, #rgb (with or without the leading #) and a small
// set of color names.
func ParseColor(value string) (RGB, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return RGB{}, fmt.Errorf("%w: color required", ErrInvalidValue)
	}
	if named, ok := namedColors[trimmed]; ok {
		return named, nil
	}
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	parsed, err := colorful.Hex(trimmed)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q is not a color (want #rrggbb or a name)", ErrInvalidValue, value)
	}
	r, g, b := parsed.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
