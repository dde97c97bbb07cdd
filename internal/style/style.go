// Package style holds the mutable style record of a single text element.
//
// Every attribute has a getter and a setter. Setters that can fail return an
// error wrapping ErrInvalidValue and leave the model untouched; there is no
// change notification, callers propagate mutations themselves.
package style

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidValue reports a rejected mutation.
var ErrInvalidValue = errors.New("invalid value")

const (
	DefaultText       = "Hello World!"
	DefaultFontFamily = "Serif"
	DefaultFontSize   = 24
	DefaultLineHeight = 1.0
)

// Model is the style state of one text element. The control layer keeps a
// pointer to it, never a copy.
type Model struct {
	text          string
	fontFamily    string
	fontSize      int
	bold          bool
	italic        bool
	color         RGB
	lineHeight    float64
	justification Justification
}

// New returns a model initialised with the package defaults.
func New() *Model {
	return &Model{
		text:          DefaultText,
		fontFamily:    DefaultFontFamily,
		fontSize:      DefaultFontSize,
		color:         Black,
		lineHeight:    DefaultLineHeight,
		justification: Left,
	}
}

// Snapshot is an immutable copy of the model used for rendering and tracing.
type Snapshot struct {
	Text          string        `json:"text"`
	FontFamily    string        `json:"fontFamily"`
	FontSize      int           `json:"fontSize"`
	Bold          bool          `json:"bold"`
	Italic        bool          `json:"italic"`
	Color         RGB           `json:"color"`
	LineHeight    float64       `json:"lineHeight"`
	Justification Justification `json:"justification"`
}

// Snapshot captures the current state.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{
		Text:          m.text,
		FontFamily:    m.fontFamily,
		FontSize:      m.fontSize,
		Bold:          m.bold,
		Italic:        m.italic,
		Color:         m.color,
		LineHeight:    m.lineHeight,
		Justification: m.justification,
	}
}

func (m *Model) Text() string { return m.text }

// SetText replaces the content. Blank or whitespace-only text is rejected.
func (m *Model) SetText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: text must not be blank", ErrInvalidValue)
	}
	m.text = text
	return nil
}

func (m *Model) FontFamily() string { return m.fontFamily }

// SetFontFamily stores the family as given. Names that cannot be resolved are
// left for the renderer to substitute.
func (m *Model) SetFontFamily(family string) {
	m.fontFamily = family
}

func (m *Model) FontSize() int { return m.fontSize }

// SetFontSize sets the point size; it must be a positive integer.
func (m *Model) SetFontSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: font size must be a positive integer (got %d)", ErrInvalidValue, size)
	}
	m.fontSize = size
	return nil
}

func (m *Model) Bold() bool         { return m.bold }
func (m *Model) SetBold(bold bool)  { m.bold = bold }
func (m *Model) Italic() bool       { return m.italic }
func (m *Model) SetItalic(on bool)  { m.italic = on }
func (m *Model) Color() RGB         { return m.color }
func (m *Model) SetColor(color RGB) { m.color = color }

func (m *Model) LineHeight() float64 { return m.lineHeight }

// SetLineHeight sets the multiplier applied to the font's natural line
// advance. Zero, negative, NaN and infinite values are rejected.
func (m *Model) SetLineHeight(multiplier float64) error {
	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) || multiplier <= 0 {
		return fmt.Errorf("%w: line height must be a positive number (got %v)", ErrInvalidValue, multiplier)
	}
	m.lineHeight = multiplier
	return nil
}

func (m *Model) Justification() Justification { return m.justification }

// SetJustification selects one of Left, Center or Right. Values outside the
// three variants are ignored so exactly one alignment is always active.
func (m *Model) SetJustification(j Justification) {
	if !j.Valid() {
		return
	}
	m.justification = j
}

// ResetDefaults clears bold and italic and restores left justification. All
// other attributes keep their current values.
func (m *Model) ResetDefaults() {
	m.bold = false
	m.italic = false
	m.justification = Left
}

// FromSnapshot builds a model from s, validating every field through the
// setters. The first rejected field is returned as the error.
func FromSnapshot(s Snapshot) (*Model, error) {
	m := New()
	if err := m.SetText(s.Text); err != nil {
		return nil, err
	}
	if err := m.SetFontSize(s.FontSize); err != nil {
		return nil, err
	}
	if err := m.SetLineHeight(s.LineHeight); err != nil {
		return nil, err
	}
	if !s.Justification.Valid() {
		return nil, fmt.Errorf("%w: unknown justification %d", ErrInvalidValue, int(s.Justification))
	}
	m.SetFontFamily(s.FontFamily)
	m.SetBold(s.Bold)
	m.SetItalic(s.Italic)
	m.SetColor(s.Color)
	m.SetJustification(s.Justification)
	return m, nil
}
