package style

import (
	"fmt"
	"strings"
)

// Justification is the paragraph alignment of the text element.
type Justification int

const (
	Left Justification = iota
	Center
	Right
)

// Justifications lists the variants in menu order.
func Justifications() []Justification {
	return []Justification{Left, Center, Right}
}

// Valid reports whether j is one of the three variants.
func (j Justification) Valid() bool {
	return j == Left || j == Center || j == Right
}

func (j Justification) String() string {
	switch j {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("justification(%d)", int(j))
	}
}

// Label is the menu caption for the variant.
func (j Justification) Label() string {
	switch j {
	case Center:
		return "Center"
	case Right:
		return "Right"
	default:
		return "Left"
	}
}

// ParseJustification accepts left, center/centre or right in any case.
func ParseJustification(value string) (Justification, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left":
		return Left, nil
	case "center", "centre":
		return Center, nil
	case "right":
		return Right, nil
	default:
		return Left, fmt.Errorf("%w: unknown justification %q (want left, center or right)", ErrInvalidValue, value)
	}
}

func (j Justification) MarshalText() ([]byte, error) {
	return []byte(j.String()), nil
}

func (j *Justification) UnmarshalText(text []byte) error {
	parsed, err := ParseJustification(string(text))
	if err != nil {
		return err
	}
	*j = parsed
	return nil
}
