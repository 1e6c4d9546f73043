package model

// Palette is the ordered list of colors generated by pywal.
// It has no mutating methods; NewPalette copies its input.
type Palette struct {
	colors []string
}

// NewPalette creates a palette from colors, preserving order
func NewPalette(colors []string) Palette {
	c := make([]string, len(colors))
	copy(c, colors)
	return Palette{colors: c}
}

// Len returns the number of colors
func (p Palette) Len() int {
	return len(p.colors)
}

// At returns the color at a 0-based position
func (p Palette) At(i int) string {
	return p.colors[i]
}

// Colors returns a copy of the palette contents
func (p Palette) Colors() []string {
	c := make([]string, len(p.colors))
	copy(c, p.colors)
	return c
}

// Outcome describes how a slot value was resolved against a palette
type Outcome int

const (
	// Resolved means the value was used as given
	Resolved Outcome = iota
	// Clamped means the index exceeded the palette and the last color was used
	Clamped
	// Skipped means the palette was empty and the slot was left unchanged
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case Clamped:
		return "clamped"
	case Skipped:
		return "skipped"
	}
	return ""
}

// Resolution is the result of resolving one profile slot
type Resolution struct {
	Slot    Slot
	Source  SlotValue
	Color   string
	Outcome Outcome
}

// Resolve turns a slot value into a color. An Index past the end of the
// palette is clamped to the last color; against an empty palette an Index
// resolves to nothing and the outcome is Skipped.
func (p Palette) Resolve(v SlotValue) (string, Outcome) {
	switch val := v.(type) {
	case Literal:
		return string(val), Resolved
	case Index:
		if len(p.colors) == 0 {
			return "", Skipped
		}
		i := int(val) - 1
		if i < 0 {
			i = 0
		}
		if i >= len(p.colors) {
			return p.colors[len(p.colors)-1], Clamped
		}
		return p.colors[i], Resolved
	}
	return "", Skipped
}
