package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Slot names a color role in the status bar's [colors] section
type Slot string

const (
	SlotBackground    Slot = "background"
	SlotBackgroundAlt Slot = "background-alt"
	SlotForeground    Slot = "foreground"
	SlotPrimary       Slot = "primary"
	SlotSecondary     Slot = "secondary"
	SlotAlert         Slot = "alert"
)

// Slots lists every recognized slot in the order they are written
var Slots = []Slot{
	SlotBackground,
	SlotBackgroundAlt,
	SlotForeground,
	SlotPrimary,
	SlotSecondary,
	SlotAlert,
}

// IsValid returns true if s is one of the recognized slots
func (s Slot) IsValid() bool {
	for _, known := range Slots {
		if s == known {
			return true
		}
	}
	return false
}

// ParseSlot converts a key name into a Slot
func ParseSlot(name string) (Slot, error) {
	s := Slot(strings.TrimSpace(name))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown color slot %q", name)
	}
	return s, nil
}

// SlotValue is what a profile assigns to a slot: either an Index into the
// palette or a Literal color.
type SlotValue interface {
	fmt.Stringer
	isSlotValue()
}

// Index is a 1-based position in the palette
type Index int

func (Index) isSlotValue() {}

func (i Index) String() string {
	return strconv.Itoa(int(i))
}

// Literal is a color string written verbatim
type Literal string

func (Literal) isSlotValue() {}

func (l Literal) String() string {
	return string(l)
}

// ParseSlotValue returns an Index for positive integers and a Literal for
// anything else. Zero and negative integers are rejected.
func ParseSlotValue(raw string) (SlotValue, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("empty slot value")
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 {
			return nil, fmt.Errorf("palette index %d out of range: indices start at 1", n)
		}
		return Index(n), nil
	}
	return Literal(s), nil
}
