package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultProfile is applied when no profile is selected
const DefaultProfile = "profile1"

// ErrUnknownProfile is returned by Registry.Lookup for names it does not hold
var ErrUnknownProfile = errors.New("unknown profile")

// Profile maps slots to palette indices or fixed colors
type Profile struct {
	Name        string
	Description string
	Colors      map[Slot]SlotValue
	BuiltIn     bool
}

// Validate checks that the profile has a name, at least one slot, and only
// recognized slots.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile has no name")
	}
	if len(p.Colors) == 0 {
		return fmt.Errorf("profile %q: no colors defined", p.Name)
	}
	for slot, v := range p.Colors {
		if !slot.IsValid() {
			return fmt.Errorf("profile %q: unknown color slot %q", p.Name, slot)
		}
		if v == nil {
			return fmt.Errorf("profile %q: slot %q has no value", p.Name, slot)
		}
	}
	return nil
}

// Clone returns a copy that shares no map with p
func (p Profile) Clone() Profile {
	c := p
	c.Colors = make(map[Slot]SlotValue, len(p.Colors))
	for k, v := range p.Colors {
		c.Colors[k] = v
	}
	return c
}

// Resolve resolves every slot the profile defines, in Slots order
func (p Profile) Resolve(palette Palette) []Resolution {
	var out []Resolution
	for _, slot := range Slots {
		v, ok := p.Colors[slot]
		if !ok {
			continue
		}
		color, outcome := palette.Resolve(v)
		out = append(out, Resolution{
			Slot:    slot,
			Source:  v,
			Color:   color,
			Outcome: outcome,
		})
	}
	return out
}

// Builtins returns the profiles shipped with polywal
func Builtins() []Profile {
	return []Profile{
		{
			Name:        "profile1",
			Description: "pywal palette",
			BuiltIn:     true,
			Colors: map[Slot]SlotValue{
				SlotBackground:    Index(1),
				SlotBackgroundAlt: Index(3),
				SlotForeground:    Index(2),
				SlotPrimary:       Index(5),
				SlotSecondary:     Index(4),
				SlotAlert:         Index(8),
			},
		},
		{
			Name:        "profile2",
			Description: "fixed light",
			BuiltIn:     true,
			Colors: map[Slot]SlotValue{
				SlotBackground:    Literal("#ffffff"),
				SlotBackgroundAlt: Literal("#ffffff"),
				SlotForeground:    Literal("#000000"),
				SlotPrimary:       Literal("#000000"),
				SlotSecondary:     Literal("#ffffff"),
				SlotAlert:         Literal("#0000ff"),
			},
		},
		{
			Name:        "profile3",
			Description: "fixed red/green",
			BuiltIn:     true,
			Colors: map[Slot]SlotValue{
				SlotBackground:    Literal("#ff0000"),
				SlotBackgroundAlt: Literal("#ff0000"),
				SlotForeground:    Literal("#00ff00"),
				SlotPrimary:       Literal("#00ff00"),
				SlotSecondary:     Literal("#ff0000"),
				SlotAlert:         Literal("#0000ff"),
			},
		},
	}
}

// Registry holds the available profiles in display order
type Registry struct {
	order  []string
	byName map[string]Profile
}

// NewRegistry creates a registry containing profiles in the given order
func NewRegistry(profiles ...Profile) *Registry {
	r := &Registry{byName: make(map[string]Profile)}
	for _, p := range profiles {
		r.Add(p)
	}
	return r
}

// Add registers a profile. A profile with an existing name replaces the
// old definition and keeps its position.
func (r *Registry) Add(p Profile) {
	if _, exists := r.byName[p.Name]; !exists {
		r.order = append(r.order, p.Name)
	}
	r.byName[p.Name] = p.Clone()
}

// Lookup finds a profile by name. A bare number n is shorthand for "profile<n>".
func (r *Registry) Lookup(name string) (Profile, error) {
	name = strings.TrimSpace(name)
	if p, ok := r.byName[name]; ok {
		return p.Clone(), nil
	}
	if n, err := strconv.Atoi(name); err == nil {
		if p, ok := r.byName[fmt.Sprintf("profile%d", n)]; ok {
			return p.Clone(), nil
		}
	}
	return Profile{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownProfile, name, strings.Join(r.order, ", "))
}

// Names returns profile names in display order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Profiles returns all profiles in display order
func (r *Registry) Profiles() []Profile {
	out := make([]Profile, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name].Clone())
	}
	return out
}
