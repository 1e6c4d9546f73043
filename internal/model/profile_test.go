package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eightColors = []string{"#111", "#222", "#333", "#444", "#555", "#666", "#777", "#888"}

func TestParseSlotValue(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    SlotValue
		wantErr bool
	}{
		{name: "positive integer is an index", raw: "5", want: Index(5)},
		{name: "whitespace is trimmed", raw: " 3 ", want: Index(3)},
		{name: "hex color is a literal", raw: "#ff0000", want: Literal("#ff0000")},
		{name: "reference is a literal", raw: "${xrdb:color1}", want: Literal("${xrdb:color1}")},
		{name: "zero is rejected", raw: "0", wantErr: true},
		{name: "negative is rejected", raw: "-2", wantErr: true},
		{name: "empty is rejected", raw: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSlotValue(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSlot(t *testing.T) {
	s, err := ParseSlot("background-alt")
	require.NoError(t, err)
	assert.Equal(t, SlotBackgroundAlt, s)

	_, err = ParseSlot("border")
	assert.Error(t, err)
}

func TestPaletteResolve(t *testing.T) {
	p := NewPalette(eightColors)

	color, outcome := p.Resolve(Index(1))
	assert.Equal(t, "#111", color)
	assert.Equal(t, Resolved, outcome)

	color, outcome = p.Resolve(Index(8))
	assert.Equal(t, "#888", color)
	assert.Equal(t, Resolved, outcome)

	color, outcome = p.Resolve(Index(20))
	assert.Equal(t, "#888", color, "out-of-range index clamps to the last color")
	assert.Equal(t, Clamped, outcome)

	color, outcome = p.Resolve(Literal("#abcdef"))
	assert.Equal(t, "#abcdef", color)
	assert.Equal(t, Resolved, outcome)

	color, outcome = NewPalette(nil).Resolve(Index(1))
	assert.Empty(t, color)
	assert.Equal(t, Skipped, outcome)

	color, outcome = NewPalette(nil).Resolve(Literal("#000000"))
	assert.Equal(t, "#000000", color, "literals do not need a palette")
	assert.Equal(t, Resolved, outcome)
}

func TestNewPalette_CopiesInput(t *testing.T) {
	in := []string{"#111", "#222"}
	p := NewPalette(in)
	in[0] = "#changed"

	assert.Equal(t, "#111", p.At(0))

	out := p.Colors()
	out[1] = "#changed"
	assert.Equal(t, "#222", p.At(1))
}

func TestProfileResolve_BuiltinProfile1(t *testing.T) {
	p := Builtins()[0]
	require.Equal(t, DefaultProfile, p.Name)

	got := map[Slot]string{}
	for _, r := range p.Resolve(NewPalette(eightColors)) {
		assert.Equal(t, Resolved, r.Outcome)
		got[r.Slot] = r.Color
	}

	assert.Equal(t, map[Slot]string{
		SlotBackground:    "#111",
		SlotBackgroundAlt: "#333",
		SlotForeground:    "#222",
		SlotPrimary:       "#555",
		SlotSecondary:     "#444",
		SlotAlert:         "#888",
	}, got)
}

func TestProfileResolve_FollowsSlotOrder(t *testing.T) {
	p := Profile{
		Name: "partial",
		Colors: map[Slot]SlotValue{
			SlotAlert:      Literal("#f00"),
			SlotBackground: Index(2),
		},
	}

	res := p.Resolve(NewPalette(eightColors))
	require.Len(t, res, 2)
	assert.Equal(t, SlotBackground, res[0].Slot)
	assert.Equal(t, SlotAlert, res[1].Slot)
}

func TestBuiltins_AreValidAndCoverEverySlot(t *testing.T) {
	builtins := Builtins()
	require.Len(t, builtins, 3)

	for _, p := range builtins {
		require.NoError(t, p.Validate(), p.Name)
		assert.True(t, p.BuiltIn)
		for _, slot := range Slots {
			assert.Contains(t, p.Colors, slot, "%s missing %s", p.Name, slot)
		}
	}

	assert.Equal(t, Index(8), builtins[0].Colors[SlotAlert])
	assert.Equal(t, Literal("#0000ff"), builtins[1].Colors[SlotAlert])
}

func TestProfileValidate(t *testing.T) {
	assert.Error(t, Profile{Colors: map[Slot]SlotValue{SlotAlert: Index(1)}}.Validate())
	assert.Error(t, Profile{Name: "empty"}.Validate())
	assert.Error(t, Profile{Name: "bad", Colors: map[Slot]SlotValue{"border": Index(1)}}.Validate())
	assert.Error(t, Profile{Name: "nil", Colors: map[Slot]SlotValue{SlotAlert: nil}}.Validate())
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry(Builtins()...)

	p, err := r.Lookup("profile2")
	require.NoError(t, err)
	assert.Equal(t, "profile2", p.Name)

	p, err = r.Lookup("3")
	require.NoError(t, err)
	assert.Equal(t, "profile3", p.Name)

	_, err = r.Lookup("nope")
	require.ErrorIs(t, err, ErrUnknownProfile)
	assert.Contains(t, err.Error(), "profile1, profile2, profile3")
}

func TestRegistryAdd_OverrideKeepsPosition(t *testing.T) {
	r := NewRegistry(Builtins()...)
	r.Add(Profile{Name: "dusk", Colors: map[Slot]SlotValue{SlotAlert: Index(2)}})
	r.Add(Profile{Name: "profile2", Colors: map[Slot]SlotValue{SlotAlert: Literal("#123456")}})

	assert.Equal(t, []string{"profile1", "profile2", "profile3", "dusk"}, r.Names())

	p, err := r.Lookup("profile2")
	require.NoError(t, err)
	assert.Equal(t, Literal("#123456"), p.Colors[SlotAlert])
	assert.False(t, p.BuiltIn)
}

func TestRegistryLookup_ReturnsIndependentCopy(t *testing.T) {
	r := NewRegistry(Builtins()...)

	p, err := r.Lookup("profile1")
	require.NoError(t, err)
	p.Colors[SlotAlert] = Literal("#000000")

	again, err := r.Lookup("profile1")
	require.NoError(t, err)
	assert.Equal(t, Index(8), again.Colors[SlotAlert])
}
