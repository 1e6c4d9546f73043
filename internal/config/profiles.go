package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/localdumbkat/polywal/internal/model"
)

type profileFile struct {
	Profiles []profileEntry `yaml:"profiles"`
}

type profileEntry struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Colors      map[string]slotValue `yaml:"colors"`
}

// slotValue decodes a YAML scalar: integers become palette indices,
// anything else a literal color. Hex colors must be quoted in YAML.
type slotValue struct {
	model.SlotValue
}

func (v *slotValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: slot value must be a number or a color string", node.Line)
	}
	parsed, err := model.ParseSlotValue(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	v.SlotValue = parsed
	return nil
}

// ParseProfiles decodes profile definitions from YAML
func ParseProfiles(data []byte) ([]model.Profile, error) {
	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}

	profiles := make([]model.Profile, 0, len(file.Profiles))
	for _, entry := range file.Profiles {
		p := model.Profile{
			Name:        entry.Name,
			Description: entry.Description,
			Colors:      make(map[model.Slot]model.SlotValue, len(entry.Colors)),
		}
		for key, v := range entry.Colors {
			slot, err := model.ParseSlot(key)
			if err != nil {
				return nil, fmt.Errorf("profile %q: %w", entry.Name, err)
			}
			p.Colors[slot] = v.SlotValue
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// LoadProfiles reads user profiles from path. A missing file yields none.
func LoadProfiles(path string) ([]model.Profile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading profiles: %w", err)
	}

	profiles, err := ParseProfiles(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return profiles, nil
}

// LoadRegistry returns the built-in profiles followed by those in path.
// A user profile named like a built-in replaces it.
func LoadRegistry(path string) (*model.Registry, error) {
	reg := model.NewRegistry(model.Builtins()...)
	if path == "" {
		return reg, nil
	}

	user, err := LoadProfiles(path)
	if err != nil {
		return nil, err
	}
	for _, p := range user {
		reg.Add(p)
	}
	return reg, nil
}
