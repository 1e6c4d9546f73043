package apply

import (
	"github.com/localdumbkat/polywal/internal/model"
	"github.com/localdumbkat/polywal/internal/storage"
)

// ColorsSection is the only section polywal edits
const ColorsSection = "colors"

// Merge writes the profile's resolved colors into the [colors] section of
// doc, creating the section if needed. Skipped slots keep whatever value
// they had. Every other section and key is left untouched.
func Merge(doc *storage.Document, profile model.Profile, palette model.Palette) []model.Resolution {
	colors := doc.EnsureSection(ColorsSection)

	resolutions := profile.Resolve(palette)
	for _, r := range resolutions {
		if r.Outcome == model.Skipped {
			continue
		}
		colors.Set(string(r.Slot), r.Color)
	}
	return resolutions
}
