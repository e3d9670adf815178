package config

import (
	"sort"

	"github.com/san-kum/paperplane/internal/flight"
)

// Presets are named planes selectable with --preset.
var Presets = map[string]flight.Plane{
	"optimal": {Wing: "Long", Body: "Medium", Shape: "Delta", Material: "Glossy", Humidity: "Normal"},
	"worst":   {Wing: "Short", Body: "Long", Shape: "Arrow", Material: "Recycled", Humidity: "Humid"},
	"glider":  {Wing: "Long", Body: "Short", Shape: "Standard", Material: "Glossy", Humidity: "Dry"},
	"dart":    {Wing: "Short", Body: "Medium", Shape: "Arrow", Material: "Regular", Humidity: "Normal"},
	"soggy":   {Wing: "Medium", Body: "Medium", Shape: "Delta", Material: "Recycled", Humidity: "Humid"},
}

// GetPreset returns the named plane and whether it exists.
func GetPreset(name string) (flight.Plane, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
