package config

import "sort"

var Presets = map[string][]int{
	"sample":   {3, 1, 2},
	"sorted":   {1, 2, 3, 4, 5, 6, 7, 8},
	"reversed": {8, 7, 6, 5, 4, 3, 2, 1},
	"equal":    {4, 4, 4, 4, 4},
	"sparse":   {0, 12, 1, 0, 9, 2, 0, 15},
	"zeros":    {0, 0, 0, 0},
	"mixed":    {5, 3, 9, 1, 7, 2, 8, 2, 6, 4},
}

// GetPreset returns a copy of the named input set, or nil.
func GetPreset(name string) []int {
	values, ok := Presets[name]
	if !ok {
		return nil
	}
	out := make([]int, len(values))
	copy(out, values)
	return out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
