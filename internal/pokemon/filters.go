package pokemon

import (
	"fmt"
	"slices"
)

// GenerationRange is an inclusive id range.
type GenerationRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether id lies within the range.
func (r GenerationRange) Contains(id int) bool {
	return id >= r.Min && id <= r.Max
}

// AllGenerations is the generation value meaning "no generation filter".
const AllGenerations = 0

var generationRanges = [...]GenerationRange{
	{Min: 1, Max: 10000},
	{Min: 1, Max: 151},
	{Min: 152, Max: 251},
	{Min: 252, Max: 386},
	{Min: 387, Max: 493},
	{Min: 494, Max: 649},
	{Min: 650, Max: 721},
	{Min: 722, Max: 809},
	{Min: 810, Max: 905},
	{Min: 906, Max: 1008},
}

// GenerationCount is the number of entries in the generation table,
// including the "all" entry.
const GenerationCount = len(generationRanges)

// Generation returns the id range of generation gen.
func Generation(gen int) (GenerationRange, bool) {
	if gen < 0 || gen >= len(generationRanges) {
		return GenerationRange{}, false
	}
	return generationRanges[gen], true
}

// GenerationLabel is the human label used by the filter control.
func GenerationLabel(gen int) string {
	if gen == AllGenerations {
		return "All Generations"
	}
	return fmt.Sprintf("Generation %d", gen)
}

var types = [...]string{
	"normal", "fire", "water", "electric", "grass", "ice", "fighting",
	"poison", "ground", "flying", "psychic", "bug", "rock", "ghost",
	"dragon", "dark", "steel", "fairy",
}

// Types returns the fixed type enumeration in display order.
func Types() []string {
	out := make([]string, len(types))
	copy(out, types[:])
	return out
}

// IsType reports whether name belongs to the type enumeration.
func IsType(name string) bool {
	return slices.Contains(types[:], name)
}

// Filters is the committed (or draft) filter state of the list screen.
//
// Types is part of the model and of the filter control but is not applied
// by Filter: list entries carry no type data.
type Filters struct {
	Types      []string `json:"types"`
	Generation int      `json:"generation"`
}

// Clone returns a deep copy so that drafts never alias committed state.
func (f Filters) Clone() Filters {
	out := Filters{Generation: f.Generation}
	if f.Types != nil {
		out.Types = make([]string, len(f.Types))
		copy(out.Types, f.Types)
	}
	return out
}

// Active reports whether any filter would be shown as set.
func (f Filters) Active() bool {
	return len(f.Types) > 0 || f.Generation > AllGenerations
}

// HasType reports whether name is selected.
func (f Filters) HasType(name string) bool {
	return slices.Contains(f.Types, name)
}

// ToggleType returns a copy with name added or removed. Unknown names are ignored.
func (f Filters) ToggleType(name string) Filters {
	out := f.Clone()
	if !IsType(name) {
		return out
	}
	if idx := slices.Index(out.Types, name); idx >= 0 {
		out.Types = slices.Delete(out.Types, idx, idx+1)
		return out
	}
	out.Types = append(out.Types, name)
	return out
}

// WithGeneration returns a copy with the generation replaced.
func (f Filters) WithGeneration(gen int) Filters {
	out := f.Clone()
	out.Generation = gen
	return out
}
