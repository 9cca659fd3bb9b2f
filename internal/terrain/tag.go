// Package terrain holds the catalog of paintable terrain tags, the mapping
// from host tool names to tags, and the asset table used by renderers.
package terrain

import "strings"

// Tag identifies the terrain painted on a cell.
type Tag int

const (
	Blank Tag = iota
	BaseLush
	BaseOcean
	BaseSnowy
	ForestLush
	ForestSnowy
	HillsDesert
	HillsLush
	HillsSnowy
	MountainPeakRocky
	MountainPeakLush
	MountainPeakSnowy
	MountainMediumRocky
	MountainLowRocky
	MountainFoothillsRocky
	MountainLush
	MountainSnowy
	PlainsLush
	PlainsDesert
	OceanWaves
	SwampStill
	WetlandsDamp
	SnowField
	// None draws nothing at all (transparent).
	None
)

// Fallback is the tag used for anything that cannot be resolved.
const Fallback = Blank

// Unresolved is the label reported for tags that have no tool name.
const Unresolved = "Unknown"

// tools maps the tags selectable as painting tools to their display label.
var tools = map[Tag]string{
	Blank:                  "Erase",
	MountainFoothillsRocky: "Mountain Foothills, Rocky",
	MountainLowRocky:       "Mountain Low, Rocky",
	MountainMediumRocky:    "Mountain Medium, Rocky",
	MountainPeakRocky:      "Mountain Peak, Rocky",
	MountainPeakLush:       "Mountain Peak, Lush",
	MountainPeakSnowy:      "Mountain Peak, Snowy",
	PlainsLush:             "Lush Plains",
	OceanWaves:             "Ocean Waves",
}

// aliases are the short tool names hosts send in addition to the labels.
var aliases = map[string]Tag{
	"erase":              Blank,
	"mountain foothills": MountainFoothillsRocky,
	"mountain low":       MountainLowRocky,
	"mountain medium":    MountainMediumRocky,
}

var names = [...]string{
	Blank:                  "Blank",
	BaseLush:               "BaseLush",
	BaseOcean:              "BaseOcean",
	BaseSnowy:              "BaseSnowy",
	ForestLush:             "ForestLush",
	ForestSnowy:            "ForestSnowy",
	HillsDesert:            "HillsDesert",
	HillsLush:              "HillsLush",
	HillsSnowy:             "HillsSnowy",
	MountainPeakRocky:      "MountainPeakRocky",
	MountainPeakLush:       "MountainPeakLush",
	MountainPeakSnowy:      "MountainPeakSnowy",
	MountainMediumRocky:    "MountainMediumRocky",
	MountainLowRocky:       "MountainLowRocky",
	MountainFoothillsRocky: "MountainFoothillsRocky",
	MountainLush:           "MountainLush",
	MountainSnowy:          "MountainSnowy",
	PlainsLush:             "PlainsLush",
	PlainsDesert:           "PlainsDesert",
	OceanWaves:             "OceanWaves",
	SwampStill:             "SwampStill",
	WetlandsDamp:           "WetlandsDamp",
	SnowField:              "SnowField",
	None:                   "None",
}

var lookup = func() map[string]Tag {
	m := make(map[string]Tag, len(names)+len(tools)+len(aliases))
	for t, n := range names {
		// None is for renderers only; hosts cannot paint invisible cells.
		if Tag(t) == None {
			continue
		}
		m[strings.ToLower(n)] = Tag(t)
	}
	for t, label := range tools {
		m[strings.ToLower(label)] = t
	}
	for a, t := range aliases {
		m[a] = t
	}
	return m
}()

// String returns the identifier of the tag.
func (t Tag) String() string {
	if t < 0 || int(t) >= len(names) {
		return Unresolved
	}
	return names[t]
}

// Label returns the tool label of the tag, or Unresolved when the tag is not
// offered as a tool.
func (t Tag) Label() string {
	if label, ok := tools[t]; ok {
		return label
	}
	return Unresolved
}

// Valid reports whether t is part of the catalog.
func (t Tag) Valid() bool { return t >= 0 && int(t) < len(names) }

// Parse looks up a tool name, label or tag identifier, ignoring case and
// surrounding whitespace.
func Parse(s string) (Tag, bool) {
	t, ok := lookup[strings.ToLower(strings.TrimSpace(s))]
	return t, ok
}

// Resolve is Parse with the Fallback tag for unknown names. It never fails.
func Resolve(s string) Tag {
	if t, ok := Parse(s); ok {
		return t
	}
	return Fallback
}

// All returns every tag of the catalog in declaration order.
func All() []Tag {
	out := make([]Tag, 0, len(names))
	for t := range names {
		out = append(out, Tag(t))
	}
	return out
}

// Tool describes a tag offered to hosts as a painting tool.
type Tool struct {
	Tag   Tag    `json:"tag"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Tools returns the selectable tools in catalog order.
func Tools() []Tool {
	out := make([]Tool, 0, len(tools))
	for _, t := range All() {
		if label, ok := tools[t]; ok {
			out = append(out, Tool{Tag: t, Name: t.String(), Label: label})
		}
	}
	return out
}
