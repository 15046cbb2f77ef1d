package pokemon

// TintColor is the fallback accent when no type colour applies.
const TintColor = "#DC0A2D"

var typeColors = map[string]string{
	"normal":   "#AAA67F",
	"fighting": "#C12239",
	"flying":   "#A891EC",
	"ground":   "#DEC16B",
	"poison":   "#A43E9E",
	"rock":     "#B69E31",
	"bug":      "#A7B723",
	"ghost":    "#70559B",
	"steel":    "#B7B9D0",
	"fire":     "#F57D31",
	"water":    "#6493EB",
	"grass":    "#74CB48",
	"electric": "#F9CF30",
	"psychic":  "#FB5584",
	"ice":      "#9AD6DF",
	"dragon":   "#7037FF",
	"dark":     "#75574C",
	"fairy":    "#E69EAC",
}

// TypeColor returns the palette colour for a type name.
func TypeColor(name string) (string, bool) {
	color, ok := typeColors[name]
	return color, ok
}

// MainColor picks the colour of the first listed type, or TintColor.
func MainColor(typeNames []string) string {
	if len(typeNames) == 0 {
		return TintColor
	}
	if color, ok := typeColors[typeNames[0]]; ok {
		return color
	}
	return TintColor
}
