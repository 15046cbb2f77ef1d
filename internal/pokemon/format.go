package pokemon

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholder is shown for values whose source data is absent.
const Placeholder = "--"

// FormatWeight converts hectograms to kilograms.
func FormatWeight(hectograms *int) string {
	if hectograms == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.1f kg", float64(*hectograms)/10)
}

// FormatHeight converts decimetres to metres.
func FormatHeight(decimetres *int) string {
	if decimetres == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.1f m", float64(*decimetres)/10)
}

// DisplayName capitalises a hyphenated API name: "mr-mime" becomes "Mr-Mime".
func DisplayName(name string) string {
	return cases.Title(language.English).String(name)
}

var statLabels = map[string]string{
	"hp":              "HP",
	"attack":          "ATK",
	"defense":         "DEF",
	"special-attack":  "SATK",
	"special-defense": "SDEF",
	"speed":           "SPD",
}

// StatLabel shortens a base stat name for the stat table.
func StatLabel(name string) string {
	if label, ok := statLabels[name]; ok {
		return label
	}
	return strings.ToUpper(name)
}

// FlattenFlavorText joins the hard line breaks the API embeds in flavor text.
func FlattenFlavorText(text string) string {
	return strings.NewReplacer("\n", " ", "\f", " ").Replace(text)
}
