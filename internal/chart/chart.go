package chart

import (
	"fmt"
	"strconv"

	"bwgraph/internal/traffic"
)

const UnitSuffix = "GiB"

const DefaultFontFamily = "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, 'Open Sans', 'Helvetica Neue', sans-serif"

// Theme holds the presentation attributes a chart can be restyled with.
type Theme struct {
	Foreground string `yaml:"foreground" json:"foreground"`
	Background string `yaml:"background" json:"background"`
	Grid       string `yaml:"grid" json:"grid"`
	FontFamily string `yaml:"fontFamily" json:"fontFamily"`
}

// GridColor falls back to the foreground colour when no grid colour is set.
func (t Theme) GridColor() string {
	if t.Grid != "" {
		return t.Grid
	}
	return t.Foreground
}

var (
	LightTheme = Theme{Foreground: "#222222", Background: "#ffffff", FontFamily: DefaultFontFamily}
	DarkTheme  = Theme{Foreground: "#dddddd", Background: "#1e1e1e", FontFamily: DefaultFontFamily}
	PrintTheme = Theme{Foreground: "black", Background: "white", Grid: "black", FontFamily: DefaultFontFamily}
)

type Palette struct {
	Background string
	Border     string
}

var palettes = map[string]Palette{
	traffic.DatasetRx:    {Background: "#5DADE2", Border: "#3498DB"},
	traffic.DatasetTx:    {Background: "#58D68D", Border: "#2ECC71"},
	traffic.DatasetTotal: {Background: "#F7DC6F", Border: "#F4D03F"},
}

func PaletteFor(dataset string) Palette {
	if p, ok := palettes[dataset]; ok {
		return p
	}
	return Palette{Background: "#AAAAAA", Border: "#999999"}
}

// FormatValue prints v the way the browser prints a number: shortest
// representation, no trailing zeros.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Tooltip is the text shown for one bar.
func Tooltip(dataset string, v float64) string {
	return fmt.Sprintf("%s: %s %s", dataset, FormatValue(v), UnitSuffix)
}

// Restyler changes presentation attributes of an existing chart. It never
// touches the chart's data.
type Restyler interface {
	Restyle(theme Theme)
}

type Handle interface {
	Restyler
	ID() string
}

// Builder creates a chart from already built series.
type Builder interface {
	Build(id string, series traffic.ChartSeries, title string, stacked bool, theme Theme) (Handle, error)
}
