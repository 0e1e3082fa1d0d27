package chart

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"bwgraph/internal/traffic"
)

const defaultBarWidth = 40

// TermBuilder renders charts as horizontal bars for a terminal.
type TermBuilder struct {
	Width int
}

func (b TermBuilder) Build(id string, series traffic.ChartSeries, title string, stacked bool, theme Theme) (Handle, error) {
	width := b.Width
	if width <= 0 {
		width = defaultBarWidth
	}
	for _, ds := range series.Datasets {
		if len(ds.Data) != len(series.Labels) {
			return nil, fmt.Errorf("dataset %s has %d values for %d labels", ds.Label, len(ds.Data), len(series.Labels))
		}
	}
	c := &TermChart{
		id:      id,
		title:   title,
		series:  series,
		stacked: stacked,
		width:   width,
	}
	c.Restyle(theme)
	return c, nil
}

type termStyles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	grid  lipgloss.Style
	bars  map[string]lipgloss.Style
}

type TermChart struct {
	mu      sync.RWMutex
	id      string
	title   string
	series  traffic.ChartSeries
	stacked bool
	width   int
	styles  termStyles
}

func (c *TermChart) ID() string {
	return c.id
}

func (c *TermChart) Restyle(theme Theme) {
	fg := lipgloss.Color(theme.Foreground)
	st := termStyles{
		title: lipgloss.NewStyle().Bold(true).Foreground(fg),
		label: lipgloss.NewStyle().Foreground(fg),
		value: lipgloss.NewStyle().Foreground(fg),
		grid:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.GridColor())),
		bars:  make(map[string]lipgloss.Style, len(c.series.Datasets)),
	}
	for _, ds := range c.series.Datasets {
		st.bars[ds.Label] = lipgloss.NewStyle().Foreground(lipgloss.Color(PaletteFor(ds.Label).Background))
	}

	c.mu.Lock()
	c.styles = st
	c.mu.Unlock()
}

func (c *TermChart) scaleMax() float64 {
	max := 0.0
	for i := range c.series.Labels {
		if c.stacked {
			sum := 0.0
			for _, ds := range c.series.Datasets {
				sum += ds.Data[i]
			}
			max = math.Max(max, sum)
			continue
		}
		for _, ds := range c.series.Datasets {
			max = math.Max(max, ds.Data[i])
		}
	}
	return max
}

// Render draws the chart. Stacked charts draw one line per period with the
// datasets laid end to end; otherwise every dataset gets its own line.
func (c *TermChart) Render() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	st := c.styles
	var b strings.Builder
	b.WriteString(st.title.Render(c.title))
	b.WriteString("\n")

	if len(c.series.Labels) == 0 {
		b.WriteString(st.label.Render("no data"))
		b.WriteString("\n")
		return b.String()
	}

	labelWidth := 0
	for _, l := range c.series.Labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}
	nameWidth := 0
	for _, ds := range c.series.Datasets {
		nameWidth = max(nameWidth, lipgloss.Width(ds.Label))
	}

	scale := c.scaleMax()
	frac := func(v float64) float64 {
		if scale <= 0 {
			return 0
		}
		return v / scale
	}
	axis := st.grid.Render("│")

	for i, l := range c.series.Labels {
		label := st.label.Render(pad(l, labelWidth))
		if c.stacked {
			var bar strings.Builder
			used := 0
			var parts []string
			for _, ds := range c.series.Datasets {
				v := ds.Data[i]
				n := Cells(frac(v), c.width)
				if used+n > c.width {
					n = c.width - used
				}
				used += n
				bar.WriteString(st.bars[ds.Label].Render(strings.Repeat("█", n)))
				parts = append(parts, Tooltip(ds.Label, v))
			}
			bar.WriteString(strings.Repeat(" ", c.width-used))
			fmt.Fprintf(&b, "%s %s%s %s\n", label, axis, bar.String(), st.value.Render(strings.Join(parts, ", ")))
			continue
		}
		for j, ds := range c.series.Datasets {
			if j > 0 {
				label = strings.Repeat(" ", labelWidth)
			}
			v := ds.Data[i]
			bar := st.bars[ds.Label].Render(Bar(frac(v), c.width))
			fmt.Fprintf(&b, "%s %s %s%s %s\n", label, pad(ds.Label, nameWidth), axis, bar,
				st.value.Render(FormatValue(v)+" "+UnitSuffix))
		}
	}
	return b.String()
}

// Cells is the number of cells a bar filled to fraction v of width takes.
// Any positive value takes at least one cell.
func Cells(v float64, width int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	fill := int(math.Round(v * float64(width)))
	if v > 0 && fill == 0 {
		fill = 1
	}
	return min(max(fill, 0), width)
}

func Bar(v float64, width int) string {
	fill := Cells(v, width)
	return strings.Repeat("█", fill) + strings.Repeat(" ", width-fill)
}

func pad(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
