package chart

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bwgraph/internal/traffic"
)

func sampleSeries(stacked bool) traffic.ChartSeries {
	cs := traffic.ChartSeries{
		Labels: []string{"1/15/2023", "1/16/2023"},
		Datasets: []traffic.Dataset{
			{Label: traffic.DatasetRx, Data: []float64{3, 0.5}},
			{Label: traffic.DatasetTx, Data: []float64{1, 0}},
		},
	}
	if !stacked {
		cs.Datasets = append(cs.Datasets, traffic.Dataset{Label: traffic.DatasetTotal, Data: []float64{4, 0.5}})
	}
	return cs
}

func TestTooltip(t *testing.T) {
	assert.Equal(t, "Rx: 3 GiB", Tooltip("Rx", 3))
	assert.Equal(t, "Total: 1.234 GiB", Tooltip("Total", 1.234))
	assert.Equal(t, "0.5", FormatValue(0.5))
}

func TestThemeGridColor(t *testing.T) {
	assert.Equal(t, "#fff", Theme{Foreground: "#fff"}.GridColor())
	assert.Equal(t, "#333", Theme{Foreground: "#fff", Grid: "#333"}.GridColor())
}

func TestJSBuilder(t *testing.T) {
	h, err := JSBuilder{}.Build("graph-eth0", sampleSeries(false), "eth0", false, LightTheme)
	require.NoError(t, err)

	c := h.(*JSChart)
	assert.Equal(t, "graph-eth0", c.ID())
	assert.Equal(t, 1, c.Revision())

	cfg := c.Config()
	assert.Equal(t, "bar", cfg.Type)
	assert.True(t, cfg.Options.Title.Display)
	assert.Equal(t, "eth0", cfg.Options.Title.Text)
	assert.Equal(t, UnitSuffix, cfg.Options.Tooltips.Unit)
	require.Len(t, cfg.Data.Datasets, 3)
	assert.Equal(t, "#5DADE2", cfg.Data.Datasets[0].BackgroundColor)
	assert.Equal(t, "#2ECC71", cfg.Data.Datasets[1].BorderColor)
	assert.Equal(t, "#F7DC6F", cfg.Data.Datasets[2].BackgroundColor)
	assert.Equal(t, 2, cfg.Data.Datasets[0].BorderWidth)
	assert.False(t, cfg.Options.Scales.XAxes[0].Stacked)
	assert.True(t, cfg.Options.Scales.YAxes[0].Ticks.BeginAtZero)
	assert.Equal(t, LightTheme.Foreground, cfg.Options.Scales.YAxes[0].GridLines.Color)

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"stacked":false`)
	assert.Contains(t, string(raw), `"unit":"GiB"`)
}

func TestJSRestyleKeepsData(t *testing.T) {
	series := sampleSeries(true)
	h, err := JSBuilder{}.Build("graph-eth0", series, "eth0", true, DarkTheme)
	require.NoError(t, err)
	c := h.(*JSChart)

	before := c.Config()
	assert.True(t, before.Options.Scales.XAxes[0].Stacked)
	assert.True(t, before.Options.Scales.YAxes[0].Stacked)

	c.Restyle(PrintTheme)
	after := c.Config()
	assert.Equal(t, "black", after.Options.Scales.XAxes[0].GridLines.Color)
	assert.Equal(t, "black", after.Options.Title.FontColor)
	assert.Equal(t, before.Data, after.Data)
	assert.Equal(t, 2, c.Revision())

	// copies handed out earlier are not affected
	assert.Equal(t, DarkTheme.Foreground, before.Options.Scales.XAxes[0].GridLines.Color)
}

type fakeHandle struct {
	id     string
	themes []Theme
}

func (f *fakeHandle) ID() string          { return f.id }
func (f *fakeHandle) Restyle(theme Theme) { f.themes = append(f.themes, theme) }

type fakeBuilder struct {
	builds int
	fail   bool
	built  []*fakeHandle
}

func (f *fakeBuilder) Build(id string, _ traffic.ChartSeries, _ string, _ bool, theme Theme) (Handle, error) {
	if f.fail {
		return nil, errors.New("boom")
	}
	f.builds++
	h := &fakeHandle{id: id, themes: []Theme{theme}}
	f.built = append(f.built, h)
	return h, nil
}

func TestBoardEvents(t *testing.T) {
	items := []traffic.InterfaceSeries{
		{ID: "graph-eth0", Title: "eth0", Series: sampleSeries(false)},
		{ID: "graph-wlan0", Title: "wlan0", Series: sampleSeries(false)},
	}
	fb := &fakeBuilder{}
	board := NewBoard(LightTheme, nil)
	require.NoError(t, board.Mount(fb, items, false))
	require.Len(t, board.Handles(), 2)
	assert.Equal(t, "graph-wlan0", board.Handles()[1].ID())

	board.Apply(BeforePrint{})
	board.Apply(AfterPrint{})
	board.Apply(ColorSchemeChanged{Theme: DarkTheme})
	board.Apply(BeforePrint{})
	board.Apply(AfterPrint{})

	assert.Equal(t, 2, fb.builds, "events must not rebuild charts")
	for _, h := range fb.built {
		assert.Equal(t, []Theme{LightTheme, PrintTheme, LightTheme, DarkTheme, PrintTheme, DarkTheme}, h.themes)
	}
	assert.Equal(t, DarkTheme, board.Scheme())
}

func TestBoardMountError(t *testing.T) {
	board := NewBoard(LightTheme, nil)
	err := board.Mount(&fakeBuilder{fail: true}, []traffic.InterfaceSeries{{ID: "graph-eth0"}}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "graph-eth0")
	assert.Empty(t, board.Handles())
}

func TestTermRender(t *testing.T) {
	h, err := TermBuilder{Width: 20}.Build("graph-eth0", sampleSeries(false), "eth0", false, LightTheme)
	require.NoError(t, err)
	out := h.(*TermChart).Render()

	assert.True(t, strings.HasPrefix(out, "eth0"))
	assert.Contains(t, out, "1/15/2023")
	assert.Contains(t, out, "3 GiB")
	assert.Contains(t, out, "4 GiB")
	assert.Contains(t, out, strings.Repeat("█", 15))
	// title, two periods with three datasets each
	assert.Equal(t, 7, strings.Count(out, "\n"))
}

func TestTermRenderStacked(t *testing.T) {
	h, err := TermBuilder{Width: 20}.Build("graph-eth0", sampleSeries(true), "eth0", true, DarkTheme)
	require.NoError(t, err)
	c := h.(*TermChart)
	out := c.Render()

	assert.Contains(t, out, "Rx: 3 GiB, Tx: 1 GiB")
	assert.Equal(t, 3, strings.Count(out, "\n"))

	c.Restyle(PrintTheme)
	assert.Equal(t, out, c.Render(), "restyle must not change the content")
}

func TestTermRenderEmpty(t *testing.T) {
	h, err := TermBuilder{}.Build("graph-eth0", traffic.ChartSeries{}, "eth0", false, LightTheme)
	require.NoError(t, err)
	assert.Contains(t, h.(*TermChart).Render(), "no data")
}

func TestTermBuildMismatch(t *testing.T) {
	cs := traffic.ChartSeries{
		Labels:   []string{"a"},
		Datasets: []traffic.Dataset{{Label: traffic.DatasetRx}},
	}
	_, err := TermBuilder{}.Build("graph-eth0", cs, "eth0", false, LightTheme)
	assert.Error(t, err)
}

func TestBar(t *testing.T) {
	assert.Equal(t, "     ", Bar(0, 5))
	assert.Equal(t, "█    ", Bar(0.01, 5))
	assert.Equal(t, "█████", Bar(2, 5))
	assert.Equal(t, 0, Cells(-1, 5))
	assert.Equal(t, 3, Cells(0.5, 5))
}
