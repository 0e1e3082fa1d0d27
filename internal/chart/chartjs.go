package chart

import (
	"encoding/json"
	"sync"

	"bwgraph/internal/traffic"
)

// Chart.js v2 bar chart configuration. Only the fields the page uses are
// modelled; the tooltip callback is installed client side from Tooltips.Unit.

type JSConfig struct {
	Type    string    `json:"type"`
	Data    JSData    `json:"data"`
	Options JSOptions `json:"options"`
}

type JSData struct {
	Labels   []string    `json:"labels"`
	Datasets []JSDataset `json:"datasets"`
}

type JSDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
}

type JSOptions struct {
	Title    JSTitle    `json:"title"`
	Legend   JSLegend   `json:"legend"`
	Tooltips JSTooltips `json:"tooltips"`
	Scales   JSScales   `json:"scales"`
}

type JSTitle struct {
	Display    bool   `json:"display"`
	Text       string `json:"text"`
	FontColor  string `json:"fontColor,omitempty"`
	FontFamily string `json:"fontFamily,omitempty"`
}

type JSLegend struct {
	Labels JSFont `json:"labels"`
}

type JSFont struct {
	FontColor  string `json:"fontColor,omitempty"`
	FontFamily string `json:"fontFamily,omitempty"`
}

type JSTooltips struct {
	Unit string `json:"unit"`
}

type JSScales struct {
	XAxes []JSAxis `json:"xAxes"`
	YAxes []JSAxis `json:"yAxes"`
}

type JSAxis struct {
	Stacked   bool        `json:"stacked"`
	GridLines JSGridLines `json:"gridLines"`
	Ticks     JSTicks     `json:"ticks"`
}

type JSGridLines struct {
	Color string `json:"color"`
}

type JSTicks struct {
	BeginAtZero bool   `json:"beginAtZero,omitempty"`
	FontColor   string `json:"fontColor,omitempty"`
	FontFamily  string `json:"fontFamily,omitempty"`
}

// JSBuilder produces Chart.js configurations.
type JSBuilder struct{}

func (JSBuilder) Build(id string, series traffic.ChartSeries, title string, stacked bool, theme Theme) (Handle, error) {
	cfg := &JSConfig{
		Type: "bar",
		Data: JSData{
			Labels:   series.Labels,
			Datasets: make([]JSDataset, 0, len(series.Datasets)),
		},
		Options: JSOptions{
			Title:    JSTitle{Display: true, Text: title},
			Tooltips: JSTooltips{Unit: UnitSuffix},
			Scales: JSScales{
				XAxes: []JSAxis{{Stacked: stacked}},
				YAxes: []JSAxis{{Stacked: stacked, Ticks: JSTicks{BeginAtZero: true}}},
			},
		},
	}
	for _, ds := range series.Datasets {
		p := PaletteFor(ds.Label)
		cfg.Data.Datasets = append(cfg.Data.Datasets, JSDataset{
			Label:           ds.Label,
			Data:            ds.Data,
			BackgroundColor: p.Background,
			BorderColor:     p.Border,
			BorderWidth:     2,
		})
	}

	c := &JSChart{id: id, config: cfg}
	c.Restyle(theme)
	return c, nil
}

type JSChart struct {
	mu       sync.RWMutex
	id       string
	config   *JSConfig
	revision int
}

func (c *JSChart) ID() string {
	return c.id
}

func (c *JSChart) Restyle(theme Theme) {
	c.mu.Lock()
	defer c.mu.Unlock()

	opts := &c.config.Options
	opts.Title.FontColor = theme.Foreground
	opts.Title.FontFamily = theme.FontFamily
	opts.Legend.Labels = JSFont{FontColor: theme.Foreground, FontFamily: theme.FontFamily}
	for _, axes := range [][]JSAxis{opts.Scales.XAxes, opts.Scales.YAxes} {
		for i := range axes {
			axes[i].GridLines.Color = theme.GridColor()
			axes[i].Ticks.FontColor = theme.Foreground
			axes[i].Ticks.FontFamily = theme.FontFamily
		}
	}
	c.revision++
}

// Revision counts restyles, starting at 1 after Build.
func (c *JSChart) Revision() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.revision
}

// Config returns a copy of the current configuration.
func (c *JSChart) Config() JSConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cfg := *c.config
	cfg.Options.Scales.XAxes = append([]JSAxis(nil), c.config.Options.Scales.XAxes...)
	cfg.Options.Scales.YAxes = append([]JSAxis(nil), c.config.Options.Scales.YAxes...)
	return cfg
}

func (c *JSChart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Config())
}
