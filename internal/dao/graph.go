package dao

import (
	"bwgraph/internal/chart"
	"bwgraph/internal/traffic"
)

// GraphRequest query parameters shared by /, /data.json and /api/v1/charts.
// ts selects the granularity (d or h, default d), nr the number of periods
// (default 7 daily, 12 hourly); the presence of stack enables stacking.
// A ts that is not a known granularity selects daily.
type GraphRequest struct {
	TS string `form:"ts" json:"ts"`
	NR int    `form:"nr" json:"nr" binding:"omitempty,min=1"`
}

// Chart one interface's chart
type Chart struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Labels   []string          `json:"labels"`
	Datasets []traffic.Dataset `json:"datasets"`
	Config   chart.JSConfig    `json:"config"`
}

// ChartsResponse response of /api/v1/charts
type ChartsResponse struct {
	Granularity string  `json:"ts"`
	Count       int     `json:"nr"`
	Stacked     bool    `json:"stack"`
	Charts      []Chart `json:"charts"`
}

// Themes colours the page switches between without rebuilding charts
type Themes struct {
	Light chart.Theme `json:"light"`
	Dark  chart.Theme `json:"dark"`
	Print chart.Theme `json:"print"`
}
