package traffic

import (
	"fmt"
	"strings"
)

type Granularity string

const (
	GranularityDay  Granularity = "day"
	GranularityHour Granularity = "hour"
)

// ParseGranularity accepts the short query selectors (d, h) as well as the
// long names.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "d", "day":
		return GranularityDay, nil
	case "h", "hour":
		return GranularityHour, nil
	default:
		return "", fmt.Errorf("invalid granularity %q, expect d or h", s)
	}
}

// Short returns the selector used by vnstat and the data.json query (d, h).
func (g Granularity) Short() string {
	if g == GranularityHour {
		return "h"
	}
	return "d"
}

// DefaultCount is the number of periods shown when the request does not ask
// for a specific amount.
func (g Granularity) DefaultCount() int {
	if g == GranularityHour {
		return 12
	}
	return 7
}

type Document struct {
	Interfaces []Interface `json:"interfaces"`
}

type Interface struct {
	Name    string `json:"name"`
	Traffic Series `json:"traffic"`
}

type Series struct {
	Day  []Period `json:"day"`
	Hour []Period `json:"hour"`
}

// Periods returns the period sequence for g.
func (s Series) Periods(g Granularity) []Period {
	if g == GranularityHour {
		return s.Hour
	}
	return s.Day
}

// Date is a calendar date as delivered by the document producer. Month is
// zero-based: 0 is January.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type Clock struct {
	Hour int `json:"hour"`
}

type Period struct {
	Date Date   `json:"date"`
	Time *Clock `json:"time,omitempty"`
	Rx   uint64 `json:"rx"`
	Tx   uint64 `json:"tx"`
}

const (
	DatasetRx    = "Rx"
	DatasetTx    = "Tx"
	DatasetTotal = "Total"
)

type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type ChartSeries struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset returns the dataset with the given label, or nil.
func (cs *ChartSeries) Dataset(label string) *Dataset {
	for i := range cs.Datasets {
		if cs.Datasets[i].Label == label {
			return &cs.Datasets[i]
		}
	}
	return nil
}

// Totals sums the raw byte counts of the periods of iface for g.
func Totals(iface Interface, g Granularity) (rx, tx uint64) {
	for _, p := range iface.Traffic.Periods(g) {
		rx += p.Rx
		tx += p.Tx
	}
	return rx, tx
}
