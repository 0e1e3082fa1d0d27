package traffic

import (
	"fmt"
	"time"
)

const DefaultDateLayout = "1/2/2006"

// LabelFunc derives the display label of a single period.
type LabelFunc func(p Period) string

// Builder turns the periods of one interface into chart series. The zero
// value formats dates with DefaultDateLayout in time.Local.
type Builder struct {
	DateLayout string
	Location   *time.Location
}

func NewBuilder(dateLayout string, loc *time.Location) *Builder {
	return &Builder{
		DateLayout: dateLayout,
		Location:   loc,
	}
}

func (b *Builder) location() *time.Location {
	if b == nil || b.Location == nil {
		return time.Local
	}
	return b.Location
}

func (b *Builder) dateLayout() string {
	if b == nil || b.DateLayout == "" {
		return DefaultDateLayout
	}
	return b.DateLayout
}

// At constructs the point in time a period starts at. Month is taken as
// zero-based and out of range fields normalize the way time.Date does
// (month 12 is January of the following year). A wall clock hour skipped by
// a DST transition is read with the offset in effect before the transition,
// so 2:00 on a spring-forward day becomes 3:00.
func (b *Builder) At(p Period) time.Time {
	hour := 0
	if p.Time != nil {
		hour = p.Time.Hour
	}
	loc := b.location()
	month := time.Month(p.Date.Month + 1)
	t := time.Date(p.Date.Year, month, p.Date.Day, hour, 0, 0, 0, loc)
	if hour < 0 || hour > 23 || t.Hour() == hour {
		return t
	}

	wall := time.Date(p.Date.Year, month, p.Date.Day, hour, 0, 0, 0, time.UTC)
	return wall.Add(-time.Duration(offsetBeforeGap(t)) * time.Second).In(loc)
}

// offsetBeforeGap returns the UTC offset, in seconds, in effect just before
// the transition next to t.
func offsetBeforeGap(t time.Time) int {
	start, end := t.ZoneBounds()
	_, offset := t.Zone()
	if !end.IsZero() && end.Sub(t) <= 24*time.Hour {
		return offset
	}
	if !start.IsZero() {
		_, offset = start.Add(-time.Nanosecond).Zone()
	}
	return offset
}

// Labeler returns the label strategy for g. Hourly labels read the hour back
// from the constructed time, so DST gaps show the shifted hour.
func (b *Builder) Labeler(g Granularity) LabelFunc {
	if g == GranularityHour {
		return func(p Period) string {
			return fmt.Sprintf("%d:00", b.At(p).Hour())
		}
	}
	layout := b.dateLayout()
	return func(p Period) string {
		return b.At(p).Format(layout)
	}
}

// Build converts the periods of iface for g into labels and Rx/Tx datasets,
// plus a Total dataset unless stacked. Total is summed from the already
// rounded Rx and Tx values and rounded again.
func (b *Builder) Build(iface Interface, g Granularity, stacked bool) ChartSeries {
	periods := iface.Traffic.Periods(g)
	label := b.Labeler(g)

	cs := ChartSeries{
		Labels: make([]string, 0, len(periods)),
	}
	rx := make([]float64, 0, len(periods))
	tx := make([]float64, 0, len(periods))
	var total []float64
	if !stacked {
		total = make([]float64, 0, len(periods))
	}

	for _, p := range periods {
		cs.Labels = append(cs.Labels, label(p))

		r, t := GiB(p.Rx), GiB(p.Tx)
		rx = append(rx, r)
		tx = append(tx, t)
		if !stacked {
			total = append(total, RoundTo(r+t, 3))
		}
	}

	cs.Datasets = []Dataset{
		{Label: DatasetRx, Data: rx},
		{Label: DatasetTx, Data: tx},
	}
	if !stacked {
		cs.Datasets = append(cs.Datasets, Dataset{Label: DatasetTotal, Data: total})
	}
	return cs
}
