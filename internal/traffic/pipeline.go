package traffic

// InterfaceSeries is the built chart data of one interface together with
// the key of the element it is mounted on.
type InterfaceSeries struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Series ChartSeries `json:"series"`
}

func MountKey(ifname string) string {
	return "graph-" + ifname
}

// Run normalizes doc for g and builds the series of every remaining
// interface. An empty result is not an error.
func (b *Builder) Run(doc *Document, g Granularity, stacked bool) []InterfaceSeries {
	ifaces := Normalize(doc, g)
	out := make([]InterfaceSeries, 0, len(ifaces))
	for _, iface := range ifaces {
		out = append(out, InterfaceSeries{
			ID:     MountKey(iface.Name),
			Title:  iface.Name,
			Series: b.Build(iface, g, stacked),
		})
	}
	return out
}
