package traffic

// Normalize returns the interfaces of doc that have at least one period for
// g, in document order. The document itself is left untouched.
func Normalize(doc *Document, g Granularity) []Interface {
	if doc == nil {
		return []Interface{}
	}
	out := make([]Interface, 0, len(doc.Interfaces))
	for _, iface := range doc.Interfaces {
		if len(iface.Traffic.Periods(g)) > 0 {
			out = append(out, iface)
		}
	}
	return out
}
