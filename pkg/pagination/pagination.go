package pagination

const (
	// DefaultRows is the standard page size when a limit is not provided.
	DefaultRows = 20
	// MaxRows caps how many rows any list query can request, regardless of
	// what the client asked for.
	MaxRows = 100
)

// Paging holds offset/limit inputs from controllers.
type Paging struct {
	Offset int
	Limit  int
}

// Normalize clamps the paging values server-side: offset is never negative
// and limit always lands in (0, max], falling back when unset. The max is
// itself capped at MaxRows, so a misconfigured ceiling cannot widen pages
// past the hard limit.
func (p Paging) Normalize(fallback, max int) Paging {
	out := p
	if out.Offset < 0 {
		out.Offset = 0
	}
	if max <= 0 || max > MaxRows {
		max = MaxRows
	}
	if fallback <= 0 || fallback > max {
		fallback = DefaultRows
	}
	if fallback > max {
		fallback = max
	}
	if out.Limit <= 0 {
		out.Limit = fallback
	}
	if out.Limit > max {
		out.Limit = max
	}
	return out
}
