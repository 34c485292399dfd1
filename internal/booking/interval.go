package booking

import "time"

// DateRange is a half-open interval [Start, End): Start is included, End is not.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsValid reports whether the range spans at least one night.
func (r DateRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Overlaps reports whether two half-open ranges share at least one night.
// [s1,e1) and [s2,e2) intersect iff s1 < e2 AND s2 < e1, so ranges that
// merely touch at an endpoint do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Nights returns the number of occupied nights.
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}
