package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRangeOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    DateRange
		b    DateRange
		want bool
	}{
		{
			name: "disjoint ranges do not overlap",
			a:    DateRange{Start: day(1), End: day(3)},
			b:    DateRange{Start: day(5), End: day(8)},
			want: false,
		},
		{
			name: "touching endpoints do not overlap",
			a:    DateRange{Start: day(1), End: day(5)},
			b:    DateRange{Start: day(5), End: day(8)},
			want: false,
		},
		{
			name: "touching endpoints reversed order",
			a:    DateRange{Start: day(5), End: day(8)},
			b:    DateRange{Start: day(1), End: day(5)},
			want: false,
		},
		{
			name: "partial overlap",
			a:    DateRange{Start: day(1), End: day(5)},
			b:    DateRange{Start: day(3), End: day(6)},
			want: true,
		},
		{
			name: "containment",
			a:    DateRange{Start: day(1), End: day(10)},
			b:    DateRange{Start: day(3), End: day(6)},
			want: true,
		},
		{
			name: "identical ranges",
			a:    DateRange{Start: day(1), End: day(5)},
			b:    DateRange{Start: day(1), End: day(5)},
			want: true,
		},
		{
			name: "single shared night",
			a:    DateRange{Start: day(1), End: day(5)},
			b:    DateRange{Start: day(4), End: day(8)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestDateRangeIsValid(t *testing.T) {
	assert.True(t, DateRange{Start: day(1), End: day(2)}.IsValid())
	assert.False(t, DateRange{Start: day(2), End: day(2)}.IsValid(), "start == end spans no nights")
	assert.False(t, DateRange{Start: day(3), End: day(2)}.IsValid())
}

func TestDateRangeNights(t *testing.T) {
	assert.Equal(t, 1, DateRange{Start: day(1), End: day(2)}.Nights())
	assert.Equal(t, 4, DateRange{Start: day(1), End: day(5)}.Nights())
}
