package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOneMonthAgo(t *testing.T) {
	cases := []struct {
		now  time.Time
		want time.Time
	}{
		{
			now:  time.Date(2024, time.May, 15, 13, 45, 0, 0, time.UTC),
			want: time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			now:  time.Date(2024, time.January, 10, 0, 0, 1, 0, time.UTC),
			want: time.Date(2023, time.December, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			now:  time.Date(2023, time.March, 31, 8, 0, 0, 0, time.UTC),
			want: time.Date(2023, time.March, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			now:  time.Date(2024, time.May, 15, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600)).UTC(),
			want: time.Date(2024, time.April, 16, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, c := range cases {
		require.Equal(t, c.want, OneMonthAgo(c.now), c.now.String())
	}
}

func TestStubClock(t *testing.T) {
	clock := NewStubClock()
	start := clock.NowUtc()
	require.Equal(t, start, clock.NowUtc())

	later := clock.Advance(time.Hour)
	require.Equal(t, start.Add(time.Hour), later)
	require.Equal(t, later, clock.NowUtc())

	fixed := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.FixedZone("x", 3600))
	clock.SetNow(fixed)
	require.Equal(t, time.UTC, clock.NowUtc().Location())
	require.True(t, fixed.Equal(clock.NowUtc()))
}
