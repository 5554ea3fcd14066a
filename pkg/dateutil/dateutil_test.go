package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDisplay(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   time.Time
		loc  *time.Location
		want string
	}{
		{
			name: "UTC morning converted to New York",
			in:   time.Date(2024, 3, 5, 13, 30, 0, 0, time.UTC),
			loc:  ny,
			want: "Mar 05 2024 at 08:30 AM",
		},
		{
			name: "afternoon keeps PM marker",
			in:   time.Date(2024, 12, 25, 18, 5, 0, 0, time.UTC),
			loc:  time.UTC,
			want: "Dec 25 2024 at 06:05 PM",
		},
		{
			name: "midnight renders as 12 AM",
			in:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			loc:  time.UTC,
			want: "Jan 01 2024 at 12:00 AM",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDisplay(tt.in, tt.loc))
		})
	}
}

func TestFormatDisplayNormalizesZones(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// The same instant expressed in two source zones.
	utc := time.Date(2024, 3, 5, 13, 30, 0, 0, time.UTC)
	plusFive := utc.In(time.FixedZone("UTC+5", 5*3600))
	assert.Equal(t, FormatDisplay(utc, ny), FormatDisplay(plusFive, ny))
}

func TestParseInLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{
			name: "RFC3339 keeps embedded zone",
			in:   "2024-03-05T13:30:00Z",
			want: time.Date(2024, 3, 5, 13, 30, 0, 0, time.UTC),
		},
		{
			name: "RFC3339 with offset",
			in:   "2024-03-05T08:30:00-05:00",
			want: time.Date(2024, 3, 5, 8, 30, 0, 0, time.FixedZone("", -5*3600)),
		},
		{
			name: "naive date-time is wall clock in loc",
			in:   "2024-03-05 13:30:00",
			want: time.Date(2024, 3, 5, 13, 30, 0, 0, ny),
		},
		{
			name: "bare date",
			in:   "2024-03-05",
			want: time.Date(2024, 3, 5, 0, 0, 0, 0, ny),
		},
		{
			name:    "garbage",
			in:      "yesterday-ish",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInLocation(tt.in, ny)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseInLocationPreservesWallClock(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	got, err := ParseInLocation("2024-03-05 13:30:00", ny)
	require.NoError(t, err)
	assert.Equal(t, "Mar 05 2024 at 01:30 PM", FormatDisplay(got, ny))
}
