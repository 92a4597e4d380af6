package bins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm(t *testing.T) {
	assert.InDelta(t, 0, DistanceKm(53.2835, 69.3969, 53.2835, 69.3969), 1e-9)

	// one degree of latitude is ~111.2 km
	assert.InDelta(t, 111.19, DistanceKm(0, 0, 1, 0), 0.05)

	d1 := DistanceKm(53.2835, 69.3969, 53.2940, 69.4048)
	d2 := DistanceKm(53.2940, 69.4048, 53.2835, 69.3969)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     Location
	}{
		{"exactly on first", 53.2835, 69.3969, DefaultLocations[0]},
		{"west of town", 53.2820, 69.3800, DefaultLocations[1]},
		{"north east", 53.3000, 69.4100, DefaultLocations[2]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, km, err := Nearest(DefaultLocations, tt.lat, tt.lon)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, km, 0.0)
		})
	}
}

func TestNearest_Empty(t *testing.T) {
	_, _, err := Nearest(nil, 0, 0)
	require.ErrorIs(t, err, ErrNoLocations)
}

func TestNearest_TieKeepsFirst(t *testing.T) {
	a := Location{Lat: 0, Lon: 1, Icon: "a"}
	b := Location{Lat: 0, Lon: -1, Icon: "b"}
	got, _, err := Nearest([]Location{a, b}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Icon)
}

func TestCenter(t *testing.T) {
	lat, lon := Center()
	assert.Equal(t, 53.2835, lat)
	assert.Equal(t, 69.3969, lon)
}
