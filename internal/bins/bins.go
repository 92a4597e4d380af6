// Package bins holds the eco-bin locations shown on the Map screen.
package bins

import (
	"errors"
	"math"
)

const DefaultIcon = "cache/eco_bin_icon.jpg"

const earthRadiusKm = 6371.0

var ErrNoLocations = errors.New("no bin locations")

// Location is a single bin marker.
type Location struct {
	Lat  float64
	Lon  float64
	Icon string
}

// DefaultLocations are the bins around the city centre the map opens on.
var DefaultLocations = []Location{
	{Lat: 53.2835, Lon: 69.3969, Icon: DefaultIcon},
	{Lat: 53.2821, Lon: 69.3897, Icon: DefaultIcon},
	{Lat: 53.2940, Lon: 69.4048, Icon: DefaultIcon},
}

// Center is where the map is positioned on open.
func Center() (lat, lon float64) {
	return DefaultLocations[0].Lat, DefaultLocations[0].Lon
}

// DistanceKm is the great-circle distance between two points.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	φ1, φ2 := radians(lat1), radians(lat2)
	dφ := radians(lat2 - lat1)
	dλ := radians(lon2 - lon1)

	a := math.Sin(dφ/2)*math.Sin(dφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(dλ/2)*math.Sin(dλ/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}

// Nearest returns the closest of locs to (lat, lon) and its distance in km.
// Earlier entries win on equal distance.
func Nearest(locs []Location, lat, lon float64) (Location, float64, error) {
	if len(locs) == 0 {
		return Location{}, 0, ErrNoLocations
	}
	best := locs[0]
	bestKm := DistanceKm(lat, lon, best.Lat, best.Lon)
	for _, l := range locs[1:] {
		if d := DistanceKm(lat, lon, l.Lat, l.Lon); d < bestKm {
			best, bestKm = l, d
		}
	}
	return best, bestKm, nil
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
