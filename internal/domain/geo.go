package domain

import (
	"fmt"
	"math"
)

// Coordinates is a WGS84 lat/lon pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Validate checks that the pair lies on the globe.
func (c Coordinates) Validate() error {
	if math.Abs(c.Lat) > 90 {
		return fmt.Errorf("latitude %.4f out of range [-90, 90]", c.Lat)
	}
	if math.Abs(c.Lon) > 180 {
		return fmt.Errorf("longitude %.4f out of range [-180, 180]", c.Lon)
	}
	return nil
}

const earthRadiusMiles = 3958.8

// DistanceMiles returns the great-circle distance between two points.
func DistanceMiles(a, b Coordinates) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(h))
}

// Place is a named destination with resolved coordinates.
type Place struct {
	Name    string      `json:"name"`
	Address string      `json:"address,omitempty"`
	Coord   Coordinates `json:"coord"`
}
