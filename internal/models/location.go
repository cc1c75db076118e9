package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"
)

// Location is a geographic coordinate in degrees.
type Location struct {
	Lat float64 `json:"lat" parquet:"name=lat,type=DOUBLE"`
	Lon float64 `json:"lon" parquet:"name=lon,type=DOUBLE"`
}

// Validate rejects coordinates outside [-90,90] x [-180,180] or not a number.
func (l Location) Validate() error {
	if math.IsNaN(l.Lat) || l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinate, l.Lat)
	}
	if math.IsNaN(l.Lon) || l.Lon < -180 || l.Lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinate, l.Lon)
	}
	return nil
}

func (l Location) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(l.Lat, l.Lon)
}

func (l Location) String() string {
	return fmt.Sprintf("%.6f,%.6f", l.Lat, l.Lon)
}

// ParseLocation reads a "lat,lon" pair such as "3.848,11.502".
func ParseLocation(value string) (Location, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return Location{}, fmt.Errorf("%w: expected \"lat,lon\", got %q", ErrInvalidCoordinate, value)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: latitude %q: %v", ErrInvalidCoordinate, parts[0], err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: longitude %q: %v", ErrInvalidCoordinate, parts[1], err)
	}
	loc := Location{Lat: lat, Lon: lon}
	if err := loc.Validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}
