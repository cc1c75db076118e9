package simulator

import (
	"math"

	"github.com/chrisdamba/transitsim/internal/models"
	"github.com/golang/geo/s2"
)

const earthRadiusKm = 6371.0

// HaversineDistance returns the great-circle distance between two points in kilometres.
func HaversineDistance(loc1, loc2 models.Location) float64 {
	lat1 := degreesToRadians(loc1.Lat)
	lon1 := degreesToRadians(loc1.Lon)
	lat2 := degreesToRadians(loc2.Lat)
	lon2 := degreesToRadians(loc2.Lon)

	dlat := lat2 - lat1
	dlon := lon2 - lon1
	sinLat := math.Sin(dlat / 2)
	sinLon := math.Sin(dlon / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// InitialBearing returns the forward azimuth from loc1 to loc2 in degrees,
// where 0 is north and 90 is east.
func InitialBearing(loc1, loc2 models.Location) float64 {
	p1, p2 := loc1.LatLng(), loc2.LatLng()
	lat1 := p1.Lat.Radians()
	lat2 := p2.Lat.Radians()
	lonDiff := p2.Lng.Radians() - p1.Lng.Radians()

	y := math.Sin(lonDiff) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(lonDiff)
	bearingDeg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(bearingDeg+360, 360)
}

// Midpoint returns the point halfway along the great circle between loc1 and loc2.
func Midpoint(loc1, loc2 models.Location) models.Location {
	mid := s2.Interpolate(0.5, s2.PointFromLatLng(loc1.LatLng()), s2.PointFromLatLng(loc2.LatLng()))
	ll := s2.LatLngFromPoint(mid)
	return models.Location{Lat: ll.Lat.Degrees(), Lon: ll.Lng.Degrees()}
}

// ZoneClassifier marks points within RadiusKm of Center as urban.
type ZoneClassifier struct {
	Center   models.Location
	RadiusKm float64
}

func NewZoneClassifier(config *models.Config) ZoneClassifier {
	return ZoneClassifier{Center: config.CityCenter(), RadiusKm: config.UrbanRadius}
}

// Classify is inclusive on the urban side of the boundary.
func (z ZoneClassifier) Classify(loc models.Location) models.Zone {
	if HaversineDistance(loc, z.Center) <= z.RadiusKm {
		return models.ZoneUrban
	}
	return models.ZoneRural
}

// ClassifyPeriod returns peak for 06:00-09:59 and 16:00-21:59 departures.
func ClassifyPeriod(hour int) models.Period {
	if (hour >= 6 && hour <= 9) || (hour >= 16 && hour <= 21) {
		return models.PeriodPeak
	}
	return models.PeriodOffPeak
}
