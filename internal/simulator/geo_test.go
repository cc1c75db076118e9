package simulator

import (
	"math"
	"testing"

	"github.com/chrisdamba/transitsim/internal/models"
	"github.com/stretchr/testify/assert"
)

var (
	etoaMeki = models.Location{Lat: 3.848, Lon: 11.5021}
	olembe   = models.Location{Lat: 3.868, Lon: 11.5221}
	cityHub  = models.Location{Lat: 3.848, Lon: 11.502}
)

// northOf returns the point km kilometres due north of loc.
func northOf(loc models.Location, km float64) models.Location {
	return models.Location{Lat: loc.Lat + km/earthRadiusKm*180/math.Pi, Lon: loc.Lon}
}

func TestHaversineDistance(t *testing.T) {
	assert.Zero(t, HaversineDistance(etoaMeki, etoaMeki))
	assert.InDelta(t, 3.1415, HaversineDistance(etoaMeki, olembe), 0.001)
	assert.Equal(t, HaversineDistance(etoaMeki, olembe), HaversineDistance(olembe, etoaMeki))

	// one degree of latitude
	assert.InDelta(t, 111.195, HaversineDistance(models.Location{}, models.Location{Lat: 1}), 0.001)
	assert.InDelta(t, 25.0, HaversineDistance(cityHub, northOf(cityHub, 25)), 1e-9)
}

func TestZoneClassifier(t *testing.T) {
	zones := ZoneClassifier{Center: cityHub, RadiusKm: 25}

	assert.Equal(t, models.ZoneUrban, zones.Classify(cityHub))
	assert.Equal(t, models.ZoneUrban, zones.Classify(northOf(cityHub, 24.999)))
	assert.Equal(t, models.ZoneRural, zones.Classify(northOf(cityHub, 25.001)))

	// the boundary itself is urban
	edge := models.Location{Lat: 3.9, Lon: 11.6}
	onBoundary := ZoneClassifier{Center: cityHub, RadiusKm: HaversineDistance(edge, cityHub)}
	assert.Equal(t, models.ZoneUrban, onBoundary.Classify(edge))
}

func TestNewZoneClassifier(t *testing.T) {
	zones := NewZoneClassifier(models.DefaultConfig())
	assert.Equal(t, cityHub, zones.Center)
	assert.Equal(t, 25.0, zones.RadiusKm)
}

func TestClassifyPeriod(t *testing.T) {
	peak := []int{6, 7, 8, 9, 16, 17, 18, 19, 20, 21}
	offPeak := []int{0, 1, 5, 10, 12, 15, 22, 23}

	for _, hour := range peak {
		assert.Equal(t, models.PeriodPeak, ClassifyPeriod(hour), "hour %d", hour)
	}
	for _, hour := range offPeak {
		assert.Equal(t, models.PeriodOffPeak, ClassifyPeriod(hour), "hour %d", hour)
	}
}

func TestInitialBearing(t *testing.T) {
	origin := models.Location{}
	assert.InDelta(t, 0, InitialBearing(origin, models.Location{Lat: 1}), 1e-9)
	assert.InDelta(t, 90, InitialBearing(origin, models.Location{Lon: 1}), 1e-9)
	assert.InDelta(t, 180, InitialBearing(origin, models.Location{Lat: -1}), 1e-9)
	assert.InDelta(t, 270, InitialBearing(origin, models.Location{Lon: -1}), 1e-9)
}

func TestMidpoint(t *testing.T) {
	mid := Midpoint(models.Location{Lat: 0, Lon: 0}, models.Location{Lat: 0, Lon: 10})
	assert.InDelta(t, 0, mid.Lat, 1e-9)
	assert.InDelta(t, 5, mid.Lon, 1e-9)

	mid = Midpoint(etoaMeki, olembe)
	assert.InDelta(t, HaversineDistance(etoaMeki, mid), HaversineDistance(mid, olembe), 1e-6)
}
