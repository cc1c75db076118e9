package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationValidate(t *testing.T) {
	valid := []Location{
		{Lat: 3.848, Lon: 11.502},
		{Lat: 90, Lon: 180},
		{Lat: -90, Lon: -180},
	}
	for _, loc := range valid {
		assert.NoError(t, loc.Validate(), loc.String())
	}

	invalid := []Location{
		{Lat: 90.0001, Lon: 0},
		{Lat: 0, Lon: -180.5},
		{Lat: math.NaN(), Lon: 0},
		{Lat: 0, Lon: math.NaN()},
	}
	for _, loc := range invalid {
		assert.ErrorIs(t, loc.Validate(), ErrInvalidCoordinate, loc.String())
	}
}

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation(" 3.848, 11.5021 ")
	require.NoError(t, err)
	assert.Equal(t, Location{Lat: 3.848, Lon: 11.5021}, loc)

	for _, value := range []string{"", "3.848", "a,b", "3.8,11.5,2", "91,0"} {
		_, err := ParseLocation(value)
		assert.ErrorIs(t, err, ErrInvalidCoordinate, value)
	}
}

func TestLocationLatLng(t *testing.T) {
	ll := Location{Lat: 3.848, Lon: 11.502}.LatLng()
	assert.InDelta(t, 3.848, ll.Lat.Degrees(), 1e-12)
	assert.InDelta(t, 11.502, ll.Lng.Degrees(), 1e-12)
}
