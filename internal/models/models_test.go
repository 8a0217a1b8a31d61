package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, r := range Roles {
		got, err := ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := ParseRole("superuser")
	assert.Error(t, err)
}

func TestParseJobType(t *testing.T) {
	got, err := ParseJobType("Volunteer")
	require.NoError(t, err)
	assert.Equal(t, JobVolunteer, got)

	_, err = ParseJobType("Contract")
	assert.Error(t, err)
}

func TestParseGeoPoint(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng string
		want     *GeoPoint
	}{
		{name: "valid", lat: "13.58", lng: "44.02", want: &GeoPoint{Lat: 13.58, Lng: 44.02}},
		{name: "missing", lat: "", lng: "", want: nil},
		{name: "half missing", lat: "13.58", lng: "", want: nil},
		{name: "garbage", lat: "north", lng: "44", want: nil},
		{name: "out of range", lat: "120", lng: "44", want: nil},
		{name: "NaN latitude", lat: "NaN", lng: "44", want: nil},
		{name: "NaN both", lat: "NaN", lng: "nan", want: nil},
		{name: "infinite longitude", lat: "13.58", lng: "Inf", want: nil},
		{name: "negative infinity", lat: "-Inf", lng: "44", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGeoPoint(tt.lat, tt.lng))
		})
	}
}

func TestIconGlyphCoversEveryIcon(t *testing.T) {
	for i := IconSearch; i <= IconAlert; i++ {
		assert.NotEmpty(t, i.Glyph())
	}
	assert.Panics(t, func() { _ = Icon(99).Glyph() })
}
