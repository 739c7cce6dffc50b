package geo_test

import (
	"testing"

	"github.com/katalvlaran/lvkit/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRouteErrors rejects empty input and a bad start.
func TestRouteErrors(t *testing.T) {
	_, err := geo.Route(nil, geo.RouteOptions{})
	assert.ErrorIs(t, err, geo.ErrNoPoints)
	_, err = geo.Route([]geo.LatLong{london}, geo.RouteOptions{Start: 1})
	assert.ErrorIs(t, err, geo.ErrStart)

	one, err := geo.Route([]geo.LatLong{london}, geo.RouteOptions{Closed: true})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, one.Order)
	assert.Zero(t, one.Length.Metres())
}

// TestRouteLine visits points on the equator in order.
func TestRouteLine(t *testing.T) {
	pts := []geo.LatLong{
		geo.MustLatLong(0, 0),
		geo.MustLatLong(0, 3),
		geo.MustLatLong(0, 1),
		geo.MustLatLong(0, 2),
	}
	tour, err := geo.Route(pts, geo.RouteOptions{})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 1}, tour.Order)
	want := geo.Haversine(pts[0], pts[1]).Metres()
	assert.InDelta(t, want, tour.Length.Metres(), 1e-6)
}

// TestRouteUncrosses improves a greedy closed tour with 2-opt.
func TestRouteUncrosses(t *testing.T) {
	pts := []geo.LatLong{
		geo.MustLatLong(1, 4),
		geo.MustLatLong(4, 1),
		geo.MustLatLong(2, 4),
		geo.MustLatLong(3, 4),
		geo.MustLatLong(0, 4),
	}
	tour, err := geo.Route(pts, geo.RouteOptions{Closed: true})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 1, 3, 2}, tour.Order)
	assert.InDelta(t, 1240433.26, tour.Length.Metres(), 1)

	// No moves leaves the nearest-neighbour seed.
	seed, err := geo.Route(pts, geo.RouteOptions{Closed: true, Eps: 1e9})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 4, 1}, seed.Order)
	assert.Greater(t, seed.Length.Metres(), tour.Length.Metres())
}
