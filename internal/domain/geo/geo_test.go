package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference coordinates in (lon, lat) order.
var (
	newYork    = orb.Point{-73.935242, 40.730610}
	losAngeles = orb.Point{-118.243683, 34.052235}
)

func TestDistance_KnownVector(t *testing.T) {
	// New York to Los Angeles, great-circle.
	distance := Distance(newYork, losAngeles)
	assert.InDelta(t, 3941.57, distance, 0.1)
}

func TestDistance_Symmetry(t *testing.T) {
	assert.Equal(t, Distance(newYork, losAngeles), Distance(losAngeles, newYork))
}

func TestDistance_Identity(t *testing.T) {
	assert.Zero(t, Distance(newYork, newYork))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(orb.Point{0, 0}))
	assert.True(t, IsValid(orb.Point{-180, -90}))
	assert.True(t, IsValid(orb.Point{180, 90}))

	assert.False(t, IsValid(orb.Point{181, 0}))
	assert.False(t, IsValid(orb.Point{0, 91}))
	assert.False(t, IsValid(orb.Point{-181, 0}))
	assert.False(t, IsValid(orb.Point{0, -91}))
}

type located struct {
	name  string
	point *orb.Point
}

func (l located) Coordinate() (orb.Point, bool) {
	if l.point == nil {
		return orb.Point{}, false
	}

	return *l.point, true
}

func pointAt(lon, lat float64) *orb.Point {
	p := orb.Point{lon, lat}

	return &p
}

func TestRank_OrdersByDistanceAscending(t *testing.T) {
	ref := orb.Point{0, 0}
	pool := []located{
		{name: "far", point: pointAt(0, 5)},
		{name: "near", point: pointAt(0, 1)},
		{name: "mid", point: pointAt(0, 3)},
	}

	ranked := Rank(ref, pool)
	require.Len(t, ranked, 3)
	assert.Equal(t, "near", ranked[0].Item.name)
	assert.Equal(t, "mid", ranked[1].Item.name)
	assert.Equal(t, "far", ranked[2].Item.name)
	assert.Less(t, ranked[0].DistanceKm, ranked[1].DistanceKm)
	assert.Less(t, ranked[1].DistanceKm, ranked[2].DistanceKm)
}

func TestRank_TiesKeepPoolOrder(t *testing.T) {
	ref := orb.Point{0, 0}
	pool := []located{
		{name: "first", point: pointAt(0, 2)},
		{name: "second", point: pointAt(0, 2)},
	}

	ranked := Rank(ref, pool)
	require.Len(t, ranked, 2)
	assert.Equal(t, "first", ranked[0].Item.name)
	assert.Equal(t, "second", ranked[1].Item.name)
}

func TestRank_DropsUnlocatedItems(t *testing.T) {
	ref := orb.Point{0, 0}
	pool := []located{
		{name: "nowhere"},
		{name: "somewhere", point: pointAt(1, 1)},
	}

	ranked := Rank(ref, pool)
	require.Len(t, ranked, 1)
	assert.Equal(t, "somewhere", ranked[0].Item.name)
}

func TestRank_EmptyPool(t *testing.T) {
	assert.Empty(t, Rank(orb.Point{0, 0}, []located{}))
}
