package postgres

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// toPoint rebuilds an optional coordinate from its column pair.
func toPoint(longitude, latitude *float64) *orb.Point {
	if longitude == nil || latitude == nil {
		return nil
	}

	point := orb.Point{*longitude, *latitude}

	return &point
}

// fromPoint flattens an optional coordinate into its column pair.
func fromPoint(point *orb.Point) (longitude, latitude *float64) {
	if point == nil {
		return nil, nil
	}

	lon, lat := point.Lon(), point.Lat()

	return &lon, &lat
}

// uuidStrings renders IDs for jsonb membership queries.
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}
