// Package handler contains the echo handlers for the HTTP delivery.
package handler

import (
	"strconv"
	"strings"

	domainerrors "mutualaid/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// parseCoords parses a "longitude,latitude" query value into a point.
func parseCoords(raw string) (orb.Point, error) {
	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) != 2 {
		return orb.Point{}, domainerrors.ErrCoordinatesRequired
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, domainerrors.ErrCoordinatesRequired
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, domainerrors.ErrCoordinatesRequired
	}

	return orb.Point{lon, lat}, nil
}

// parseUUIDList parses a comma-separated list of UUIDs; blanks are
// skipped, malformed values fail the whole list.
func parseUUIDList(raw string) ([]uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := uuid.Parse(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// splitList parses a comma-separated list of plain strings.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		values = append(values, part)
	}

	return values
}
