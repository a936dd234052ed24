package pricing

import (
	"fmt"

	"carrent/pkg/models"
)

type Route struct {
	Kind          models.RouteKind
	PickupCityID  string
	DropoffCityID string
}

// Classify resolves both endpoints to their owning city and decides whether
// the trip stays within one city. Airports resolve to their parent city.
func Classify(pickupID, dropoffID string, cat *models.Catalog) (Route, error) {
	pickupCity, err := resolveCity(pickupID, cat)
	if err != nil {
		return Route{}, err
	}
	dropoffCity, err := resolveCity(dropoffID, cat)
	if err != nil {
		return Route{}, err
	}

	kind := models.RouteSameCity
	if pickupCity != dropoffCity {
		kind = models.RouteCrossCity
	}
	return Route{Kind: kind, PickupCityID: pickupCity, DropoffCityID: dropoffCity}, nil
}

func resolveCity(id string, cat *models.Catalog) (string, error) {
	loc, ok := cat.Location(id)
	if !ok || !loc.Enabled {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocation, id)
	}
	if loc.Kind != models.LocationAirport {
		return loc.ID, nil
	}
	parent, ok := cat.Location(loc.ParentCityID)
	if !ok || !parent.Enabled {
		return "", fmt.Errorf("%w: airport %q has no active parent city", ErrUnknownLocation, id)
	}
	return parent.ID, nil
}
