package models

import "testing"

func TestCatalogLookups(t *testing.T) {
	cat := &Catalog{
		CarTypes: []*CarType{
			{ID: "suv", Name: "SUV", Enabled: true, SortOrder: 2},
			{ID: "economy", Name: "Economy", Enabled: true, SortOrder: 1},
			{ID: "vintage", Name: "Vintage", Enabled: false, SortOrder: 0},
		},
		Locations: []*Location{
			{ID: "tbilisi", Enabled: true, SortOrder: 1},
			{ID: "batumi", Enabled: false, SortOrder: 0},
		},
		Nationalities: []*FactorEntry{
			{ID: "turkish", Factor: 1.3, Enabled: true},
		},
	}

	if _, ok := cat.CarType("economy"); !ok {
		t.Error("economy not found")
	}
	if _, ok := cat.CarType("vintage"); !ok {
		t.Error("lookup must also find disabled entries, enablement is the engine's call")
	}
	if _, ok := cat.CarType("missing"); ok {
		t.Error("missing id must not resolve")
	}
	if _, ok := cat.Nationality("turkish"); !ok {
		t.Error("nationality not found")
	}
	if _, ok := cat.TourType("turkish"); ok {
		t.Error("nationality ids must not leak into tour types")
	}
}

func TestCatalogEnabledOrdering(t *testing.T) {
	cat := &Catalog{
		CarTypes: []*CarType{
			{ID: "suv", Enabled: true, SortOrder: 2},
			{ID: "economy", Enabled: true, SortOrder: 1},
			{ID: "vintage", Enabled: false, SortOrder: 0},
		},
		Locations: []*Location{
			{ID: "tbilisi", Enabled: true, SortOrder: 1},
			{ID: "batumi", Enabled: false, SortOrder: 0},
		},
	}

	cars := cat.EnabledCarTypes()
	if len(cars) != 2 || cars[0].ID != "economy" || cars[1].ID != "suv" {
		t.Errorf("unexpected car ordering: %+v", cars)
	}

	locs := cat.EnabledLocations()
	if len(locs) != 1 || locs[0].ID != "tbilisi" {
		t.Errorf("disabled locations must be filtered: %+v", locs)
	}
}
