package pricing

import (
	"errors"
	"testing"

	"carrent/pkg/models"
)

func routeCatalog() *models.Catalog {
	return &models.Catalog{
		Locations: []*models.Location{
			{ID: "tbilisi", Name: "Tbilisi", Kind: models.LocationCity, PriceFactor: 0.5, Enabled: true},
			{ID: "batumi", Name: "Batumi", Kind: models.LocationCity, PriceFactor: 0.6, Enabled: true},
			{ID: "tbs-airport", Name: "Tbilisi Airport", Kind: models.LocationAirport, ParentCityID: "tbilisi", PriceFactor: 0.55, Enabled: true},
			{ID: "bus-airport", Name: "Batumi Airport", Kind: models.LocationAirport, ParentCityID: "batumi", PriceFactor: 0.65, Enabled: true},
			{ID: "kutaisi", Name: "Kutaisi", Kind: models.LocationCity, PriceFactor: 0.6, Enabled: false},
			{ID: "orphan-airport", Name: "Orphan", Kind: models.LocationAirport, ParentCityID: "kutaisi", PriceFactor: 0.6, Enabled: true},
		},
	}
}

func TestClassify(t *testing.T) {
	cat := routeCatalog()

	tests := []struct {
		name    string
		pickup  string
		dropoff string
		want    models.RouteKind
	}{
		{"city to itself", "tbilisi", "tbilisi", models.RouteSameCity},
		{"city to own airport", "tbilisi", "tbs-airport", models.RouteSameCity},
		{"airport to airport same city", "tbs-airport", "tbs-airport", models.RouteSameCity},
		{"city to other city", "tbilisi", "batumi", models.RouteCrossCity},
		{"city to foreign airport", "tbilisi", "bus-airport", models.RouteCrossCity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.pickup, tt.dropoff, cat)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got.Kind != tt.want {
				t.Errorf("Classify() = %s, want %s", got.Kind, tt.want)
			}

			// Same-city classification is symmetric.
			rev, err := Classify(tt.dropoff, tt.pickup, cat)
			if err != nil {
				t.Fatalf("Classify() reversed error = %v", err)
			}
			if rev.Kind != got.Kind {
				t.Errorf("route kind not symmetric: %s vs %s", got.Kind, rev.Kind)
			}
		})
	}
}

func TestClassify_UnknownLocation(t *testing.T) {
	cat := routeCatalog()

	cases := map[string][2]string{
		"missing id":                 {"nowhere", "tbilisi"},
		"disabled city":              {"kutaisi", "tbilisi"},
		"airport with disabled city": {"orphan-airport", "tbilisi"},
	}
	for name, pair := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Classify(pair[0], pair[1], cat)
			if !errors.Is(err, ErrUnknownLocation) {
				t.Errorf("expected ErrUnknownLocation, got %v", err)
			}
		})
	}
}
