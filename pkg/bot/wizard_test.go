package bot

import (
	"strings"
	"testing"

	"carrent/pkg/models"
)

func TestFormatQuote(t *testing.T) {
	q := &models.Quote{
		TotalDays:      2,
		TotalPrice:     110,
		CurrencySymbol: "$",
		LineItems:      []models.LineItem{{Label: "Economy, 2 day(s)", Amount: 100}},
		AppliedFactors: []models.AppliedFactor{{Label: "route", Factor: 1.1}},
		Notes:          []string{"cross-city route: tbilisi to batumi"},
	}

	text := formatQuote(q)

	for _, want := range []string{"$110", "2 day(s)", "Economy", "route: 1.10", "cross-city"} {
		if !strings.Contains(text, want) {
			t.Errorf("formatted quote missing %q:\n%s", want, text)
		}
	}
}

func TestFormatQuote_Degraded(t *testing.T) {
	q := &models.Quote{
		Degraded:       true,
		CurrencySymbol: "$",
		Notes:          []string{"select all required fields"},
	}

	text := formatQuote(q)

	if strings.Contains(text, "$0") {
		t.Errorf("degraded quote must not show a zero price:\n%s", text)
	}
	if !strings.Contains(text, "select all required fields") {
		t.Errorf("degraded quote must carry the hint:\n%s", text)
	}
}
