// Package whatsapp builds the wa.me handoff link that ends every booking
// flow. There is no booking persistence: the rendered message is the booking.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"carrent/pkg/models"
)

// Compose renders the confirmation text sent to the rental office: the
// catalog's configured greeting followed by the quote summary.
func Compose(cat *models.Catalog, req models.QuoteRequest, q models.Quote) string {
	var b strings.Builder

	if msg := strings.TrimSpace(cat.Settings.ConfirmationMessage); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n\n")
	}

	if car, ok := cat.CarType(req.CarTypeID); ok {
		fmt.Fprintf(&b, "Car: %s\n", car.Name)
	}
	fmt.Fprintf(&b, "Route: %s -> %s\n", locationName(cat, req.PickupLocationID), locationName(cat, req.DropoffLocationID))
	if !req.PickupAt.IsZero() && !req.DropoffAt.IsZero() {
		fmt.Fprintf(&b, "Dates: %s - %s (%d day(s))\n",
			req.PickupAt.Format("02 Jan 2006 15:04"),
			req.DropoffAt.Format("02 Jan 2006 15:04"),
			q.TotalDays)
	}
	fmt.Fprintf(&b, "Passengers: %d\n", max(req.PassengerCount, 1))
	for _, item := range q.LineItems {
		fmt.Fprintf(&b, "- %s: %s%.0f\n", item.Label, q.CurrencySymbol, item.Amount)
	}
	fmt.Fprintf(&b, "Total: %s%d", q.CurrencySymbol, q.TotalPrice)
	for _, note := range q.Notes {
		fmt.Fprintf(&b, "\n%s", note)
	}
	return b.String()
}

// Link builds a https://wa.me deep link for the given number and text.
// The number keeps digits only, wa.me rejects anything else.
func Link(number, text string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(text)
}

func locationName(cat *models.Catalog, id string) string {
	if loc, ok := cat.Location(id); ok {
		return loc.Name
	}
	return id
}
