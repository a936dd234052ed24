package models

import "time"

type RouteKind string

const (
	RouteSameCity  RouteKind = "same_city"
	RouteCrossCity RouteKind = "cross_city"
)

// QuoteRequest is the caller-supplied booking draft. It is constructed per
// price request and discarded after use, nothing persists it.
type QuoteRequest struct {
	CarTypeID           string    `json:"car_type_id"`
	PickupLocationID    string    `json:"pickup_location_id"`
	DropoffLocationID   string    `json:"dropoff_location_id"`
	PickupAt            time.Time `json:"pickup_at"`
	DropoffAt           time.Time `json:"dropoff_at"`
	DriverNationalityID string    `json:"driver_nationality_id,omitempty"`
	TourTypeID          string    `json:"tour_type_id,omitempty"`
	PassengerCount      int       `json:"passenger_count"`
	PhoneLine           bool      `json:"phone_line"`
	TravelInsurance     bool      `json:"travel_insurance"`
}

type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type AppliedFactor struct {
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
}

type Quote struct {
	TotalDays      int             `json:"total_days"`
	RouteKind      RouteKind       `json:"route_kind,omitempty"`
	LineItems      []LineItem      `json:"line_items,omitempty"`
	AppliedFactors []AppliedFactor `json:"applied_factors,omitempty"`
	TotalPrice     int64           `json:"total_price"`
	CurrencySymbol string          `json:"currency_symbol"`
	Notes          []string        `json:"notes,omitempty"`
	// Degraded marks a zero-priced placeholder produced in lenient mode.
	Degraded bool `json:"degraded,omitempty"`
}
