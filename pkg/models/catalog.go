package models

import (
	"sort"
	"time"
)

type LocationKind string

const (
	LocationCity    LocationKind = "city"
	LocationAirport LocationKind = "airport"
)

type Location struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Kind        LocationKind `json:"kind"`
	PriceFactor float64      `json:"price_factor"`
	// For airports, the city the airport belongs to. Empty for cities.
	ParentCityID string    `json:"parent_city_id,omitempty"`
	Enabled      bool      `json:"enabled"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type PricingMode string

const (
	// Daily rate multiplied by location/nationality/tour factors.
	PricingDaily PricingMode = "daily"
	// Fixed reception/departure transfer fees plus a tour daily rate.
	PricingFlatTransfer PricingMode = "flat_transfer"
)

type TransferLeg struct {
	Reception float64 `json:"reception"`
	Departure float64 `json:"departure"`
}

type AirportTransferFees struct {
	SameCity      TransferLeg `json:"same_city"`
	DifferentCity TransferLeg `json:"different_city"`
}

type CarType struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Enabled      bool                 `json:"enabled"`
	SortOrder    int                  `json:"sort_order"`
	Mode         PricingMode          `json:"mode"`
	DailyPrice   float64              `json:"daily_price"`
	TransferFees *AirportTransferFees `json:"transfer_fees,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

// FactorEntry is a multiplicative price adjustment, 1.0 means no adjustment.
// Used for both driver nationalities and tour types.
type FactorEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Factor    float64   `json:"factor"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingSettings struct {
	CurrencySymbol         string  `json:"currency_symbol"`
	MinBookingDays         int     `json:"min_booking_days"`
	MaxBookingDays         int     `json:"max_booking_days"`
	MandatoryTourCrossCity bool    `json:"mandatory_tour_cross_city"`
	WhatsAppNumber         string  `json:"whatsapp_number"`
	ConfirmationMessage    string  `json:"confirmation_message"`
	PhoneLineRate          float64 `json:"phone_line_rate"`
	InsuranceDailyRate     float64 `json:"insurance_daily_rate"`
}

// Catalog is an immutable snapshot of the CMS content. A snapshot is built
// once per request path and never mutated afterwards, so concurrent quote
// computations can share it without locking.
type Catalog struct {
	CarTypes      []*CarType      `json:"car_types"`
	Locations     []*Location     `json:"locations"`
	Nationalities []*FactorEntry  `json:"nationalities"`
	TourTypes     []*FactorEntry  `json:"tour_types"`
	Settings      BookingSettings `json:"settings"`
}

func (c *Catalog) CarType(id string) (*CarType, bool) {
	for _, ct := range c.CarTypes {
		if ct.ID == id {
			return ct, true
		}
	}
	return nil, false
}

func (c *Catalog) Location(id string) (*Location, bool) {
	for _, l := range c.Locations {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}

func (c *Catalog) Nationality(id string) (*FactorEntry, bool) {
	return findFactor(c.Nationalities, id)
}

func (c *Catalog) TourType(id string) (*FactorEntry, bool) {
	return findFactor(c.TourTypes, id)
}

func findFactor(entries []*FactorEntry, id string) (*FactorEntry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// EnabledCarTypes returns bookable car types in display order.
func (c *Catalog) EnabledCarTypes() []*CarType {
	var out []*CarType
	for _, ct := range c.CarTypes {
		if ct.Enabled {
			out = append(out, ct)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// EnabledLocations returns selectable locations in display order.
func (c *Catalog) EnabledLocations() []*Location {
	var out []*Location
	for _, l := range c.Locations {
		if l.Enabled {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// EnabledFactors filters a factor list keeping catalog order.
func EnabledFactors(entries []*FactorEntry) []*FactorEntry {
	var out []*FactorEntry
	for _, e := range entries {
		if e.Enabled {
			out = append(out, e)
		}
	}
	return out
}
