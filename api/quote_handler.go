package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"carrent/pkg/logger"
	"carrent/pkg/models"
	"carrent/pkg/pricing"
	"carrent/service"
)

type QuoteHandler struct {
	svc service.IServiceManager
	log logger.ILogger
}

func NewQuoteHandler(svc service.IServiceManager, log logger.ILogger) *QuoteHandler {
	return &QuoteHandler{svc: svc, log: log}
}

type quoteRequestBody struct {
	CarTypeID           string `json:"car_type_id"`
	PickupLocationID    string `json:"pickup_location_id"`
	DropoffLocationID   string `json:"dropoff_location_id"`
	PickupAt            string `json:"pickup_at"`
	DropoffAt           string `json:"dropoff_at"`
	DriverNationalityID string `json:"driver_nationality_id"`
	TourTypeID          string `json:"tour_type_id"`
	PassengerCount      int    `json:"passenger_count"`
	PhoneLine           bool   `json:"phone_line"`
	TravelInsurance     bool   `json:"travel_insurance"`
}

type quoteResponse struct {
	Quote       *models.Quote `json:"quote"`
	WhatsAppURL string        `json:"whatsapp_url,omitempty"`
}

// Quote prices a booking request in strict mode: bad input gets a typed
// error code instead of a silently degraded quote.
func (h *QuoteHandler) Quote(c *gin.Context) {
	var body quoteRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "bad_json", "error": err.Error()})
		return
	}

	req := models.QuoteRequest{
		CarTypeID:           body.CarTypeID,
		PickupLocationID:    body.PickupLocationID,
		DropoffLocationID:   body.DropoffLocationID,
		DriverNationalityID: body.DriverNationalityID,
		TourTypeID:          body.TourTypeID,
		PassengerCount:      body.PassengerCount,
		PhoneLine:           body.PhoneLine,
		TravelInsurance:     body.TravelInsurance,
	}

	var ok bool
	if req.PickupAt, ok = parseTime(body.PickupAt); !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"code": "invalid_date_range", "error": "unparseable pickup_at"})
		return
	}
	if req.DropoffAt, ok = parseTime(body.DropoffAt); !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"code": "invalid_date_range", "error": "unparseable dropoff_at"})
		return
	}

	quote, link, err := h.svc.Quote().Quote(c.Request.Context(), req, pricing.ModeStrict)
	if err != nil {
		status, code := quoteErrorStatus(err)
		c.JSON(status, gin.H{"code": code, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, quoteResponse{Quote: quote, WhatsAppURL: link})
}

// Accepted timestamp layouts: RFC3339 and the datetime-local form the site's
// booking widget submits.
func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func quoteErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, pricing.ErrValidation):
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, pricing.ErrInvalidDateRange):
		return http.StatusUnprocessableEntity, "invalid_date_range"
	case errors.Is(err, pricing.ErrUnknownLocation):
		return http.StatusUnprocessableEntity, "unknown_location"
	case errors.Is(err, pricing.ErrUnknownFactorReference):
		return http.StatusUnprocessableEntity, "unknown_factor"
	case errors.Is(err, pricing.ErrCarTypeDisabled):
		return http.StatusUnprocessableEntity, "car_type_disabled"
	case errors.Is(err, pricing.ErrDurationOutOfRange):
		return http.StatusUnprocessableEntity, "duration_out_of_range"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
