package service

import (
	"context"

	"carrent/pkg/logger"
	"carrent/pkg/models"
	"carrent/pkg/pricing"
	"carrent/pkg/whatsapp"
)

type QuoteService interface {
	// Quote prices a booking draft. The WhatsApp handoff link is empty when
	// the quote is degraded or no number is configured.
	Quote(ctx context.Context, req models.QuoteRequest, mode pricing.Mode) (*models.Quote, string, error)
}

type quoteService struct {
	catalog CatalogService
	policy  pricing.DayCountPolicy
	log     logger.ILogger
}

func NewQuoteService(catalog CatalogService, policy pricing.DayCountPolicy, log logger.ILogger) QuoteService {
	return &quoteService{catalog: catalog, policy: policy, log: log}
}

func (s *quoteService) Quote(ctx context.Context, req models.QuoteRequest, mode pricing.Mode) (*models.Quote, string, error) {
	cat, err := s.catalog.Snapshot(ctx)
	if err != nil {
		s.log.Error("catalog snapshot unavailable", logger.Error(err))
		return nil, "", err
	}

	engine := pricing.New(mode, s.policy)
	quote, err := engine.Price(req, cat)
	if err != nil {
		return nil, "", err
	}

	link := ""
	if !quote.Degraded && cat.Settings.WhatsAppNumber != "" {
		link = whatsapp.Link(cat.Settings.WhatsAppNumber, whatsapp.Compose(cat, req, quote))
	}
	return &quote, link, nil
}
