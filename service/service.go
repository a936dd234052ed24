package service

import (
	"carrent/pkg/logger"
	"carrent/pkg/pricing"
	"carrent/storage"
)

type IServiceManager interface {
	Catalog() CatalogService
	Quote() QuoteService
}

type service struct {
	catalogService CatalogService
	quoteService   QuoteService
}

func New(stg storage.IStorage, cache storage.ICatalogCache, policy pricing.DayCountPolicy, log logger.ILogger) IServiceManager {
	catalog := NewCatalogService(stg, cache, log)
	return &service{
		catalogService: catalog,
		quoteService:   NewQuoteService(catalog, policy, log),
	}
}

func (s *service) Catalog() CatalogService {
	return s.catalogService
}

func (s *service) Quote() QuoteService {
	return s.quoteService
}
