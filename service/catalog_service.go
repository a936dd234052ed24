package service

import (
	"context"

	"github.com/google/uuid"

	"carrent/pkg/logger"
	"carrent/pkg/models"
	"carrent/storage"
)

type CatalogService interface {
	// Snapshot returns an immutable catalog snapshot, served from the cache
	// when possible. Callers must not mutate it.
	Snapshot(ctx context.Context) (*models.Catalog, error)

	SaveCarType(ctx context.Context, ct *models.CarType) (*models.CarType, error)
	SetCarTypeEnabled(ctx context.Context, id string, enabled bool) error
	DeleteCarType(ctx context.Context, id string) error

	SaveLocation(ctx context.Context, l *models.Location) (*models.Location, error)
	DeleteLocation(ctx context.Context, id string) error

	SaveNationality(ctx context.Context, f *models.FactorEntry) (*models.FactorEntry, error)
	DeleteNationality(ctx context.Context, id string) error
	SaveTourType(ctx context.Context, f *models.FactorEntry) (*models.FactorEntry, error)
	DeleteTourType(ctx context.Context, id string) error

	UpdateSettings(ctx context.Context, s *models.BookingSettings) error
}

type catalogService struct {
	stg   storage.IStorage
	cache storage.ICatalogCache
	log   logger.ILogger
}

func NewCatalogService(stg storage.IStorage, cache storage.ICatalogCache, log logger.ILogger) CatalogService {
	return &catalogService{stg: stg, cache: cache, log: log}
}

func (s *catalogService) Snapshot(ctx context.Context) (*models.Catalog, error) {
	if cat, err := s.cache.GetSnapshot(ctx); err == nil && cat != nil {
		return cat, nil
	} else if err != nil {
		s.log.Warning("catalog cache read failed, rebuilding from storage", logger.Error(err))
	}

	cat, err := s.build(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetSnapshot(ctx, cat); err != nil {
		s.log.Warning("catalog cache write failed", logger.Error(err))
	}
	return cat, nil
}

func (s *catalogService) build(ctx context.Context) (*models.Catalog, error) {
	carTypes, err := s.stg.CarType().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := s.stg.Location().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	nationalities, err := s.stg.Nationality().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	tourTypes, err := s.stg.TourType().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.stg.Settings().Get(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Catalog{
		CarTypes:      carTypes,
		Locations:     locations,
		Nationalities: nationalities,
		TourTypes:     tourTypes,
		Settings:      *settings,
	}, nil
}

func (s *catalogService) SaveCarType(ctx context.Context, ct *models.CarType) (*models.CarType, error) {
	if ct.ID == "" {
		ct.ID = uuid.NewString()
	}
	if ct.Mode == "" {
		ct.Mode = models.PricingDaily
	}
	if err := s.stg.CarType().Upsert(ctx, ct); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return ct, nil
}

func (s *catalogService) SetCarTypeEnabled(ctx context.Context, id string, enabled bool) error {
	if err := s.stg.CarType().SetEnabled(ctx, id, enabled); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) DeleteCarType(ctx context.Context, id string) error {
	if err := s.stg.CarType().Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) SaveLocation(ctx context.Context, l *models.Location) (*models.Location, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Kind == "" {
		l.Kind = models.LocationCity
	}
	if err := s.stg.Location().Upsert(ctx, l); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return l, nil
}

func (s *catalogService) DeleteLocation(ctx context.Context, id string) error {
	if err := s.stg.Location().Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) SaveNationality(ctx context.Context, f *models.FactorEntry) (*models.FactorEntry, error) {
	return s.saveFactor(ctx, s.stg.Nationality(), f)
}

func (s *catalogService) DeleteNationality(ctx context.Context, id string) error {
	return s.deleteFactor(ctx, s.stg.Nationality(), id)
}

func (s *catalogService) SaveTourType(ctx context.Context, f *models.FactorEntry) (*models.FactorEntry, error) {
	return s.saveFactor(ctx, s.stg.TourType(), f)
}

func (s *catalogService) DeleteTourType(ctx context.Context, id string) error {
	return s.deleteFactor(ctx, s.stg.TourType(), id)
}

func (s *catalogService) saveFactor(ctx context.Context, repo storage.IFactorStorage, f *models.FactorEntry) (*models.FactorEntry, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.Factor == 0 {
		f.Factor = 1
	}
	if err := repo.Upsert(ctx, f); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return f, nil
}

func (s *catalogService) deleteFactor(ctx context.Context, repo storage.IFactorStorage, id string) error {
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) UpdateSettings(ctx context.Context, settings *models.BookingSettings) error {
	if err := s.stg.Settings().Update(ctx, settings); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warning("catalog cache invalidation failed", logger.Error(err))
	}
}
