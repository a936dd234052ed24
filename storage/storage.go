package storage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"carrent/pkg/models"
)

type IStorage interface {
	CarType() ICarTypeStorage
	Location() ILocationStorage
	Nationality() IFactorStorage
	TourType() IFactorStorage
	Settings() ISettingsStorage
	Close()
	GetPool() *pgxpool.Pool
}

type ICarTypeStorage interface {
	GetAll(ctx context.Context) ([]*models.CarType, error)
	GetByID(ctx context.Context, id string) (*models.CarType, error)
	Upsert(ctx context.Context, ct *models.CarType) error
	SetEnabled(ctx context.Context, id string, enabled bool) error
	Delete(ctx context.Context, id string) error
}

type ILocationStorage interface {
	GetAll(ctx context.Context) ([]*models.Location, error)
	GetByID(ctx context.Context, id string) (*models.Location, error)
	Upsert(ctx context.Context, l *models.Location) error
	Delete(ctx context.Context, id string) error
}

// IFactorStorage backs both driver nationalities and tour types, the two
// factor tables share one shape.
type IFactorStorage interface {
	GetAll(ctx context.Context) ([]*models.FactorEntry, error)
	GetByID(ctx context.Context, id string) (*models.FactorEntry, error)
	Upsert(ctx context.Context, f *models.FactorEntry) error
	Delete(ctx context.Context, id string) error
}

type ISettingsStorage interface {
	Get(ctx context.Context) (*models.BookingSettings, error)
	Update(ctx context.Context, s *models.BookingSettings) error
}

// ICatalogCache is the key-value snapshot store in front of Postgres. A nil
// snapshot with a nil error means a cache miss.
type ICatalogCache interface {
	GetSnapshot(ctx context.Context) (*models.Catalog, error)
	SetSnapshot(ctx context.Context, cat *models.Catalog) error
	Invalidate(ctx context.Context) error
	Close()
}
