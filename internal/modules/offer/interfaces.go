package offer

import (
	"context"

	"classifieds/internal/domain"
)

type RepositoryInterface interface {
	CreateVehicle(ctx context.Context, o *domain.VehicleOffer) error
	CreateRealEstate(ctx context.Context, o *domain.RealEstateOffer) error
	CreateCommercial(ctx context.Context, o *domain.CommercialOffer) error
	GetVehicleByID(ctx context.Context, id int64) (*domain.VehicleOffer, error)
	GetRealEstateByID(ctx context.Context, id int64) (*domain.RealEstateOffer, error)
	GetCommercialByID(ctx context.Context, id int64) (*domain.CommercialOffer, error)
	LastVehicleOffers(ctx context.Context, limit int) ([]domain.VehicleOffer, error)
	LastRealEstateOffers(ctx context.Context, limit int) ([]domain.RealEstateOffer, error)
	LastCommercialOffers(ctx context.Context, limit int) ([]domain.CommercialOffer, error)
}
