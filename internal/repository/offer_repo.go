package repository

import (
	"context"

	"gorm.io/gorm"

	"classifieds/internal/domain"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) CreateVehicle(ctx context.Context, o *domain.VehicleOffer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OfferRepository) CreateRealEstate(ctx context.Context, o *domain.RealEstateOffer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OfferRepository) CreateCommercial(ctx context.Context, o *domain.CommercialOffer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OfferRepository) GetVehicleByID(ctx context.Context, id int64) (*domain.VehicleOffer, error) {
	var o domain.VehicleOffer
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OfferRepository) GetRealEstateByID(ctx context.Context, id int64) (*domain.RealEstateOffer, error) {
	var o domain.RealEstateOffer
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OfferRepository) GetCommercialByID(ctx context.Context, id int64) (*domain.CommercialOffer, error) {
	var o domain.CommercialOffer
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OfferRepository) LastVehicleOffers(ctx context.Context, limit int) ([]domain.VehicleOffer, error) {
	var offers []domain.VehicleOffer
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *OfferRepository) LastRealEstateOffers(ctx context.Context, limit int) ([]domain.RealEstateOffer, error) {
	var offers []domain.RealEstateOffer
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *OfferRepository) LastCommercialOffers(ctx context.Context, limit int) ([]domain.CommercialOffer, error) {
	var offers []domain.CommercialOffer
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}
