package offer

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"classifieds/internal/domain"
)

// lastOffersLimit caps the homepage listings.
const lastOffersLimit = 10

type Service struct {
	offers RepositoryInterface
}

func NewService(offers RepositoryInterface) *Service {
	return &Service{offers: offers}
}

func (s *Service) CreateVehicle(ctx context.Context, req CreateVehicleOfferRequest, ownerID string, ownerType domain.EntityType) (*domain.VehicleOffer, error) {
	o := &domain.VehicleOffer{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		City:        req.City,
		Country:     req.Country,
		Model:       req.Model,
		Year:        req.Year,
		Mileage:     req.Mileage,
		FuelType:    domain.FuelType(req.FuelType),
		Color:       req.Color,
		OwnerID:     ownerID,
		OwnerType:   ownerType,
	}
	if err := s.offers.CreateVehicle(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) CreateRealEstate(ctx context.Context, req CreateRealEstateOfferRequest, ownerID string, ownerType domain.EntityType) (*domain.RealEstateOffer, error) {
	o := &domain.RealEstateOffer{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		City:        req.City,
		Country:     req.Country,
		Surface:     req.Surface,
		Rooms:       req.Rooms,
		OwnerID:     ownerID,
		OwnerType:   ownerType,
	}
	if err := s.offers.CreateRealEstate(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) CreateCommercial(ctx context.Context, req CreateCommercialOfferRequest, ownerID string, ownerType domain.EntityType) (*domain.CommercialOffer, error) {
	o := &domain.CommercialOffer{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		City:        req.City,
		Country:     req.Country,
		Category:    req.Category,
		OwnerID:     ownerID,
		OwnerType:   ownerType,
	}
	if err := s.offers.CreateCommercial(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) LastVehicleOffers(ctx context.Context) ([]domain.VehicleOffer, error) {
	return s.offers.LastVehicleOffers(ctx, lastOffersLimit)
}

func (s *Service) LastRealEstateOffers(ctx context.Context) ([]domain.RealEstateOffer, error) {
	return s.offers.LastRealEstateOffers(ctx, lastOffersLimit)
}

func (s *Service) LastCommercialOffers(ctx context.Context) ([]domain.CommercialOffer, error) {
	return s.offers.LastCommercialOffers(ctx, lastOffersLimit)
}

// GetByKind resolves a single offer from its kind segment. The result is
// whichever concrete offer struct matched, returned as interface{} for the
// JSON envelope.
func (s *Service) GetByKind(ctx context.Context, kind string, id int64) (interface{}, error) {
	var (
		result interface{}
		err    error
	)
	switch kind {
	case "vehicle":
		result, err = s.offers.GetVehicleByID(ctx, id)
	case "real-estate":
		result, err = s.offers.GetRealEstateByID(ctx, id)
	case "commercial":
		result, err = s.offers.GetCommercialByID(ctx, id)
	default:
		return nil, ErrInvalidKind
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return result, nil
}
