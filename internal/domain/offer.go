package domain

import "time"

type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

type VehicleOffer struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	Model       string     `json:"model"`
	Year        int        `json:"year"`
	Mileage     int        `json:"mileage"`
	FuelType    FuelType   `json:"fuel_type"`
	Color       string     `json:"color"`
	OwnerID     string     `json:"owner_id"`
	OwnerType   EntityType `json:"owner_type"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (VehicleOffer) TableName() string { return "vehicle_offers" }

type RealEstateOffer struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	Surface     int        `json:"surface"`
	Rooms       int        `json:"rooms"`
	OwnerID     string     `json:"owner_id"`
	OwnerType   EntityType `json:"owner_type"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (RealEstateOffer) TableName() string { return "real_estate_offers" }

type CommercialOffer struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	Category    string     `json:"category"`
	OwnerID     string     `json:"owner_id"`
	OwnerType   EntityType `json:"owner_type"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (CommercialOffer) TableName() string { return "commercial_offers" }
