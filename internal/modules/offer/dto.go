package offer

type CreateVehicleOfferRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=100"`
	Description string  `json:"description" binding:"required,min=10,max=2000"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	City        string  `json:"city" binding:"required,min=3,max=100"`
	Country     string  `json:"country" binding:"required,iso3166_1_alpha2"`
	Model       string  `json:"model" binding:"required,min=1,max=100"`
	Year        int     `json:"year" binding:"required,gte=1900"`
	Mileage     int     `json:"mileage" binding:"gte=0"`
	FuelType    string  `json:"fuel_type" binding:"required,oneof=Petrol Diesel Electric Hybrid"`
	Color       string  `json:"color" binding:"required,min=3,max=30"`
}

type CreateRealEstateOfferRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=100"`
	Description string  `json:"description" binding:"required,min=10,max=2000"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	City        string  `json:"city" binding:"required,min=3,max=100"`
	Country     string  `json:"country" binding:"required,iso3166_1_alpha2"`
	Surface     int     `json:"surface" binding:"required,gt=0"`
	Rooms       int     `json:"rooms" binding:"required,gt=0"`
}

type CreateCommercialOfferRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=100"`
	Description string  `json:"description" binding:"required,min=10,max=2000"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	City        string  `json:"city" binding:"required,min=3,max=100"`
	Country     string  `json:"country" binding:"required,iso3166_1_alpha2"`
	Category    string  `json:"category" binding:"required,min=3,max=50"`
}
