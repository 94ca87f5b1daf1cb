package report

import "classifieds/internal/domain"

type CreateReportRequest struct {
	Reason            string  `json:"reason" validate:"required,min=3,max=500"`
	Status            string  `json:"status,omitempty"`
	VehicleOfferID    *int64  `json:"vehicle_offer_id,omitempty" validate:"omitempty,gt=0"`
	RealEstateOfferID *int64  `json:"real_estate_offer_id,omitempty" validate:"omitempty,gt=0"`
	CommercialOfferID *int64  `json:"commercial_offer_id,omitempty" validate:"omitempty,gt=0"`
	ReporterUserID    *string `json:"reporter_user_id,omitempty"`
	ReporterCompanyID *string `json:"reporter_company_id,omitempty"`
	ReporterType      string  `json:"reporter_type" validate:"required"`
}

// Group is one moderation page entry: every report targeting the same offer.
type Group struct {
	GroupKey int64           `json:"group_key"`
	Reports  []domain.Report `json:"reports"`
}

type GroupedPage struct {
	Groups      []Group `json:"groups"`
	Page        int     `json:"page"`
	PageSize    int     `json:"page_size"`
	TotalGroups int     `json:"total_groups"`
	// Dropped counts reports excluded because they target no offer.
	Dropped int `json:"dropped"`
}
