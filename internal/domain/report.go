package domain

import "time"

type ReportStatus string

const (
	ReportPending  ReportStatus = "PENDING"
	ReportApproved ReportStatus = "APPROVED"
	ReportRejected ReportStatus = "REJECTED"
)

type ReporterType string

const (
	ReporterUser    ReporterType = "USER"
	ReporterCompany ReporterType = "COMPANY"
)

// Report flags an offer for moderation. At most one of the three offer id
// fields is set; a report with none set belongs to no moderation group.
type Report struct {
	ID                int64        `json:"id" gorm:"primaryKey"`
	Reason            string       `json:"reason"`
	Status            ReportStatus `json:"status"`
	VehicleOfferID    *int64       `json:"vehicle_offer_id,omitempty"`
	RealEstateOfferID *int64       `json:"real_estate_offer_id,omitempty"`
	CommercialOfferID *int64       `json:"commercial_offer_id,omitempty"`
	ReporterUserID    *string      `json:"reporter_user_id,omitempty"`
	ReporterCompanyID *string      `json:"reporter_company_id,omitempty"`
	ReporterType      ReporterType `json:"reporter_type"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

func (Report) TableName() string { return "reports" }

// OfferID returns the grouping key: whichever offer id field is non-nil.
// ok is false when the report targets no offer at all.
func (r Report) OfferID() (int64, bool) {
	switch {
	case r.VehicleOfferID != nil:
		return *r.VehicleOfferID, true
	case r.RealEstateOfferID != nil:
		return *r.RealEstateOfferID, true
	case r.CommercialOfferID != nil:
		return *r.CommercialOfferID, true
	}
	return 0, false
}
