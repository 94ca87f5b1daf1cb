package report

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"classifieds/internal/domain"
)

const defaultPageSize = 20

// Service contains report creation, grouping and moderation transitions.
// Moderation is single-actor-at-a-time; there is no version field and no
// conflict resolution on status updates.
type Service struct {
	reports RepositoryInterface
}

func NewService(reports RepositoryInterface) *Service {
	return &Service{reports: reports}
}

func (s *Service) Create(ctx context.Context, req CreateReportRequest) (*domain.Report, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrReasonRequired
	}

	status := domain.ReportPending
	if req.Status != "" {
		switch strings.ToUpper(strings.TrimSpace(req.Status)) {
		case string(domain.ReportPending):
			status = domain.ReportPending
		case string(domain.ReportApproved):
			status = domain.ReportApproved
		case string(domain.ReportRejected):
			status = domain.ReportRejected
		default:
			return nil, ErrInvalidStatus
		}
	}

	set := 0
	for _, id := range []*int64{req.VehicleOfferID, req.RealEstateOfferID, req.CommercialOfferID} {
		if id != nil {
			set++
		}
	}
	if set > 1 {
		return nil, ErrMultipleOfferIDs
	}

	reporterType := domain.ReporterType(strings.ToUpper(strings.TrimSpace(req.ReporterType)))
	switch reporterType {
	case domain.ReporterUser:
		if req.ReporterUserID == nil || *req.ReporterUserID == "" {
			return nil, ErrInvalidReporter
		}
	case domain.ReporterCompany:
		if req.ReporterCompanyID == nil || *req.ReporterCompanyID == "" {
			return nil, ErrInvalidReporter
		}
	default:
		return nil, ErrInvalidReporter
	}

	rep := &domain.Report{
		Reason:            strings.TrimSpace(req.Reason),
		Status:            status,
		VehicleOfferID:    req.VehicleOfferID,
		RealEstateOfferID: req.RealEstateOfferID,
		CommercialOfferID: req.CommercialOfferID,
		ReporterUserID:    req.ReporterUserID,
		ReporterCompanyID: req.ReporterCompanyID,
		ReporterType:      reporterType,
	}

	if err := s.reports.Create(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// GroupByOffer groups reports by whichever offer id is set, preserving the
// input order inside each group and first-seen order across groups. Reports
// targeting no offer cannot be moderated against anything; they are excluded,
// counted and logged rather than silently vanishing.
func GroupByOffer(reports []domain.Report) ([]Group, int) {
	byOffer := make(map[int64]int)
	groups := make([]Group, 0)
	dropped := 0

	for _, rep := range reports {
		key, ok := rep.OfferID()
		if !ok {
			dropped++
			continue
		}

		idx, seen := byOffer[key]
		if !seen {
			byOffer[key] = len(groups)
			groups = append(groups, Group{GroupKey: key})
			idx = len(groups) - 1
		}
		groups[idx].Reports = append(groups[idx].Reports, rep)
	}

	if dropped > 0 {
		log.Printf("report_grouping dropped=%d reason=no_offer_id", dropped)
	}

	return groups, dropped
}

// GroupedReports returns one page of moderation groups.
func (s *Service) GroupedReports(ctx context.Context, page, pageSize int) (*GroupedPage, error) {
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, ErrNoReports
	}

	groups, dropped := GroupByOffer(reports)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	total := len(groups)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &GroupedPage{
		Groups:      groups[start:end],
		Page:        page,
		PageSize:    pageSize,
		TotalGroups: total,
		Dropped:     dropped,
	}, nil
}

func (s *Service) Approve(ctx context.Context, id int64) error {
	return s.transition(ctx, id, domain.ReportApproved)
}

func (s *Service) Reject(ctx context.Context, id int64) error {
	return s.transition(ctx, id, domain.ReportRejected)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.reports.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrReportNotFound
	}
	return err
}

func (s *Service) transition(ctx context.Context, id int64, status domain.ReportStatus) error {
	err := s.reports.UpdateStatus(ctx, id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrReportNotFound
	}
	return err
}
